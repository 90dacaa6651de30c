package build_test

import (
	"testing"

	"github.com/fwojciec/tutorials/build"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", build.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", build.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", build.FormatBytes(2*1024*1024))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	t.Run("returns consistent hash for same content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, build.ComputeHash([]byte("test content")), build.ComputeHash([]byte("test content")))
	})

	t.Run("returns different hashes for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, build.ComputeHash([]byte("content a")), build.ComputeHash([]byte("content b")))
	})

	t.Run("returns fixed-width hex string", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, `^[0-9a-f]{16}$`, build.ComputeHash([]byte("test")))
	})
}
