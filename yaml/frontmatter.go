// Package yaml parses YAML frontmatter of Markdown post sources.
package yaml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/tutorials"
	"gopkg.in/yaml.v3"
)

// Ensure FrontmatterParser implements tutorials.FrontmatterParser at compile time.
var _ tutorials.FrontmatterParser = (*FrontmatterParser)(nil)

const delimiter = "---"

// FrontmatterParser parses a leading "---" delimited YAML block.
type FrontmatterParser struct{}

// NewFrontmatterParser creates a new FrontmatterParser.
func NewFrontmatterParser() *FrontmatterParser {
	return &FrontmatterParser{}
}

// frontmatter mirrors the YAML keys of a post source.
type frontmatter struct {
	Title    string      `yaml:"title"`
	Abstract string      `yaml:"abstract"`
	Date     string      `yaml:"date"`
	Keywords keywordList `yaml:"keywords"`
	Slug     string      `yaml:"slug"`
}

// keywordList accepts either a YAML sequence or a comma separated string.
type keywordList []string

func (k *keywordList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var list []string
		for _, part := range strings.Split(value.Value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}
		*k = list
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*k = list
		return nil
	default:
		return fmt.Errorf("line %d: keywords must be a list or a string", value.Line)
	}
}

// Parse returns the frontmatter and the remaining Markdown body.
func (p *FrontmatterParser) Parse(content []byte) (*tutorials.Frontmatter, string, error) {
	header, body, err := split(content)
	if err != nil {
		return nil, "", err
	}

	var fm frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, "", tutorials.Errorf(tutorials.EINVALID, "invalid frontmatter: %v", err)
	}

	if strings.TrimSpace(fm.Title) == "" {
		return nil, "", tutorials.Errorf(tutorials.EINVALID, "frontmatter title required")
	}

	return &tutorials.Frontmatter{
		Title:    strings.TrimSpace(fm.Title),
		Abstract: strings.TrimSpace(fm.Abstract),
		Date:     strings.TrimSpace(fm.Date),
		Keywords: []string(fm.Keywords),
		Slug:     strings.Trim(strings.TrimSpace(fm.Slug), "/"),
	}, body, nil
}

// split separates the YAML block from the body. Line endings are
// normalized to "\n".
func split(content []byte) ([]byte, string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(text, delimiter+"\n") {
		return nil, "", tutorials.Errorf(tutorials.EINVALID, "missing frontmatter")
	}
	rest := text[len(delimiter)+1:]

	// The closing delimiter may directly follow the opening one.
	var header, body string
	if strings.HasPrefix(rest, delimiter) {
		header, body = "", rest[len(delimiter):]
	} else {
		end := strings.Index(rest, "\n"+delimiter)
		if end < 0 {
			return nil, "", tutorials.Errorf(tutorials.EINVALID, "unterminated frontmatter")
		}
		header, body = rest[:end], rest[end+len(delimiter)+1:]
	}

	// Drop the remainder of the closing delimiter line.
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}

	return []byte(header), strings.TrimLeft(body, "\n"), nil
}
