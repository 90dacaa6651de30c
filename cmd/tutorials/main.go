package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/build"
	"github.com/fwojciec/tutorials/fs"
	"github.com/fwojciec/tutorials/goldmark"
	"github.com/fwojciec/tutorials/goquery"
	"github.com/fwojciec/tutorials/htmltemplate"
	tutorialshttp "github.com/fwojciec/tutorials/http"
	tutslog "github.com/fwojciec/tutorials/slog"
	"github.com/fwojciec/tutorials/sqlite"
	"github.com/fwojciec/tutorials/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). When empty, Run uses
	// TUTORIALS_DB or ~/.tutorials/tutorials.db.
	DBPath string

	// EnvFile is loaded into the environment before arguments are parsed.
	// Variables already set take precedence. A missing file is ignored.
	EnvFile string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PostService tutorials.PostService
	RepoService tutorials.RepoService

	// RunTUI runs the interactive browser. Defaults to a full-screen
	// Bubbletea program on stdout.
	RunTUI func(ctx context.Context, model tea.Model, stdout io.Writer) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		RunTUI:  runProgram,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tutorials"),
		kong.Description("Build, search and browse a collection of tutorial posts."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tutorials --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if usesPosts(cmd) {
		if err := m.openPosts(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Posts = m.PostService
	}
	deps.RunTUI = func(model tea.Model) error {
		return m.RunTUI(ctx, model, stdout)
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "build":
		deps.Builder = m.newBuilder(&cli.Build, deps.Logger)
	case "status":
		repos := m.RepoService
		if repos == nil {
			repos = tutorialshttp.NewRepoService(tutorialshttp.WithToken(cli.Status.Token))
		}
		if deps.Logger != nil {
			repos = tutslog.NewLoggingRepoService(repos, deps.Logger)
		}
		deps.Repos = repos
	}

	return kongCtx.Run(deps)
}

// usesPosts reports whether cmd reads or writes the post database.
func usesPosts(cmd string) bool {
	return cmd != "status"
}

// openPosts opens the database and wires the post service.
func (m *Main) openPosts(stderr io.Writer) error {
	if m.DBPath == "" {
		m.DBPath = defaultDBPath()
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TUTORIALS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.PostService = sqlite.NewPostService(m.DB)
	return nil
}

// loadEnv loads path with godotenv without overriding variables that are
// already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// newBuilder wires the content pipeline for the build command.
func (m *Main) newBuilder(c *BuildCmd, logger *slog.Logger) *build.Builder {
	var sourceOpts []fs.SourceOption
	if c.Drafts {
		sourceOpts = append(sourceOpts, fs.WithDrafts())
	}
	var sources tutorials.SourceReader = fs.NewSourceReader(c.Content, sourceOpts...)

	var rendererOpts []goldmark.Option
	if c.RawHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRawHTML())
	}
	var renderer tutorials.Renderer = goldmark.NewRenderer(rendererOpts...)

	if logger != nil {
		sources = tutslog.NewLoggingSourceReader(sources, logger)
		renderer = tutslog.NewLoggingRenderer(renderer, logger)
	}

	site := htmltemplate.NewSiteRenderer(htmltemplate.WithSiteTitle(c.Title))

	b := &build.Builder{
		Sources:     sources,
		Parser:      yaml.NewFrontmatterParser(),
		Renderer:    renderer,
		Entries:     site,
		Extractor:   goquery.NewTextExtractor(),
		Posts:       m.PostService,
		Concurrency: c.Concurrency,
		Force:       c.Force,
	}
	if c.Out != "" {
		out := filepath.Clean(c.Out)
		b.Site = site
		b.Pages = fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
	}
	return b
}

func runProgram(ctx context.Context, model tea.Model, stdout io.Writer) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(stdout),
	)
	_, err := p.Run()
	return err
}

func defaultDBPath() string {
	if path := os.Getenv("TUTORIALS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tutorials.db"
	}
	dir := filepath.Join(home, ".tutorials")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tutorials.db")
}
