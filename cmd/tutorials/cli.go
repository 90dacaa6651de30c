package main

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/tutorials"
	"github.com/fwojciec/tutorials/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Posts   tutorials.PostService
	Repos   tutorials.RepoService
	Builder *build.Builder
	RunTUI  func(model tea.Model) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Build    BuildCmd    `cmd:"" help:"Build posts from Markdown sources"`
	List     ListCmd     `cmd:"" help:"List posts, optionally filtered"`
	Keywords KeywordsCmd `cmd:"" help:"List all post keywords"`
	Show     ShowCmd     `cmd:"" help:"Show a single post"`
	Browse   BrowseCmd   `cmd:"" help:"Search and filter posts interactively"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a post"`
	Status   StatusCmd   `cmd:"" help:"Show GitHub repository statistics"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Content     string `short:"c" env:"TUTORIALS_CONTENT" default:"content" help:"Content directory with Markdown posts"`
	Out         string `short:"o" help:"Write a static site to this directory"`
	Title       string `default:"shinyTutorials" help:"Site title for generated pages"`
	Drafts      bool   `help:"Include draft-* posts"`
	Force       bool   `short:"f" help:"Rebuild posts whose source is unchanged"`
	RawHTML     bool   `name:"raw-html" help:"Pass raw HTML in Markdown through to the output"`
	Concurrency int    `default:"4" help:"Sources processed at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Query   string `short:"q" xor:"filter" help:"Show posts whose text contains the query"`
	Keyword string `short:"k" xor:"filter" help:"Show posts matching the keyword"`
	Legacy  bool   `help:"Ignore matches at the very start of a post's text"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug string `arg:"" help:"Post slug"`
	HTML bool   `name:"html" help:"Print rendered HTML instead of Markdown"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Light  bool `help:"Start with the light theme"`
	Legacy bool `help:"Ignore matches at the very start of a post's text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"Post slug"`
	Force bool   `help:"Confirm deletion"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	Repos []string `arg:"" help:"Repositories as OWNER/NAME"`
	Token string   `env:"GITHUB_TOKEN" help:"GitHub API token"`
}

// filterOptions returns the engine options selected by a --legacy flag.
func filterOptions(legacy bool) []tutorials.FilterOption {
	if legacy {
		return []tutorials.FilterOption{tutorials.WithMatcher(tutorials.LegacyMatch)}
	}
	return nil
}
