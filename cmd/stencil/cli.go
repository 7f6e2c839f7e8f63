package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mwalczyk/stencil"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *Config
	Logger    *slog.Logger
	Snapshots stencil.SnapshotService
	Samples   stencil.SampleService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service activity to stderr"`

	Learn   LearnCmd   `cmd:"" help:"Learn a template from sample files"`
	Show    ShowCmd    `cmd:"" help:"Show a learned template"`
	Extract ExtractCmd `cmd:"" help:"Extract hole values from a document"`
	List    ListCmd    `cmd:"" help:"List all learned templates"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a template and its sample journal"`
	Samples SamplesCmd `cmd:"" help:"Show a template's sample journal"`
}

// LearnCmd is the "learn" subcommand.
type LearnCmd struct {
	Name  string   `arg:"" help:"Template name"`
	Paths []string `arg:"" type:"path" help:"Sample files, or a single directory"`

	Tolerance     int    `short:"t" default:"-1" help:"Minimum match length kept as literal text (new templates only)"`
	HTML          bool   `help:"Strip script, style, and noscript elements before learning"`
	StripComments bool   `help:"Strip HTML comments before learning (implies --html handling)"`
	Selector      string `short:"s" help:"Learn from each node matching a CSS selector instead of whole files"`
	Concurrency   int    `short:"c" default:"10" help:"Concurrent read limit"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name   string `arg:"" help:"Template name"`
	Marker string `short:"m" help:"Display marker for holes"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Name string `arg:"" help:"Template name"`
	File string `arg:"" type:"path" help:"Document to extract from"`

	Fields        []string `short:"F" help:"Field names for holes, in order; empty name skips a hole"`
	HTML          bool     `help:"Strip script, style, and noscript elements before matching"`
	StripComments bool     `help:"Strip HTML comments before matching"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Template name"`
	Force bool   `help:"Confirm deletion"`
}

// SamplesCmd is the "samples" subcommand.
type SamplesCmd struct {
	Name string `arg:"" help:"Template name"`
}
