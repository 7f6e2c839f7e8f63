package main

import (
	"fmt"
	"os"

	"github.com/mwalczyk/stencil"
	"github.com/mwalczyk/stencil/bloom"
	"github.com/mwalczyk/stencil/fs"
	"github.com/mwalczyk/stencil/goquery"
	"github.com/mwalczyk/stencil/html"
	stencilslog "github.com/mwalczyk/stencil/slog"
	"github.com/mwalczyk/stencil/train"
)

// Run executes the learn command.
func (c *LearnCmd) Run(deps *Dependencies) error {
	source, err := c.source()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}
	src := stencilslog.NewLoggingSampleSource(source, deps.Logger)

	// Find or create the named snapshot.
	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Name)
	switch {
	case stencil.ErrorCode(err) == stencil.ENOTFOUND:
		tolerance := c.Tolerance
		if tolerance < 0 {
			tolerance = deps.Config.Tolerance
		}
		snap = &stencil.Snapshot{Name: c.Name, Tolerance: tolerance}
		if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snap); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Created template %q (tolerance %d)\n", snap.Name, snap.Tolerance)
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	default:
		if c.Tolerance >= 0 && c.Tolerance != snap.Tolerance {
			fmt.Fprintf(deps.Stderr, "warning: template %q already uses tolerance %d; --tolerance ignored\n",
				snap.Name, snap.Tolerance)
		}
	}

	tpl := stencil.Restore(snap, stencil.WithCleaner(buildCleaner(c.HTML, c.StripComments)))

	// Seed the dedupe filter from the journal so samples learned in
	// earlier runs are skipped too.
	dedupe := bloom.NewFilter(10000, 0.01)
	recs, err := deps.Samples.FindSamples(deps.Ctx, snap.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}
	for _, rec := range recs {
		dedupe.Seen(rec.ContentHash)
	}

	trainer := &train.Trainer{
		Source:      src,
		Dedupe:      dedupe,
		Samples:     deps.Samples,
		SnapshotID:  snap.ID,
		Concurrency: c.Concurrency,
		Progress: func(event train.ProgressEvent) {
			switch event.Type {
			case train.ProgressStarted:
				fmt.Fprintf(deps.Stdout, "Learning %d sample(s)\n", event.Total)
			case train.ProgressLearned:
				fmt.Fprintf(deps.Stdout, "  %s  %s\n", event.Name, event.Result)
			case train.ProgressSkipped:
				fmt.Fprintf(deps.Stdout, "  %s  skipped (duplicate)\n", event.Name)
			case train.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Name, event.Error)
			}
		},
	}

	result, err := trainer.Train(deps.Ctx, tpl)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	brain := tpl.Brain()
	version := tpl.Version()
	holes := tpl.NumHoles()
	learned := tpl.Learned()
	if _, err := deps.Snapshots.UpdateSnapshot(deps.Ctx, snap.ID, stencil.SnapshotUpdate{
		Brain:    &brain,
		Version:  &version,
		NumHoles: &holes,
		Learned:  &learned,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Learned %d sample(s) (%d skipped, %d failed); template has %d hole(s)\n",
		result.Learned, result.Skipped, result.Failed, result.Holes)
	return nil
}

// source picks a sample source from the command's arguments: a CSS
// selector over one document, a directory, or an explicit file list.
func (c *LearnCmd) source() (stencil.SampleSource, error) {
	if c.Selector != "" {
		if len(c.Paths) != 1 {
			return nil, stencil.Errorf(stencil.EINVALID, "--selector requires exactly one input file")
		}
		data, err := os.ReadFile(c.Paths[0])
		if err != nil {
			return nil, stencil.Errorf(stencil.ENOTFOUND, "cannot read %q: %v", c.Paths[0], err)
		}
		return goquery.NewSelectorSource(string(data), c.Selector), nil
	}

	if len(c.Paths) == 1 {
		if info, err := os.Stat(c.Paths[0]); err == nil && info.IsDir() {
			return fs.NewDirectorySource(c.Paths[0]), nil
		}
	}
	return fs.NewFileSource(c.Paths...), nil
}

// buildCleaner assembles the pre-filter chain for the given flags.
// Returns nil when no filtering was requested.
func buildCleaner(stripTags, stripComments bool) stencil.Cleaner {
	var cleaners []stencil.Cleaner
	if stripTags {
		cleaners = append(cleaners, html.NewCleaner())
	}
	if stripComments {
		cleaners = append(cleaners, html.NewCommentCleaner())
	}
	switch len(cleaners) {
	case 0:
		return nil
	case 1:
		return cleaners[0]
	default:
		return stencil.ChainCleaner(cleaners...)
	}
}
