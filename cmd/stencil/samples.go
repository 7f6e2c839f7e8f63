package main

import (
	"fmt"
	"time"

	"github.com/mwalczyk/stencil"
)

// Run executes the samples command.
func (c *SamplesCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	recs, err := deps.Samples.FindSamples(deps.Ctx, snap.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintf(deps.Stdout, "Template %q has no recorded samples.\n", snap.Name)
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%4d  %s  %-15s  %7d bytes  %s\n",
			rec.Position, rec.LearnedAt.Format(time.RFC3339), rec.Result, rec.Size, rec.Name)
	}

	return nil
}
