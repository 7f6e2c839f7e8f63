package main

import (
	"fmt"

	"github.com/mwalczyk/stencil"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, stencil.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'stencil learn' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d hole(s)  %d sample(s)  tolerance %d\n",
			s.ID, s.Name, s.NumHoles, s.Version, s.Tolerance)
	}

	return nil
}
