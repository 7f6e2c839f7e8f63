package main

import (
	"fmt"

	"github.com/mwalczyk/stencil"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	if !snap.Learned {
		fmt.Fprintf(deps.Stdout, "Template %q has not learned any samples yet.\n", snap.Name)
		return nil
	}

	marker := c.Marker
	if marker == "" {
		marker = deps.Config.Marker
	}

	tpl := stencil.Restore(snap)
	fmt.Fprintln(deps.Stdout, tpl.AsText(marker))
	fmt.Fprintf(deps.Stdout, "\n%d hole(s), learned from %d sample(s), tolerance %d\n",
		snap.NumHoles, snap.Version, snap.Tolerance)
	return nil
}
