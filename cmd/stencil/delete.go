package main

import (
	"fmt"

	"github.com/mwalczyk/stencil"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return stencil.Errorf(stencil.EINVALID, "use --force to confirm deletion")
	}

	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Name)
	if err != nil {
		if stencil.ErrorCode(err) == stencil.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: template %q not found. Use 'stencil list' to see available templates.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, snap.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted template %q\n", snap.Name)
	return nil
}
