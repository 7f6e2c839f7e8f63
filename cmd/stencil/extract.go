package main

import (
	"fmt"
	"os"

	"github.com/mwalczyk/stencil"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.FindSnapshotByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.File, err)
		return err
	}

	tpl := stencil.Restore(snap, stencil.WithCleaner(buildCleaner(c.HTML, c.StripComments)))

	if len(c.Fields) > 0 {
		fields, err := tpl.ExtractDict(string(data), c.Fields)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
			return err
		}
		for _, name := range c.Fields {
			if name == "" {
				continue
			}
			if value, ok := fields[name]; ok {
				fmt.Fprintf(deps.Stdout, "%s: %s\n", name, value)
			}
		}
		return nil
	}

	values, err := tpl.Extract(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stencil.ErrorMessage(err))
		return err
	}
	for _, value := range values {
		fmt.Fprintln(deps.Stdout, value)
	}
	return nil
}
