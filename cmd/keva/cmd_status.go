package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show branch, key count, and change state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if branch := r.Branch(); branch != "" {
				fmt.Fprintf(out, "on branch %s\n", branch)
			} else {
				fmt.Fprintln(out, "no commits yet")
			}
			fmt.Fprintf(out, "%d key(s)\n", r.Len())
			if r.Changed() {
				fmt.Fprintln(out, "uncommitted changes present")
			} else {
				fmt.Fprintln(out, "clean")
			}
			return nil
		},
	}
}
