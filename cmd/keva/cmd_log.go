package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history of the active branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			start, err := r.ResolveRef("HEAD")
			if err != nil {
				return fmt.Errorf("no commits yet")
			}

			commits, err := r.Log(start, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			current := start
			for _, c := range commits {
				fmt.Fprintf(out, "commit %s\n", current)
				fmt.Fprintf(out, "author %s\n", c.Author)
				fmt.Fprintf(out, "date   %s\n", time.Unix(c.Timestamp, 0).Format(time.RFC3339))
				if c.Signature != "" {
					fmt.Fprintln(out, "signed")
				}
				fmt.Fprintf(out, "\n    %s\n\n", c.Message)
				current = c.Parent
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max-count", "n", 50, "limit the number of commits shown")
	return cmd
}
