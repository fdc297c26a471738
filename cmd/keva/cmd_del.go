package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDelCmd() *cobra.Command {
	var (
		all     bool
		message string
	)

	cmd := &cobra.Command{
		Use:   "del [key]...",
		Short: "Remove keys and commit the removal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("nothing to delete: pass keys or --all")
			}

			r, err := openRepo()
			if err != nil {
				return err
			}

			if all {
				if err := r.RemoveAll(); err != nil {
					return err
				}
			} else {
				for _, key := range args {
					if !r.HasKey(key) {
						return fmt.Errorf("key %q not found", key)
					}
					if err := r.RemoveKey(key); err != nil {
						return err
					}
				}
			}

			if message == "" {
				if all {
					message = "remove all keys"
				} else {
					message = "del " + strings.Join(args, " ")
				}
			}
			h, err := r.Commit(message)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "committed %s\n", h[:12])
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "remove every key")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	return cmd
}
