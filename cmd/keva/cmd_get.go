package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			if !r.HasKey(args[0]) {
				return fmt.Errorf("key %q not found", args[0])
			}
			_, err = cmd.OutOrStdout().Write(r.Key(args[0]))
			return err
		},
	}
}
