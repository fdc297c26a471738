package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Store a value under a key and commit it",
		Long: "Store a value under a key. The value is taken from the argument,\n" +
			"or from stdin when omitted. Staged state does not outlive a process,\n" +
			"so the change is committed in the same invocation.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			var value []byte
			if len(args) == 2 {
				value = []byte(args[1])
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read value from stdin: %w", err)
				}
				value = data
			}

			r, err := openRepo()
			if err != nil {
				return err
			}
			if err := r.InsertKey(key, value); err != nil {
				return err
			}

			if message == "" {
				message = fmt.Sprintf("set %s", key)
			}
			h, err := r.Commit(message)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %d bytes (%s)\n", key, len(value), h[:12])
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	return cmd
}
