package main

import (
	"fmt"

	"github.com/keva-store/keva/pkg/object"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [commit]",
		Short: "Verify the SSH signature of a commit (default: HEAD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo()
			if err != nil {
				return err
			}

			ref := "HEAD"
			if len(args) == 1 {
				ref = args[0]
			}
			h, err := r.ResolveRef(ref)
			if err != nil {
				// Not a ref; try the argument as a commit hash.
				if len(args) == 1 && r.Store.Has(object.Hash(ref)) {
					h = object.Hash(ref)
				} else {
					return fmt.Errorf("resolve %q: %w", ref, err)
				}
			}

			c, err := r.Store.ReadCommit(h)
			if err != nil {
				return err
			}
			if c.Signature == "" {
				return fmt.Errorf("commit %s is not signed", h[:12])
			}

			pub, err := verifyCommitSignature(c.Signature, object.CommitSigningPayload(c))
			if err != nil {
				return fmt.Errorf("commit %s: %w", h[:12], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "good signature on %s\n  key: %s\n", h[:12], pub)
			return nil
		},
	}
}
