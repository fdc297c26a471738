package main

import (
	"fmt"
	"os"

	"github.com/keva-store/keva/pkg/repo"
	"github.com/spf13/cobra"
)

var repoPath string

func main() {
	root := &cobra.Command{
		Use:   "keva",
		Short: "Versioned key-value store on a content-addressed object store",
	}
	root.PersistentFlags().StringVarP(&repoPath, "repo", "C", ".", "path to the store")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newDelCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newCommitCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newSwitchCmd())
	root.AddCommand(newVerifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("keva 0.1.0-dev")
		},
	}
}

// openRepo opens the store addressed by the --repo flag.
func openRepo() (*repo.Repo, error) {
	return repo.Open(repoPath)
}
