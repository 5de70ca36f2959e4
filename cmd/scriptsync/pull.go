package main

import (
	"github.com/spf13/cobra"

	"github.com/scriptsmith/scriptsync/internal/sync"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch new and updated scripts from the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		prompter, err := buildPrompter(cmd)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true
		summary, err := sync.NewPuller(a.store, a.remote, prompter).Run(cmd.Context())
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

func init() {
	pullCmd.Flags().BoolP("yes", "y", false, "apply all eligible scripts without prompting")
	pullCmd.Flags().Bool("force", false, "also apply conflicting scripts, overwriting local copies")
}
