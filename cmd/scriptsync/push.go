package main

import (
	"github.com/spf13/cobra"

	"github.com/scriptsmith/scriptsync/internal/sync"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish local scripts to the repository",
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
		summary, err := sync.NewPusher(a.store, a.remote, prompter).Run(cmd.Context())
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

func init() {
	pushCmd.Flags().BoolP("yes", "y", false, "publish all eligible scripts without prompting")
	pushCmd.Flags().Bool("force", false, "also publish conflicting scripts, overwriting remote copies")
	pushCmd.Flags().StringP("type", "t", "", "type for first-publish scripts (widget|helper|script)")
	pushCmd.Flags().String("bump", "", "version bump for published scripts (major|minor|patch)")
}
