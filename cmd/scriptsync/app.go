package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/scriptsmith/scriptsync/internal/config"
	"github.com/scriptsmith/scriptsync/internal/githubsdk"
	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
	"github.com/scriptsmith/scriptsync/internal/scriptstore"
	"github.com/scriptsmith/scriptsync/internal/sync"
)

// app bundles the constructed collaborators for one command invocation.
type app struct {
	cfg    *config.Config
	store  *scriptstore.Local
	remote *githubsdk.Client
}

func newApp() (*app, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	store, err := scriptstore.NewLocal(cfg.ScriptsDir)
	if err != nil {
		return nil, err
	}

	remote, err := githubsdk.New(githubsdk.Config{
		Owner:  cfg.RepoOwner,
		Repo:   cfg.RepoName,
		Branch: cfg.Branch,
		Token:  cfg.Token,
	})
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, store: store, remote: remote}, nil
}

// buildPrompter picks the operator surface: every prompt auto-answered when
// --yes is set or stdin is not a terminal, interactive otherwise.
func buildPrompter(cmd *cobra.Command) (sync.Prompter, error) {
	yes, _ := cmd.Flags().GetBool("yes")
	force, _ := cmd.Flags().GetBool("force")

	auto := &sync.AutoPrompter{ApplyConflicts: force}
	if f := cmd.Flags().Lookup("type"); f != nil && f.Value.String() != "" {
		typ, err := scriptmeta.ParseScriptType(f.Value.String())
		if err != nil {
			return nil, err
		}
		auto.DefaultType = typ
	}
	if f := cmd.Flags().Lookup("bump"); f != nil && f.Value.String() != "" {
		kind, err := scriptmeta.ParseBumpKind(f.Value.String())
		if err != nil {
			return nil, err
		}
		auto.DefaultBump = kind
	}

	if yes || !isatty.IsTerminal(os.Stdin.Fd()) {
		return auto, nil
	}
	return newTerminalPrompter(auto), nil
}

func printSummary(summary *sync.Summary) {
	fmt.Println()
	for _, name := range summary.Applied {
		fmt.Printf("%s %s\n", green("✓"), name)
	}
	for _, name := range summary.Skipped {
		fmt.Printf("%s %s %s\n", gray("-"), name, gray("(skipped)"))
	}
	for _, f := range summary.Failed {
		fmt.Printf("%s %s: %v\n", red("✗"), f.Name, f.Err)
	}
	fmt.Printf("\n%d applied, %d skipped, %d failed\n",
		len(summary.Applied), len(summary.Skipped), len(summary.Failed))
}
