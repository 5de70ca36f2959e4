package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/scriptsmith/scriptsync/internal/githubsdk"
	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
	"github.com/scriptsmith/scriptsync/internal/sync"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how local and remote scripts compare, without changing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		localMeta := a.store.LoadMetadata()

		remoteMeta, _, err := a.remote.GetMetadata(cmd.Context())
		if errors.Is(err, githubsdk.ErrFileNotFound) {
			fmt.Println(gray("remote has no metadata document yet"))
			remoteMeta = scriptmeta.MetadataDocument{}
		} else if err != nil {
			return err
		}

		pull, err := sync.ClassifyPull(localMeta, remoteMeta, a.store)
		if err != nil {
			return err
		}
		push, err := sync.ClassifyPush(localMeta, remoteMeta, a.store)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s/%s@%s\n\n", cyan("remote"), a.cfg.RepoOwner, a.cfg.RepoName, a.cfg.Branch)
		printClassification("pull", pull)
		fmt.Println()
		printClassification("push", push)
		return nil
	},
}

func printClassification(direction string, result *sync.Result) {
	fmt.Printf("%s\n", cyan(direction))
	if len(result.Items) == 0 {
		fmt.Printf("  %s\n", gray("nothing to compare"))
		return
	}

	for _, it := range result.Items {
		marker := gray("-")
		switch it.Class {
		case sync.ClassNew, sync.ClassUpdate, sync.ClassLocalOnly:
			marker = green("+")
		case sync.ClassConflict:
			marker = red("!")
		}
		fmt.Printf("  %s %-24s %-10s %s%s\n", marker, it.Name, it.Class, it.Reason, lastUpdated(it))
	}
}

func lastUpdated(it sync.Item) string {
	rec := it.Remote
	if rec == nil {
		rec = it.Local
	}
	if rec == nil || rec.LastUpdated.IsZero() {
		return ""
	}
	return gray(fmt.Sprintf(" (updated %s)", humanize.Time(rec.LastUpdated)))
}
