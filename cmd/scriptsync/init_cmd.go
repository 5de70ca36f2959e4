package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scriptsmith/scriptsync/internal/config"
	"github.com/scriptsmith/scriptsync/internal/utils"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.DefaultConfigPath
		}
		if utils.FileExists(path) {
			return fmt.Errorf("config already exists at %s", path)
		}

		cfg := &config.Config{
			ScriptsDir: viper.GetString("scripts_dir"),
			RepoOwner:  viper.GetString("repo_owner"),
			RepoName:   viper.GetString("repo_name"),
			Branch:     viper.GetString("branch"),
			Path:       path,
		}
		if cfg.ScriptsDir == "" {
			cfg.ScriptsDir = config.DefaultScriptsDir
		}
		if cfg.Branch == "" {
			cfg.Branch = "main"
		}

		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("%s wrote %s\n", green("✓"), path)
		fmt.Println(gray("set SCRIPTSYNC_TOKEN (or a .env file) for repository access"))
		return nil
	},
}
