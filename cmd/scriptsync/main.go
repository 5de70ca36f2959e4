package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scriptsmith/scriptsync/internal/config"
	"github.com/scriptsmith/scriptsync/internal/utils"
	"github.com/scriptsmith/scriptsync/internal/version"
)

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:     "scriptsync",
	Short:   "Sync Scriptable automation scripts with a GitHub repository",
	Version: version.Detailed(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "local scripts directory")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "GitHub repository owner")
	rootCmd.PersistentFlags().StringP("repo", "r", "", "GitHub repository name")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "repository branch")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(pullCmd, pushCmd, statusCmd, initCmd)
}

func main() {
	// .env is a convenience for the token, absence is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})}

	// the log file keeps debug detail regardless of --verbose; losing it
	// is not worth failing the command over
	if file, err := openLogFile(config.DefaultLogFilePath); err == nil {
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		fmt.Fprintf(os.Stderr, "log file unavailable: %v\n", err)
	}

	slog.SetDefault(slog.New(utils.NewMultiLogHandler(handlers...)))
}

func openLogFile(path string) (*os.File, error) {
	if err := utils.EnsureParent(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func loadConfig(cmd *cobra.Command) error {
	if cmd.Flag("config").Changed {
		configFilePath, _ := cmd.Flags().GetString("config")
		viper.SetConfigFile(configFilePath)
	} else {
		viper.SetConfigFile(config.DefaultConfigPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !enoent && !notFound {
			return fmt.Errorf("config read %q: %w", viper.ConfigFileUsed(), err)
		}
	}

	viper.BindPFlag("scripts_dir", cmd.Flags().Lookup("dir"))
	viper.BindPFlag("repo_owner", cmd.Flags().Lookup("owner"))
	viper.BindPFlag("repo_name", cmd.Flags().Lookup("repo"))
	viper.BindPFlag("branch", cmd.Flags().Lookup("branch"))

	viper.SetEnvPrefix("SCRIPTSYNC")
	viper.AutomaticEnv()

	return nil
}

// buildConfig assembles the explicit config value handed to the stores and
// drivers. Flags and env have already been merged into viper.
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		Path:       viper.ConfigFileUsed(),
		ScriptsDir: viper.GetString("scripts_dir"),
		RepoOwner:  viper.GetString("repo_owner"),
		RepoName:   viper.GetString("repo_name"),
		Branch:     viper.GetString("branch"),
		Token:      viper.GetString("token"), // SCRIPTSYNC_TOKEN
	}
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = config.DefaultScriptsDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
