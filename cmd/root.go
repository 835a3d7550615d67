package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/config"
	"github.com/abhisek/kanacards/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanacards",
	Short: "Kana flashcards in your terminal",
	Long:  "KanaCards — terminal flashcards for learning hiragana and katakana, with optional AI mnemonics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite request log (overrides KANACARDS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/kanacards/config.toml)")

	rootCmd.Flags().StringSlice("groups", nil, "Starting groups, e.g. Vowels,K,S")
	rootCmd.Flags().StringSlice("scripts", nil, "Starting scripts: hiragana, katakana")
	rootCmd.Flags().String("mode", "", "Study direction: char-first or romaji-first")
	rootCmd.Flags().Bool("no-ai", false, "Disable AI mnemonics")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(strokeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KANACARDS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config file and applies any flag overrides that
// the command defines.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Lookup("groups") != nil && flags.Changed("groups") {
		cfg.Study.Groups, _ = flags.GetStringSlice("groups")
	}
	if flags.Lookup("scripts") != nil && flags.Changed("scripts") {
		scripts, _ := flags.GetStringSlice("scripts")
		for i := range scripts {
			scripts[i] = strings.ToLower(scripts[i])
		}
		cfg.Study.Scripts = scripts
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		cfg.Study.Mode, _ = flags.GetString("mode")
	}
	if flags.Lookup("no-ai") != nil {
		if noAI, _ := flags.GetBool("no-ai"); noAI {
			cfg.Enrichment.Enabled = false
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
