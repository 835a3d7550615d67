package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/llm"
	"github.com/abhisek/kanacards/internal/logging"
	"github.com/abhisek/kanacards/internal/store"
)

var hintCmd = &cobra.Command{
	Use:   "hint <glyph>",
	Short: "Print an AI mnemonic for a single kana",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		item, ok := kana.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%q is not in the kana dataset", args[0])
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sessionID := uuid.NewString()
		logger, closer, err := logging.Setup(logging.Options{
			Level:     cfg.Log.Level,
			File:      cfg.LogFile(),
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		defer closer.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, llm.Options{
			Events:    st.EventRepo(),
			Logger:    logger,
			SessionID: sessionID,
		})
		if errors.Is(err, llm.ErrNotConfigured) {
			return errors.New("no LLM provider configured; set GEMINI_API_KEY or KANACARDS_LLM_PROVIDER")
		}
		if err != nil {
			return err
		}

		svc := enrich.NewService(provider, cfg.EnrichConfig(), logger)
		res := svc.EnrichOrFallback(ctx, item.Glyph, item.Romaji)

		fmt.Printf("%s  %s  (%s, %s)\n\n", item.Glyph, item.Romaji, item.Group, item.Script)
		fmt.Println(res.Note)
		if len(res.Examples) > 0 {
			fmt.Println()
			for _, ex := range res.Examples {
				fmt.Printf("  • %s — %s\n", ex.Word, ex.Meaning)
			}
		}
		return nil
	},
}
