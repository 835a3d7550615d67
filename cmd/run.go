package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/kanacards/internal/app"
	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/llm"
	"github.com/abhisek/kanacards/internal/logging"
	"github.com/abhisek/kanacards/internal/store"
	"github.com/abhisek/kanacards/internal/study"
)

// runApp loads config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sel, err := cfg.Selection()
	if err != nil {
		return fmt.Errorf("starting selection: %w", err)
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

	opts := app.Options{
		Study: study.Options{
			Selection:   sel,
			SettleDelay: cfg.SettleDelay(),
			Logger:      logger,
		},
		Logger: logger,
	}

	if cfg.Enrichment.Enabled {
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
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			fmt.Fprintln(os.Stderr, "LLM provider not configured; AI mnemonics will be unavailable.")
		case err != nil:
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
			logger.Warn("llm provider setup failed", slog.Any("error", err))
		default:
			ec := cfg.EnrichConfig()
			opts.Study.Enricher = enrich.NewService(provider, ec, logger)
			opts.Study.FetchTimeout = ec.Timeout
			opts.AIStatus = provider.ModelID()
		}
	}

	logger.Info("starting session",
		slog.Any("groups", sel.Groups()),
		slog.String("mode", string(sel.Mode())),
		slog.Bool("ai", opts.Study.Enricher != nil))

	return app.Run(opts)
}
