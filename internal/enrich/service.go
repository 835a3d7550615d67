package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/kanacards/internal/llm"
)

// Service generates enrichment for kana cards.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// NewService creates an enrichment service. A nil logger discards output.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

type mnemonicOutput struct {
	Mnemonic string    `json:"mnemonic"`
	Examples []Example `json:"examples"`
}

// Enrich asks the provider for a mnemonic and example words. Errors are
// returned as-is; callers that must never fail use Fallback.
func (s *Service) Enrich(ctx context.Context, glyph, reading string) (Result, error) {
	if s.provider == nil {
		return Result{}, errors.New("enrich: no provider configured")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeMnemonic)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: mnemonicSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildMnemonicUserMessage(glyph, reading)},
		},
		Schema:      MnemonicSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("mnemonic generation for %s: %w", glyph, err)
	}

	var out mnemonicOutput
	if err := resp.Decode(&out); err != nil {
		return Result{}, fmt.Errorf("parse mnemonic response: %w", err)
	}

	note := strings.TrimSpace(out.Mnemonic)
	if note == "" {
		return Result{}, &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty mnemonic")}
	}

	examples := make([]Example, 0, len(out.Examples))
	for _, ex := range out.Examples {
		word := strings.TrimSpace(ex.Word)
		if word == "" {
			continue
		}
		examples = append(examples, Example{Word: word, Meaning: strings.TrimSpace(ex.Meaning)})
	}

	s.logger.Debug("mnemonic generated",
		slog.String("glyph", glyph),
		slog.Int("examples", len(examples)),
		slog.Int("output_tokens", resp.Usage.OutputTokens))

	return Result{Note: note, Examples: examples}, nil
}

// EnrichOrFallback is Enrich with every failure mapped to Fallback.
func (s *Service) EnrichOrFallback(ctx context.Context, glyph, reading string) Result {
	res, err := s.Enrich(ctx, glyph, reading)
	if err != nil {
		s.logger.Warn("mnemonic generation failed, using fallback",
			slog.String("glyph", glyph),
			slog.Any("error", err))
		return Fallback()
	}
	return res
}
