package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/kanacards/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// request log and on the structured logger.
type LoggingProvider struct {
	inner     Provider
	events    store.EventRepo
	logger    *slog.Logger
	sessionID string
}

// WithLogging wraps a Provider with request logging. Either sink may be nil.
func WithLogging(p Provider, events store.EventRepo, logger *slog.Logger, sessionID string) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{inner: p, events: events, logger: logger, sessionID: sessionID}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		SessionID:   l.sessionID,
		Provider:    providerName(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	attrs := []any{
		slog.String("purpose", purpose),
		slog.String("model", data.Model),
		slog.Int64("latency_ms", latencyMs),
		slog.Int("input_tokens", data.InputTokens),
		slog.Int("output_tokens", data.OutputTokens),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed", append(attrs, slog.Any("error", err))...)
	} else {
		l.logger.Info("llm request", attrs...)
	}

	if l.events != nil {
		// Recording must outlive a cancelled request; the row is written
		// even when the card moved on.
		logCtx := context.WithoutCancel(ctx)
		if logErr := l.events.AppendLLMRequest(logCtx, data); logErr != nil {
			l.logger.Warn("failed to record llm request", slog.Any("error", logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func providerName(p Provider) string {
	switch p.(type) {
	case *GeminiProvider:
		return "gemini"
	case *OpenAIProvider:
		return "openai"
	case *AnthropicProvider:
		return "anthropic"
	case *OpenRouterProvider:
		return "openrouter"
	case *MockProvider:
		return "mock"
	}
	return p.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
