package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanacards/internal/llm"
)

func validMnemonicJSON() json.RawMessage {
	return json.RawMessage(`{
		"mnemonic": "か looks like a blade cutting a kite: KA!",
		"examples": [
			{"word": "kasa", "meaning": "umbrella"},
			{"word": "kami", "meaning": "paper"},
			{"word": " ", "meaning": "dropped"},
			{"word": "kao", "meaning": "face"}
		]
	}`)
}

func TestService_Enrich(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validMnemonicJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	res, err := svc.Enrich(t.Context(), "か", "ka")
	require.NoError(t, err)

	assert.Equal(t, "か looks like a blade cutting a kite: KA!", res.Note)
	assert.False(t, res.Fallback)
	assert.Equal(t, []Example{
		{Word: "kasa", Meaning: "umbrella"},
		{Word: "kami", Meaning: "paper"},
		{Word: "kao", Meaning: "face"},
	}, res.Examples)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, MnemonicSchema, req.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.True(t, strings.Contains(req.Messages[0].Content, "Japanese character: か (ka)"))
}

func TestService_EnrichErrors(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"bad json", llm.MockResponse{Content: json.RawMessage(`not json`)}},
		{"empty mnemonic", llm.MockResponse{Content: json.RawMessage(`{"mnemonic": "  ", "examples": []}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)

			_, err := svc.Enrich(t.Context(), "あ", "a")
			assert.Error(t, err)

			res := NewService(llm.NewMockProvider(tt.resp), DefaultConfig(), nil).
				EnrichOrFallback(t.Context(), "あ", "a")
			assert.Equal(t, Fallback(), res)
		})
	}
}

func TestService_EmptyMnemonicIsInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"mnemonic": "", "examples": []}`)})
	_, err := NewService(mock, DefaultConfig(), nil).Enrich(t.Context(), "あ", "a")

	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestService_NoProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig(), nil)
	_, err := svc.Enrich(t.Context(), "あ", "a")
	assert.Error(t, err)
	assert.Equal(t, Fallback(), svc.EnrichOrFallback(t.Context(), "あ", "a"))
}

// slowProvider blocks until its context ends.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestService_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	svc := NewService(slowProvider{}, cfg, nil)

	start := time.Now()
	_, err := svc.Enrich(context.Background(), "あ", "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestService_SetsPurpose(t *testing.T) {
	var purpose string
	p := purposeProvider{fn: func(ctx context.Context) { purpose = llm.PurposeFrom(ctx) }}
	_, _ = NewService(p, DefaultConfig(), nil).Enrich(t.Context(), "あ", "a")
	assert.Equal(t, "mnemonic", purpose)
}

type purposeProvider struct{ fn func(context.Context) }

func (p purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Content: validMnemonicJSON()}, nil
}

func (purposeProvider) ModelID() string { return "purpose" }
