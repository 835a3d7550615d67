package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// demoMnemonic answers every request of the "mock" provider so the study
// screen can be driven without credentials. It matches the mnemonic schema.
var demoMnemonic = json.RawMessage(`{"mnemonic":"Trace the shape slowly and say the sound out loud.","examples":[]}`)

// MockProvider is a deterministic Provider. Queued responses are served
// FIFO; once the queue is drained the standing response is used, if any.
// Every request is recorded in Calls.
type MockProvider struct {
	mu       sync.Mutex
	queue    []MockResponse
	standing *MockResponse
	Calls    []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
// An empty queue yields ErrProviderUnavailable.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// NewDemoProvider returns a MockProvider that answers every request with a
// generic mnemonic.
func NewDemoProvider() *MockProvider {
	m := NewMockProvider()
	m.SetStanding(MockResponse{Content: demoMnemonic})
	return m
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var next MockResponse
	switch {
	case len(m.queue) > 0:
		next = m.queue[0]
		m.queue = m.queue[1:]
	case m.standing != nil:
		next = *m.standing
	default:
		return nil, &ErrProviderUnavailable{}
	}

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// SetStanding sets the response served once the queue is empty.
func (m *MockProvider) SetStanding(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standing = &resp
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
