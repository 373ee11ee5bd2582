package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one scripted reply for MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Reply scripts a successful reply with the given JSON content.
func Reply(content string) MockReply {
	return MockReply{Content: json.RawMessage(content)}
}

// Fail scripts a failed reply.
func Fail(err error) MockReply { return MockReply{Err: err} }

// MockProvider replays scripted replies in order and records every request.
// Replies are validated against the request's Schema like a hosted
// provider's. With the script exhausted it reports KindUnavailable.
type MockProvider struct {
	mu       sync.Mutex
	replies  []MockReply
	requests []Request
}

// NewMockProvider creates a mock with the given script.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if len(m.replies) == 0 {
		return nil, &Error{Kind: KindUnavailable}
	}
	next := m.replies[0]
	m.replies = m.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return finish(req, &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: StopEnd,
	})
}

func (m *MockProvider) ModelID() string { return "mock" }

// Script appends replies to the queue.
func (m *MockProvider) Script(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Requests returns a copy of every request received so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
