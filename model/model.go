package model

import (
	"context"
	"fmt"
	"strings"
)

// Message is one conversational message in a normalized request. Role is
// user or assistant; system instructions travel separately in
// Request.Instructions.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Request captures the normalized model input produced by the classifier and
// the capability adapters.
type Request struct {
	Instructions string    `json:"instructions"`
	Messages     []Message `json:"messages"`
	Stream       bool      `json:"stream,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a (partial or final) chunk emitted by a model.
type Response struct {
	ID           string      `json:"id"`
	Partial      bool        `json:"partial"`
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", etc.
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive generation. Generate
// returns a response channel carrying zero or more partial chunks followed
// by one final response, and an error channel closed on completion.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// Collect drains a non-streaming generation and returns the final response
// text. Partial chunks are ignored; the first final response wins. It blocks
// until the model completes, fails or the context is cancelled.
func Collect(ctx context.Context, m Model, req Request) (string, error) {
	req.Stream = false
	respCh, errCh := m.Generate(ctx, req)

	var final *Response
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case resp, ok := <-respCh:
			if !ok {
				if final == nil {
					// Channel closed without a final response; surface any
					// pending error.
					select {
					case err, ok := <-errCh:
						if ok && err != nil {
							return "", err
						}
					default:
					}
					return "", fmt.Errorf("model %s produced no response", m.Info().Name)
				}
				return final.Text, nil
			}
			if !resp.Partial && final == nil {
				r := resp
				final = &r
			}
		case err, ok := <-errCh:
			if ok && err != nil {
				return "", err
			}
			// Error channel closed cleanly; keep draining responses.
			errCh = nil
		}
	}
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
// Responses are matched against the text of the last request message.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// FailWith makes every subsequent Generate call fail with err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Generate implements Model; emits optional streaming char chunks then the
// final response.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)
		if m.err != nil {
			errCh <- m.err
			return
		}
		if len(req.Messages) == 0 {
			errCh <- fmt.Errorf("no messages provided")
			return
		}
		input := req.Messages[len(req.Messages)-1].Text
		full := m.responses[input]
		if full == "" {
			// Fall back to substring matching so prompts wrapped in larger
			// templates still hit their canned answer.
			for prompt, response := range m.responses {
				if strings.Contains(input, prompt) {
					full = response
					break
				}
			}
		}
		if full == "" {
			full = fmt.Sprintf("Mock response to: %s", input)
		}
		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{Partial: true, Text: string(r)}:
				}
			}
		}
		respCh <- Response{Partial: false, Text: full, FinishReason: "stop"}
	}()

	return respCh, errCh
}

// Info implements the Model interface.
func (m *MockModel) Info() Info { return m.info }
