package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestMockModel_ExactMatch(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("hello", "world")

	text, err := Collect(context.Background(), m, Request{
		Messages: []Message{{Role: "user", Text: "hello"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "world", text)
}

func TestMockModel_SubstringFallback(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("inner prompt", "matched")

	text, err := Collect(context.Background(), m, Request{
		Messages: []Message{{Role: "user", Text: "## Wrapper\nsome inner prompt here"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "matched", text)
}

func TestMockModel_DefaultResponse(t *testing.T) {
	m := NewMockModel("test")

	text, err := Collect(context.Background(), m, Request{
		Messages: []Message{{Role: "user", Text: "unregistered"}},
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Mock response to:"))
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test")
	boom := errors.New("boom")
	m.FailWith(boom)

	_, err := Collect(context.Background(), m, Request{
		Messages: []Message{{Role: "user", Text: "hello"}},
	})
	assert.ErrorIs(t, err, boom)
}

func TestMockModel_NoMessages(t *testing.T) {
	m := NewMockModel("test")
	_, err := Collect(context.Background(), m, Request{})
	assert.Error(t, err)
}

func TestMockModel_Streaming(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("hi", "abc")

	respCh, errCh := m.Generate(context.Background(), Request{
		Stream:   true,
		Messages: []Message{{Role: "user", Text: "hi"}},
	})

	var partials strings.Builder
	var final *Response
	for resp := range respCh {
		if resp.Partial {
			partials.WriteString(resp.Text)
			continue
		}
		r := resp
		final = &r
	}
	assert.NoError(t, <-errCh)
	assert.Equal(t, "abc", partials.String())
	if assert.NotNil(t, final) {
		assert.Equal(t, "abc", final.Text)
		assert.Equal(t, "stop", final.FinishReason)
	}
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("test")
	info := m.Info()
	assert.Equal(t, "test", info.Name)
	assert.Equal(t, "mock", info.Provider)
}

// stalledModel never emits anything; the channels stay open.
type stalledModel struct{}

func (stalledModel) Generate(context.Context, Request) (<-chan Response, <-chan error) {
	return make(chan Response), make(chan error)
}

func (stalledModel) Info() Info { return Info{Name: "stalled", Provider: "mock"} }

func TestCollect_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, stalledModel{}, Request{Messages: []Message{{Role: "user", Text: "hi"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

// emptyModel closes both channels without emitting a final response.
type emptyModel struct{}

func (emptyModel) Generate(context.Context, Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response)
	errCh := make(chan error)
	close(respCh)
	close(errCh)
	return respCh, errCh
}

func (emptyModel) Info() Info { return Info{Name: "empty", Provider: "mock"} }

func TestCollect_NoFinalResponse(t *testing.T) {
	_, err := Collect(context.Background(), emptyModel{}, Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	assert.ErrorContains(t, err, "produced no response")
}
