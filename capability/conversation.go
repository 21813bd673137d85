package capability

import (
	"context"
	"strings"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// Options configures the single-model capabilities.
type Options struct {
	// Instructions override the capability's default instruction set.
	Instructions string
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// Conversation answers conversational requests with a single completion.
type Conversation struct {
	model        model.Model
	instructions string
	logger       logging.Logger
}

var _ core.Capability = (*Conversation)(nil)

// NewConversation constructs the conversation capability.
func NewConversation(m model.Model, optFns ...func(o *Options)) *Conversation {
	opts := Options{Instructions: conversationInstructions, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Conversation{model: m, instructions: opts.Instructions, logger: opts.Logger}
}

// Name implements core.Capability.
func (c *Conversation) Name() string { return "conversation" }

// Execute implements core.Capability.
func (c *Conversation) Execute(ctx context.Context, request string, memoryContext []core.Snippet) (core.Result, error) {
	answer, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.instructions,
		Messages:     []model.Message{{Role: "user", Text: withMemory(request, memoryContext)}},
	})
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Answer: answer}, nil
}

// withMemory prefixes a request with the injected memory context, matching
// the prompt shape the classifier uses.
func withMemory(request string, memoryContext []core.Snippet) string {
	if len(memoryContext) == 0 {
		return request
	}
	var b strings.Builder
	b.WriteString("## Relevant memory\n")
	for _, s := range memoryContext {
		b.WriteString("- ")
		b.WriteString(s.Content)
		b.WriteString("\n")
	}
	b.WriteString("\n## Request\n")
	b.WriteString(request)
	return b.String()
}
