package capability

import (
	"context"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// DirectCode handles small, fully specified code changes with a single
// worker completion. No planning, no context gathering.
type DirectCode struct {
	model        model.Model
	instructions string
	logger       logging.Logger
}

var _ core.Capability = (*DirectCode)(nil)

// NewDirectCode constructs the direct code capability.
func NewDirectCode(m model.Model, optFns ...func(o *Options)) *DirectCode {
	opts := Options{Instructions: workerInstructions, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &DirectCode{model: m, instructions: opts.Instructions, logger: opts.Logger}
}

// Name implements core.Capability.
func (c *DirectCode) Name() string { return "direct_code" }

// Execute implements core.Capability.
func (c *DirectCode) Execute(ctx context.Context, request string, memoryContext []core.Snippet) (core.Result, error) {
	answer, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.instructions,
		Messages:     []model.Message{{Role: "user", Text: withMemory(request, memoryContext)}},
	})
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Answer: answer}, nil
}
