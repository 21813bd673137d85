package capability

import (
	"context"
	"fmt"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// ContextualCode handles code changes that need context gathering first. It
// runs two completions: a retrieval step that assembles a context digest,
// then a worker step that consumes the digest alongside the request.
type ContextualCode struct {
	model                model.Model
	retrieveInstructions string
	workerInstructions   string
	logger               logging.Logger
}

var _ core.Capability = (*ContextualCode)(nil)

// NewContextualCode constructs the contextual code capability. The Options
// instructions override applies to the worker step; the retrieval step keeps
// its own instruction set.
func NewContextualCode(m model.Model, optFns ...func(o *Options)) *ContextualCode {
	opts := Options{Instructions: workerInstructions, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ContextualCode{
		model:                m,
		retrieveInstructions: retrieverInstructions,
		workerInstructions:   opts.Instructions,
		logger:               opts.Logger,
	}
}

// Name implements core.Capability.
func (c *ContextualCode) Name() string { return "contextual_code" }

// Execute implements core.Capability.
func (c *ContextualCode) Execute(ctx context.Context, request string, memoryContext []core.Snippet) (core.Result, error) {
	digest, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.retrieveInstructions,
		Messages: []model.Message{{
			Role: "user",
			Text: withMemory(fmt.Sprintf("%s\n\nGather the information needed to make this change.", request), memoryContext),
		}},
	})
	if err != nil {
		return core.Result{}, fmt.Errorf("context retrieval failed: %w", err)
	}
	c.logger.Debug("assembled context digest of %d bytes", len(digest))

	answer, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.workerInstructions,
		Messages: []model.Message{{
			Role: "user",
			Text: fmt.Sprintf("## Gathered context\n%s\n\n## Task\n%s", digest, request),
		}},
	})
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Answer: answer}, nil
}
