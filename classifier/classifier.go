package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// Func adapts a plain function to the core.Classifier interface.
type Func func(ctx context.Context, request string, memoryContext []core.Snippet) (core.Route, error)

// Classify implements core.Classifier.
func (f Func) Classify(ctx context.Context, request string, memoryContext []core.Snippet) (core.Route, error) {
	return f(ctx, request, memoryContext)
}

// Static returns a classifier that always selects the given route. Useful
// for tests and single-purpose deployments.
func Static(route core.Route) core.Classifier {
	return Func(func(context.Context, string, []core.Snippet) (core.Route, error) {
		return route, nil
	})
}

// Options configures a ModelClassifier.
type Options struct {
	// Instructions override the default classification instructions.
	Instructions string
	// Logger receives classification outcomes. Defaults to NoOp.
	Logger logging.Logger
}

// ModelClassifier selects a route by asking a judgment model for a label and
// parsing it against the closed route set. The judgment may be
// non-deterministic; the contract only requires one valid route or an
// explicit *core.ClassificationError. It never substitutes a default route.
type ModelClassifier struct {
	model        model.Model
	instructions string
	logger       logging.Logger
}

var _ core.Classifier = (*ModelClassifier)(nil)

// NewModelClassifier constructs a ModelClassifier with optional overrides.
func NewModelClassifier(m model.Model, optFns ...func(o *Options)) *ModelClassifier {
	opts := Options{
		Instructions: DefaultInstructions,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ModelClassifier{model: m, instructions: opts.Instructions, logger: opts.Logger}
}

// Classify implements core.Classifier.
func (c *ModelClassifier) Classify(ctx context.Context, request string, memoryContext []core.Snippet) (core.Route, error) {
	start := time.Now()

	label, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.instructions,
		Messages:     []model.Message{{Role: "user", Text: buildPrompt(request, memoryContext)}},
	})
	if err != nil {
		c.logger.Error("classification judgment failed after %s: %v", time.Since(start), err)
		return "", &core.ClassificationError{Cause: err}
	}

	route, err := core.ParseRoute(label)
	if err != nil {
		c.logger.Error("classification returned out-of-set label %q", label)
		return "", &core.ClassificationError{Label: strings.TrimSpace(label), Cause: err}
	}

	c.logger.Debug("classified request as %s in %s", route, time.Since(start))
	return route, nil
}

// buildPrompt assembles the judgment input from the available memory context
// and the raw request.
func buildPrompt(request string, memoryContext []core.Snippet) string {
	if len(memoryContext) == 0 {
		return fmt.Sprintf("## User request\n%s", request)
	}
	var b strings.Builder
	b.WriteString("## Available context\n")
	for _, s := range memoryContext {
		b.WriteString("- ")
		b.WriteString(s.Content)
		b.WriteString("\n")
	}
	b.WriteString("\n## User request\n")
	b.WriteString(request)
	return b.String()
}
