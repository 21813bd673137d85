package capability

import (
	"context"
	"fmt"
	"strings"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// OrchestratedOptions configures the orchestrated code capability.
type OrchestratedOptions struct {
	// PlannerInstructions override the planning step instructions.
	PlannerInstructions string
	// WorkerInstructions override the per-task worker instructions.
	WorkerInstructions string
	// MaxTasks caps the number of planned tasks executed per turn.
	MaxTasks int
	// Logger defaults to NoOp.
	Logger logging.Logger
}

// OrchestratedCode handles complex multi-step changes: a planning completion
// produces an ordered task list, a worker completion runs per task with the
// accumulated outputs as context, and the task results are collected into
// one final answer.
type OrchestratedCode struct {
	model               model.Model
	plannerInstructions string
	workerInstructions  string
	maxTasks            int
	logger              logging.Logger
}

var _ core.Capability = (*OrchestratedCode)(nil)

// NewOrchestratedCode constructs the orchestrated code capability.
func NewOrchestratedCode(m model.Model, optFns ...func(o *OrchestratedOptions)) *OrchestratedCode {
	opts := OrchestratedOptions{
		PlannerInstructions: plannerInstructions,
		WorkerInstructions:  workerInstructions,
		MaxTasks:            8,
		Logger:              logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OrchestratedCode{
		model:               m,
		plannerInstructions: opts.PlannerInstructions,
		workerInstructions:  opts.WorkerInstructions,
		maxTasks:            opts.MaxTasks,
		logger:              opts.Logger,
	}
}

// Name implements core.Capability.
func (c *OrchestratedCode) Name() string { return "orchestrated_code" }

// Execute implements core.Capability.
func (c *OrchestratedCode) Execute(ctx context.Context, request string, memoryContext []core.Snippet) (core.Result, error) {
	plan, err := model.Collect(ctx, c.model, model.Request{
		Instructions: c.plannerInstructions,
		Messages:     []model.Message{{Role: "user", Text: withMemory(request, memoryContext)}},
	})
	if err != nil {
		return core.Result{}, fmt.Errorf("planning failed: %w", err)
	}

	tasks := parseTasks(plan, c.maxTasks)
	if len(tasks) == 0 {
		return core.Result{}, fmt.Errorf("planner produced no tasks")
	}
	c.logger.Debug("planned %d tasks", len(tasks))

	completed := make([]string, 0, len(tasks))
	for i, task := range tasks {
		prompt := fmt.Sprintf("## Overall goal\n%s\n\n## Task %d of %d\n%s", request, i+1, len(tasks), task)
		if len(completed) > 0 {
			prompt += fmt.Sprintf("\n\n## Completed so far\n%s", strings.Join(completed, "\n\n"))
		}
		out, err := model.Collect(ctx, c.model, model.Request{
			Instructions: c.workerInstructions,
			Messages:     []model.Message{{Role: "user", Text: prompt}},
		})
		if err != nil {
			return core.Result{}, fmt.Errorf("task %d (%s) failed: %w", i+1, task, err)
		}
		completed = append(completed, fmt.Sprintf("%s:\n%s", task, out))
	}

	return core.Result{Answer: strings.Join(completed, "\n\n")}, nil
}

// parseTasks splits a plan into one task per non-empty line, stripping
// common list markers, capped at maxTasks.
func parseTasks(plan string, maxTasks int) []string {
	var tasks []string
	for _, line := range strings.Split(plan, "\n") {
		task := strings.TrimSpace(line)
		task = strings.TrimLeft(task, "-*0123456789.) ")
		if task == "" {
			continue
		}
		tasks = append(tasks, task)
		if maxTasks > 0 && len(tasks) == maxTasks {
			break
		}
	}
	return tasks
}
