package capability

import (
	"context"
	"sort"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/logging"
	"github.com/HellKaiser45/Ulvek/model"
)

// Binding is the process-wide routing table mapping each route to its
// capability. It is built once at initialization, is immutable afterwards
// and is safe for concurrent reads by any number of in-flight turns.
type Binding struct {
	entries map[core.Route]core.Capability
}

// NewBinding constructs a Binding from the given entries. The map is copied;
// later mutations of the argument do not affect the binding.
func NewBinding(entries map[core.Route]core.Capability) *Binding {
	copied := make(map[core.Route]core.Capability, len(entries))
	for route, c := range entries {
		copied[route] = c
	}
	return &Binding{entries: copied}
}

// DefaultOptions configures DefaultBinding.
type DefaultOptions struct {
	// Logger is passed to every default capability. Defaults to NoOp.
	Logger logging.Logger
}

// DefaultBinding builds the standard four-route binding with every
// capability backed by the same model.
func DefaultBinding(m model.Model, optFns ...func(o *DefaultOptions)) *Binding {
	opts := DefaultOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := func(o *Options) { o.Logger = opts.Logger }
	return NewBinding(map[core.Route]core.Capability{
		core.RouteConversation:     NewConversation(m, logger),
		core.RouteDirectCode:       NewDirectCode(m, logger),
		core.RouteContextualCode:   NewContextualCode(m, logger),
		core.RouteOrchestratedCode: NewOrchestratedCode(m, func(o *OrchestratedOptions) { o.Logger = opts.Logger }),
	})
}

// Resolve returns the capability registered for route. A missing entry
// yields *core.UnregisteredRouteError, a configuration defect that fails the
// turn loudly. Repeated lookups for the same route return the same
// capability reference.
func (b *Binding) Resolve(route core.Route) (core.Capability, error) {
	c, ok := b.entries[route]
	if !ok {
		return nil, &core.UnregisteredRouteError{Route: route}
	}
	return c, nil
}

// Dispatch resolves the capability for route and invokes it exactly once.
// Capability failures are wrapped uniformly as *core.CapabilityError so
// callers can render a message per failure kind. The returned result carries
// the route that produced it.
func (b *Binding) Dispatch(ctx context.Context, route core.Route, request string, memoryContext []core.Snippet) (core.Result, error) {
	c, err := b.Resolve(route)
	if err != nil {
		return core.Result{}, err
	}
	result, err := c.Execute(ctx, request, memoryContext)
	if err != nil {
		return core.Result{}, &core.CapabilityError{Route: route, Cause: err}
	}
	result.Route = route
	return result, nil
}

// Routes returns the registered routes in a stable order.
func (b *Binding) Routes() []core.Route {
	routes := make([]core.Route, 0, len(b.entries))
	for route := range b.entries {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i] < routes[j] })
	return routes
}
