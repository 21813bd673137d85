package capability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HellKaiser45/Ulvek/core"
	"github.com/HellKaiser45/Ulvek/internal/testutil"
	"github.com/HellKaiser45/Ulvek/model"
)

func TestNewBinding_CopiesEntries(t *testing.T) {
	entries := map[core.Route]core.Capability{
		core.RouteConversation: &testutil.CannedCapability{CapName: "canned", Answer: "hi"},
	}
	b := NewBinding(entries)

	// Later mutation of the argument must not leak into the binding.
	entries[core.RouteDirectCode] = &testutil.CannedCapability{CapName: "late"}
	_, err := b.Resolve(core.RouteDirectCode)
	assert.Error(t, err)
}

func TestBinding_Resolve(t *testing.T) {
	canned := &testutil.CannedCapability{CapName: "canned", Answer: "hi"}
	b := NewBinding(map[core.Route]core.Capability{core.RouteConversation: canned})

	first, err := b.Resolve(core.RouteConversation)
	assert.NoError(t, err)
	second, err := b.Resolve(core.RouteConversation)
	assert.NoError(t, err)
	// Repeated lookups return the same capability reference.
	assert.Same(t, first, second)
}

func TestBinding_ResolveUnregistered(t *testing.T) {
	b := NewBinding(nil)
	_, err := b.Resolve(core.RouteOrchestratedCode)

	var ure *core.UnregisteredRouteError
	if assert.ErrorAs(t, err, &ure) {
		assert.Equal(t, core.RouteOrchestratedCode, ure.Route)
	}
}

func TestBinding_Dispatch(t *testing.T) {
	canned := &testutil.CannedCapability{CapName: "canned", Answer: "the answer"}
	b := NewBinding(map[core.Route]core.Capability{core.RouteDirectCode: canned})

	result, err := b.Dispatch(context.Background(), core.RouteDirectCode, "req", nil)
	assert.NoError(t, err)
	assert.Equal(t, "the answer", result.Answer)
	assert.Equal(t, core.RouteDirectCode, result.Route)
	assert.Equal(t, 1, canned.Calls)
}

func TestBinding_DispatchWrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	canned := &testutil.CannedCapability{CapName: "canned", Err: boom}
	b := NewBinding(map[core.Route]core.Capability{core.RouteContextualCode: canned})

	_, err := b.Dispatch(context.Background(), core.RouteContextualCode, "req", nil)

	var ce *core.CapabilityError
	if assert.ErrorAs(t, err, &ce) {
		assert.Equal(t, core.RouteContextualCode, ce.Route)
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, 1, canned.Calls)
}

func TestBinding_DispatchUnregistered(t *testing.T) {
	b := NewBinding(nil)
	_, err := b.Dispatch(context.Background(), core.RouteConversation, "req", nil)

	var ure *core.UnregisteredRouteError
	assert.ErrorAs(t, err, &ure)
}

func TestDefaultBinding_CoversAllRoutes(t *testing.T) {
	b := DefaultBinding(model.NewMockModel("worker"))
	for _, route := range core.Routes() {
		c, err := b.Resolve(route)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	}
	assert.Len(t, b.Routes(), len(core.Routes()))
}
