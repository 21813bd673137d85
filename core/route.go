package core

import (
	"fmt"
	"strings"
)

// Route selects which capability handles a turn. The set is closed: adding a
// route means implementing a new Capability and registering it in a Binding
// at startup, never extending the set per request.
type Route string

const (
	// RouteConversation handles plain conversational requests that need no
	// code change.
	RouteConversation Route = "CONVERSATION"
	// RouteDirectCode handles small, fully specified code changes.
	RouteDirectCode Route = "DIRECT_CODE"
	// RouteContextualCode handles code changes that require gathering
	// additional context first.
	RouteContextualCode Route = "CONTEXTUAL_CODE"
	// RouteOrchestratedCode handles complex changes that must be planned and
	// executed as an ordered series of tasks.
	RouteOrchestratedCode Route = "ORCHESTRATED_CODE"
)

// Routes returns the closed route set in a stable order.
func Routes() []Route {
	return []Route{RouteConversation, RouteDirectCode, RouteContextualCode, RouteOrchestratedCode}
}

// Valid reports whether r is a member of the closed route set.
func (r Route) Valid() bool {
	switch r {
	case RouteConversation, RouteDirectCode, RouteContextualCode, RouteOrchestratedCode:
		return true
	}
	return false
}

// String returns the canonical route label.
func (r Route) String() string { return string(r) }

// routeAliases maps legacy / judgment-friendly labels onto canonical routes.
var routeAliases = map[string]Route{
	"CHAT":    RouteConversation,
	"CODE":    RouteDirectCode,
	"CONTEXT": RouteContextualCode,
	"PLAN":    RouteOrchestratedCode,
}

// ParseRoute maps a label onto the closed route set. Labels are matched
// case-insensitively and surrounding whitespace is ignored. Besides the
// canonical names the short labels chat/code/context/plan are accepted.
// A label outside the set yields an error; callers must not substitute a
// default.
func ParseRoute(label string) (Route, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	if r := Route(normalized); r.Valid() {
		return r, nil
	}
	if r, ok := routeAliases[normalized]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown route label %q", label)
}
