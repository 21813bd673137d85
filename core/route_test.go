package core

import "testing"

func TestParseRoute_CanonicalLabels(t *testing.T) {
	for _, route := range Routes() {
		parsed, err := ParseRoute(string(route))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", route, err)
		}
		if parsed != route {
			t.Fatalf("expected %s, got %s", route, parsed)
		}
	}
}

func TestParseRoute_Normalization(t *testing.T) {
	cases := []struct {
		label string
		want  Route
	}{
		{"conversation", RouteConversation},
		{"  DIRECT_CODE  ", RouteDirectCode},
		{"Contextual_Code", RouteContextualCode},
		{"\nORCHESTRATED_CODE\n", RouteOrchestratedCode},
		// short alias labels
		{"chat", RouteConversation},
		{"CODE", RouteDirectCode},
		{"context", RouteContextualCode},
		{"Plan", RouteOrchestratedCode},
	}
	for _, tc := range cases {
		parsed, err := ParseRoute(tc.label)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.label, err)
		}
		if parsed != tc.want {
			t.Fatalf("label %q: expected %s, got %s", tc.label, tc.want, parsed)
		}
	}
}

func TestParseRoute_OutOfSet(t *testing.T) {
	for _, label := range []string{"", "UNKNOWN", "CONVERSATIONAL", "DIRECT CODE"} {
		if _, err := ParseRoute(label); err == nil {
			t.Fatalf("expected error for out-of-set label %q", label)
		}
	}
}

func TestRoute_Valid(t *testing.T) {
	for _, route := range Routes() {
		if !route.Valid() {
			t.Fatalf("expected %s to be valid", route)
		}
	}
	if Route("CHAT").Valid() {
		t.Fatalf("alias labels are not members of the closed set")
	}
	if Route("").Valid() {
		t.Fatalf("empty route must not be valid")
	}
}

func TestRoutes_StableOrder(t *testing.T) {
	want := []Route{RouteConversation, RouteDirectCode, RouteContextualCode, RouteOrchestratedCode}
	got := Routes()
	if len(got) != len(want) {
		t.Fatalf("expected %d routes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
