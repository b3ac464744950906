//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 3},
		{"combobox context", "combobox", true, 8},
		{"multiselect context", "multiselect", true, 14},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestByContextMultiselectBindings(t *testing.T) {
	bindings := ByContext("multiselect")

	expectedActions := []Action{
		ActionNext,
		ActionPrev,
		ActionSelect,
		ActionCreate,
		ActionTagPrev,
		ActionTagNext,
		ActionRemoveTag,
		ActionRemoveLast,
		ActionToggle,
	}

	for _, action := range expectedActions {
		found := false
		for _, b := range bindings {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected action %q in multiselect bindings", action)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		"global":      true,
		"combobox":    true,
		"multiselect": true,
	}

	for i, b := range Bindings {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}

func TestContextsHaveNoConflictingKeys(t *testing.T) {
	for _, ctx := range []string{"combobox", "multiselect"} {
		seen := make(map[string]Action)
		for _, b := range append(ByContext("global"), ByContext(ctx)...) {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok && prev != b.Action {
					t.Errorf("%s: key %q bound to both %q and %q", ctx, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
}
