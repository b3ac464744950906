package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestResults(t *testing.T) {
	cmd := func() tea.Msg { return "opened" }

	tests := []struct {
		name    string
		r       Result
		handled bool
		hasCmd  bool
	}{
		{"not handled", NotHandled, false, false},
		{"handled without command", HandledNoCmd, true, false},
		{"handled nil command", Handled(nil), true, false},
		{"handled with command", Handled(cmd), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Handled != tt.handled {
				t.Errorf("Handled = %v, want %v", tt.r.Handled, tt.handled)
			}
			if (tt.r.Cmd != nil) != tt.hasCmd {
				t.Errorf("Cmd set = %v, want %v", tt.r.Cmd != nil, tt.hasCmd)
			}
		})
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	step := func(name string, r Result) Handler {
		return func() Result {
			calls = append(calls, name)
			return r
		}
	}

	handled, cmd := Chain(
		step("help", NotHandled),
		step("global", Handled(func() tea.Msg { return "global" })),
		step("widget", HandledNoCmd),
	)

	if !handled {
		t.Fatal("Chain() handled = false")
	}
	if cmd == nil || cmd() != "global" {
		t.Error("Chain() did not return the global handler's command")
	}
	if len(calls) != 2 || calls[1] != "global" {
		t.Errorf("calls = %v, want [help global]", calls)
	}
}

func TestChain_NothingHandles(t *testing.T) {
	handled, cmd := Chain(
		func() Result { return NotHandled },
		func() Result { return NotHandled },
	)
	if handled || cmd != nil {
		t.Errorf("Chain() = %v, %v; want false, nil", handled, cmd != nil)
	}

	if handled, _ := Chain(); handled {
		t.Error("empty Chain() handled a key")
	}
}
