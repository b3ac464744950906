package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/app/handler"
	"github.com/llehouerou/dropwidgets/internal/errmsg"
	"github.com/llehouerou/dropwidgets/internal/keymap"
)

func (m *Model) handleKey(key tea.KeyMsg) tea.Cmd {
	_, cmd := handler.Chain(
		func() handler.Result { return m.handleHelpKeys(key) },
		func() handler.Result { return m.handleGlobalKeys(key) },
		func() handler.Result { return m.handleWidgetKeys(key) },
	)
	return cmd
}

// handleHelpKeys gives the help panel every key while it is shown.
func (m *Model) handleHelpKeys(key tea.KeyMsg) handler.Result {
	if !m.HelpVisible {
		return handler.NotHandled
	}
	_, cmd := m.Help.Update(key)
	return handler.Handled(cmd)
}

func (m *Model) handleGlobalKeys(key tea.KeyMsg) handler.Result {
	switch m.Keys.Resolve(key.String()) {
	case keymap.ActionQuit:
		if err := m.StateMgr.Flush(); err != nil {
			m.fail(errmsg.OpHistoryFlush, err)
		}
		m.Fruit.Close()
		m.Tags.Close()
		return handler.Handled(tea.Quit)
	case keymap.ActionSwitchFocus:
		step := 1
		if key.String() == "shift+tab" {
			step = len(m.widgets()) - 1
		}
		return handler.Handled(m.focusWidget((m.Focus + step) % len(m.widgets())))
	case keymap.ActionHelp:
		m.Help.SetContexts([]string{"global", m.focusedContext()})
		m.HelpVisible = true
		return handler.HandledNoCmd
	default:
		return handler.NotHandled
	}
}

func (m *Model) handleWidgetKeys(key tea.KeyMsg) handler.Result {
	_, cmd := m.focused().Update(key)
	return handler.Handled(cmd)
}

// focusWidget blurs the current widget, which closes its tray, and focuses
// the widget at index i.
func (m *Model) focusWidget(i int) tea.Cmd {
	if i == m.Focus {
		return nil
	}
	blur := m.focused().Blur()
	m.Focus = i
	return tea.Batch(blur, m.focused().Focus())
}
