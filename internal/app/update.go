package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/errmsg"
	"github.com/llehouerou/dropwidgets/internal/ui/action"
	"github.com/llehouerou/dropwidgets/internal/ui/combobox"
	"github.com/llehouerou/dropwidgets/internal/ui/helpbindings"
	"github.com/llehouerou/dropwidgets/internal/ui/multiselect"
	"github.com/llehouerou/dropwidgets/internal/ui/transition"
)

// Update handles messages and returns updated model and commands. Frame
// commands queued by the driver while handling msg are always collected.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case transition.FrameMsg:
		cmd, _ = m.Driver.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case action.Msg:
		m.handleAction(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	return m, tea.Batch(cmd, m.Driver.Cmd())
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	w := min(max(msg.Width-4, 0), 60)
	m.Fruit.SetSize(w, 0)
	m.Tags.SetSize(w, 0)
	m.Help.SetSize(msg.Width, msg.Height)
}

func (m *Model) handleAction(msg action.Msg) {
	m.Log.Debug("action", "source", msg.Source, "type", msg.Action.ActionType())
	m.LastAction = msg.Source + ": " + msg.Action.ActionType()

	switch a := msg.Action.(type) {
	case combobox.Select[string]:
		m.StateMgr.RecordSelection(msg.Source, a.Item, a.Item)
	case multiselect.Select[string]:
		m.StateMgr.RecordSelection(msg.Source, a.Item, a.Item)
	case multiselect.Create:
		m.StateMgr.RecordSelection(msg.Source, a.Text, a.Text)
	case multiselect.Change[string]:
		if err := m.StateMgr.SaveValues(msg.Source, a.Values); err != nil {
			m.fail(errmsg.OpHistoryRecord, err)
			return
		}
	case helpbindings.Close:
		m.HelpVisible = false
	}
	m.ErrorMsg = ""
}
