package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/commands"
	"github.com/sandeepkv93/backalley/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m = m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			task, ok := m.resolveTask(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task %q", a.Target)}
			}
			m, follow = m.toggleTask(task.ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Reset: func(a commands.ResetArgs) (commands.Result, error) {
			switch a.Scope {
			case commands.ResetInventory:
				if err := m.resetInventory(); err != nil {
					return commands.Result{}, err
				}
			default:
				m, follow = m.resetChecklist()
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Adjust: func(a commands.AdjustArgs) (commands.Result, error) {
			item, err := m.inventory.Find(m.ctx, a.Item)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			if _, err := m.adjustItem(item.ID, a.Delta); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			tab, ok := parseTab(a.Tab)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", a.Tab)}
			}
			m.CurrentTab = tab
			return commands.Result{Message: fmt.Sprintf("showing %s", tab)}, nil
		},
	})
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	return m, follow
}

// resolveTask accepts a 1-based position in checklist order or a task id.
func (m Model) resolveTask(target string) (model.Task, bool) {
	catalog := m.checklist.Catalog()
	if n, err := strconv.Atoi(target); err == nil {
		return catalog.TaskAt(n - 1)
	}
	return catalog.Lookup(target)
}
