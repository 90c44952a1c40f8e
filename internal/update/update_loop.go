package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler == nil {
		return nil
	}
	return tea.Batch(waitForDueCmd(m.Scheduler.C()), m.reminderSpinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}

		switch typed.String() {
		case "/":
			return m.openPalette(), nil
		case m.Keys.Dashboard:
			m.CurrentTab = TabDashboard
			return m, nil
		case m.Keys.Inventory:
			m.CurrentTab = TabInventory
			return m, nil
		case m.Keys.Checklist:
			m.CurrentTab = TabChecklist
			return m, nil
		case m.Keys.NextTab:
			m.CurrentTab = cycleTab(m.CurrentTab, 1)
			return m, nil
		case m.Keys.PrevTab:
			m.CurrentTab = cycleTab(m.CurrentTab, -1)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.CurrentTab {
		case TabInventory:
			return m.handleInventoryKey(typed)
		case TabChecklist:
			return m.handleChecklistKey(typed)
		}
	case progress.FrameMsg:
		return m.updateProgress(typed)
	case spinner.TickMsg:
		m.spinnerActive = m.remindersArmed()
		if !m.spinnerActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.reminderSpinner, cmd = m.reminderSpinner.Update(typed)
		return m, cmd
	case SwitchTabMsg:
		if isKnownTab(typed.Tab) {
			m.CurrentTab = typed.Tab
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.setError(typed.Err)
		return m, nil
	case ReminderDueMsg:
		m.applyDue(typed.Event)
		if m.Scheduler != nil {
			return m, waitForDueCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentTab {
	case TabDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderActivityView()
	case TabInventory:
		leftPane = m.renderInventoryView()
		rightPane = m.renderInventoryNotes()
	case TabChecklist:
		leftPane = m.renderChecklistView()
		rightPane = m.renderTaskDetailPane()
	}
	rightPane = joinNonEmpty(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	tabs := make([]views.TabData, 0, len(tabOrder))
	for i, t := range tabOrder {
		tabs = append(tabs, views.TabData{Title: string(t), Key: fmt.Sprint(i + 1), Active: t == m.CurrentTab})
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("backalley | %s", m.CurrentTab),
		Tabs:         tabs,
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		IsError:      m.Status.IsError,
		Notification: joinNonEmpty(m.renderReminderLine(), m.renderNotificationsView()),
		Footer:       fmt.Sprintf("keys: %s/%s/%s tabs | %s next | / cmd | %s help | %s quit", m.Keys.Dashboard, m.Keys.Inventory, m.Keys.Checklist, m.Keys.NextTab, m.Keys.Help, m.Keys.Quit),
	})
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, "\n\n")
}
