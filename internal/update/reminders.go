package update

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/scheduler"
)

func waitForDueCmd(ch <-chan scheduler.DueEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}

// applyDue surfaces a walkthrough reminder unless its task is already done.
// It reports whether the reminder was shown.
func (m *Model) applyDue(ev scheduler.DueEvent) bool {
	if m.checklist.IsComplete(ev.TaskID) {
		log.Printf("reminder skipped, task done: %s", ev.Title)
		return false
	}
	m.ReminderLog = append(m.ReminderLog, ev)
	if len(m.ReminderLog) > 20 {
		m.ReminderLog = m.ReminderLog[len(m.ReminderLog)-20:]
	}
	text := fmt.Sprintf("due: %s (%s)", ev.Title, strings.ToUpper(ev.Label))
	m.Status = StatusBar{Text: text}
	m.notify("Reminder", text, "info")
	log.Printf("reminder fired: %s", ev.Title)
	return true
}

func (m Model) remindersArmed() bool {
	return m.Scheduler != nil && m.Scheduler.Pending() > 0
}

func (m Model) renderReminderLine() string {
	var parts []string
	if m.spinnerActive {
		parts = append(parts, fmt.Sprintf("reminders: %s %d armed", m.reminderSpinner.View(), m.Scheduler.Pending()))
	}
	if len(m.ReminderLog) > 0 {
		last := m.ReminderLog[len(m.ReminderLog)-1]
		parts = append(parts, fmt.Sprintf("last-reminder: %s @ %s", last.Title, last.TriggerAt.Format("15:04")))
	}
	return strings.Join(parts, "\n")
}
