package update

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/model"
	"github.com/sandeepkv93/backalley/internal/views"
)

func (m *Model) clampCursors() {
	m.Checklist.Cursor = clampIndex(m.Checklist.Cursor, m.checklist.Catalog().Len())
	m.Inventory.Cursor = clampIndex(m.Inventory.Cursor, len(m.Inventory.Items))
}

func (m Model) selectedTask() (model.Task, bool) {
	return m.checklist.Catalog().TaskAt(m.Checklist.Cursor)
}

func (m Model) handleChecklistKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.Checklist.Cursor++
	case "k", "up":
		m.Checklist.Cursor--
	case "g", "home":
		m.Checklist.Cursor = 0
	case "G", "end":
		m.Checklist.Cursor = m.checklist.Catalog().Len() - 1
	case " ", "enter", "x":
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.toggleTask(task.ID)
	case "r":
		return m.resetChecklist()
	case "pgdown", "pgup", "ctrl+d", "ctrl+u":
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	m.syncBubbleData()
	return m, nil
}

func (m Model) toggleTask(id string) (Model, tea.Cmd) {
	done := m.checklist.Toggle(id)
	title := id
	if task, ok := m.checklist.Catalog().Lookup(id); ok {
		title = task.Title
	}
	text := fmt.Sprintf("not done: %s", title)
	if done {
		text = fmt.Sprintf("done: %s", title)
	}
	m.Status = StatusBar{Text: text}
	m.syncBubbleData()
	return m, m.checklistProgress.SetPercent(ratio(m.checklist.Progress()))
}

// resetChecklist clears every completion and animates the progress bar back
// to empty.
func (m Model) resetChecklist() (Model, tea.Cmd) {
	m.checklist.ResetChecklist()
	log.Printf("checklist reset")
	m.Status = StatusBar{Text: "checklist reset"}
	m.notify("Checklist", "all tasks marked not done", "info")
	m.syncBubbleData()
	return m, m.checklistProgress.SetPercent(0)
}

func (m Model) updateProgress(msg progress.FrameMsg) (Model, tea.Cmd) {
	next, cmd := m.checklistProgress.Update(msg)
	if pm, ok := next.(progress.Model); ok {
		m.checklistProgress = pm
	}
	return m, cmd
}

func (m Model) renderChecklistView() string {
	sections := m.checklist.View()
	data := views.ChecklistPanelData{
		Sections:     make([]views.ChecklistSectionData, 0, len(sections)),
		Selected:     m.Checklist.Cursor + 1,
		ProgressView: m.checklistProgress.View(),
		Resetting:    m.checklistProgress.IsAnimating(),
	}
	data.Done, data.Total = m.checklist.Progress()

	n := 0
	for _, section := range sections {
		sd := views.ChecklistSectionData{
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Done:     section.Done,
			Total:    section.Total,
			Items:    make([]views.ChecklistItemData, 0, len(section.Records)),
		}
		for _, rec := range section.Records {
			n++
			label, _ := rec.TimeLabel()
			sd.Items = append(sd.Items, views.ChecklistItemData{
				Number:    n,
				Title:     rec.Task.Title,
				TimeLabel: label,
				Done:      rec.Indicator() == checklist.IndicatorDone,
			})
		}
		data.Sections = append(data.Sections, sd)
	}
	return views.RenderChecklistPanel(data)
}

func (m Model) renderTaskDetailPane() string {
	task, ok := m.selectedTask()
	if !ok {
		return views.RenderTaskDetail(views.TaskDetailData{})
	}
	section := ""
	for _, s := range m.checklist.View() {
		for _, rec := range s.Records {
			if rec.Task.ID == task.ID {
				section = s.Title
			}
		}
	}
	rec := checklist.Record{Task: task, IsComplete: m.checklist.IsComplete(task.ID)}
	label, _ := rec.TimeLabel()
	return views.RenderTaskDetail(views.TaskDetailData{
		Number:      m.Checklist.Cursor + 1,
		Title:       task.Title,
		Section:     section,
		TimeLabel:   label,
		Done:        rec.IsComplete,
		DetailsView: m.detailViewport.View(),
	})
}
