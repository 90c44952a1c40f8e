package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/backalley/internal/views"
)

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Source", Width: 18},
		{Title: "Amount", Width: 10},
		{Title: "Share", Width: 6},
	}
	m.revenueTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(false), table.WithHeight(4))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.checklistProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())

	m.reminderSpinner = spinner.New()
	m.reminderSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.detailViewport = viewport.New(54, 10)
}

func (m *Model) syncBubbleData() {
	rows := make([]table.Row, 0, len(m.Dashboard.Revenue))
	for _, r := range m.Dashboard.Revenue {
		rows = append(rows, table.Row{r.Source, r.Amount, r.Share})
	}
	m.revenueTable.SetRows(rows)

	m.clampCursors()
	if task, ok := m.selectedTask(); ok {
		md := fmt.Sprintf("## %s\n\n%s", task.Title, task.Details)
		if strings.TrimSpace(task.Details) == "" {
			md = fmt.Sprintf("## %s\n\n_No extra details._", task.Title)
		}
		m.detailViewport.SetContent(views.RenderMarkdownWidth(md, m.detailViewport.Width-2))
	} else {
		m.detailViewport.SetContent("")
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Error", err.Error(), "error")
}
