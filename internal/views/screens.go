package views

import (
	"fmt"
	"strings"
)

type MetricData struct {
	Title    string
	Value    string
	Trend    string
	Arrow    string
	Positive bool
}

type ActivityData struct {
	Title     string
	Subtitle  string
	Timestamp string
}

type DashboardPanelData struct {
	Title        string
	Subtitle     string
	Metrics      []MetricData
	RevenueTable string
	TopExpense   string
	NextPayroll  string
	Activity     []ActivityData
}

type InventoryRowData struct {
	Name     string
	Quantity int
	Notes    string
	AtMin    bool
	AtMax    bool
}

type InventoryPanelData struct {
	Items    []InventoryRowData
	Selected int
	Err      string
}

type ChecklistItemData struct {
	Number    int
	Title     string
	TimeLabel string
	Done      bool
}

type ChecklistSectionData struct {
	Title    string
	Subtitle string
	Done     int
	Total    int
	Items    []ChecklistItemData
}

type ChecklistPanelData struct {
	Sections     []ChecklistSectionData
	Selected     int
	ProgressView string
	Done         int
	Total        int
	Resetting    bool
}

type TaskDetailData struct {
	Number      int
	Title       string
	Section     string
	TimeLabel   string
	Done        bool
	DetailsView string
}

type HelpPanelData struct {
	CurrentTab string
	Bindings   []string
	HelpView   string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Title) + "\n")
	b.WriteString(dimStyle.Render(data.Subtitle) + "\n\n")
	for _, metric := range data.Metrics {
		trend := fmt.Sprintf("%s %s", metric.Arrow, metric.Trend)
		if metric.Positive {
			trend = positiveStyle.Render(trend)
		} else {
			trend = negativeStyle.Render(trend)
		}
		b.WriteString(fmt.Sprintf("%-26s %s\n", metric.Title, metric.Value))
		b.WriteString(fmt.Sprintf("  %s\n", trend))
	}
	b.WriteString("\nrevenue breakdown:\n")
	b.WriteString(data.RevenueTable + "\n")
	b.WriteString(fmt.Sprintf("\ntop expense: %s\n", data.TopExpense))
	b.WriteString(fmt.Sprintf("next payroll: %s\n", data.NextPayroll))
	return strings.TrimSpace(b.String())
}

func RenderActivityPanel(items []ActivityData) string {
	var b strings.Builder
	b.WriteString("recent activity:\n")
	if len(items) == 0 {
		b.WriteString("  (none)")
		return b.String()
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("\n• %s  %s\n", item.Title, dimStyle.Render(item.Timestamp)))
		b.WriteString(fmt.Sprintf("  %s\n", item.Subtitle))
	}
	return strings.TrimSpace(b.String())
}

func RenderInventoryPanel(data InventoryPanelData) string {
	var b strings.Builder
	b.WriteString("omni arena inventory:\n")
	b.WriteString("actions: [j/k]move [+/-]step [r]reset\n\n")
	if data.Err != "" {
		b.WriteString(errorStyle.Render("error: "+data.Err) + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no items)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Selected {
			cursor = ">"
		}
		minus, plus := "-", "+"
		if item.AtMin {
			minus = dimStyle.Render("-")
		}
		if item.AtMax {
			plus = dimStyle.Render("+")
		}
		b.WriteString(fmt.Sprintf("%s %-14s [%s] %2d [%s]\n", cursor, item.Name, minus, item.Quantity, plus))
		b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(item.Notes)))
	}
	return strings.TrimSpace(b.String())
}

func RenderChecklistPanel(data ChecklistPanelData) string {
	var b strings.Builder
	b.WriteString("omni checklist:\n")
	b.WriteString("actions: [j/k]move [space]toggle [r]reset\n")
	progress := fmt.Sprintf("progress: %s %d/%d", data.ProgressView, data.Done, data.Total)
	if data.Resetting {
		progress += " (resetting)"
	}
	b.WriteString(progress + "\n")
	for _, section := range data.Sections {
		b.WriteString(fmt.Sprintf("\n%s (%d/%d):\n", section.Title, section.Done, section.Total))
		if section.Subtitle != "" {
			b.WriteString(dimStyle.Render(section.Subtitle) + "\n")
		}
		for _, item := range section.Items {
			cursor := " "
			if item.Number == data.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox(item.Done), item.Title))
			if item.TimeLabel != "" {
				b.WriteString(fmt.Sprintf("      %s\n", dimStyle.Render(item.TimeLabel)))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(data TaskDetailData) string {
	if strings.TrimSpace(data.Title) == "" {
		return "details:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("#%d %s\n", data.Number, data.Title))
	b.WriteString(fmt.Sprintf("section: %s\n", data.Section))
	if data.TimeLabel != "" {
		b.WriteString(fmt.Sprintf("time: %s\n", data.TimeLabel))
	}
	status := "not done"
	if data.Done {
		status = "done"
	}
	b.WriteString(fmt.Sprintf("status: %s\n\n", status))
	b.WriteString(data.DetailsView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s:\n%s\n\n%s",
		strings.ToLower(data.CurrentTab),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func checkbox(done bool) string {
	if done {
		return positiveStyle.Render("[x]")
	}
	return "[ ]"
}
