// Package printers writes the seeded screens as plain tables for the
// non-interactive print commands.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/dashboard"
	"github.com/sandeepkv93/backalley/internal/model"
)

var (
	title    = color.New(color.Bold, color.Underline).SprintFunc()
	faint    = color.New(color.Faint).SprintFunc()
	positive = color.New(color.FgGreen).SprintFunc()
	negative = color.New(color.FgRed).SprintFunc()
)

type Pretty struct {
	Out io.Writer
}

func New(out io.Writer) *Pretty {
	if out == nil {
		out = color.Output
	}
	return &Pretty{Out: out}
}

// Checklist prints every section in catalog order. The time column is left
// blank for tasks with no scheduled time.
func (p *Pretty) Checklist(sections []checklist.SectionView) error {
	n := 0
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(p.Out)
		}
		fmt.Fprintf(p.Out, "%s (%d/%d)\n", title(s.Title), s.Done, s.Total)
		if s.Subtitle != "" {
			fmt.Fprintln(p.Out, faint(s.Subtitle))
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 60
		tbl.Wrap = true
		for _, rec := range s.Records {
			n++
			label, _ := rec.TimeLabel()
			tbl.AddRow(fmt.Sprintf("%2d", n), marker(rec.Indicator()), rec.Task.Title, label)
		}
		if _, err := fmt.Fprintln(p.Out, tbl); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pretty) Inventory(items []model.InventoryItem) error {
	fmt.Fprintln(p.Out, title("Omni Arena Inventory"))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ITEM", "QTY", "NOTES")
	for _, item := range items {
		tbl.AddRow(item.Name, item.Quantity, faint(item.Notes))
	}
	_, err := fmt.Fprintln(p.Out, tbl)
	return err
}

func (p *Pretty) Dashboard(s dashboard.Snapshot) error {
	fmt.Fprintln(p.Out, title(s.Title))
	fmt.Fprintln(p.Out, faint(s.Subtitle))
	fmt.Fprintln(p.Out)

	metrics := uitable.New()
	metrics.Separator = "  "
	for _, m := range s.Metrics {
		trend := m.TrendArrow() + " " + m.Trend
		if m.Positive {
			trend = positive(trend)
		} else {
			trend = negative(trend)
		}
		metrics.AddRow(m.Title, m.Value, trend)
	}
	fmt.Fprintln(p.Out, metrics)
	fmt.Fprintln(p.Out)

	revenue := uitable.New()
	revenue.Separator = "  "
	revenue.AddRow("SOURCE", "AMOUNT", "SHARE")
	for _, r := range s.Revenue {
		revenue.AddRow(r.Source, r.Amount, r.Share)
	}
	fmt.Fprintln(p.Out, revenue)
	fmt.Fprintln(p.Out)

	fmt.Fprintf(p.Out, "Top Expense   %s\n", s.TopExpense)
	fmt.Fprintf(p.Out, "Next Payroll  %s\n\n", s.NextPayroll)

	activity := uitable.New()
	activity.Separator = "  "
	for _, a := range s.Activity {
		activity.AddRow(a.Title, a.Subtitle, faint(a.Timestamp))
	}
	_, err := fmt.Fprintln(p.Out, activity)
	return err
}

func marker(ind checklist.Indicator) string {
	if ind == checklist.IndicatorDone {
		return positive("[x]")
	}
	return "[ ]"
}

// Names lists the printable screens.
func Names() []string {
	return []string{"checklist", "inventory", "dashboard"}
}

func IsKnown(name string) bool {
	for _, n := range Names() {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
