package checklist

import (
	"strings"

	"github.com/sandeepkv93/backalley/internal/model"
)

type CompletionReader interface {
	IsComplete(id string) bool
}

type Indicator string

const (
	IndicatorDone    Indicator = "done"
	IndicatorPending Indicator = "not-done"
)

type Record struct {
	Task       model.Task
	IsComplete bool
}

func (r Record) Indicator() Indicator {
	if r.IsComplete {
		return IndicatorDone
	}
	return IndicatorPending
}

// TimeLabel returns the upper-cased scheduled time. ok is false when the task
// has none and the slot should not be drawn.
func (r Record) TimeLabel() (label string, ok bool) {
	if !r.Task.HasTime() {
		return "", false
	}
	return strings.ToUpper(r.Task.Time), true
}

type SectionView struct {
	Kind     model.SectionKind
	Title    string
	Subtitle string
	Records  []Record
	Done     int
	Total    int
}

// Render joins the catalog with completion state, section by section, in
// catalog order. Nothing is sorted or filtered.
func Render(c *Catalog, done CompletionReader) []SectionView {
	out := make([]SectionView, 0, len(c.sections))
	for _, s := range c.sections {
		view := SectionView{
			Kind:     s.Kind,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Records:  make([]Record, 0, len(s.Tasks)),
			Total:    len(s.Tasks),
		}
		for _, task := range s.Tasks {
			complete := done.IsComplete(task.ID)
			if complete {
				view.Done++
			}
			view.Records = append(view.Records, Record{Task: task, IsComplete: complete})
		}
		out = append(out, view)
	}
	return out
}
