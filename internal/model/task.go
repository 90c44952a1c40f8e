package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSection = errors.New("model: invalid section kind")
	ErrEmptySection   = errors.New("model: section has no tasks")
)

// taskNamespace seeds name-based task ids so a catalog entry keeps the same
// id across runs.
var taskNamespace = uuid.MustParse("5f1c2a9e-4b7d-4c1e-9a3f-0d6b8e2c7a41")

type SectionKind string

const (
	SectionOpening SectionKind = "opening"
	SectionHourly  SectionKind = "hourly"
	SectionClosing SectionKind = "closing"
)

func (k SectionKind) IsValid() bool {
	switch k {
	case SectionOpening, SectionHourly, SectionClosing:
		return true
	default:
		return false
	}
}

// Task is one checklist item. An empty Time means the task has no scheduled
// time label.
type Task struct {
	ID      string
	Time    string
	Title   string
	Details string
}

func NewTask(kind SectionKind, timeLabel, title, details string) Task {
	return Task{
		ID:      TaskID(kind, title),
		Time:    strings.TrimSpace(timeLabel),
		Title:   title,
		Details: details,
	}
}

func TaskID(kind SectionKind, title string) string {
	key := string(kind) + "/" + strings.ToLower(strings.TrimSpace(title))
	return uuid.NewSHA1(taskNamespace, []byte(key)).String()
}

func (t Task) HasTime() bool {
	return strings.TrimSpace(t.Time) != ""
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	return nil
}

type Section struct {
	Kind     SectionKind
	Title    string
	Subtitle string
	Tasks    []Task
}

func (s Section) Validate() error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSection, s.Kind)
	}
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("model: section title is required")
	}
	if len(s.Tasks) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptySection, s.Kind)
	}
	for _, task := range s.Tasks {
		if err := task.Validate(); err != nil {
			return fmt.Errorf("section %s: %w", s.Kind, err)
		}
	}
	return nil
}

// Clone returns a copy that shares no backing array with s.
func (s Section) Clone() Section {
	out := s
	out.Tasks = append([]Task(nil), s.Tasks...)
	return out
}
