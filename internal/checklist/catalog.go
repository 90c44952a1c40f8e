// Package checklist tracks completion of the operational checklist: an
// immutable task catalog, the set of completed task ids, and the per-section
// projection the screens render.
package checklist

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/backalley/internal/model"
)

var (
	ErrEmptyCatalog  = errors.New("checklist: catalog has no sections")
	ErrDuplicateTask = errors.New("checklist: duplicate task id")
)

// Catalog is the ordered, read-only set of checklist sections. It is built
// once and never mutated.
type Catalog struct {
	sections []model.Section
	index    map[string]model.Task
	order    []string
}

func NewCatalog(sections ...model.Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		sections: make([]model.Section, 0, len(sections)),
		index:    make(map[string]model.Task),
	}
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		for _, task := range s.Tasks {
			if _, dup := c.index[task.ID]; dup {
				return nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateTask, task.ID, task.Title)
			}
			c.index[task.ID] = task
			c.order = append(c.order, task.ID)
		}
		c.sections = append(c.sections, s.Clone())
	}
	return c, nil
}

// MustCatalog is NewCatalog for seed data known to be valid.
func MustCatalog(sections ...model.Section) *Catalog {
	c, err := NewCatalog(sections...)
	if err != nil {
		panic(err)
	}
	return c
}

// Sections returns the sections in display order. Callers get copies.
func (c *Catalog) Sections() []model.Section {
	out := make([]model.Section, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s.Clone())
	}
	return out
}

// Tasks flattens the catalog in section-then-task order.
func (c *Catalog) Tasks() []model.Task {
	out := make([]model.Task, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.index[id])
	}
	return out
}

func (c *Catalog) Lookup(id string) (model.Task, bool) {
	task, ok := c.index[id]
	return task, ok
}

// TaskAt returns the task at position i of Tasks.
func (c *Catalog) TaskAt(i int) (model.Task, bool) {
	if i < 0 || i >= len(c.order) {
		return model.Task{}, false
	}
	return c.index[c.order[i]], true
}

func (c *Catalog) IndexOf(id string) int {
	for i, candidate := range c.order {
		if candidate == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) Len() int {
	return len(c.order)
}
