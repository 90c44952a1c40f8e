package checklist

import "sort"

// Tracker is the completion set: the ids of tasks currently marked done.
// It is not safe for concurrent use; a single controller owns it.
type Tracker struct {
	done map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{done: make(map[string]struct{})}
}

// Toggle flips id and reports whether it is now complete. Ids outside the
// catalog are accepted like any other.
func (t *Tracker) Toggle(id string) bool {
	if t.done == nil {
		t.done = make(map[string]struct{})
	}
	if _, ok := t.done[id]; ok {
		delete(t.done, id)
		return false
	}
	t.done[id] = struct{}{}
	return true
}

func (t *Tracker) IsComplete(id string) bool {
	_, ok := t.done[id]
	return ok
}

func (t *Tracker) Clear() {
	clear(t.done)
}

func (t *Tracker) Len() int {
	return len(t.done)
}

func (t *Tracker) IDs() []string {
	out := make([]string, 0, len(t.done))
	for id := range t.done {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
