package checklist

// Controller owns the checklist screen state. Every mutation recomputes the
// projection and then notifies observers, in that order.
type Controller struct {
	catalog   *Catalog
	tracker   *Tracker
	view      []SectionView
	observers []func([]SectionView)
}

func NewController(c *Catalog) *Controller {
	ctl := &Controller{
		catalog: c,
		tracker: NewTracker(),
	}
	ctl.view = Render(ctl.catalog, ctl.tracker)
	return ctl
}

func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// OnChange registers fn to receive the fresh projection after each mutation.
func (c *Controller) OnChange(fn func([]SectionView)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

func (c *Controller) Toggle(id string) bool {
	done := c.tracker.Toggle(id)
	c.refresh()
	return done
}

// ResetChecklist marks every task not done. There is no confirmation or undo.
func (c *Controller) ResetChecklist() {
	c.tracker.Clear()
	c.refresh()
}

func (c *Controller) IsComplete(id string) bool {
	return c.tracker.IsComplete(id)
}

func (c *Controller) View() []SectionView {
	return c.view
}

// Progress counts completed catalog tasks. Unknown ids in the tracker are
// not counted.
func (c *Controller) Progress() (done, total int) {
	for _, s := range c.view {
		done += s.Done
		total += s.Total
	}
	return done, total
}

func (c *Controller) refresh() {
	c.view = Render(c.catalog, c.tracker)
	for _, fn := range c.observers {
		fn(c.view)
	}
}
