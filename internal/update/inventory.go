package update

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/model"
	"github.com/sandeepkv93/backalley/internal/views"
)

func (m Model) handleInventoryKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.Inventory.Cursor++
	case "k", "up":
		m.Inventory.Cursor--
	case "+", "=", "l", "right":
		m.stepSelected(1)
	case "-", "_", "h", "left":
		m.stepSelected(-1)
	case "r":
		if err := m.resetInventory(); err != nil {
			m.setError(err)
		}
	}
	m.clampCursors()
	return m, nil
}

func (m *Model) stepSelected(delta int) {
	if len(m.Inventory.Items) == 0 {
		return
	}
	item := m.Inventory.Items[clampIndex(m.Inventory.Cursor, len(m.Inventory.Items))]
	if _, err := m.adjustItem(item.ID, delta); err != nil {
		m.setError(err)
	}
}

// adjustItem steps one item and refreshes the cached row. The status line
// reports a step that hit a bound.
func (m *Model) adjustItem(id string, delta int) (model.InventoryItem, error) {
	before, _ := m.cachedItem(id)
	item, err := m.inventory.Adjust(m.ctx, id, delta)
	if err != nil {
		m.Inventory.Err = err.Error()
		return model.InventoryItem{}, err
	}
	m.Inventory.Err = ""
	for i := range m.Inventory.Items {
		if m.Inventory.Items[i].ID == item.ID {
			m.Inventory.Items[i] = item
		}
	}
	if item.Quantity == before.Quantity {
		m.Status = StatusBar{Text: fmt.Sprintf("%s already at %d", item.Name, item.Quantity)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("%s: %d", item.Name, item.Quantity)}
	}
	return item, nil
}

func (m *Model) resetInventory() error {
	if err := m.inventory.Reset(m.ctx); err != nil {
		m.Inventory.Err = err.Error()
		return err
	}
	items, err := m.inventory.List(m.ctx)
	if err != nil {
		m.Inventory.Err = err.Error()
		return err
	}
	m.Inventory.Items = items
	m.Inventory.Err = ""
	log.Printf("inventory reset")
	m.Status = StatusBar{Text: "inventory reset"}
	m.notify("Inventory", "quantities restored", "info")
	return nil
}

func (m Model) cachedItem(id string) (model.InventoryItem, bool) {
	for _, item := range m.Inventory.Items {
		if item.ID == id {
			return item, true
		}
	}
	return model.InventoryItem{}, false
}

func (m Model) renderInventoryView() string {
	rows := make([]views.InventoryRowData, 0, len(m.Inventory.Items))
	for _, item := range m.Inventory.Items {
		rows = append(rows, views.InventoryRowData{
			Name:     item.Name,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			AtMin:    item.Quantity <= model.MinQuantity,
			AtMax:    item.Quantity >= model.MaxQuantity,
		})
	}
	return views.RenderInventoryPanel(views.InventoryPanelData{
		Items:    rows,
		Selected: m.Inventory.Cursor,
		Err:      m.Inventory.Err,
	})
}

func (m Model) renderInventoryNotes() string {
	item, ok := m.selectedItem()
	if !ok {
		return ""
	}
	return fmt.Sprintf("selected: %s\nquantity: %d (range %d-%d)\nnote: %s",
		item.Name, item.Quantity, model.MinQuantity, model.MaxQuantity, item.Notes)
}

func (m Model) selectedItem() (model.InventoryItem, bool) {
	if len(m.Inventory.Items) == 0 {
		return model.InventoryItem{}, false
	}
	return m.Inventory.Items[clampIndex(m.Inventory.Cursor, len(m.Inventory.Items))], true
}
