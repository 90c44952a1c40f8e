package update

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/inventory"
	"github.com/sandeepkv93/backalley/internal/scheduler"
	"github.com/sandeepkv93/backalley/internal/storage"
)

func newTestModel(t *testing.T, cfg RuntimeConfig, engine *scheduler.Engine) Model {
	t.Helper()
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	svc, err := inventory.NewService(context.Background(), repo, inventory.Seed())
	if err != nil {
		t.Fatalf("new inventory service: %v", err)
	}
	m, err := NewModel(context.Background(), Deps{Inventory: svc, Scheduler: engine}, cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	if m.CurrentTab != TabDashboard {
		t.Fatalf("expected default tab %q, got %q", TabDashboard, m.CurrentTab)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if len(m.Inventory.Items) != 4 {
		t.Fatalf("expected seeded inventory, got %d items", len(m.Inventory.Items))
	}
	if done, total := m.ChecklistController().Progress(); done != 0 || total != 18 {
		t.Fatalf("unexpected checklist progress %d/%d", done, total)
	}
}

func TestNewModelRequiresInventory(t *testing.T) {
	if _, err := NewModel(context.Background(), Deps{}, DefaultRuntimeConfig()); err == nil {
		t.Fatal("expected error without inventory service")
	}
}

func TestStartTabFromConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.StartTab = "checklist"
	m := newTestModel(t, cfg, nil)
	if m.CurrentTab != TabChecklist {
		t.Fatalf("expected checklist start tab, got %q", m.CurrentTab)
	}
}

func TestUpdateKeySwitchesTab(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)

	next, _ := press(m, "3")
	if next.CurrentTab != TabChecklist {
		t.Fatalf("expected checklist tab, got %q", next.CurrentTab)
	}
	next, _ = press(next, "tab")
	if next.CurrentTab != TabDashboard {
		t.Fatalf("expected tab to wrap to dashboard, got %q", next.CurrentTab)
	}
	next, _ = press(next, "shift+tab")
	if next.CurrentTab != TabChecklist {
		t.Fatalf("expected shift+tab to wrap to checklist, got %q", next.CurrentTab)
	}
	next, _ = press(next, "2")
	if next.CurrentTab != TabInventory {
		t.Fatalf("expected inventory tab, got %q", next.CurrentTab)
	}
}

func TestUpdateSwitchTabMsg(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	updated, _ := m.Update(SwitchTabMsg{Tab: TabInventory})
	next := updated.(Model)
	if next.CurrentTab != TabInventory {
		t.Fatalf("expected inventory tab, got %q", next.CurrentTab)
	}

	updated, _ = next.Update(SwitchTabMsg{Tab: Tab("Payroll")})
	next = updated.(Model)
	if next.CurrentTab != TabInventory {
		t.Fatalf("expected tab unchanged for unknown tab, got %q", next.CurrentTab)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	if !strings.Contains(next.View(), "status: error: boom") {
		t.Fatalf("expected error in view:\n%s", next.View())
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	next, cmd := press(m, "q")
	if !next.Quitting || cmd == nil {
		t.Fatalf("expected quit, quitting=%v cmd=%v", next.Quitting, cmd != nil)
	}
}

func TestDashboardViewShowsSnapshot(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	view := m.View()
	for _, want := range []string{"Back Alley Lanes", "$42,560", "Monthly Expenses", "Food & Beverage", "Staffing · $9,450", "League Night Booked"} {
		if !strings.Contains(view, want) {
			t.Fatalf("dashboard view missing %q:\n%s", want, view)
		}
	}
}

func TestChecklistToggleWithSpace(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	ctl := m.ChecklistController()
	first, _ := ctl.Catalog().TaskAt(0)

	next, cmd := press(m, "3", " ")
	if !ctl.IsComplete(first.ID) {
		t.Fatalf("expected %q complete after space", first.Title)
	}
	if cmd == nil {
		t.Fatal("expected progress animation command")
	}
	if next.Status.Text != "done: Power on Omni Arena" {
		t.Fatalf("unexpected status: %q", next.Status.Text)
	}
	if !strings.Contains(next.View(), "[x] Power on Omni Arena") {
		t.Fatalf("expected done marker in view:\n%s", next.View())
	}

	next, _ = press(next, "enter")
	if ctl.IsComplete(first.ID) {
		t.Fatal("expected second toggle to restore not done")
	}
}

func TestChecklistShowsUpperCasedTimeOnlyWhenPresent(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	next, _ := press(m, "3")
	view := next.View()
	if !strings.Contains(view, "10:30–10:45 AM") || !strings.Contains(view, "10:00 PM TUE–THU / 11:00 PM FRI–SAT") {
		t.Fatalf("expected upper-cased time labels:\n%s", view)
	}
	if !strings.Contains(view, "Start at 10 PM (Tue–Thu) or 11 PM (Fri–Sat).") {
		t.Fatalf("expected closing subtitle:\n%s", view)
	}
}

func TestChecklistCursorAndReset(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	ctl := m.ChecklistController()

	next, _ := press(m, "3", "k")
	if next.Checklist.Cursor != 0 {
		t.Fatalf("cursor should stay at 0, got %d", next.Checklist.Cursor)
	}
	next, _ = press(next, " ", "j", "j", " ", "G", " ")
	if next.Checklist.Cursor != ctl.Catalog().Len()-1 {
		t.Fatalf("expected cursor on last task, got %d", next.Checklist.Cursor)
	}
	if done, _ := ctl.Progress(); done != 3 {
		t.Fatalf("expected 3 done, got %d", done)
	}

	next, cmd := press(next, "r")
	if done, _ := ctl.Progress(); done != 0 {
		t.Fatalf("expected reset to clear progress, got %d done", done)
	}
	if cmd == nil {
		t.Fatal("expected reset animation command")
	}
	if next.Status.Text != "checklist reset" {
		t.Fatalf("unexpected status: %q", next.Status.Text)
	}
	if len(next.Notifications) == 0 {
		t.Fatal("expected reset notification")
	}
}

func TestInventoryStepperAndReset(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)

	next, _ := press(m, "2", "+")
	if next.Inventory.Items[0].Quantity != 9 {
		t.Fatalf("expected 9 headsets, got %d", next.Inventory.Items[0].Quantity)
	}
	next, _ = press(next, "j", "-", "-")
	if next.Inventory.Items[1].Quantity != 14 {
		t.Fatalf("expected 14 controllers, got %d", next.Inventory.Items[1].Quantity)
	}
	if next.Status.Text != "Controllers: 14" {
		t.Fatalf("unexpected status: %q", next.Status.Text)
	}

	next, _ = press(next, "r")
	if next.Inventory.Items[0].Quantity != 8 || next.Inventory.Items[1].Quantity != 16 {
		t.Fatalf("expected seed quantities after reset, got %+v", next.Inventory.Items)
	}
}

func TestInventoryStepStopsAtBounds(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	next, _ := press(m, "2")
	for i := 0; i < 10; i++ {
		next, _ = press(next, "-")
	}
	if next.Inventory.Items[0].Quantity != 0 {
		t.Fatalf("expected floor at 0, got %d", next.Inventory.Items[0].Quantity)
	}
	if next.Status.Text != "VR Headsets already at 0" {
		t.Fatalf("unexpected status: %q", next.Status.Text)
	}
}

func TestPaletteCommands(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	ctl := m.ChecklistController()

	next, _ := press(m, "/", "toggle 7", "enter")
	task, _ := ctl.Catalog().TaskAt(6)
	if !ctl.IsComplete(task.ID) {
		t.Fatalf("expected task 7 %q complete", task.Title)
	}
	if next.Palette.Active {
		t.Fatal("palette should close after enter")
	}

	next, _ = press(next, "/", "adjust vr +100", "enter")
	if next.Inventory.Items[0].Quantity != 50 {
		t.Fatalf("expected clamp to 50, got %d", next.Inventory.Items[0].Quantity)
	}

	next, _ = press(next, "/", "show inventory", "enter")
	if next.CurrentTab != TabInventory {
		t.Fatalf("expected inventory tab, got %q", next.CurrentTab)
	}

	next, _ = press(next, "/", "reset checklist", "enter")
	if done, _ := ctl.Progress(); done != 0 {
		t.Fatalf("expected checklist reset, got %d done", done)
	}
}

func TestPaletteErrorsLandInStatus(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)

	next, _ := press(m, "/", "bogus", "enter")
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %+v", next.Status)
	}

	next, _ = press(next, "/", "toggle 99", "enter")
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "invalid_argument") {
		t.Fatalf("expected invalid argument error, got %+v", next.Status)
	}

	next, _ = press(next, "/", "adjust bowling +1", "enter")
	if !next.Status.IsError {
		t.Fatalf("expected unknown item error, got %+v", next.Status)
	}

	next, _ = press(next, "/", "esc")
	if next.Palette.Active || next.Status.Text != "command palette closed" {
		t.Fatalf("expected palette closed, got %+v %+v", next.Palette, next.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	next, _ := press(m, "3", "?")
	if !next.HelpVisible || !strings.Contains(next.View(), "toggle done") {
		t.Fatalf("expected checklist help in view:\n%s", next.View())
	}
	next, _ = press(next, "?")
	if next.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestInitWithSchedulerReturnsReminderCmd(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := newTestModel(t, DefaultRuntimeConfig(), engine)
	if m.Init() == nil {
		t.Fatal("expected init command with scheduler")
	}

	plain := newTestModel(t, DefaultRuntimeConfig(), nil)
	if plain.Init() != nil {
		t.Fatal("expected no init command without scheduler")
	}
}

func TestReminderDueMsgShowsPendingTask(t *testing.T) {
	engine := scheduler.NewEngine(4)
	m := newTestModel(t, DefaultRuntimeConfig(), engine)
	task, _ := m.ChecklistController().Catalog().TaskAt(6)

	updated, cmd := m.Update(ReminderDueMsg{Event: scheduler.DueEvent{
		TaskID:    task.ID,
		Title:     task.Title,
		Label:     task.Time,
		TriggerAt: time.Now(),
	}})
	next := updated.(Model)
	if next.Status.Text != "due: Refresh waiting area (1:00 PM)" {
		t.Fatalf("unexpected reminder status: %q", next.Status.Text)
	}
	if len(next.ReminderLog) != 1 || cmd == nil {
		t.Fatalf("expected reminder logged and rearmed, log=%d cmd=%v", len(next.ReminderLog), cmd != nil)
	}
}

func TestReminderDueMsgSkipsCompletedTask(t *testing.T) {
	m := newTestModel(t, DefaultRuntimeConfig(), nil)
	task, _ := m.ChecklistController().Catalog().TaskAt(6)
	m.ChecklistController().Toggle(task.ID)

	updated, _ := m.Update(ReminderDueMsg{Event: scheduler.DueEvent{TaskID: task.ID, Title: task.Title, Label: task.Time, TriggerAt: time.Now()}})
	next := updated.(Model)
	if strings.HasPrefix(next.Status.Text, "due:") || len(next.ReminderLog) != 0 {
		t.Fatalf("expected completed task reminder to be skipped, status=%q", next.Status.Text)
	}
}

func TestCustomChecklistController(t *testing.T) {
	repo, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "inventory.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()
	svc, err := inventory.NewService(context.Background(), repo, inventory.Seed())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctl := checklist.NewController(checklist.DefaultCatalog())
	m, err := NewModel(context.Background(), Deps{Checklist: ctl, Inventory: svc}, DefaultRuntimeConfig())
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if m.ChecklistController() != ctl {
		t.Fatal("expected injected controller to be used")
	}
}
