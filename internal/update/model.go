package update

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/dashboard"
	"github.com/sandeepkv93/backalley/internal/inventory"
	"github.com/sandeepkv93/backalley/internal/model"
	"github.com/sandeepkv93/backalley/internal/scheduler"
)

type Tab string

const (
	TabDashboard Tab = "Dashboard"
	TabInventory Tab = "Inventory"
	TabChecklist Tab = "Omni Checklist"
)

var tabOrder = []Tab{TabDashboard, TabInventory, TabChecklist}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Inventory string
	Checklist string
	NextTab   string
	PrevTab   string
	Help      string
	Quit      string
}

// Deps are the screen backends the model drives. Checklist and Dashboard fall
// back to the seeded data when left zero.
type Deps struct {
	Checklist *checklist.Controller
	Inventory *inventory.Service
	Scheduler *scheduler.Engine
	Dashboard *dashboard.Snapshot
}

type Model struct {
	CurrentTab    Tab
	Dashboard     dashboard.Snapshot
	Checklist     ChecklistState
	Inventory     InventoryState
	Scheduler     *scheduler.Engine
	ReminderLog   []scheduler.DueEvent
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx       context.Context
	checklist *checklist.Controller
	inventory *inventory.Service

	revenueTable      table.Model
	commandInput      textinput.Model
	checklistProgress progress.Model
	reminderSpinner   spinner.Model
	helpModel         help.Model
	detailViewport    viewport.Model
	spinnerActive     bool
}

type ChecklistState struct {
	Cursor int
}

type InventoryState struct {
	Items  []model.InventoryItem
	Cursor int
	Err    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type SwitchTabMsg struct {
	Tab Tab
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReminderDueMsg struct {
	Event scheduler.DueEvent
}

// NewModel builds the shell with the runtime config applied. The inventory
// service is required; everything else has a seeded default.
func NewModel(ctx context.Context, deps Deps, cfg RuntimeConfig) (Model, error) {
	if deps.Inventory == nil {
		return Model{}, errors.New("update: inventory service is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctl := deps.Checklist
	if ctl == nil {
		ctl = checklist.NewController(checklist.DefaultCatalog())
	}
	snap := dashboard.Default()
	if deps.Dashboard != nil {
		snap = *deps.Dashboard
	}

	m := Model{
		CurrentTab: TabDashboard,
		Dashboard:  snap,
		Scheduler:  deps.Scheduler,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Inventory: "2",
			Checklist: "3",
			NextTab:   "tab",
			PrevTab:   "shift+tab",
			Help:      "?",
			Quit:      "q",
		},
		ctx:       ctx,
		checklist: ctl,
		inventory: deps.Inventory,
	}
	if tab, ok := parseTab(cfg.StartTab); ok {
		m.CurrentTab = tab
	}

	items, err := m.inventory.List(ctx)
	if err != nil {
		return Model{}, err
	}
	m.Inventory.Items = items

	m.initBubbleComponents()
	m.syncBubbleData()
	return m, nil
}

func (m Model) ChecklistController() *checklist.Controller {
	return m.checklist
}
