package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/inventory"
	"github.com/sandeepkv93/backalley/internal/scheduler"
	"github.com/sandeepkv93/backalley/internal/storage"
	"github.com/sandeepkv93/backalley/internal/update"
)

type rootOptions struct {
	envFile      string
	startTab     string
	reminders    bool
	inventoryDSN string
	debugLog     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "backalley",
		Short:         "Back Alley Lanes employee dashboard, inventory and Omni checklist.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading BACKALLEY_* variables")
	flags.StringVar(&opts.inventoryDSN, "inventory-dsn", "", "sqlite DSN for the inventory store (default in-memory)")
	cmd.Flags().StringVar(&opts.startTab, "tab", "", "initial tab: dashboard, inventory or checklist")
	cmd.Flags().BoolVar(&opts.reminders, "reminders", false, "arm walkthrough reminders for today's timed tasks")
	cmd.Flags().StringVar(&opts.debugLog, "debug-log", "", "write debug logs to this file")

	cmd.AddCommand(newPrintCommand(opts))
	return cmd
}

// resolve layers defaults, the dotenv file, the environment and then any
// flag the user set explicitly.
func (o *rootOptions) resolve(cmd *cobra.Command) (update.RuntimeConfig, error) {
	if err := update.LoadDotEnv(o.envFile); err != nil {
		return update.RuntimeConfig{}, err
	}
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	flags := cmd.Flags()
	if flags.Changed("tab") {
		cfg.StartTab = o.startTab
	}
	if flags.Changed("reminders") {
		cfg.Reminders = o.reminders
	}
	if flags.Changed("inventory-dsn") {
		cfg.InventoryDSN = o.inventoryDSN
	}
	if flags.Changed("debug-log") {
		cfg.DebugLogPath = o.debugLog
	}
	return cfg, nil
}

func openInventory(ctx context.Context, dsn string) (*inventory.Service, func(), error) {
	repo, err := storage.OpenSQLite(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open inventory store: %w", err)
	}
	svc, err := inventory.NewService(ctx, repo, inventory.Seed())
	if err != nil {
		_ = repo.Close()
		return nil, nil, err
	}
	return svc, func() { _ = repo.Close() }, nil
}

func runTUI(ctx context.Context, cfg update.RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "backalley")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	svc, closeStore, err := openInventory(ctx, cfg.InventoryDSN)
	if err != nil {
		return err
	}
	defer closeStore()

	ctl := checklist.NewController(checklist.DefaultCatalog())
	ctl.OnChange(func(view []checklist.SectionView) {
		done, total := 0, 0
		for _, s := range view {
			done += s.Done
			total += s.Total
		}
		log.Printf("checklist: %d/%d done", done, total)
	})

	var engine *scheduler.Engine
	if cfg.Reminders {
		engine = scheduler.NewEngine(cfg.ReminderBuffer)
		engine.Start()
		defer engine.Stop()
		n, err := engine.ScheduleAll(scheduler.Plan(ctl.Catalog().Tasks(), time.Now()))
		if err != nil {
			return fmt.Errorf("schedule reminders: %w", err)
		}
		log.Printf("armed %d reminders", n)
	}

	m, err := update.NewModel(ctx, update.Deps{
		Checklist: ctl,
		Inventory: svc,
		Scheduler: engine,
	}, cfg)
	if err != nil {
		return err
	}
	log.Printf("starting on tab %s", m.CurrentTab)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}
