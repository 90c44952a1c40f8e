package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/backalley/internal/checklist"
	"github.com/sandeepkv93/backalley/internal/dashboard"
	"github.com/sandeepkv93/backalley/internal/printers"
	"github.com/sandeepkv93/backalley/internal/update"
)

func newPrintCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print " + strings.Join(printers.Names(), "|"),
		Short: "Print a screen's seeded data as a table and exit.",
		Example: `
backalley print checklist
backalley print inventory --inventory-dsn file:inv.db
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: printers.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := strings.ToLower(args[0])
			if !printers.IsKnown(screen) {
				return fmt.Errorf("unknown screen %q, want one of %s", args[0], strings.Join(printers.Names(), ", "))
			}
			if err := update.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
			if cmd.Flags().Changed("inventory-dsn") {
				cfg.InventoryDSN = opts.inventoryDSN
			}

			out := printers.New(cmd.OutOrStdout())
			switch screen {
			case "checklist":
				return out.Checklist(checklist.NewController(checklist.DefaultCatalog()).View())
			case "inventory":
				svc, closeStore, err := openInventory(cmd.Context(), cfg.InventoryDSN)
				if err != nil {
					return err
				}
				defer closeStore()
				items, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				return out.Inventory(items)
			default:
				return out.Dashboard(dashboard.Default())
			}
		},
	}
}
