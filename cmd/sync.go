package cmd

import (
	"context"
	"fmt"

	"inventory-bridge/feature/catalog"
	"inventory-bridge/feature/orders"
	"inventory-bridge/feature/salesorder"
	"inventory-bridge/feature/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync subcommands
	dryRunOrders bool
	failureID    int64
)

// syncCmd is the parent command for one-shot sync runs.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a single sync job and exit",
	Long: `Run one sync job outside the server's scheduler.

Examples:
  # Provision the next unmatched product
  inventory-bridge sync catalog

  # Reconcile warehouse stock levels
  inventory-bridge sync stock

  # Diff purchase orders; preview without mutating the snapshot
  inventory-bridge sync orders --dry-run

  # Write back the consumed stock of a closed failure
  inventory-bridge sync salesorder --failure 686272`,
}

var syncCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Match product catalogs and provision the next missing material",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		svc := catalog.NewService(d.erpClient("catalog"), d.fsm, d.cfg.Jobs.Catalog, d.logger)
		return d.runJob(ctx, "catalog", func(ctx context.Context) (int, int, error) {
			res, err := svc.Run(ctx)
			created := 0
			if res.CreatedCode != "" {
				created = 1
			}
			return res.Unmatched, created, err
		})
	},
}

var syncStockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Reconcile warehouse stock levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		svc := stock.NewService(d.erpClient("stock"), d.fsm, d.logger)
		return d.runJob(ctx, "stock", func(ctx context.Context) (int, int, error) {
			res, err := svc.Run(ctx)
			return res.ItemsProcessed, res.MovementsPosted, err
		})
	},
}

var syncOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Diff purchase orders against the snapshot and notify",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		svc := orders.NewService(d.erpClient("orders"), d.store, d.notifier, d.logger)

		if dryRunOrders {
			plan, err := svc.Plan(ctx)
			if err != nil {
				return err
			}
			if plan.IsEmpty() {
				d.logger.Info("Dry run: no changes")
				return nil
			}
			for _, c := range plan.Changes {
				d.logger.Info("Dry run: would report change",
					zap.String("order", c.Number),
					zap.String("old_status", c.OldStatus),
					zap.String("new_status", c.NewStatus),
				)
			}
			return nil
		}

		return d.runJob(ctx, "orders", func(ctx context.Context) (int, int, error) {
			res, err := svc.Run(ctx)
			return res.OrdersSeen, len(res.Changes), err
		})
	},
}

var syncSalesOrderCmd = &cobra.Command{
	Use:   "salesorder",
	Short: "Write back the consumed stock of one closed failure",
	RunE: func(cmd *cobra.Command, args []string) error {
		if failureID == 0 {
			return fmt.Errorf("--failure is required")
		}

		ctx := context.Background()
		d, err := buildDeps(ctx)
		if err != nil {
			return err
		}
		defer d.logger.Sync()

		svc := salesorder.NewService(d.fsm, d.erpClient("salesorder"), d.cfg.Jobs.SalesOrder, d.logger)
		return d.runJob(ctx, "salesorder", func(ctx context.Context) (int, int, error) {
			res, err := svc.Run(ctx, failureID)
			return res.Lines, res.Lines, err
		})
	},
}

func init() {
	syncOrdersCmd.Flags().BoolVar(&dryRunOrders, "dry-run", false, "Build the diff without applying or notifying")
	syncSalesOrderCmd.Flags().Int64Var(&failureID, "failure", 0, "Failure id to write back")

	syncCmd.AddCommand(syncCatalogCmd)
	syncCmd.AddCommand(syncStockCmd)
	syncCmd.AddCommand(syncOrdersCmd)
	syncCmd.AddCommand(syncSalesOrderCmd)
	RootCmd.AddCommand(syncCmd)
}
