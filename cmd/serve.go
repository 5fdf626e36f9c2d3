package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-bridge/core/loader"
	"inventory-bridge/core/logger"
	"inventory-bridge/core/middleware/auth"
	"inventory-bridge/core/middleware/rayid"
	"inventory-bridge/core/middleware/webhooksig"
	"inventory-bridge/core/sched"

	"inventory-bridge/feature/catalog"
	"inventory-bridge/feature/orders"
	"inventory-bridge/feature/salesorder"
	"inventory-bridge/feature/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sync server",
	Long: `Starts the webhook trigger server and the job scheduler.
Enabled jobs run on their configured intervals; webhook endpoints allow
the platforms to trigger the same jobs on demand.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Build shared infrastructure (config, logger, clients, store)
		d, err := buildDeps(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := d.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Build features
		catalogFeat := catalog.NewFeature(d.erpClient("catalog"), d.fsm, d.cfg.Jobs.Catalog, logg)
		stockFeat := stock.NewFeature(d.erpClient("stock"), d.fsm, d.cfg.Jobs.Stock, logg)
		ordersFeat := orders.NewFeature(d.erpClient("orders"), d.store, d.notifier, d.cfg.Jobs.Orders, logg)
		salesFeat := salesorder.NewFeature(d.fsm, d.erpClient("salesorder"), d.cfg.Jobs.SalesOrder, logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Metrics and health are public
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Webhook signature check, then API key for everything else
		app.Use(webhooksig.New(webhooksig.Config{
			Secret:  d.cfg.Server.WebhookSecret,
			Enabled: d.cfg.Server.WebhookVerify,
		}))
		app.Use(auth.New(auth.Config{ApiKey: d.cfg.Server.ApiKey}))

		// 4. Load features
		mgr := loader.NewManager(logg)
		mgr.Register(catalogFeat)
		mgr.Register(stockFeat)
		mgr.Register(ordersFeat)
		mgr.Register(salesFeat)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Schedule recurring jobs
		scheduler := sched.New(logg)
		if catalogFeat.IsEnabled() {
			scheduler.Add(sched.Job{
				Name:     "catalog",
				Interval: time.Duration(d.cfg.Jobs.Catalog.IntervalMinutes) * time.Minute,
				Run: func(ctx context.Context) error {
					return d.runJob(ctx, "catalog", func(ctx context.Context) (int, int, error) {
						res, err := catalogFeat.Service().Run(ctx)
						created := 0
						if res.CreatedCode != "" {
							created = 1
						}
						return res.Unmatched, created, err
					})
				},
			})
		}
		if stockFeat.IsEnabled() {
			scheduler.Add(sched.Job{
				Name:     "stock",
				Interval: time.Duration(d.cfg.Jobs.Stock.IntervalMinutes) * time.Minute,
				Run: func(ctx context.Context) error {
					return d.runJob(ctx, "stock", func(ctx context.Context) (int, int, error) {
						res, err := stockFeat.Service().Run(ctx)
						return res.ItemsProcessed, res.MovementsPosted, err
					})
				},
			})
		}
		if ordersFeat.IsEnabled() {
			scheduler.Add(sched.Job{
				Name:     "orders",
				Interval: time.Duration(d.cfg.Jobs.Orders.IntervalMinutes) * time.Minute,
				Run: func(ctx context.Context) error {
					return d.runJob(ctx, "orders", func(ctx context.Context) (int, int, error) {
						res, err := ordersFeat.Service().Run(ctx)
						return res.OrdersSeen, len(res.Changes), err
					})
				},
			})
		}
		scheduler.Start(ctx)

		// 6. Start server
		go func() {
			logg.Info("Starting server", zap.String("port", d.cfg.Server.Port))
			if err := app.Listen(":" + d.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		scheduler.Stop()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
