package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/config"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/repository/memory"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/service"
	httpt "github.com/trixiemotil-commits/Joshoeixi-Vape/internal/transport/http"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/cache"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/logger"
	"github.com/trixiemotil-commits/Joshoeixi-Vape/pkg/metric"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	repo := initRepository(cfg, log)

	inventoryService, svcErr := initInventoryService(cfg, repo, log, metrics)
	if svcErr != nil {
		return svcErr
	}

	if serverErr := initHTTPServer(ctx, eg, cfg, inventoryService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	metricsServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initRepository(cfg *config.Config, log logger.Logger) *memory.ItemRepository {
	var opts []memory.Option
	if cfg.Seed {
		opts = append(opts, memory.WithItems(memory.SampleItems()...))
	}

	repo := memory.NewItemRepository(opts...)
	log.Infow("item store initialized", "seeded", cfg.Seed, "items", repo.Len(context.Background()))
	return repo
}

func initInventoryService(
	cfg *config.Config,
	repo *memory.ItemRepository,
	log logger.Logger,
	metrics metric.Factory,
) (*service.InventoryService, error) {
	snapshots, err := cache.NewLRUCache[uint64, *service.Dashboard](
		cfg.Cache.Capacity,
		"dashboard",
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initInventoryService: %w", err)
	}

	return service.NewInventoryService(
		repo,
		log.With("component", "inventory service"),
		metrics.Store(),
		snapshots,
		cfg.Cache.TTL,
	), nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	inventoryService *service.InventoryService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewInventoryHandler(inventoryService, cfg, log, metrics.HTTP()),
		&cfg.HTTP,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
