package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	v1 "github.com/tupyy/async-engine/api/v1"
	"github.com/tupyy/async-engine/internal/handlers"
	"github.com/tupyy/async-engine/internal/server"
	"github.com/tupyy/async-engine/internal/services"
	"github.com/tupyy/async-engine/pkg/metrics"
	"github.com/tupyy/async-engine/pkg/scheduler"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the engine and the admin API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg := opts.cfg
	log := zap.S().Named("asyncd")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	exporter, err := metrics.NewExporter("", reg, metrics.ExporterOptions{})
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(
		cfg.Scheduler.Workers(),
		scheduler.WithMaxThreads(cfg.Scheduler.MaxThreads),
		scheduler.WithMetrics(exporter),
	)

	parallelism := services.NewParallelism(sched, cfg.Scheduler.MaxThreads)
	if opts.v.ConfigFileUsed() != "" {
		parallelism.Watch(ctx, opts.v, "scheduler.num-threads")
	}
	jobs := services.NewJobsService(sched)

	h := handlers.New(sched, parallelism, jobs)
	srv, err := server.NewServer(cfg, reg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		parallelism.Shutdown()
		return err
	}

	log.Infow("engine started", "workers", sched.Workers(), "max_threads", cfg.Scheduler.MaxThreads)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Stop(context.Background())
	})

	err = g.Wait()

	jobs.CancelAll()
	parallelism.Shutdown()
	log.Infow("engine stopped", "error", err)

	return err
}
