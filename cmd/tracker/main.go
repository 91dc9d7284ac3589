package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/metrics"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/tracker"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defer logger.Sync()

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultFile, "path to the YAML config")
	fs.Usage = func() { printUsage(stderr) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return 2
	}

	cmd, ok := lookupCommand(fs.Arg(0))
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", fs.Arg(0))
		printUsage(stderr)
		return 2
	}

	conf, err := config.New(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, closeApp, err := newApp(conf, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer closeApp()

	if err = cmd.run(ctx, a, fs.Args()[1:]); err != nil {
		logger.Debug("command failed", zap.String("command", cmd.name), zap.Error(err))
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

// newApp wires the tracker from config. Optional backends that cannot be
// reached are logged and left out.
func newApp(conf *config.Service, out io.Writer) (*app, func(), error) {
	closers := make([]func(), 0, 3)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	tracer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		closers = append(closers, func() {
			if err := tracer.Close(); err != nil {
				logger.Warn("failed to flush traces", zap.Error(err))
			}
		})
	}

	closers = append(closers, func() {
		if err := metrics.Push(conf.Metrics(), prometheus.DefaultGatherer); err != nil {
			logger.Warn("failed to push metrics", zap.Error(err))
		}
	})

	store, err := storage.NewJSONStorage(conf.App())
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	generator := reports.NewGenerator(store)
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Warn("summary cache disabled", zap.Error(err))
		} else {
			generator.WithCache(mc, store.CacheScope())
		}
	}

	service := tracker.NewService(store, generator)
	if conf.Postgres().Enabled() {
		exporter, err := storage.NewPostgresExporter(conf.Postgres())
		if err != nil {
			logger.Warn("postgres export disabled", zap.Error(err))
		} else {
			service.WithExporter(exporter)
			closers = append(closers, exporter.Close)
		}
	}

	return &app{service: service, out: out}, closeAll, nil
}
