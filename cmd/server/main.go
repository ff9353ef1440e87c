package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benvon/starter-api/internal/config"
	"github.com/benvon/starter-api/internal/logger"
	"github.com/benvon/starter-api/internal/metrics"
	"github.com/benvon/starter-api/internal/server"
	"github.com/benvon/starter-api/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.New(cfg.LogFormat, debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		// stderr sync fails on some platforms; nothing to do about it at exit
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.String("title", cfg.Info.Title),
		zap.String("description", cfg.Info.Description),
		zap.String("version", cfg.Info.Version),
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
	)
	if len(cfg.CORSOrigins) == 0 {
		zapLogger.Warn("cors_origins_empty_no_cross_origin_requests_allowed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []server.Option

	if cfg.OTELEnabled {
		tp, err := telemetry.InitTracer(ctx, telemetry.ServiceName, cfg.Info.Version, cfg.OTELEndpoint)
		if err != nil {
			zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		} else {
			zapLogger.Info("otel_tracer_initialized",
				zap.String("endpoint", cfg.OTELEndpoint),
			)
			opts = append(opts, server.WithTracing(telemetry.ServiceName, tp))
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
					zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
				}
			}()
		}
	}

	if cfg.MetricsEnabled {
		collector := metrics.NewCollector("starter_api")
		opts = append(opts, server.WithMetrics(collector))

		metricsSrv := server.NewHTTPServer(cfg.MetricsAddr, collector.Handler())
		go func() {
			if err := server.Run(ctx, metricsSrv, zapLogger.Named("metrics"), cfg.ShutdownTimeout); err != nil {
				zapLogger.Error("metrics_server_failed", zap.Error(err))
			}
		}()
	}

	srv := server.NewHTTPServer(cfg.Addr(), server.New(cfg, zapLogger, opts...))

	if err := server.Run(ctx, srv, zapLogger, cfg.ShutdownTimeout); err != nil {
		zapLogger.Fatal("server_failed", zap.Error(err))
	}
}
