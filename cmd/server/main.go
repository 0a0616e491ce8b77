package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/clients/cache"
	"max.ks1230/fintrack/internal/clients/kafka"
	"max.ks1230/fintrack/internal/config"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/guard"
	"max.ks1230/fintrack/internal/model/reports"
	"max.ks1230/fintrack/internal/model/storage"
	"max.ks1230/fintrack/internal/model/tracker"
	"max.ks1230/fintrack/internal/server"
	"max.ks1230/fintrack/internal/tracing"
)

type serverConfig struct {
	*config.ServerConfig
	*config.AppConfig
}

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init("fintrack-server", conf.App().JaegerAgent())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	if closer != nil {
		defer closer.Close()
	}

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres", zap.Error(err))
	}
	defer db.Close()

	guarded := guard.New(db)
	trackerService := tracker.NewService(guarded)

	generator := reports.NewGenerator(conf.App(), guarded)
	dashboards := reports.NewService(generator, nil)
	if len(conf.Memcached().Hosts()) > 0 {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		dashboards = reports.NewService(generator, mc)
	}

	var producer *kafka.Producer
	if len(conf.Kafka().Brokers()) > 0 {
		producer, err = kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
	}

	go serveMetrics(conf.Server().Metrics())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := serverConfig{conf.Server(), conf.App()}
	srv := server.New(cfg, trackerService, db, dashboards, producerOrNil(producer))
	if err = srv.Run(ctx); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// producerOrNil avoids handing the server a typed nil behind its interface.
func producerOrNil(p *kafka.Producer) server.RefreshProducer {
	if p == nil {
		return nil
	}
	return p
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener stopped", zap.Error(err))
	}
}
