package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/clients/cache"
	"max.ks1230/fintrack/internal/clients/kafka"
	"max.ks1230/fintrack/internal/clients/tg"
	"max.ks1230/fintrack/internal/config"
	"max.ks1230/fintrack/internal/logger"
	"max.ks1230/fintrack/internal/model/guard"
	"max.ks1230/fintrack/internal/model/reports"
	"max.ks1230/fintrack/internal/model/storage"
	"max.ks1230/fintrack/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init("fintrack-reporter", conf.App().JaegerAgent())
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
	generator := reports.NewGenerator(conf.App(), guarded)

	dashboards := reports.NewService(generator, nil)
	if len(conf.Memcached().Hosts()) > 0 {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		dashboards = reports.NewService(generator, mc)
	}

	var alerter *reports.Alerter
	if conf.Telegram().Token() != "" {
		client, err := tg.New(conf.Telegram())
		if err != nil {
			logger.Fatal("failed to init telegram client", zap.Error(err))
		}
		alerter = reports.NewAlerter(db, client)
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), dashboards, alerterOrNil(alerter))
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to consume", zap.Error(err))
	}
}

// alerterOrNil keeps the consumer's nil check honest when alerts are off.
func alerterOrNil(a *reports.Alerter) kafka.OverspendAlerter {
	if a == nil {
		return nil
	}
	return a
}
