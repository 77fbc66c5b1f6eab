package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/notifier"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if envConfig.AutoMigrate {
		migration, err := dbStorage.Migrate()
		if err != nil {
			logger.WithError(err).Fatal("storage.Migrate")
			return
		}
		logger.WithField("preMigrationVersion", migration.PreMigrationVersion).
			WithField("postMigrationVersion", migration.PostMigrationVersion).
			Info("Migration status")
	}

	var publisher notifier.AlertPublisher = notifier.NoopPublisher{}
	if envConfig.AMQPURL != "" {
		publisher, err = notifier.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPRoutingKey)
		if err != nil {
			logger.WithError(err).Fatal("notifier.NewAMQPPublisher")
			return
		}
	}
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(service.Dependencies{
		Reader:    dbStorage.Reader,
		Operator:  delegator,
		Publisher: publisher,
		Monitor:   finance.NewLimitMonitor(envConfig.CurrencySymbol),
		Log:       logger,
	})

	httpRest := api.Rest{
		Logger:      logger,
		Port:        envConfig.Port,
		CORSOrigins: envConfig.CORSOrigins,
		Service:     svc,
		Database:    dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
	}
	logger.Info("finance-server stopped")
}
