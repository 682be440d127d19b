package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-service/src/internal/config"
	"wallet-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := config.NewSnapshotStore(ctx, viperConfig, logger)
	cancel()
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to open snapshot store: %v", err), "main", "")
		os.Exit(1)
	}

	producer, err := config.NewKafkaProducer(viperConfig, logger)
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to create kafka producer: %v", err), "main", "")
		os.Exit(1)
	}
	if producer != nil {
		defer producer.Close()
	}

	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	mux := asynq.NewServeMux()
	useCases, err := config.Bootstrap(&config.BootstrapConfig{
		Store:    store,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Async:    mux,
	})
	if err != nil {
		logger.Error("main", fmt.Sprintf("Failed to bootstrap: %v", err), "main", "")
		os.Exit(1)
	}

	// vouchers that went stale while the service was down expire on load
	if result := useCases.Voucher.ExpireSweep(context.Background()); result.Error != nil {
		logger.Error("main", fmt.Sprintf("Startup expire sweep failed: %v", result.Error), "main", "")
	}

	var (
		worker    *asynq.Server
		scheduler *asynq.Scheduler
	)
	if viperConfig.GetBool("scheduler.enabled") {
		worker = config.NewAsynqServer(viperConfig)
		if err := worker.Start(mux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start asynq server: %v", err), "asynq", "")
			os.Exit(1)
		}
		scheduler, err = config.NewAsynqScheduler(viperConfig, logger)
		if err != nil {
			logger.Error("main", fmt.Sprintf("Failed to create scheduler: %v", err), "asynq", "")
			os.Exit(1)
		}
		if err := scheduler.Start(); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start scheduler: %v", err), "asynq", "")
			os.Exit(1)
		}
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("main", "Server wallet-service is shutting down...", "gracefull", "")

		if scheduler != nil {
			scheduler.Shutdown()
		}
		if worker != nil {
			worker.Shutdown()
		}
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		os.Exit(1)
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "gracefull", "")
}
