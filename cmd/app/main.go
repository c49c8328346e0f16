package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastex/cmd"
	"fastex/internal/adapters/out/kafka"
	"fastex/internal/adapters/out/postgres"
	redisout "fastex/internal/adapters/out/redis"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	gormDB := mustGormOpen(configs)
	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	redisClient := redisout.NewClient(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	defer redisClient.Close()

	publisher := kafka.NewPublisher(configs.KafkaBrokers, configs.KafkaTopicPrefix)
	defer publisher.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, logger)
	if err != nil {
		log.Fatalf("Error creating application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.HTTPPort)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) {
	e, err := app.NewHTTPServer()
	if err != nil {
		log.Fatalf("Error creating http server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down http server: %v", err)
	}
}
