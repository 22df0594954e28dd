package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sinan-service/internal/app/config"
	"sinan-service/internal/app/delivery/http/middlewares"
	"sinan-service/internal/app/delivery/http/routers"
	"sinan-service/internal/app/drivers/database"
	"sinan-service/internal/app/drivers/logger"
	"sinan-service/internal/app/services/notifications"
	"sinan-service/internal/migration"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	sqliteDB := database.NewSQLiteDB(driverConfig)

	// The original deployment creates its schema on first boot, so the
	// migrations also run here, not only from cmd/migration.
	migration.Run(sqliteDB)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		SQLiteDB:       sqliteDB,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown()
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Notifications
	notificationRepository := notifications.NewNotificationSQLiteRepository(bootstrap.SQLiteDB, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(notificationUsecase, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, notificationController)
}
