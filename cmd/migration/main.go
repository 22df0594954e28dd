package main

import (
	"sinan-service/internal/app/config"
	"sinan-service/internal/app/drivers/database"
	"sinan-service/internal/app/drivers/logger"
	"sinan-service/internal/migration"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	db := database.NewSQLiteDB(driverConfig)
	defer db.Close()

	migration.Run(db)

	log.Infof("Migrations applied to %s", driverConfig.SQLite.Path)
}
