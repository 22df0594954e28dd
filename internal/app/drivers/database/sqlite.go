package database

import (
	"database/sql"
	"fmt"
	"log"
	"sinan-service/internal/app/config"

	_ "github.com/mattn/go-sqlite3"
)

func NewSQLiteDB(driverConfig *config.DriverConfig) *sql.DB {
	// busy_timeout keeps concurrent request handlers from tripping over
	// SQLITE_BUSY; the engine still serializes the writes itself.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", driverConfig.SQLite.Path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Fatalf("Failed to open sqlite database: %s", err.Error())
	}

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to sqlite database: %s", err.Error())
	}

	log.Println("Successfully connected to sqlite database")

	return db
}
