package config

import (
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	SQLiteDB       *sql.DB
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown() error {
	err := b.SQLiteDB.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing SQLite")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
