package config

type (
	DriverConfig struct {
		SQLite SQLite
		Logger Logger
	}
	SQLite struct {
		Path string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
