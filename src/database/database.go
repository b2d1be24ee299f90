package database

import (
	"os"
	"sync"

	"identity-market/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db     *gorm.DB
	onceDb sync.Once
)

// ConnectToDatabase opens the shared connection. A DATABASE_URL
// environment variable (optionally loaded from .env) overrides the
// configured connection string.
func ConnectToDatabase(connectionString string) {
	onceDb.Do(func() {
		dbLogger := logger.Default()

		_ = godotenv.Load()
		if override := os.Getenv("DATABASE_URL"); override != "" {
			connectionString = override
		}

		conn, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{})
		if err != nil {
			dbLogger.Fatal(err, "Cannot establish database connection")
		}

		db = conn
		dbLogger.Info("Database connection established")
	})
}

func GetDatabaseConnection() *gorm.DB {
	if db == nil {
		panic("Database not connected: call ConnectToDatabase() first")
	}
	return db
}
