package database

import (
	"identity-market/pkg/logger"
	"identity-market/src/model"
)

func RunMigrations() {
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables...")

	err := GetDatabaseConnection().AutoMigrate(
		&model.OutboxEvent{},
		&model.IdentityView{},
		&model.ListingView{})
	if err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}

	migrationLogger.Info("All tables created (or already exist).")
}
