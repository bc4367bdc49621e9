package repo

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

// InitDB opens the database by DSN and runs migrations.
// postgres:// DSN (또는 key=value 형태) → Postgres, 그 외 → SQLite 파일.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Series{},
		&model.Asset{},
		&model.Shipment{},
		&model.ShipmentAsset{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
