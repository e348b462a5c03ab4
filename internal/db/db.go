// Package db owns the database connection and schema lifecycle.
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ledgerline/go-billing/internal/config"
	"github.com/ledgerline/go-billing/internal/models"
)

const (
	connectAttempts  = 10
	connectRetryWait = 2 * time.Second
)

// Connect opens the database selected by the configuration. Sqlite is the
// default for local development; postgres is the production driver. Startup
// ordering against the database container is absorbed by a retry loop.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	var db *gorm.DB
	var err error
	for attempt := 0; attempt < connectAttempts; attempt++ {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		log.Warn("database connection failed, retrying",
			zap.Int("attempt", attempt+1), zap.Error(err))
		time.Sleep(connectRetryWait)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database after retries: %w", cfg.Driver, err)
	}
	log.Info("database connected", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CompanySettings{},
		&models.Client{},
		&models.Vendor{},
		&models.Product{},
		&models.Invoice{},
		&models.Quotation{},
		&models.PurchaseOrder{},
		&models.DeliveryNote{},
		&models.DocumentItem{},
	)
}
