package config

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nutrilog/models"
)

// InitDB opens the postgres connection described by cfg.
func InitDB(ctx context.Context, cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("connected to database", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	return db, nil
}

// Migrate creates or updates the tables this service owns or reads.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.EatenProduct{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Catalog rows may be written outside this service; the title key is
	// indexed as an expression, not stored.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_products_title_key ON products (" + models.TitleKeyExpr + ")").Error; err != nil {
		return fmt.Errorf("create title index: %w", err)
	}
	return nil
}

// CloseDB releases the connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
