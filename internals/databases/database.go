package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
)

// ConnectDB opens the configured store and tunes its pool.
func ConnectDB(cfg configs.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: configs.NewGormLogger(log)}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case configs.DriverPostgres:
		log.Info("connecting to PostgreSQL", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling friendly
		}), gcfg)
	case configs.DriverSQLite:
		log.Info("opening SQLite", zap.String("dsn", cfg.DSN))
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.DSN)), gcfg)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if err := TunePool(db, cfg); err != nil {
		return nil, err
	}
	if cfg.Driver == configs.DriverSQLite {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	log.Info("database connected", zap.String("driver", cfg.Driver))
	return db, nil
}

// sqliteDSN makes sure every pooled connection enforces foreign keys.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func TunePool(db *gorm.DB, cfg configs.DatabaseConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}

	if cfg.Driver == configs.DriverSQLite && isMemoryDSN(cfg.DSN) {
		// every new connection to :memory: is a fresh, empty database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
		return nil
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// Ping checks that the pool can still reach the store.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
