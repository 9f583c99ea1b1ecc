package database

import (
	"database/sql"
	"fmt"
	"slices"

	"quiz-board/internal/config"
	"quiz-board/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers the "oracle" driver
	"go.uber.org/zap"
)

// NewSQLXOracleDB opens a pooled connection with the configured driver and pings it.
func NewSQLXOracleDB(cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	if !slices.Contains(sql.Drivers(), cfg.Driver) {
		return nil, fmt.Errorf("database driver %q is not compiled into this binary", cfg.Driver)
	}

	db, err := sqlx.Connect(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	logger.Get().Info("Connected to Oracle database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("service", cfg.DBName),
	)
	return db, nil
}
