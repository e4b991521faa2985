package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"ecommerce-backend/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// zapGooseLogger forwards goose output to zap. Fatalf does not exit; goose
// still returns the error to the caller.
type zapGooseLogger struct {
	log *zap.SugaredLogger
}

func (l *zapGooseLogger) Printf(format string, v ...any) {
	l.log.Infof(format, v...)
}

func (l *zapGooseLogger) Fatalf(format string, v ...any) {
	l.log.Errorf(format, v...)
}

// Migrate applies the embedded schema migrations with goose.
func Migrate(ctx context.Context, config utils.DatabaseConfig, logger *zap.Logger) error {
	log := logger.With(zap.String("component", "migrations"))
	start := time.Now()

	db, err := sql.Open("pgx", ConnString(config))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&zapGooseLogger{log: log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	log.Info("Migrations applied",
		zap.Int64("version", version),
		zap.Duration("duration", time.Since(start)))
	return nil
}
