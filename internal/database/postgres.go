package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"user-directory-service/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var EmbedMigrations embed.FS

// PostgresDSN собирает строку подключения из конфига.
func PostgresDSN(cfg config.Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
}

func NewPostgresDB(cfg config.Config) (*sql.DB, error) {
	db, err := OpenPostgres(cfg)
	if err != nil {
		return nil, err
	}

	if err = MigrateDB(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenPostgres открывает пул соединений и проверяет доступность базы без миграций.
func OpenPostgres(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", PostgresDSN(cfg))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

func MigrateDB(db *sql.DB) error {
	goose.SetBaseFS(EmbedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return err
	}

	return nil
}

// MigrationStatus печатает состояние миграций через логгер goose.
func MigrationStatus(db *sql.DB) error {
	goose.SetBaseFS(EmbedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Status(db, "migrations")
}
