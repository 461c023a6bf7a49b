package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"internmatch/internal/common"
)

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdle     time.Duration
	ConnMaxLifetime time.Duration
}

// Postgres keeps one row per collection in a collections table, the
// whole document as JSONB. Multi-collection saves run in a transaction.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(cfg PostgresConfig) *Postgres {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	deadline := time.Now().Add(30 * time.Second)
	backoff := 500 * time.Millisecond
	for {
		if err := db.Ping(); err == nil {
			break
		} else if time.Now().After(deadline) {
			log.Fatalf("failed to ping postgres: %v", err)
		} else {
			log.Printf("postgres not ready yet: %v", err)
			time.Sleep(backoff)
			if backoff < 5*time.Second {
				backoff *= 2
			}
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		log.Fatalf("failed to create collections table: %v", err)
	}

	return &Postgres{db: db}
}

func (s *Postgres) Load(ctx context.Context, collection string, out any) error {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE name = $1`, collection)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return common.NewError(common.CodeInternal, "failed to load collection "+collection, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return common.NewError(common.CodeInternal, "failed to decode collection "+collection, err)
	}
	return nil
}

func (s *Postgres) Save(ctx context.Context, changes ...Change) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to begin store transaction", err)
	}
	for _, change := range changes {
		raw, err := json.Marshal(change.Value)
		if err != nil {
			tx.Rollback()
			return common.NewError(common.CodeInternal, "failed to encode collection "+change.Collection, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO collections (name, data, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			change.Collection, raw); err != nil {
			tx.Rollback()
			return common.NewError(common.CodeInternal, "failed to save collection "+change.Collection, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit store transaction", err)
	}
	return nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}
