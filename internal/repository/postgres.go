package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database is the subset of *pgxpool.Pool the export needs.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Postgres mirrors the cleaned dataset into a businesses table.
type Postgres struct {
	db  Database
	log *slog.Logger
}

var businessColumns = []string{
	"formal_name",
	"informal_name",
	"address",
	"city",
	"zip_code",
	"category",
	"start_date",
	"latitude",
	"longitude",
}

// NewPostgres creates a new instance of Postgres with the provided Database.
func NewPostgres(db Database, log *slog.Logger) *Postgres {
	return &Postgres{db: db, log: log}
}

// NewDatabase opens a connection pool and verifies it with a ping.
func NewDatabase(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the businesses table if it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS businesses (
			id BIGSERIAL PRIMARY KEY,
			formal_name TEXT NOT NULL,
			informal_name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			zip_code TEXT NOT NULL,
			category TEXT NOT NULL,
			start_date TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		);
	`

	if _, err := p.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create businesses table: %w", err)
	}

	return nil
}

// ReplaceBusinesses swaps the table contents for the given records in one transaction
// and returns the number of rows copied.
func (p *Postgres) ReplaceBusinesses(ctx context.Context, businesses []models.Business) (int64, error) {
	rows := make([][]any, 0, len(businesses))
	for _, b := range businesses {
		coords, err := b.Coordinates()
		if err != nil {
			return 0, fmt.Errorf("failed to prepare business %q: %w", b.FormalName, err)
		}
		rows = append(rows, []any{
			b.FormalName, b.InformalName, b.Address, b.City, b.ZipCode,
			b.Category, b.StartDate, coords.Latitude, coords.Longitude,
		})
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err = tx.Exec(ctx, "TRUNCATE businesses"); err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to truncate businesses: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"businesses"}, businessColumns, pgx.CopyFromRows(rows))
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, fmt.Errorf("failed to copy businesses: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit businesses: %w", err)
	}

	p.log.DebugContext(ctx, "Businesses exported", "rows", copied)

	return copied, nil
}
