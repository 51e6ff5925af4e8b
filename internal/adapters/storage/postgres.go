// internal/adapters/storage/postgres.go
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/migrations"
)

// Postgres stores reports in PostgreSQL. Attack results are kept as JSONB
// in their public form, so recovered plaintexts never reach the database.
type Postgres struct {
	Pool *pgxpool.Pool
}

var _ ports.ReportRepository = (*Postgres)(nil)

// NewPostgres creates a connection pool and verifies it.
func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// RunMigrations runs all embedded SQL migrations.
func (p *Postgres) RunMigrations(connString string) error {
	sourceDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, connString)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

// Save implementa ports.ReportRepository (upsert by id).
func (p *Postgres) Save(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return domain.ErrInvalidInput
	}
	id, err := uuid.Parse(report.ID)
	if err != nil {
		return fmt.Errorf("%w: report id %q", domain.ErrInvalidInput, report.ID)
	}
	keywords, err := json.Marshal(report.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	query := `
		INSERT INTO reports (id, url, target_hash, hash_mode, keywords, results,
			cracked_count, started_at, finished_at, duration_ns)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			keywords = EXCLUDED.keywords,
			results = EXCLUDED.results,
			cracked_count = EXCLUDED.cracked_count,
			finished_at = EXCLUDED.finished_at,
			duration_ns = EXCLUDED.duration_ns
	`
	_, err = p.Pool.Exec(ctx, query,
		id, report.URL, report.TargetHash, report.HashMode, keywords, results,
		report.CrackedCount(), report.StartedAt, report.FinishedAt, int64(report.Duration),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

const selectReport = `
	SELECT id, url, target_hash, hash_mode, keywords, results,
		started_at, finished_at, duration_ns
	FROM reports
`

// Get implementa ports.ReportRepository.
func (p *Postgres) Get(ctx context.Context, id string) (*domain.Report, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}
	row := p.Pool.QueryRow(ctx, selectReport+` WHERE id = $1`, uid)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// List implementa ports.ReportRepository.
func (p *Postgres) List(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := p.Pool.Query(ctx, selectReport+` ORDER BY started_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		r                 domain.Report
		id                uuid.UUID
		keywords, results []byte
		durationNS        int64
	)
	err := row.Scan(&id, &r.URL, &r.TargetHash, &r.HashMode, &keywords, &results,
		&r.StartedAt, &r.FinishedAt, &durationNS)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(keywords, &r.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if err := json.Unmarshal(results, &r.Results); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	r.ID = id.String()
	r.Duration = time.Duration(durationNS)
	return &r, nil
}

// Ping implementa ports.ReportRepository.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// Close implementa ports.ReportRepository.
func (p *Postgres) Close() error {
	p.Pool.Close()
	return nil
}
