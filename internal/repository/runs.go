package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kavinduUdhara/extract-document-data-automation/internal/entity"
)

// RunRepository stores batch runs and their per-document outcomes.
type RunRepository interface {
	Migrate(ctx context.Context) error
	SaveReport(ctx context.Context, report *entity.BatchReport) error
	ListRuns(ctx context.Context, limit int) ([]RunRow, error)
}

// RunRow is one stored batch run summary.
type RunRow struct {
	ID        string
	Attempted int
	Succeeded int
	Failed    int
}

type runRepo struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
}

func NewRunRepository(db *sql.DB, dialect Dialect, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{db: db, dialect: dialect, log: log}
}

const runsDDL = `
CREATE TABLE IF NOT EXISTS batch_run (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	attempted   INTEGER NOT NULL,
	succeeded   INTEGER NOT NULL,
	failed      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS document_outcome (
	id           TEXT PRIMARY KEY,
	run_id       TEXT NOT NULL,
	position     INTEGER NOT NULL,
	doc_name     TEXT NOT NULL,
	extraction   TEXT NOT NULL,
	generated    INTEGER NOT NULL,
	schemas_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_document_outcome_run ON document_outcome (run_id, position);
`

func (r *runRepo) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(runsDDL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate run store: %w", err)
		}
	}
	return nil
}

func (r *runRepo) SaveReport(ctx context.Context, report *entity.BatchReport) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, r.rebind(
		`INSERT INTO batch_run (id, started_at, finished_at, attempted, succeeded, failed)
		 VALUES ($1, $2, $3, $4, $5, $6)`),
		report.RunID,
		report.StartedAt.UTC().Format("2006-01-02T15:04:05Z"),
		report.FinishedAt.UTC().Format("2006-01-02T15:04:05Z"),
		report.Attempted(), report.Succeeded(), report.Failed(),
	)
	if err != nil {
		return fmt.Errorf("insert batch_run: %w", err)
	}

	for i := range report.Outcomes {
		o := &report.Outcomes[i]
		schemasJSON, err := json.Marshal(o.Schemas)
		if err != nil {
			return fmt.Errorf("encode schema outcomes: %w", err)
		}
		_, err = tx.ExecContext(ctx, r.rebind(
			`INSERT INTO document_outcome (id, run_id, position, doc_name, extraction, generated, schemas_json)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`),
			uuid.New().String(), report.RunID, i,
			o.Document.Name, string(o.Extraction), o.GeneratedCount(), string(schemasJSON),
		)
		if err != nil {
			return fmt.Errorf("insert document_outcome: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.log.Info("run store: report saved", "run_id", report.RunID, "documents", report.Attempted())
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, r.rebind(
		`SELECT id, attempted, succeeded, failed FROM batch_run ORDER BY started_at DESC LIMIT $1`), limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.log.Warn("run store: rows close failed", "error", cerr)
		}
	}()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.ID, &row.Attempted, &row.Succeeded, &row.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// rebind converts $N placeholders to ? for the SQLite driver. Postgres
// takes them as-is.
func (r *runRepo) rebind(query string) string {
	if r.dialect == DialectPostgres {
		return query
	}
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) {
			j := i + 1
			for j < len(query) && query[j] >= '0' && query[j] <= '9' {
				j++
			}
			if j > i+1 {
				if _, err := strconv.Atoi(query[i+1 : j]); err == nil {
					b.WriteByte('?')
					i = j - 1
					continue
				}
			}
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
