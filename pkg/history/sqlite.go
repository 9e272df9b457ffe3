package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"treemath/binexpr/pkg/config"
)

// Schema contains the SQL statements to create the history database schema.
const Schema = `
CREATE TABLE IF NOT EXISTS history (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    input TEXT NOT NULL,
    simplified TEXT NOT NULL,
    input_nodes INTEGER NOT NULL,
    output_nodes INTEGER NOT NULL,
    folding BOOLEAN NOT NULL,
    rules_applied INTEGER NOT NULL,
    duration_ns INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);
CREATE INDEX IF NOT EXISTS idx_history_source ON history(source);
`

// Store is the SQLite-backed simplification history store.
type Store struct {
	db     *sql.DB
	config *config.HistoryConfig
	logger *slog.Logger
}

// NewStore opens (creating if necessary) the history database at the
// configured path and initializes the schema.
func NewStore(cfg *config.HistoryConfig) (*Store, error) {
	logger := slog.Default().With("component", "history")

	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %q: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	s := &Store{
		db:     db,
		config: cfg,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("history store initialized", "path", cfg.Path)
	return s, nil
}

// initialize enables WAL mode, sets the busy timeout, and creates the schema.
func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}
	return nil
}

// Append stores a record. A missing ID or CreatedAt is filled in.
func (s *Store) Append(ctx context.Context, r *Record) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (
			id, source, input, simplified, input_nodes, output_nodes,
			folding, rules_applied, duration_ns, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Source, r.Input, r.Simplified, r.InputNodes, r.OutputNodes,
		r.Folding, r.RulesApplied, r.Duration.Nanoseconds(), r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history record: %w", err)
	}
	return nil
}

// Query returns records matching the filter, newest first.
func (s *Store) Query(ctx context.Context, f Filter) ([]*Record, error) {
	query := `
		SELECT id, source, input, simplified, input_nodes, output_nodes,
		       folding, rules_applied, duration_ns, created_at
		FROM history WHERE 1=1`
	args := []interface{}{}

	if !f.Since.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, f.Since)
	}
	if !f.Until.IsZero() {
		query += " AND created_at < ?"
		args = append(args, f.Until)
	}
	if f.Source != "" {
		query += " AND source = ?"
		args = append(args, f.Source)
	}

	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var durationNs int64
		if err := rows.Scan(
			&r.ID, &r.Source, &r.Input, &r.Simplified, &r.InputNodes, &r.OutputNodes,
			&r.Folding, &r.RulesApplied, &durationNs, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		r.Duration = time.Duration(durationNs)
		records = append(records, &r)
	}
	return records, rows.Err()
}

// Count returns the total number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM history").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history records: %w", err)
	}
	return count, nil
}

// PruneBefore deletes records created before the cutoff and returns the
// number deleted.
func (s *Store) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return res.RowsAffected()
}

// PruneToMax deletes the oldest records until at most max remain and returns
// the number deleted.
func (s *Store) PruneToMax(ctx context.Context, max int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM history WHERE id IN (
			SELECT id FROM history ORDER BY created_at DESC LIMIT -1 OFFSET ?
		)`, max)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history to max: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
