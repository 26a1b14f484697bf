package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/examiz/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Items returns the item repository backed by this store.
func (s *Store) Items() *ItemRepo {
	return &ItemRepo{client: s.client}
}

// Assessments returns the assessment repository backed by this store.
func (s *Store) Assessments() *AssessmentRepo {
	return &AssessmentRepo{client: s.client}
}

// Submissions returns the submission repository backed by this store.
func (s *Store) Submissions() *SubmissionRepo {
	return &SubmissionRepo{client: s.client}
}

// Reset drops all stored records. Destructive; exposed for the reset
// command and tests only.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.client.Submission.Delete().Exec(ctx); err != nil {
		return unavailable("reset submissions", err)
	}
	if _, err := s.client.Assessment.Delete().Exec(ctx); err != nil {
		return unavailable("reset assessments", err)
	}
	if _, err := s.client.Item.Delete().Exec(ctx); err != nil {
		return unavailable("reset items", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-process performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EXAMIZ_DB environment variable
// 2. $XDG_DATA_HOME/examiz/examiz.db
// 3. ~/.local/share/examiz/examiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EXAMIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "examiz", "examiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}
