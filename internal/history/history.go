// Package history records executed invocations in sqlite so they
// survive restarts and can be listed on the quire:history page.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jask/quire/internal/command"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Entry is one recorded invocation.
type Entry struct {
	ID       string
	At       time.Time
	Count    uint64
	HasCount bool
	Name     string
	Args     []string
}

// Store keeps invocation history in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and applying pending
// migrations as needed.
func Open(path string) (*Store, error) {
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return &Store{db: db}, nil
}

// runMigrations uses its own connection; closing the migrator closes
// that connection, not the store's.
func runMigrations(path string) error {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		db.Close()
		return err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		db.Close()
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Record inserts one invocation.
func (s *Store) Record(inv command.Invocation) error {
	var count sql.NullInt64
	if inv.HasCount {
		count = sql.NullInt64{Int64: int64(inv.Count), Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO invocations (id, at, count, name, args) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), now(), count, inv.Name, strings.Join(inv.Args, " "),
	)
	if err != nil {
		return fmt.Errorf("record invocation: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, at, count, name, args FROM invocations ORDER BY at DESC, rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e     Entry
			count sql.NullInt64
			args  string
		)
		if err := rows.Scan(&e.ID, &e.At, &count, &e.Name, &args); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if count.Valid {
			e.Count = uint64(count.Int64)
			e.HasCount = true
		}
		if args != "" {
			e.Args = strings.Fields(args)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes everything but the newest keep entries.
func (s *Store) Prune(keep int) error {
	_, err := s.db.Exec(
		`DELETE FROM invocations WHERE id NOT IN
		 (SELECT id FROM invocations ORDER BY at DESC, rowid DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// now returns UTC time truncated to seconds, consistent with how
// sqlite renders timestamps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
