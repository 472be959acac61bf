// Package preset keeps named representations in a SQLite database so they can
// be reused across sessions.
package preset

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentic-research/molview/internal/repr"
)

var (
	// ErrNotFound is returned by Get for an unknown preset name.
	ErrNotFound = errors.New("preset not found")
	// ErrEmptyName is returned when a preset is saved without a name.
	ErrEmptyName = errors.New("preset name is empty")
)

// Preset is a stored representation and its metadata.
type Preset struct {
	Name           string
	Representation *repr.Representation
	Updated        time.Time
}

// Store is a preset database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	opts []repr.Option
}

// Open opens or creates the preset database at dbPath. opts are applied to
// every representation decoded from the store.
func Open(dbPath string, opts ...repr.Option) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS presets (
		name TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		config JSON NOT NULL,
		updated INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, opts: opts}, nil
}

// Save stores r under name, replacing any preset with the same name.
func (s *Store) Save(name string, r *repr.Representation) error {
	if name == "" {
		return ErrEmptyName
	}
	config, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", name, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO presets (name, type, config, updated) VALUES (?, ?, ?, ?)`,
		name, r.Type(), string(config), time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save preset %q: %w", name, err)
	}
	return nil
}

// Get loads the preset stored under name.
func (s *Store) Get(name string) (*Preset, error) {
	var config string
	var updated int64
	err := s.db.QueryRow(`SELECT config, updated FROM presets WHERE name = ?`, name).Scan(&config, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset %q: %w", name, err)
	}

	r, err := repr.Decode([]byte(config), s.opts...)
	if err != nil {
		return nil, fmt.Errorf("decode preset %q: %w", name, err)
	}
	return &Preset{Name: name, Representation: r, Updated: time.Unix(0, updated)}, nil
}

// Summary is a listing row.
type Summary struct {
	Name    string
	Type    string
	Updated time.Time
}

// List returns every preset ordered by name.
func (s *Store) List() ([]Summary, error) {
	rows, err := s.db.Query(`SELECT name, type, updated FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var updated int64
		if err := rows.Scan(&sum.Name, &sum.Type, &updated); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		sum.Updated = time.Unix(0, updated)
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the preset stored under name and reports whether it existed.
func (s *Store) Delete(name string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("delete preset %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
