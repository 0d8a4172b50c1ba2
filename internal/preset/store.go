package preset

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

var (
	// ErrNotFound is returned when no preset has the requested ID.
	ErrNotFound = errors.New("preset not found")

	// ErrBuiltIn is returned when a caller tries to modify or delete a
	// seeded built-in preset.
	ErrBuiltIn = errors.New("built-in presets cannot be modified")
)

// Preset is a named, tagged snapshot of an adjustment set.
type Preset struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags"`
	Adjustments engine.Adjustments `json:"adjustments"`
	BuiltIn     bool               `json:"built_in"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Store is a SQLite-backed preset collection.
type Store struct {
	db *sql.DB
}

// Open creates or opens the preset database at path and seeds the built-in
// presets if they are not present. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	if err := s.seedBuiltIns(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed built-in presets: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		adjustments TEXT NOT NULL,
		built_in INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	_, err := s.db.Exec(schema)
	return err
}

// Create stores a new preset from a snapshot of adj. The snapshot is taken
// with Clone, so the caller's live adjustments can keep changing without
// affecting the stored preset.
func (s *Store) Create(name, description string, tags []string, adj engine.Adjustments) (*Preset, error) {
	if name == "" {
		return nil, &engine.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Preset{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Tags:        append([]string(nil), tags...),
		Adjustments: adj.Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) insert(p *Preset) error {
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}
	adjJSON, err := json.Marshal(p.Adjustments)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO presets (id, name, description, tags, adjustments, built_in, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, string(tagsJSON), string(adjJSON),
		boolToInt(p.BuiltIn), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preset: %w", err)
	}
	return nil
}

// Update replaces the name, description, tags, and adjustments of an
// existing preset. Built-in presets are immutable.
func (s *Store) Update(id, name, description string, tags []string, adj engine.Adjustments) (*Preset, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if existing.BuiltIn {
		return nil, ErrBuiltIn
	}
	if name == "" {
		return nil, &engine.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if err := adj.Validate(); err != nil {
		return nil, err
	}

	tagsJSON, err := json.Marshal(append([]string(nil), tags...))
	if err != nil {
		return nil, err
	}
	snapshot := adj.Clone()
	adjJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(
		`UPDATE presets SET name = ?, description = ?, tags = ?, adjustments = ?, updated_at = ? WHERE id = ?`,
		name, description, string(tagsJSON), string(adjJSON), now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update preset: %w", err)
	}

	existing.Name = name
	existing.Description = description
	existing.Tags = tags
	existing.Adjustments = snapshot
	existing.UpdatedAt = now
	return existing, nil
}

// Delete removes a preset. Built-in presets cannot be deleted.
func (s *Store) Delete(id string) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}
	if existing.BuiltIn {
		return ErrBuiltIn
	}
	_, err = s.db.Exec(`DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}

// Get returns the preset with the given ID, or ErrNotFound.
func (s *Store) Get(id string) (*Preset, error) {
	row := s.db.QueryRow(
		`SELECT id, name, description, tags, adjustments, built_in, created_at, updated_at
		 FROM presets WHERE id = ?`, id)
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// List returns all presets, built-ins first, then by name.
func (s *Store) List() ([]*Preset, error) {
	rows, err := s.db.Query(
		`SELECT id, name, description, tags, adjustments, built_in, created_at, updated_at
		 FROM presets ORDER BY built_in DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()
	return collectPresets(rows)
}

// Search returns presets whose name or description contains query
// (case-insensitive) and which carry every requested tag. An empty query
// with no tags matches everything.
func (s *Store) Search(query string, tags []string) ([]*Preset, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var out []*Preset
	for _, p := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if !hasAllTags(p.Tags, tags) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPreset(row rowScanner) (*Preset, error) {
	var (
		p        Preset
		tagsJSON string
		adjJSON  string
		builtIn  int
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &tagsJSON, &adjJSON,
		&builtIn, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
		return nil, fmt.Errorf("corrupt tags for preset %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(adjJSON), &p.Adjustments); err != nil {
		return nil, fmt.Errorf("corrupt adjustments for preset %s: %w", p.ID, err)
	}
	p.BuiltIn = builtIn != 0
	return &p, nil
}

func collectPresets(rows *sql.Rows) ([]*Preset, error) {
	var out []*Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
