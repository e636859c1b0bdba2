// Package notes is the SQLite-backed note store. Notes are plain
// markdown bodies with a title; deletion is soft so notes can be
// restored. Titles are deduplicated by hash, which keeps bulk creation
// idempotent.
package notes

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nadia/entitle/internal/titlecase"
)

// Note represents a single note.
type Note struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Pinned    bool       `json:"pinned"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Store handles SQLite operations for notes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the note database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    title_hash INTEGER NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    pinned INTEGER DEFAULT 0,
    deleted_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_notes_title_hash ON notes(title_hash);
`
	_, err := s.db.Exec(schema)
	return err
}

// generateID creates a new note ID with "nt-" prefix and 8 hex chars.
func generateID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "nt-" + hex.EncodeToString(b), nil
}

// titleHash hashes a normalized title for duplicate detection: case and
// surrounding whitespace do not distinguish titles.
func titleHash(title string) int64 {
	return int64(xxhash.Sum64String(strings.ToLower(strings.TrimSpace(title))))
}

// Create inserts a new note.
func (s *Store) Create(title, content string) (*Note, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("generate ID: %w", err)
	}

	now := time.Now().UTC()
	note := &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.Exec(`
		INSERT INTO notes (id, title, title_hash, content, created_at, updated_at, pinned)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, titleHash(note.Title), note.Content,
		note.CreatedAt.Format(time.RFC3339),
		note.UpdatedAt.Format(time.RFC3339),
		boolToInt(note.Pinned))
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	return note, nil
}

// BulkCreate creates one note per non-empty line of input, running each
// title through the title-case engine first. Lines whose normalized
// title already exists (in the input or the store) are skipped. Returns
// the created notes and the number of skipped lines.
func (s *Store) BulkCreate(input string, style titlecase.Style, tagger titlecase.Tagger) ([]Note, int, error) {
	var created []Note
	skipped := 0
	seen := make(map[int64]struct{})

	for _, line := range strings.Split(input, "\n") {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}

		title := titlecase.ConvertWithTagger(raw, style, tagger)
		h := titleHash(title)
		if _, dup := seen[h]; dup {
			skipped++
			continue
		}
		seen[h] = struct{}{}

		exists, err := s.titleExists(h)
		if err != nil {
			return created, skipped, err
		}
		if exists {
			skipped++
			continue
		}

		note, err := s.Create(title, "# "+title+"\n")
		if err != nil {
			return created, skipped, err
		}
		created = append(created, *note)
	}

	return created, skipped, nil
}

func (s *Store) titleExists(hash int64) (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM notes WHERE title_hash = ? AND deleted_at IS NULL
	`, hash).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query title hash: %w", err)
	}
	return n > 0, nil
}

// Update modifies an existing note.
func (s *Store) Update(note *Note) error {
	prev, err := s.Get(note.ID)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", note.ID)
	}

	note.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(`
		UPDATE notes SET title = ?, title_hash = ?, content = ?, updated_at = ?, pinned = ?
		WHERE id = ? AND deleted_at IS NULL
	`, note.Title, titleHash(note.Title), note.Content,
		note.UpdatedAt.Format(time.RFC3339),
		boolToInt(note.Pinned),
		note.ID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Retitle recases a note's title with the given style and keeps the
// first line of the content in sync when it is a markdown heading for
// the old title.
func (s *Store) Retitle(id string, style titlecase.Style, tagger titlecase.Tagger) (*Note, error) {
	note, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if note == nil || note.DeletedAt != nil {
		return nil, fmt.Errorf("note not found: %s", id)
	}

	newTitle := titlecase.ConvertWithTagger(note.Title, style, tagger)
	if newTitle == note.Title {
		return note, nil
	}

	if first, rest, ok := strings.Cut(note.Content, "\n"); ok || first != "" {
		if strings.TrimSpace(first) == "# "+note.Title {
			note.Content = "# " + newTitle
			if ok {
				note.Content += "\n" + rest
			}
		}
	}
	note.Title = newTitle

	if err := s.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete performs a soft delete.
func (s *Store) Delete(id string) error {
	prev, err := s.Get(id)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", id)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		UPDATE notes SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, now.Format(time.RFC3339), now.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("soft delete note: %w", err)
	}
	return nil
}

// Restore undoes a soft delete.
func (s *Store) Restore(id string) error {
	prev, err := s.Get(id)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", id)
	}
	if prev.DeletedAt == nil {
		return fmt.Errorf("note not deleted: %s", id)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		UPDATE notes SET deleted_at = NULL, updated_at = ?
		WHERE id = ?
	`, now.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("restore note: %w", err)
	}
	return nil
}

// TogglePin toggles the pinned state of a note.
func (s *Store) TogglePin(id string) error {
	note, err := s.Get(id)
	if err != nil {
		return err
	}
	if note == nil || note.DeletedAt != nil {
		return fmt.Errorf("note not found: %s", id)
	}
	note.Pinned = !note.Pinned
	return s.Update(note)
}

// Get retrieves a note by ID, including soft-deleted notes.
func (s *Store) Get(id string) (*Note, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, created_at, updated_at, pinned, deleted_at
		FROM notes WHERE id = ?
	`, id)

	note, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}
	return note, nil
}

// List retrieves all non-deleted notes, pinned first, newest first.
func (s *Store) List() ([]Note, error) {
	return s.queryNotes(`
		SELECT id, title, content, created_at, updated_at, pinned, deleted_at
		FROM notes
		WHERE deleted_at IS NULL
		ORDER BY pinned DESC, updated_at DESC`)
}

// ListDeleted retrieves soft-deleted notes, most recently deleted first.
func (s *Store) ListDeleted() ([]Note, error) {
	return s.queryNotes(`
		SELECT id, title, content, created_at, updated_at, pinned, deleted_at
		FROM notes
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC`)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*Note, error) {
	var note Note
	var createdAt, updatedAt string
	var deletedAt sql.NullString
	var pinned int

	err := row.Scan(&note.ID, &note.Title, &note.Content,
		&createdAt, &updatedAt, &pinned, &deletedAt)
	if err != nil {
		return nil, err
	}

	note.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	note.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	note.Pinned = pinned == 1
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		note.DeletedAt = &t
	}
	return &note, nil
}

func (s *Store) queryNotes(query string) ([]Note, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var result []Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		result = append(result, *note)
	}
	return result, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
