package internal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrTranscriptNotFound is returned when a transcript ID is not in the store
var ErrTranscriptNotFound = errors.New("transcript not found")

const storeSchema = `
CREATE TABLE IF NOT EXISTS transcripts (
	id              TEXT PRIMARY KEY,
	chat            TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	judgment        TEXT NOT NULL,
	prompt_count    INTEGER NOT NULL,
	expansion_count INTEGER NOT NULL,
	content_hash    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcripts_content_hash ON transcripts(content_hash);
CREATE TABLE IF NOT EXISTS messages (
	transcript_id TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	role          TEXT NOT NULL,
	prompt        TEXT NOT NULL DEFAULT '',
	content       TEXT NOT NULL,
	PRIMARY KEY (transcript_id, seq)
);`

// TranscriptStore persists transcripts in a SQLite database
type TranscriptStore struct {
	db   *sql.DB
	path string
}

// TranscriptSummary is one row of the transcript listing
type TranscriptSummary struct {
	ID             string
	Chat           string
	CreatedAt      string
	MessageCount   int
	PromptCount    int
	ExpansionCount int
}

// OpenStore opens (creating if needed) the transcript database at path
func OpenStore(path string) (*TranscriptStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StorageError{Path: path, Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("failed to create schema: %w", err)}
	}

	return &TranscriptStore{db: db, path: path}, nil
}

// Path returns the database path
func (s *TranscriptStore) Path() string {
	return s.path
}

// Close closes the database
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// Save writes t in a single transaction, assigning an ID and creation time when
// missing. t is only stamped once the transaction commits.
// A transcript with the same content as a stored one is not written again:
// t takes the stored ID and creation time instead.
func (s *TranscriptStore) Save(t *Transcript) error {
	hash := TranscriptHash(t)

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Path: s.path, Op: "save", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var existingID, existingCreated string
	err = tx.QueryRow("SELECT id, created_at FROM transcripts WHERE content_hash = ? LIMIT 1", hash).Scan(&existingID, &existingCreated)
	switch {
	case err == nil:
		LogDebug("Transcript content already stored as %s", existingID)
		t.ID = existingID
		t.CreatedAt = existingCreated
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return &StorageError{Path: s.path, Op: "save", Err: fmt.Errorf("lookup by content failed: %w", err)}
	}

	id, createdAt := t.ID, t.CreatedAt
	if id == "" {
		id = uuid.NewString()
	}
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err = tx.Exec(
		"INSERT INTO transcripts (id, chat, created_at, judgment, prompt_count, expansion_count, content_hash) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, t.Chat, createdAt, t.Metadata.Judgment, t.Metadata.PromptCount, t.Metadata.ExpansionCount, hash,
	)
	if err != nil {
		return &StorageError{Path: s.path, Op: "save", Err: fmt.Errorf("insert transcript %s: %w", id, err)}
	}

	stmt, err := tx.Prepare("INSERT INTO messages (transcript_id, seq, role, prompt, content) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return &StorageError{Path: s.path, Op: "save", Err: err}
	}
	defer stmt.Close()

	for i, msg := range t.Messages {
		if _, err := stmt.Exec(id, i, msg.Role, msg.Prompt, msg.Content); err != nil {
			return &StorageError{Path: s.path, Op: "save", Err: fmt.Errorf("insert message %d: %w", i, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Path: s.path, Op: "save", Err: err}
	}
	t.ID, t.CreatedAt = id, createdAt

	LogDebug("Saved transcript %s (%d messages)", t.ID, len(t.Messages))
	return nil
}

// Load reads the transcript with the given ID
func (s *TranscriptStore) Load(id string) (*Transcript, error) {
	t := &Transcript{ID: id}
	row := s.db.QueryRow(
		"SELECT chat, created_at, judgment, prompt_count, expansion_count FROM transcripts WHERE id = ?", id,
	)
	err := row.Scan(&t.Chat, &t.CreatedAt, &t.Metadata.Judgment, &t.Metadata.PromptCount, &t.Metadata.ExpansionCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &StorageError{Path: s.path, Op: "load", Err: fmt.Errorf("%w: %s", ErrTranscriptNotFound, id)}
	}
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "load", Err: err}
	}

	rows, err := s.db.Query("SELECT role, prompt, content FROM messages WHERE transcript_id = ? ORDER BY seq", id)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "load", Err: fmt.Errorf("query failed: %w", err)}
	}
	defer rows.Close()

	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.Role, &msg.Prompt, &msg.Content); err != nil {
			return nil, &StorageError{Path: s.path, Op: "load", Err: fmt.Errorf("scan failed: %w", err)}
		}
		t.Messages = append(t.Messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: s.path, Op: "load", Err: fmt.Errorf("rows iteration error: %w", err)}
	}

	t.Metadata.MessageCount = len(t.Messages)
	return t, nil
}

// List returns summaries of all transcripts, newest first
func (s *TranscriptStore) List() ([]TranscriptSummary, error) {
	query := `
	SELECT t.id, t.chat, t.created_at, t.prompt_count, t.expansion_count, COUNT(m.seq)
	FROM transcripts t
	LEFT JOIN messages m ON m.transcript_id = t.id
	GROUP BY t.id
	ORDER BY t.created_at DESC, t.id`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "list", Err: fmt.Errorf("query failed: %w", err)}
	}
	defer rows.Close()

	var summaries []TranscriptSummary
	for rows.Next() {
		var sum TranscriptSummary
		if err := rows.Scan(&sum.ID, &sum.Chat, &sum.CreatedAt, &sum.PromptCount, &sum.ExpansionCount, &sum.MessageCount); err != nil {
			return nil, &StorageError{Path: s.path, Op: "list", Err: fmt.Errorf("scan failed: %w", err)}
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: s.path, Op: "list", Err: fmt.Errorf("rows iteration error: %w", err)}
	}

	return summaries, nil
}
