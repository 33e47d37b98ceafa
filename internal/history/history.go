package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Entry is one recorded fixture generation
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Variant   string
	Payload   []byte
}

// Store keeps a log of generated fixtures in a local SQLite database so
// a tester can see what was handed to the scanning app and when
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at INTEGER NOT NULL,
	variant    TEXT    NOT NULL,
	payload    BLOB    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
`

// Open opens the history database at path, creating it if needed
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one generated fixture, compressing the payload
func (s *Store) Record(variant string, payload []byte) error {
	comp := zstdEncoder.EncodeAll(payload, nil)

	_, err := s.db.Exec(
		`INSERT INTO runs (created_at, variant, payload) VALUES (?, ?, ?)`,
		time.Now().UnixMilli(), variant, comp,
	)
	if err != nil {
		return fmt.Errorf("failed to record fixture: %w", err)
	}

	return nil
}

// Recent returns up to limit entries, newest first, with payloads
// decompressed
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, variant, payload FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		var comp []byte
		if err := rows.Scan(&e.ID, &createdAt, &e.Variant, &comp); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		e.CreatedAt = time.UnixMilli(createdAt)
		e.Payload, err = zstdDecoder.DecodeAll(comp, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress payload: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return entries, nil
}
