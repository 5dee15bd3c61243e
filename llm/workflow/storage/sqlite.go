package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultTable = "report_workflows"

// SQLiteStore persists sessions in a local sqlite database
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// NewSQLiteStore opens (and if needed creates) the database file and table
func NewSQLiteStore(dbFile, table string) (*SQLiteStore, error) {
	if table == "" {
		table = defaultTable
	}

	db, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db, table: table}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		topic_key  TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		topic      TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`, s.table)

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}
	return nil
}

// Get retrieves the session for a topic
func (s *SQLiteStore) Get(ctx context.Context, topic string) (*Session, error) {
	query := fmt.Sprintf(
		`SELECT session_id, topic, content, created_at, updated_at FROM %s WHERE topic_key = ?`, s.table)

	var session Session
	err := s.db.QueryRowContext(ctx, query, TopicKey(topic)).Scan(
		&session.SessionID, &session.Topic, &session.Content,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

// Put stores or replaces the session for its topic
func (s *SQLiteStore) Put(ctx context.Context, session *Session) error {
	now := time.Now().UTC()
	created := session.CreatedAt
	if created.IsZero() {
		created = now
	}

	query := fmt.Sprintf(`INSERT INTO %s (topic_key, session_id, topic, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(topic_key) DO UPDATE SET
			session_id = excluded.session_id,
			content    = excluded.content,
			updated_at = excluded.updated_at`, s.table)

	_, err := s.db.ExecContext(ctx, query,
		TopicKey(session.Topic), session.SessionID, session.Topic, session.Content, created, now)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Delete removes the session for a topic
func (s *SQLiteStore) Delete(ctx context.Context, topic string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE topic_key = ?`, s.table)
	if _, err := s.db.ExecContext(ctx, query, TopicKey(topic)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// List returns all stored sessions ordered by last update
func (s *SQLiteStore) List(ctx context.Context) ([]Session, error) {
	query := fmt.Sprintf(
		`SELECT session_id, topic, content, created_at, updated_at FROM %s ORDER BY updated_at DESC`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(&session.SessionID, &session.Topic, &session.Content,
			&session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
