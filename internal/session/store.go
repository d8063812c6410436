package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mnpat/go-portfolio/internal/config"
	"github.com/mnpat/go-portfolio/internal/logger"
)

// Store persists the session's token and serialized user between client
// runs. Both values are written and cleared together: a token without its
// user (or the reverse) must never survive.
type Store interface {
	// Save writes the token and the user's JSON serialization in one
	// statement, replacing any previous session.
	Save(token, userJSON string) error

	// Load reads the persisted session. Returns [ErrNoStoredSession] if
	// none exists.
	Load() (token, userJSON string, err error)

	// Clear removes the persisted session. Clearing an empty store is not
	// an error.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}

const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			user_json TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	saveSession = `
		INSERT INTO session (id, token, user_json, saved_at)
		VALUES (1, $1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			user_json = excluded.user_json,
			saved_at = excluded.saved_at;`

	loadSession  = `SELECT token, user_json FROM session WHERE id = 1;`
	clearSession = `DELETE FROM session;`
)

type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStore opens (creating if necessary) the session database at
// cfg.DBPath and ensures the schema exists.
func NewSQLiteStore(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (Store, error) {
	if err := createLocalDBFileIfNotExists(cfg.DBPath); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating session database file")
		return nil, fmt.Errorf("error creating session database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting session database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating session table")
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteStore").Msg("session database ready")

	return &sqliteStore{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

func (s *sqliteStore) Save(token, userJSON string) error {
	if _, err := s.db.Exec(saveSession, token, userJSON); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Save").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *sqliteStore) Load() (string, string, error) {
	var token, userJSON string
	if err := s.db.QueryRow(loadSession).Scan(&token, &userJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrNoStoredSession
		}

		s.logger.Err(err).Str("func", "*sqliteStore.Load").Msg("error loading session")
		return "", "", fmt.Errorf("error loading session: %w", err)
	}

	return token, userJSON, nil
}

func (s *sqliteStore) Clear() error {
	if _, err := s.db.Exec(clearSession); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStore.Clear").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
