package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"barkday/internal/model"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	EnsureSchema(ctx context.Context) error
	InsertGuestbookEntry(ctx context.Context, e *model.GuestbookEntry) (int64, error)
	ListGuestbookEntries(ctx context.Context, limit int) ([]model.GuestbookEntry, error)
	DeleteGuestbookEntry(ctx context.Context, id int64) error
	InsertRSVP(ctx context.Context, resp *model.RSVPResponse) (int64, error)
	ListRSVPs(ctx context.Context, limit int) ([]model.RSVPResponse, error)
}

type repository struct {
	db  *sql.DB
	log *zerolog.Logger
}

// OpenDB opens (or creates) the sqlite database file. The pool is capped to a
// single connection because sqlite allows only one writer at a time.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

func NewRepository(db *sql.DB, log *zerolog.Logger) (Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &repository{db: db, log: log}, nil
}

// EnsureSchema creates the two tables if they do not exist. Safe to run on
// every process start.
func (r *repository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS guestbook (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			name TEXT NOT NULL,
			message TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rsvp (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			name TEXT NOT NULL,
			contact TEXT NOT NULL,
			attend TEXT NOT NULL,
			people INTEGER NOT NULL,
			memo TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	r.log.Info().Msg("schema ensured")
	return nil
}

func (r *repository) InsertGuestbookEntry(ctx context.Context, e *model.GuestbookEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO guestbook (created_at, name, message) VALUES (?, ?, ?)`,
		e.CreatedAt, e.Name, e.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert guestbook entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (r *repository) ListGuestbookEntries(ctx context.Context, limit int) ([]model.GuestbookEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, name, message FROM guestbook ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guestbook entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.GuestbookEntry, 0)
	for rows.Next() {
		var e model.GuestbookEntry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Name, &e.Message); err != nil {
			return nil, fmt.Errorf("failed to scan guestbook entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guestbook entries: %w", err)
	}

	return entries, nil
}

func (r *repository) DeleteGuestbookEntry(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guestbook WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete guestbook entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) InsertRSVP(ctx context.Context, resp *model.RSVPResponse) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO rsvp (created_at, name, contact, attend, people, memo) VALUES (?, ?, ?, ?, ?, ?)`,
		resp.CreatedAt, resp.Name, resp.Contact, resp.Attend, resp.People, resp.Memo,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert rsvp: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

func (r *repository) ListRSVPs(ctx context.Context, limit int) ([]model.RSVPResponse, error) {
	// memo is nullable in pre-existing databases.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, name, contact, attend, people, COALESCE(memo, '')
		 FROM rsvp ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	responses := make([]model.RSVPResponse, 0)
	for rows.Next() {
		var resp model.RSVPResponse
		if err := rows.Scan(&resp.ID, &resp.CreatedAt, &resp.Name, &resp.Contact, &resp.Attend, &resp.People, &resp.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}

	return responses, nil
}
