// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/planning/internal/planning"
)

// timeLayout is used for every stored timestamp. Values are always UTC so
// that string comparison in SQL matches chronological order.
const timeLayout = "2006-01-02T15:04:05Z"

const slotColumns = `id, name, resource, start, stop, allocated_hours, created_at`

// SQLite implements planning.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSlot adds a new slot to the repository.
func (s *SQLite) CreateSlot(ctx context.Context, slot *planning.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	return insertSlot(ctx, s.db, slot)
}

// CreateSlots adds multiple slots in a single transaction.
// Nothing is stored if any slot is invalid.
func (s *SQLite) CreateSlots(ctx context.Context, slots []*planning.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("slot %q: %w", slot.Name, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, slot := range slots {
		if err := insertSlot(ctx, tx, slot); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertSlot(ctx context.Context, ex execer, slot *planning.Slot) error {
	query := `
		INSERT INTO slots (name, resource, start, stop, allocated_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}

	result, err := ex.ExecContext(ctx, query,
		slot.Name,
		slot.Resource,
		formatTime(slot.Start),
		formatTime(slot.Stop),
		slot.AllocatedHours,
		formatTime(slot.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting slot %q: %w", slot.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	slot.ID = id
	return nil
}

// GetSlot retrieves a slot by ID.
func (s *SQLite) GetSlot(ctx context.Context, id int64) (*planning.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = ?`

	slot, err := scanSlot(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %d: %w", id, planning.ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying slot: %w", err)
	}
	return slot, nil
}

// DeleteSlot removes a slot by ID.
func (s *SQLite) DeleteSlot(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting slot: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("slot %d: %w", id, planning.ErrSlotNotFound)
	}
	return nil
}

// ListSlotsInRange returns slots overlapping [start, end), ordered by start.
func (s *SQLite) ListSlotsInRange(ctx context.Context, start, end time.Time) ([]*planning.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE start < ?
		  AND (stop > ? OR (stop = start AND start >= ?))
		ORDER BY start, id
	`
	from, to := formatTime(start), formatTime(end)
	return s.querySlots(ctx, query, to, from, from)
}

// ListAllSlots returns every slot ordered by ID.
func (s *SQLite) ListAllSlots(ctx context.Context) ([]*planning.Slot, error) {
	return s.querySlots(ctx, `SELECT `+slotColumns+` FROM slots ORDER BY id`)
}

func (s *SQLite) querySlots(ctx context.Context, query string, args ...any) ([]*planning.Slot, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var slots []*planning.Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return slots, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(row scanner) (*planning.Slot, error) {
	var (
		slot                   planning.Slot
		start, stop, createdAt string
	)

	err := row.Scan(
		&slot.ID,
		&slot.Name,
		&slot.Resource,
		&start,
		&stop,
		&slot.AllocatedHours,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if slot.Start, err = parseTime(start); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if slot.Stop, err = parseTime(stop); err != nil {
		return nil, fmt.Errorf("parsing stop: %w", err)
	}
	if slot.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	return &slot, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
