package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS slots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			name            TEXT NOT NULL CHECK(name <> ''),
			resource        TEXT NOT NULL DEFAULT '',
			start           TEXT NOT NULL,
			stop            TEXT NOT NULL CHECK(stop >= start),
			allocated_hours REAL NOT NULL DEFAULT 0 CHECK(allocated_hours >= 0),
			created_at      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_slots_start ON slots(start);
		CREATE INDEX IF NOT EXISTS idx_slots_stop ON slots(stop);
		CREATE INDEX IF NOT EXISTS idx_slots_resource ON slots(resource);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating slots table: %w", err)
	}

	return nil
}
