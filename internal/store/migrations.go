package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Words table - one row per capture target
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Samples table - one row per persisted sample folder
		`CREATE TABLE IF NOT EXISTS samples (
			id TEXT PRIMARY KEY,
			word_id TEXT NOT NULL REFERENCES words(id) ON DELETE CASCADE,
			folder TEXT NOT NULL UNIQUE,
			frames INTEGER NOT NULL CHECK(frames > 0),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_samples_word_id ON samples(word_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
