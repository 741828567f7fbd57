package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Word is a capture target: the gesture label samples are recorded for.
type Word struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// WordRepository provides access to capture targets.
type WordRepository struct {
	db *sql.DB
}

// Words returns the word repository for this store.
func (s *Store) Words() *WordRepository {
	return &WordRepository{db: s.db}
}

// GetByName retrieves a word by its name.
func (r *WordRepository) GetByName(name string) (*Word, error) {
	w := &Word{}

	err := r.db.QueryRow(
		`SELECT id, name, created_at FROM words WHERE name = ?`,
		name,
	).Scan(&w.ID, &w.Name, &w.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return w, nil
}

// GetOrCreate returns the word with the given name, creating it if needed.
func (r *WordRepository) GetOrCreate(name string) (*Word, error) {
	w, err := r.GetByName(name)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	w = &Word{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	_, err = r.db.Exec(
		`INSERT INTO words (id, name, created_at) VALUES (?, ?, ?)`,
		w.ID, w.Name, w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// List retrieves all words ordered by name.
func (r *WordRepository) List() ([]*Word, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM words ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []*Word
	for rows.Next() {
		w := &Word{}
		if err := rows.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
