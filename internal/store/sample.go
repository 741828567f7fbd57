package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Sample is the index entry of one persisted sample folder.
type Sample struct {
	ID        string    `json:"id"`
	WordID    string    `json:"word_id"`
	Folder    string    `json:"folder"`
	Frames    int       `json:"frames"`
	CreatedAt time.Time `json:"created_at"`
}

// SampleRepository provides CRUD operations for sample index entries.
type SampleRepository struct {
	db *sql.DB
}

// Samples returns the sample repository for this store.
func (s *Store) Samples() *SampleRepository {
	return &SampleRepository{db: s.db}
}

// Create inserts a sample. ID and CreatedAt are filled in when empty.
func (r *SampleRepository) Create(sample *Sample) error {
	if sample.ID == "" {
		sample.ID = uuid.NewString()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO samples (id, word_id, folder, frames, created_at) VALUES (?, ?, ?, ?, ?)`,
		sample.ID, sample.WordID, sample.Folder, sample.Frames, sample.CreatedAt,
	)
	return err
}

// ListByWord retrieves all samples of a word, oldest first.
func (r *SampleRepository) ListByWord(wordID string) ([]Sample, error) {
	rows, err := r.db.Query(
		`SELECT id, word_id, folder, frames, created_at
		 FROM samples
		 WHERE word_id = ?
		 ORDER BY created_at, folder`,
		wordID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var s Sample
		if err := rows.Scan(&s.ID, &s.WordID, &s.Folder, &s.Frames, &s.CreatedAt); err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// CountByWord returns how many samples a word has.
func (r *SampleRepository) CountByWord(wordID string) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM samples WHERE word_id = ?`, wordID).Scan(&n)
	return n, err
}

// Delete removes a sample index entry. The folder on disk is left alone.
func (r *SampleRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM samples WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
