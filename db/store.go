// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/site-reviews/models"
)

// Store is the durable query surface for reviews and captchas. All methods
// commit before returning; there are no application-level transactions
// spanning calls.
type Store struct {
	db     *sql.DB
	dbType string
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertCaptcha upserts a captcha challenge by cid.
func (s *Store) InsertCaptcha(cid, answer string, expiresAt int64) error {
	_, err := s.db.Exec(`
		INSERT INTO captchas (cid, answer, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cid) DO UPDATE SET
			answer = EXCLUDED.answer,
			expires_at = EXCLUDED.expires_at
	`, cid, answer, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert captcha: %w", err)
	}
	return nil
}

// FindCaptcha looks up a captcha by cid. ok is false when no record exists.
func (s *Store) FindCaptcha(cid string) (answer string, expiresAt int64, ok bool, err error) {
	err = s.db.QueryRow(`
		SELECT answer, expires_at FROM captchas WHERE cid = $1
	`, cid).Scan(&answer, &expiresAt)
	if err == sql.ErrNoRows {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to query captcha: %w", err)
	}
	return answer, expiresAt, true, nil
}

// DeleteCaptcha removes a captcha. Deleting a missing cid is not an error.
func (s *Store) DeleteCaptcha(cid string) error {
	if _, err := s.db.Exec(`DELETE FROM captchas WHERE cid = $1`, cid); err != nil {
		return fmt.Errorf("failed to delete captcha: %w", err)
	}
	return nil
}

// InsertReview stores a new review and returns its store-assigned id.
// IDs are strictly increasing.
func (s *Store) InsertReview(name, text string, ts int64, clientID, deleteToken string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO reviews (name, text, ts, client_id, delete_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, name, text, ts, clientID, deleteToken).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert review: %w", err)
	}
	return id, nil
}

// ListReviews returns up to limit reviews, newest ts first. Ties break on
// id descending so ordering is stable.
func (s *Store) ListReviews(limit int) ([]models.Review, error) {
	rows, err := s.db.Query(`
		SELECT id, name, text, ts, client_id, delete_token
		FROM reviews
		ORDER BY ts DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		var clientID sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.Text, &r.TS, &clientID, &r.DeleteToken); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		r.ClientID = clientID.String
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, nil
}

// LatestReviewByClient returns the client's most recent review, or nil when
// the client has never posted.
func (s *Store) LatestReviewByClient(clientID string) (*models.Review, error) {
	row := s.db.QueryRow(`
		SELECT id, name, text, ts, client_id, delete_token
		FROM reviews
		WHERE client_id = $1
		ORDER BY ts DESC, id DESC
		LIMIT 1
	`, clientID)
	return scanReview(row)
}

// FindReviewByID returns the review with the given id, or nil when none.
func (s *Store) FindReviewByID(id int64) (*models.Review, error) {
	row := s.db.QueryRow(`
		SELECT id, name, text, ts, client_id, delete_token
		FROM reviews
		WHERE id = $1
	`, id)
	return scanReview(row)
}

// DeleteReviewByID removes a review. Deleting a missing id is not an error.
func (s *Store) DeleteReviewByID(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM reviews WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func scanReview(row *sql.Row) (*models.Review, error) {
	var r models.Review
	var clientID sql.NullString
	err := row.Scan(&r.ID, &r.Name, &r.Text, &r.TS, &clientID, &r.DeleteToken)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}
	r.ClientID = clientID.String
	return &r, nil
}
