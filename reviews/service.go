// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reviews

import (
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/site-reviews/auth"
	"github.com/danielhkuo/site-reviews/captcha"
	"github.com/danielhkuo/site-reviews/db"
	"github.com/danielhkuo/site-reviews/models"
)

const (
	// DefaultLimit applies when the limit parameter is absent or unparseable.
	DefaultLimit = 200
	// MaxLimit caps how many reviews a single listing may return.
	MaxLimit = 1000
)

// Service enforces the business rules around creating, listing, and
// deleting reviews.
type Service struct {
	store   *db.Store
	captcha *captcha.Manager
	now     func() time.Time
}

func NewService(store *db.Store, captcha *captcha.Manager) *Service {
	return &Service{store: store, captcha: captcha, now: time.Now}
}

// Create validates and stores a new review for the given client identity.
// The returned review carries the delete token; this is the only time the
// token ever leaves the server.
func (s *Service) Create(req models.CreateReviewRequest, clientID string) (models.Review, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Review{}, ErrNameRequired
	}
	if req.Text == nil {
		return models.Review{}, ErrTextRequired
	}
	text := strings.TrimSpace(*req.Text)

	// One client identity is permanently bound to the first name it used.
	prior, err := s.store.LatestReviewByClient(clientID)
	if err != nil {
		return models.Review{}, err
	}
	if prior != nil && prior.Name != name {
		return models.Review{}, ErrNameConflict
	}

	// A captcha gates only the first-ever post from a client; afterwards
	// the sticky-name binding itself is the gate.
	if prior == nil {
		ok, err := s.captcha.Verify(req.CaptchaID, req.CaptchaAnswer)
		if err != nil {
			return models.Review{}, err
		}
		if !ok {
			return models.Review{}, ErrCaptchaFailed
		}
	}

	deleteToken, err := auth.GenerateDeleteToken()
	if err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		Name:        name,
		Text:        text,
		TS:          s.now().Unix(),
		ClientID:    clientID,
		DeleteToken: deleteToken,
	}
	review.ID, err = s.store.InsertReview(review.Name, review.Text, review.TS, review.ClientID, review.DeleteToken)
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// List returns up to the requested number of reviews, newest first.
// limitParam is the raw query value: absent or unparseable falls back to
// DefaultLimit, and anything given is clamped to [1, MaxLimit].
func (s *Service) List(limitParam string) ([]models.ReviewSummary, error) {
	limit := DefaultLimit
	if limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	reviews, err := s.store.ListReviews(limit)
	if err != nil {
		return nil, err
	}

	summaries := []models.ReviewSummary{}
	for _, r := range reviews {
		summaries = append(summaries, r.Summary())
	}
	return summaries, nil
}

// Delete removes a review when authorized by either path: a delete token
// matching the stored one (constant-time compare), or a client identity
// matching the review's owner. Token match wins regardless of identity.
func (s *Service) Delete(id int64, suppliedToken, clientID string) error {
	review, err := s.store.FindReviewByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}

	if suppliedToken != "" && auth.TokenEqual(suppliedToken, review.DeleteToken) {
		return s.store.DeleteReviewByID(id)
	}
	if clientID != "" && clientID == review.ClientID {
		return s.store.DeleteReviewByID(id)
	}
	return ErrUnauthorized
}
