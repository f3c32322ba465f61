// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package captcha

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/site-reviews/auth"
	"github.com/danielhkuo/site-reviews/db"
)

// TTL is how long an issued challenge stays answerable.
const TTL = 300 * time.Second

// Challenge is a freshly issued arithmetic question.
type Challenge struct {
	CID      string
	Question string
}

// Manager issues and verifies single-use arithmetic challenges backed by
// the store.
type Manager struct {
	store *db.Store
	now   func() time.Time
}

func NewManager(store *db.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Issue creates a challenge "a + b = ?" with a in [2,9] and b in [1,8],
// stores the expected answer, and returns the challenge id and question.
func (m *Manager) Issue() (Challenge, error) {
	a, err := auth.RandomInt(8)
	if err != nil {
		return Challenge{}, err
	}
	b, err := auth.RandomInt(8)
	if err != nil {
		return Challenge{}, err
	}
	a += 2
	b += 1

	cid, err := auth.GenerateID(12)
	if err != nil {
		return Challenge{}, err
	}

	expiresAt := m.now().Add(TTL).Unix()
	answer := fmt.Sprintf("%d", a+b)
	if err := m.store.InsertCaptcha(cid, answer, expiresAt); err != nil {
		return Challenge{}, err
	}

	return Challenge{
		CID:      cid,
		Question: fmt.Sprintf("%d + %d = ?", a, b),
	}, nil
}

// Verify checks a submitted answer. A correct answer within the TTL consumes
// the challenge; an expired challenge is deleted without granting success; a
// wrong answer leaves the challenge in place so a later correct attempt can
// still succeed before expiry.
func (m *Manager) Verify(cid, answer string) (bool, error) {
	if cid == "" {
		return false, nil
	}

	stored, expiresAt, ok, err := m.store.FindCaptcha(cid)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if m.now().Unix() > expiresAt {
		if err := m.store.DeleteCaptcha(cid); err != nil {
			return false, err
		}
		return false, nil
	}

	if strings.TrimSpace(answer) != strings.TrimSpace(stored) {
		return false, nil
	}

	// consume the challenge
	if err := m.store.DeleteCaptcha(cid); err != nil {
		return false, err
	}
	return true, nil
}
