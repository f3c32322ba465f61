// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/site-reviews/cliparse"
	"github.com/danielhkuo/site-reviews/db"
)

// GetTestConfig returns a config pointing at a throwaway SQLite file.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         8080,
		DatabaseType: "sqlite",
		DatabaseURL:  filepath.Join(t.TempDir(), "test.db"),
	}
}

// SetupTestStore opens a fresh store with the full schema. The database
// lives under t.TempDir so every test starts clean.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(GetTestConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store
}

// SeedCaptcha plants a challenge with a known answer, far from expiry.
func SeedCaptcha(t *testing.T, store *db.Store, cid, answer string) {
	t.Helper()
	if err := store.InsertCaptcha(cid, answer, 1<<60); err != nil {
		t.Fatalf("Failed to seed captcha: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
