// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"sync"
	"testing"
)

// TestConcurrentAccess exercises the store under parallel writers and
// readers. WAL mode plus the busy timeout must serialize writes without
// surfacing lock errors to callers.
func TestConcurrentAccess(t *testing.T) {
	store := openTestStore(t)

	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker*2)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", w)
			for i := 0; i < perWorker; i++ {
				if _, err := store.InsertReview("Worker", "text", int64(i), clientID, "tok"); err != nil {
					errs <- err
				}
				if _, err := store.ListReviews(50); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent access error: %v", err)
	}

	reviews, err := store.ListReviews(1000)
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(reviews) != workers*perWorker {
		t.Errorf("Expected %d reviews, got %d", workers*perWorker, len(reviews))
	}

	// IDs are unique and strictly increasing per insert
	seen := make(map[int64]bool)
	for _, r := range reviews {
		if seen[r.ID] {
			t.Errorf("Duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}
