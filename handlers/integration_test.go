// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/site-reviews/identity"
	"github.com/danielhkuo/site-reviews/models"
	"github.com/danielhkuo/site-reviews/testutil"
)

// TestReviewLifecycle tests the complete end-to-end workflow:
// 1. Fetch a captcha
// 2. Create a first review with the solved captcha
// 3. Post again under the same name without a captcha
// 4. List and verify ordering and field round-trip
// 5. Delete one review by token, the other by identity cookie
func TestReviewLifecycle(t *testing.T) {
	h, _ := newTestHandler(t)

	// Step 1: fetch a captcha and solve it
	w := httptest.NewRecorder()
	h.GetCaptcha(w, testutil.MakeRequest("GET", "/api/reviews/captcha", nil, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - captcha fetch failed: %d - %s", w.Code, w.Body.String())
	}
	var captchaResp models.CaptchaResponse
	testutil.AssertJSON(t, w, &captchaResp)

	parts := strings.Split(strings.TrimSuffix(captchaResp.Question, " = ?"), " + ")
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	answer := fmt.Sprintf("%d", a+b)
	t.Logf("Step 1 - captcha %s: %s -> %s", captchaResp.CID, captchaResp.Question, answer)

	// Step 2: create the first review
	req := testutil.MakeRequest("POST", "/api/reviews", models.CreateReviewRequest{
		Name:          "Alice",
		Text:          strPtr("wonderful research"),
		CaptchaID:     captchaResp.CID,
		CaptchaAnswer: answer,
	}, nil)
	w = httptest.NewRecorder()
	h.CreateReview(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 2 - create failed: %d - %s", w.Code, w.Body.String())
	}
	var first models.CreateReviewResponse
	testutil.AssertJSON(t, w, &first)

	var clientCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == identity.CookieName {
			clientCookie = c
		}
	}
	if clientCookie == nil {
		t.Fatal("Step 2 - no identity cookie set")
	}
	t.Logf("Step 2 - created review %d", first.ID)

	// Step 3: same client, same name, no captcha
	req = testutil.MakeRequest("POST", "/api/reviews", models.CreateReviewRequest{
		Name: "Alice",
		Text: strPtr("still wonderful"),
	}, nil)
	req.AddCookie(clientCookie)
	w = httptest.NewRecorder()
	h.CreateReview(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 3 - follow-up create failed: %d - %s", w.Code, w.Body.String())
	}
	var second models.CreateReviewResponse
	testutil.AssertJSON(t, w, &second)

	// Step 4: list and verify
	w = httptest.NewRecorder()
	h.ListReviews(w, testutil.MakeRequest("GET", "/api/reviews", nil, nil))
	var listed models.ListReviewsResponse
	testutil.AssertJSON(t, w, &listed)
	if len(listed.Reviews) != 2 {
		t.Fatalf("Step 4 - expected 2 reviews, got %d", len(listed.Reviews))
	}
	// Newest first; both posts may share a ts, so id breaks the tie
	if listed.Reviews[0].ID != second.ID {
		t.Errorf("Step 4 - expected review %d first, got %d", second.ID, listed.Reviews[0].ID)
	}
	want := models.ReviewSummary{ID: first.ID, Name: first.Name, Text: first.Text, TS: first.TS}
	if listed.Reviews[1] != want {
		t.Errorf("Step 4 - round trip mismatch: got %+v, want %+v", listed.Reviews[1], want)
	}

	// Step 5a: delete the first review with its token, from a bare request
	req = testutil.MakeRequest("DELETE", fmt.Sprintf("/api/reviews/%d", first.ID),
		models.DeleteReviewRequest{DeleteToken: first.DeleteToken}, nil)
	req.SetPathValue("id", fmt.Sprintf("%d", first.ID))
	w = httptest.NewRecorder()
	h.DeleteReview(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5a - token delete failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 5b: delete the second by identity cookie, no token
	req = testutil.MakeRequest("DELETE", fmt.Sprintf("/api/reviews/%d", second.ID), nil, nil)
	req.SetPathValue("id", fmt.Sprintf("%d", second.ID))
	req.AddCookie(clientCookie)
	w = httptest.NewRecorder()
	h.DeleteReview(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5b - cookie delete failed: %d - %s", w.Code, w.Body.String())
	}

	// Nothing left
	w = httptest.NewRecorder()
	h.ListReviews(w, testutil.MakeRequest("GET", "/api/reviews", nil, nil))
	listed = models.ListReviewsResponse{}
	testutil.AssertJSON(t, w, &listed)
	if len(listed.Reviews) != 0 {
		t.Errorf("Expected empty listing, got %d reviews", len(listed.Reviews))
	}
}
