// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

// CreateReviewRequest is the POST /api/reviews payload. Text is a pointer so
// a missing "text" field can be told apart from an explicit empty string.
type CreateReviewRequest struct {
	Name          string  `json:"name"`
	Text          *string `json:"text"`
	CaptchaID     string  `json:"captcha_id"`
	CaptchaAnswer string  `json:"captcha_answer"`
}

type DeleteReviewRequest struct {
	DeleteToken string `json:"delete_token"`
}

// Response types

type HealthResponse struct {
	OK bool `json:"ok"`
}

type CaptchaResponse struct {
	CID      string `json:"cid"`
	Question string `json:"question"`
}

type CreateReviewResponse struct {
	ID          int64  `json:"id"`
	DeleteToken string `json:"delete_token"`
	Name        string `json:"name"`
	Text        string `json:"text"`
	TS          int64  `json:"ts"`
}

type ListReviewsResponse struct {
	Reviews []ReviewSummary `json:"reviews"`
}

// ReviewSummary is the public listing shape. It never carries the client
// identity or the delete token.
type ReviewSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

type DeleteReviewResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type Review struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Text        string `json:"text"`
	TS          int64  `json:"ts"` // creation time, seconds since epoch
	ClientID    string `json:"-"`  // Never expose in JSON
	DeleteToken string `json:"-"`  // Never expose in JSON
}

// Summary returns the public listing shape of a review.
func (r Review) Summary() ReviewSummary {
	return ReviewSummary{ID: r.ID, Name: r.Name, Text: r.Text, TS: r.TS}
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
