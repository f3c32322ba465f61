// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/site-reviews/captcha"
	"github.com/danielhkuo/site-reviews/identity"
	"github.com/danielhkuo/site-reviews/middleware"
	"github.com/danielhkuo/site-reviews/models"
	"github.com/danielhkuo/site-reviews/reviews"
)

type ReviewHandler struct {
	service *reviews.Service
	captcha *captcha.Manager
}

func NewReviewHandler(service *reviews.Service, captcha *captcha.Manager) *ReviewHandler {
	return &ReviewHandler{service: service, captcha: captcha}
}

// Health handles GET /api/reviews/health
func (h *ReviewHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{OK: true})
}

// GetCaptcha handles GET /api/reviews/captcha
// Issues a fresh arithmetic challenge
func (h *ReviewHandler) GetCaptcha(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.captcha.Issue()
	if err != nil {
		slog.Error("failed to issue captcha", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.CaptchaResponse{
		CID:      challenge.CID,
		Question: challenge.Question,
	})
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.URL.Query().Get("limit"))
	if err != nil {
		slog.Error("failed to list reviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ListReviewsResponse{Reviews: summaries})
}

// CreateReview handles POST /api/reviews
// Sets the aj_client_id cookie so the same client is recognized later
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	clientID, _, err := identity.Resolve(r)
	if err != nil {
		slog.Error("failed to resolve client identity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "identity error")
		return
	}

	review, err := h.service.Create(req, clientID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrNameRequired),
			errors.Is(err, reviews.ErrTextRequired),
			errors.Is(err, reviews.ErrCaptchaFailed):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, reviews.ErrNameConflict):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		default:
			slog.Error("failed to create review", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		}
		return
	}

	slog.Info("review created", "id", review.ID, "name", review.Name)

	identity.Set(w, clientID)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateReviewResponse{
		ID:          review.ID,
		DeleteToken: review.DeleteToken,
		Name:        review.Name,
		Text:        review.Text,
		TS:          review.TS,
	})
}

// DeleteReview handles DELETE /api/reviews/{id}
// Authorized by delete token or by the owning client identity cookie
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
		return
	}

	// Body is optional; no body means no token
	var req models.DeleteReviewRequest
	_ = middleware.ParseJSONBody(r, &req)

	var clientID string
	if c, err := r.Cookie(identity.CookieName); err == nil {
		clientID = c.Value
	}

	if err := h.service.Delete(id, req.DeleteToken, clientID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.Is(err, reviews.ErrUnauthorized):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		default:
			slog.Error("failed to delete review", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "database error")
		}
		return
	}

	slog.Info("review deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, models.DeleteReviewResponse{OK: true})
}

// ReviewsUnavailable answers API requests when the store failed to
// initialize. Page routes keep serving; only the reviews API degrades.
func ReviewsUnavailable(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusServiceUnavailable, "reviews unavailable")
}
