// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/site-reviews/captcha"
	"github.com/danielhkuo/site-reviews/handlers"
	"github.com/danielhkuo/site-reviews/middleware"
	"github.com/danielhkuo/site-reviews/reviews"
)

// pageRoutes maps each site path to its template and fixed title.
var pageRoutes = []struct {
	path     string
	template string
	title    string
}{
	{"/{$}", "index.html", "AJMAL ADAMZ Blockchain Research & Technologies"},
	{"/about", "about.html", "About | Ajmal Adamz"},
	{"/research", "research.html", "Research | Ajmal Adamz"},
	{"/knowledge", "knowledge.html", "History of Blockchain | Ajmal Adamz"},
	{"/blockchain-basic", "blockchain_basic.html", "Blockchain Basic | Ajmal Adamz"},
	{"/contact", "contact.html", "Contact | Ajmal Adamz"},
	{"/labs", "labs.html", "Labs | Ajmal Adamz Research"},
}

// NewRouter wires the page routes and the reviews API. A nil service means
// the store failed to initialize: the API answers 503 while the pages stay
// up.
func NewRouter(service *reviews.Service, captchas *captcha.Manager, pages *handlers.PageHandler) *http.ServeMux {
	mux := http.NewServeMux()

	if service != nil {
		h := handlers.NewReviewHandler(service, captchas)
		mux.HandleFunc("GET /api/reviews/health", middleware.WithLogging(h.Health))
		mux.HandleFunc("GET /api/reviews/captcha", middleware.WithLogging(h.GetCaptcha))
		mux.HandleFunc("GET /api/reviews", middleware.WithLogging(h.ListReviews))
		mux.HandleFunc("POST /api/reviews", middleware.WithLogging(h.CreateReview))
		mux.HandleFunc("DELETE /api/reviews/{id}", middleware.WithLogging(h.DeleteReview))
	} else {
		mux.HandleFunc("/api/reviews", middleware.WithLogging(handlers.ReviewsUnavailable))
		mux.HandleFunc("/api/reviews/", middleware.WithLogging(handlers.ReviewsUnavailable))
	}

	for _, p := range pageRoutes {
		mux.HandleFunc("GET "+p.path, middleware.WithLogging(pages.Page(p.template, p.title)))
	}

	return mux
}
