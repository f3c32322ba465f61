// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler renders the static site pages. Pure routing: each route is a
// template name plus a fixed title, nothing else.
type PageHandler struct {
	tmpl *template.Template
}

func NewPageHandler() (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &PageHandler{tmpl: tmpl}, nil
}

type pageData struct {
	Title string
}

// Page returns a handler rendering the named template with the given title.
func (h *PageHandler) Page(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.tmpl.ExecuteTemplate(w, name, pageData{Title: title}); err != nil {
			slog.Error("failed to render page", "template", name, "error", err)
		}
	}
}
