// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/site-reviews/captcha"
	"github.com/danielhkuo/site-reviews/cliparse"
	"github.com/danielhkuo/site-reviews/db"
	"github.com/danielhkuo/site-reviews/handlers"
	"github.com/danielhkuo/site-reviews/reviews"
	"github.com/danielhkuo/site-reviews/router"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the store. A failure here disables the reviews API but keeps
	// the page routes serving.
	var service *reviews.Service
	var captchas *captcha.Manager
	store, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
	} else if err := store.CreateSchema(); err != nil {
		slog.Error("schema creation failed", "error", err)
		store.Close()
	} else {
		defer store.Close()
		captchas = captcha.NewManager(store)
		service = reviews.NewService(store, captchas)
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}
	if service == nil {
		slog.Warn("reviews API disabled; serving pages only")
	}

	// Parse page templates
	pages, err := handlers.NewPageHandler()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(service, captchas, pages)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
