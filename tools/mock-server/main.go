// Package main implements a mock marketing event API for local development.
// It serves the client-credentials token endpoint and the journey event
// endpoint, so runs can be exercised without real platform credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	tokenPath = "/v1/requestToken"
	eventPath = "/interaction/v1/events"
)

// server holds issued tokens and the failure injection settings.
type server struct {
	logger *slog.Logger

	// expiresIn is reported in minutes, matching the real platform.
	expiresIn int
	// failEvery makes every Nth event call return 500. Zero disables it.
	failEvery int64

	tokens sync.Map // token -> struct{}
	events atomic.Int64
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	expiresIn := flag.Int("expires-in", 60, "token lifetime in minutes")
	failEvery := flag.Int64("fail-every", 0, "return 500 for every Nth event call (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newServer(logger, *expiresIn, *failEvery)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock event API", "addr", addr,
		"token_url", "http://localhost"+addr+tokenPath,
		"event_url", "http://localhost"+addr+eventPath)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newServer(logger *slog.Logger, expiresIn int, failEvery int64) *server {
	return &server{logger: logger, expiresIn: expiresIn, failEvery: failEvery}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+tokenPath, s.tokenHandler)
	mux.HandleFunc("POST "+eventPath, s.eventHandler)
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func (s *server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_request",
			"error_description": err.Error(),
		})
		return
	}

	if r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": "only client_credentials is supported",
		})
		return
	}

	// Credentials must be present but are not verified.
	if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
		s.logger.Warn("token request missing client credentials")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}

	token := "mock-" + uuid.NewString()
	s.tokens.Store(token, struct{}{})

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"expires_in":   s.expiresIn,
		"token_type":   "Bearer",
	})
	s.logger.Info("issued mock token", "client_id", r.PostForm.Get("client_id"))
}

func (s *server) eventHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if _, known := s.tokens.Load(token); !ok || !known {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not Authorized"})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	contactKey := r.PostForm.Get("ContactKey")
	eventKey := r.PostForm.Get("EventDefinitionKey")
	if contactKey == "" || eventKey == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "ContactKey and EventDefinitionKey are required",
		})
		return
	}

	n := s.events.Add(1)
	if s.failEvery > 0 && n%s.failEvery == 0 {
		s.logger.Warn("injected event failure", "call", n, "contact_key", contactKey)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "injected failure"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"eventInstanceId": uuid.NewString()})
	s.logger.Info("event accepted",
		"contact_key", contactKey,
		"event_definition_key", eventKey,
		"quote_id", r.PostForm.Get("Data[quote_id]"))
}
