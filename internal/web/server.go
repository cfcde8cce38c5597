// Package web serves the monitoring dashboard and the ad-hoc email
// endpoint. Every dashboard request classifies a freshly fetched snapshot;
// nothing is cached or persisted between requests.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/app"
	"github.com/cloudopsio/catalogwatch/internal/config"
	"github.com/cloudopsio/catalogwatch/internal/report"
)

type Server struct {
	Settings config.Settings
	Clients  *app.Clients
	Logger   *slog.Logger
}

func NewServer(settings config.Settings, clients *app.Clients, logger *slog.Logger) *Server {
	return &Server{Settings: settings, Clients: clients, Logger: logger}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("POST /send-email", s.handleSendEmail)
	return mux
}

// ListenAndServe blocks serving the dashboard until the listener fails.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("dashboard listening", "addr", s.Settings.ListenAddr)
	srv := &http.Server{
		Addr:         s.Settings.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	findings := app.RunCycle(r.Context(), s.Settings, s.Clients, s.Logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := report.BuildData(findings, s.Settings.Thresholds)
	if err := report.Render(w, data); err != nil {
		s.Logger.Error("dashboard render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.Logger.Info("dashboard served",
		"products", findings.Products,
		"stale", len(findings.Stale),
		"elapsed", time.Since(start).Round(time.Millisecond))
}

type sendEmailRequest struct {
	Email string `json:"email"`
	Check string `json:"check"`
}

type sendEmailResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, sendEmailResponse{Error: "email is required"})
		return
	}

	if s.Clients.Email == nil {
		writeJSON(w, http.StatusServiceUnavailable, sendEmailResponse{Error: "email delivery is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	if err := s.Clients.Email.SendCheckEmail(ctx, req.Email, req.Check); err != nil {
		s.Logger.Error("email send failed", "to", req.Email, "check", req.Check, "error", err)
		writeJSON(w, http.StatusInternalServerError, sendEmailResponse{Error: err.Error()})
		return
	}

	s.Logger.Info("notification email sent", "to", req.Email, "check", req.Check)
	writeJSON(w, http.StatusOK, sendEmailResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
