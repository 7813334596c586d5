// Package api exposes the game over HTTP. GET endpoints are public
// read-only views of the state; POST endpoints mutate it and require an
// admin bearer token.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hokim6252-glitch/ceosim/internal/driver"
	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

const maxAdvanceWeeks = 520

// Server serves the game state over HTTP.
type Server struct {
	log      *slog.Logger
	holder   *driver.Holder
	adminKey string // Bearer token for POST endpoints. Empty = POST disabled.
	mux      *chi.Mux
}

// New builds a server around a state holder.
func New(logger *slog.Logger, holder *driver.Holder, adminKey string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:      logger,
		holder:   holder,
		adminKey: adminKey,
		mux:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/company", s.handleCompany)
		r.Get("/events", s.handleEvents)
		r.Get("/market", s.handleMarket)
		r.Get("/departments", s.handleDepartments)
		r.Get("/projects", s.handleProjects)

		r.Group(func(r chi.Router) {
			r.Use(s.adminMiddleware)
			r.Post("/actions", s.handleAction)
			r.Post("/advance", s.handleAdvance)
		})
	})
}

func (s *Server) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminKey == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled (no CEOSIM_ADMIN_KEY set)")
			return
		}
		if bearerToken(r.Header.Get("Authorization")) != s.adminKey {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.holder.State())
}

func (s *Server) handleCompany(w http.ResponseWriter, _ *http.Request) {
	st := s.holder.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"company":   st.Company,
		"date":      st.Date,
		"promotion": st.Promotion,
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	events := s.holder.State().EventLog
	if len(events) > limit {
		events = events[:limit]
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleMarket(w http.ResponseWriter, _ *http.Request) {
	st := s.holder.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"assets":    st.FinancialAssets,
		"portfolio": st.Portfolio,
		"trend":     st.MarketTrend,
	})
}

func (s *Server) handleDepartments(w http.ResponseWriter, _ *http.Request) {
	st := s.holder.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"departments": st.Departments,
		"boosts":      st.Boosts,
	})
}

func (s *Server) handleProjects(w http.ResponseWriter, _ *http.Request) {
	st := s.holder.State()
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": st.Projects,
		"reviews":  st.Reviews,
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var a sim.Action
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid action json: %v", err))
		return
	}
	if a.Type == "" {
		writeError(w, http.StatusBadRequest, "missing action type")
		return
	}
	if a.Type == sim.ActionAdvanceWeek {
		writeError(w, http.StatusBadRequest, "use POST /v1/advance to advance time")
		return
	}

	st := s.holder.Dispatch(a)
	s.log.Info("action dispatched", "type", a.Type)
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	weeks := 1
	if q := r.URL.Query().Get("weeks"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > maxAdvanceWeeks {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("weeks must be 1-%d", maxAdvanceWeeks))
			return
		}
		weeks = n
	}

	reports, err := s.holder.AdvanceWeeks(r.Context(), weeks)
	if err != nil {
		// Completed weeks are already committed; report how far we got.
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":           err.Error(),
			"weeks_completed": len(reports),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"weeks_completed": len(reports),
		"reports":         reports,
		"state":           s.holder.State(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
