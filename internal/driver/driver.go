// Package driver owns the canonical game state and serializes access to
// it. The engine itself is pure; everything stateful (locking, batch week
// runs, oracle interleaving) lives here.
package driver

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

// EventFunc produces one externally generated world event for the given
// state. Implementations may block on network calls; they must honor ctx.
type EventFunc func(ctx context.Context, s *sim.State) (*sim.EventPayload, error)

// Holder guards the canonical state behind a mutex and applies engine
// transitions to it. All returned states are the engine's fresh copies;
// callers never see the canonical pointer.
type Holder struct {
	mu     sync.RWMutex
	engine *sim.Engine
	state  *sim.State

	events       EventFunc // nil disables oracle events
	oracleChance float64   // per-week probability of consulting the oracle
}

// New creates a holder over an initial state.
func New(engine *sim.Engine, state *sim.State) *Holder {
	return &Holder{engine: engine, state: state, oracleChance: 0.1}
}

// WithOracle attaches an event source consulted during week advancement.
// chance is clamped to [0, 1].
func (h *Holder) WithOracle(events EventFunc, chance float64) *Holder {
	if chance < 0 {
		chance = 0
	}
	if chance > 1 {
		chance = 1
	}
	h.events = events
	h.oracleChance = chance
	return h
}

// State returns a deep copy of the current state.
func (h *Holder) State() *sim.State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Clone()
}

// Dispatch applies one action and returns the resulting state.
func (h *Holder) Dispatch(a sim.Action) *sim.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = h.engine.Apply(h.state, a)
	return h.state.Clone()
}

// AdvanceWeeks advances the simulation n weeks, occasionally folding in an
// oracle-generated event. A context cancellation stops before the next
// week; weeks already completed are kept, and the reports for them are
// returned alongside the context error.
func (h *Holder) AdvanceWeeks(ctx context.Context, n int) ([]sim.WeekReport, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	reports := make([]sim.WeekReport, 0, n)
	for week := 0; week < n; week++ {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		next, report := h.engine.AdvanceWeek(h.state)
		h.state = next
		reports = append(reports, report)

		if h.events != nil && h.engine.RNG.Float64() < h.oracleChance {
			payload, err := h.events(ctx, h.state)
			if err != nil {
				slog.Warn("oracle event failed", "error", err)
				payload = &sim.EventPayload{
					Title:       "Communications Error",
					Description: "The press office lost contact with its industry sources this week.",
					Sentiment:   sim.SentimentNegative,
					IsNews:      true,
				}
			}
			h.state = h.engine.Apply(h.state, sim.Action{Type: sim.ActionAddEvent, Event: payload})
		}

		slog.Info("week advanced",
			"date", h.state.Date.Format("2006-01-02"),
			"assets", h.state.Company.Assets,
			"costs", report.Costs(),
			"revenues", report.Revenues(),
			"hires_placed", report.HiresPlaced,
		)
	}
	return reports, nil
}
