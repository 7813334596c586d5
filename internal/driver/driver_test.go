package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/hokim6252-glitch/ceosim/internal/entropy"
	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

func newHolder(seed int64) *Holder {
	e := sim.NewEngine(entropy.NewSeeded(seed), sim.DefaultCatalog())
	return New(e, e.NewGame("Acme Games"))
}

func TestDispatchUpdatesCanonicalState(t *testing.T) {
	h := newHolder(1)

	s := h.Dispatch(sim.Action{Type: sim.ActionCreateDepartment, DepartmentName: "QA"})
	if s.Department("QA") == nil {
		t.Fatal("returned state missing the new department")
	}
	if h.State().Department("QA") == nil {
		t.Fatal("canonical state missing the new department")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	h := newHolder(2)

	s := h.State()
	s.Company.Assets = 0
	s.Departments[0].Employees = 999

	fresh := h.State()
	if fresh.Company.Assets == 0 || fresh.Departments[0].Employees == 999 {
		t.Error("mutating a returned state leaked into the holder")
	}
}

func TestAdvanceWeeksBatch(t *testing.T) {
	h := newHolder(3)
	before := h.State()

	reports, err := h.AdvanceWeeks(context.Background(), 4)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(reports) != 4 {
		t.Fatalf("reports = %d, want 4", len(reports))
	}
	after := h.State()
	if !after.Date.Equal(before.Date.AddDate(0, 0, 28)) {
		t.Errorf("date = %v, want four weeks after %v", after.Date, before.Date)
	}
}

func TestAdvanceWeeksConsultsOracle(t *testing.T) {
	h := newHolder(4)
	calls := 0
	h.WithOracle(func(ctx context.Context, s *sim.State) (*sim.EventPayload, error) {
		calls++
		return &sim.EventPayload{
			Title:       "Industry Buzz",
			Description: "A rival teased a surprise launch.",
			Sentiment:   sim.SentimentNeutral,
			IsNews:      true,
		}, nil
	}, 1.0)

	if _, err := h.AdvanceWeeks(context.Background(), 3); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if calls != 3 {
		t.Errorf("oracle calls = %d, want one per week at chance 1.0", calls)
	}
	if !hasEventTitled(h.State(), "Industry Buzz") {
		t.Error("oracle event missing from the log")
	}
}

func TestAdvanceWeeksOracleFailureFallsBack(t *testing.T) {
	h := newHolder(5)
	h.WithOracle(func(ctx context.Context, s *sim.State) (*sim.EventPayload, error) {
		return nil, errors.New("boom")
	}, 1.0)

	if _, err := h.AdvanceWeeks(context.Background(), 1); err != nil {
		t.Fatalf("advance: %v (oracle failures must not abort the week)", err)
	}
	if !hasEventTitled(h.State(), "Communications Error") {
		t.Error("missing fallback event after oracle failure")
	}
}

func TestAdvanceWeeksKeepsCompletedWeeksOnCancel(t *testing.T) {
	h := newHolder(6)
	ctx, cancel := context.WithCancel(context.Background())
	h.WithOracle(func(ctx context.Context, s *sim.State) (*sim.EventPayload, error) {
		cancel() // abort during the first week's oracle consult
		return nil, ctx.Err()
	}, 1.0)

	before := h.State()
	reports, err := h.AdvanceWeeks(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(reports) != 1 {
		t.Errorf("reports = %d, want the single completed week", len(reports))
	}
	if !h.State().Date.Equal(before.Date.AddDate(0, 0, 7)) {
		t.Errorf("date = %v, want exactly one week advanced", h.State().Date)
	}
}

func hasEventTitled(s *sim.State, title string) bool {
	for _, entry := range s.EventLog {
		if entry.Title == title {
			return true
		}
	}
	return false
}
