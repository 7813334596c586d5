package sim

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type strategyKind int

const (
	strategyKindGlobal strategyKind = iota
	strategyKindIP
	strategyKindRnD
)

func (k strategyKind) label() string {
	switch k {
	case strategyKindGlobal:
		return "global strategy"
	case strategyKindIP:
		return "IP project"
	default:
		return "R&D project"
	}
}

// startStrategy launches a timed initiative of the given kind. Each
// strategy id can run at most once at a time and never re-runs after
// completion.
func (e *Engine) startStrategy(s *State, id string, kind strategyKind) *State {
	var (
		def       StrategyDef
		ok        bool
		ongoing   *[]StrategyProject
		completed []StrategyDef
	)
	switch kind {
	case strategyKindGlobal:
		def, ok = e.Catalog.GlobalStrategy(id)
		ongoing, completed = &s.GlobalProjects, s.CompletedGlobal
	case strategyKindIP:
		def, ok = e.Catalog.IPStrategy(id)
		ongoing, completed = &s.IPProjects, s.CompletedIP
	default:
		def, ok = e.Catalog.RnDStrategy(id)
		ongoing, completed = &s.RnDProjects, s.CompletedRnD
	}
	if !ok {
		return s.reject("Strategy Not Started", "No %s with id '%s' exists.", kind.label(), id)
	}
	for _, p := range *ongoing {
		if p.StrategyID == id {
			return s.reject("Strategy Not Started", "'%s' is already in progress.", def.Name)
		}
	}
	for _, done := range completed {
		if done.ID == id {
			return s.reject("Strategy Not Started", "'%s' has already been completed.", def.Name)
		}
	}
	if s.Company.Assets < def.Cost {
		return s.reject("Strategy Not Started", "Insufficient funds for '%s'.", def.Name)
	}

	s.Company.Assets -= def.Cost
	*ongoing = append(*ongoing, StrategyProject{
		ID:             uuid.NewString(),
		StrategyID:     def.ID,
		Name:           def.Name,
		WeeksRemaining: def.DurationWeeks,
		TotalWeeks:     def.DurationWeeks,
	})
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Initiative Launched",
		"Started '%s' for %s won. Expected to take %d weeks.",
		def.Name, humanize.Comma(def.Cost), def.DurationWeeks))
	return s
}

func (e *Engine) startPolicy(s *State, a Action) *State {
	def, ok := e.Catalog.PolicyDef(a.PolicyID)
	if !ok {
		return s.reject("Policy Not Started", "No policy with id '%s' exists.", a.PolicyID)
	}
	for _, p := range s.ActivePolicies {
		if p.PolicyID == def.ID {
			return s.reject("Policy Not Started", "The '%s' policy is already active.", def.Name)
		}
	}
	if s.Company.Assets < def.Cost {
		return s.reject("Policy Not Started", "Insufficient funds for the '%s' policy.", def.Name)
	}
	s.Company.Assets -= def.Cost
	s.ActivePolicies = append(s.ActivePolicies, ActivePolicy{
		PolicyID:       def.ID,
		Name:           def.Name,
		WeeksRemaining: def.DurationWeeks,
	})
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Policy Enacted",
		"The '%s' policy takes effect for %d weeks. Cost: %s won.",
		def.Name, def.DurationWeeks, humanize.Comma(def.Cost)))
	return s
}

func (e *Engine) establishSubsidiary(s *State, a Action) *State {
	def, ok := e.Catalog.SubsidiaryDef(a.SubsidiaryID)
	if !ok {
		return s.reject("Subsidiary Not Established", "No subsidiary with id '%s' exists.", a.SubsidiaryID)
	}
	for _, sub := range s.Subsidiaries {
		if sub.ID == def.ID {
			return s.reject("Subsidiary Not Established", "%s already operates under the company.", def.Name)
		}
	}
	if s.Company.Assets < def.Cost {
		return s.reject("Subsidiary Not Established", "Insufficient funds to establish %s.", def.Name)
	}
	s.Company.Assets -= def.Cost
	s.Subsidiaries = append(s.Subsidiaries, def)
	s.pushEvents(newEntry(s.Date, SentimentPositive, "Subsidiary Established",
		"%s was established for %s won. Expected weekly revenue: %s won.",
		def.Name, humanize.Comma(def.Cost), humanize.Comma(def.WeeklyRevenue)))
	return s
}

func (e *Engine) establishFoundation(s *State, a Action) *State {
	def, ok := e.Catalog.FoundationDef(a.FoundationID)
	if !ok {
		return s.reject("Foundation Not Established", "No foundation with id '%s' exists.", a.FoundationID)
	}
	for _, f := range s.Foundations {
		if f.ID == def.ID {
			return s.reject("Foundation Not Established", "The %s already exists.", def.Name)
		}
	}
	if s.Company.Assets < def.Cost {
		return s.reject("Foundation Not Established", "Insufficient funds to establish the %s.", def.Name)
	}
	s.Company.Assets -= def.Cost
	s.Foundations = append(s.Foundations, def)
	s.pushEvents(newEntry(s.Date, SentimentPositive, "Foundation Established",
		"The %s was established for %s won.", def.Name, humanize.Comma(def.Cost)))
	return s
}
