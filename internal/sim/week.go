package sim

import (
	"math"
	"sort"
)

// Weekly cost and pipeline constants.
const (
	employeeWeeklyCost  = int64(1_500_000)
	recruitmentCostPer  = int64(10_000_000)
	recruitmentWeeks    = 4
	bonusBoostAmount    = 10.0
	bonusBoostWeeks     = 4
	marketTrendWeeks    = 12
	hrCenterProcChance  = 0.2
	salaryCostSurcharge = 0.10
)

// WeekReport is the cost/revenue breakdown of one advancement, consumed by
// logging, the briefing prompt and conservation tests. The asset delta of
// the week is exactly revenues minus costs.
type WeekReport struct {
	EmployeeCost      int64 `json:"employee_cost"`
	MaintenanceCost   int64 `json:"maintenance_cost"`
	ProjectCost       int64 `json:"project_cost"`
	SubsidiaryCost    int64 `json:"subsidiary_cost"`
	SubsidiaryRevenue int64 `json:"subsidiary_revenue"`
	FoundationCost    int64 `json:"foundation_cost"`
	HiresPlaced       int   `json:"hires_placed"`
	HiresLost         int   `json:"hires_lost"`
}

// Costs returns the sum of every weekly cost category.
func (r WeekReport) Costs() int64 {
	return r.EmployeeCost + r.MaintenanceCost + r.ProjectCost + r.SubsidiaryCost + r.FoundationCost
}

// Revenues returns the sum of every weekly revenue category.
func (r WeekReport) Revenues() int64 {
	return r.SubsidiaryRevenue
}

// AdvanceWeek advances the simulation by seven days, updating every
// time-based subsystem in one pass. The input state is not modified.
//
// Temporary boosts raise department efficiency only transiently: the boost
// delta is added before derived rates are computed and the recorded
// baseline is restored at final assembly, so the stored value moves only
// through explicit events (HR-center procs). Restoring, rather than
// subtracting the delta, keeps a near-100 baseline intact when the boosted
// value hits the clamp.
func (e *Engine) AdvanceWeek(prev *State) (*State, WeekReport) {
	s := prev.Clone()
	s.Date = s.Date.AddDate(0, 0, 7)

	var events []LogEntry
	var report WeekReport

	// Temporary boosts: decrement, drop expired and orphaned, sum deltas.
	boostDeltas := make(map[string]float64)
	surviving := s.Boosts[:0]
	for _, b := range s.Boosts {
		b.WeeksRemaining--
		if b.WeeksRemaining <= 0 || s.Department(b.DepartmentName) == nil {
			continue
		}
		if b.Kind == BoostEfficiency {
			boostDeltas[b.DepartmentName] += b.Amount
		}
		surviving = append(surviving, b)
	}
	s.Boosts = surviving

	// Bonuses and the cost surcharge read the pre-decrement policy set.
	bonuses := CalculateBonuses(s, boostDeltas)
	costMultiplier := 1.0
	for _, p := range s.ActivePolicies {
		if p.PolicyID == PolicySalaryNegotiation {
			costMultiplier += salaryCostSurcharge
		}
	}

	ongoingPolicies := s.ActivePolicies[:0]
	for _, p := range s.ActivePolicies {
		p.WeeksRemaining--
		if p.WeeksRemaining <= 0 {
			events = append(events, newEntry(s.Date, SentimentNeutral, "Policy Expired",
				"The '%s' policy has expired.", p.Name))
			continue
		}
		ongoingPolicies = append(ongoingPolicies, p)
	}
	s.ActivePolicies = ongoingPolicies

	// Department efficiency is raised by the boost delta for this tick;
	// the recorded baseline comes back at assembly below.
	baselines := make(map[string]float64, len(s.Departments))
	for i := range s.Departments {
		d := &s.Departments[i]
		baselines[d.Name] = d.Efficiency
		d.Efficiency = math.Min(100, d.Efficiency+bonuses.DepartmentEfficiency[d.Name])
		d.KPI = clampF(math.Round(d.Efficiency+(e.RNG.Float64()*10-5)), 0, 100)
	}

	// HR development center: occasional permanent +1 to a random
	// department, applied to the pre-boost baseline.
	if s.ownsBuildingType(BuildingHRCenter) && len(s.Departments) > 0 && e.RNG.Float64() < hrCenterProcChance {
		d := &s.Departments[e.RNG.Intn(len(s.Departments))]
		baselines[d.Name] = math.Min(100, baselines[d.Name]+1)
		d.Efficiency = math.Min(100, baselines[d.Name]+bonuses.DepartmentEfficiency[d.Name])
	}

	report.EmployeeCost = int64(float64(s.Company.Employees) * float64(employeeWeeklyCost) * costMultiplier)
	for _, b := range s.Buildings {
		report.MaintenanceCost += b.MaintenanceFee
	}
	for _, sub := range s.Subsidiaries {
		report.SubsidiaryCost += sub.MaintenanceFee
		report.SubsidiaryRevenue += sub.WeeklyRevenue
	}
	var reputationBonus float64
	for _, f := range s.Foundations {
		report.FoundationCost += f.MaintenanceFee
		reputationBonus += f.ReputationBonus
	}

	// Project progress. Rate depends on the development department's
	// boosted efficiency and headcount; project cost accrues as the share
	// of budget covered this week at the current completion rate.
	rate := 0.5 * bonuses.DevSpeed
	if dev := s.Department(DeptDevelopment); dev != nil {
		rate = (0.5 + float64(dev.Employees)*0.05) * (1 + (dev.Efficiency-50)/100) * bonuses.DevSpeed
	}
	rate = math.Max(0, rate)
	for i := range s.Projects {
		p := &s.Projects[i]
		if p.Status != StatusInDevelopment || rate <= 0 {
			continue
		}
		report.ProjectCost += int64(float64(p.Budget) * rate / 100)
		p.Progress = math.Min(100, p.Progress+rate)
	}

	// Recruitment pipelines. Placement is capped at company-wide capacity;
	// hires for departments that no longer exist are lost too.
	ongoingRecruitments := s.Recruitments[:0]
	for _, rec := range s.Recruitments {
		rec.WeeksRemaining--
		if rec.WeeksRemaining > 0 {
			ongoingRecruitments = append(ongoingRecruitments, rec)
			continue
		}
		names := make([]string, 0, len(rec.Hires))
		for name := range rec.Hires {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			count := rec.Hires[name]
			d := s.Department(name)
			if d == nil {
				report.HiresLost += count
				continue
			}
			room := s.Company.EmployeeCapacity - s.Company.Employees - report.HiresPlaced
			place := min(count, max(room, 0))
			d.Employees += place
			report.HiresPlaced += place
			report.HiresLost += count - place
		}
	}
	s.Recruitments = ongoingRecruitments
	if report.HiresPlaced > 0 {
		events = append(events, newEntry(s.Date, SentimentPositive, "Hiring Complete",
			"%d new employees joined their departments.", report.HiresPlaced))
	}
	if report.HiresLost > 0 {
		events = append(events, newEntry(s.Date, SentimentNegative, "Hiring Shortfall",
			"%d candidates were lost for lack of office space.", report.HiresLost))
	}

	// Financial market random walk, floored at 1 won.
	for i := range s.FinancialAssets {
		a := &s.FinancialAssets[i]
		change := (e.RNG.Float64() - 0.5) * 2 * a.Volatility * 0.5
		a.Price = max(int64(float64(a.Price)*(1+change)), 1)
	}
	s.Portfolio.TotalValue = s.markToMarket()

	// Timed strategy and R&D projects.
	var completed []LogEntry
	s.RnDProjects, completed = e.tickStrategies(s, s.RnDProjects, e.Catalog.RnDStrategy, &s.CompletedRnD, "R&D Project Complete", "The '%s' research finished successfully.")
	events = append(events, completed...)
	s.GlobalProjects, completed = e.tickStrategies(s, s.GlobalProjects, e.Catalog.GlobalStrategy, &s.CompletedGlobal, "Global Strategy Complete", "The '%s' strategy finished successfully.")
	events = append(events, completed...)
	s.IPProjects, completed = e.tickStrategies(s, s.IPProjects, e.Catalog.IPStrategy, &s.CompletedIP, "IP Project Complete", "The '%s' project finished successfully.")
	events = append(events, completed...)

	// Promotion review. The outcome was drawn at application time.
	if s.Promotion != nil {
		s.Promotion.WeeksRemaining--
		if s.Promotion.WeeksRemaining <= 0 {
			if next, ok := NextTier(s.Company.Tier); ok && s.Promotion.Success {
				s.Company.Tier = next
				events = append(events, newEntry(s.Date, SentimentPositive, "Promotion Granted",
					"The company has grown into a %s enterprise.", next))
			} else {
				events = append(events, newEntry(s.Date, SentimentNegative, "Promotion Denied",
					"The promotion review was unsuccessful. Check the requirements and reapply."))
			}
			s.Promotion = nil
		}
	}

	if s.MarketTrend != nil {
		s.MarketTrend.WeeksRemaining--
		if s.MarketTrend.WeeksRemaining <= 0 {
			s.MarketTrend = nil
		}
	}

	// Final assembly. The recorded baseline is restored so the stored
	// efficiency is untouched by boosts, even when the boosted value was
	// clamped at 100.
	s.Company.Assets += report.Revenues() - report.Costs()
	s.Company.Employees += report.HiresPlaced
	s.Company.Reputation = clampF(s.Company.Reputation+reputationBonus, 0, 100)
	for i := range s.Departments {
		d := &s.Departments[i]
		d.Efficiency = baselines[d.Name]
	}
	s.pushEvents(events...)

	return s, report
}

// tickStrategies decrements a timed project list, moving finished entries
// into the completed set. Entries whose definition no longer resolves are
// dropped rather than crashing the pass.
func (e *Engine) tickStrategies(s *State, projects []StrategyProject, lookup func(string) (StrategyDef, bool), completed *[]StrategyDef, title, format string) ([]StrategyProject, []LogEntry) {
	var events []LogEntry
	ongoing := projects[:0]
	for _, p := range projects {
		p.WeeksRemaining--
		if p.WeeksRemaining > 0 {
			ongoing = append(ongoing, p)
			continue
		}
		events = append(events, newEntry(s.Date, SentimentPositive, title, format, p.Name))
		if def, ok := lookup(p.StrategyID); ok {
			*completed = append(*completed, def)
		}
	}
	return ongoing, events
}

func (s *State) ownsBuildingType(t BuildingType) bool {
	for _, b := range s.Buildings {
		if b.Type == t {
			return true
		}
	}
	return false
}
