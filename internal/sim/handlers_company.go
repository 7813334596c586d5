package sim

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

func (e *Engine) createDepartment(s *State, a Action) *State {
	name := strings.TrimSpace(a.DepartmentName)
	if name == "" {
		return s.reject("Department Not Created", "A department needs a name.")
	}
	if s.Department(name) != nil {
		return s.reject("Department Not Created", "A department named '%s' already exists.", name)
	}
	eff := float64(e.RNG.Intn(101))
	s.Departments = append(s.Departments, Department{Name: name, Efficiency: eff, KPI: eff})
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Department Created",
		"The %s department has been established.", name))
	return s
}

// abolishDepartment removes a department; its employees leave the company.
func (e *Engine) abolishDepartment(s *State, a Action) *State {
	name := a.DepartmentName
	dept := s.Department(name)
	if dept == nil {
		return s.reject("Department Not Abolished", "No department named '%s' exists.", name)
	}
	lost := dept.Employees
	kept := s.Departments[:0]
	for _, d := range s.Departments {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	s.Departments = kept
	s.Company.Employees = max(s.Company.Employees-lost, 0)
	s.pushEvents(newEntry(s.Date, SentimentNegative, "Department Abolished",
		"The %s department was abolished and %d employees left the company.", name, lost))
	return s
}

// startRecruitment opens a 4-week hiring pipeline. Placement (and the
// capacity check) happens when the pipeline resolves, not here; only
// affordability gates the start.
func (e *Engine) startRecruitment(s *State, a Action) *State {
	total := 0
	for name, count := range a.Hires {
		if count < 0 {
			return s.reject("Hiring Not Started", "Negative hire count for '%s'.", name)
		}
		if s.Department(name) == nil {
			return s.reject("Hiring Not Started", "No department named '%s' exists.", name)
		}
		total += count
	}
	if total == 0 {
		return s.reject("Hiring Not Started", "No positions requested.")
	}
	cost := int64(total) * recruitmentCostPer
	if s.Company.Assets < cost {
		return s.reject("Hiring Not Started", "Insufficient funds for recruitment costs.")
	}
	hires := make(map[string]int, len(a.Hires))
	for k, v := range a.Hires {
		hires[k] = v
	}
	s.Company.Assets -= cost
	s.Recruitments = append(s.Recruitments, Recruitment{
		ID:             uuid.NewString(),
		Hires:          hires,
		WeeksRemaining: recruitmentWeeks,
	})
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Hiring Opened",
		"Recruiting for %d positions. Cost: %s won.", total, humanize.Comma(cost)))
	return s
}

// giveBonus pays a department a one-off bonus, granting a 4-week +10
// efficiency boost regardless of the amount.
func (e *Engine) giveBonus(s *State, a Action) *State {
	if s.Department(a.DepartmentName) == nil {
		return s.reject("Bonus Not Paid", "No department named '%s' exists.", a.DepartmentName)
	}
	if a.Amount <= 0 {
		return s.reject("Bonus Not Paid", "The bonus amount must be positive.")
	}
	if s.Company.Assets < a.Amount {
		return s.reject("Bonus Not Paid", "Insufficient funds.")
	}
	s.Company.Assets -= a.Amount
	s.Boosts = append(s.Boosts, Boost{
		DepartmentName: a.DepartmentName,
		Kind:           BoostEfficiency,
		Amount:         bonusBoostAmount,
		WeeksRemaining: bonusBoostWeeks,
	})
	s.pushEvents(newEntry(s.Date, SentimentPositive, "Bonus Paid",
		"Paid the %s team a %s won performance bonus. Department efficiency rises %.0f points for %d weeks.",
		a.DepartmentName, humanize.Comma(a.Amount), bonusBoostAmount, bonusBoostWeeks))
	return s
}

// applyForPromotion files a tier promotion review. Duration and outcome are
// drawn now and fixed; resolution only reads them.
func (e *Engine) applyForPromotion(s *State) *State {
	if s.Promotion != nil {
		return s.reject("Application Rejected", "A promotion review is already under way.")
	}
	weeks := e.RNG.Intn(4) + 1
	success := e.RNG.Float64() < 0.9
	s.Promotion = &PromotionApplication{WeeksRemaining: weeks, Success: success}
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Promotion Review Filed",
		"Applied for promotion to the next corporate tier. Results in %d weeks.", weeks))
	return s
}

func (e *Engine) moveHeadquarters(s *State, a Action) *State {
	b := s.Building(a.BuildingID)
	if b == nil || b.Type != BuildingOffice {
		return s.reject("Headquarters Not Moved", "Headquarters must be an owned office building.")
	}
	s.Company.HeadquartersID = b.ID
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Headquarters Moved",
		"The headquarters relocated to %s.", b.Name))
	return s
}
