package sim

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

func (e *Engine) createProject(s *State, a Action) *State {
	p := a.NewProject
	if p == nil || p.Name == "" {
		return s.reject("Project Not Started", "A project needs at least a name.")
	}
	if p.Budget <= 0 {
		return s.reject("Project Not Started", "The project budget must be positive.")
	}
	country := p.TargetCountry
	if country == "" {
		country = "Domestic"
	}
	s.Projects = append(s.Projects, Project{
		ID:              "proj_" + uuid.NewString(),
		Name:            p.Name,
		Genre:           p.Genre,
		Platform:        p.Platform,
		TargetCountry:   country,
		Budget:          p.Budget,
		ExpectedRevenue: p.Budget * 3,
		StartDate:       s.Date,
		Status:          StatusInDevelopment,
	})
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "New Project",
		"Development of '%s' begins. Budget: %s won.", p.Name, humanize.Comma(p.Budget)))
	return s
}

// releaseProject ships an in-development project, producing its one
// immutable review, the launch revenue and a reputation swing. Scoring
// uses boost-effective department efficiency, so a bonus paid days before
// launch genuinely moves the needle.
func (e *Engine) releaseProject(s *State, a Action) *State {
	p := s.Project(a.ProjectID)
	if p == nil {
		return s.reject("Release Failed", "No project with id '%s' exists.", a.ProjectID)
	}
	if p.Status == StatusReleased {
		return s.reject("Release Failed", "'%s' has already been released.", p.Name)
	}

	boostDeltas := s.activeBoostDeltas()
	bonuses := CalculateBonuses(s, boostDeltas)
	scoreBonus := bonuses.ReviewScore

	effective := func(name string) (float64, bool) {
		d := s.Department(name)
		if d == nil {
			return 0, false
		}
		return d.Efficiency + boostDeltas[name], true
	}

	if eff, ok := effective(DeptDevelopment); ok {
		scoreBonus += (eff - 50) / 5
	} else {
		scoreBonus += -20.0 / 5
	}
	if eff, ok := effective(DeptOperations); ok {
		scoreBonus += (eff - 50) / 4
	} else {
		scoreBonus += -20.0 / 4
	}
	if t := s.MarketTrend; t != nil && t.Genre == p.Genre && t.Direction == TrendUp {
		scoreBonus += 20
	}

	base := 50 + e.RNG.Float64()*25
	expertScore := int(clampF(math.Floor(base+scoreBonus), 0, 100))
	userRating := clampF(float64(expertScore)/10-1+e.RNG.Float64()*2, 0, 10)
	overall := int(math.Floor((float64(expertScore) + userRating*10) / 2))

	revenueMultiplier := math.Max(0.1, float64(overall)/60)
	marketingMultiplier := 1.0
	if eff, ok := effective(DeptMarketing); ok {
		marketingMultiplier = 1 + (eff-50)/200
	}
	revenue := int64(math.Floor(float64(p.ExpectedRevenue) * revenueMultiplier * marketingMultiplier))
	reputationDelta := math.Floor(float64(overall-65) / 5)

	released := s.Date
	p.Status = StatusReleased
	p.ReleaseDate = &released
	s.Reviews = append(s.Reviews, Review{
		ProjectID:    p.ID,
		ExpertScore:  expertScore,
		UserRating:   userRating,
		OverallScore: overall,
	})
	s.Company.Assets += revenue
	s.Company.Revenue += revenue
	s.Company.Reputation = clampF(s.Company.Reputation+reputationDelta, 0, 100)

	sentiment := SentimentNegative
	if revenue > p.Budget {
		sentiment = SentimentPositive
	}
	s.pushEvents(newEntry(s.Date, sentiment, "Launch: "+p.Name,
		"'%s' launched with %s won in revenue (overall score %d). Reputation moves %+.0f.",
		p.Name, humanize.Comma(revenue), overall, reputationDelta))
	return s
}
