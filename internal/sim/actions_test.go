package sim

import (
	"math"
	"testing"
)

func TestApplyUnknownActionRejected(t *testing.T) {
	e := testEngine(20)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: "TIME_TRAVEL"})

	if next.Company.Assets != s.Company.Assets {
		t.Errorf("assets changed on a rejected action: %d -> %d", s.Company.Assets, next.Company.Assets)
	}
	if len(next.EventLog) != len(s.EventLog)+1 {
		t.Fatalf("log length = %d, want %d", len(next.EventLog), len(s.EventLog)+1)
	}
	if next.EventLog[0].Sentiment != SentimentNegative {
		t.Errorf("rejection sentiment = %s, want negative", next.EventLog[0].Sentiment)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	e := testEngine(20)
	s := e.NewGame("Acme Games")
	assets, depts := s.Company.Assets, len(s.Departments)

	e.Apply(s, Action{Type: ActionCreateDepartment, DepartmentName: "QA"})

	if s.Company.Assets != assets || len(s.Departments) != depts {
		t.Error("Apply mutated its input state")
	}
}

func TestBuyAssetVolumeWeightedAverage(t *testing.T) {
	e := testEngine(21)
	s := &State{
		Date:            startDate,
		Company:         Company{Assets: 10_000_000},
		FinancialAssets: append([]FinancialAsset(nil), e.Catalog.Assets...),
	}

	s = e.Apply(s, Action{Type: ActionBuyAsset, AssetID: "stock_kr_1", Quantity: 10})

	if s.Company.Assets != 10_000_000-850_000 {
		t.Errorf("assets = %d, want %d", s.Company.Assets, 10_000_000-850_000)
	}
	h := s.Holding("stock_kr_1")
	if h == nil || h.Quantity != 10 || h.AveragePrice != 85_000 {
		t.Fatalf("holding = %+v, want 10 @ 85000", h)
	}
	if s.Portfolio.TotalValue != 850_000 {
		t.Errorf("portfolio value = %d, want 850000", s.Portfolio.TotalValue)
	}

	// A later buy at double the price moves the cost basis, not the history.
	s.Asset("stock_kr_1").Price = 170_000
	s = e.Apply(s, Action{Type: ActionBuyAsset, AssetID: "stock_kr_1", Quantity: 5})

	h = s.Holding("stock_kr_1")
	if h.Quantity != 15 {
		t.Errorf("quantity = %d, want 15", h.Quantity)
	}
	if want := 1_700_000.0 / 15; !almostEqual(h.AveragePrice, want) {
		t.Errorf("average price = %v, want %v", h.AveragePrice, want)
	}
}

func TestBuyAssetRejections(t *testing.T) {
	e := testEngine(21)
	s := &State{
		Date:            startDate,
		Company:         Company{Assets: 100},
		FinancialAssets: append([]FinancialAsset(nil), e.Catalog.Assets...),
	}

	for _, a := range []Action{
		{Type: ActionBuyAsset, AssetID: "stock_kr_1", Quantity: 0},
		{Type: ActionBuyAsset, AssetID: "nope", Quantity: 1},
		{Type: ActionBuyAsset, AssetID: "stock_kr_1", Quantity: 1}, // unaffordable
	} {
		next := e.Apply(s, a)
		if next.Company.Assets != 100 || len(next.Portfolio.Holdings) != 0 {
			t.Errorf("action %+v changed state, want rejection only", a)
		}
	}
}

func TestSellAsset(t *testing.T) {
	e := testEngine(22)
	s := &State{
		Date:            startDate,
		FinancialAssets: append([]FinancialAsset(nil), e.Catalog.Assets...),
		Portfolio: Portfolio{Holdings: []Holding{
			{AssetID: "stock_kr_1", Quantity: 15, AveragePrice: 85_000},
		}},
	}

	next := e.Apply(s, Action{Type: ActionSellAsset, AssetID: "stock_kr_1", Quantity: 20})
	if next.Company.Assets != 0 || next.Holding("stock_kr_1").Quantity != 15 {
		t.Error("overselling must be rejected without changing the position")
	}

	next = e.Apply(s, Action{Type: ActionSellAsset, AssetID: "stock_kr_1", Quantity: 15})
	if want := int64(15 * 85_000); next.Company.Assets != want {
		t.Errorf("assets = %d, want %d", next.Company.Assets, want)
	}
	if next.Holding("stock_kr_1") != nil {
		t.Error("emptied position not removed from the portfolio")
	}
	if next.Portfolio.TotalValue != 0 {
		t.Errorf("portfolio value = %d, want 0", next.Portfolio.TotalValue)
	}
}

func TestBuyBuilding(t *testing.T) {
	e := testEngine(23)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionBuyBuilding, BuildingID: "office_medium"})

	if want := int64(100_000_000_000 - 5_000_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if s.Company.EmployeeCapacity != 90 {
		t.Errorf("capacity = %d, want 90", s.Company.EmployeeCapacity)
	}

	s = e.Apply(s, Action{Type: ActionBuyBuilding, BuildingID: "research_lab"})
	next := e.Apply(s, Action{Type: ActionBuyBuilding, BuildingID: "research_lab"})
	if len(next.Buildings) != len(s.Buildings) || next.Company.Assets != s.Company.Assets {
		t.Error("duplicate unique building purchase must be rejected")
	}
}

func TestSellLastOfficeRejected(t *testing.T) {
	e := testEngine(24)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionSellBuilding, BuildingID: "office_small"})

	if len(next.Buildings) != 1 || next.Company.Assets != s.Company.Assets {
		t.Error("selling the last office must be rejected")
	}
	if next.EventLog[0].Title != "Sale Failed" {
		t.Errorf("log head = %q, want 'Sale Failed'", next.EventLog[0].Title)
	}
}

func TestSellBuildingForcesLayoffs(t *testing.T) {
	e := testEngine(25)
	small, _ := e.Catalog.BuildingDef("office_small")
	medium, _ := e.Catalog.BuildingDef("office_medium")
	s := &State{
		Date:        startDate,
		Company:     Company{Employees: 80, EmployeeCapacity: 90, HeadquartersID: medium.ID},
		Departments: []Department{{Name: DeptDevelopment, Employees: 80, Efficiency: 50}},
		Buildings:   []Building{small, medium},
	}

	next := e.Apply(s, Action{Type: ActionSellBuilding, BuildingID: medium.ID})

	if want := medium.Cost * 80 / 100; next.Company.Assets != want {
		t.Errorf("assets = %d, want %d (80%% of cost)", next.Company.Assets, want)
	}
	if next.Company.EmployeeCapacity != 30 {
		t.Errorf("capacity = %d, want 30", next.Company.EmployeeCapacity)
	}
	if next.Company.Employees != 30 {
		t.Errorf("employees = %d, want 30 after layoffs", next.Company.Employees)
	}
	if got := next.Department(DeptDevelopment).Employees; got != 30 {
		t.Errorf("department employees = %d, want 30", got)
	}
	if next.Company.HeadquartersID != small.ID {
		t.Errorf("headquarters = %q, want reassignment to %q", next.Company.HeadquartersID, small.ID)
	}
	if !hasEventTitled(next, "Restructuring") {
		t.Error("missing layoff event")
	}
}

func TestMoveHeadquarters(t *testing.T) {
	e := testEngine(26)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionMoveHeadquarters, BuildingID: "office_medium"})
	if next.Company.HeadquartersID != "office_small" {
		t.Error("moving into an unowned building must be rejected")
	}

	s = e.Apply(s, Action{Type: ActionBuyBuilding, BuildingID: "office_medium"})
	s = e.Apply(s, Action{Type: ActionMoveHeadquarters, BuildingID: "office_medium"})
	if s.Company.HeadquartersID != "office_medium" {
		t.Errorf("headquarters = %q, want office_medium", s.Company.HeadquartersID)
	}
}

func TestGiveBonus(t *testing.T) {
	e := testEngine(27)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionGiveBonus, DepartmentName: "Ghost", Amount: 1})
	if len(next.Boosts) != 0 {
		t.Error("bonus to a missing department must be rejected")
	}

	s = e.Apply(s, Action{Type: ActionGiveBonus, DepartmentName: DeptDevelopment, Amount: 50_000_000})
	if want := int64(100_000_000_000 - 50_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.Boosts) != 1 {
		t.Fatalf("boosts = %+v, want exactly one", s.Boosts)
	}
	b := s.Boosts[0]
	if b.DepartmentName != DeptDevelopment || b.Amount != bonusBoostAmount || b.WeeksRemaining != bonusBoostWeeks {
		t.Errorf("boost = %+v, want +%v for %d weeks on %s", b, bonusBoostAmount, bonusBoostWeeks, DeptDevelopment)
	}
}

func TestStartStrategyLifecycle(t *testing.T) {
	e := testEngine(28)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionStartRnDStrategy, StrategyID: RnDPatent})
	if want := int64(100_000_000_000 - 1_000_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.RnDProjects) != 1 || s.RnDProjects[0].WeeksRemaining != 24 {
		t.Fatalf("R&D projects = %+v, want one 24-week run", s.RnDProjects)
	}

	next := e.Apply(s, Action{Type: ActionStartRnDStrategy, StrategyID: RnDPatent})
	if len(next.RnDProjects) != 1 || next.Company.Assets != s.Company.Assets {
		t.Error("starting an in-progress strategy must be rejected")
	}

	done := s.Clone()
	done.RnDProjects = nil
	def, _ := e.Catalog.RnDStrategy(RnDPatent)
	done.CompletedRnD = []StrategyDef{def}
	next = e.Apply(done, Action{Type: ActionStartRnDStrategy, StrategyID: RnDPatent})
	if len(next.RnDProjects) != 0 || next.Company.Assets != done.Company.Assets {
		t.Error("restarting a completed strategy must be rejected")
	}
}

func TestStartStrategyUnaffordable(t *testing.T) {
	e := testEngine(28)
	s := e.NewGame("Acme Games")
	s.Company.Assets = 0

	next := e.Apply(s, Action{Type: ActionStartGlobalStrategy, StrategyID: "localization"})
	if len(next.GlobalProjects) != 0 || next.Company.Assets != 0 {
		t.Error("unaffordable strategy must be rejected")
	}
}

func TestStartPolicy(t *testing.T) {
	e := testEngine(29)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionStartPolicy, PolicyID: PolicyQAReinforcement})
	if want := int64(100_000_000_000 - 300_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.ActivePolicies) != 1 || s.ActivePolicies[0].WeeksRemaining != 8 {
		t.Fatalf("policies = %+v, want one 8-week run", s.ActivePolicies)
	}

	next := e.Apply(s, Action{Type: ActionStartPolicy, PolicyID: PolicyQAReinforcement})
	if len(next.ActivePolicies) != 1 || next.Company.Assets != s.Company.Assets {
		t.Error("re-enacting an active policy must be rejected")
	}
}

func TestEstablishSubsidiary(t *testing.T) {
	e := testEngine(30)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionEstablishSubsidiary, SubsidiaryID: "qa_outsourcing"})
	if want := int64(100_000_000_000 - 2_000_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.Subsidiaries) != 1 {
		t.Fatalf("subsidiaries = %+v, want one", s.Subsidiaries)
	}

	next := e.Apply(s, Action{Type: ActionEstablishSubsidiary, SubsidiaryID: "qa_outsourcing"})
	if len(next.Subsidiaries) != 1 || next.Company.Assets != s.Company.Assets {
		t.Error("duplicate subsidiary must be rejected")
	}
}

func TestEstablishFoundation(t *testing.T) {
	e := testEngine(31)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionEstablishFoundation, FoundationID: "scholarship"})
	if want := int64(100_000_000_000 - 50_000_000_000); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.Foundations) != 1 {
		t.Fatalf("foundations = %+v, want one", s.Foundations)
	}

	next := e.Apply(s, Action{Type: ActionEstablishFoundation, FoundationID: "ai_research"})
	if len(next.Foundations) != 1 {
		t.Error("unaffordable foundation must be rejected")
	}
}

func TestStartRecruitment(t *testing.T) {
	e := testEngine(32)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionStartRecruitment, Hires: map[string]int{"Ghost": 2}})
	if len(next.Recruitments) != 0 {
		t.Error("hiring for an unknown department must be rejected")
	}

	next = e.Apply(s, Action{Type: ActionStartRecruitment, Hires: map[string]int{DeptDevelopment: 0}})
	if len(next.Recruitments) != 0 {
		t.Error("hiring zero positions must be rejected")
	}

	s = e.Apply(s, Action{Type: ActionStartRecruitment, Hires: map[string]int{DeptDevelopment: 3}})
	if want := int64(100_000_000_000 - 3*recruitmentCostPer); s.Company.Assets != want {
		t.Errorf("assets = %d, want %d", s.Company.Assets, want)
	}
	if len(s.Recruitments) != 1 || s.Recruitments[0].WeeksRemaining != recruitmentWeeks {
		t.Fatalf("recruitments = %+v, want one %d-week pipeline", s.Recruitments, recruitmentWeeks)
	}
}

func TestCreateAndAbolishDepartment(t *testing.T) {
	e := testEngine(33)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionCreateDepartment, DepartmentName: DeptMarketing})
	if len(next.Departments) != len(s.Departments) {
		t.Error("duplicate department must be rejected")
	}

	s = e.Apply(s, Action{Type: ActionCreateDepartment, DepartmentName: "QA"})
	if s.Department("QA") == nil {
		t.Fatal("QA department not created")
	}

	s = e.Apply(s, Action{Type: ActionAbolishDepartment, DepartmentName: DeptMarketing})
	if s.Department(DeptMarketing) != nil {
		t.Fatal("marketing department not removed")
	}
	if s.Company.Employees != 15 {
		t.Errorf("employees = %d, want 15 after abolishing a 2-person department", s.Company.Employees)
	}
}

func TestApplyForPromotionWhileOutstanding(t *testing.T) {
	e := testEngine(34)
	s := e.NewGame("Acme Games")
	s.Promotion = &PromotionApplication{WeeksRemaining: 2, Success: true}

	next := e.Apply(s, Action{Type: ActionApplyForPromotion})
	if next.Promotion.WeeksRemaining != 2 {
		t.Error("a second application must be rejected while one is outstanding")
	}
}

func TestAddEventNormalizesAndSetsTrend(t *testing.T) {
	e := testEngine(35)
	s := e.NewGame("Acme Games")

	s = e.Apply(s, Action{Type: ActionAddEvent, Event: &EventPayload{
		Title:       "Industry Buzz",
		Description: "Fantasy is back.",
		Sentiment:   "euphoric",
		IsNews:      true,
		MarketTrend: &TrendPayload{Genre: "Fantasy RPG", Direction: TrendUp},
	}})

	if s.EventLog[0].Sentiment != SentimentNeutral {
		t.Errorf("sentiment = %s, want unknown values coerced to neutral", s.EventLog[0].Sentiment)
	}
	if !s.EventLog[0].IsNews {
		t.Error("IsNews flag lost")
	}
	trend := s.MarketTrend
	if trend == nil || trend.Genre != "Fantasy RPG" || trend.Direction != TrendUp || trend.WeeksRemaining != marketTrendWeeks {
		t.Errorf("trend = %+v, want a fresh %d-week up-trend", trend, marketTrendWeeks)
	}
}

func TestCreateProject(t *testing.T) {
	e := testEngine(36)
	s := e.NewGame("Acme Games")

	next := e.Apply(s, Action{Type: ActionCreateProject, NewProject: &NewProjectPayload{Name: "", Budget: 1}})
	if len(next.Projects) != len(s.Projects) {
		t.Error("nameless project must be rejected")
	}

	s = e.Apply(s, Action{Type: ActionCreateProject, NewProject: &NewProjectPayload{
		Name: "Starfall", Genre: "Sci-Fi FPS", Platform: "PC", Budget: 2_000_000_000,
	}})
	var p *Project
	for i := range s.Projects {
		if s.Projects[i].Name == "Starfall" {
			p = &s.Projects[i]
		}
	}
	if p == nil {
		t.Fatal("project not created")
	}
	if p.ExpectedRevenue != 6_000_000_000 {
		t.Errorf("expected revenue = %d, want 3x budget", p.ExpectedRevenue)
	}
	if p.TargetCountry != "Domestic" {
		t.Errorf("target country = %q, want default 'Domestic'", p.TargetCountry)
	}
}

func TestReleaseProjectScoring(t *testing.T) {
	rng := &stubSource{floats: []float64{0.5, 0.5}}
	e := NewEngine(rng, DefaultCatalog())
	s := &State{
		Date:    startDate,
		Company: Company{Reputation: 50},
		Departments: []Department{
			{Name: DeptDevelopment, Efficiency: 60},
			{Name: DeptOperations, Efficiency: 50},
			{Name: DeptMarketing, Efficiency: 50},
		},
		Projects: []Project{{
			ID: "p1", Name: "Dragonsoul", Genre: "Fantasy RPG",
			Budget: 1_000_000_000, ExpectedRevenue: 3_000_000_000,
			Status: StatusInDevelopment,
		}},
		MarketTrend: &MarketTrend{Genre: "Fantasy RPG", Direction: TrendUp, WeeksRemaining: 5},
	}

	// bonus = (60-50)/5 + (50-50)/4 + 20 trend = 22; base = 50 + 0.5*25.
	next := e.Apply(s, Action{Type: ActionReleaseProject, ProjectID: "p1"})

	if len(next.Reviews) != 1 {
		t.Fatalf("reviews = %+v, want exactly one", next.Reviews)
	}
	r := next.Reviews[0]
	if r.ExpertScore != 84 || r.OverallScore != 84 {
		t.Errorf("scores = %d/%d, want 84/84", r.ExpertScore, r.OverallScore)
	}
	if !almostEqual(r.UserRating, 8.4) {
		t.Errorf("user rating = %v, want 8.4", r.UserRating)
	}

	wantRevenue := int64(math.Floor(3_000_000_000 * math.Max(0.1, 84.0/60.0)))
	if next.Company.Assets != wantRevenue || next.Company.Revenue != wantRevenue {
		t.Errorf("assets/revenue = %d/%d, want %d", next.Company.Assets, next.Company.Revenue, wantRevenue)
	}
	if next.Company.Reputation != 53 {
		t.Errorf("reputation = %v, want 53 (+floor(19/5))", next.Company.Reputation)
	}

	p := next.Project("p1")
	if p.Status != StatusReleased || p.ReleaseDate == nil {
		t.Errorf("project = %+v, want released with a release date", p)
	}
	if next.EventLog[0].Sentiment != SentimentPositive {
		t.Errorf("launch sentiment = %s, want positive (revenue beat budget)", next.EventLog[0].Sentiment)
	}

	again := e.Apply(next, Action{Type: ActionReleaseProject, ProjectID: "p1"})
	if len(again.Reviews) != 1 || again.Company.Assets != next.Company.Assets {
		t.Error("re-releasing must be rejected")
	}
}
