package sim

import (
	"time"

	"github.com/hokim6252-glitch/ceosim/internal/entropy"
)

// Engine applies actions and weekly advancement to game states. It holds no
// game state itself; the caller owns the canonical State and passes it in.
type Engine struct {
	RNG     entropy.Source
	Catalog *Catalog
}

// NewEngine creates an engine over the given randomness source and catalog.
func NewEngine(rng entropy.Source, catalog *Catalog) *Engine {
	return &Engine{RNG: rng, Catalog: catalog}
}

var startDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewGame builds the initial state: a small studio with one office, one
// in-development project and a starting war chest.
func (e *Engine) NewGame(companyName string) *State {
	starterOffice, _ := e.Catalog.BuildingDef("office_small")

	departments := []Department{
		{Name: DeptDevelopment, Employees: 10},
		{Name: DeptOperations, Employees: 2},
		{Name: DeptMarketing, Employees: 2},
		{Name: DeptFinance, Employees: 1},
		{Name: DeptHR, Employees: 1},
		{Name: DeptLocalization, Employees: 1},
		{Name: DeptEsports, Employees: 0},
	}
	for i := range departments {
		eff := float64(e.RNG.Intn(101))
		departments[i].Efficiency = eff
		departments[i].KPI = eff
	}

	s := &State{
		Company: Company{
			Name:             companyName,
			Tier:             TierSmallMedium,
			Assets:           100_000_000_000,
			Reputation:       50,
			Employees:        17,
			EmployeeCapacity: starterOffice.EmployeeCapacity,
			HeadquartersID:   starterOffice.ID,
		},
		Date:        startDate,
		Departments: departments,
		Projects: []Project{{
			ID:              "proj_1",
			Name:            "Project: Dragonsoul",
			Genre:           "Fantasy RPG",
			Platform:        "PC",
			TargetCountry:   "Domestic",
			Progress:        5,
			Budget:          1_000_000_000,
			ExpectedRevenue: 5_000_000_000,
			StartDate:       startDate,
			Status:          StatusInDevelopment,
		}},
		Buildings:       []Building{starterOffice},
		FinancialAssets: append([]FinancialAsset(nil), e.Catalog.Assets...),
		EventLog: []LogEntry{newEntry(startDate, SentimentNeutral, "A New Beginning",
			"Your first week as CEO. Lead the company to success.")},
	}
	Normalize(s, e.Catalog)
	return s
}

// Normalize is the load-boundary defaulting and recomputation pass. It
// fills missing collections, recomputes every derived field and clamps
// bounded values. Persistence must run a loaded blob through here before
// handing it to the engine; transition logic never depends on it.
func Normalize(s *State, catalog *Catalog) {
	if s.Departments == nil {
		s.Departments = []Department{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Reviews == nil {
		s.Reviews = []Review{}
	}
	if s.Buildings == nil {
		s.Buildings = []Building{}
	}
	if len(s.FinancialAssets) == 0 {
		s.FinancialAssets = append([]FinancialAsset(nil), catalog.Assets...)
	}
	if s.Portfolio.Holdings == nil {
		s.Portfolio.Holdings = []Holding{}
	}
	if s.Recruitments == nil {
		s.Recruitments = []Recruitment{}
	}
	if s.GlobalProjects == nil {
		s.GlobalProjects = []StrategyProject{}
	}
	if s.IPProjects == nil {
		s.IPProjects = []StrategyProject{}
	}
	if s.RnDProjects == nil {
		s.RnDProjects = []StrategyProject{}
	}
	if s.CompletedGlobal == nil {
		s.CompletedGlobal = []StrategyDef{}
	}
	if s.CompletedIP == nil {
		s.CompletedIP = []StrategyDef{}
	}
	if s.CompletedRnD == nil {
		s.CompletedRnD = []StrategyDef{}
	}
	if s.ActivePolicies == nil {
		s.ActivePolicies = []ActivePolicy{}
	}
	if s.Subsidiaries == nil {
		s.Subsidiaries = []Subsidiary{}
	}
	if s.Foundations == nil {
		s.Foundations = []Foundation{}
	}
	if s.Boosts == nil {
		s.Boosts = []Boost{}
	}
	if s.EventLog == nil {
		s.EventLog = []LogEntry{}
	}
	if len(s.EventLog) > maxLogEntries {
		s.EventLog = s.EventLog[:maxLogEntries]
	}

	for i := range s.Projects {
		if s.Projects[i].Status == "" {
			s.Projects[i].Status = StatusInDevelopment
		}
		if s.Projects[i].TargetCountry == "" {
			s.Projects[i].TargetCountry = "Domestic"
		}
	}

	for i := range s.Departments {
		d := &s.Departments[i]
		d.Efficiency = clampF(d.Efficiency, 0, 100)
		d.KPI = clampF(d.KPI, 0, 100)
		if d.Employees < 0 {
			d.Employees = 0
		}
	}

	// Derived fields are recomputed, never trusted from storage.
	s.Company.EmployeeCapacity = capacityOf(s.Buildings)
	s.Portfolio.TotalValue = s.markToMarket()
	s.Company.Reputation = clampF(s.Company.Reputation, 0, 100)
	if s.Company.Employees < 0 {
		s.Company.Employees = 0
	}

	if s.Building(s.Company.HeadquartersID) == nil {
		s.Company.HeadquartersID = ""
	}
	if s.Company.HeadquartersID == "" {
		for _, b := range s.Buildings {
			if b.Type == BuildingOffice {
				s.Company.HeadquartersID = b.ID
				break
			}
		}
	}
}

func capacityOf(buildings []Building) int {
	total := 0
	for _, b := range buildings {
		total += b.EmployeeCapacity
	}
	return total
}

// markToMarket values the portfolio at current prices. Holdings whose
// asset id no longer resolves contribute nothing.
func (s *State) markToMarket() int64 {
	var total int64
	for _, h := range s.Portfolio.Holdings {
		if a := s.Asset(h.AssetID); a != nil {
			total += a.Price * h.Quantity
		}
	}
	return total
}
