// Package sim implements the company simulation core: the game state, the
// weekly advancement pass, and one handler per player action. Every
// transition is a pure function from an old state to a new one; randomness
// enters only through the injected entropy source.
package sim

import "time"

// Tier is the company's size classification. Promotion moves one step up.
type Tier string

const (
	TierSmallMedium  Tier = "small-medium"
	TierMidSize      Tier = "mid-size"
	TierLarge        Tier = "large"
	TierConglomerate Tier = "conglomerate"
	TierGlobalLarge  Tier = "global-large"
)

// Sentiment classifies a log entry.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// BuildingType distinguishes capacity-bearing offices from unique
// special-purpose facilities.
type BuildingType string

const (
	BuildingOffice        BuildingType = "office"
	BuildingDataCenter    BuildingType = "data-center"
	BuildingLab           BuildingType = "lab"
	BuildingMotionCapture BuildingType = "motion-capture"
	BuildingHRCenter      BuildingType = "hr-center"
)

// AssetCategory groups tradable financial instruments.
type AssetCategory string

const (
	AssetDomesticStock AssetCategory = "domestic-stock"
	AssetForeignStock  AssetCategory = "foreign-stock"
	AssetETF           AssetCategory = "etf"
	AssetBond          AssetCategory = "bond"
	AssetCrypto        AssetCategory = "crypto"
)

// ProjectStatus tracks a game project's lifecycle.
type ProjectStatus string

const (
	StatusInDevelopment ProjectStatus = "in-development"
	StatusReleased      ProjectStatus = "released"
)

// TrendDirection is the direction of an active market trend.
type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
)

// BoostKind classifies a temporary boost. Only efficiency boosts exist today.
type BoostKind string

const BoostEfficiency BoostKind = "efficiency"

// Company is the player-controlled corporation. Assets are signed won;
// the simulation never enforces a bankruptcy cutoff.
type Company struct {
	Name             string  `json:"name"`
	Tier             Tier    `json:"tier"`
	Assets           int64   `json:"assets"`
	Revenue          int64   `json:"revenue"` // annual revenue accumulator
	Debt             int64   `json:"debt"`
	Reputation       float64 `json:"reputation"` // clamped [0,100]
	Employees        int     `json:"employees"`
	EmployeeCapacity int     `json:"employee_capacity"` // derived from buildings
	HeadquartersID   string  `json:"headquarters_id"`
}

// Department groups employees under a unique name. Efficiency is the stored
// baseline; temporary boosts only affect derived rates, never this value.
type Department struct {
	Name       string  `json:"name"`
	Employees  int     `json:"employees"`
	Efficiency float64 `json:"efficiency"`
	KPI        float64 `json:"kpi"` // noisy weekly view of efficiency
}

// Project is a game under development or already released.
type Project struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Genre           string        `json:"genre"`
	Platform        string        `json:"platform"`
	TargetCountry   string        `json:"target_country"`
	Progress        float64       `json:"progress"` // [0,100]
	Budget          int64         `json:"budget"`
	ExpectedRevenue int64         `json:"expected_revenue"`
	StartDate       time.Time     `json:"start_date"`
	ReleaseDate     *time.Time    `json:"release_date,omitempty"`
	Status          ProjectStatus `json:"status"`
}

// Review is the immutable critical reception of a released project.
type Review struct {
	ProjectID    string  `json:"project_id"`
	ExpertScore  int     `json:"expert_score"` // [0,100]
	UserRating   float64 `json:"user_rating"`  // [0,10]
	OverallScore int     `json:"overall_score"`
}

// Building is an owned property. Offices are the only capacity source;
// unique buildings grant passive bonuses through the bonus calculator.
type Building struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             BuildingType `json:"type"`
	Cost             int64        `json:"cost"`
	MaintenanceFee   int64        `json:"maintenance_fee"`
	EmployeeCapacity int          `json:"employee_capacity"`
	Effects          []string     `json:"effects,omitempty"`
	IsUnique         bool         `json:"is_unique"`
}

// FinancialAsset is a tradable instrument whose price follows a weekly
// random walk. Prices are whole won, floored at 1.
type FinancialAsset struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Category   AssetCategory `json:"category"`
	Price      int64         `json:"price"`
	Volatility float64       `json:"volatility"` // [0,1]
}

// Holding is a position in one asset with a volume-weighted cost basis.
type Holding struct {
	AssetID      string  `json:"asset_id"`
	Quantity     int64   `json:"quantity"`
	AveragePrice float64 `json:"average_price"`
}

// Portfolio holds all positions. TotalValue is derived every week from
// current prices, never carried over incrementally.
type Portfolio struct {
	Holdings   []Holding `json:"holdings"`
	TotalValue int64     `json:"total_value"`
}

// StrategyDef is the static definition of a timed one-shot initiative
// (global-market, IP, or R&D).
type StrategyDef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Cost          int64  `json:"cost"`
	DurationWeeks int    `json:"duration_weeks"`
}

// StrategyProject is a running instance of a StrategyDef.
type StrategyProject struct {
	ID             string `json:"id"`
	StrategyID     string `json:"strategy_id"`
	Name           string `json:"name"`
	WeeksRemaining int    `json:"weeks_remaining"`
	TotalWeeks     int    `json:"total_weeks"`
}

// PolicyDef is the static definition of a repeatable departmental policy.
type PolicyDef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Departments   []string `json:"departments"`
	Cost          int64    `json:"cost"`
	DurationWeeks int      `json:"duration_weeks"`
}

// ActivePolicy is a running policy instance.
type ActivePolicy struct {
	PolicyID       string `json:"policy_id"`
	Name           string `json:"name"`
	WeeksRemaining int    `json:"weeks_remaining"`
}

// Subsidiary generates weekly revenue against a maintenance fee.
type Subsidiary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Cost           int64  `json:"cost"`
	MaintenanceFee int64  `json:"maintenance_fee"`
	WeeklyRevenue  int64  `json:"weekly_revenue"`
	IsUnique       bool   `json:"is_unique"`
}

// Foundation trades a maintenance fee for a weekly reputation bonus.
type Foundation struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Cost            int64   `json:"cost"`
	MaintenanceFee  int64   `json:"maintenance_fee"`
	ReputationBonus float64 `json:"reputation_bonus"`
}

// PromotionApplication is an outstanding tier-promotion review. The outcome
// is drawn once at application time, not at resolution.
type PromotionApplication struct {
	WeeksRemaining int  `json:"weeks_remaining"`
	Success        bool `json:"success"`
}

// MarketTrend boosts (or depresses) review scores for a matching genre.
type MarketTrend struct {
	Genre          string         `json:"genre"`
	Direction      TrendDirection `json:"direction"`
	WeeksRemaining int            `json:"weeks_remaining"`
}

// Boost is a short-lived stacking modifier to a department's effective
// efficiency. Its magnitude never accumulates into the stored baseline.
type Boost struct {
	DepartmentName string    `json:"department_name"`
	Kind           BoostKind `json:"kind"`
	Amount         float64   `json:"amount"`
	WeeksRemaining int       `json:"weeks_remaining"`
}

// Recruitment is a hiring pipeline resolving after a fixed countdown.
// Hires maps department name to requested headcount.
type Recruitment struct {
	ID             string         `json:"id"`
	Hires          map[string]int `json:"hires"`
	WeeksRemaining int            `json:"weeks_remaining"`
}

// LogEntry is one line of the append-only, capped event log.
type LogEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sentiment   Sentiment `json:"sentiment"`
	IsNews      bool      `json:"is_news,omitempty"`
}

// State is the complete game state. Transitions replace it wholesale;
// callers must treat a State handed to the engine as immutable.
type State struct {
	Company         Company               `json:"company"`
	Date            time.Time             `json:"date"`
	Departments     []Department          `json:"departments"`
	Projects        []Project             `json:"projects"`
	Reviews         []Review              `json:"reviews"`
	Buildings       []Building            `json:"buildings"`
	FinancialAssets []FinancialAsset      `json:"financial_assets"`
	Portfolio       Portfolio             `json:"portfolio"`
	Recruitments    []Recruitment         `json:"recruitments"`
	GlobalProjects  []StrategyProject     `json:"global_projects"`
	IPProjects      []StrategyProject     `json:"ip_projects"`
	RnDProjects     []StrategyProject     `json:"rnd_projects"`
	CompletedGlobal []StrategyDef         `json:"completed_global"`
	CompletedIP     []StrategyDef         `json:"completed_ip"`
	CompletedRnD    []StrategyDef         `json:"completed_rnd"`
	ActivePolicies  []ActivePolicy        `json:"active_policies"`
	Subsidiaries    []Subsidiary          `json:"subsidiaries"`
	Foundations     []Foundation          `json:"foundations"`
	Promotion       *PromotionApplication `json:"promotion,omitempty"`
	MarketTrend     *MarketTrend          `json:"market_trend,omitempty"`
	Boosts          []Boost               `json:"boosts"`
	EventLog        []LogEntry            `json:"event_log"`
}

// Clone returns a deep copy. Handlers mutate the copy and return it, which
// keeps every transition copy-on-write from the caller's point of view.
func (s *State) Clone() *State {
	next := *s

	next.Departments = append([]Department(nil), s.Departments...)
	next.Projects = append([]Project(nil), s.Projects...)
	for i, p := range next.Projects {
		if p.ReleaseDate != nil {
			d := *p.ReleaseDate
			next.Projects[i].ReleaseDate = &d
		}
	}
	next.Reviews = append([]Review(nil), s.Reviews...)
	next.Buildings = append([]Building(nil), s.Buildings...)
	next.FinancialAssets = append([]FinancialAsset(nil), s.FinancialAssets...)
	next.Portfolio.Holdings = append([]Holding(nil), s.Portfolio.Holdings...)
	next.Recruitments = make([]Recruitment, len(s.Recruitments))
	for i, r := range s.Recruitments {
		hires := make(map[string]int, len(r.Hires))
		for k, v := range r.Hires {
			hires[k] = v
		}
		r.Hires = hires
		next.Recruitments[i] = r
	}
	next.GlobalProjects = append([]StrategyProject(nil), s.GlobalProjects...)
	next.IPProjects = append([]StrategyProject(nil), s.IPProjects...)
	next.RnDProjects = append([]StrategyProject(nil), s.RnDProjects...)
	next.CompletedGlobal = append([]StrategyDef(nil), s.CompletedGlobal...)
	next.CompletedIP = append([]StrategyDef(nil), s.CompletedIP...)
	next.CompletedRnD = append([]StrategyDef(nil), s.CompletedRnD...)
	next.ActivePolicies = append([]ActivePolicy(nil), s.ActivePolicies...)
	next.Subsidiaries = append([]Subsidiary(nil), s.Subsidiaries...)
	next.Foundations = append([]Foundation(nil), s.Foundations...)
	next.Boosts = append([]Boost(nil), s.Boosts...)
	next.EventLog = append([]LogEntry(nil), s.EventLog...)

	if s.Promotion != nil {
		p := *s.Promotion
		next.Promotion = &p
	}
	if s.MarketTrend != nil {
		t := *s.MarketTrend
		next.MarketTrend = &t
	}
	return &next
}

// Department returns a pointer into the state's department slice, or nil.
func (s *State) Department(name string) *Department {
	for i := range s.Departments {
		if s.Departments[i].Name == name {
			return &s.Departments[i]
		}
	}
	return nil
}

// Building returns the owned building with the given id, or nil.
func (s *State) Building(id string) *Building {
	for i := range s.Buildings {
		if s.Buildings[i].ID == id {
			return &s.Buildings[i]
		}
	}
	return nil
}

// Asset returns the tradable asset with the given id, or nil.
func (s *State) Asset(id string) *FinancialAsset {
	for i := range s.FinancialAssets {
		if s.FinancialAssets[i].ID == id {
			return &s.FinancialAssets[i]
		}
	}
	return nil
}

// Holding returns the portfolio position for an asset, or nil.
func (s *State) Holding(assetID string) *Holding {
	for i := range s.Portfolio.Holdings {
		if s.Portfolio.Holdings[i].AssetID == assetID {
			return &s.Portfolio.Holdings[i]
		}
	}
	return nil
}

// Project returns the project with the given id, or nil.
func (s *State) Project(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}
