package sim

// Well-known department names. Departments are free-form, but several
// formulas key off these.
const (
	DeptDevelopment  = "Development"
	DeptOperations   = "Operations"
	DeptMarketing    = "Marketing"
	DeptFinance      = "Finance & Investment"
	DeptHR           = "HR"
	DeptLocalization = "Localization"
	DeptEsports      = "Esports & Content"
)

// Policy ids the bonus calculator and weekly pass recognize.
const (
	PolicySalaryNegotiation = "salary_negotiation"
	PolicyRemoteWork        = "remote_work"
	PolicyAIDev             = "ai_dev"
	PolicyQAReinforcement   = "qa_reinforcement"
	PolicyStreamerEvent     = "streamer_event"
	PolicyGlobalAd          = "global_ad"
	PolicyOfflineEvent      = "offline_event"
	PolicyMonetization      = "monetization_adjustment"
	PolicyExecMeeting       = "exec_meeting"
)

// R&D ids with hardcoded completion effects.
const (
	RnDEngine    = "engine"
	RnDAISupport = "ai_support"
	RnDAINPC     = "ai_npc"
	RnDPhysics   = "physics"
	RnDPatent    = "patent"
	RnDSecurity  = "security"
)

const billion = int64(1_000_000_000)

// Genres recognized by market trends and project creation.
var Genres = []string{
	"Fantasy RPG", "Sci-Fi FPS", "Business Sim", "Casual Puzzle",
	"Sports", "Horror", "Action Adventure",
}

// Platforms a project can target.
var Platforms = []string{"PC", "Mobile", "Console", "VR/AR"}

// TargetCountries a project can launch in.
var TargetCountries = []string{"Domestic", "North America", "Europe", "Japan", "China", "Global"}

// Catalog holds the static definitions every handler resolves ids against.
type Catalog struct {
	Buildings        []Building
	Assets           []FinancialAsset
	GlobalStrategies []StrategyDef
	IPStrategies     []StrategyDef
	RnDStrategies    []StrategyDef
	Policies         []PolicyDef
	Subsidiaries     []Subsidiary
	Foundations      []Foundation
}

func findDef(defs []StrategyDef, id string) (StrategyDef, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return StrategyDef{}, false
}

// GlobalStrategy resolves a global-market strategy definition by id.
func (c *Catalog) GlobalStrategy(id string) (StrategyDef, bool) { return findDef(c.GlobalStrategies, id) }

// IPStrategy resolves an IP strategy definition by id.
func (c *Catalog) IPStrategy(id string) (StrategyDef, bool) { return findDef(c.IPStrategies, id) }

// RnDStrategy resolves an R&D strategy definition by id.
func (c *Catalog) RnDStrategy(id string) (StrategyDef, bool) { return findDef(c.RnDStrategies, id) }

// BuildingDef resolves a purchasable building by id.
func (c *Catalog) BuildingDef(id string) (Building, bool) {
	for _, b := range c.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}

// PolicyDef resolves a policy definition by id.
func (c *Catalog) PolicyDef(id string) (PolicyDef, bool) {
	for _, p := range c.Policies {
		if p.ID == id {
			return p, true
		}
	}
	return PolicyDef{}, false
}

// SubsidiaryDef resolves a subsidiary definition by id.
func (c *Catalog) SubsidiaryDef(id string) (Subsidiary, bool) {
	for _, s := range c.Subsidiaries {
		if s.ID == id {
			return s, true
		}
	}
	return Subsidiary{}, false
}

// FoundationDef resolves a foundation definition by id.
func (c *Catalog) FoundationDef(id string) (Foundation, bool) {
	for _, f := range c.Foundations {
		if f.ID == id {
			return f, true
		}
	}
	return Foundation{}, false
}

var tierLadder = map[Tier]Tier{
	TierSmallMedium:  TierMidSize,
	TierMidSize:      TierLarge,
	TierLarge:        TierConglomerate,
	TierConglomerate: TierGlobalLarge,
}

// NextTier returns the tier above t, if one exists.
func NextTier(t Tier) (Tier, bool) {
	next, ok := tierLadder[t]
	return next, ok
}

// DefaultCatalog returns the full static content set.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Buildings: []Building{
			{ID: "office_small", Name: "Small Office (3F)", Type: BuildingOffice, Cost: 2 * billion, MaintenanceFee: 5_000_000, EmployeeCapacity: 30, Effects: []string{"Houses 30 employees"}},
			{ID: "office_medium", Name: "Mid-Size Office (6F)", Type: BuildingOffice, Cost: 5 * billion, MaintenanceFee: 10_000_000, EmployeeCapacity: 60, Effects: []string{"Houses 60 employees"}},
			{ID: "office_large", Name: "Large Office (12F)", Type: BuildingOffice, Cost: 10 * billion, MaintenanceFee: 20_000_000, EmployeeCapacity: 120, Effects: []string{"Houses 120 employees"}},
			{ID: "office_xlarge", Name: "Campus Office (20F)", Type: BuildingOffice, Cost: 25 * billion, MaintenanceFee: 50_000_000, EmployeeCapacity: 300, Effects: []string{"Houses 300 employees"}},
			{ID: "office_hq", Name: "Headquarters Tower", Type: BuildingOffice, Cost: 100 * billion, MaintenanceFee: 200_000_000, EmployeeCapacity: 1000, Effects: []string{"Houses 1000 employees"}},
			{ID: "data_center", Name: "Data Center", Type: BuildingDataCenter, Cost: 30 * billion, MaintenanceFee: 80_000_000, Effects: []string{"Server stability up"}, IsUnique: true},
			{ID: "research_lab", Name: "Research Lab", Type: BuildingLab, Cost: 20 * billion, MaintenanceFee: 60_000_000, Effects: []string{"R&D speed up", "Patent success up"}, IsUnique: true},
			{ID: "motion_capture_studio", Name: "Motion Capture Studio", Type: BuildingMotionCapture, Cost: 15 * billion, MaintenanceFee: 40_000_000, Effects: []string{"AAA quality bonus"}, IsUnique: true},
			{ID: "hr_dev_center", Name: "HR Development Center", Type: BuildingHRCenter, Cost: 18 * billion, MaintenanceFee: 45_000_000, Effects: []string{"Internal training", "Employee growth"}, IsUnique: true},
		},
		Assets: []FinancialAsset{
			{ID: "stock_kr_1", Name: "K-Games", Category: AssetDomesticStock, Price: 85_000, Volatility: 0.15},
			{ID: "stock_kr_2", Name: "Metaverse Korea", Category: AssetDomesticStock, Price: 120_000, Volatility: 0.2},
			{ID: "stock_kr_3", Name: "Seoul Semiconductor", Category: AssetDomesticStock, Price: 55_000, Volatility: 0.1},
			{ID: "stock_kr_4", Name: "AI Solutions", Category: AssetDomesticStock, Price: 210_000, Volatility: 0.25},
			{ID: "stock_kr_5", Name: "Future Mobility", Category: AssetDomesticStock, Price: 95_000, Volatility: 0.18},
			{ID: "stock_us_1", Name: "Global Gaming Inc.", Category: AssetForeignStock, Price: 150_000, Volatility: 0.12},
			{ID: "stock_us_2", Name: "Silicon Valley Tech", Category: AssetForeignStock, Price: 320_000, Volatility: 0.18},
			{ID: "stock_us_3", Name: "NextGen AI Corp", Category: AssetForeignStock, Price: 500_000, Volatility: 0.3},
			{ID: "stock_us_4", Name: "Quantum Computing Co.", Category: AssetForeignStock, Price: 80_000, Volatility: 0.4},
			{ID: "stock_us_5", Name: "Cloud Services Giant", Category: AssetForeignStock, Price: 280_000, Volatility: 0.1},
			{ID: "etf_1", Name: "KODEX 200", Category: AssetETF, Price: 30_000, Volatility: 0.05},
			{ID: "etf_2", Name: "TIGER Nasdaq 100", Category: AssetETF, Price: 80_000, Volatility: 0.08},
			{ID: "etf_3", Name: "Global Lithium & Battery", Category: AssetETF, Price: 15_000, Volatility: 0.22},
			{ID: "bond_1", Name: "KR Treasury 10Y", Category: AssetBond, Price: 100_000, Volatility: 0.01},
			{ID: "bond_2", Name: "US Treasury 20Y", Category: AssetBond, Price: 105_000, Volatility: 0.02},
			{ID: "crypto_1", Name: "GameCoin (GMC)", Category: AssetCrypto, Price: 1_500, Volatility: 0.5},
			{ID: "crypto_2", Name: "Techrium (TCR)", Category: AssetCrypto, Price: 80_000, Volatility: 0.4},
			{ID: "crypto_3", Name: "AI Coin (AIC)", Category: AssetCrypto, Price: 500, Volatility: 0.6},
			{ID: "crypto_4", Name: "Cyber Token (CYT)", Category: AssetCrypto, Price: 2_200, Volatility: 0.45},
			{ID: "crypto_5", Name: "Metaverse Cash (MVC)", Category: AssetCrypto, Price: 50, Volatility: 0.8},
		},
		GlobalStrategies: []StrategyDef{
			{ID: "localization", Name: "Localization (Text & Voice)", Description: "Translate and dub for the target market.", Cost: 3 * billion, DurationWeeks: 8},
			{ID: "server", Name: "Overseas Server Buildout", Description: "Deploy regional data centers for stable play.", Cost: 10 * billion, DurationWeeks: 24},
			{ID: "publishing", Name: "Overseas Publisher Deal", Description: "Partner with a local publisher for launch.", Cost: 5 * billion, DurationWeeks: 12},
			{ID: "advertising", Name: "Global Advertising", Description: "Worldwide marketing campaign for awareness.", Cost: 8 * billion, DurationWeeks: 4},
			{ID: "pricing", Name: "Global Pricing Policy", Description: "Per-country pricing tuned to local markets.", Cost: 1 * billion, DurationWeeks: 6},
			{ID: "branch", Name: "Overseas Branch Office", Description: "Establish a branch to run regional business.", Cost: 20 * billion, DurationWeeks: 36},
		},
		IPStrategies: []StrategyDef{
			{ID: "license_in", Name: "License a Famous IP", Description: "Develop on top of a well-known licensed IP.", Cost: 15 * billion, DurationWeeks: 4},
			{ID: "collab", Name: "IP Collaboration", Description: "Crossover content with another popular IP.", Cost: 5 * billion, DurationWeeks: 12},
			{ID: "media_mix", Name: "Media Mix Expansion", Description: "Extend the IP into webtoons, video and goods.", Cost: 8 * billion, DurationWeeks: 24},
			{ID: "animation", Name: "Animation Production", Description: "Produce a high-quality series from the IP.", Cost: 20 * billion, DurationWeeks: 52},
			{ID: "license_renew", Name: "License Renewal", Description: "Renew an existing IP license.", Cost: 10 * billion, DurationWeeks: 2},
			{ID: "co_dev", Name: "Joint Development", Description: "Co-develop a project with another studio.", Cost: 0, DurationWeeks: 16},
			{ID: "platform_expansion", Name: "Console & Mobile Ports", Description: "Port a PC hit to new platforms.", Cost: 6 * billion, DurationWeeks: 30},
		},
		RnDStrategies: []StrategyDef{
			{ID: RnDEngine, Name: "In-House Engine", Description: "Build a proprietary engine for long-term speed.", Cost: 50 * billion, DurationWeeks: 104},
			{ID: RnDAISupport, Name: "AI Development Support", Description: "Automate the pipeline and predict bugs with AI.", Cost: 15 * billion, DurationWeeks: 52},
			{ID: RnDAINPC, Name: "Adaptive AI NPCs", Description: "NPCs that react to and learn from players.", Cost: 8 * billion, DurationWeeks: 40},
			{ID: RnDPhysics, Name: "Physics Engine Research", Description: "Realistic physics simulation for immersion.", Cost: 12 * billion, DurationWeeks: 60},
			{ID: RnDPatent, Name: "Patent Filing & Licensing", Description: "Protect core tech and license it out.", Cost: 1 * billion, DurationWeeks: 24},
			{ID: RnDSecurity, Name: "Security & Anti-Cheat", Description: "Protect fair play with anti-cheat tech.", Cost: 7 * billion, DurationWeeks: 36},
		},
		Policies: []PolicyDef{
			{ID: PolicySalaryNegotiation, Name: "Salary Negotiation Season", Description: "Adjust salaries for satisfaction and loyalty.", Departments: []string{DeptHR}, Cost: 500_000_000, DurationWeeks: 4},
			{ID: PolicyRemoteWork, Name: "Remote Work", Description: "Cut facility costs at some communication loss.", Departments: []string{DeptHR, DeptDevelopment, DeptOperations}, Cost: 100_000_000, DurationWeeks: 24},
			{ID: PolicyAIDev, Name: "AI-Assisted Development", Description: "Speed up development and reduce bug rates.", Departments: []string{DeptDevelopment}, Cost: 1 * billion, DurationWeeks: 12},
			{ID: PolicyQAReinforcement, Name: "QA Reinforcement", Description: "Ship more stable builds for better reviews.", Departments: []string{DeptOperations}, Cost: 300_000_000, DurationWeeks: 8},
			{ID: PolicyStreamerEvent, Name: "Streamer Event", Description: "Partner with streamers for short-term reach.", Departments: []string{DeptMarketing, DeptEsports}, Cost: 800_000_000, DurationWeeks: 4},
			{ID: PolicyGlobalAd, Name: "Global Ad Contract", Description: "Run worldwide user-acquisition campaigns.", Departments: []string{DeptLocalization, DeptMarketing}, Cost: 1_200_000_000, DurationWeeks: 8},
			{ID: PolicyOfflineEvent, Name: "Convention Appearance", Description: "Raise brand value at offline conventions.", Departments: []string{DeptMarketing}, Cost: 1_500_000_000, DurationWeeks: 2},
			{ID: PolicyMonetization, Name: "Monetization Adjustment", Description: "Rework pricing from player and revenue data.", Departments: []string{DeptOperations, DeptDevelopment, DeptMarketing, DeptFinance}, Cost: 200_000_000, DurationWeeks: 12},
			{ID: PolicyExecMeeting, Name: "Executive Meeting", Description: "Align company policy and speed up approvals.", Departments: []string{"Strategy Office"}, Cost: 50_000_000, DurationWeeks: 1},
		},
		Subsidiaries: []Subsidiary{
			{ID: "esports_corp", Name: "Esports Corporation", Description: "League operations, teams and streaming.", Cost: 5 * billion, MaintenanceFee: 20_000_000, WeeklyRevenue: 35_000_000, IsUnique: true},
			{ID: "animation_studio", Name: "Animation Studio", Description: "Video and animation built on game IP.", Cost: 8 * billion, MaintenanceFee: 30_000_000, WeeklyRevenue: 45_000_000, IsUnique: true},
			{ID: "merchandising_co", Name: "Merchandising Company", Description: "Goods based on characters and settings.", Cost: 3 * billion, MaintenanceFee: 15_000_000, WeeklyRevenue: 25_000_000, IsUnique: true},
			{ID: "webtoon_studio", Name: "Webtoon Studio", Description: "Extend stories into webtoons and novels.", Cost: 4 * billion, MaintenanceFee: 18_000_000, WeeklyRevenue: 30_000_000, IsUnique: true},
			{ID: "ai_dev_co", Name: "AI Development Company", Description: "Research and sell game-dev AI solutions.", Cost: 12 * billion, MaintenanceFee: 50_000_000, WeeklyRevenue: 70_000_000, IsUnique: true},
			{ID: "qa_outsourcing", Name: "QA Outsourcing Company", Description: "Steady income from internal and external QA.", Cost: 2 * billion, MaintenanceFee: 25_000_000, WeeklyRevenue: 30_000_000, IsUnique: true},
			{ID: "global_publishing", Name: "Global Publishing Arm", Description: "Publish directly in overseas markets.", Cost: 10 * billion, MaintenanceFee: 40_000_000, WeeklyRevenue: 60_000_000, IsUnique: true},
		},
		Foundations: []Foundation{
			{ID: "scholarship", Name: "Game Dev Scholarship Foundation", Description: "Support the next generation of developers.", Cost: 50 * billion, MaintenanceFee: 100_000_000, ReputationBonus: 0.1},
			{ID: "esports_youth", Name: "Youth Esports Foundation", Description: "Run youth tournaments and scout talent.", Cost: 30 * billion, MaintenanceFee: 80_000_000, ReputationBonus: 0.08},
			{ID: "ai_research", Name: "AI Research Foundation", Description: "Fund AI research and a tech-leader image.", Cost: 80 * billion, MaintenanceFee: 150_000_000, ReputationBonus: 0.12},
		},
	}
}
