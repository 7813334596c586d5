package sim

// ActionType discriminates player actions.
type ActionType string

const (
	ActionAdvanceWeek         ActionType = "ADVANCE_WEEK"
	ActionAddEvent            ActionType = "ADD_EVENT"
	ActionStartRecruitment    ActionType = "START_RECRUITMENT"
	ActionCreateProject       ActionType = "CREATE_PROJECT"
	ActionReleaseProject      ActionType = "RELEASE_PROJECT"
	ActionCreateDepartment    ActionType = "CREATE_DEPARTMENT"
	ActionAbolishDepartment   ActionType = "ABOLISH_DEPARTMENT"
	ActionBuyBuilding         ActionType = "BUY_BUILDING"
	ActionSellBuilding        ActionType = "SELL_BUILDING"
	ActionMoveHeadquarters    ActionType = "MOVE_HEADQUARTERS"
	ActionBuyAsset            ActionType = "BUY_ASSET"
	ActionSellAsset           ActionType = "SELL_ASSET"
	ActionStartGlobalStrategy ActionType = "START_GLOBAL_STRATEGY"
	ActionStartIPStrategy     ActionType = "START_IP_STRATEGY"
	ActionStartRnDStrategy    ActionType = "START_RND_STRATEGY"
	ActionStartPolicy         ActionType = "START_POLICY"
	ActionEstablishSubsidiary ActionType = "ESTABLISH_SUBSIDIARY"
	ActionEstablishFoundation ActionType = "ESTABLISH_FOUNDATION"
	ActionApplyForPromotion   ActionType = "APPLY_FOR_PROMOTION"
	ActionGiveBonus           ActionType = "GIVE_BONUS"
)

// TrendPayload is the oracle-supplied market trend fragment.
type TrendPayload struct {
	Genre     string         `json:"genre"`
	Direction TrendDirection `json:"direction"`
}

// EventPayload is an externally generated event folded into the log.
type EventPayload struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sentiment   Sentiment     `json:"sentiment"`
	IsNews      bool          `json:"is_news"`
	MarketTrend *TrendPayload `json:"market_trend,omitempty"`
}

// NewProjectPayload describes a project to start.
type NewProjectPayload struct {
	Name          string `json:"name"`
	Genre         string `json:"genre"`
	Platform      string `json:"platform"`
	Budget        int64  `json:"budget"`
	TargetCountry string `json:"target_country"`
}

// Action is one discriminated player action. Only the fields relevant to
// the Type are consulted; everything else is ignored.
type Action struct {
	Type           ActionType         `json:"type"`
	Event          *EventPayload      `json:"event,omitempty"`
	Hires          map[string]int     `json:"hires,omitempty"`
	NewProject     *NewProjectPayload `json:"new_project,omitempty"`
	ProjectID      string             `json:"project_id,omitempty"`
	DepartmentName string             `json:"department_name,omitempty"`
	BuildingID     string             `json:"building_id,omitempty"`
	AssetID        string             `json:"asset_id,omitempty"`
	Quantity       int64              `json:"quantity,omitempty"`
	StrategyID     string             `json:"strategy_id,omitempty"`
	PolicyID       string             `json:"policy_id,omitempty"`
	SubsidiaryID   string             `json:"subsidiary_id,omitempty"`
	FoundationID   string             `json:"foundation_id,omitempty"`
	Amount         int64              `json:"amount,omitempty"`
}

// Apply runs one action against a state and returns the resulting state.
// Preconditions are re-checked here regardless of what the caller
// validated; a failed check returns the original state plus one rejection
// log entry. Apply never panics on well-formed input and never returns nil.
func (e *Engine) Apply(prev *State, a Action) *State {
	s := prev.Clone()
	switch a.Type {
	case ActionAdvanceWeek:
		next, _ := e.AdvanceWeek(prev)
		return next
	case ActionAddEvent:
		return e.addEvent(s, a)
	case ActionStartRecruitment:
		return e.startRecruitment(s, a)
	case ActionCreateProject:
		return e.createProject(s, a)
	case ActionReleaseProject:
		return e.releaseProject(s, a)
	case ActionCreateDepartment:
		return e.createDepartment(s, a)
	case ActionAbolishDepartment:
		return e.abolishDepartment(s, a)
	case ActionBuyBuilding:
		return e.buyBuilding(s, a)
	case ActionSellBuilding:
		return e.sellBuilding(s, a)
	case ActionMoveHeadquarters:
		return e.moveHeadquarters(s, a)
	case ActionBuyAsset:
		return e.buyAsset(s, a)
	case ActionSellAsset:
		return e.sellAsset(s, a)
	case ActionStartGlobalStrategy:
		return e.startStrategy(s, a.StrategyID, strategyKindGlobal)
	case ActionStartIPStrategy:
		return e.startStrategy(s, a.StrategyID, strategyKindIP)
	case ActionStartRnDStrategy:
		return e.startStrategy(s, a.StrategyID, strategyKindRnD)
	case ActionStartPolicy:
		return e.startPolicy(s, a)
	case ActionEstablishSubsidiary:
		return e.establishSubsidiary(s, a)
	case ActionEstablishFoundation:
		return e.establishFoundation(s, a)
	case ActionApplyForPromotion:
		return e.applyForPromotion(s)
	case ActionGiveBonus:
		return e.giveBonus(s, a)
	default:
		return s.reject("Unknown Action", "Action type %q is not recognized.", string(a.Type))
	}
}

// addEvent folds an oracle-generated event into the log and, when a trend
// fragment is attached, replaces the active market trend with a fresh
// 12-week timer.
func (e *Engine) addEvent(s *State, a Action) *State {
	if a.Event == nil {
		return s.reject("Invalid Event", "Missing event payload.")
	}
	sentiment := a.Event.Sentiment
	switch sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		sentiment = SentimentNeutral
	}
	entry := newEntry(s.Date, sentiment, a.Event.Title, "%s", a.Event.Description)
	entry.IsNews = a.Event.IsNews
	s.pushEvents(entry)
	if t := a.Event.MarketTrend; t != nil {
		s.MarketTrend = &MarketTrend{
			Genre:          t.Genre,
			Direction:      t.Direction,
			WeeksRemaining: marketTrendWeeks,
		}
	}
	return s
}
