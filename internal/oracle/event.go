package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

// GenerateEvent asks the model for one world event grounded in the current
// game state. The returned payload is fed through the engine's ADD_EVENT
// action; the caller decides whether and when to do that.
func GenerateEvent(ctx context.Context, client *Client, s *sim.State) (*sim.EventPayload, error) {
	if !client.Enabled() {
		return nil, fmt.Errorf("oracle client not configured")
	}

	system := buildEventSystemPrompt()
	user := buildEventUserPrompt(s)

	text, err := client.Complete(ctx, system, user, 500)
	if err != nil {
		return nil, fmt.Errorf("event generation: %w", err)
	}

	return parseEventResponse(text)
}

func buildEventSystemPrompt() string {
	return fmt.Sprintf(
		`You are the news desk of a business simulation about a game development company. Each week you produce ONE short industry or world event that affects the player's company indirectly.

Respond ONLY with a single JSON object:
- "title": a short headline
- "description": 1-2 sentences of flavor text (do not address the player directly, do not reference the simulation)
- "sentiment": one of "positive", "negative", "neutral"
- "is_news": true if this is industry news rather than an internal company matter
- "market_trend": OPTIONAL; include only when the event shifts genre demand, as {"genre": <one of %s>, "direction": "up" or "down"}

Keep events plausible for the games industry. Never grant or remove money directly.`,
		strings.Join(sim.Genres, ", "),
	)
}

func buildEventUserPrompt(s *sim.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s. Company: %s (%s tier).\n", s.Date.Format("2006-01-02"), s.Company.Name, s.Company.Tier)
	fmt.Fprintf(&b, "Assets: %s won. Reputation: %.0f/100. Employees: %d.\n\n",
		humanize.Comma(s.Company.Assets), s.Company.Reputation, s.Company.Employees)

	var inDev []string
	for _, p := range s.Projects {
		if p.Status == sim.StatusInDevelopment {
			inDev = append(inDev, fmt.Sprintf("%s (%s, %.0f%%)", p.Name, p.Genre, p.Progress))
		}
	}
	if len(inDev) > 0 {
		fmt.Fprintf(&b, "Projects in development:\n")
		for _, line := range inDev {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	if t := s.MarketTrend; t != nil {
		fmt.Fprintf(&b, "Active market trend: %s demand is trending %s (%d weeks left).\n\n",
			t.Genre, t.Direction, t.WeeksRemaining)
	}

	if len(s.EventLog) > 0 {
		b.WriteString("Recent headlines:\n")
		for i, entry := range s.EventLog {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s\n", entry.Title)
		}
		b.WriteString("\n")
	}

	b.WriteString("What happens this week? Respond with a single JSON object.")
	return b.String()
}

func parseEventResponse(text string) (*sim.EventPayload, error) {
	// Find JSON object in response.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var payload sim.EventPayload
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}

	if payload.Title == "" || payload.Description == "" {
		return nil, fmt.Errorf("event missing title or description")
	}
	switch payload.Sentiment {
	case sim.SentimentPositive, sim.SentimentNegative, sim.SentimentNeutral:
	default:
		payload.Sentiment = sim.SentimentNeutral
	}
	if t := payload.MarketTrend; t != nil {
		if t.Direction != sim.TrendUp && t.Direction != sim.TrendDown {
			return nil, fmt.Errorf("invalid trend direction: %s", t.Direction)
		}
		if !validGenre(t.Genre) {
			payload.MarketTrend = nil
		}
	}

	return &payload, nil
}

func validGenre(genre string) bool {
	for _, g := range sim.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
