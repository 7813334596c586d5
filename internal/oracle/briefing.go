package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hokim6252-glitch/ceosim/internal/sim"
)

// GenerateBriefing writes a short weekly memo from the CEO's chief of
// staff, summarizing what changed between two consecutive weekly states.
func GenerateBriefing(ctx context.Context, client *Client, before, after *sim.State, report sim.WeekReport) (string, error) {
	if !client.Enabled() {
		return "", fmt.Errorf("oracle client not configured")
	}

	system := `You are the chief of staff at a game development company, writing the CEO's Monday morning briefing. Write 2-4 sentences of professional but warm prose. Mention the most significant numbers. Do not use bullet points, headers, or greetings. Do not reference the simulation.`

	user := buildBriefingPrompt(before, after, report)

	text, err := client.Complete(ctx, system, user, 400)
	if err != nil {
		return "", fmt.Errorf("briefing generation: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func buildBriefingPrompt(before, after *sim.State, report sim.WeekReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Week of %s at %s.\n\n", after.Date.Format("2006-01-02"), after.Company.Name)
	fmt.Fprintf(&b, "Cash: %s won (was %s won).\n",
		humanize.Comma(after.Company.Assets), humanize.Comma(before.Company.Assets))
	fmt.Fprintf(&b, "Weekly costs: %s won (payroll %s, maintenance %s, project spend %s).\n",
		humanize.Comma(report.Costs()),
		humanize.Comma(report.EmployeeCost),
		humanize.Comma(report.MaintenanceCost),
		humanize.Comma(report.ProjectCost))
	if report.Revenues() > 0 {
		fmt.Fprintf(&b, "Weekly revenue: %s won.\n", humanize.Comma(report.Revenues()))
	}
	if report.HiresPlaced > 0 {
		fmt.Fprintf(&b, "%d new hires started.\n", report.HiresPlaced)
	}
	if report.HiresLost > 0 {
		fmt.Fprintf(&b, "%d candidates were lost for lack of office space.\n", report.HiresLost)
	}

	for _, p := range after.Projects {
		if p.Status != sim.StatusInDevelopment {
			continue
		}
		fmt.Fprintf(&b, "Project %s (%s): %.0f%% complete.\n", p.Name, p.Genre, p.Progress)
	}

	if len(after.EventLog) > 0 && (len(before.EventLog) == 0 || after.EventLog[0].ID != before.EventLog[0].ID) {
		b.WriteString("\nThis week's log:\n")
		for i, entry := range after.EventLog {
			if i >= 5 || (len(before.EventLog) > 0 && entry.ID == before.EventLog[0].ID) {
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", entry.Title, entry.Description)
		}
	}

	b.WriteString("\nWrite the briefing.")
	return b.String()
}
