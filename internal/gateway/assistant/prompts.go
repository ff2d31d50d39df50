package assistant

import (
	"fmt"
	"strings"

	"logistics-dashboard-service/internal/domain"
)

func optimizePrompt(routes []domain.Route) string {
	var b strings.Builder
	b.WriteString("As a logistics route optimization AI, analyze the following delivery routes ")
	b.WriteString("and suggest the most efficient order to run them in.\n\nRoutes:\n")
	for i, r := range routes {
		fmt.Fprintf(&b, "%d. %s: %s -> %s", i+1, r.RouteID, r.StartLocation, r.EndLocation)
		if r.Distance != nil {
			fmt.Fprintf(&b, ", %d km", *r.Distance)
		}
		if r.EstimatedDuration != nil {
			fmt.Fprintf(&b, ", estimated %d min", *r.EstimatedDuration)
		}
		fmt.Fprintf(&b, ", %d stops:\n", len(r.Stops))
		for _, stop := range r.Stops {
			fmt.Fprintf(&b, "   - %s (%s)\n", stop.Location, stop.Status)
		}
	}
	b.WriteString("\nAnswer with a JSON array only, no prose and no markdown, ")
	b.WriteString("one element per route, shaped as ")
	b.WriteString(`{"routeId": string, "position": number, "notes": string}. `)
	b.WriteString("Position is the suggested 1-based visiting order. ")
	b.WriteString("Every listed routeId must appear exactly once.")
	return b.String()
}

func organizePrompt(emails []domain.Email) string {
	var b strings.Builder
	b.WriteString("As an email management AI for a logistics company, categorize the following emails.\n")
	for i, e := range emails {
		fmt.Fprintf(&b, "\nEmail %d:\n- From: %s\n- Date: %s\n- Subject: %s\n- Content: %s\n",
			i, e.Sender, e.Date, e.Subject, e.Content)
	}
	b.WriteString("\nAnswer with a JSON array only, no prose and no markdown, ")
	b.WriteString("one element per email, shaped as ")
	b.WriteString(`{"index": number, "category": string, "summary": string, "priority": string}. `)
	b.WriteString("Index refers to the email number above. Category must be one of: ")
	b.WriteString("delivery_confirmations, route_changes, inventory_queries, customer_issues, ")
	b.WriteString("urgent_action_required, other. ")
	b.WriteString("Priority must be one of: high, medium, low. ")
	b.WriteString("Summary is at most 15 words.")
	return b.String()
}
