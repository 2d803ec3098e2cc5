package renderer

import (
	"github.com/vlemos/leadbook"
)

// MonthlyView is the data rendered by the monthly report template.
type MonthlyView struct {
	Broker  string
	Summary *leadbook.MonthlySummary

	HasGoal    bool
	Goal       int
	Attainment leadbook.Percent
}

// MonthlyMarkdown renders a month's summary to markdown. The goal section is
// rendered only for profiles carrying a monthly sales goal.
func MonthlyMarkdown(broker string, s *leadbook.MonthlySummary, goal *int) string {
	view := MonthlyView{Broker: broker, Summary: s}
	if goal != nil {
		view.HasGoal = true
		view.Goal = *goal
		view.Attainment = s.GoalAttainment(*goal)
	}

	partials := map[string]string{
		"monthly_title": "monthly_title.md",
		"monthly_goal":  "monthly_goal.md",
	}
	return renderTemplate("monthly", "monthly.md", partials, view)
}
