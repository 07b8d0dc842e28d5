// Package achievements turns practice progress into experience points, levels
// and a fixed set of badges. A Tracker consumes the telemetry events the
// progress store emits, so it never reads the store directly.
package achievements

// Category groups achievements by the value they are measured against.
type Category string

const (
	// CategoryMastery counts completed patterns.
	CategoryMastery Category = "pattern_mastery"
	// CategoryConsistency counts consecutive practice days.
	CategoryConsistency Category = "consistency"
	// CategoryMilestone looks at the best catch count ever recorded.
	CategoryMilestone Category = "milestone"
)

// Achievement is one badge and what it takes to earn it.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Required    int
	Reward      int
}

// Definitions returns every achievement in display order. Catch counts are
// capped at 100, so there is no milestone above that.
func Definitions() []Achievement {
	return []Achievement{
		{ID: "first_pattern", Name: "First Steps", Description: "Master your first pattern", Category: CategoryMastery, Required: 1, Reward: 100},
		{ID: "pattern_collector", Name: "Pattern Collector", Description: "Master 5 different patterns", Category: CategoryMastery, Required: 5, Reward: 250},
		{ID: "pattern_expert", Name: "Pattern Expert", Description: "Master 15 different patterns", Category: CategoryMastery, Required: 15, Reward: 500},
		{ID: "first_streak", Name: "Consistent", Description: "Practice for 3 days in a row", Category: CategoryConsistency, Required: 3, Reward: 150},
		{ID: "week_streak", Name: "Weekly Warrior", Description: "Practice for 7 days in a row", Category: CategoryConsistency, Required: 7, Reward: 300},
		{ID: "month_streak", Name: "Monthly Master", Description: "Practice for 30 days in a row", Category: CategoryConsistency, Required: 30, Reward: 1000},
		{ID: "catch_milestone_50", Name: "Half-Century", Description: "Reach 50 catches in a single pattern", Category: CategoryMilestone, Required: 50, Reward: 200},
		{ID: "catch_milestone_100", Name: "Century Catcher", Description: "Reach 100 catches in a single pattern", Category: CategoryMilestone, Required: 100, Reward: 350},
	}
}

// Lookup returns the achievement with the given id.
func Lookup(id string) (Achievement, bool) {
	for _, a := range Definitions() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
