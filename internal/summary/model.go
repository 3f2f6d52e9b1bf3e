package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
)

// Summary is a saved snapshot of one day's log and the goals in force that day.
type Summary struct {
	UserID        string    `json:"-"`
	Date          string    `json:"date"`
	TotalCalories int       `json:"total_calories"`
	TotalProtein  int       `json:"total_protein"`
	Text          string    `json:"summary"`
	CalorieGoal   int       `json:"calorie_goal"`
	ProteinGoal   int       `json:"protein_goal"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// newSummary renders entries in log order as "name calories (protein)".
func newSummary(userID string, day *dailylog.Day, g *goals.Goals) *Summary {
	parts := make([]string, 0, len(day.Entries))
	for _, e := range day.Entries {
		parts = append(parts, fmt.Sprintf("%s %d (%d)", e.FoodName, e.Calories, e.Protein))
	}

	return &Summary{
		UserID:        userID,
		Date:          day.Date,
		TotalCalories: day.TotalCalories,
		TotalProtein:  day.TotalProtein,
		Text:          strings.Join(parts, ", "),
		CalorieGoal:   g.Calories,
		ProteinGoal:   g.Protein,
	}
}
