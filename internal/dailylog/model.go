package dailylog

import "time"

// Entry is one food eaten on a given local date.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      string    `json:"date"`
	FoodName  string    `json:"food_name" validate:"required,max=255"`
	Calories  int       `json:"calories" validate:"gte=0,lte=100000"`
	Protein   int       `json:"protein" validate:"gte=0,lte=10000"`
	CreatedAt time.Time `json:"created_at"`
}

// Day is a user's log for one date with its running totals.
type Day struct {
	Date          string  `json:"date"`
	Entries       []Entry `json:"entries"`
	TotalCalories int     `json:"total_calories"`
	TotalProtein  int     `json:"total_protein"`
}

// EatenNames reports which food names already appear in the day's log.
func (d *Day) EatenNames() map[string]bool {
	names := make(map[string]bool, len(d.Entries))
	for _, e := range d.Entries {
		names[e.FoodName] = true
	}
	return names
}

func newDay(date string, entries []Entry) *Day {
	if entries == nil {
		entries = []Entry{}
	}
	d := &Day{Date: date, Entries: entries}
	for _, e := range entries {
		d.TotalCalories += e.Calories
		d.TotalProtein += e.Protein
	}
	return d
}
