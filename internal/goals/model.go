package goals

const (
	DefaultCalories = 2000
	DefaultProtein  = 100
)

// Goals are a user's daily calorie and protein targets.
type Goals struct {
	UserID   string `json:"-"`
	Calories int    `json:"calories" validate:"gte=0,lte=100000"`
	Protein  int    `json:"protein" validate:"gte=0,lte=10000"`
}

func Defaults(userID string) *Goals {
	return &Goals{UserID: userID, Calories: DefaultCalories, Protein: DefaultProtein}
}

// Metric is consumption against one target.
type Metric struct {
	Consumed int     `json:"consumed"`
	Goal     int     `json:"goal"`
	Percent  float64 `json:"percent"`
}

type Progress struct {
	Date     string `json:"date"`
	Goals    *Goals `json:"goals"`
	Calories Metric `json:"calories"`
	Protein  Metric `json:"protein"`
}

func newMetric(consumed, goal int) Metric {
	m := Metric{Consumed: consumed, Goal: goal}
	if goal > 0 {
		m.Percent = float64(consumed) / float64(goal)
		if m.Percent > 1 {
			m.Percent = 1
		}
	}
	return m
}
