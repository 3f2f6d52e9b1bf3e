package recommend

import "github.com/AndyIsBuilding/calorie-counter/internal/food"

// Bundle is one recommended set of foods. A nil *Bundle means the
// objective could not be met; a Bundle with no foods is a valid empty answer.
type Bundle struct {
	Foods []food.Food
}

func (b *Bundle) TotalCalories() int {
	total := 0
	for _, f := range b.Foods {
		total += f.Calories
	}
	return total
}

func (b *Bundle) TotalProtein() int {
	total := 0
	for _, f := range b.Foods {
		total += f.Protein
	}
	return total
}

// Result holds the three independently evaluated objectives.
type Result struct {
	HitBoth      *Bundle
	ProteinFirst *Bundle
	CalorieFirst *Bundle
}

// Recommendation is a Result plus the day's consumption it was computed against.
type Recommendation struct {
	Result
	ConsumedCalories  int
	ConsumedProtein   int
	RemainingCalories int
	RemainingProtein  int
}

// --------------------------------------------------
// RESPONSE SHAPES
// --------------------------------------------------

type FoodView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
}

type BundleView struct {
	Foods            []FoodView `json:"foods"`
	TotalCalories    int        `json:"total_calories"`
	TotalProtein     int        `json:"total_protein"`
	DayTotalCalories int        `json:"day_total_calories"`
	DayTotalProtein  int        `json:"day_total_protein"`
}

type RecommendationResponse struct {
	HitBoth           *BundleView `json:"hit_both"`
	ProteinFirst      *BundleView `json:"protein_first"`
	CalorieFirst      *BundleView `json:"calorie_first"`
	RemainingCalories int         `json:"remaining_calories"`
	RemainingProtein  int         `json:"remaining_protein"`
}

// NewResponse derives totals and day totals for every present bundle.
func NewResponse(rec *Recommendation) RecommendationResponse {
	view := func(b *Bundle) *BundleView {
		if b == nil {
			return nil
		}
		foods := make([]FoodView, 0, len(b.Foods))
		for _, f := range b.Foods {
			foods = append(foods, FoodView{
				ID:       f.ID,
				Name:     f.Name,
				Calories: f.Calories,
				Protein:  f.Protein,
			})
		}
		return &BundleView{
			Foods:            foods,
			TotalCalories:    b.TotalCalories(),
			TotalProtein:     b.TotalProtein(),
			DayTotalCalories: rec.ConsumedCalories + b.TotalCalories(),
			DayTotalProtein:  rec.ConsumedProtein + b.TotalProtein(),
		}
	}

	return RecommendationResponse{
		HitBoth:           view(rec.HitBoth),
		ProteinFirst:      view(rec.ProteinFirst),
		CalorieFirst:      view(rec.CalorieFirst),
		RemainingCalories: rec.RemainingCalories,
		RemainingProtein:  rec.RemainingProtein,
	}
}
