package recommend

import (
	"math"

	"github.com/AndyIsBuilding/calorie-counter/internal/food"
)

// Recommend runs the three knapsack objectives over catalog with protein as
// value and calories as weight. catalog order is significant: a later item
// only displaces an earlier choice when it strictly improves protein, so
// equally good subsets resolve to the one found first.
//
// Negative budgets are treated as zero. Foods with a negative calorie or
// protein value are never selected. The table has TableCells cells; callers
// bound that before calling.
//
// The table is max(sum of calories, remainingCalories) wide, so protein_first
// scans every level from remainingCalories up to that width. When the budget
// exceeds the whole catalog this differs from a scan bounded by the catalog
// sum: remainingCalories itself is scanned, so protein_first is the best
// bundle at that level whenever it meets the protein target, where a
// sum-bounded scan covers no level at all and reports protein_first absent.
func Recommend(catalog []food.Food, remainingCalories, remainingProtein int) Result {
	if remainingCalories < 0 {
		remainingCalories = 0
	}
	if remainingProtein < 0 {
		remainingProtein = 0
	}

	items := usable(catalog)

	// One table wide enough for every pass. Column w only depends on
	// columns <= w, so the narrower passes read identical values.
	width, _ := tableWidth(items, remainingCalories)
	k := buildTable(items, width)
	n := len(items)

	var res Result

	if k[n][remainingCalories] >= remainingProtein {
		res.HitBoth = backtrack(k, items, remainingCalories)
	}

	for cal := remainingCalories; cal <= width; cal++ {
		if k[n][cal] >= remainingProtein {
			res.ProteinFirst = backtrack(k, items, cal)
			break
		}
	}

	res.CalorieFirst = backtrack(k, items, remainingCalories)

	return res
}

// usable copies the foods the table can index. The caller's slice is never modified.
func usable(catalog []food.Food) []food.Food {
	items := make([]food.Food, 0, len(catalog))
	for _, f := range catalog {
		if f.Calories < 0 || f.Protein < 0 {
			continue
		}
		items = append(items, f)
	}
	return items
}

// buildTable returns k where k[i][w] is the best protein reachable with the
// first i items and at most w calories.
func buildTable(items []food.Food, width int) [][]int {
	n := len(items)
	cells := make([]int, (n+1)*(width+1))
	k := make([][]int, n+1)
	for i := range k {
		k[i] = cells[i*(width+1) : (i+1)*(width+1)]
	}

	for i := 1; i <= n; i++ {
		cal, pro := items[i-1].Calories, items[i-1].Protein
		for w := 0; w <= width; w++ {
			k[i][w] = k[i-1][w]
			if cal > w {
				continue
			}
			if with := pro + k[i-1][w-cal]; with > k[i][w] {
				k[i][w] = with
			}
		}
	}
	return k
}

// backtrack recovers the subset behind k[n][w], walking from the last item down.
func backtrack(k [][]int, items []food.Food, w int) *Bundle {
	b := &Bundle{Foods: []food.Food{}}
	for i := len(items); i > 0; i-- {
		if k[i][w] != k[i-1][w] {
			b.Foods = append(b.Foods, items[i-1])
			w -= items[i-1].Calories
		}
	}
	return b
}

// tableWidth is max(sum of calories, remainingCalories). ok is false when
// the width or the cell count does not fit in an int.
func tableWidth(items []food.Food, remainingCalories int) (width int, ok bool) {
	for _, it := range items {
		if width > math.MaxInt-it.Calories {
			return math.MaxInt, false
		}
		width += it.Calories
	}
	if remainingCalories > width {
		width = remainingCalories
	}
	if width == math.MaxInt || width+1 > math.MaxInt/(len(items)+1) {
		return width, false
	}
	return width, true
}

// TableCells is the number of cells Recommend allocates for catalog and
// budget, saturating at math.MaxInt.
func TableCells(catalog []food.Food, remainingCalories int) int {
	if remainingCalories < 0 {
		remainingCalories = 0
	}
	items := usable(catalog)
	width, ok := tableWidth(items, remainingCalories)
	if !ok {
		return math.MaxInt
	}
	return (len(items) + 1) * (width + 1)
}
