package progress

import (
	"cmp"
	"math"
	"slices"
)

type AggregateProgress struct {
	TotalCaloriesBurned  float64               `json:"totalCaloriesBurned"`
	CurrentStreak        int                   `json:"currentStreak"`
	CompletionPercentage int                   `json:"completionPercentage"`
	DailyProgress        []DailyProgressRecord `json:"dailyProgress"`
}

// Aggregate derives the progress view from the full set of records of a plan.
//
// The streak counts the most recent records that are both complete. Only
// existing records are walked: a day without any record does not break the
// streak, while a recorded but incomplete day does.
func Aggregate(records []DailyProgressRecord) AggregateProgress {
	agg := AggregateProgress{
		DailyProgress: make([]DailyProgressRecord, 0, len(records)),
	}

	both := 0
	for _, r := range records {
		agg.TotalCaloriesBurned += r.CaloriesBurned
		if r.BothComplete() {
			both++
		}
		agg.DailyProgress = append(agg.DailyProgress, r)
	}
	agg.CompletionPercentage = int(math.Round(100 * float64(both) / float64(max(1, len(records)))))

	slices.SortStableFunc(agg.DailyProgress, compareRecords)
	for i := len(agg.DailyProgress) - 1; i >= 0; i-- {
		if !agg.DailyProgress[i].BothComplete() {
			break
		}
		agg.CurrentStreak++
	}

	return agg
}

// compareRecords orders by date, then by day number.
func compareRecords(a, b DailyProgressRecord) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.DayNumber, b.DayNumber)
}
