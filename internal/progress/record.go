package progress

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrInvalidKind    = errors.New("invalid completion kind")
	ErrInvalidEvent   = errors.New("invalid completion event")
	ErrRecordNotFound = errors.New("plan day not found")
)

type Kind string

const (
	KindWorkout Kind = "workout"
	KindMeal    Kind = "meal"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindWorkout, KindMeal:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// DayState is derived from the two completion flags of a record.
type DayState string

const (
	StateNotStarted   DayState = "not_started"
	StateWorkoutOnly  DayState = "workout_only"
	StateMealOnly     DayState = "meal_only"
	StateBothComplete DayState = "both_complete"
)

// Apply returns the state reached after a completion of the given kind.
// BothComplete absorbs every further event.
func (s DayState) Apply(kind Kind) DayState {
	switch {
	case s == StateBothComplete:
		return StateBothComplete
	case kind == KindWorkout && s == StateMealOnly, kind == KindMeal && s == StateWorkoutOnly:
		return StateBothComplete
	case kind == KindWorkout:
		return StateWorkoutOnly
	case kind == KindMeal:
		return StateMealOnly
	default:
		return s
	}
}

// DailyProgressRecord is the progress of one user on one day of one plan.
type DailyProgressRecord struct {
	UserID                 string    `json:"userId"`
	PlanID                 string    `json:"planId"`
	DayNumber              int       `json:"dayNumber"`
	Date                   time.Time `json:"date"`
	WorkoutCompleted       bool      `json:"workoutCompleted"`
	MealCompleted          bool      `json:"mealCompleted"`
	CaloriesBurned         float64   `json:"caloriesBurned"`
	WorkoutDurationSeconds int       `json:"workoutDurationSeconds"`
	ExerciseNames          []string  `json:"exerciseNames"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func (r DailyProgressRecord) State() DayState {
	switch {
	case r.WorkoutCompleted && r.MealCompleted:
		return StateBothComplete
	case r.WorkoutCompleted:
		return StateWorkoutOnly
	case r.MealCompleted:
		return StateMealOnly
	default:
		return StateNotStarted
	}
}

func (r DailyProgressRecord) BothComplete() bool {
	return r.WorkoutCompleted && r.MealCompleted
}

// MaxEventDurationSeconds caps the workout duration a single event can add.
const MaxEventDurationSeconds = 24 * 60 * 60

// CompletionEvent marks a workout or meal of a plan day as done.
type CompletionEvent struct {
	UserID          string    `json:"userId"`
	PlanID          string    `json:"planId"`
	DayNumber       int       `json:"dayNumber"`
	Kind            Kind      `json:"kind"`
	CaloriesBurned  float64   `json:"caloriesBurned"`
	DurationSeconds int       `json:"durationSeconds"`
	ExerciseNames   []string  `json:"exerciseNames"`
	Date            time.Time `json:"date"`
}

func (e CompletionEvent) Validate() error {
	if _, err := ParseKind(string(e.Kind)); err != nil {
		return err
	}
	if e.UserID == "" || e.PlanID == "" {
		return fmt.Errorf("%w: missing user or plan", ErrInvalidEvent)
	}
	if e.DayNumber < 1 {
		return fmt.Errorf("%w: day number %d", ErrInvalidEvent, e.DayNumber)
	}
	if e.CaloriesBurned < 0 || e.DurationSeconds < 0 {
		return fmt.Errorf("%w: negative calories or duration", ErrInvalidEvent)
	}
	if e.DurationSeconds > MaxEventDurationSeconds {
		return fmt.Errorf("%w: duration %ds exceeds a day", ErrInvalidEvent, e.DurationSeconds)
	}
	return nil
}

// Merge folds the event into the existing record, or into an empty one when
// existing is nil. Flags are OR-ed so a completed day cannot be un-marked.
// Calories and duration always accumulate, even on an already complete day.
// Exercise names are appended without duplicates.
func Merge(existing *DailyProgressRecord, e CompletionEvent) DailyProgressRecord {
	var merged DailyProgressRecord
	if existing != nil {
		merged = *existing
		merged.ExerciseNames = slices.Clone(existing.ExerciseNames)
	} else {
		merged = DailyProgressRecord{
			UserID:    e.UserID,
			PlanID:    e.PlanID,
			DayNumber: e.DayNumber,
			Date:      e.Date,
		}
	}

	switch e.Kind {
	case KindWorkout:
		merged.WorkoutCompleted = true
	case KindMeal:
		merged.MealCompleted = true
	}
	merged.CaloriesBurned += e.CaloriesBurned
	merged.WorkoutDurationSeconds += e.DurationSeconds
	for _, name := range e.ExerciseNames {
		if !slices.Contains(merged.ExerciseNames, name) {
			merged.ExerciseNames = append(merged.ExerciseNames, name)
		}
	}

	return merged
}
