package plan

import (
	"errors"
	"time"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrActivePlanExists = errors.New("user already has an active plan")
	ErrDayOutOfRange    = errors.New("day out of plan range")
)

// Category is one of the exercise groupings required once per day.
type Category string

const (
	CategoryUpperBody Category = "upper_body"
	CategoryLowerBody Category = "lower_body"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
)

// RequiredCategories returns the categories every DayWorkout covers, in assignment order.
func RequiredCategories() []Category {
	return []Category{CategoryUpperBody, CategoryLowerBody, CategoryCore, CategoryCardio}
}

// MealSlot is one of the five meal positions in a day.
type MealSlot string

const (
	SlotBreakfast       MealSlot = "breakfast"
	SlotMidMorningSnack MealSlot = "mid_morning_snack"
	SlotLunch           MealSlot = "lunch"
	SlotAfternoonSnack  MealSlot = "afternoon_snack"
	SlotDinner          MealSlot = "dinner"
)

// MealSlots returns all meal slots in the order they are filled.
func MealSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotMidMorningSnack, SlotLunch, SlotAfternoonSnack, SlotDinner}
}

// ExerciseDefinition is a catalog entry. Sets, Reps and Rest hold the
// candidates a single assignment is drawn from.
type ExerciseDefinition struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Sets     []int    `json:"sets"`
	Reps     []int    `json:"reps"`
	Rest     []string `json:"rest"`
}

// MealPools maps every slot to its catalog of meals.
type MealPools map[MealSlot][]string

type ExerciseAssignment struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Rest     string   `json:"rest"`
}

type DayWorkout struct {
	DayNumber int                  `json:"dayNumber"`
	Exercises []ExerciseAssignment `json:"exercises"`
}

type DayMeal struct {
	DayNumber       int    `json:"dayNumber"`
	Breakfast       string `json:"breakfast"`
	MidMorningSnack string `json:"midMorningSnack"`
	Lunch           string `json:"lunch"`
	AfternoonSnack  string `json:"afternoonSnack"`
	Dinner          string `json:"dinner"`
}

// Slot returns the meal assigned to the given slot.
func (m DayMeal) Slot(slot MealSlot) string {
	switch slot {
	case SlotBreakfast:
		return m.Breakfast
	case SlotMidMorningSnack:
		return m.MidMorningSnack
	case SlotLunch:
		return m.Lunch
	case SlotAfternoonSnack:
		return m.AfternoonSnack
	case SlotDinner:
		return m.Dinner
	default:
		return ""
	}
}

func (m *DayMeal) setSlot(slot MealSlot, meal string) {
	switch slot {
	case SlotBreakfast:
		m.Breakfast = meal
	case SlotMidMorningSnack:
		m.MidMorningSnack = meal
	case SlotLunch:
		m.Lunch = meal
	case SlotAfternoonSnack:
		m.AfternoonSnack = meal
	case SlotDinner:
		m.Dinner = meal
	}
}

// Content is the generated body of a plan, index-aligned by day.
type Content struct {
	Workouts []DayWorkout `json:"workouts"`
	Meals    []DayMeal    `json:"meals"`
}

// Plan is created once at generation time and only ever superseded.
type Plan struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	Name      string       `json:"name"`
	Duration  int          `json:"duration"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"createdAt"`
	Workouts  []DayWorkout `json:"workouts"`
	Meals     []DayMeal    `json:"meals"`
}

// PlanDay is the content of a single day of a plan.
type PlanDay struct {
	PlanID    string     `json:"planId"`
	DayNumber int        `json:"dayNumber"`
	Workout   DayWorkout `json:"workout"`
	Meal      DayMeal    `json:"meal"`
}

// Day returns the content of the given 1-based day.
func (p *Plan) Day(day int) (*PlanDay, error) {
	if day < 1 || day > p.Duration || day > len(p.Workouts) || day > len(p.Meals) {
		return nil, ErrDayOutOfRange
	}
	return &PlanDay{
		PlanID:    p.ID,
		DayNumber: day,
		Workout:   p.Workouts[day-1],
		Meal:      p.Meals[day-1],
	}, nil
}
