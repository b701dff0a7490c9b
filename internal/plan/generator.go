package plan

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDuration = errors.New("invalid plan duration")
	ErrInvalidPool     = errors.New("invalid content pool")
)

// Generator builds plan content from exercise and meal pools.
// Exercise names may repeat across days. Meals are drawn without
// replacement per slot and the slot pool is recycled once exhausted.
type Generator struct {
	rnd RandomSource
}

func NewGenerator(rnd RandomSource) *Generator {
	return &Generator{
		rnd: rnd,
	}
}

// Generate materializes durationDays of workouts and meals. Random draws
// happen per day, exercises first (category order, then name, sets, reps
// and rest) followed by meals in slot order.
func (g *Generator) Generate(durationDays int, exercisePool []ExerciseDefinition, mealPools MealPools) (*Content, error) {
	if durationDays <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationDays)
	}

	byCategory, err := groupExercises(exercisePool)
	if err != nil {
		return nil, err
	}

	pickers := make(map[MealSlot]*slotPicker, len(MealSlots()))
	for _, slot := range MealSlots() {
		meals := mealPools[slot]
		if len(meals) == 0 {
			return nil, fmt.Errorf("%w: no meals for slot %s", ErrInvalidPool, slot)
		}
		pickers[slot] = newSlotPicker(meals)
	}

	content := &Content{
		Workouts: make([]DayWorkout, 0, durationDays),
		Meals:    make([]DayMeal, 0, durationDays),
	}
	for day := 1; day <= durationDays; day++ {
		workout := DayWorkout{
			DayNumber: day,
			Exercises: make([]ExerciseAssignment, 0, len(RequiredCategories())),
		}
		for _, category := range RequiredCategories() {
			candidates := byCategory[category]
			def := candidates[g.rnd.Next(len(candidates))]
			workout.Exercises = append(workout.Exercises, ExerciseAssignment{
				Name:     def.Name,
				Category: category,
				Sets:     def.Sets[g.rnd.Next(len(def.Sets))],
				Reps:     def.Reps[g.rnd.Next(len(def.Reps))],
				Rest:     def.Rest[g.rnd.Next(len(def.Rest))],
			})
		}

		meal := DayMeal{DayNumber: day}
		for _, slot := range MealSlots() {
			meal.setSlot(slot, pickers[slot].pick(g.rnd))
		}

		content.Workouts = append(content.Workouts, workout)
		content.Meals = append(content.Meals, meal)
	}

	return content, nil
}

func groupExercises(pool []ExerciseDefinition) (map[Category][]ExerciseDefinition, error) {
	byCategory := make(map[Category][]ExerciseDefinition, len(RequiredCategories()))
	for _, def := range pool {
		if len(def.Sets) == 0 || len(def.Reps) == 0 || len(def.Rest) == 0 {
			return nil, fmt.Errorf("%w: exercise %q has no sets/reps/rest candidates", ErrInvalidPool, def.Name)
		}
		byCategory[def.Category] = append(byCategory[def.Category], def)
	}
	for _, category := range RequiredCategories() {
		if len(byCategory[category]) == 0 {
			return nil, fmt.Errorf("%w: no exercises for category %s", ErrInvalidPool, category)
		}
	}
	return byCategory, nil
}

// slotPicker draws entries of a single meal slot without replacement.
type slotPicker struct {
	pool      []string
	used      []bool
	usedCount int
}

func newSlotPicker(pool []string) *slotPicker {
	return &slotPicker{
		pool: pool,
		used: make([]bool, len(pool)),
	}
}

func (p *slotPicker) pick(rnd RandomSource) string {
	if p.usedCount == len(p.pool) {
		clear(p.used)
		p.usedCount = 0
	}

	n := rnd.Next(len(p.pool) - p.usedCount)
	for i, used := range p.used {
		if used {
			continue
		}
		if n == 0 {
			p.used[i] = true
			p.usedCount++
			return p.pool[i]
		}
		n--
	}

	// unreachable while rnd honours its bound
	panic(fmt.Sprintf("slot picker: random index out of range for pool of %d", len(p.pool)))
}
