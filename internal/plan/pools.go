package plan

var (
	strengthSets = []int{3, 4}
	strengthReps = []int{8, 10, 12}
	strengthRest = []string{"45s", "60s", "90s"}

	coreSets = []int{2, 3}
	coreReps = []int{12, 15, 20}
	coreRest = []string{"30s", "45s"}

	// cardio reps are minutes per round
	cardioSets = []int{1, 2}
	cardioReps = []int{10, 15, 20}
	cardioRest = []string{"60s", "2m"}
)

var exerciseCatalog = []ExerciseDefinition{
	{Name: "Push-ups", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Dumbbell shoulder press", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Bent-over dumbbell row", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Tricep dips", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Bicep curls", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Pike push-ups", Category: CategoryUpperBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},

	{Name: "Bodyweight squats", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Walking lunges", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Glute bridges", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Romanian deadlift", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Step-ups", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},
	{Name: "Calf raises", Category: CategoryLowerBody, Sets: strengthSets, Reps: strengthReps, Rest: strengthRest},

	{Name: "Plank hold", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},
	{Name: "Bicycle crunches", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},
	{Name: "Russian twists", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},
	{Name: "Dead bug", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},
	{Name: "Leg raises", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},
	{Name: "Mountain climbers", Category: CategoryCore, Sets: coreSets, Reps: coreReps, Rest: coreRest},

	{Name: "Jumping jacks", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
	{Name: "Brisk walk", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
	{Name: "Jump rope", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
	{Name: "High knees", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
	{Name: "Burpees", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
	{Name: "Stationary bike", Category: CategoryCardio, Sets: cardioSets, Reps: cardioReps, Rest: cardioRest},
}

var mealCatalog = map[MealSlot][]string{
	SlotBreakfast: {
		"Oatmeal with berries and almonds",
		"Greek yogurt with honey and granola",
		"Scrambled eggs on wholegrain toast",
		"Spinach and feta omelette",
		"Banana peanut butter smoothie",
		"Avocado toast with poached egg",
		"Cottage cheese pancakes",
	},
	SlotMidMorningSnack: {
		"Apple with almond butter",
		"Handful of mixed nuts",
		"Carrot sticks with hummus",
		"Protein shake",
		"Rice cakes with cottage cheese",
		"Pear and a boiled egg",
	},
	SlotLunch: {
		"Grilled chicken quinoa bowl",
		"Tuna salad wrap",
		"Lentil soup with rye bread",
		"Turkey and avocado sandwich",
		"Chickpea and vegetable curry",
		"Salmon poke bowl",
		"Beef and broccoli stir-fry",
	},
	SlotAfternoonSnack: {
		"Greek yogurt with walnuts",
		"Edamame",
		"Banana",
		"Dark chocolate and almonds",
		"Cucumber and tzatziki",
		"Trail mix",
	},
	SlotDinner: {
		"Baked salmon with sweet potato",
		"Turkey meatballs with zucchini noodles",
		"Grilled tofu with brown rice",
		"Chicken fajitas with peppers",
		"Shrimp and vegetable stir-fry",
		"Lean beef chili",
		"Stuffed bell peppers",
	},
}

// DefaultExercisePool returns a copy of the shipped exercise catalog.
func DefaultExercisePool() []ExerciseDefinition {
	pool := make([]ExerciseDefinition, 0, len(exerciseCatalog))
	for _, def := range exerciseCatalog {
		def.Sets = append([]int(nil), def.Sets...)
		def.Reps = append([]int(nil), def.Reps...)
		def.Rest = append([]string(nil), def.Rest...)
		pool = append(pool, def)
	}
	return pool
}

// DefaultMealPools returns a copy of the shipped meal catalog.
func DefaultMealPools() MealPools {
	pools := make(MealPools, len(mealCatalog))
	for slot, meals := range mealCatalog {
		pools[slot] = append([]string(nil), meals...)
	}
	return pools
}
