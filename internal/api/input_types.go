package api

type registerInput struct {
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	FullName       string   `json:"fullName"`
	Gender         string   `json:"gender"`
	BirthDate      string   `json:"birthDate"`
	HeightCm       *float64 `json:"heightCm"`
	WeightKg       *float64 `json:"weightKg"`
	TargetWeightKg *float64 `json:"targetWeightKg"`
	ActivityLevel  string   `json:"activityLevel"`
	Goal           string   `json:"goal"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type profileUpdateInput struct {
	FullName       *string  `json:"fullName"`
	Gender         *string  `json:"gender"`
	BirthDate      *string  `json:"birthDate"`
	HeightCm       *float64 `json:"heightCm"`
	WeightKg       *float64 `json:"weightKg"`
	TargetWeightKg *float64 `json:"targetWeightKg"`
	ActivityLevel  *string  `json:"activityLevel"`
	Goal           *string  `json:"goal"`
}

type healthRecordInput struct {
	Date       string   `json:"date"`
	Weight     *float64 `json:"weight"`
	HeartRate  *int     `json:"heartRate"`
	SleepHours *float64 `json:"sleepHours"`
	Note       *string  `json:"note"`
}

type mealLogInput struct {
	Date     string   `json:"date"`
	MealID   uint     `json:"mealId"`
	MealType string   `json:"mealType"`
	Quantity *float64 `json:"quantity"`
	Note     string   `json:"note"`
}

type mealInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Goal        string   `json:"goal"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
}

type mealPatchInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Goal        *string  `json:"goal"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Description *string  `json:"description"`
	URL         *string  `json:"url"`
	IsActive    *bool    `json:"isActive"`
}

type workoutTypeInput struct {
	Name              string   `json:"name"`
	CaloriesPerMinute *float64 `json:"caloriesPerMinute"`
	Description       string   `json:"description"`
	URL               string   `json:"url"`
	Level             string   `json:"level"`
	Goal              string   `json:"goal"`
}

type workoutTypePatchInput struct {
	Name              *string  `json:"name"`
	CaloriesPerMinute *float64 `json:"caloriesPerMinute"`
	Description       *string  `json:"description"`
	URL               *string  `json:"url"`
	Level             *string  `json:"level"`
	Goal              *string  `json:"goal"`
	IsActive          *bool    `json:"isActive"`
}

type workoutScheduleInput struct {
	Name      string `json:"name"`
	Goal      string `json:"goal"`
	DayOfWeek string `json:"dayOfWeek"`
	WorkoutID *uint  `json:"workoutId"`
	IsRestDay bool   `json:"isRestDay"`
}

type workoutSchedulePatchInput struct {
	Name      *string `json:"name"`
	Goal      *string `json:"goal"`
	DayOfWeek *string `json:"dayOfWeek"`
	WorkoutID *uint   `json:"workoutId"`
	IsRestDay *bool   `json:"isRestDay"`
	IsActive  *bool   `json:"isActive"`
}

type mealPlanInput struct {
	Name        string `json:"name"`
	Goal        string `json:"goal"`
	DayOfWeek   string `json:"dayOfWeek"`
	BreakfastID *uint  `json:"breakfastId"`
	LunchID     *uint  `json:"lunchId"`
	DinnerID    *uint  `json:"dinnerId"`
	SnackID     *uint  `json:"snackId"`
}

type mealPlanPatchInput struct {
	Name        *string `json:"name"`
	Goal        *string `json:"goal"`
	DayOfWeek   *string `json:"dayOfWeek"`
	BreakfastID *uint   `json:"breakfastId"`
	LunchID     *uint   `json:"lunchId"`
	DinnerID    *uint   `json:"dinnerId"`
	SnackID     *uint   `json:"snackId"`
	IsActive    *bool   `json:"isActive"`
}

type userStatusInput struct {
	IsActive bool `json:"isActive"`
}
