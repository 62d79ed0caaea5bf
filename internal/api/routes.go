package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/admin/login", handler.AdminLogin)
	auth.Post("/refresh", handler.RefreshToken)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/profile", handler.GetProfile)
	users.Put("/profile", handler.UpdateProfile)
	users.Get("/home", handler.GetHome)
	users.Post("/change-password", handler.ChangePassword)

	healthRecords := api.Group("/health-records", handler.AuthRequired)
	healthRecords.Get("/my", handler.ListMyHealthRecords)
	healthRecords.Post("", handler.UpsertHealthRecord)

	mealLogs := api.Group("/meal-logs", handler.AuthRequired)
	mealLogs.Get("/my", handler.ListMyMealLogs)
	mealLogs.Post("", handler.UpsertMealLog)

	api.Get("/meals", handler.AuthRequired, handler.ListMeals)
	api.Get("/workouts", handler.AuthRequired, handler.ListWorkoutTypes)
	api.Get("/workout-schedules", handler.AuthRequired, handler.ListWorkoutSchedules)
	api.Get("/meal-plans", handler.AuthRequired, handler.ListMealPlans)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Get("/users", handler.AdminListUsers)
	admin.Patch("/users/:id/status", handler.AdminSetUserStatus)

	admin.Post("/meals", handler.AdminCreateMeal)
	admin.Put("/meals/:id", handler.AdminUpdateMeal)
	admin.Delete("/meals/:id", handler.AdminDeleteMeal)

	admin.Post("/workouts", handler.AdminCreateWorkoutType)
	admin.Put("/workouts/:id", handler.AdminUpdateWorkoutType)
	admin.Delete("/workouts/:id", handler.AdminDeleteWorkoutType)

	admin.Post("/workout-schedules", handler.AdminCreateWorkoutSchedule)
	admin.Put("/workout-schedules/:id", handler.AdminUpdateWorkoutSchedule)
	admin.Delete("/workout-schedules/:id", handler.AdminDeleteWorkoutSchedule)

	admin.Post("/meal-plans", handler.AdminCreateMealPlan)
	admin.Put("/meal-plans/:id", handler.AdminUpdateMealPlan)
	admin.Delete("/meal-plans/:id", handler.AdminDeleteMealPlan)
}
