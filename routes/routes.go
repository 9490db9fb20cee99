package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "crewboard/controllers"
	"crewboard/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupAuthRoutes(app, db)
	SetupAPIRoutes(app, db)
}

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authLogger := log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Auth routes group with logging middleware
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Public auth endpoints (no authentication required)
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	// Protected auth endpoints (require valid JWT)
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Get("/me", controller.GetCurrentUser)
	protectedAuth.Put("/profile", controller.UpdateProfile)

	authLogger.Println("Authentication routes initialized successfully")
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize controllers with their respective loggers
	teamController := controller.NewTeamController(db, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	projectController := controller.NewProjectController(db, log.New(os.Stdout, "PROJECT: ", log.LstdFlags))
	taskController := controller.NewTaskController(db, log.New(os.Stdout, "TASK: ", log.LstdFlags))
	dashboardController := controller.NewDashboardController(db, log.New(os.Stdout, "DASHBOARD: ", log.LstdFlags))

	// API group with versioning, protection and a write limiter
	api := app.Group("/api/v1", middleware.Protected(), middleware.WriteRateLimiter(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Dashboard
	api.Get("/dashboard", dashboardController.GetDashboard)

	// Teams
	teams := api.Group("/teams")
	teams.Get("/", teamController.ListTeams)
	teams.Post("/", teamController.CreateTeam)
	teams.Get("/:id", teamController.GetTeam)
	teams.Post("/:id/members", teamController.AddMember)
	teams.Post("/:id/projects", projectController.CreateProject)

	// Projects
	projects := api.Group("/projects")
	projects.Get("/", projectController.ListProjects)
	projects.Get("/:id", projectController.GetProject)
	projects.Get("/:id/stats", projectController.GetProjectStats)
	projects.Post("/:id/tasks", taskController.CreateTask)

	// Tasks
	tasks := api.Group("/tasks")
	tasks.Get("/:id", taskController.GetTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Post("/:id/comments", taskController.AddComment)
	tasks.Post("/:id/attachments", taskController.AddAttachment)

	// Assignment-scoped listing
	api.Get("/my-tasks", taskController.MyTasks)
}
