package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"crewboard/access"
	"crewboard/models"
	"crewboard/utils"
)

type ProjectController struct {
	DB     *gorm.DB
	Guard  *access.Guard
	Logger *log.Logger
}

func NewProjectController(db *gorm.DB, logger *log.Logger) *ProjectController {
	return &ProjectController{
		DB:     db,
		Guard:  access.NewGuard(db),
		Logger: logger,
	}
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// ListProjects returns projects across all of the caller's teams
func (pc *ProjectController) ListProjects(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	projects, err := pc.Guard.ProjectsFor(user.ID)
	if err != nil {
		return handleAccessError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// CreateProject creates a project under a team; any current member may do so
func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	teamID := utils.ParseUint(c.Params("id"))

	// Authorize against the parent before the project exists
	team, err := pc.Guard.LoadTeamForProjectCreate(user.ID, teamID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      team.ID,
	}
	if err := pc.DB.Create(&project).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create project", err)
	}

	pc.Logger.Printf("project %d created under team %d by user %d", project.ID, team.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProject returns project detail with tasks grouped by status
func (pc *ProjectController) GetProject(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	projectID := utils.ParseUint(c.Params("id"))

	project, err := pc.Guard.LoadProject(user.ID, projectID)
	if err != nil {
		return handleAccessError(c, err)
	}

	tasks, err := pc.Guard.TasksForProject(user.ID, project.ID, "")
	if err != nil {
		return handleAccessError(c, err)
	}

	grouped := map[string][]models.Task{
		models.StatusTodo:       {},
		models.StatusInProgress: {},
		models.StatusDone:       {},
	}
	for _, task := range tasks {
		grouped[task.Status] = append(grouped[task.Status], task)
	}

	return c.JSON(fiber.Map{
		"project":         project,
		"tasks_by_status": grouped,
	})
}

// GetProjectStats returns completion metrics for a project
func (pc *ProjectController) GetProjectStats(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	projectID := utils.ParseUint(c.Params("id"))

	stats, err := pc.Guard.Stats(user.ID, projectID)
	if err != nil {
		return handleAccessError(c, err)
	}
	return c.JSON(stats)
}
