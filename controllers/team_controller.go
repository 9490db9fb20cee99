package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"crewboard/access"
	"crewboard/models"
	"crewboard/utils"
)

type TeamController struct {
	DB     *gorm.DB
	Guard  *access.Guard
	Logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{
		DB:     db,
		Guard:  access.NewGuard(db),
		Logger: logger,
	}
}

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type AddMemberRequest struct {
	// Username or email of the user to add
	Member string `json:"member" validate:"required,max=254"`
}

// ListTeams returns every team the caller belongs to
func (tc *TeamController) ListTeams(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	teams, err := tc.Guard.TeamsFor(user.ID)
	if err != nil {
		return handleAccessError(c, err)
	}
	return c.JSON(fiber.Map{"teams": teams})
}

// CreateTeam creates a team owned by the caller
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	team, err := tc.Guard.CreateTeam(user.ID, req.Name, req.Description)
	if err != nil {
		return handleAccessError(c, err)
	}

	tc.Logger.Printf("team %d created by user %d", team.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(team)
}

// GetTeam returns team detail with members and projects
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	teamID := utils.ParseUint(c.Params("id"))

	team, err := tc.Guard.LoadTeam(user.ID, teamID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var projects []models.Project
	if err := tc.DB.Where("team_id = ?", team.ID).Find(&projects).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch projects", err)
	}
	team.Projects = projects

	return c.JSON(team)
}

// AddMember adds a user to the team by username or email (owner only)
func (tc *TeamController) AddMember(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	teamID := utils.ParseUint(c.Params("id"))

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	member, err := tc.Guard.AddMember(user.ID, teamID, req.Member)
	if err != nil {
		return handleAccessError(c, err)
	}

	tc.Logger.Printf("user %d added to team %d by owner %d", member.ID, teamID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(member)
}
