package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"crewboard/access"
	"crewboard/models"
)

type DashboardController struct {
	DB     *gorm.DB
	Guard  *access.Guard
	Logger *log.Logger
}

func NewDashboardController(db *gorm.DB, logger *log.Logger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Guard:  access.NewGuard(db),
		Logger: logger,
	}
}

// GetDashboard returns the caller's teams and their open assigned tasks,
// soonest due first
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	teams, err := dc.Guard.TeamsFor(user.ID)
	if err != nil {
		return handleAccessError(c, err)
	}

	urgentTasks, err := dc.Guard.UrgentTasksFor(user.ID)
	if err != nil {
		return handleAccessError(c, err)
	}

	return c.JSON(fiber.Map{
		"teams":        teams,
		"urgent_tasks": urgentTasks,
	})
}
