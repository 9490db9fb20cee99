package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"crewboard/access"
	"crewboard/models"
	"crewboard/utils"
)

type TaskController struct {
	DB     *gorm.DB
	Guard  *access.Guard
	Logger *log.Logger
}

func NewTaskController(db *gorm.DB, logger *log.Logger) *TaskController {
	return &TaskController{
		DB:     db,
		Guard:  access.NewGuard(db),
		Logger: logger,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=5000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *uint      `json:"assigned_to_id"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *uint      `json:"assigned_to_id"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type CreateAttachmentRequest struct {
	FileName  string `json:"file_name" validate:"required,max=255"`
	FilePath  string `json:"file_path" validate:"omitempty,max=1024"`
	SizeBytes int64  `json:"size_bytes" validate:"omitempty,min=0"`
}

// CreateTask creates a task under a project; any member of the owning team may do so
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	projectID := utils.ParseUint(c.Params("id"))

	// Authorize against the parent before the task exists
	project, err := tc.Guard.LoadProjectForTaskCreate(user.ID, projectID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	if err := tc.Guard.ValidateAssignee(project.TeamID, req.AssignedTo); err != nil {
		return handleAccessError(c, err)
	}

	task := models.Task{
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.StatusTodo,
		Priority:     models.PriorityMedium,
		DueDate:      req.DueDate,
		ProjectID:    project.ID,
		AssignedToID: req.AssignedTo,
		CreatedByID:  user.ID,
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create task", err)
	}

	tc.Logger.Printf("task %d created under project %d by user %d", task.ID, project.ID, user.ID)
	return c.Status(fiber.StatusCreated).JSON(task)
}

// GetTask returns task detail with comments and attachments
func (tc *TaskController) GetTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := utils.ParseUint(c.Params("id"))

	task, err := tc.Guard.LoadTask(user.ID, taskID)
	if err != nil {
		return handleAccessError(c, err)
	}
	return c.JSON(task)
}

// UpdateTask updates mutable task fields; any authorized member may change
// status in any direction, there is no enforced workflow order
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := utils.ParseUint(c.Params("id"))

	task, err := tc.Guard.LoadTask(user.ID, taskID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	if req.AssignedTo != nil {
		if err := tc.Guard.ValidateAssignee(task.Project.TeamID, req.AssignedTo); err != nil {
			return handleAccessError(c, err)
		}
		task.AssignedToID = req.AssignedTo
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := tc.DB.Save(task).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update task", err)
	}
	return c.JSON(task)
}

// AddComment attaches a comment to a task; comments are create-only
func (tc *TaskController) AddComment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := utils.ParseUint(c.Params("id"))

	task, err := tc.Guard.LoadTask(user.ID, taskID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	comment := models.Comment{
		TaskID:   task.ID,
		AuthorID: user.ID,
		Content:  req.Content,
	}
	if err := tc.DB.Create(&comment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// AddAttachment records attachment metadata for a task; the blob itself
// lives in external storage
func (tc *TaskController) AddAttachment(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	taskID := utils.ParseUint(c.Params("id"))

	task, err := tc.Guard.LoadTask(user.ID, taskID)
	if err != nil {
		return handleAccessError(c, err)
	}

	var req CreateAttachmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	attachment := models.Attachment{
		TaskID:       task.ID,
		UploadedByID: user.ID,
		FileName:     req.FileName,
		FilePath:     req.FilePath,
		SizeBytes:    req.SizeBytes,
	}
	if err := tc.DB.Create(&attachment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create attachment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(attachment)
}

// MyTasks lists tasks assigned to the caller. The status query parameter is
// forwarded verbatim; unknown values match nothing rather than erroring.
func (tc *TaskController) MyTasks(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	statusFilter := c.Query("status")

	tasks, err := tc.Guard.MyTasks(user.ID, statusFilter)
	if err != nil {
		return handleAccessError(c, err)
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}
