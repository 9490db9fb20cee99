package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"crewboard/access"
)

// handleAccessError maps access-layer failures onto transport codes.
// ErrNotFound always renders as a plain 404, whether the resource is
// missing or merely invisible to the caller.
func handleAccessError(c *fiber.Ctx, err error) error {
	if errors.Is(err, access.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
		})
	}

	var ve *access.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Message,
			"field": ve.Field,
		})
	}

	logrus.WithFields(logrus.Fields{
		"path":  c.Path(),
		"error": err,
	}).Error("unexpected access layer failure")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
