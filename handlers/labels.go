package handlers

import (
	"errors"

	"todo-api/app"
	"todo-api/models"
	"todo-api/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateLabel handles POST /labels
func CreateLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateLabelRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		label, err := a.Labels.Create(req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create label", err)
		}

		return created(c, label)
	}
}

// AllLabels handles GET /labels
func AllLabels(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		labels, err := a.Labels.All()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch labels", err)
		}

		return ok(c, labels)
	}
}

// DeleteLabel handles DELETE /labels/:id
func DeleteLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "label id must be an integer")
		}

		if err := a.Labels.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Label not found")
			}
			return serverErrorWithDetails(c, "Failed to delete label", err)
		}

		return noContent(c)
	}
}
