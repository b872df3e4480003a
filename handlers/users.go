package handlers

import (
	"todo-api/app"
	"todo-api/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users. There is no user storage; the endpoint
// echoes the username back with a fixed id, kept for frontend demos.
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		return created(c, models.User{ID: 1337, Username: req.Username})
	}
}
