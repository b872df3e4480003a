package handlers

import (
	"errors"

	"todo-api/app"
	"todo-api/models"
	"todo-api/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateTodo handles POST /todos
func CreateTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTodoRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		todo, err := a.Todos.Create(req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create todo", err)
		}

		return created(c, todo)
	}
}

// FindTodo handles GET /todos/:id
func FindTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "todo id must be an integer")
		}

		todo, err := a.Todos.Find(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch todo", err)
		}
		if todo == nil {
			return notFound(c, "Todo not found")
		}

		return ok(c, todo)
	}
}

// AllTodos handles GET /todos
func AllTodos(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		todos, err := a.Todos.All()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch todos", err)
		}

		return ok(c, todos)
	}
}

// UpdateTodo handles PATCH /todos/:id. Fields absent from the body keep
// their stored values.
func UpdateTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "todo id must be an integer")
		}

		var req models.UpdateTodoRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		todo, err := a.Todos.Update(id, req)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Todo not found")
			}
			return serverErrorWithDetails(c, "Failed to update todo", err)
		}

		return ok(c, todo)
	}
}

// DeleteTodo handles DELETE /todos/:id
func DeleteTodo(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "todo id must be an integer")
		}

		if err := a.Todos.Delete(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Todo not found")
			}
			return serverErrorWithDetails(c, "Failed to delete todo", err)
		}

		return noContent(c)
	}
}
