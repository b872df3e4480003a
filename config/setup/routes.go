package setup

import (
	"todo-api/app"
	"todo-api/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes. The same route table is
// used regardless of which repository backend application carries.
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.Root)
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	fiberApp.Post("/users", handlers.CreateUser(application))

	fiberApp.Post("/todos", handlers.CreateTodo(application))
	fiberApp.Get("/todos", handlers.AllTodos(application))
	fiberApp.Get("/todos/:id", handlers.FindTodo(application))
	fiberApp.Patch("/todos/:id", handlers.UpdateTodo(application))
	fiberApp.Delete("/todos/:id", handlers.DeleteTodo(application))

	fiberApp.Post("/labels", handlers.CreateLabel(application))
	fiberApp.Get("/labels", handlers.AllLabels(application))
	fiberApp.Delete("/labels/:id", handlers.DeleteLabel(application))
}
