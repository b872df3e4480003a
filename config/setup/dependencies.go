package setup

import (
	"log/slog"

	"todo-api/app"
	"todo-api/config"
	"todo-api/database"
	"todo-api/repository"
)

// InitApp builds the dependency container for the configured backend. The
// returned *database.DB is nil when the memory backend is selected; the
// caller owns closing it.
func InitApp(logger *slog.Logger) (*app.App, *database.DB, error) {
	if config.AppConfig.Backend == config.BackendDatabase {
		db, err := database.New(config.AppConfig.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("database backend initialized")

		return app.New(database.NewTodoStore(db), database.NewLabelStore(db), logger), db, nil
	}

	logger.Info("memory backend initialized")
	return app.New(repository.NewMemoryTodoRepository(), repository.NewMemoryLabelRepository(), logger), nil, nil
}

// Shutdown performs graceful shutdown of backend resources.
func Shutdown(db *database.DB, logger *slog.Logger) {
	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
