package router

import (
	userapp "usuarios-api/internal/application"
	"usuarios-api/internal/container"
	repouser "usuarios-api/internal/domain/repository"
	pginfra "usuarios-api/internal/infrastructure/postgres"
	handlers "usuarios-api/internal/interface/http"
	"usuarios-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := userapp.NewService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
