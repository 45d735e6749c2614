package routes

import (
	"github.com/gofiber/fiber/v3"

	"hireall/internal/delivery/http/handler"
	"hireall/internal/delivery/http/middleware"
)

type Registry struct {
	health  *handler.HealthHandler
	auth    *handler.AuthHandler
	jobs    *handler.JobsHandler
	resumes *handler.ResumesHandler
	status  *handler.StatusHandler
	authMW  *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	jobs *handler.JobsHandler,
	resumes *handler.ResumesHandler,
	status *handler.StatusHandler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:  health,
		auth:    auth,
		jobs:    jobs,
		resumes: resumes,
		status:  status,
		authMW:  authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}
