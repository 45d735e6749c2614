package routes

import "github.com/gofiber/fiber/v3"

func (r *Registry) registerV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	r.auth.RegisterRoutes(v1.Group("/auth"))
	r.status.RegisterRoutes(v1)

	jobs := v1.Group("/jobs")
	r.jobs.RegisterRoutes(jobs)

	protected := v1.Group("", r.authMW.Middleware())
	r.jobs.RegisterProtectedRoutes(protected.Group("/jobs"))
	r.resumes.RegisterRoutes(protected.Group("/resumes"))
}
