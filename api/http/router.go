package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobmatch/backend/api/http/handlers"
)

// Deps collects the handlers and middleware the router wires together.
type Deps struct {
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
	Resumes *handlers.ResumesHandler
	Jobs    *handlers.JobsHandler
	Match   *handlers.MatchHandler

	AuthMW      fiber.Handler
	LoginLimit  fiber.Handler
	UploadLimit fiber.Handler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", d.Health.Health)
	v1.Get("/ready", d.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", d.LoginLimit, d.Auth.Register)
	a.Post("/login", d.LoginLimit, d.Auth.Login)

	jg := v1.Group("/jobs", d.AuthMW)
	jg.Post("/", d.Jobs.Create)
	jg.Get("/search", d.Jobs.Search)
	jg.Get("/:id", d.Jobs.Get)

	rg := v1.Group("/resumes", d.AuthMW)
	rg.Post("/", d.UploadLimit, d.Resumes.Upload)
	rg.Get("/", d.Resumes.List)
	rg.Get("/:id", d.Resumes.Get)
	rg.Get("/:resumeId/match/:jobId", d.Match.Get)
}
