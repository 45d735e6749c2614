package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"hireall/internal/config"
	"hireall/internal/delivery/http/handler"
	"hireall/internal/delivery/http/middleware"
	"hireall/internal/delivery/http/routes"
	"hireall/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
	Hub       *ws.Hub
}

// Bootstrap builds the container and the HTTP surface. The returned cleanup
// closes the database and cache connections.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware()
	authMw := middleware.NewAuthMiddleware(c.JWT)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.AppName),
		handler.NewAuthHandler(c.AuthUC),
		handler.NewJobsHandler(c.JobUC),
		handler.NewResumesHandler(c.ResumeUC),
		handler.NewStatusHandler(c.StatusUC),
		authMw,
	)
	registry.Register(f)

	hub := ws.NewHub()
	go hub.Run()
	ws.SetDefaultHub(hub)
	f.Get("/ws", ws.NewHandler(hub).HandleProgressWS)

	app := &App{Fiber: f, Container: c, Hub: hub}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
