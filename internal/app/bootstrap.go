package app

import (
	"fmt"
	"log"
	"strings"

	"career-os/internal/config"
	"career-os/internal/delivery/http/handler"
	"career-os/internal/delivery/http/middleware"
	"career-os/internal/delivery/http/routes"
	"career-os/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the full application: infrastructure, usecases, HTTP
// surface and the progress websocket hub. The returned cleanup closes
// everything the container opened.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		handler.NewTaskHandler(c.Submissions),
		handler.NewUserHandler(c.Submissions),
		handler.NewRoleHandler(c.Roles),
		handler.NewRoadmapHandler(c.Roadmaps),
		handler.NewCareerPlanHandler(c.Plans),
		ws.NewHandler(c.Hub, c.Logger),
	)
	registry.Register(f)

	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
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
