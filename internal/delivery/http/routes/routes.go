package routes

import (
	"career-os/internal/delivery/http/handler"
	"career-os/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	tasks      *handler.TaskHandler
	users      *handler.UserHandler
	roles      *handler.RoleHandler
	roadmaps   *handler.RoadmapHandler
	plans      *handler.CareerPlanHandler
	progressWS *ws.Handler
}

func NewRegistry(
	health *handler.HealthHandler,
	tasks *handler.TaskHandler,
	users *handler.UserHandler,
	roles *handler.RoleHandler,
	roadmaps *handler.RoadmapHandler,
	plans *handler.CareerPlanHandler,
	progressWS *ws.Handler,
) *Registry {
	return &Registry{
		health:     health,
		tasks:      tasks,
		users:      users,
		roles:      roles,
		roadmaps:   roadmaps,
		plans:      plans,
		progressWS: progressWS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.tasks.RegisterRoutes(v1)
	r.users.RegisterRoutes(v1)
	r.roles.RegisterRoutes(v1)
	r.roadmaps.RegisterRoutes(v1)
	r.plans.RegisterRoutes(v1)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.progressWS == nil {
		return
	}
	app.Get("/ws/progress", r.progressWS.HandleProgressWS)
}
