package handler

import (
	"career-os/internal/delivery/http/dto"
	"career-os/internal/domain/roadmap"
	"career-os/internal/pkg/response"
	"career-os/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoadmapHandler struct {
	uc usecase.RoadmapUsecase
}

type skillTargetRequest struct {
	Skill      string `json:"skill"`
	Importance int    `json:"importance"`
}

type generateRoadmapRequest struct {
	MissingSkills []skillTargetRequest `json:"missing_skills"`
	RoleContext   string               `json:"role_context"`
}

func NewRoadmapHandler(uc usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{uc: uc}
}

func (h *RoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/roadmaps")
	grp.Post("/", h.Generate)
}

// Generate builds a 30-day roadmap from an already-ranked missing-skill list,
// typically the output of a prior role analysis.
func (h *RoadmapHandler) Generate(c fiber.Ctx) error {
	var req generateRoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	targets := make([]roadmap.SkillTarget, 0, len(req.MissingSkills))
	for _, t := range req.MissingSkills {
		targets = append(targets, roadmap.SkillTarget{Skill: t.Skill, Importance: t.Importance})
	}

	summary, err := h.uc.Generate(c.Context(), targets, req.RoleContext)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RoadmapResponse{
		Roadmap:     toWeekPlanResponses(summary.Roadmap),
		Capstone:    toDailyTaskResponse(summary.Capstone),
		Review:      toDailyTaskResponse(summary.Review),
		TotalDays:   summary.TotalDays,
		TotalSkills: summary.TotalSkills,
	})
}
