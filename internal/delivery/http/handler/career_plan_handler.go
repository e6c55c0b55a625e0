package handler

import (
	"errors"

	"career-os/internal/delivery/http/dto"
	"career-os/internal/pkg/response"
	"career-os/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerPlanHandler struct {
	uc usecase.CareerPlanUsecase
}

type generateCareerPlanRequest struct {
	UserSkills   []string `json:"user_skills"`
	SelectedRole string   `json:"selected_role"`
}

func NewCareerPlanHandler(uc usecase.CareerPlanUsecase) *CareerPlanHandler {
	return &CareerPlanHandler{uc: uc}
}

func (h *CareerPlanHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-plans")
	grp.Post("/", h.Generate)
}

func (h *CareerPlanHandler) Generate(c fiber.Ctx) error {
	var req generateCareerPlanRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	plan, err := h.uc.Generate(c.Context(), req.UserSkills, req.SelectedRole)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, "Career plan generated successfully", dto.CareerPlanResponse{
		AlignmentScore: plan.AlignmentScore,
		MissingSkills:  toMissingSkillResponses(plan.MissingSkills),
		Roadmap:        toWeekPlanResponses(plan.Summary.Roadmap),
		Capstone:       toDailyTaskResponse(plan.Summary.Capstone),
		Review:         toDailyTaskResponse(plan.Summary.Review),
		TotalDays:      plan.Summary.TotalDays,
		TotalSkills:    plan.Summary.TotalSkills,
	})
}
