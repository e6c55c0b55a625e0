package handler

import (
	"errors"

	"career-os/internal/delivery/http/dto"
	"career-os/internal/pkg/response"
	"career-os/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	uc usecase.RoleUsecase
}

type analyzeRoleRequest struct {
	UserSkills   []string `json:"user_skills"`
	SelectedRole string   `json:"selected_role"`
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/roles")
	grp.Post("/analysis", h.Analyze)
}

func (h *RoleHandler) Analyze(c fiber.Ctx) error {
	var req analyzeRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	res, err := h.uc.Analyze(c.Context(), req.UserSkills, req.SelectedRole)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AnalyzeRoleResponse{
		AlignmentScore: res.AlignmentScore,
		MissingSkills:  toMissingSkillResponses(res.MissingSkills),
	})
}
