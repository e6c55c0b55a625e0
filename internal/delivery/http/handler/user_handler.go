package handler

import (
	"errors"
	"time"

	"career-os/internal/delivery/http/dto"
	"career-os/internal/pkg/response"
	"career-os/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.SubmissionUsecase
}

func NewUserHandler(uc usecase.SubmissionUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/users")
	grp.Get("/:user_id/metrics", h.Metrics)
}

func (h *UserHandler) Metrics(c fiber.Ctx) error {
	m, err := h.uc.Metrics(c.Context(), c.Params("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		case errors.Is(err, usecase.ErrUserNotFound):
			return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
		default:
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
	}

	var lastDate *string
	if m.LastSubmission != nil {
		s := m.LastSubmission.UTC().Format(time.DateOnly)
		lastDate = &s
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UserMetricsResponse{
		UserID:              m.UserID,
		XP:                  m.XP,
		Level:               m.Level,
		Rank:                string(m.Rank),
		Streak:              m.Streak,
		TotalAssignedTasks:  m.TotalAssignedTasks,
		TotalCompletedTasks: m.TotalCompletedTasks,
		ExecutionScore:      m.ExecutionScore,
		LastSubmissionDate:  lastDate,
	})
}
