package handler

import (
	"errors"
	"strings"

	"career-os/internal/delivery/http/dto"
	"career-os/internal/pkg/quality"
	"career-os/internal/pkg/response"
	"career-os/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TaskHandler struct {
	uc usecase.SubmissionUsecase
}

type submitTaskRequest struct {
	UserID         string `json:"user_id"`
	SubmissionText string `json:"submission_text"`
	QualityScore   *int   `json:"quality_score"`
}

func NewTaskHandler(uc usecase.SubmissionUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func (h *TaskHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/tasks")
	grp.Post("/submissions", h.Submit)
}

// Submit records one completed task. Callers that already graded the work
// send quality_score; otherwise the submission text is scored by the built-in
// heuristic.
func (h *TaskHandler) Submit(c fiber.Ctx) error {
	var req submitTaskRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	score := 0
	switch {
	case req.QualityScore != nil:
		score = *req.QualityScore
	case strings.TrimSpace(req.SubmissionText) != "":
		score = quality.Score(req.SubmissionText)
	default:
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	m, err := h.uc.Submit(c.Context(), req.UserID, score)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, "Task submission recorded successfully", dto.SubmitTaskResponse{
		XP:             m.XP,
		Level:          m.Level,
		Rank:           string(m.Rank),
		Streak:         m.Streak,
		ExecutionScore: m.ExecutionScore,
	})
}
