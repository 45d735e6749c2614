package handler

import (
	"github.com/gofiber/fiber/v3"

	"hireall/internal/delivery/http/middleware"
	"hireall/internal/pkg/response"
	"hireall/internal/usecase"
)

type StatusHandler struct {
	uc usecase.StatusUsecase
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/status", h.GetStatus)
}

func (h *StatusHandler) GetStatus(c fiber.Ctx) error {
	summary, err := h.uc.PipelineSummary(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, summary)
}
