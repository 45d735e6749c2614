package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hireall/internal/delivery/http/dto"
	"hireall/internal/delivery/http/middleware"
	"hireall/internal/pkg/response"
	"hireall/internal/repository"
	"hireall/internal/usecase"
)

type ResumesHandler struct {
	uc usecase.ResumeUsecase
}

type parseResumeRequest struct {
	Text string `json:"text"`
}

func NewResumesHandler(uc usecase.ResumeUsecase) *ResumesHandler {
	return &ResumesHandler{uc: uc}
}

func (h *ResumesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/parse", h.Parse)
	r.Get("/", h.ListMine)
	r.Get("/:id", h.Get)
}

func (h *ResumesHandler) Parse(c fiber.Ctx) error {
	var req parseResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, parsed, err := h.uc.Parse(c.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyResume) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Empty resume text", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, "Parsed", map[string]any{
		"resume_id": id,
		"parsed":    parsed,
	})
}

func (h *ResumesHandler) ListMine(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.ResumeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ResumeFromStored(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResumesHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	res, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if res.UserID != userID {
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ResumeFromStored(res))
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(middleware.CtxUserIDKey)
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
