package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"hireall/internal/delivery/http/dto"
	"hireall/internal/delivery/http/middleware"
	"hireall/internal/pkg/response"
	"hireall/internal/posting"
	"hireall/internal/repository"
	"hireall/internal/usecase"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

// RegisterProtectedRoutes mounts the write endpoints, guarded upstream by
// the auth middleware.
func (h *JobsHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/extract", h.Extract)
	r.Post("/classify", h.Classify)
}

// Extract resolves fragments into a stored, classified posting.
func (h *JobsHandler) Extract(c fiber.Ctx) error {
	var frags posting.Fragments
	if err := c.Bind().Body(&frags); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ExtractAndClassify(c.Context(), frags, "api")
	if err != nil {
		if errors.Is(err, usecase.ErrNoExtractableJob) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No extractable job posting", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, "Extracted", dto.ExtractFromResult(res))
}

// Classify runs extraction and taxonomy matching without persisting.
func (h *JobsHandler) Classify(c fiber.Ctx) error {
	var frags posting.Fragments
	if err := c.Bind().Body(&frags); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec := posting.Extract(frags)
	if rec == nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No extractable job posting", nil, usecase.ErrNoExtractableJob)
	}

	match, err := h.uc.Classify(c.Context(), rec)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"job":   rec,
		"match": match,
	})
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var items []repository.StoredJob
	if q := c.Query("q"); q != "" {
		items, err = h.uc.Search(c.Context(), q, limit)
	} else {
		items, err = h.uc.List(c.Context(), limit, offset)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobFromStored(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	job, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobFromStored(job))
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
