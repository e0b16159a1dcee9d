package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type WorkerHandler struct {
	workers *services.WorkerService
}

func NewWorkerHandler(workers *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{workers: workers}
}

func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	worker, err := h.workers.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func (h *WorkerHandler) List(c *fiber.Ctx) error {
	params, err := pagination.FromRequest(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	filter := repository.WorkerFilter{
		ID:            id,
		Name:          c.Query("name"),
		Country:       c.Query("country"),
		InstituteName: c.Query("institute"),
		Specialties:   queryMulti(c, "specialty"),
	}
	result, err := h.workers.List(filter, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *WorkerHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	worker, err := h.workers.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(worker)
}

func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	worker, err := h.workers.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(worker)
}

func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.workers.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "worker deleted"})
}
