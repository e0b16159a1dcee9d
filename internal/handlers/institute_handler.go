package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type InstituteHandler struct {
	institutes *services.InstituteService
}

func NewInstituteHandler(institutes *services.InstituteService) *InstituteHandler {
	return &InstituteHandler{institutes: institutes}
}

func (h *InstituteHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	inst, err := h.institutes.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(inst)
}

func (h *InstituteHandler) List(c *fiber.Ctx) error {
	params, err := pagination.FromRequest(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	filter := repository.InstituteFilter{
		ID:      id,
		Name:    c.Query("name"),
		Country: c.Query("country"),
	}
	result, err := h.institutes.List(filter, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *InstituteHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	inst, err := h.institutes.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(inst)
}

func (h *InstituteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateInstituteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	inst, err := h.institutes.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(inst)
}

func (h *InstituteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.institutes.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "institute deleted"})
}
