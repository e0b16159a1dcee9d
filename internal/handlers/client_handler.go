package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	client, err := h.clients.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	params, err := pagination.FromRequest(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}

	filter := repository.ClientFilter{
		ID:            id,
		Name:          c.Query("name"),
		Country:       c.Query("country"),
		InstituteName: c.Query("institute"),
	}
	result, err := h.clients.List(filter, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	client, err := h.clients.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	client, err := h.clients.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.clients.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "client deleted"})
}
