package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	params, err := pagination.FromRequest(c)
	if err != nil {
		return err
	}

	filter := repository.UserFilter{
		Name:     c.Query("name"),
		Username: c.Query("username"),
		Role:     c.Query("role"),
	}
	result, err := h.users.List(filter, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.users.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user deleted"})
}
