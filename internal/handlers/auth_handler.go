package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	resp, err := h.auth.Signup(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	resp, err := h.auth.Login(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
