package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	user, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":         user,
		"access_token": tokens.AccessToken,
		"expires_in":   tokens.ExpiresIn,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
