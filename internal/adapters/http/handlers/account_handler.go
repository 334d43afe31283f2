package handlers

import (
	"errors"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles the authenticated user's profile endpoints
type AccountHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userService *services.UserService, authService *services.AuthService) *AccountHandler {
	return &AccountHandler{userService: userService, authService: authService}
}

// GetProfile handles profile retrieval for the authenticated user
// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /account/profile [get]
func (h *AccountHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, "Profile retrieved successfully", user.ToResponse())
}

// UpdateProfile handles profile updates for the authenticated user
// @Summary Update profile
// @Description Update the authenticated user's name or phone
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.UpdateProfileInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /account/profile [put]
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Success(c, "Profile updated successfully", user)
}

// ChangePassword handles password change for the authenticated user
// @Summary Change password
// @Description Change the authenticated user's password
// @Tags Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body services.ChangePasswordInput true "Old and new passwords"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /account/password [put]
func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
		switch {
		case errors.Is(err, services.ErrOldPasswordWrong):
			return response.BadRequest(c, "Old password is incorrect")
		case errors.Is(err, services.ErrWeakPassword):
			return response.BadRequest(c, "New password must be at least 8 characters")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed successfully", nil)
}
