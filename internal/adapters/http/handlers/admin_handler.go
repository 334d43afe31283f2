package handlers

import (
	"errors"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin user management endpoints
type AdminHandler struct {
	userService *services.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService *services.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// ListUsers handles paginated user listing with search
// @Summary List users
// @Description List users with pagination and optional search (admins only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by name or email"
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	input := &services.ListUsersInput{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Search: c.Query("search"),
	}

	output, err := h.userService.ListUsers(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", output)
}

// UpdateUser handles admin updates to a user's role or active flag
// @Summary Update user
// @Description Change a user's role or active status (admins only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body services.UpdateUserByAdminInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	var input services.UpdateUserByAdminInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.UpdateUserByAdmin(c.Context(), adminID, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrCannotChangeOwnRole):
			return response.BadRequest(c, "You cannot change your own role")
		case errors.Is(err, services.ErrInvalidRole):
			return response.BadRequest(c, "Invalid role")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", user)
}

// ApproveSeller handles promoting an applicant to the seller role
// @Summary Approve seller application
// @Description Promote a user with a pending application to seller (admins only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/sellers/{id}/approve [post]
func (h *AdminHandler) ApproveSeller(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.ApproveSeller(c.Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrNoPendingRequest):
			return response.BadRequest(c, "User has no pending seller application")
		default:
			return response.InternalServerError(c, "Failed to approve seller")
		}
	}

	return response.Success(c, "Seller approved successfully", user)
}
