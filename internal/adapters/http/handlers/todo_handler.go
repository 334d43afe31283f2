package handlers

import (
	"errors"

	"shoplane/internal/adapters/http/middleware"
	"shoplane/internal/core/domain"
	"shoplane/internal/core/services"
	"shoplane/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TodoHandler handles the authenticated user's todo endpoints
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

type createTodoRequest struct {
	Title string `json:"title"`
}

// List handles listing the requester's todos
// @Summary List todos
// @Description List the authenticated user's todos
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	todos, err := h.todoService.List(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list todos")
	}

	return response.Success(c, "Todos retrieved successfully", todos)
}

// Create handles todo creation
// @Summary Create todo
// @Description Create a todo for the authenticated user
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createTodoRequest true "Todo title"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /todos [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req createTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	todo, err := h.todoService.Create(c.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Title is required")
		}
		return response.InternalServerError(c, "Failed to create todo")
	}

	return response.Created(c, "Todo created successfully", todo)
}

// Update handles todo updates, scoped to the requester
// @Summary Update todo
// @Description Update one of the authenticated user's todos
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body services.UpdateTodoInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid todo ID")
	}

	var input services.UpdateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	todo, err := h.todoService.Update(c.Context(), userID, uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Todo not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Title cannot be empty")
		default:
			return response.InternalServerError(c, "Failed to update todo")
		}
	}

	return response.Success(c, "Todo updated successfully", todo)
}

// Delete handles todo deletion, scoped to the requester
// @Summary Delete todo
// @Description Delete one of the authenticated user's todos
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid todo ID")
	}

	if err := h.todoService.Delete(c.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to delete todo")
	}

	return response.Success(c, "Todo deleted successfully", nil)
}
