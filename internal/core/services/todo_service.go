package services

import (
	"context"
	"errors"
	"strings"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/adapters/persistence/repositories"
	"shoplane/internal/core/domain"

	"gorm.io/gorm"
)

// TodoService handles per-user todos
type TodoService struct {
	todoRepo repositories.TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todoRepo repositories.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// UpdateTodoInput represents todo update input
type UpdateTodoInput struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// Create creates a todo for the requester
func (s *TodoService) Create(ctx context.Context, userID uint, title string) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	todo := &models.Todo{
		UserID: userID,
		Title:  title,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// List lists the requester's todos
func (s *TodoService) List(ctx context.Context, userID uint) ([]*models.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

// Update updates the requester's own todo. Someone else's todo is
// reported as not found.
func (s *TodoService) Update(ctx context.Context, userID, id uint, input *UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.todoRepo.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		todo.Title = title
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete deletes the requester's own todo; misses are not found
func (s *TodoService) Delete(ctx context.Context, userID, id uint) error {
	deleted, err := s.todoRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
