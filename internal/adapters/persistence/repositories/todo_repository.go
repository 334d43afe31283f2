package repositories

import (
	"context"

	"shoplane/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// todoRepository implements TodoRepository interface
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Create creates a new todo
func (r *todoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// ListByUser lists a user's todos newest first
func (r *todoRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetOwned gets a todo only if it belongs to the given user
func (r *todoRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Update updates a todo
func (r *todoRepository) Update(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// DeleteOwned deletes a todo only if it belongs to the given user
func (r *todoRepository) DeleteOwned(ctx context.Context, id, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Todo{})
	return result.RowsAffected > 0, result.Error
}
