package services

import (
	"context"
	"errors"
	"testing"

	"shoplane/internal/adapters/persistence/models"
	"shoplane/internal/core/domain"

	"gorm.io/gorm"
)

// fakeTodoRepository is an in-memory TodoRepository for service tests
type fakeTodoRepository struct {
	todos  map[uint]*models.Todo
	nextID uint
}

func newFakeTodoRepository() *fakeTodoRepository {
	return &fakeTodoRepository{todos: make(map[uint]*models.Todo), nextID: 1}
}

func (r *fakeTodoRepository) Create(_ context.Context, todo *models.Todo) error {
	todo.ID = r.nextID
	r.nextID++
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepository) ListByUser(_ context.Context, userID uint) ([]*models.Todo, error) {
	var out []*models.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (r *fakeTodoRepository) GetOwned(_ context.Context, id, userID uint) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return todo, nil
}

func (r *fakeTodoRepository) Update(_ context.Context, todo *models.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.todos[todo.ID] = todo
	return nil
}

func (r *fakeTodoRepository) DeleteOwned(_ context.Context, id, userID uint) (bool, error) {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return false, nil
	}
	delete(r.todos, id)
	return true, nil
}

func TestTodoCreateRequiresTitle(t *testing.T) {
	svc := NewTodoService(newFakeTodoRepository())

	if _, err := svc.Create(context.Background(), 1, "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a blank title, got %v", err)
	}

	todo, err := svc.Create(context.Background(), 1, "  buy milk  ")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if todo.Title != "buy milk" {
		t.Errorf("expected trimmed title, got %q", todo.Title)
	}
}

func TestTodoOwnershipScopesUpdates(t *testing.T) {
	repo := newFakeTodoRepository()
	svc := NewTodoService(repo)

	todo, err := svc.Create(context.Background(), 1, "mine")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	done := true
	if _, err := svc.Update(context.Background(), 2, todo.ID, &UpdateTodoInput{Completed: &done}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a foreign todo, got %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, todo.ID, &UpdateTodoInput{Completed: &done})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if !updated.Completed {
		t.Error("expected todo to be marked completed")
	}
}

func TestTodoOwnershipScopesDeletes(t *testing.T) {
	repo := newFakeTodoRepository()
	svc := NewTodoService(repo)

	todo, err := svc.Create(context.Background(), 1, "mine")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), 2, todo.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a foreign todo, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1, todo.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.todos) != 0 {
		t.Errorf("expected the todo to be gone, found %d", len(repo.todos))
	}
}
