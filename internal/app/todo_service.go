// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. It resolves identifiers before
// touching request bodies, runs the ordered validation rules against the
// repository's title index, and hands normalized payloads to the repository.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService backed by the given repository. A nil
// logger discards output. Requests that arrive through the HTTP logging
// middleware log through the request-scoped logger instead.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns the page of todos selected by q.
func (s *TodoService) ListTodos(ctx context.Context, q todo.Query) (*todo.Page, error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, s.fail(ctx, "ListTodos", 0, err)
	}
	return page, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "GetTodo", id, err)
	}
	return t, nil
}

// CreateTodo validates the body and inserts a new, incomplete todo.
func (s *TodoService) CreateTodo(ctx context.Context, raw todo.RawPayload) (*todo.Todo, error) {
	payload, err := todo.ValidateCreate(ctx, raw, s.repo)
	if err != nil {
		return nil, s.fail(ctx, "CreateTodo", 0, err)
	}

	created, err := s.repo.Create(ctx, payload.Title)
	if err != nil {
		return nil, s.fail(ctx, "CreateTodo", 0, err)
	}

	s.log(ctx).InfoContext(ctx, "todo created", slog.Int64("todo_id", created.ID))
	return created, nil
}

// ReplaceTodo overwrites title and completed of an existing todo.
func (s *TodoService) ReplaceTodo(ctx context.Context, id int64, raw todo.RawPayload) (*todo.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "ReplaceTodo", id, err)
	}

	payload, err := todo.ValidateReplace(ctx, raw, s.repo, id)
	if err != nil {
		return nil, s.fail(ctx, "ReplaceTodo", id, err)
	}

	next := payload.Apply(*existing)
	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, s.fail(ctx, "ReplaceTodo", id, err)
	}
	return updated, nil
}

// PatchTodo overwrites the supplied fields of an existing todo.
func (s *TodoService) PatchTodo(ctx context.Context, id int64, raw todo.RawPayload) (*todo.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "PatchTodo", id, err)
	}

	payload, err := todo.ValidatePatch(ctx, raw, s.repo, id)
	if err != nil {
		return nil, s.fail(ctx, "PatchTodo", id, err)
	}

	next := payload.Apply(*existing)
	updated, err := s.repo.Update(ctx, &next)
	if err != nil {
		return nil, s.fail(ctx, "PatchTodo", id, err)
	}
	return updated, nil
}

// SetCompleted marks a todo complete or incomplete.
func (s *TodoService) SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	t, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		return nil, s.fail(ctx, "SetCompleted", id, err)
	}
	return t, nil
}

// DeleteTodo permanently removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "DeleteTodo", id, err)
	}

	s.log(ctx).InfoContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	return nil
}

// fail returns err unchanged. Client-caused failures are expected and only
// logged at debug; anything else is logged as an error with its full chain.
func (s *TodoService) fail(ctx context.Context, operation string, id int64, err error) error {
	attrs := []any{slog.String("operation", operation)}
	if id != 0 {
		attrs = append(attrs, slog.Int64("todo_id", id))
	}
	attrs = append(attrs, slog.Any("error", err))

	var derr *domain.Error
	if errors.As(err, &derr) {
		s.log(ctx).DebugContext(ctx, "request rejected", attrs...)
		return err
	}

	s.log(ctx).ErrorContext(ctx, "todo operation failed", attrs...)
	return err
}

func (s *TodoService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
