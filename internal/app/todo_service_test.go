package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/mocks"
)

var errDatabase = errors.New("database is locked")

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validTodo() todo.Todo {
	return todo.Todo{ID: 1, Title: "Buy groceries", Completed: false}
}

func present(v any) todo.Field {
	return todo.Field{Present: true, Value: v}
}

// --- NewTodoService ---

func TestNewTodoService_NilLogger(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoRepository(t)

	svc := NewTodoService(repo, nil)
	if svc.logger == nil {
		t.Fatal("NewTodoService(nil logger) should create a no-op logger, got nil")
	}
}

func TestTodoService_LogsThroughRequestLogger(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockTodoRepository(t)

	var serviceBuf, requestBuf bytes.Buffer
	svc := NewTodoService(repo, slog.New(slog.NewTextHandler(&serviceBuf, nil)))
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil)).With(slog.String("request_id", "req-7"))
	ctx := logging.WithLogger(context.Background(), requestLogger)

	repo.EXPECT().Delete(mock.Anything, int64(3)).Return(nil)

	if err := svc.DeleteTodo(ctx, 3); err != nil {
		t.Fatalf("DeleteTodo() error = %v, want nil", err)
	}

	out := requestBuf.String()
	if !strings.Contains(out, "todo deleted") || !strings.Contains(out, "request_id=req-7") {
		t.Errorf("request log = %q, want deletion tagged with request_id", out)
	}
	if serviceBuf.Len() != 0 {
		t.Errorf("service logger used despite request logger in context: %q", serviceBuf.String())
	}
}

// --- ListTodos ---

func TestTodoService_ListTodos(t *testing.T) {
	t.Parallel()

	t.Run("passes query through to repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		q := todo.DefaultQuery()
		q.Sort = todo.SortByTitle
		want := &todo.Page{Items: []todo.Todo{validTodo()}, Total: 1, Page: 1, PerPage: 10}
		repo.EXPECT().List(mock.Anything, q).Return(want, nil)

		got, err := svc.ListTodos(context.Background(), q)
		if err != nil {
			t.Fatalf("ListTodos() error = %v, want nil", err)
		}
		if got.Total != 1 || len(got.Items) != 1 {
			t.Errorf("ListTodos() = %+v, want one item with total 1", got)
		}
	})

	t.Run("returns repository error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errDatabase)

		_, err := svc.ListTodos(context.Background(), todo.DefaultQuery())
		if !errors.Is(err, errDatabase) {
			t.Errorf("ListTodos() error = %v, want %v", err, errDatabase)
		}
	})
}

// --- GetTodo ---

func TestTodoService_GetTodo(t *testing.T) {
	t.Parallel()

	t.Run("returns todo", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		td := validTodo()
		repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&td, nil)

		got, err := svc.GetTodo(context.Background(), 1)
		if err != nil {
			t.Fatalf("GetTodo() error = %v, want nil", err)
		}
		if got.Title != "Buy groceries" {
			t.Errorf("GetTodo().Title = %q, want %q", got.Title, "Buy groceries")
		}
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, todo.ErrNotFound)

		_, err := svc.GetTodo(context.Background(), 99)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetTodo() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CreateTodo ---

func TestTodoService_CreateTodo(t *testing.T) {
	t.Parallel()

	t.Run("creates todo with trimmed title", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().ExistsByNormalizedTitle(mock.Anything, "buy milk", int64(0)).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, "Buy milk").
			Return(&todo.Todo{ID: 7, Title: "Buy milk"}, nil)

		got, err := svc.CreateTodo(context.Background(), todo.RawPayload{Title: present("  Buy milk  ")})
		if err != nil {
			t.Fatalf("CreateTodo() error = %v, want nil", err)
		}
		if got.ID != 7 || got.Completed {
			t.Errorf("CreateTodo() = %+v, want id 7 incomplete", got)
		}
	})

	t.Run("rejects missing title without touching repository", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		_, err := svc.CreateTodo(context.Background(), todo.RawPayload{})
		if !errors.Is(err, domain.ErrMissingField) {
			t.Errorf("CreateTodo() error = %v, want ErrMissingField", err)
		}
	})

	t.Run("rejects duplicate title", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().ExistsByNormalizedTitle(mock.Anything, "buy milk", int64(0)).Return(true, nil)

		_, err := svc.CreateTodo(context.Background(), todo.RawPayload{Title: present("BUY MILK")})
		if !errors.Is(err, todo.ErrDuplicateTitle) {
			t.Errorf("CreateTodo() error = %v, want ErrDuplicateTitle", err)
		}
	})

	t.Run("surfaces constraint violation lost in a race", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().ExistsByNormalizedTitle(mock.Anything, "buy milk", int64(0)).Return(false, nil)
		repo.EXPECT().Create(mock.Anything, "Buy milk").Return(nil, todo.ErrDuplicateTitle)

		_, err := svc.CreateTodo(context.Background(), todo.RawPayload{Title: present("Buy milk")})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("CreateTodo() error = %v, want ErrConflict", err)
		}
	})
}

// --- ReplaceTodo ---

func TestTodoService_ReplaceTodo(t *testing.T) {
	t.Parallel()

	t.Run("replaces every field", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		existing := todo.Todo{ID: 1, Title: "Old", Completed: true}
		repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)
		repo.EXPECT().ExistsByNormalizedTitle(mock.Anything, "new", int64(1)).Return(false, nil)
		repo.EXPECT().Update(mock.Anything, &todo.Todo{ID: 1, Title: "New", Completed: false}).
			Return(&todo.Todo{ID: 1, Title: "New", Completed: false}, nil)

		got, err := svc.ReplaceTodo(context.Background(), 1, todo.RawPayload{Title: present("New")})
		if err != nil {
			t.Fatalf("ReplaceTodo() error = %v, want nil", err)
		}
		if got.Completed {
			t.Error("ReplaceTodo() without completed should reset it to false")
		}
	})

	t.Run("checks existence before the body", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().GetByID(mock.Anything, int64(42)).Return(nil, todo.ErrNotFound)

		_, err := svc.ReplaceTodo(context.Background(), 42, todo.RawPayload{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("ReplaceTodo() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns validation error for invalid body", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		existing := validTodo()
		repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)

		_, err := svc.ReplaceTodo(context.Background(), 1, todo.RawPayload{Title: present(42)})
		if !errors.Is(err, domain.ErrTypeMismatch) {
			t.Errorf("ReplaceTodo() error = %v, want ErrTypeMismatch", err)
		}
	})
}

// --- PatchTodo ---

func TestTodoService_PatchTodo(t *testing.T) {
	t.Parallel()

	t.Run("updates only supplied fields", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		existing := todo.Todo{ID: 3, Title: "Keep me", Completed: false}
		repo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&existing, nil)
		repo.EXPECT().Update(mock.Anything, &todo.Todo{ID: 3, Title: "Keep me", Completed: true}).
			Return(&todo.Todo{ID: 3, Title: "Keep me", Completed: true}, nil)

		got, err := svc.PatchTodo(context.Background(), 3, todo.RawPayload{Completed: present(true)})
		if err != nil {
			t.Fatalf("PatchTodo() error = %v, want nil", err)
		}
		if got.Title != "Keep me" || !got.Completed {
			t.Errorf("PatchTodo() = %+v, want title kept and completed", got)
		}
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		existing := validTodo()
		repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)

		_, err := svc.PatchTodo(context.Background(), 1, todo.RawPayload{})
		if !errors.Is(err, domain.ErrNothingToUpdate) {
			t.Errorf("PatchTodo() error = %v, want ErrNothingToUpdate", err)
		}
	})

	t.Run("returns not found before validating", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, todo.ErrNotFound)

		_, err := svc.PatchTodo(context.Background(), 5, todo.RawPayload{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("PatchTodo() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("propagates update failure", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		existing := validTodo()
		repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&existing, nil)
		repo.EXPECT().ExistsByNormalizedTitle(mock.Anything, "renamed", int64(1)).Return(false, nil)
		repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil, errDatabase)

		_, err := svc.PatchTodo(context.Background(), 1, todo.RawPayload{Title: present("Renamed")})
		if !errors.Is(err, errDatabase) {
			t.Errorf("PatchTodo() error = %v, want %v", err, errDatabase)
		}
	})
}

// --- SetCompleted ---

func TestTodoService_SetCompleted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		completed bool
	}{
		{name: "mark complete", completed: true},
		{name: "mark incomplete", completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := mocks.NewMockTodoRepository(t)
			svc := NewTodoService(repo, discardLogger())

			repo.EXPECT().SetCompleted(mock.Anything, int64(1), tt.completed).
				Return(&todo.Todo{ID: 1, Title: "Buy groceries", Completed: tt.completed}, nil)

			got, err := svc.SetCompleted(context.Background(), 1, tt.completed)
			if err != nil {
				t.Fatalf("SetCompleted() error = %v, want nil", err)
			}
			if got.Completed != tt.completed {
				t.Errorf("SetCompleted().Completed = %v, want %v", got.Completed, tt.completed)
			}
		})
	}

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().SetCompleted(mock.Anything, int64(9), true).Return(nil, todo.ErrNotFound)

		_, err := svc.SetCompleted(context.Background(), 9, true)
		if !errors.Is(err, todo.ErrNotFound) {
			t.Errorf("SetCompleted() error = %v, want ErrNotFound", err)
		}
	})
}

// --- DeleteTodo ---

func TestTodoService_DeleteTodo(t *testing.T) {
	t.Parallel()

	t.Run("deletes todo", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

		if err := svc.DeleteTodo(context.Background(), 1); err != nil {
			t.Errorf("DeleteTodo() error = %v, want nil", err)
		}
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockTodoRepository(t)
		svc := NewTodoService(repo, discardLogger())

		repo.EXPECT().Delete(mock.Anything, int64(2)).Return(todo.ErrNotFound)

		err := svc.DeleteTodo(context.Background(), 2)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("DeleteTodo() error = %v, want ErrNotFound", err)
		}
	})
}
