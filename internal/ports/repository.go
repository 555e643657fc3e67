package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoRepository is the storage port for the todo table. Implemented by the
// SQLite adapter; called by the application layer. The repository owns the
// durable case-insensitive uniqueness constraint on titles: any write that
// would violate it returns todo.ErrDuplicateTitle, even when the validator's
// pre-check passed.
type TodoRepository interface {
	todo.TitleIndex

	// Create inserts a todo with the given trimmed title and completed=false,
	// returning the stored row with its assigned ID.
	Create(ctx context.Context, title string) (*todo.Todo, error)

	// GetByID returns a single todo.
	// Returns todo.ErrNotFound if the todo does not exist.
	GetByID(ctx context.Context, id int64) (*todo.Todo, error)

	// Update overwrites title and completed of an existing todo.
	// Returns todo.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// SetCompleted sets the completed flag and returns the stored row.
	// Returns todo.ErrNotFound if the todo does not exist.
	SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error)

	// Delete permanently removes a todo.
	// Returns todo.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error

	// List applies the query's filters, sort and (when q.Paginated) page
	// slice, and reports the post-filter, pre-pagination total.
	List(ctx context.Context, q todo.Query) (*todo.Page, error)
}
