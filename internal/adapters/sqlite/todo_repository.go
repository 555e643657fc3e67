package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoRepository implements ports.TodoRepository.
var _ ports.TodoRepository = (*TodoRepository)(nil)

const todoColumns = "id, title, completed"

// likeEscape is the ESCAPE character used in search patterns.
const likeEscape = `\`

// TodoRepository implements ports.TodoRepository with SQLite. Titles are
// stored alongside their folded key; the unique index on that key is the
// durable guard against case-insensitive duplicates.
type TodoRepository struct {
	store *Store
}

// NewTodoRepository creates a todo repository backed by store.
func NewTodoRepository(store *Store) *TodoRepository {
	return &TodoRepository{store: store}
}

// Create inserts a new incomplete todo.
func (r *TodoRepository) Create(ctx context.Context, title string) (*todo.Todo, error) {
	var t todo.Todo
	err := r.store.exec(ctx, "insert", func(ctx context.Context) error {
		row := r.store.db.QueryRowContext(ctx,
			"INSERT INTO todos (title, title_key, completed) VALUES (?, ?, 0) RETURNING "+todoColumns,
			title, todo.TitleKey(title),
		)
		if err := scanTodo(row, &t); err != nil {
			if isUniqueViolation(err) {
				return todo.ErrDuplicateTitle
			}
			return fmt.Errorf("inserting todo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID retrieves a todo by its ID.
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var t todo.Todo
	err := r.store.exec(ctx, "select", func(ctx context.Context) error {
		row := r.store.db.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos WHERE id = ?", id)
		return notFound(scanTodo(row, &t), "selecting todo")
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update overwrites title and completed of an existing todo.
func (r *TodoRepository) Update(ctx context.Context, in *todo.Todo) (*todo.Todo, error) {
	var t todo.Todo
	err := r.store.exec(ctx, "update", func(ctx context.Context) error {
		row := r.store.db.QueryRowContext(ctx,
			"UPDATE todos SET title = ?, title_key = ?, completed = ? WHERE id = ? RETURNING "+todoColumns,
			in.Title, todo.TitleKey(in.Title), in.Completed, in.ID,
		)
		err := scanTodo(row, &t)
		if isUniqueViolation(err) {
			return todo.ErrDuplicateTitle
		}
		return notFound(err, "updating todo")
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SetCompleted sets the completed flag. Setting it to its current value is a
// successful no-op.
func (r *TodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	var t todo.Todo
	err := r.store.exec(ctx, "update", func(ctx context.Context) error {
		row := r.store.db.QueryRowContext(ctx,
			"UPDATE todos SET completed = ? WHERE id = ? RETURNING "+todoColumns,
			completed, id,
		)
		return notFound(scanTodo(row, &t), "updating todo")
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete permanently removes a todo.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	return r.store.exec(ctx, "delete", func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting todo: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting todo: %w", err)
		}
		if n == 0 {
			return todo.ErrNotFound
		}
		return nil
	})
}

// ExistsByNormalizedTitle reports whether a todo other than excludeID has
// the given folded title.
func (r *TodoRepository) ExistsByNormalizedTitle(ctx context.Context, key string, excludeID int64) (bool, error) {
	var exists bool
	err := r.store.exec(ctx, "select", func(ctx context.Context) error {
		err := r.store.db.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM todos WHERE title_key = ? AND id != ?)",
			key, excludeID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking title: %w", err)
		}
		return nil
	})
	return exists, err
}

// List filters, sorts and optionally slices the todos. Total is the number
// of matches before slicing.
func (r *TodoRepository) List(ctx context.Context, q todo.Query) (*todo.Page, error) {
	where, args := buildFilter(q)

	page := &todo.Page{Items: []todo.Todo{}, Page: q.Page, PerPage: q.PerPage}
	err := r.store.exec(ctx, "list", func(ctx context.Context) error {
		if err := r.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos"+where, args...).
			Scan(&page.Total); err != nil {
			return fmt.Errorf("counting todos: %w", err)
		}

		query, pageArgs := buildListQuery(q, where)
		rows, err := r.store.db.QueryContext(ctx, query, append(args, pageArgs...)...)
		if err != nil {
			return fmt.Errorf("listing todos: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var t todo.Todo
			if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
				return fmt.Errorf("scanning todo: %w", err)
			}
			page.Items = append(page.Items, t)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating todos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// buildFilter returns the WHERE clause (with a leading space, or empty) for
// the query's completed and search filters.
func buildFilter(q todo.Query) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *q.Completed)
	}
	if q.Search != "" {
		conds = append(conds, "title_key LIKE ? ESCAPE '"+likeEscape+"'")
		args = append(args, "%"+escapeLike(strings.ToLower(q.Search))+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListQuery returns the SELECT for one page. Title sorts break ties by
// ascending id in both directions. Unpaginated queries return every match.
func buildListQuery(q todo.Query, where string) (string, []any) {
	dir := "ASC"
	if q.Order == todo.OrderDesc {
		dir = "DESC"
	}

	order := " ORDER BY id " + dir
	if q.Sort == todo.SortByTitle {
		order = " ORDER BY title_key " + dir + ", id ASC"
	}

	query := "SELECT " + todoColumns + " FROM todos" + where + order
	if !q.Paginated {
		return query, nil
	}
	return query + " LIMIT ? OFFSET ?", []any{q.PerPage, q.Offset()}
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner, t *todo.Todo) error {
	return row.Scan(&t.ID, &t.Title, &t.Completed)
}

// notFound maps a missing row to todo.ErrNotFound and wraps anything else.
func notFound(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return todo.ErrNotFound
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}
