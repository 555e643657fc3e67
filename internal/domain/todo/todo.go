// Package todo holds the Todo entity together with the pure, storage-agnostic
// pieces of the request pipeline: identifier parsing, body projection, the
// ordered field-validation rules, and query-parameter parsing.
package todo

import (
	"strings"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

// MaxTitleLength is the maximum number of characters in a trimmed title.
const MaxTitleLength = 500

// Field names recognized in request bodies and error details.
const (
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldID        = "id"
)

// Todo is the sole entity of the service.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
}

// TitleKey returns the case-folded form of a title used for uniqueness and
// search comparisons. It is never the stored title.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Errors with fixed client-facing details.
var (
	ErrNotFound       = domain.NewError(domain.ErrNotFound, FieldID, "Todo not found")
	ErrDuplicateTitle = domain.NewError(domain.ErrConflict, FieldTitle, "A todo with this title already exists")
	ErrInvalidID      = domain.NewError(domain.ErrInvalidIdentifier, FieldID, "id must be a positive integer")
)
