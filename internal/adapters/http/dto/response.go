// Package dto provides HTTP request/response data transfer objects and the
// {"detail": ...} error body for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPageResponse is the list envelope returned when any list parameter
// was supplied.
type TodoPageResponse struct {
	Items   []TodoResponse `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int64          `json:"total"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

// ToTodoListResponse converts a slice of domain Todo entities to response
// DTOs. The result is never nil so it encodes as [].
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// ShapeTodoList picks the list response form: a bare array when the client
// sent no list parameter, the page envelope otherwise.
func ShapeTodoList(page *todo.Page, q todo.Query) any {
	items := ToTodoListResponse(page.Items)
	if !q.Paginated {
		return items
	}
	return TodoPageResponse{
		Items:   items,
		Page:    q.Page,
		PerPage: q.PerPage,
		Total:   page.Total,
	}
}
