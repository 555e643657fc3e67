package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

// MaxBodyBytes is the largest request body the todo endpoints read (1 MiB).
const MaxBodyBytes = 1 << 20

var (
	// ErrInvalidJSON is returned for bodies that are not well-formed JSON,
	// including bodies over MaxBodyBytes.
	ErrInvalidJSON = domain.NewError(domain.ErrInvalidBody, "", "Invalid JSON in request body")

	// ErrNotObject is returned for well-formed JSON bodies that are not
	// objects, such as arrays or bare strings.
	ErrNotObject = domain.NewError(domain.ErrInvalidBody, "", "Request body must be a JSON object")
)

// DecodeTodoPayload reads the request body and projects it onto the fields
// mode recognizes. An empty body decodes as an empty object.
func DecodeTodoPayload(r *http.Request, mode todo.Mode) (todo.RawPayload, error) {
	body, err := readBody(r)
	if err != nil {
		return todo.RawPayload{}, err
	}
	return todo.Project(mode, body), nil
}

// readBody decodes the body into a generic JSON object.
func readBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if len(raw) > MaxBodyBytes {
		return nil, ErrInvalidJSON
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, ErrInvalidJSON
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}
