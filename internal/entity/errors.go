package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrPostNotFound is returned when a post is not found or not yet published.
// Callers cannot distinguish a missing post from a future-dated one.
var ErrPostNotFound = errors.New("post not found")

// ValidationError carries per-field violation messages. It is returned before
// any mutating store call, so a failed write never partially applies.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
