package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSortColumn is returned when a caller-supplied sort column is not
// in the entity's whitelist. Sort identifiers cannot travel as bind
// parameters, so this check is the gate before the one place raw
// interpolation happens.
var ErrInvalidSortColumn = errors.New("query: sort column not allowed")

// Sort is a validated (column, direction) pair safe to interpolate into an
// ORDER BY clause.
type Sort struct {
	Column    string
	Direction string
}

// NewSort validates column against the whitelist and normalises direction.
// Direction matches case-insensitively against ASC/DESC; anything else,
// including the empty string, falls back to DESC. An unlisted column fails
// with ErrInvalidSortColumn — callers must reject the request, never
// interpolate the raw identifier.
func NewSort(column, direction string, whitelist []string) (Sort, error) {
	ok := false
	for _, col := range whitelist {
		if col == column {
			ok = true
			break
		}
	}
	if !ok {
		return Sort{}, fmt.Errorf("%w: %q", ErrInvalidSortColumn, column)
	}

	dir := "DESC"
	if strings.EqualFold(direction, "ASC") {
		dir = "ASC"
	}

	return Sort{Column: column, Direction: dir}, nil
}

// OrderBy returns the ORDER BY fragment, optionally qualified with a table
// alias. prefix may be empty.
func (s Sort) OrderBy(prefix string) string {
	col := s.Column
	if prefix != "" {
		col = prefix + "." + col
	}
	return fmt.Sprintf("ORDER BY %s %s", col, s.Direction)
}
