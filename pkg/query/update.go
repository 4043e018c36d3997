package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPatch is returned when an update carries no fields to change.
// Callers must surface this as a client error rather than run the statement.
var ErrEmptyPatch = errors.New("query: no fields to update")

// UpdateComposer turns a sparse patch into an ordered SET clause. Fields are
// emitted in the order they were Set; a nil value is a deliberate
// SET column = NULL, distinct from the field simply not being patched.
// The composed clause always ends with an updated_at stamp, and the row id
// takes the final placeholder for the WHERE clause.
type UpdateComposer struct {
	columns []string
	values  []interface{}
}

// NewUpdateComposer returns an empty composer.
func NewUpdateComposer() *UpdateComposer {
	return &UpdateComposer{}
}

// Set records column := value. Call it only for fields the caller intends
// to change; pass nil to clear a nullable column.
func (u *UpdateComposer) Set(column string, value interface{}) *UpdateComposer {
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
	return u
}

// Len returns the number of fields recorded so far.
func (u *UpdateComposer) Len() int {
	return len(u.columns)
}

// Compose builds the SET clause and its bound values. The returned args end
// with id, whose placeholder index is returned as idIndex for the caller's
// WHERE clause:
//
//	set, args, n, err := u.Compose(id)
//	sql := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d RETURNING *", set, n)
//
// Compose fails with ErrEmptyPatch when no fields were Set.
func (u *UpdateComposer) Compose(id interface{}) (setClause string, args []interface{}, idIndex int, err error) {
	if len(u.columns) == 0 {
		return "", nil, 0, ErrEmptyPatch
	}

	seq := NewSequencer()
	fragments := make([]string, 0, len(u.columns)+1)
	args = make([]interface{}, 0, len(u.values)+1)

	for i, col := range u.columns {
		fragments = append(fragments, fmt.Sprintf("%s = $%d", col, seq.Next()))
		args = append(args, u.values[i])
	}

	// Stamp the modification time server-side so clock skew between app
	// instances never shows up in row timestamps.
	fragments = append(fragments, "updated_at = NOW()")

	idIndex = seq.Next()
	args = append(args, id)

	return strings.Join(fragments, ", "), args, idIndex, nil
}
