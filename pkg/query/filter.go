package query

import (
	"fmt"
	"strings"
	"time"
)

// FilterBuilder accumulates optional filter criteria into AND-joined
// predicate fragments plus the bound values that satisfy them, in
// placeholder order. Unset criteria (nil or empty string) are skipped
// entirely; an absent filter never becomes an IS NULL predicate.
//
// Typical use inside a repository:
//
//	seq := query.NewSequencer()
//	f := query.NewFilterBuilder(seq)
//	f.Equal("o.status", params.Status)
//	f.Min("o.total_amount", params.MinAmount)
//	f.Search(params.Search, "p.name", "p.description")
//	where, args := f.Clause(), f.Args()
type FilterBuilder struct {
	seq       *Sequencer
	fragments []string
	args      []interface{}
}

// NewFilterBuilder returns a builder drawing placeholder indices from seq.
func NewFilterBuilder(seq *Sequencer) *FilterBuilder {
	return &FilterBuilder{seq: seq}
}

// set reports whether v carries a value worth filtering on.
// nil interfaces, nil typed pointers and empty strings are "unset".
func set(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case *string:
		return t != nil && *t != ""
	case *int:
		return t != nil
	case *int64:
		return t != nil
	case *uint:
		return t != nil
	case *float64:
		return t != nil
	case *bool:
		return t != nil
	case *time.Time:
		return t != nil
	default:
		return true
	}
}

// deref unwraps pointer values so the bound parameter is the value itself.
func deref(v interface{}) interface{} {
	switch t := v.(type) {
	case *string:
		return *t
	case *int:
		return *t
	case *int64:
		return *t
	case *uint:
		return *t
	case *float64:
		return *t
	case *bool:
		return *t
	case *time.Time:
		return *t
	default:
		return v
	}
}

// Equal adds `column = $n` when value is set.
func (f *FilterBuilder) Equal(column string, value interface{}) *FilterBuilder {
	if !set(value) {
		return f
	}
	f.fragments = append(f.fragments, fmt.Sprintf("%s = $%d", column, f.seq.Next()))
	f.args = append(f.args, deref(value))
	return f
}

// Min adds `column >= $n` when value is set.
func (f *FilterBuilder) Min(column string, value interface{}) *FilterBuilder {
	if !set(value) {
		return f
	}
	f.fragments = append(f.fragments, fmt.Sprintf("%s >= $%d", column, f.seq.Next()))
	f.args = append(f.args, deref(value))
	return f
}

// Max adds `column <= $n` when value is set.
func (f *FilterBuilder) Max(column string, value interface{}) *FilterBuilder {
	if !set(value) {
		return f
	}
	f.fragments = append(f.fragments, fmt.Sprintf("%s <= $%d", column, f.seq.Next()))
	f.args = append(f.args, deref(value))
	return f
}

// Search adds a case-insensitive contains predicate over one or more
// columns. All columns share a single placeholder: one bound value, matched
// everywhere it could appear.
//
//	f.Search("widget", "name", "description")
//	// → (name ILIKE $3 OR description ILIKE $3), args += "%widget%"
func (f *FilterBuilder) Search(term string, columns ...string) *FilterBuilder {
	if term == "" || len(columns) == 0 {
		return f
	}
	n := f.seq.Next()
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	f.fragments = append(f.fragments, "("+strings.Join(parts, " OR ")+")")
	f.args = append(f.args, "%"+term+"%")
	return f
}

// Clause returns the AND-joined predicate. With zero accumulated filters it
// returns the tautology "1=1" so callers can always write `WHERE <clause>`
// or `AND <clause>` without special-casing the empty set.
func (f *FilterBuilder) Clause() string {
	if len(f.fragments) == 0 {
		return "1=1"
	}
	return strings.Join(f.fragments, " AND ")
}

// Args returns the bound values in placeholder order. Empty filters yield
// an empty slice.
func (f *FilterBuilder) Args() []interface{} {
	return f.args
}

// Len returns the number of predicate fragments accumulated so far.
func (f *FilterBuilder) Len() int {
	return len(f.fragments)
}
