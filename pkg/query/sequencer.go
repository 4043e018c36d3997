// Package query builds the dynamic SQL fragments shared by every list and
// partial-update endpoint: WHERE predicates from optional filters, SET
// clauses from sparse patches, ORDER BY validation, and LIMIT/OFFSET
// pagination. All values travel as positional $N bind parameters; the only
// identifiers ever interpolated are sort columns, which must pass the
// per-entity whitelist first.
package query

// Sequencer hands out positional placeholder indices while a single
// statement is being assembled. Indices start at 1 and never repeat within
// one build. A Sequencer is scoped to one statement; it is never shared
// between goroutines and never reset.
type Sequencer struct {
	next int
}

// NewSequencer returns a Sequencer whose first index is 1.
func NewSequencer() *Sequencer {
	return &Sequencer{next: 1}
}

// Next returns the current placeholder index and advances the counter.
func (s *Sequencer) Next() int {
	n := s.next
	s.next++
	return n
}

// Peek returns the index Next would hand out, without consuming it.
func (s *Sequencer) Peek() int {
	return s.next
}
