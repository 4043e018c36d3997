package query

import "fmt"

const (
	// DefaultPage is used when the caller omits or mangles the page number.
	DefaultPage = 1
	// DefaultLimit is used when the caller omits or mangles the page size.
	DefaultLimit = 10
	// MaxLimit caps the page size; larger requests clamp rather than error.
	MaxLimit = 100
)

// Page is a sanitised page/limit pair.
type Page struct {
	Page  int
	Limit int
}

// Pagination is the metadata block returned alongside every list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPage clamps page and limit into their valid ranges. Out-of-range
// values clamp rather than error: page < 1 becomes 1, limit < 1 becomes the
// default, limit > MaxLimit becomes MaxLimit.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset returns the row offset for this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta derives the pagination metadata from a prior count query. A total of
// zero yields zero pages with neither neighbour, never a division by zero.
func (p Page) Meta(total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

// LimitOffset emits the `LIMIT $n OFFSET $m` fragment with indices drawn
// from seq, and the matching bound values. It must be the last fragment
// appended to a statement so its placeholders follow every filter.
func (p Page) LimitOffset(seq *Sequencer) (fragment string, args []interface{}) {
	fragment = fmt.Sprintf("LIMIT $%d OFFSET $%d", seq.Next(), seq.Next())
	return fragment, []interface{}{p.Limit, p.Offset()}
}
