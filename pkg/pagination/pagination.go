package pagination

import "fmt"

const (
	// DefaultLimit is the standard page size for the admin order list.
	DefaultLimit = 12
	// MaxLimit caps a single page; the aggregation views request up to this
	// many rows and treat the result as the full order set.
	MaxLimit = 1000
)

// Params holds page/limit inputs from controllers.
type Params struct {
	Page  int
	Limit int
}

// Normalize clamps the params to sane bounds.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result describes one page of a larger result set.
type Result struct {
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Range      string `json:"rangeText"`
}

// NewResult computes page counts for the normalized params.
func NewResult(p Params, total int64) Result {
	p = Normalize(p)
	pages := int(total) / p.Limit
	if int(total)%p.Limit != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	result := Result{
		Total:      total,
		TotalPages: pages,
		Page:       p.Page,
		Limit:      p.Limit,
	}
	result.Range = result.RangeText()
	return result
}

// RangeText renders the displayed row range, e.g. "13-24 sur 25".
func (r Result) RangeText() string {
	if r.Total == 0 {
		return "0-0 sur 0"
	}
	start := (r.Page-1)*r.Limit + 1
	end := r.Page * r.Limit
	if int64(end) > r.Total {
		end = int(r.Total)
	}
	return fmt.Sprintf("%d-%d sur %d", start, end, r.Total)
}
