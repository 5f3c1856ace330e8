package domain

// Pagination defaults and limits.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageRequest holds 1-based offset pagination parameters for list queries.
type PageRequest struct {
	Page  int
	Limit int
}

// Clamp normalizes the request to valid ranges. Invalid or missing values
// fall back to defaults; Limit is capped at MaxLimit.
func (p PageRequest) Clamp() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the current page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageMeta is the pagination metadata attached to every paginated list.
type PageMeta struct {
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	PageCount int   `json:"page_count"`
}

// NewPageMeta builds PageMeta for a page request and total row count.
// PageCount is ceil(total/limit).
func NewPageMeta(req PageRequest, total int64) PageMeta {
	pageCount := 0
	if req.Limit > 0 {
		pageCount = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	return PageMeta{
		Total:     total,
		Page:      req.Page,
		Limit:     req.Limit,
		PageCount: pageCount,
	}
}

// Page is a page-shaped list result.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}
