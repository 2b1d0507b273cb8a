// Package pagination implements the page/limit contract shared by every
// list endpoint: 1-based pages, clamped limits, and response metadata
// derived from a pre-pagination total.
package pagination

import "strconv"

// Defaults bounds the page size when the caller omits or exceeds it.
type Defaults struct {
	PageSize    int
	MaxPageSize int
}

// Params is a sanitized page request. Offset is derived, never stored.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the full result set a page was cut from.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// FromQuery parses raw page/limit query values. Invalid or missing input
// falls back to defaults rather than erroring; page is clamped to at
// least 1 and limit to [1, MaxPageSize].
func FromQuery(page, limit string, d Defaults) Params {
	pageNum, err := strconv.Atoi(page)
	if err != nil {
		pageNum = 1
	}
	if pageNum < 1 {
		pageNum = 1
	}

	limitNum, err := strconv.Atoi(limit)
	if err != nil {
		limitNum = d.PageSize
	}
	if limitNum < 1 {
		limitNum = 1
	}
	if limitNum > d.MaxPageSize {
		limitNum = d.MaxPageSize
	}

	return Params{Page: pageNum, Limit: limitNum}
}

// Offset is the number of records to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta computes response metadata from the total count of matching
// records, independent of how many fit on the requested page.
func NewMeta(total int, p Params) Meta {
	totalPages := (total + p.Limit - 1) / p.Limit
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
