package pagination

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

const (
	// DefaultPageSize applies when the client omits page_size.
	DefaultPageSize = 10
	// MaxPageSize caps page_size regardless of what the client asks for.
	MaxPageSize = 100
)

// Params carries normalized offset pagination inputs.
type Params struct {
	Page     int
	PageSize int
}

// Meta describes the page that was returned.
type Meta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// FromRequest reads page and page_size query parameters, clamping them to
// sane bounds. Absent or malformed values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	return Params{
		Page:     parseIntParam(r, "page", 1, 1),
		PageSize: parseIntParam(r, "page_size", DefaultPageSize, 1),
	}.normalized()
}

func parseIntParam(r *http.Request, key string, fallback, min int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}

func (p Params) normalized() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.PageSize
}

// Scope applies the page window to a GORM query.
func (p Params) Scope() func(*gorm.DB) *gorm.DB {
	p = p.normalized()
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(p.Offset()).Limit(p.PageSize)
	}
}

// MetaFor builds response metadata for a page over total rows.
func (p Params) MetaFor(total int64) Meta {
	p = p.normalized()
	totalPages := int(total) / p.PageSize
	if int(total)%p.PageSize != 0 {
		totalPages++
	}
	return Meta{
		Total:       total,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1 && total > 0,
	}
}
