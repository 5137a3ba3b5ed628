package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders", nil)
	p := FromRequest(r)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())
}

func TestFromRequestParsesAndClamps(t *testing.T) {
	r := httptest.NewRequest("GET", "/orders?page=3&page_size=25", nil)
	p := FromRequest(r)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, 50, p.Offset())

	r = httptest.NewRequest("GET", "/orders?page=-2&page_size=9999", nil)
	p = FromRequest(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)

	r = httptest.NewRequest("GET", "/orders?page=abc&page_size=zero", nil)
	p = FromRequest(r)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestMetaFor(t *testing.T) {
	meta := Params{Page: 2, PageSize: 10}.MetaFor(35)

	assert.Equal(t, int64(35), meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
	assert.Equal(t, 4, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	last := Params{Page: 4, PageSize: 10}.MetaFor(35)
	assert.False(t, last.HasNext)

	empty := Params{Page: 1, PageSize: 10}.MetaFor(0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}
