package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Values(t *testing.T) {
	p := ListParams{
		Page:     2,
		PageSize: 25,
		Search:   "cahier",
		Ordering: "-created_at",
		Extra:    url.Values{"warehouse": {"3"}},
	}

	v := p.Values()
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "25", v.Get("page_size"))
	assert.Equal(t, "cahier", v.Get("search"))
	assert.Equal(t, "-created_at", v.Get("ordering"))
	assert.Equal(t, "3", v.Get("warehouse"))
}

func TestListParams_Key_CanonicalOrdering(t *testing.T) {
	a := ListParams{Page: 1, Search: "x"}
	b := ListParams{Search: "x", Page: 1}
	assert.Equal(t, a.Key(), b.Key())

	zero := ListParams{}
	assert.Equal(t, "", zero.Key())
}
