package api

import (
	"net/url"
	"strconv"
)

// ListParams are the standard collection query parameters understood by
// every list endpoint.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Ordering string

	// Extra carries endpoint-specific filters (warehouse, supplier,
	// date range, ...).
	Extra url.Values
}

// Values renders the parameters as a query string. Zero values are omitted.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Ordering != "" {
		v.Set("ordering", p.Ordering)
	}
	for key, vals := range p.Extra {
		for _, val := range vals {
			v.Add(key, val)
		}
	}
	return v
}

// Key is the canonical cache key for these parameters. url.Values.Encode
// sorts by key, so equal parameter sets always produce equal keys.
func (p ListParams) Key() string {
	return p.Values().Encode()
}
