package client

import (
	"net/url"
	"strconv"
)

// PageSize is fixed across every listing screen.
const PageSize = 10

// ListQuery is the canonical description of one listing view: which page the
// user is on (0-based internally) plus the active search text and filters.
// The zero value means "first page, nothing filtered".
type ListQuery struct {
	Page    int
	Search  string
	Filters map[string]string
}

// ParseQuery rebuilds a ListQuery from a URL query string. The page parameter
// in the address bar is 1-based; anything unparsable or below 1 falls back to
// the first page. Unknown keys become filters.
func ParseQuery(raw string) ListQuery {
	q := ListQuery{}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return q
	}
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		switch key {
		case "page":
			if n, err := strconv.Atoi(vals[0]); err == nil && n > 1 {
				q.Page = n - 1
			}
		case "search":
			q.Search = vals[0]
		default:
			if q.Filters == nil {
				q.Filters = map[string]string{}
			}
			q.Filters[key] = vals[0]
		}
	}
	return q
}

// Values renders the query in the address-bar form: 1-based page, and every
// default-valued field omitted so the first page with no filters encodes as
// an empty string. ParseQuery(q.Values().Encode()) always round-trips.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page+1))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for key, val := range q.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// wireValues renders the query for the API: 0-based page plus the fixed size.
func (q ListQuery) wireValues() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for key, val := range q.Filters {
		if val != "" {
			v.Set(key, val)
		}
	}
	return v
}

// Key is a stable identity for the query, used to detect stale responses.
func (q ListQuery) Key() string {
	return q.Values().Encode()
}

func (q ListQuery) withPage(page int) ListQuery {
	if page < 0 {
		page = 0
	}
	nq := q
	nq.Page = page
	return nq
}
