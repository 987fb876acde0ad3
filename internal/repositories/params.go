package repositories

// ListParams carries the paging/filter/search parameters of a list request.
// Page is zero-based; the dashboard URL uses one-based pages and converts.
type ListParams struct {
	Page       int
	Size       int
	Search     string
	CategoryID int64
	ScopeID    int64
}

const defaultPageSize = 10

func (p ListParams) Normalize() ListParams {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > 100 {
		p.Size = 100
	}
	return p
}

func (p ListParams) limitOffset() (int, int) {
	return p.Size, p.Page * p.Size
}
