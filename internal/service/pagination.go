package service

const (
	maxPageSize = 100
	// keeps (page-1)*limit well inside int range
	maxPageNumber = 1_000_000
)

// Page is the paginated list envelope. Next and Previous are filled in by
// the HTTP layer, which knows the request URL.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`

	PageNumber int `json:"-"`
	Limit      int `json:"-"`
}

func newPage[T any](req PageRequest, count int64, results []T) *Page[T] {
	if results == nil {
		results = []T{}
	}
	return &Page[T]{Count: count, Results: results, PageNumber: req.Page, Limit: req.Limit}
}

// PageRequest carries 1-based page number and page size
type PageRequest struct {
	Page  int
	Limit int
}

// normalize clamps the request and returns limit and offset for the repository
func (p PageRequest) normalize(defaultLimit int) (PageRequest, int, int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxPageNumber {
		p.Page = maxPageNumber
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	return p, p.Limit, (p.Page - 1) * p.Limit
}

// HasNext reports whether another page follows this one
func (p *Page[T]) HasNext() bool {
	return int64(p.PageNumber)*int64(p.Limit) < p.Count
}

// HasPrevious reports whether this is not the first page
func (p *Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}
