package service

// Pagination holds the page size bounds applied to every list operation.
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
}

func DefaultPagination() Pagination {
	return Pagination{DefaultLimit: 50, MaxLimit: 200}
}

func (p Pagination) normalize(page int, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = p.DefaultLimit
	}
	if limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	return page, limit
}

func offsetFor(page int, limit int) int {
	return (page - 1) * limit
}
