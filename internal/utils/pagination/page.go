package pagination

const (
	// DefaultPageSize is used when the caller does not ask for a size.
	DefaultPageSize = 15
	// MaxPageSize caps the page size a caller can request.
	MaxPageSize = 100
	// MaxPage caps the zero-based page number so the row offset stays within a 32-bit integer.
	MaxPage = 10_000_000
)

// Normalize clamps a zero-based page number and a page size to their allowed ranges.
func Normalize(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Offset returns the number of rows to skip for a page.
func Offset(page, size int) int {
	return page * size
}

// TotalPages returns how many pages of size hold total elements.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
