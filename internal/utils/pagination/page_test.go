package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name               string
		page, size         int
		wantPage, wantSize int
	}{
		{"defaults", 0, 0, 0, DefaultPageSize},
		{"negative page", -3, 10, 0, 10},
		{"size capped", 2, 500, 2, MaxPageSize},
		{"unchanged", 4, 20, 4, 20},
		{"page capped", math.MaxInt, 100, MaxPage, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := Normalize(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 15))
	assert.Equal(t, 45, Offset(3, 15))

	page, size := Normalize(math.MaxInt, 1000)
	assert.Equal(t, 1_000_000_000, Offset(page, size))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 15))
	assert.Equal(t, 1, TotalPages(15, 15))
	assert.Equal(t, 2, TotalPages(16, 15))
	assert.Equal(t, 0, TotalPages(10, 0))
}
