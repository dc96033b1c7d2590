package listquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_MergePreservesUnrelatedKeys(t *testing.T) {
	q := ParseQuery(url.Values{
		"searchTerm": {"doro"},
		"isActive":   {"true"},
	})

	q = q.Merge(map[string]string{"page": "3"})
	q = q.Merge(map[string]string{"limit": "20"})

	assert.Equal(t, 3, q.Page())
	assert.Equal(t, 20, q.Limit(10))
	assert.Equal(t, "doro", q.Get("searchTerm"))
	assert.Equal(t, "true", q.Get("isActive"))
}

func TestQuery_MergeEmptyValueRemovesKey(t *testing.T) {
	q := ParseQuery(url.Values{"searchTerm": {"doro"}, "page": {"2"}})

	q = q.Merge(map[string]string{"searchTerm": ""})

	assert.False(t, q.Has("searchTerm"))
	// The removed key must not serialize as a literal empty pair
	assert.Equal(t, "page=2", q.Encode())
}

func TestQuery_MergeDoesNotMutateReceiver(t *testing.T) {
	original := ParseQuery(url.Values{"page": {"1"}})
	_ = original.Merge(map[string]string{"page": "5"})
	assert.Equal(t, 1, original.Page())
}

func TestQuery_Defaults(t *testing.T) {
	q := NewQuery()
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 10, q.Limit(10))
	assert.Equal(t, 2, q.Limit(2))

	q = ParseQuery(url.Values{"page": {"junk"}, "limit": {"-1"}})
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 10, q.Limit(10))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		lastPage int
		want     PaginationView
	}{
		{
			name: "first of many", current: 1, lastPage: 5,
			want: PaginationView{CurrentPage: 1, NextPage: 2, HasNextPage: true, LastPage: 5},
		},
		{
			name: "middle page", current: 3, lastPage: 5,
			want: PaginationView{CurrentPage: 3, NextPage: 4, PreviousPage: 2, HasNextPage: true, HasPreviousPage: true, LastPage: 5},
		},
		{
			name: "last page", current: 5, lastPage: 5,
			want: PaginationView{CurrentPage: 5, PreviousPage: 4, HasPreviousPage: true, LastPage: 5},
		},
		{
			name: "single page", current: 1, lastPage: 1,
			want: PaginationView{CurrentPage: 1, LastPage: 1},
		},
		{
			name: "degenerate input clamps", current: 0, lastPage: 0,
			want: PaginationView{CurrentPage: 1, LastPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.current, tt.lastPage))
		})
	}
}
