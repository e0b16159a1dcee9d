package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
)

func TestNewValid(t *testing.T) {
	p, err := New(2, 25)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 25, p.Offset())
}

func TestNewRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		limit int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero limit", 1, 0},
		{"negative limit", 1, -5},
		{"limit above max", 1, MaxLimit + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.page, tc.limit)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestOffsetFirstPage(t *testing.T) {
	p, err := New(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset())
}

func TestNewResultNilData(t *testing.T) {
	p, err := New(1, 10)
	require.NoError(t, err)

	r := NewResult[string](nil, 0, p)
	require.NotNil(t, r.Data)
	assert.Empty(t, r.Data)
	assert.Equal(t, int64(0), r.Total)
	assert.Equal(t, 1, r.Page)
	assert.Equal(t, 10, r.Limit)
}

func TestNewResultEchoesParams(t *testing.T) {
	p, err := New(3, 5)
	require.NoError(t, err)

	r := NewResult([]int{1, 2, 3}, 42, p)
	assert.Len(t, r.Data, 3)
	assert.Equal(t, int64(42), r.Total)
	assert.Equal(t, 3, r.Page)
	assert.Equal(t, 5, r.Limit)
}
