package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTable_Accessors(t *testing.T) {
	t.Parallel()
	when := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	tbl := &Table{
		Columns: []string{"date", "qty", "label"},
		Rows: [][]any{
			{when, "7", "a"},
			{nil, 3, nil},
		},
	}
	assert.Equal(t, 1, tbl.Index("qty"))
	assert.Equal(t, -1, tbl.Index("nope"))

	n, ok := tbl.Int(0, "qty")
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	n, ok = tbl.Int(1, "qty")
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
	_, ok = tbl.Int(0, "label")
	assert.False(t, ok)

	f, ok := tbl.Float(0, "qty")
	assert.True(t, ok)
	assert.InDelta(t, 7.0, f, 1e-9)

	tm, ok := tbl.Time(0, "date")
	assert.True(t, ok)
	assert.Equal(t, when, tm)
	_, ok = tbl.Time(1, "date")
	assert.False(t, ok)

	_, ok = tbl.Value(5, "qty")
	assert.False(t, ok)
	_, ok = tbl.Value(0, "nope")
	assert.False(t, ok)

	assert.Equal(t, []any{"a", nil}, tbl.Column("label"))
	assert.Nil(t, tbl.Column("nope"))
}
