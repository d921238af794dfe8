package dataset

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when an aggregation names a column the table lacks.
var ErrUnknownColumn = errors.New("dataset: unknown column")

// Group is one key of a SumBy result.
type Group struct {
	Key   any
	Sum   float64
	Count int
}

// SumBy totals the numeric cells of value per distinct cell of key, in order of first
// appearance. Rows with a null key or a non-numeric value are skipped.
func (t *Table) SumBy(key, value string) ([]Group, error) {
	for _, c := range []string{key, value} {
		if !t.HasColumn(c) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
	}
	var groups []Group
	index := make(map[any]int)
	for i := range t.Rows {
		k, ok := t.Value(i, key)
		if !ok {
			continue
		}
		v, ok := t.Float(i, value)
		if !ok {
			continue
		}
		j, seen := index[k]
		if !seen {
			j = len(groups)
			index[k] = j
			groups = append(groups, Group{Key: k})
		}
		groups[j].Sum += v
		groups[j].Count++
	}
	return groups, nil
}
