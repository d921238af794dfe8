package dataset

import "time"

// Derived column names.
const (
	DateColumn    = "date"
	QuarterColumn = "quarter"
	MonthColumn   = "month"
	YearColumn    = "year"
)

// Table is a loaded CSV: a header and rows of cells.
// Raw cells are strings; a parsed date column holds time.Time, derived
// calendar columns hold int. nil marks a null cell.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool { return t.Index(name) >= 0 }

// Value returns the cell at row/column. ok is false when the column or row is missing
// or the cell is null.
func (t *Table) Value(row int, column string) (v any, ok bool) {
	idx := t.Index(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) || idx >= len(t.Rows[row]) {
		return nil, false
	}
	v = t.Rows[row][idx]
	return v, v != nil
}

// Int returns the cell as int64. Numeric cells convert directly; string cells are parsed.
func (t *Table) Int(row int, column string) (int64, bool) {
	v, ok := t.Value(row, column)
	if !ok {
		return 0, false
	}
	return cellInt(v)
}

// Float returns the cell as float64. Numeric cells convert directly; string cells are parsed.
func (t *Table) Float(row int, column string) (float64, bool) {
	v, ok := t.Value(row, column)
	if !ok {
		return 0, false
	}
	return cellFloat(v)
}

// Time returns the cell as time.Time. Only parsed date cells qualify.
func (t *Table) Time(row int, column string) (time.Time, bool) {
	v, ok := t.Value(row, column)
	if !ok {
		return time.Time{}, false
	}
	tm, ok := v.(time.Time)
	return tm, ok
}

// Column returns a copy of all cells in column, or nil if it does not exist.
func (t *Table) Column(name string) []any {
	idx := t.Index(name)
	if idx < 0 {
		return nil
	}
	out := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		if idx < len(r) {
			out[i] = r[idx]
		}
	}
	return out
}

// setColumn overwrites column name with values, appending it when absent.
// len(values) must equal t.Len().
func (t *Table) setColumn(name string, values []any) {
	idx := t.Index(name)
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], values[i])
		}
		return
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
}
