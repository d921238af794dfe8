// Package dataset loads CSV files into an in-memory Table and derives the
// calendar columns commonly used in charts.
//
// When a column named "date" is present its cells are parsed tolerantly:
// values that cannot be parsed become nil rather than failing the load, and
// the appended "quarter", "month" and "year" columns are nil for those rows.
package dataset
