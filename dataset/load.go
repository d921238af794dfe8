package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Sentinel errors for loading. Callers should use errors.Is.
var (
	ErrEmptyCSV     = errors.New("dataset: CSV has no header row")
	ErrMalformedCSV = errors.New("dataset: CSV is malformed")
)

// Option configures Load, LoadFS and Read.
type Option func(*options)

type options struct {
	comma      rune
	dateColumn string
}

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithDateColumn sets the column that drives calendar derivation. Defaults to DateColumn.
func WithDateColumn(name string) Option {
	return func(o *options) { o.dateColumn = name }
}

// Load reads the CSV file at path. See Read.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- path is chosen by caller
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return read(f, path, opts)
}

// LoadFS reads the CSV file name from fsys (e.g. embed.FS). See Read.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Table, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("dataset: open fs: %w", err)
	}
	defer func() { _ = f.Close() }()
	return read(f, name, opts)
}

// Read parses CSV from r. The first record is the header. Rows shorter than the header
// are padded with nil; longer rows fail with ErrMalformedCSV.
// If a date column exists it is parsed and quarter, month and year columns are derived.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	return read(r, "input", opts)
}

func read(r io.Reader, source string, opts []Option) (*Table, error) {
	o := options{comma: ',', dateColumn: DateColumn}
	for _, opt := range opts {
		opt(&o)
	}
	reader := csv.NewReader(r)
	reader.Comma = o.comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCSV, source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedCSV, source, err)
	}
	t := &Table{Columns: trimBOM(header)}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedCSV, source, err)
		}
		if len(rec) > len(t.Columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: %s: line %d: expected %d fields, saw %d",
				ErrMalformedCSV, source, line, len(t.Columns), len(rec))
		}
		row := make([]any, len(t.Columns))
		for i, cell := range rec {
			row[i] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	if t.HasColumn(o.dateColumn) {
		deriveCalendar(t, o.dateColumn)
	}
	return t, nil
}

// deriveCalendar replaces the date column with parsed times (nil when unparseable)
// and sets quarter, month and year.
func deriveCalendar(t *Table, dateColumn string) {
	n := t.Len()
	dates := make([]any, n)
	quarters := make([]any, n)
	months := make([]any, n)
	years := make([]any, n)
	for i, v := range t.Column(dateColumn) {
		s, _ := v.(string)
		tm, ok := ParseDate(s)
		if !ok {
			continue
		}
		dates[i] = tm
		quarters[i] = Quarter(tm)
		months[i] = int(tm.Month())
		years[i] = tm.Year()
	}
	t.setColumn(dateColumn, dates)
	t.setColumn(QuarterColumn, quarters)
	t.setColumn(MonthColumn, months)
	t.setColumn(YearColumn, years)
}

// ParseDate parses s in any common date/time layout. Blank or unrecognized input returns ok=false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	tm, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return tm, true
}

// Quarter returns the calendar quarter (1-4) of tm.
func Quarter(tm time.Time) int {
	return (int(tm.Month())-1)/3 + 1
}

func trimBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
