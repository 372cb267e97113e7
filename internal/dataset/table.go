package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptyInput is returned when the trimmed input has no lines.
	ErrEmptyInput = errors.New("csv input is empty")
	// ErrInputTooLarge is returned when the input exceeds Options.MaxInputBytes.
	ErrInputTooLarge = errors.New("csv input exceeds maximum size")
)

// DefaultMaxInputBytes mirrors the 10MB upload limit shown to users.
const DefaultMaxInputBytes = 10 << 20

// Options controls table building.
type Options struct {
	// MaxInputBytes rejects larger inputs; 0 means unlimited.
	MaxInputBytes int
	// Logger receives debug output about dropped rows. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the limits used by the CLI.
func DefaultOptions() Options {
	return Options{MaxInputBytes: DefaultMaxInputBytes}
}

// Row holds one value per header, in header order.
type Row []Value

// Table is the parsed form of a CSV document. It is never mutated after
// Build returns; callers must treat Headers and Rows as read-only.
type Table struct {
	Name    string
	Headers []string
	Rows    []Row
}

// RowCount is the number of retained rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnIndex returns the position of the first header named exactly name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns every row's value for the named column.
func (t *Table) Column(name string) ([]Value, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, true
}

// Build parses raw CSV text with DefaultOptions.
func Build(raw, sourceName string) (*Table, error) {
	return BuildWithOptions(raw, sourceName, DefaultOptions())
}

// BuildWithOptions parses raw CSV text into a Table. The first line is the
// header; data lines whose field count differs from the header are dropped.
func BuildWithOptions(raw, sourceName string, opt Options) (*Table, error) {
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	if opt.MaxInputBytes > 0 && len(raw) > opt.MaxInputBytes {
		return nil, fmt.Errorf("%s: %d bytes (limit %d): %w", sourceName, len(raw), opt.MaxInputBytes, ErrInputTooLarge)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", sourceName, ErrEmptyInput)
	}
	lines := strings.Split(text, "\n")

	headers := SplitLine(trimCR(lines[0]))
	t := &Table{
		Name:    sourceName,
		Headers: headers,
		Rows:    make([]Row, 0, len(lines)-1),
	}
	dropped := 0
	for i := 1; i < len(lines); i++ {
		fields := SplitLine(trimCR(lines[i]))
		if len(fields) != len(headers) {
			dropped++
			log.Debug().
				Int("line", i+1).
				Int("fields", len(fields)).
				Int("want", len(headers)).
				Msg("dropping row with mismatched field count")
			continue
		}
		row := make(Row, len(fields))
		for j, f := range fields {
			row[j] = Coerce(f)
		}
		t.Rows = append(t.Rows, row)
	}
	log.Debug().
		Str("source", sourceName).
		Int("columns", len(headers)).
		Int("rows", len(t.Rows)).
		Int("dropped", dropped).
		Msg("table built")
	return t, nil
}

func trimCR(line string) string { return strings.TrimSuffix(line, "\r") }

// SplitLine splits one CSV line on commas outside quotes. A double quote
// always toggles quoting and is never copied, so "" is two toggles rather
// than an escaped quote. One leading and one trailing quote are then
// stripped from each field.
func SplitLine(line string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())
	for i, f := range out {
		f = strings.TrimPrefix(f, `"`)
		out[i] = strings.TrimSuffix(f, `"`)
	}
	return out
}
