package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/lloyd/point"
)

// ParseFloat parses a float64 coordinate.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseInt parses a base-10 int64 coordinate.
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ParseError reports a coordinate that could not be parsed.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrRaggedRow is returned when rows have different column counts.
var ErrRaggedRow = errors.New("rows have different column counts")

// Decode reads CSV points from r.
func Decode[T point.Number](r io.Reader, parse func(string) (T, error)) ([]point.Point[T], error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var pts []point.Point[T]
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return pts, nil
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %w", ErrRaggedRow, err)
			}
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		coords := make([]T, len(record))
		for i, field := range record {
			v, err := parse(strings.TrimSpace(field))
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Err: err}
			}
			coords[i] = v
		}
		pts = append(pts, point.FromSlice(coords))
	}
}

// Encode writes pts to w in the format Decode reads.
func Encode[T point.Number](w io.Writer, pts []point.Point[T]) error {
	cw := csv.NewWriter(w)

	var record []string
	for _, p := range pts {
		record = record[:0]
		for _, v := range p.All() {
			record = append(record, fmt.Sprint(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
