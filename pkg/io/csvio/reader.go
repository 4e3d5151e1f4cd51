// Package csvio reads and writes dataset frames as CSV, with schema
// inference on read and transparent gzip handling.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/io/ioutils"
)

type ReaderOptions struct {
	HasHeader  bool
	Delimiter  rune // default ','
	SampleRows int  // rows used for type inference; default 100
}

var numericRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// ReadFile loads a whole CSV (optionally gzipped) into a frame.
func ReadFile(path string, opt ReaderOptions) (*dataset.Frame, error) {
	rc, err := ioutils.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc, opt)
}

// Read loads all CSV records from r, infers a schema from the first sampled
// rows, and returns the populated frame. Empty cells become nulls.
func Read(r io.Reader, opt ReaderOptions) (*dataset.Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: empty input")
	}

	var names []string
	if opt.HasHeader {
		names = make([]string, len(records[0]))
		for i, h := range records[0] {
			names[i] = strings.TrimPrefix(strings.TrimSpace(h), "\uFEFF")
		}
		records = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	sample := opt.SampleRows
	if sample <= 0 {
		sample = 100
	}
	if sample > len(records) {
		sample = len(records)
	}
	schema := inferSchema(names, records[:sample])

	f := dataset.NewFrame(schema)
	for _, rec := range records {
		f.AppendNullRow()
		row := f.Rows() - 1
		for i, cs := range schema.Columns {
			if i >= len(rec) {
				continue
			}
			setCell(f, row, cs, strings.TrimSpace(rec[i]))
		}
	}
	return f, nil
}

func setCell(f *dataset.Frame, row int, cs dataset.ColumnSchema, val string) {
	if val == "" {
		return
	}
	switch cs.Type {
	case dataset.KindFloat:
		if x, err := strconv.ParseFloat(val, 64); err == nil {
			_ = f.SetCell(row, cs.Name, x)
		}
	case dataset.KindInt:
		if x, err := strconv.ParseInt(val, 10, 64); err == nil {
			_ = f.SetCell(row, cs.Name, x)
		}
	case dataset.KindBool:
		if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
			_ = f.SetCell(row, cs.Name, x)
		}
	default:
		_ = f.SetCell(row, cs.Name, val)
	}
}

func inferSchema(names []string, sample [][]string) dataset.Schema {
	schema := dataset.Schema{Columns: make([]dataset.ColumnSchema, len(names))}
	for c, name := range names {
		nNum, nInt, nBool, nStr := 0, 0, 0, 0
		for _, row := range sample {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			switch lv := strings.ToLower(v); {
			case lv == "true" || lv == "false":
				nBool++
			case numericRe.MatchString(v):
				nNum++
				if !strings.ContainsAny(v, ".eE") {
					nInt++
				}
			default:
				nStr++
			}
		}
		kind := dataset.KindString
		switch {
		case nBool > 0 && nNum == 0 && nStr == 0:
			kind = dataset.KindBool
		case nNum > nStr:
			if nInt == nNum {
				kind = dataset.KindInt
			} else {
				kind = dataset.KindFloat
			}
		}
		schema.Columns[c] = dataset.ColumnSchema{Name: name, Type: kind, Nullable: true}
	}
	return schema
}
