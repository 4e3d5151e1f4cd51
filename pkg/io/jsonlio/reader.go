// Package jsonlio reads and writes dataset frames as JSON Lines.
package jsonlio

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/io/ioutils"
)

// ReadFile loads a whole JSONL file (optionally gzipped) into a frame.
func ReadFile(path string) (*dataset.Frame, error) {
	rc, err := ioutils.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}

// Read decodes one JSON object per line from r into a frame. The schema is
// inferred over all rows: a key seen with mixed types falls back to string.
func Read(r io.Reader) (*dataset.Frame, error) {
	dec := json.NewDecoder(r)
	var rows []map[string]any
	for {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		rows = append(rows, m)
	}

	schema := inferSchema(rows)
	f := dataset.NewFrame(schema)
	for _, m := range rows {
		f.AppendNullRow()
		row := f.Rows() - 1
		for _, cs := range schema.Columns {
			v, ok := m[cs.Name]
			if !ok || v == nil {
				continue
			}
			setCell(f, row, cs, v)
		}
	}
	return f, nil
}

func setCell(f *dataset.Frame, row int, cs dataset.ColumnSchema, v any) {
	switch cs.Type {
	case dataset.KindFloat:
		if x, ok := v.(float64); ok {
			_ = f.SetCell(row, cs.Name, x)
		}
	case dataset.KindInt:
		if x, ok := v.(float64); ok {
			_ = f.SetCell(row, cs.Name, int64(x))
		}
	case dataset.KindBool:
		if x, ok := v.(bool); ok {
			_ = f.SetCell(row, cs.Name, x)
		}
	default:
		if s, ok := v.(string); ok {
			_ = f.SetCell(row, cs.Name, s)
		} else {
			b, _ := json.Marshal(v)
			_ = f.SetCell(row, cs.Name, string(b))
		}
	}
}

func inferSchema(rows []map[string]any) dataset.Schema {
	keySet := map[string]struct{}{}
	for _, m := range rows {
		for k := range m {
			keySet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	schema := dataset.Schema{Columns: make([]dataset.ColumnSchema, len(keys))}
	for i, k := range keys {
		nNum, nInt, nBool, nStr := 0, 0, 0, 0
		for _, m := range rows {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			switch t := v.(type) {
			case float64:
				nNum++
				if float64(int64(t)) == t {
					nInt++
				}
			case bool:
				nBool++
			default:
				nStr++
			}
		}
		kind := dataset.KindString
		switch {
		case nBool > 0 && nNum == 0 && nStr == 0:
			kind = dataset.KindBool
		case nNum > 0 && nBool == 0 && nStr == 0:
			if nInt == nNum {
				kind = dataset.KindInt
			} else {
				kind = dataset.KindFloat
			}
		}
		schema.Columns[i] = dataset.ColumnSchema{Name: k, Type: kind, Nullable: true}
	}
	return schema
}
