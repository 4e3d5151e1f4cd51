package jsonlio

import (
	"encoding/json"
	"io"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/io/ioutils"
)

// WriteFile writes the frame to path (gzipped when it ends in .gz), one JSON
// object per row.
func WriteFile(path string, f *dataset.Frame) error {
	out, err := ioutils.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes each row as a JSON object. Null cells are omitted.
func Write(w io.Writer, f *dataset.Frame) error {
	enc := json.NewEncoder(w)
	for r := 0; r < f.Rows(); r++ {
		m := make(map[string]any, f.Cols())
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch c := col.(type) {
			case *dataset.FloatColumn:
				if v, ok := c.Get(r); ok {
					m[cs.Name] = v
				}
			case *dataset.IntColumn:
				if v, ok := c.Get(r); ok {
					m[cs.Name] = v
				}
			case *dataset.BoolColumn:
				if v, ok := c.Get(r); ok {
					m[cs.Name] = v
				}
			case *dataset.StringColumn:
				if v, ok := c.Get(r); ok {
					m[cs.Name] = v
				}
			case *dataset.TimeColumn:
				if v, ok := c.Get(r); ok {
					m[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}
