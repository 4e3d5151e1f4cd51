package csvio

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/io/ioutils"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteFile writes the frame to path (gzipped when it ends in .gz), with a
// header row.
func WriteFile(path string, f *dataset.Frame, opt WriterOptions) error {
	out, err := ioutils.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, f, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write writes the frame as CSV to w. Null cells are written empty.
func Write(w io.Writer, f *dataset.Frame, opt WriterOptions) error {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	if err := cw.Write(f.Names()); err != nil {
		return err
	}
	rec := make([]string, f.Cols())
	for r := 0; r < f.Rows(); r++ {
		for c, cs := range f.Schema().Columns {
			rec[c] = formatCell(f, r, cs)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(f *dataset.Frame, row int, cs dataset.ColumnSchema) string {
	col, _ := f.ColumnByName(cs.Name)
	switch c := col.(type) {
	case *dataset.FloatColumn:
		if v, ok := c.Get(row); ok {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	case *dataset.IntColumn:
		if v, ok := c.Get(row); ok {
			return strconv.FormatInt(v, 10)
		}
	case *dataset.BoolColumn:
		if v, ok := c.Get(row); ok {
			return strconv.FormatBool(v)
		}
	case *dataset.StringColumn:
		if v, ok := c.Get(row); ok {
			return v
		}
	case *dataset.TimeColumn:
		if v, ok := c.Get(row); ok {
			return v.Format(time.RFC3339)
		}
	}
	return ""
}
