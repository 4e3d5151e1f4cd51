// Package parquetio writes dataset frames as parquet files, the storage
// format feature tables are usually shipped in.
package parquetio

import (
	"encoding/json"
	"fmt"
	"time"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

// schemaJSON builds the JSON schema string the parquet-go JSONWriter expects.
func schemaJSON(s dataset.Schema) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type root struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := root{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case dataset.KindFloat:
			tag += "DOUBLE"
		case dataset.KindInt:
			tag += "INT64"
		case dataset.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteFile writes the frame to a parquet file at path. Null cells are
// written as parquet nulls, time columns as RFC3339 strings.
func WriteFile(path string, f *dataset.Frame) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	w, err := pw.NewJSONWriter(schemaJSON(f.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}

	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, f.Cols())
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch c := col.(type) {
			case *dataset.FloatColumn:
				if v, ok := c.Get(r); ok {
					rec[cs.Name] = v
				}
			case *dataset.IntColumn:
				if v, ok := c.Get(r); ok {
					rec[cs.Name] = v
				}
			case *dataset.BoolColumn:
				if v, ok := c.Get(r); ok {
					rec[cs.Name] = v
				}
			case *dataset.StringColumn:
				if v, ok := c.Get(r); ok {
					rec[cs.Name] = v
				}
			case *dataset.TimeColumn:
				if v, ok := c.Get(r); ok {
					rec[cs.Name] = v.Format(time.RFC3339)
				}
			}
		}
		b, err := json.Marshal(rec)
		if err != nil {
			_ = w.WriteStop()
			_ = fw.Close()
			return err
		}
		if err := w.Write(string(b)); err != nil {
			_ = w.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := w.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}
