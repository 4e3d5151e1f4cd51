package parquetio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

func TestWriteFile(t *testing.T) {
	s := dataset.Schema{Columns: []dataset.ColumnSchema{
		{Name: "id", Type: dataset.KindInt, Nullable: true},
		{Name: "feature", Type: dataset.KindFloat, Nullable: true},
		{Name: "label", Type: dataset.KindString, Nullable: true},
	}}
	f := dataset.NewFrame(s)
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
		_ = f.SetCell(i, "id", int64(i))
		_ = f.SetCell(i, "feature", float64(i)*0.5)
	}
	_ = f.SetCell(0, "label", "a")

	path := filepath.Join(t.TempDir(), "out.parquet")
	if err := WriteFile(path, f); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty parquet file written")
	}
}

func TestSchemaJSON(t *testing.T) {
	s := dataset.Schema{Columns: []dataset.ColumnSchema{
		{Name: "x", Type: dataset.KindFloat},
		{Name: "label", Type: dataset.KindString},
	}}
	got := schemaJSON(s)
	for _, want := range []string{"name=x", "DOUBLE", "name=label", "UTF8"} {
		if !strings.Contains(got, want) {
			t.Fatalf("schema %s missing %q", got, want)
		}
	}
}
