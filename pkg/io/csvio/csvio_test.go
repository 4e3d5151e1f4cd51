package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

const sampleCSV = `id,f1,f2,label,active
1,200,200.5,a,true
2,300,300.5,b,false
3,,400.5,c,true
`

func TestReadInfersSchema(t *testing.T) {
	f, err := Read(strings.NewReader(sampleCSV), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 3 || f.Cols() != 5 {
		t.Fatalf("unexpected shape %dx%d", f.Rows(), f.Cols())
	}
	want := map[string]dataset.Kind{
		"id": dataset.KindInt, "f1": dataset.KindInt, "f2": dataset.KindFloat,
		"label": dataset.KindString, "active": dataset.KindBool,
	}
	for _, cs := range f.Schema().Columns {
		if cs.Type != want[cs.Name] {
			t.Fatalf("column %s inferred as %v, want %v", cs.Name, cs.Type, want[cs.Name])
		}
	}
	col, _ := f.ColumnByName("f1")
	if !col.IsNull(2) {
		t.Fatal("empty cell should be null")
	}
	v, _ := col.(*dataset.IntColumn).Get(1)
	if v != 300 {
		t.Fatalf("got %d", v)
	}
}

func TestReadNoHeader(t *testing.T) {
	f, err := Read(strings.NewReader("1,2\n3,4\n"), ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasColumn("col_0") || !f.HasColumn("col_1") {
		t.Fatalf("generated names missing: %v", f.Names())
	}
}

func TestRoundTrip(t *testing.T) {
	f, err := Read(strings.NewReader(sampleCSV), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, f, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	f2, err := Read(strings.NewReader(buf.String()), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if f2.Rows() != f.Rows() || f2.Cols() != f.Cols() {
		t.Fatalf("round trip changed shape: %dx%d vs %dx%d", f2.Rows(), f2.Cols(), f.Rows(), f.Cols())
	}
	col, _ := f2.ColumnByName("f2")
	v, _ := col.(*dataset.FloatColumn).Get(0)
	if v != 200.5 {
		t.Fatalf("got %v", v)
	}
}
