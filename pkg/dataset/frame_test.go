package dataset

import "testing"

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	s := Schema{Columns: []ColumnSchema{
		{Name: "id", Type: KindInt, Nullable: true},
		{Name: "x", Type: KindFloat, Nullable: true},
		{Name: "s", Type: KindString, Nullable: true},
	}}
	f := NewFrame(s)
	for i := 0; i < 3; i++ {
		f.AppendNullRow()
		if err := f.SetCell(i, "id", int64(i)); err != nil {
			t.Fatal(err)
		}
		if err := f.SetCell(i, "x", float64(i)*1.5); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetCell(0, "s", "hello"); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFrameBasics(t *testing.T) {
	f := sampleFrame(t)
	if f.Rows() != 3 || f.Cols() != 3 {
		t.Fatalf("unexpected shape %dx%d", f.Rows(), f.Cols())
	}
	col, ok := f.ColumnByName("x")
	if !ok {
		t.Fatal("missing column x")
	}
	v, set := col.(*FloatColumn).Get(2)
	if !set || v != 3.0 {
		t.Fatalf("got %v (set=%v)", v, set)
	}
	sc, _ := f.ColumnByName("s")
	if !sc.IsNull(1) {
		t.Fatal("expected null string cell")
	}
}

func TestWithColumnAppends(t *testing.T) {
	f := sampleFrame(t)
	out, err := f.WithColumn(FloatColumnOf("y", []float64{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if f.HasColumn("y") {
		t.Fatal("WithColumn mutated the receiver")
	}
	if !out.HasColumn("y") || out.Cols() != 4 {
		t.Fatalf("derived frame missing column, cols=%d", out.Cols())
	}
	// existing columns are shared, not copied
	orig, _ := f.ColumnByName("x")
	derived, _ := out.ColumnByName("x")
	if orig != derived {
		t.Fatal("expected shared column storage")
	}
}

func TestWithColumnReplacesInPlace(t *testing.T) {
	f := sampleFrame(t)
	out, err := f.WithColumn(FloatColumnOf("x", []float64{9, 9, 9}))
	if err != nil {
		t.Fatal(err)
	}
	if out.Cols() != 3 {
		t.Fatalf("replace should keep column count, got %d", out.Cols())
	}
	col, _ := out.ColumnByName("x")
	if v, _ := col.(*FloatColumn).Get(0); v != 9 {
		t.Fatalf("replacement not applied, got %v", v)
	}
	old, _ := f.ColumnByName("x")
	if v, _ := old.(*FloatColumn).Get(0); v != 0 {
		t.Fatalf("receiver column changed, got %v", v)
	}
}

func TestWithColumnLengthMismatch(t *testing.T) {
	f := sampleFrame(t)
	if _, err := f.WithColumn(FloatColumnOf("y", []float64{1})); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestSelect(t *testing.T) {
	f := sampleFrame(t)
	out, err := f.Select("s", "id")
	if err != nil {
		t.Fatal(err)
	}
	if out.Cols() != 2 || out.Rows() != 3 {
		t.Fatalf("unexpected shape %dx%d", out.Rows(), out.Cols())
	}
	names := out.Names()
	if names[0] != "s" || names[1] != "id" {
		t.Fatalf("selection order not kept: %v", names)
	}
	if _, err := f.Select("nope"); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestSetCellCoercion(t *testing.T) {
	f := sampleFrame(t)
	if err := f.SetCell(0, "x", 2); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "id", 3.0); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCell(0, "x", "nope"); err == nil {
		t.Fatal("expected type error")
	}
	if err := f.SetCell(0, "x", nil); err != nil {
		t.Fatal(err)
	}
	col, _ := f.ColumnByName("x")
	if !col.IsNull(0) {
		t.Fatal("nil should null the cell")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"float": KindFloat, "double": KindFloat, "int": KindInt,
		"string": KindString, "bool": KindBool, "timestamp": KindTime,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseKind("decimal"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
