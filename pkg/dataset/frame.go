package dataset

import (
	"fmt"
	"strings"
	"time"
)

// Kind enumerates supported logical column types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	}
	return "invalid"
}

// ParseKind maps a type name (as found in definition files) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean":
		return KindBool, nil
	case "int", "integer", "int64":
		return KindInt, nil
	case "float", "double", "float64":
		return KindFloat, nil
	case "string", "str":
		return KindString, nil
	case "time", "timestamp":
		return KindTime, nil
	}
	return KindInvalid, fmt.Errorf("unknown column type %q", s)
}

// Schema describes the logical shape of a frame.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, cs := range s.Columns {
		names[i] = cs.Name
	}
	return names
}

// Column is a typed, nullable column.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
	AppendNull()
}

// column is the shared nullable storage behind every typed column.
type column[T any] struct {
	name  string
	vals  []T
	valid []bool
}

func (c *column[T]) Name() string      { return c.name }
func (c *column[T]) Len() int          { return len(c.vals) }
func (c *column[T]) IsNull(i int) bool { return !c.valid[i] }

func (c *column[T]) SetNull(i int) {
	var zero T
	c.vals[i] = zero
	c.valid[i] = false
}

func (c *column[T]) Get(i int) (T, bool) { return c.vals[i], c.valid[i] }

func (c *column[T]) Set(i int, v T) {
	c.vals[i] = v
	c.valid[i] = true
}

func (c *column[T]) Append(v T) {
	c.vals = append(c.vals, v)
	c.valid = append(c.valid, true)
}

func (c *column[T]) AppendNull() {
	var zero T
	c.vals = append(c.vals, zero)
	c.valid = append(c.valid, false)
}

func newColumn[T any](name string, n int) column[T] {
	return column[T]{name: name, vals: make([]T, n), valid: make([]bool, n)}
}

func columnOf[T any](name string, vals []T) column[T] {
	valid := make([]bool, len(vals))
	for i := range valid {
		valid[i] = true
	}
	return column[T]{name: name, vals: vals, valid: valid}
}

type BoolColumn struct{ column[bool] }

func NewBoolColumn(name string, n int) *BoolColumn { return &BoolColumn{newColumn[bool](name, n)} }
func (c *BoolColumn) Kind() Kind                   { return KindBool }

type IntColumn struct{ column[int64] }

func NewIntColumn(name string, n int) *IntColumn { return &IntColumn{newColumn[int64](name, n)} }

// IntColumnOf builds a fully-populated column from vals.
func IntColumnOf(name string, vals []int64) *IntColumn { return &IntColumn{columnOf(name, vals)} }
func (c *IntColumn) Kind() Kind                        { return KindInt }

type FloatColumn struct{ column[float64] }

func NewFloatColumn(name string, n int) *FloatColumn { return &FloatColumn{newColumn[float64](name, n)} }

// FloatColumnOf builds a fully-populated column from vals.
func FloatColumnOf(name string, vals []float64) *FloatColumn {
	return &FloatColumn{columnOf(name, vals)}
}
func (c *FloatColumn) Kind() Kind { return KindFloat }

type StringColumn struct{ column[string] }

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{newColumn[string](name, n)}
}

// StringColumnOf builds a fully-populated column from vals.
func StringColumnOf(name string, vals []string) *StringColumn {
	return &StringColumn{columnOf(name, vals)}
}
func (c *StringColumn) Kind() Kind { return KindString }

type TimeColumn struct{ column[time.Time] }

func NewTimeColumn(name string, n int) *TimeColumn { return &TimeColumn{newColumn[time.Time](name, n)} }
func (c *TimeColumn) Kind() Kind                   { return KindTime }

// Frame is a columnar container for tabular data. Frames share column storage
// when derived from one another (WithColumn, Select), so treat a frame handed
// to a transformation as read-only and derive new frames instead of writing
// into it.
type Frame struct {
	schema Schema
	cols   []Column
	index  map[string]int
	nrows  int
}

func NewFrame(s Schema) *Frame {
	f := &Frame{schema: s, cols: make([]Column, len(s.Columns)), index: make(map[string]int, len(s.Columns))}
	for i, cs := range s.Columns {
		f.cols[i] = emptyColumn(cs)
		f.index[cs.Name] = i
	}
	return f
}

func emptyColumn(cs ColumnSchema) Column {
	switch cs.Type {
	case KindBool:
		return NewBoolColumn(cs.Name, 0)
	case KindInt:
		return NewIntColumn(cs.Name, 0)
	case KindFloat:
		return NewFloatColumn(cs.Name, 0)
	case KindString:
		return NewStringColumn(cs.Name, 0)
	case KindTime:
		return NewTimeColumn(cs.Name, 0)
	}
	panic("dataset: invalid column kind")
}

func (f *Frame) Schema() Schema  { return f.schema }
func (f *Frame) Rows() int       { return f.nrows }
func (f *Frame) Cols() int       { return len(f.cols) }
func (f *Frame) Names() []string { return f.schema.Names() }

func (f *Frame) ColumnByName(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// AppendNullRow appends a row with all-null values.
func (f *Frame) AppendNullRow() {
	for _, c := range f.cols {
		c.AppendNull()
	}
	f.nrows++
}

// WithColumn returns a new frame with col added, replacing any existing column
// of the same name in place. Existing columns are shared, not copied; the
// receiver is left untouched.
func (f *Frame) WithColumn(col Column) (*Frame, error) {
	if col.Len() != f.nrows {
		return nil, fmt.Errorf("column %s has %d rows, frame has %d", col.Name(), col.Len(), f.nrows)
	}
	out := &Frame{nrows: f.nrows, index: make(map[string]int, len(f.cols)+1)}
	out.cols = append(out.cols, f.cols...)
	out.schema.Columns = append(out.schema.Columns, f.schema.Columns...)
	cs := ColumnSchema{Name: col.Name(), Type: col.Kind(), Nullable: true}
	if i, ok := f.index[col.Name()]; ok {
		out.cols[i] = col
		out.schema.Columns[i] = cs
	} else {
		out.cols = append(out.cols, col)
		out.schema.Columns = append(out.schema.Columns, cs)
	}
	for i, c := range out.schema.Columns {
		out.index[c.Name] = i
	}
	return out, nil
}

// Select returns a new frame projecting only the named columns, in the given
// order. Column storage is shared with the receiver.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{nrows: f.nrows, index: make(map[string]int, len(names))}
	for _, name := range names {
		i, ok := f.index[name]
		if !ok {
			return nil, fmt.Errorf("unknown column: %s", name)
		}
		out.index[name] = len(out.cols)
		out.cols = append(out.cols, f.cols[i])
		out.schema.Columns = append(out.schema.Columns, f.schema.Columns[i])
	}
	return out, nil
}

// SetCell sets a single cell value by column name (row must exist). A nil
// value nulls the cell. Numeric values are coerced between int and float.
func (f *Frame) SetCell(row int, name string, v any) error {
	i, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if v == nil {
		f.cols[i].SetNull(row)
		return nil
	}
	switch col := f.cols[i].(type) {
	case *BoolColumn:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s expects bool", name)
		}
		col.Set(row, b)
	case *IntColumn:
		switch t := v.(type) {
		case int:
			col.Set(row, int64(t))
		case int64:
			col.Set(row, t)
		case float64:
			col.Set(row, int64(t))
		default:
			return fmt.Errorf("column %s expects int/int64", name)
		}
	case *FloatColumn:
		switch t := v.(type) {
		case float32:
			col.Set(row, float64(t))
		case float64:
			col.Set(row, t)
		case int:
			col.Set(row, float64(t))
		case int64:
			col.Set(row, float64(t))
		default:
			return fmt.Errorf("column %s expects float64", name)
		}
	case *StringColumn:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string", name)
		}
		col.Set(row, s)
	case *TimeColumn:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s expects time.Time", name)
		}
		col.Set(row, t)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}
