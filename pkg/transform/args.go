package transform

// ValueKind tags the type carried by a Value.
type ValueKind int

const (
	ValueInvalid ValueKind = iota
	ValueString
	ValueInt
	ValueFloat
	ValueBool
	ValueColumn // a reference to a column of the input frame, by name
)

// Value is a tagged constant passed to a transformer function. Values are
// comparable, so whole argument lists can be checked for equality in tests.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

func String(v string) Value  { return Value{kind: ValueString, s: v} }
func Int(v int64) Value      { return Value{kind: ValueInt, i: v} }
func Float(v float64) Value  { return Value{kind: ValueFloat, f: v} }
func Bool(v bool) Value      { return Value{kind: ValueBool, b: v} }
func Column(name string) Value { return Value{kind: ValueColumn, s: name} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Str() string     { return v.s }
func (v Value) Int() int64      { return v.i }
func (v Value) Float() float64  { return v.f }
func (v Value) Bool() bool      { return v.b }

// Arg is a single named argument.
type Arg struct {
	Name  string
	Value Value
}

// Args is an ordered list of named arguments captured when a custom
// transformation is built and replayed unchanged on every invocation.
type Args []Arg

func (a Args) Get(name string) (Value, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return Value{}, false
}

// Column returns the column name referenced by the named argument. The second
// return is false if the argument is missing or is not a column reference.
func (a Args) Column(name string) (string, bool) {
	v, ok := a.Get(name)
	if !ok || v.kind != ValueColumn {
		return "", false
	}
	return v.s, true
}

func (a Args) String(name string) (string, bool) {
	v, ok := a.Get(name)
	if !ok || v.kind != ValueString {
		return "", false
	}
	return v.s, true
}

func (a Args) Int(name string) (int64, bool) {
	v, ok := a.Get(name)
	if !ok || v.kind != ValueInt {
		return 0, false
	}
	return v.i, true
}

func (a Args) Float(name string) (float64, bool) {
	v, ok := a.Get(name)
	if !ok {
		return 0, false
	}
	switch v.kind {
	case ValueFloat:
		return v.f, true
	case ValueInt:
		return float64(v.i), true
	}
	return 0, false
}

func (a Args) Bool(name string) (bool, bool) {
	v, ok := a.Get(name)
	if !ok || v.kind != ValueBool {
		return false, false
	}
	return v.b, true
}

func (a Args) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

func (a Args) clone() Args {
	if len(a) == 0 {
		return nil
	}
	out := make(Args, len(a))
	copy(out, a)
	return out
}
