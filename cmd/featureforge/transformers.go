package main

import (
	"context"
	"fmt"
	"math"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/transform"
)

// The transformers shipped with the CLI. Each one is an ordinary plug-in
// function; projects with their own derivations register more the same way.
func init() {
	transform.Register("ratio", arithmetic(func(a, b float64) (float64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}))
	transform.Register("sum", arithmetic(func(a, b float64) (float64, bool) { return a + b, true }))
	transform.Register("diff", arithmetic(func(a, b float64) (float64, bool) { return a - b, true }))
	transform.Register("product", arithmetic(func(a, b float64) (float64, bool) { return a * b, true }))
	transform.Register("scale", scaleTransformer)
	transform.Register("log", logTransformer)
	transform.Register("fill_nulls", fillNullsTransformer)
}

// numericGetter resolves the column referenced by the named argument into a
// float accessor, accepting both float and int columns.
func numericGetter(ds *dataset.Frame, args transform.Args, key string) (func(int) (float64, bool), error) {
	name, ok := args.Column(key)
	if !ok {
		return nil, fmt.Errorf("missing column argument %q", key)
	}
	col, ok := ds.ColumnByName(name)
	if !ok {
		return nil, fmt.Errorf("input has no column %q", name)
	}
	switch c := col.(type) {
	case *dataset.FloatColumn:
		return c.Get, nil
	case *dataset.IntColumn:
		return func(i int) (float64, bool) {
			v, ok := c.Get(i)
			return float64(v), ok
		}, nil
	}
	return nil, fmt.Errorf("column %q is not numeric", name)
}

// arithmetic builds a transformer deriving op(left, right) row by row. Rows
// where either side is null, or where op reports not-ok, come out null.
func arithmetic(op func(a, b float64) (float64, bool)) transform.Func {
	return func(ctx context.Context, ds *dataset.Frame, parent transform.Parent, args transform.Args) (*dataset.Frame, error) {
		left, err := numericGetter(ds, args, "left")
		if err != nil {
			return nil, err
		}
		right, err := numericGetter(ds, args, "right")
		if err != nil {
			return nil, err
		}
		out := dataset.NewFloatColumn(parent.OutputColumns()[0], ds.Rows())
		for i := 0; i < ds.Rows(); i++ {
			a, okA := left(i)
			b, okB := right(i)
			if !okA || !okB {
				continue
			}
			if v, ok := op(a, b); ok {
				out.Set(i, v)
			}
		}
		return ds.WithColumn(out)
	}
}

func scaleTransformer(ctx context.Context, ds *dataset.Frame, parent transform.Parent, args transform.Args) (*dataset.Frame, error) {
	get, err := numericGetter(ds, args, "column")
	if err != nil {
		return nil, err
	}
	factor, ok := args.Float("factor")
	if !ok {
		return nil, fmt.Errorf("missing numeric argument %q", "factor")
	}
	out := dataset.NewFloatColumn(parent.OutputColumns()[0], ds.Rows())
	for i := 0; i < ds.Rows(); i++ {
		if v, set := get(i); set {
			out.Set(i, v*factor)
		}
	}
	return ds.WithColumn(out)
}

func logTransformer(ctx context.Context, ds *dataset.Frame, parent transform.Parent, args transform.Args) (*dataset.Frame, error) {
	get, err := numericGetter(ds, args, "column")
	if err != nil {
		return nil, err
	}
	out := dataset.NewFloatColumn(parent.OutputColumns()[0], ds.Rows())
	for i := 0; i < ds.Rows(); i++ {
		if v, set := get(i); set && v > 0 {
			out.Set(i, math.Log(v))
		}
	}
	return ds.WithColumn(out)
}

func fillNullsTransformer(ctx context.Context, ds *dataset.Frame, parent transform.Parent, args transform.Args) (*dataset.Frame, error) {
	get, err := numericGetter(ds, args, "column")
	if err != nil {
		return nil, err
	}
	fill, ok := args.Float("value")
	if !ok {
		return nil, fmt.Errorf("missing numeric argument %q", "value")
	}
	out := dataset.NewFloatColumn(parent.OutputColumns()[0], ds.Rows())
	for i := 0; i < ds.Rows(); i++ {
		if v, set := get(i); set {
			out.Set(i, v)
		} else {
			out.Set(i, fill)
		}
	}
	return ds.WithColumn(out)
}
