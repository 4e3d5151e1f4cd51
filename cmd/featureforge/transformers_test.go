package main

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/feature"
	"github.com/wdm0006/featureforge/pkg/transform"
)

func derive(t *testing.T, name, transformer string, ds *dataset.Frame, args ...transform.Arg) (*dataset.Frame, error) {
	t.Helper()
	fn, ok := transform.Lookup(transformer)
	require.True(t, ok, "transformer %s not registered", transformer)
	comp, err := transform.NewCustom(fn, args...)
	require.NoError(t, err)
	f, err := feature.New(name, "", dataset.KindFloat, comp)
	require.NoError(t, err)
	return f.Transform(context.Background(), ds)
}

func numericFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	s := dataset.Schema{Columns: []dataset.ColumnSchema{
		{Name: "a", Type: dataset.KindFloat, Nullable: true},
		{Name: "b", Type: dataset.KindInt, Nullable: true},
	}}
	f := dataset.NewFrame(s)
	for i := 0; i < 4; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "a", 10.0)
	_ = f.SetCell(1, "a", 4.0)
	_ = f.SetCell(2, "a", -1.0)
	// row 3 a null
	_ = f.SetCell(0, "b", int64(2))
	_ = f.SetCell(1, "b", int64(0))
	_ = f.SetCell(2, "b", int64(5))
	_ = f.SetCell(3, "b", int64(5))
	return f
}

func floatAt(t *testing.T, f *dataset.Frame, name string, row int) (float64, bool) {
	t.Helper()
	col, ok := f.ColumnByName(name)
	require.True(t, ok)
	return col.(*dataset.FloatColumn).Get(row)
}

func TestRatio(t *testing.T) {
	out, err := derive(t, "r", "ratio", numericFrame(t),
		transform.Arg{Name: "left", Value: transform.Column("a")},
		transform.Arg{Name: "right", Value: transform.Column("b")},
	)
	require.NoError(t, err)

	v, ok := floatAt(t, out, "r", 0)
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	// division by zero and null operands come out null
	_, ok = floatAt(t, out, "r", 1)
	assert.False(t, ok)
	_, ok = floatAt(t, out, "r", 3)
	assert.False(t, ok)
}

func TestSumAndDiffAndProduct(t *testing.T) {
	f := numericFrame(t)
	cases := []struct {
		transformer string
		want        float64
	}{
		{"sum", 12}, {"diff", 8}, {"product", 20},
	}
	for _, c := range cases {
		out, err := derive(t, "v", c.transformer, f,
			transform.Arg{Name: "left", Value: transform.Column("a")},
			transform.Arg{Name: "right", Value: transform.Column("b")},
		)
		require.NoError(t, err)
		v, ok := floatAt(t, out, "v", 0)
		require.True(t, ok)
		assert.Equal(t, c.want, v, c.transformer)
	}
}

func TestLogSkipsNonPositive(t *testing.T) {
	out, err := derive(t, "lg", "log", numericFrame(t),
		transform.Arg{Name: "column", Value: transform.Column("a")},
	)
	require.NoError(t, err)

	v, ok := floatAt(t, out, "lg", 0)
	require.True(t, ok)
	assert.InDelta(t, math.Log(10), v, 1e-12)

	_, ok = floatAt(t, out, "lg", 2)
	assert.False(t, ok)
}

func TestFillNulls(t *testing.T) {
	out, err := derive(t, "af", "fill_nulls", numericFrame(t),
		transform.Arg{Name: "column", Value: transform.Column("a")},
		transform.Arg{Name: "value", Value: transform.Float(-1)},
	)
	require.NoError(t, err)

	v, ok := floatAt(t, out, "af", 3)
	require.True(t, ok)
	assert.Equal(t, -1.0, v)
	v, _ = floatAt(t, out, "af", 0)
	assert.Equal(t, 10.0, v)
}

func TestMissingArgumentIsExecError(t *testing.T) {
	_, err := derive(t, "r", "ratio", numericFrame(t),
		transform.Arg{Name: "left", Value: transform.Column("a")},
	)
	var execErr *transform.ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "r", execErr.Feature)

	// a non-numeric column reference fails the same way
	_, err = derive(t, "r2", "ratio", numericFrame(t),
		transform.Arg{Name: "left", Value: transform.Column("a")},
		transform.Arg{Name: "right", Value: transform.Column("missing")},
	)
	require.True(t, errors.As(err, &execErr))
}
