// Package profile summarizes a derived feature frame per column: numeric
// ranges, bool counts, and top string values. Handy for eyeballing whether a
// feature set produced sane output.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

type NumStats struct {
	Count int     `json:"count"`
	Nulls int     `json:"nulls"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

type BoolStats struct {
	Count int `json:"count"`
	Nulls int `json:"nulls"`
	True  int `json:"true"`
	False int `json:"false"`
}

type StringStats struct {
	Count int            `json:"count"`
	Nulls int            `json:"nulls"`
	Top   map[string]int `json:"top,omitempty"`
}

type ColumnProfile struct {
	Name string       `json:"name"`
	Kind string       `json:"kind"`
	Num  *NumStats    `json:"num,omitempty"`
	Bool *BoolStats   `json:"bool,omitempty"`
	Str  *StringStats `json:"str,omitempty"`
}

// Summarize profiles every column of f. topK bounds how many distinct string
// values are kept per column; 0 keeps them all.
func Summarize(f *dataset.Frame, topK int) []ColumnProfile {
	out := make([]ColumnProfile, 0, f.Cols())
	for _, cs := range f.Schema().Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type.String()}
		col, _ := f.ColumnByName(cs.Name)
		switch c := col.(type) {
		case *dataset.FloatColumn:
			cp.Num = numStats(c.Len(), func(i int) (float64, bool) { return c.Get(i) })
		case *dataset.IntColumn:
			cp.Num = numStats(c.Len(), func(i int) (float64, bool) {
				v, ok := c.Get(i)
				return float64(v), ok
			})
		case *dataset.BoolColumn:
			st := &BoolStats{}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				if v {
					st.True++
				} else {
					st.False++
				}
			}
			cp.Bool = st
		case *dataset.StringColumn:
			st := &StringStats{Top: map[string]int{}}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				st.Top[v]++
			}
			trimTop(st, topK)
			cp.Str = st
		case *dataset.TimeColumn:
			st := &StringStats{Top: map[string]int{}}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					st.Nulls++
					continue
				}
				st.Count++
				st.Top[v.String()]++
			}
			trimTop(st, topK)
			cp.Str = st
		}
		out = append(out, cp)
	}
	return out
}

func numStats(n int, get func(int) (float64, bool)) *NumStats {
	st := &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for i := 0; i < n; i++ {
		v, ok := get(i)
		if !ok {
			st.Nulls++
			continue
		}
		st.Count++
		sum += v
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	if st.Count > 0 {
		st.Mean = sum / float64(st.Count)
	} else {
		st.Min, st.Max = 0, 0
	}
	return st
}

func trimTop(st *StringStats, topK int) {
	if topK <= 0 || len(st.Top) <= topK {
		return
	}
	type kv struct {
		k string
		v int
	}
	arr := make([]kv, 0, len(st.Top))
	for k, v := range st.Top {
		arr = append(arr, kv{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].v != arr[j].v {
			return arr[i].v > arr[j].v
		}
		return arr[i].k < arr[j].k
	})
	kept := make(map[string]int, topK)
	for _, e := range arr[:topK] {
		kept[e.k] = e.v
	}
	st.Top = kept
}

// Report renders the profiles as a plain-text summary.
func Report(profiles []ColumnProfile) string {
	var b strings.Builder
	b.WriteString("Column Summary\n")
	for _, cp := range profiles {
		fmt.Fprintf(&b, "- %s (%s): ", cp.Name, cp.Kind)
		switch {
		case cp.Num != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n",
				cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, cp.Num.Mean)
		case cp.Bool != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d true=%d false=%d\n",
				cp.Bool.Count, cp.Bool.Nulls, cp.Bool.True, cp.Bool.False)
		case cp.Str != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d distinct<=%d\n",
				cp.Str.Count, cp.Str.Nulls, len(cp.Str.Top))
		default:
			b.WriteString("no data\n")
		}
	}
	return b.String()
}
