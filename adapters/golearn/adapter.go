// Package golearn converts derived feature frames into
// github.com/sjwhitworth/golearn instances, so engineered features can feed
// model training directly.
package golearn

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sjwhitworth/golearn/base"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

// ToInstances converts a frame into golearn DenseInstances. Numeric columns
// become float attributes, everything else categorical. class names the
// column used as the class attribute; pass "" to take the last column.
func ToInstances(f *dataset.Frame, class string) (*base.DenseInstances, error) {
	cols := f.Schema().Columns
	if len(cols) == 0 {
		return nil, fmt.Errorf("frame has no columns")
	}
	if class == "" {
		class = cols[len(cols)-1].Name
	}
	if !f.HasColumn(class) {
		return nil, fmt.Errorf("class column %q not in frame", class)
	}

	inst := base.NewDenseInstances()
	attrs := make([]base.Attribute, len(cols))
	specs := make([]base.AttributeSpec, len(cols))
	for i, cs := range cols {
		switch cs.Type {
		case dataset.KindFloat, dataset.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
		specs[i] = inst.AddAttribute(attrs[i])
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for i, cs := range cols {
			col, _ := f.ColumnByName(cs.Name)
			switch c := col.(type) {
			case *dataset.FloatColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.PackFloatToBytes(v))
				}
			case *dataset.IntColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.PackFloatToBytes(float64(v)))
				}
			case *dataset.StringColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.Attribute.GetSysValFromString(attrs[i], v))
				}
			case *dataset.BoolColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.Attribute.GetSysValFromString(attrs[i], strconv.FormatBool(v)))
				}
			case *dataset.TimeColumn:
				if v, ok := c.Get(r); ok {
					inst.Set(specs[i], r, base.Attribute.GetSysValFromString(attrs[i], v.Format(time.RFC3339)))
				}
			}
		}
	}

	for i, cs := range cols {
		if cs.Name == class {
			if err := inst.AddClassAttribute(attrs[i]); err != nil {
				return nil, err
			}
		}
	}
	return inst, nil
}
