// Package feature declares features: named, typed output columns derived on a
// tabular frame by a bound transformation component.
package feature

import (
	"context"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/transform"
)

// Feature is the declarative descriptor of one derived column: its name,
// declared type, and the transformation that computes it. The feature owns
// its component; the component keeps only a backreference to the feature.
type Feature struct {
	name        string
	description string
	dtype       dataset.Kind
	comp        transform.Component
}

// New declares a feature and binds comp to it. The name must be non-empty and
// comp non-nil; binding a component already owned by another feature fails
// with *transform.BindingError.
func New(name, description string, dtype dataset.Kind, comp transform.Component) (*Feature, error) {
	if name == "" {
		return nil, &transform.ConfigError{Reason: "feature name must not be empty"}
	}
	if comp == nil {
		return nil, &transform.ConfigError{Reason: "feature " + name + " declared without a transformation"}
	}
	f := &Feature{name: name, description: description, dtype: dtype, comp: comp}
	if err := comp.Bind(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Feature) Name() string        { return f.name }
func (f *Feature) Description() string { return f.description }
func (f *Feature) Kind() dataset.Kind  { return f.dtype }

// Transformation returns the owned component.
func (f *Feature) Transformation() transform.Component { return f.comp }

// OutputColumns lists the column name(s) the feature's transformation is
// responsible for producing.
func (f *Feature) OutputColumns() []string { return []string{f.name} }

// Transform derives the feature's column(s) on ds via the owned component.
func (f *Feature) Transform(ctx context.Context, ds *dataset.Frame) (*dataset.Frame, error) {
	return f.comp.Transform(ctx, ds)
}
