// Package transform defines the contract every transformation stage of a
// feature pipeline implements, and the custom adapter that lets externally
// authored functions participate in it.
package transform

import (
	"context"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

// Parent is the feature a component computes output for, seen from the
// component side. It is a plain non-owning reference: the feature owns the
// component, never the other way around.
type Parent interface {
	Name() string
	OutputColumns() []string
}

// Component is a transformation stage bound to a single feature. A component
// must be bound before OutputColumns or Transform is called; using it unbound
// fails with *BindingError.
type Component interface {
	// Bind attaches the owning feature. Binding twice to the same parent is
	// a no-op; binding to a different parent fails with *BindingError.
	Bind(parent Parent) error
	Parent() Parent

	// OutputColumns names the columns this component produces. It is derived
	// from the bound parent alone and is stable across calls.
	OutputColumns() ([]string, error)

	// Transform derives the output column(s) on ds and returns the resulting
	// frame. The input frame must not be mutated in place; implementations
	// derive a new frame (dataset.Frame.WithColumn) instead.
	Transform(ctx context.Context, ds *dataset.Frame) (*dataset.Frame, error)
}

// Base carries the parent binding shared by component implementations. Bind
// must complete before any concurrent Transform calls; after that the binding
// is read-only, so no locking is done here.
type Base struct {
	parent Parent
}

func (b *Base) Bind(parent Parent) error {
	if parent == nil {
		return &BindingError{Op: "Bind", Reason: "nil parent"}
	}
	if b.parent != nil && b.parent != parent {
		return &BindingError{Op: "Bind", Reason: "component already bound to feature " + b.parent.Name()}
	}
	b.parent = parent
	return nil
}

func (b *Base) Parent() Parent { return b.parent }

// require returns the bound parent or a *BindingError naming the operation.
func (b *Base) require(op string) (Parent, error) {
	if b.parent == nil {
		return nil, &BindingError{Op: op}
	}
	return b.parent, nil
}
