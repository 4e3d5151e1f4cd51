package transform

import (
	"context"
	"fmt"
	"reflect"
	"runtime"

	"github.com/wdm0006/featureforge/pkg/dataset"
)

// Func is the signature an external transformer must satisfy to plug into a
// pipeline through Custom. It receives the input frame, the feature it is
// computing for, and the arguments fixed when the Custom was built, and
// returns the derived frame. The produced column is expected to be named
// after parent.Name().
type Func func(ctx context.Context, ds *dataset.Frame, parent Parent, args Args) (*dataset.Frame, error)

// Custom adapts an externally authored transformer function to the Component
// contract. It is a forwarding shim: args are captured at construction and
// replayed on every call, and the function's result is returned unchanged
// unless RequireOutput is enabled.
type Custom struct {
	Base
	fn            Func
	args          Args
	requireOutput bool
}

// NewCustom builds a Custom around fn. fn must be non-nil; args (optional)
// are copied and can not be changed afterwards.
func NewCustom(fn Func, args ...Arg) (*Custom, error) {
	if fn == nil {
		return nil, &ConfigError{Reason: "a transformer function must be provided"}
	}
	return &Custom{fn: fn, args: Args(args).clone()}, nil
}

// RequireOutput makes Transform verify that the function actually produced
// every promised output column, failing with *ExecError when one is missing.
// The default is permissive: the result is trusted as-is.
func (c *Custom) RequireOutput() *Custom {
	c.requireOutput = true
	return c
}

// Args returns a copy of the captured arguments.
func (c *Custom) Args() Args { return c.args.clone() }

// OutputColumns is always the single column named after the bound feature.
func (c *Custom) OutputColumns() ([]string, error) {
	parent, err := c.require("OutputColumns")
	if err != nil {
		return nil, err
	}
	return []string{parent.Name()}, nil
}

func (c *Custom) Transform(ctx context.Context, ds *dataset.Frame) (out *dataset.Frame, err error) {
	parent, err := c.require("Transform")
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, c.execError(parent, fmt.Errorf("panic: %v", r))
		}
	}()
	out, err = c.fn(ctx, ds, parent, c.args.clone())
	if err != nil {
		return nil, c.execError(parent, err)
	}
	if out == nil {
		return nil, c.execError(parent, fmt.Errorf("transformer returned no frame"))
	}
	if c.requireOutput {
		for _, name := range parent.OutputColumns() {
			if !out.HasColumn(name) {
				return nil, c.execError(parent, fmt.Errorf("promised output column %q was not produced", name))
			}
		}
	}
	return out, nil
}

func (c *Custom) execError(parent Parent, cause error) error {
	return &ExecError{Feature: parent.Name(), Transformer: funcName(c.fn), Err: cause}
}

func funcName(fn Func) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return "unknown"
}
