package transform

import "fmt"

// ConfigError reports an invalid transformation setup, detected at
// construction time before anything executes.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "transform config: " + e.Reason }

// BindingError reports a component used before being bound to its feature, or
// an attempt to re-bind it to a different one. Either way it is a bug in
// pipeline construction, not a data error.
type BindingError struct {
	Op     string
	Reason string
}

func (e *BindingError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("transform: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("transform: %s called on unbound component", e.Op)
}

// ExecError wraps a failure raised by an external transformer function,
// attributing it to the feature and transformer it came from.
type ExecError struct {
	Feature     string
	Transformer string
	Err         error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("transform: feature %q (transformer %s): %v", e.Feature, e.Transformer, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
