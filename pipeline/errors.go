package pipeline

import (
	"errors"
	"fmt"
)

// ErrTerminalNotLast is returned when reduce, any, all or len is followed by
// another step.
var ErrTerminalNotLast = errors.New("terminal op must be the last step")

// ErrNoSteps is returned for a definition without any step.
var ErrNoSteps = errors.New("pipeline has no steps")

// UnknownOpError occurs when a step names an op that does not exist.
type UnknownOpError struct {
	Op string
}

// Error implements the error interface.
func (e UnknownOpError) Error() string {
	return fmt.Sprintf("unknown op: %q", e.Op)
}

// UnknownFuncError occurs when a step names a function the Registry does not
// hold for the kind its op expects.
type UnknownFuncError struct {
	Kind FuncKind
	Name string
}

// Error implements the error interface.
func (e UnknownFuncError) Error() string {
	if e.Kind == NoFunc {
		return fmt.Sprintf("op takes no function, got %q", e.Name)
	}
	return fmt.Sprintf("unknown %s function: %q", e.Kind, e.Name)
}

// ParamError occurs when a step is missing a parameter its op requires, or
// sets one its op does not take.
type ParamError struct {
	Param   string
	Missing bool
}

// Error implements the error interface.
func (e ParamError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing parameter %q", e.Param)
	}
	return fmt.Sprintf("op does not take parameter %q", e.Param)
}

// InvalidDefinitionError occurs if a pipeline definition cannot be decoded.
type InvalidDefinitionError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid pipeline definition: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDefinitionError) Unwrap() error {
	return e.cause
}

// StepError reports which step of a pipeline failed.
type StepError struct {
	Index int
	Op    string
	cause error
}

// Error implements the error interface.
func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Index, e.Op, e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e StepError) Unwrap() error {
	return e.cause
}
