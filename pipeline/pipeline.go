// Package pipeline evaluates chains of list combinators described as data.
//
// A Definition is a named sequence of steps, usually decoded from YAML:
//
//	name: scenario
//	steps:
//	  - op: zipWith
//	    fn: add
//	  - op: map
//	    fn: square
//	  - op: filter
//	    fn: even
//	  - op: reduce
//	    fn: add
//
// Functions are referenced by name and resolved through a Registry.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"fpe/lists"
)

// Step is a single combinator application.
type Step struct {
	Op string `yaml:"op"`
	Fn string `yaml:"fn,omitempty"`
	// N is the count for take and drop, and must be nil for every other op.
	N *int `yaml:"n,omitempty"`
	// With is the right-hand list for zipWith. When empty the current list
	// is zipped with itself.
	With []int `yaml:"with,omitempty"`
}

// Count returns a Step count for take and drop.
func Count(n int) *int {
	return &n
}

// Definition is a named sequence of steps.
type Definition struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type opSpec struct {
	kind     FuncKind
	terminal bool
	counted  bool
	zipped   bool
}

var ops = map[string]opSpec{
	"map":       {kind: UnaryFunc},
	"filter":    {kind: PredicateFunc},
	"zipWith":   {kind: BinaryFunc, zipped: true},
	"scan":      {kind: BinaryFunc},
	"take":      {kind: NoFunc, counted: true},
	"drop":      {kind: NoFunc, counted: true},
	"takeWhile": {kind: PredicateFunc},
	"dropWhile": {kind: PredicateFunc},
	"reverse":   {kind: NoFunc},
	"reduce":    {kind: BinaryFunc, terminal: true},
	"any":       {kind: PredicateFunc, terminal: true},
	"all":       {kind: PredicateFunc, terminal: true},
	"len":       {kind: NoFunc, terminal: true},
}

func (spec opSpec) checkParams(step Step) error {
	switch {
	case spec.counted && step.N == nil:
		return ParamError{Param: "n", Missing: true}
	case !spec.counted && step.N != nil:
		return ParamError{Param: "n"}
	case !spec.zipped && step.With != nil:
		return ParamError{Param: "with"}
	}
	return nil
}

// Ops returns the sorted names of every supported op.
func Ops() []string {
	return slices.Sorted(maps.Keys(ops))
}

// OpKind returns the function kind op expects, and whether op exists.
func OpKind(op string) (FuncKind, bool) {
	spec, ok := ops[op]
	return spec.kind, ok
}

// Parse decodes a YAML definition from r. Unknown fields are rejected.
func Parse(r io.Reader) (Definition, error) {
	var def Definition
	b, err := io.ReadAll(r)
	if err != nil {
		return def, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err = dec.Decode(&def)
	if errors.Is(err, io.EOF) {
		return def, InvalidDefinitionError{cause: ErrNoSteps}
	}
	if err != nil {
		return def, InvalidDefinitionError{cause: err}
	}
	return def, nil
}

// Scenario is the builtin demonstration pipeline: zip the input with itself
// by addition, square, keep the even values and sum them.
func Scenario() Definition {
	return Definition{
		Name: "scenario",
		Steps: []Step{
			{Op: "zipWith", Fn: "add"},
			{Op: "map", Fn: "square"},
			{Op: "filter", Fn: "even"},
			{Op: "reduce", Fn: "add"},
		},
	}
}

// ResultKind tells which field of a Result is set.
type ResultKind int

const (
	ListResult ResultKind = iota
	IntResult
	BoolResult
)

// Result is the outcome of running a pipeline: a list, unless the last step
// was a terminal op.
type Result struct {
	Kind ResultKind
	List lists.List[int]
	Int  int
	Bool bool
}

// Render formats r, using style for list results.
func (r Result) Render(style lists.Style) string {
	switch r.Kind {
	case IntResult:
		return strconv.Itoa(r.Int)
	case BoolResult:
		return strconv.FormatBool(r.Bool)
	default:
		return r.List.Render(style)
	}
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used to trace step execution.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRegistry sets the Registry used to resolve function names.
func WithRegistry(reg *Registry) Option {
	return func(r *Runner) {
		r.registry = reg
	}
}

// Runner validates and runs pipeline definitions.
type Runner struct {
	logger   *zap.Logger
	registry *Registry
}

// NewRunner returns a Runner using the builtin Registry and a no-op logger
// unless overridden by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:   zap.NewNop(),
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the Registry the runner resolves names with.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Validate checks that every op and function in def exists, that take and
// drop carry n while no other op does, that only zipWith carries with, and
// that a terminal op, if any, comes last. Errors are wrapped in a StepError.
func (r *Runner) Validate(def Definition) error {
	if len(def.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range def.Steps {
		spec, ok := ops[step.Op]
		if !ok {
			return StepError{Index: i, Op: step.Op, cause: UnknownOpError{Op: step.Op}}
		}
		if !r.registry.has(spec.kind, step.Fn) {
			return StepError{Index: i, Op: step.Op, cause: UnknownFuncError{Kind: spec.kind, Name: step.Fn}}
		}
		if err := spec.checkParams(step); err != nil {
			return StepError{Index: i, Op: step.Op, cause: err}
		}
		if spec.terminal && i != len(def.Steps)-1 {
			return StepError{Index: i, Op: step.Op, cause: ErrTerminalNotLast}
		}
	}
	return nil
}

// Run validates def and applies its steps to input in order.
// The context is checked before each step.
func (r *Runner) Run(ctx context.Context, def Definition, input lists.List[int]) (Result, error) {
	if err := r.Validate(def); err != nil {
		return Result{}, err
	}

	log := r.logger.With(zap.String("pipeline", def.Name))
	log.Debug("running pipeline", zap.Int("steps", len(def.Steps)), zap.Int("input_len", input.Len()))

	cur := input
	for i, step := range def.Steps {
		if err := ctx.Err(); err != nil {
			return Result{}, StepError{Index: i, Op: step.Op, cause: err}
		}

		res, err := r.apply(step, cur)
		if err != nil {
			log.Warn("pipeline step failed", zap.Int("step", i), zap.String("op", step.Op), zap.Error(err))
			return Result{}, StepError{Index: i, Op: step.Op, cause: err}
		}
		if res.Kind != ListResult {
			log.Debug("pipeline finished with scalar", zap.Int("step", i), zap.String("op", step.Op), zap.String("result", res.Render(lists.Bracket)))
			return res, nil
		}

		cur = res.List
		log.Debug("applied pipeline step", zap.Int("step", i), zap.String("op", step.Op), zap.String("fn", step.Fn), zap.Int("len", cur.Len()))
	}
	return Result{Kind: ListResult, List: cur}, nil
}

func (r *Runner) apply(step Step, l lists.List[int]) (Result, error) {
	reg := r.registry
	list := func(l lists.List[int]) (Result, error) {
		return Result{Kind: ListResult, List: l}, nil
	}

	switch step.Op {
	case "map":
		return list(l.Map(reg.unary[step.Fn]))
	case "filter":
		return list(l.Filter(reg.predicates[step.Fn]))
	case "zipWith":
		other := l
		if len(step.With) > 0 {
			other = lists.FromSlice(step.With)
		}
		return list(l.ZipWith(other, reg.binary[step.Fn]))
	case "scan":
		return list(l.Scan(reg.binary[step.Fn]))
	case "take":
		return list(l.Take(*step.N))
	case "drop":
		return list(l.Drop(*step.N))
	case "takeWhile":
		return list(l.TakeWhile(reg.predicates[step.Fn]))
	case "dropWhile":
		return list(l.DropWhile(reg.predicates[step.Fn]))
	case "reverse":
		return list(l.Reverse())
	case "reduce":
		v, err := l.Reduce(reg.binary[step.Fn])
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: IntResult, Int: v}, nil
	case "any":
		return Result{Kind: BoolResult, Bool: l.Any(reg.predicates[step.Fn])}, nil
	case "all":
		return Result{Kind: BoolResult, Bool: l.All(reg.predicates[step.Fn])}, nil
	case "len":
		return Result{Kind: IntResult, Int: l.Len()}, nil
	}
	return Result{}, fmt.Errorf("unhandled op %q: %w", step.Op, UnknownOpError{Op: step.Op})
}
