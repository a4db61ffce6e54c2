package pipeline

import (
	"fmt"
	"maps"
	"slices"
)

// FuncKind tells which shape of function an op expects.
type FuncKind int

const (
	NoFunc FuncKind = iota
	UnaryFunc
	PredicateFunc
	BinaryFunc
)

func (k FuncKind) String() string {
	switch k {
	case NoFunc:
		return "none"
	case UnaryFunc:
		return "unary"
	case PredicateFunc:
		return "predicate"
	case BinaryFunc:
		return "binary"
	default:
		return fmt.Sprintf("FuncKind(%d)", int(k))
	}
}

// Registry resolves the function names used in pipeline steps.
// It is not safe for concurrent registration; populate it before running.
type Registry struct {
	unary      map[string]func(int) int
	predicates map[string]func(int) bool
	binary     map[string]func(int, int) int
}

// NewRegistry returns a Registry preloaded with the builtin functions.
func NewRegistry() *Registry {
	r := &Registry{
		unary:      make(map[string]func(int) int),
		predicates: make(map[string]func(int) bool),
		binary:     make(map[string]func(int, int) int),
	}

	r.Unary("identity", func(x int) int { return x })
	r.Unary("double", func(x int) int { return x * 2 })
	r.Unary("square", func(x int) int { return x * x })
	r.Unary("negate", func(x int) int { return -x })
	r.Unary("inc", func(x int) int { return x + 1 })
	r.Unary("dec", func(x int) int { return x - 1 })
	r.Unary("abs", func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	})

	r.Predicate("even", func(x int) bool { return x%2 == 0 })
	r.Predicate("odd", func(x int) bool { return x%2 != 0 })
	r.Predicate("positive", func(x int) bool { return x > 0 })
	r.Predicate("negative", func(x int) bool { return x < 0 })
	r.Predicate("zero", func(x int) bool { return x == 0 })
	r.Predicate("nonzero", func(x int) bool { return x != 0 })

	r.Binary("add", func(a, b int) int { return a + b })
	r.Binary("sub", func(a, b int) int { return a - b })
	r.Binary("mul", func(a, b int) int { return a * b })
	r.Binary("max", func(a, b int) int { return max(a, b) })
	r.Binary("min", func(a, b int) int { return min(a, b) })

	return r
}

// Unary registers f under name, replacing any previous unary function of that name.
func (r *Registry) Unary(name string, f func(int) int) {
	r.unary[name] = f
}

// Predicate registers f under name.
func (r *Registry) Predicate(name string, f func(int) bool) {
	r.predicates[name] = f
}

// Binary registers f under name.
func (r *Registry) Binary(name string, f func(int, int) int) {
	r.binary[name] = f
}

// Names returns the sorted names registered for kind.
func (r *Registry) Names(kind FuncKind) []string {
	switch kind {
	case UnaryFunc:
		return slices.Sorted(maps.Keys(r.unary))
	case PredicateFunc:
		return slices.Sorted(maps.Keys(r.predicates))
	case BinaryFunc:
		return slices.Sorted(maps.Keys(r.binary))
	default:
		return nil
	}
}

func (r *Registry) has(kind FuncKind, name string) bool {
	var ok bool
	switch kind {
	case UnaryFunc:
		_, ok = r.unary[name]
	case PredicateFunc:
		_, ok = r.predicates[name]
	case BinaryFunc:
		_, ok = r.binary[name]
	case NoFunc:
		ok = name == ""
	}
	return ok
}
