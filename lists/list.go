package lists

import (
	"fmt"
	"iter"
	"strings"
)

// ErrEmptyList is returned when an element is requested from an empty list.
var ErrEmptyList = fmt.Errorf("empty list")

type node[T any] struct {
	val  T
	next *node[T]
	// size is the length of the list headed by this node.
	size int
}

// List is an immutable singly linked list.
//
// The zero value is the empty list. No method modifies the receiver: every
// operation that "changes" a list returns a new one, sharing unchanged tails
// with its input where it can. A List is therefore safe to pass by value and
// to share between goroutines.
type List[T any] struct {
	head *node[T]
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds a list holding values in the given order.
func Of[T any](values ...T) List[T] {
	return FromSlice(values)
}

// FromSlice builds a list holding the elements of s in order.
// The slice is copied, later writes to s are not observed by the list.
func FromSlice[T any](s []T) List[T] {
	return build(s, nil)
}

// FromSeq drains seq into a new list.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	var vals []T
	for v := range seq {
		vals = append(vals, v)
	}
	return build(vals, nil)
}

// Range returns the integers from start (inclusive) to end (exclusive) by step.
// A zero step yields the empty list.
func Range(start, end, step int) List[int] {
	if step == 0 {
		return List[int]{}
	}
	var vals []int
	for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
		vals = append(vals, i)
		// The distance to end, taken unsigned, cannot overflow; stop before
		// i += step would wrap past the int bounds.
		if step > 0 && uint(end)-uint(i) <= uint(step) || step < 0 && uint(i)-uint(end) <= -uint(step) {
			break
		}
	}
	return build(vals, nil)
}

// build conses vals onto tail back to front, so vals[0] becomes the head.
func build[T any](vals []T, tail *node[T]) List[T] {
	cur := tail
	for i := len(vals) - 1; i >= 0; i-- {
		cur = cons(vals[i], cur)
	}
	return List[T]{head: cur}
}

func cons[T any](val T, next *node[T]) *node[T] {
	size := 1
	if next != nil {
		size += next.size
	}
	return &node[T]{val: val, next: next, size: size}
}

// Prepend returns a new list with item in front of l. It runs in O(1) and
// shares every node of l.
func Prepend[T any](item T, l List[T]) List[T] {
	return List[T]{head: cons(item, l.head)}
}

// Prepend returns a new list with item in front of l.
func (l List[T]) Prepend(item T) List[T] {
	return Prepend(item, l)
}

// IsEmpty reports whether l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements in l in O(1).
func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.size
}

// Head returns the first element of l, or ErrEmptyList if l is empty.
func (l List[T]) Head() (val T, err error) {
	if l.head == nil {
		return val, ErrEmptyList
	}
	return l.head.val, nil
}

// Tail returns every element of l except the first. The tail of an empty or
// single-element list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Values returns an iterator over the elements of l, head first.
func (l List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Enumerate returns an iterator over (index, element) pairs of l.
func (l List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(index, n.val) {
				return
			}
			index++
		}
	}
}

// ToSlice copies the elements of l into a new slice.
func (l List[T]) ToSlice() []T {
	res := make([]T, 0, l.Len())
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.val)
	}
	return res
}

// Reverse returns the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var cur *node[T]
	for n := l.head; n != nil; n = n.next {
		cur = cons(n.val, cur)
	}
	return List[T]{head: cur}
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a List[T], b List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.head, b.head
	for x != nil {
		if !eq(x.val, y.val) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}

// Style selects how a list is rendered as text.
type Style int

const (
	// Bracket renders "[1, 2, 3]".
	Bracket Style = iota
	// Arrow renders "1 -> 2 -> 3".
	Arrow
)

func (s Style) String() string {
	switch s {
	case Bracket:
		return "bracket"
	case Arrow:
		return "arrow"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ErrUnknownStyle is returned by ParseStyle for names it does not recognize.
var ErrUnknownStyle = fmt.Errorf("unknown display style")

// ParseStyle maps "bracket" or "arrow" to a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bracket":
		return Bracket, nil
	case "arrow":
		return Arrow, nil
	}
	return Bracket, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Render renders l in the given style. The empty list renders as "[]"
// regardless of style.
func (l List[T]) Render(style Style) string {
	if l.head == nil {
		return "[]"
	}
	sep := ", "
	if style == Arrow {
		sep = " -> "
	}

	strBuilder := strings.Builder{}
	if style != Arrow {
		strBuilder.WriteString("[")
	}
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&strBuilder, "%v", n.val)
		if n.next != nil {
			strBuilder.WriteString(sep)
		}
	}
	if style != Arrow {
		strBuilder.WriteString("]")
	}
	return strBuilder.String()
}

// String renders l as "[a, b, c]".
func (l List[T]) String() string {
	return l.Render(Bracket)
}

// Arrow renders l as "a -> b -> c".
func (l List[T]) Arrow() string {
	return l.Render(Arrow)
}
