package lists

// All traversals below are loops rather than recursion, so the goroutine
// stack stays flat no matter how long the list is. Results are collected
// into a slice and consed back to front by build.

// Map applies transform to each element of l, preserving length and order.
func Map[T, R any](l List[T], transform func(T) R) List[R] {
	if l.head == nil {
		return List[R]{}
	}
	res := make([]R, 0, l.head.size)
	for n := l.head; n != nil; n = n.next {
		res = append(res, transform(n.val))
	}
	return build(res, nil)
}

// Filter returns the elements of l that satisfy predicate, in order.
// If every element satisfies it, l itself is returned.
func Filter[T any](l List[T], predicate func(T) bool) List[T] {
	if l.head == nil {
		return l
	}
	res := make([]T, 0, l.head.size/2)
	for n := l.head; n != nil; n = n.next {
		if predicate(n.val) {
			res = append(res, n.val)
		}
	}
	if len(res) == l.head.size {
		return l
	}
	return build(res, nil)
}

// Reduce folds l from the right: reducer(x1, reducer(x2, ... reducer(xn-1, xn))).
// A single-element list reduces to that element without calling reducer.
// There is no identity element, so an empty list yields ErrEmptyList.
func Reduce[T any](l List[T], reducer func(T, T) T) (acc T, err error) {
	if l.head == nil {
		return acc, ErrEmptyList
	}
	vals := l.ToSlice()
	acc = vals[len(vals)-1]
	for i := len(vals) - 2; i >= 0; i-- {
		acc = reducer(vals[i], acc)
	}
	return acc, nil
}

// Fold folds l from the left starting at initial. Unlike Reduce it is total:
// the empty list folds to initial.
func Fold[T, R any](l List[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for n := l.head; n != nil; n = n.next {
		acc = reducer(acc, n.val)
	}
	return acc
}

// Any reports whether some element of l satisfies predicate.
// It stops at the first match and is false for the empty list.
func Any[T any](l List[T], predicate func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if predicate(n.val) {
			return true
		}
	}
	return false
}

// All reports whether every element of l satisfies predicate.
// It stops at the first failure and is true for the empty list.
func All[T any](l List[T], predicate func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if !predicate(n.val) {
			return false
		}
	}
	return true
}

// ZipWith combines l1 and l2 pairwise. The result is as long as the shorter
// input; surplus elements of the longer one are ignored.
func ZipWith[T1, T2, R any](l1 List[T1], l2 List[T2], combine func(T1, T2) R) List[R] {
	size := min(l1.Len(), l2.Len())
	if size == 0 {
		return List[R]{}
	}
	res := make([]R, 0, size)
	a, b := l1.head, l2.head
	for a != nil && b != nil {
		res = append(res, combine(a.val, b.val))
		a, b = a.next, b.next
	}
	return build(res, nil)
}

// Scan returns the running accumulation of l from left to right:
// the first element is kept as is and each later output is
// combine(previous output, current element). Scan(add, [1 2 3 4]) is [1 3 6 10].
func Scan[T any](l List[T], combine func(T, T) T) List[T] {
	if l.head == nil {
		return l
	}
	res := make([]T, 0, l.head.size)
	acc := l.head.val
	res = append(res, acc)
	for n := l.head.next; n != nil; n = n.next {
		acc = combine(acc, n.val)
		res = append(res, acc)
	}
	return build(res, nil)
}

// Take returns the first n elements of l. A non-positive n yields the empty
// list; an n past the end yields l itself.
func Take[T any](l List[T], n int) List[T] {
	if n <= 0 {
		return List[T]{}
	}
	if n >= l.Len() {
		return l
	}
	res := make([]T, 0, n)
	for cur := l.head; len(res) < n; cur = cur.next {
		res = append(res, cur.val)
	}
	return build(res, nil)
}

// Drop returns l without its first n elements. The result shares its nodes
// with l. A non-positive n yields l, an n past the end the empty list.
func Drop[T any](l List[T], n int) List[T] {
	cur := l.head
	for ; n > 0 && cur != nil; n-- {
		cur = cur.next
	}
	return List[T]{head: cur}
}

// TakeWhile returns the longest prefix of l whose elements all satisfy predicate.
func TakeWhile[T any](l List[T], predicate func(T) bool) List[T] {
	var res []T
	cur := l.head
	for ; cur != nil && predicate(cur.val); cur = cur.next {
		res = append(res, cur.val)
	}
	if cur == nil {
		return l
	}
	return build(res, nil)
}

// DropWhile returns what is left of l after removing the prefix TakeWhile
// would return. The result shares its nodes with l.
func DropWhile[T any](l List[T], predicate func(T) bool) List[T] {
	cur := l.head
	for cur != nil && predicate(cur.val) {
		cur = cur.next
	}
	return List[T]{head: cur}
}

// Methods for fluent chaining. Go methods cannot introduce type parameters,
// so these keep the element type; use the package functions to change it.

// Map applies transform to every element of l, see the package function Map.
func (l List[T]) Map(transform func(T) T) List[T] {
	return Map(l, transform)
}

// Filter keeps the elements of l that satisfy predicate.
func (l List[T]) Filter(predicate func(T) bool) List[T] {
	return Filter(l, predicate)
}

// Reduce right-folds l with reducer. It returns ErrEmptyList for an empty list.
func (l List[T]) Reduce(reducer func(T, T) T) (T, error) {
	return Reduce(l, reducer)
}

// Any reports whether some element of l satisfies predicate.
func (l List[T]) Any(predicate func(T) bool) bool {
	return Any(l, predicate)
}

// All reports whether every element of l satisfies predicate.
func (l List[T]) All(predicate func(T) bool) bool {
	return All(l, predicate)
}

// ZipWith combines l with other pairwise, see the package function ZipWith.
func (l List[T]) ZipWith(other List[T], combine func(T, T) T) List[T] {
	return ZipWith(l, other, combine)
}

// Scan returns the running accumulation of l under combine.
func (l List[T]) Scan(combine func(T, T) T) List[T] {
	return Scan(l, combine)
}

// Take returns the first n elements of l.
func (l List[T]) Take(n int) List[T] {
	return Take(l, n)
}

// Drop returns l without its first n elements, sharing the remaining nodes.
func (l List[T]) Drop(n int) List[T] {
	return Drop(l, n)
}

// TakeWhile returns the longest prefix of l whose elements satisfy predicate.
func (l List[T]) TakeWhile(predicate func(T) bool) List[T] {
	return TakeWhile(l, predicate)
}

// DropWhile skips the leading elements of l that satisfy predicate.
func (l List[T]) DropWhile(predicate func(T) bool) List[T] {
	return DropWhile(l, predicate)
}
