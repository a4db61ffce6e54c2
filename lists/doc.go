/*
Package lists provides an immutable, generic, singly linked list and the
classic set of functional combinators over it.

A [List] is either empty (its zero value) or an element followed by another
List. Lists are never modified after construction:

  - **Construction**: [Of], [FromSlice], [FromSeq], [Range], [Prepend].
  - **Inspection**: [List.Head], [List.Tail], [List.Len], [List.IsEmpty],
    [List.String] ("[1, 2, 3]") and [List.Arrow] ("1 -> 2 -> 3").
  - **Combinators**: [Map], [Filter], [Reduce], [Fold], [Any], [All], [ZipWith],
    [Scan], [Take], [Drop], [TakeWhile], [DropWhile].

# Chaining

Every combinator exists both as a package function and as a method. The
methods keep the element type so they can be chained:

	sum, err := numbers.
		ZipWith(numbers, add).
		Map(square).
		Filter(even).
		Reduce(add)

Use the package functions ([Map], [ZipWith]) when the element type changes.

# Empty lists

Combinators never call the supplied function on an empty list. [List.Head]
and [Reduce] have no value to return for one and report [ErrEmptyList].
[Take] and [Drop] clamp their count instead of failing.

# Sharing

Results share unchanged tails with their inputs: [Drop], [DropWhile] and
[List.Tail] allocate nothing, and [Take], [Filter] and [TakeWhile] return the
input itself when nothing is removed. Traversals are iterative, so very long
lists are safe to process.
*/
package lists
