package list

import (
	"iter"
	"slices"
)

// NewListFromSeq builds a list from the elements in the sequence, in
// order.
func NewListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	out := &List[T]{}
	out.Populate(seq)
	return out
}

// Populate appends every item in the sequence to the list.
func (l *List[T]) Populate(seq iter.Seq[T]) {
	for item := range seq {
		l.PushBack(item)
	}
}

// Seq returns a native go iterator over the values in the list in
// front-to-back order. The sequence is not synchronized with the
// list: values added behind the iteration point will not be visited,
// while values added ahead of it will be.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := l.Front(); elem.Ok(); elem = elem.Next() {
			if !yield(elem.Value()) {
				return
			}
		}
	}
}

// SeqReverse provides the same semantics and operation as Seq, but
// starts at the back of the list and works toward the front.
func (l *List[T]) SeqReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := l.Back(); elem.Ok(); elem = elem.Previous() {
			if !yield(elem.Value()) {
				return
			}
		}
	}
}

// SeqPop returns a native go iterator that consumes the list as it
// iterates, popping each value from the front. Breaking out of the
// loop early leaves the remaining values in the list.
func (l *List[T]) SeqPop() iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := l.PopFront(); elem.Ok(); elem = l.PopFront() {
			if !yield(elem.Value()) {
				return
			}
		}
	}
}

// SeqPopReverse provides the same semantics and operation as SeqPop,
// but consumes the list from the back.
func (l *List[T]) SeqPopReverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := l.PopBack(); elem.Ok(); elem = l.PopBack() {
			if !yield(elem.Value()) {
				return
			}
		}
	}
}

// Elements returns a native go iterator over the element handles in
// front-to-back order, for callers that need positions rather than
// values.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		for elem := l.Front(); elem.Ok(); elem = elem.Next() {
			if !yield(elem) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T { return slices.Collect(l.Seq()) }
