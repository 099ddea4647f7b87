// Package list provides a generic doubly linked list with a
// sentinel-circular layout: every list owns one embedded sentinel
// element and the chain of elements forms a ring through it. The
// zero value of List is an empty, ready-to-use list.
//
// The container supports constant-time insertion and removal at any
// position, and constant-time Splice transfer of element ranges
// between lists. To keep Splice (and Extend) O(1), the list does not
// cache its length: Len is O(n).
//
// Callers are responsible for their own concurrency control and
// bounds checking, and should generally use with the same care as a
// slice.
package list

import (
	"github.com/tychoish/fun"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/fun/ft"
)

// ErrUninitializedContainer is the content of the panic produced when
// you attempt to perform an operation on a nil list.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")

// ErrInvalidPosition is the content of the panic produced when a
// positional operation (Insert, Erase, EraseRange, Splice) is given a
// handle that cannot denote a position: a nil element, a detached
// element, or the end position where an element is required.
const ErrInvalidPosition ers.Error = ers.Error("invalid list position")

// List provides a doubly linked list. The sentinel element is
// embedded in the List value: an empty list performs no allocation,
// and the End position is stable for the life of the list.
type List[T any] struct {
	root Element[T]
}

// sentinel returns the list's root element, establishing the empty
// ring on first use.
func (l *List[T]) sentinel() *Element[T] {
	fun.Invariant.Ok(l != nil, ErrUninitializedContainer)

	ft.WhenCall(l.root.next == nil, l.uncheckedSetup)

	return &l.root
}

func (l *List[T]) uncheckedSetup() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.root = true
}

// Empty reports whether the list has no elements, in constant time.
func (l *List[T]) Empty() bool { s := l.sentinel(); return s.next == s }

// Len counts the elements in the list. Because the list does not
// track its length--the cost of giving Splice and Extend constant
// time--this is an O(n) operation.
//
// Returns 0 when the list is nil.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	count := 0
	for elem := l.Front(); elem.Ok(); elem = elem.Next() {
		count++
	}
	return count
}

// Front returns a pointer to the first element of the list. If the
// list is empty this is the sentinel, which reports Ok() false. You
// can use this pointer to begin a c-style iteration over the list:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//	       // operate
//	}
func (l *List[T]) Front() *Element[T] { return l.sentinel().next }

// Back returns a pointer to the last element of the list. If the
// list is empty this is the sentinel, which reports Ok() false. You
// can use this pointer to begin a c-style iteration over the list:
//
//	for e := list.Back(); e.Ok(); e = e.Previous() {
//	       // operate
//	}
func (l *List[T]) Back() *Element[T] { return l.sentinel().prev }

// End returns the sentinel element: the position one past the last
// element, and equally the position one before the first. End is the
// insertion point for appends, the terminator of c-style loops, and
// the only element for which Ok() is false while it remains in the
// ring. The handle is stable: it never changes for the life of the
// list, no matter the mutations.
func (l *List[T]) End() *Element[T] { return l.sentinel() }

// PushFront creates an element holding the value and prepends it to
// the list. The performance of PushFront and PushBack are the same.
func (l *List[T]) PushFront(it T) { l.sentinel().Push(it) }

// PushBack creates an element holding the value and appends it to
// the list. The performance of PushFront and PushBack are the same.
func (l *List[T]) PushBack(it T) { l.Back().Push(it) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// PopFront removes the first element from the list and returns it.
// If the list is empty, this returns a detached non-nil element that
// reports Ok() false. You can use this to produce a C-style iterator
// over the list that removes items during the iteration:
//
//	for e := list.PopFront(); e.Ok(); e = list.PopFront() {
//		// do work
//	}
func (l *List[T]) PopFront() *Element[T] { return l.pop(l.sentinel().next) }

// PopBack removes the last element from the list and returns it. If
// the list is empty, this returns a detached non-nil element that
// reports Ok() false. You can use this to produce a C-style iterator
// over the list that removes items during the iteration:
//
//	for e := list.PopBack(); e.Ok(); e = list.PopBack() {
//		// do work
//	}
func (l *List[T]) PopBack() *Element[T] { return l.pop(l.sentinel().prev) }

// Insert links a new element holding the value immediately before
// pos, which becomes the successor of the new element. Insert is
// O(1) and returns the new element. pos may be End() (append) or
// Front() (prepend), and must be a member of this list: positions
// from other lists corrupt both rings, and that membership is the
// caller's contract. Insert panics for nil or detached positions.
func (l *List[T]) Insert(pos *Element[T], it T) *Element[T] {
	l.sentinel()
	fun.Invariant.Ok(pos != nil && pos.linked(), ErrInvalidPosition)

	elem := NewElement(it)
	pos.prev.uncheckedAppend(elem)
	return elem
}

// Erase unlinks the element at pos, drops its value, and returns the
// element that followed it (possibly End()). Erase is O(1). pos must
// be a member of this list and must not be End(); Erase panics for
// nil, detached, or sentinel positions.
func (l *List[T]) Erase(pos *Element[T]) *Element[T] {
	l.sentinel()
	fun.Invariant.Ok(pos != nil && pos.linked() && !pos.root, ErrInvalidPosition)

	next := pos.next
	pos.uncheckedRemove()
	pos.clear()
	return next
}

// EraseRange unlinks and drops every element in the half-open range
// [first, last), relinking the ring once at the boundaries, and
// returns last. EraseRange is O(k) in the number of elements
// removed. The range must be valid within this list: last reachable
// from first by forward traversal, or first == last (a no-op). The
// sentinel may terminate the range (last == End()) but cannot be
// inside it.
func (l *List[T]) EraseRange(first, last *Element[T]) *Element[T] {
	l.sentinel()
	fun.Invariant.Ok(first != nil && last != nil && first.linked() && last.linked(), ErrInvalidPosition)

	if first == last {
		return last
	}
	fun.Invariant.Ok(!first.root, ErrInvalidPosition)

	first.prev.next = last
	last.prev = first.prev

	for cur := first; cur != last; {
		next := cur.next
		cur.next = nil
		cur.prev = nil
		cur.clear()
		cur = next
	}
	return last
}

// Clear drops every element and restores the empty ring. Clear is
// O(n) and is a no-op on an already empty list. Handles to cleared
// elements report Ok() false afterwards.
func (l *List[T]) Clear() { l.EraseRange(l.Front(), l.End()) }

// Splice moves the half-open range [first, last) out of other's ring
// and links it into this list immediately before pos, in constant
// time, without copying or dropping any value. A no-op when first ==
// last. Elements keep their identity: handles into the range remain
// valid and now refer to members of this list.
//
// [first, last) must be a valid range in other. other may be the
// list itself, provided pos is not inside the range; overlapping
// self-splices corrupt the ring and are the caller's responsibility.
func (l *List[T]) Splice(pos *Element[T], other *List[T], first, last *Element[T]) {
	l.sentinel()
	other.sentinel()
	fun.Invariant.Ok(pos != nil && pos.linked(), ErrInvalidPosition)
	fun.Invariant.Ok(first != nil && last != nil && first.linked() && last.linked(), ErrInvalidPosition)

	if first == last {
		return
	}
	fun.Invariant.Ok(!first.root, ErrInvalidPosition)

	head, tail := first, last.prev

	// close the gap in the source ring.
	first.prev.next = last
	last.prev = head.prev

	// open this ring before pos.
	head.prev = pos.prev
	tail.next = pos
	head.prev.next = head
	pos.prev = tail
}

// Extend moves every element of the input list to the back of this
// list, leaving the input empty. Because the elements move by
// relinking rather than by popping and re-appending, Extend is O(1).
// Extending a list with itself is a no-op.
func (l *List[T]) Extend(input *List[T]) {
	if l == input {
		return
	}

	l.Splice(l.End(), input, input.Front(), input.End())
}

// Swap exchanges the contents of the two lists in constant time. The
// elements do not move in memory; only the two sentinels trade
// neighborhoods. Because each sentinel is embedded in its List by
// value, the neighbors that pointed at one sentinel's address must
// be redirected to the other's: this fixup covers the empty and
// non-empty cases symmetrically. Swapping a list with itself is a
// no-op.
func (l *List[T]) Swap(other *List[T]) {
	ls, os := l.sentinel(), other.sentinel()
	if ls == os {
		return
	}

	lFront, lBack := ls.next, ls.prev
	oFront, oBack := os.next, os.prev

	l.adoptChain(oFront, oBack, os)
	other.adoptChain(lFront, lBack, ls)
}

// adoptChain points the list's sentinel at the chain [first, last]
// taken from the ring whose sentinel was from; when the source ring
// was empty (first == from) the list becomes the empty self-loop.
func (l *List[T]) adoptChain(first, last, from *Element[T]) {
	s := &l.root
	if first == from {
		s.next = s
		s.prev = s
		return
	}

	s.next = first
	s.prev = last
	first.prev = s
	last.next = s
}

// Copy duplicates the list. The element records in the copy are
// distinct, though if the values are themselves references, the
// values of both lists would be shared.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	for elem := l.Front(); elem.Ok(); elem = elem.Next() {
		out.PushBack(elem.Value())
	}
	return out
}

// CopyFrom replaces the contents of the list with a copy of the
// other list, by building the complete replacement first and then
// exchanging it with the current contents: the list is never
// observable in a partially copied state. CopyFrom of a list with
// itself leaves it unchanged.
func (l *List[T]) CopyFrom(other *List[T]) {
	l.sentinel()
	l.Swap(other.Copy())
}

func (l *List[T]) pop(it *Element[T]) *Element[T] {
	if !it.removable() {
		return &Element[T]{}
	}

	it.uncheckedRemove()

	return it
}
