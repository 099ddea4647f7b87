package list

import (
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////
//
// Element implementation
//
////////////////////////////////////////////////////////////////////////

// Element is the underlying component of a list, provided by the
// positional operations, the Pop operations, and the Front/Back/End
// accesses. An Element is a non-owning positional handle: use its
// methods to navigate the ring, and the Ok() method for
// distinguishing value-carrying elements from the sentinel and from
// detached zero values.
//
// Elements do not record which list they belong to. Membership is a
// property of the ring they are linked into, which is what lets
// Splice move whole ranges between lists in constant time.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	root bool
	ok   bool
	item T
}

// NewElement produces an unattached Element that you can use with
// Append. Element.Append(NewElement()) is essentially the same as
// List.PushBack().
func NewElement[T any](val T) *Element[T] { return &Element[T]{item: val, ok: true} }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

// Value accesses the element's value. Safe to call on nil elements,
// the sentinel, and detached elements, all of which return the zero
// value.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Ok checks that an element carries a value. The sentinel (the End
// position), elements popped from an empty list, and dropped
// elements all report false.
//
// Returns false when the element is nil.
func (e *Element[T]) Ok() bool { return e != nil && e.ok }

// Next produces the next element in the ring. This is always
// non-nil for linked elements; at the end of the list the result is
// the sentinel, which reports Ok() false.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Previous produces the previous element in the ring. This is
// always non-nil for linked elements; at the front of the list the
// result is the sentinel, which reports Ok() false.
func (e *Element[T]) Previous() *Element[T] { return e.prev }

// Set changes the value of the element in place. Returns true if
// the operation is successful. The operation fails if the Element is
// the sentinel of a list.
//
// Set is safe to call on nil elements.
func (e *Element[T]) Set(v T) bool {
	if e == nil || e.root {
		return false
	}

	e.ok = true
	e.item = v
	return true
}

// Append attaches the detached element val into the ring in the next
// position after e. Returns val so that appends chain; returns e
// unchanged when val is not valid for insertion (nil, carrying no
// value, or already linked into a ring) or when e itself is not
// linked. PushBack and PushFront are implemented in terms of Append.
func (e *Element[T]) Append(val *Element[T]) *Element[T] {
	if !e.appendable(val) {
		return e
	}

	e.uncheckedAppend(val)
	return val
}

// Push creates an element holding the value and appends it after e,
// returning the new element.
func (e *Element[T]) Push(v T) *Element[T] { return e.Append(NewElement(v)) }

// Remove unlinks the element from its ring, returning true if the
// operation was successful. Remove returns false when the element is
// not valid to be removed (not linked into a ring, or the sentinel).
// The removed element keeps its value.
func (e *Element[T]) Remove() bool {
	if !e.removable() {
		return false
	}
	e.uncheckedRemove()
	return true
}

// Drop wraps Remove, and additionally, if the remove was successful,
// drops the value and sets the Ok value to false.
func (e *Element[T]) Drop() {
	if !e.Remove() {
		return
	}
	e.clear()
}

// Swap exchanges the positions of two elements of the same ring,
// returning true if the operation was successful, and false if the
// elements are not eligible to be swapped. It is valid to swap the
// sentinel with another element to "move the head", causing a wrap
// around effect. Swap will not operate if either element is nil,
// detached, or a member of a different ring; because elements do not
// record their list, the same-ring check walks the ring and is O(n).
func (e *Element[T]) Swap(with *Element[T]) bool {
	if !e.swappable(with) {
		return false
	}

	if with.next == e {
		e, with = with, e
	}

	if e.next == with {
		// adjacent: with moves to e's left.
		with.uncheckedRemove()
		e.prev.uncheckedAppend(with)
		return true
	}

	anchor := with.prev
	with.uncheckedRemove()
	e.prev.uncheckedAppend(with)
	e.uncheckedRemove()
	anchor.uncheckedAppend(e)
	return true
}

// UnmarshalJSON reads the json value, and sets the value of the
// element to the value in the json, potentially overriding an
// existing value. By supporting json.Marshaler and json.Unmarshaler,
// Elements and lists can behave as arrays in larger json objects, and
// can be used as the output/input of json.Marshal and json.Unmarshal.
func (e *Element[T]) UnmarshalJSON(in []byte) error {
	var val T
	if err := json.Unmarshal(in, &val); err != nil {
		return err
	}
	e.Set(val)
	return nil
}

// MarshalJSON renders the element's value.
func (e *Element[T]) MarshalJSON() ([]byte, error) { return json.Marshal(e.Value()) }

func (e *Element[T]) linked() bool { return e.next != nil && e.prev != nil }

func (e *Element[T]) removable() bool { return e != nil && e.ok && !e.root && e.linked() }

func (e *Element[T]) appendable(val *Element[T]) bool {
	return val != nil && val.ok && !val.linked() && e != nil && e.linked()
}

// make sure we have linked members of the same ring, and not the
// same element.
func (e *Element[T]) swappable(with *Element[T]) bool {
	return e != nil && with != nil && e != with && e.linked() && with.linked() && e.sameRing(with)
}

func (e *Element[T]) sameRing(with *Element[T]) bool {
	for cur := e.next; ; cur = cur.next {
		switch cur {
		case with:
			return true
		case e:
			return false
		}
	}
}

func (e *Element[T]) uncheckedAppend(val *Element[T]) {
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

func (e *Element[T]) uncheckedRemove() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}

func (e *Element[T]) clear() {
	var zero T
	e.item = zero
	e.ok = false
}
