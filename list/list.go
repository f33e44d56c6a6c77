// Package list implements a generic singly linked list with a before-begin
// sentinel, so insertion and removal are expressed uniformly as operations
// after a position.
//
// Misuse that has no meaningful result (popping an empty list, dereferencing
// the end iterator, erasing after the last element) panics with one of the
// Err* values of this package.
//
// A LinkedList is not safe for concurrent use, and must not be copied by
// value once used: iterators point at its sentinel. Use Clone or Assign.
package list

import (
	"fmt"
	"iter"
)

// LinkedList is a singly linked list of values of type T.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head node[T] // sentinel; head.next is the first element
	size int
}

// New returns a list holding values in the given order.
func New[T any](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	pos := l.BeforeBegin()
	for _, value := range values {
		pos = l.InsertAfter(pos, value)
	}
	return l
}

// Clone returns an independent list with the same elements in the same order.
// Elements are copied by assignment.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	clone, _ := l.CloneFunc(copyByValue[T])
	return clone
}

// CloneFunc is like Clone but copies every element with copyValue. If
// copyValue fails the error is returned and no list is produced.
func (l *LinkedList[T]) CloneFunc(copyValue func(T) (T, error)) (*LinkedList[T], error) {
	var tmp LinkedList[T]
	if err := tmp.copyFrom(l, copyValue); err != nil {
		return nil, err
	}
	clone := &LinkedList[T]{}
	clone.Swap(&tmp)
	return clone, nil
}

// Assign replaces the contents of l with a copy of rhs.
func (l *LinkedList[T]) Assign(rhs *LinkedList[T]) {
	_ = l.AssignFunc(rhs, copyByValue[T])
}

// AssignFunc replaces the contents of l with copies of the elements of rhs
// made by copyValue. The copy is built completely before it replaces the
// current contents, so on error l is left as it was.
func (l *LinkedList[T]) AssignFunc(rhs *LinkedList[T], copyValue func(T) (T, error)) error {
	if l == rhs {
		return nil
	}
	if rhs.IsEmpty() {
		l.Clear()
		return nil
	}
	var tmp LinkedList[T]
	if err := tmp.copyFrom(rhs, copyValue); err != nil {
		return err
	}
	l.Swap(&tmp)
	tmp.Clear()
	return nil
}

// copyFrom appends copies of src's elements to an empty l. On error l is
// cleared again.
func (l *LinkedList[T]) copyFrom(src *LinkedList[T], copyValue func(T) (T, error)) error {
	tail := &l.head
	for n := src.head.next; n != nil; n = n.next {
		value, err := copyValue(n.value)
		if err != nil {
			l.Clear()
			return err
		}
		tail.next = &node[T]{value: value}
		tail = tail.next
		l.size++
	}
	return nil
}

func copyByValue[T any](value T) (T, error) {
	return value, nil
}

// Swap exchanges the contents of l and other in O(1).
// Iterators to elements keep referencing the same elements, which now
// belong to the other list.
func (l *LinkedList[T]) Swap(other *LinkedList[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of lhs and rhs.
func Swap[T any](lhs, rhs *LinkedList[T]) {
	lhs.Swap(rhs)
}

func (l *LinkedList[T]) GetSize() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront inserts value as the first element.
func (l *LinkedList[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront removes the first element. It panics if the list is empty.
func (l *LinkedList[T]) PopFront() {
	if l.size == 0 {
		panic(ErrEmptyList)
	}
	l.EraseAfter(l.CBeforeBegin())
}

// Front returns the first element, or false if the list is empty.
func (l *LinkedList[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// InsertAfter inserts value right after pos, which may be the before-begin
// position, and returns an iterator to the new element.
// It panics if pos is the end position.
func (l *LinkedList[T]) InsertAfter(pos Position[T], value T) Iterator[T] {
	prev := pos.position()
	if prev == nil {
		panic(ErrInsertAtEnd)
	}
	n := &node[T]{value: value, next: prev.next}
	prev.next = n
	l.size++
	return Iterator[T]{cursor[T]{node: n}}
}

// EmplaceAfter is InsertAfter with a value produced by build. If build
// fails nothing is inserted and its error is returned.
func (l *LinkedList[T]) EmplaceAfter(pos Position[T], build func() (T, error)) (Iterator[T], error) {
	if pos.position() == nil {
		panic(ErrInsertAtEnd)
	}
	value, err := build()
	if err != nil {
		return Iterator[T]{}, err
	}
	return l.InsertAfter(pos, value), nil
}

// EraseAfter removes the element following pos and returns an iterator to
// the element that now follows pos, or End.
func (l *LinkedList[T]) EraseAfter(pos Position[T]) Iterator[T] {
	if l.size == 0 {
		panic(ErrEmptyList)
	}
	prev := pos.position()
	if prev == nil || prev.next == nil {
		panic(ErrNoSuccessor)
	}
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
	l.size--
	return Iterator[T]{cursor[T]{node: prev.next}}
}

// Clear removes all elements.
func (l *LinkedList[T]) Clear() {
	for l.head.next != nil {
		n := l.head.next
		l.head.next = n.next
		n.next = nil
	}
	l.size = 0
}

// Begin returns an iterator to the first element, equal to End if the list
// is empty.
func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{node: l.head.next}}
}

// End returns the position one past the last element. It must not be
// dereferenced.
func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *LinkedList[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

func (l *LinkedList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// BeforeBegin returns the position before the first element. It can be
// passed to InsertAfter and EraseAfter but must not be dereferenced.
func (l *LinkedList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{cursor[T]{node: &l.head, before: true}}
}

func (l *LinkedList[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// All returns an iterator over the elements from front to back.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice, front first.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.Values())
}
