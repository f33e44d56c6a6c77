package list

import "errors"

var (
	ErrEmptyList           = errors.New("list: operation on empty list")
	ErrDereferenceEnd      = errors.New("list: dereference of end iterator")
	ErrDereferenceSentinel = errors.New("list: dereference of before-begin iterator")
	ErrAdvanceEnd          = errors.New("list: advance past end")
	ErrInsertAtEnd         = errors.New("list: insert after end iterator")
	ErrNoSuccessor         = errors.New("list: erase after position with no successor")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Position is a place in a list. It is implemented by Iterator and
// ConstIterator only, so either kind can be passed where a position is
// expected and the two kinds compare with each other.
type Position[T any] interface {
	position() *node[T]
}

// cursor is the state shared by both iterator kinds. A nil node is the end
// position (and the zero value).
type cursor[T any] struct {
	node   *node[T]
	before bool
}

func (c cursor[T]) position() *node[T] {
	return c.node
}

func (c cursor[T]) deref() *node[T] {
	if c.node == nil {
		panic(ErrDereferenceEnd)
	}
	if c.before {
		panic(ErrDereferenceSentinel)
	}
	return c.node
}

func (c *cursor[T]) advance() {
	if c.node == nil {
		panic(ErrAdvanceEnd)
	}
	c.node = c.node.next
	c.before = false
}

// Iterator is a forward iterator that can modify the element it references.
type Iterator[T any] struct {
	cursor[T]
}

// Value returns the referenced element.
// It panics if the iterator is at the end or before the beginning.
func (it Iterator[T]) Value() T {
	return it.deref().value
}

// Ref returns a pointer to the referenced element, valid until the element
// is removed from its list.
func (it Iterator[T]) Ref() *T {
	return &it.deref().value
}

// Set replaces the referenced element.
func (it Iterator[T]) Set(value T) {
	it.deref().value = value
}

// Next advances the iterator and returns its new position.
func (it *Iterator[T]) Next() Iterator[T] {
	it.advance()
	return *it
}

// PostNext advances the iterator and returns the position it had before.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.advance()
	return prev
}

// Equal reports whether both positions reference the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.node == other.position()
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// ConstIterator is a forward iterator with read-only access to elements.
type ConstIterator[T any] struct {
	cursor[T]
}

func (it ConstIterator[T]) Value() T {
	return it.deref().value
}

func (it *ConstIterator[T]) Next() ConstIterator[T] {
	it.advance()
	return *it
}

func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.advance()
	return prev
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.node == other.position()
}
