package list

import "cmp"

// Equal reports whether lhs and rhs have the same length and equal elements
// in the same order.
func Equal[T comparable](lhs, rhs *LinkedList[T]) bool {
	return EqualFunc(lhs, rhs, func(a, b T) bool { return a == b })
}

func NotEqual[T comparable](lhs, rhs *LinkedList[T]) bool {
	return !Equal(lhs, rhs)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](lhs, rhs *LinkedList[T], eq func(a, b T) bool) bool {
	if lhs.size != rhs.size {
		return false
	}
	for l, r := lhs.head.next, rhs.head.next; l != nil; l, r = l.next, r.next {
		if !eq(l.value, r.value) {
			return false
		}
	}
	return true
}

// Compare compares lhs and rhs lexicographically and returns -1, 0 or +1.
// The first differing pair of elements decides; if one list is a prefix of
// the other, the shorter one is less.
func Compare[T cmp.Ordered](lhs, rhs *LinkedList[T]) int {
	return CompareFunc(lhs, rhs, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with cmpValue.
func CompareFunc[T any](lhs, rhs *LinkedList[T], cmpValue func(a, b T) int) int {
	l, r := lhs.head.next, rhs.head.next
	for ; l != nil && r != nil; l, r = l.next, r.next {
		if c := cmpValue(l.value, r.value); c < 0 {
			return -1
		} else if c > 0 {
			return +1
		}
	}
	switch {
	case l == nil && r == nil:
		return 0
	case l == nil:
		return -1
	default:
		return +1
	}
}

func Less[T cmp.Ordered](lhs, rhs *LinkedList[T]) bool {
	return Compare(lhs, rhs) < 0
}

func LessOrEqual[T cmp.Ordered](lhs, rhs *LinkedList[T]) bool {
	return Less(lhs, rhs) || Equal(lhs, rhs)
}

func Greater[T cmp.Ordered](lhs, rhs *LinkedList[T]) bool {
	return Less(rhs, lhs)
}

func GreaterOrEqual[T cmp.Ordered](lhs, rhs *LinkedList[T]) bool {
	return Greater(lhs, rhs) || Equal(lhs, rhs)
}
