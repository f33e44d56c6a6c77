package list

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type listTestSuite struct {
	suite.Suite
	numbers *LinkedList[int]
}

func TestListTestSuite(t *testing.T) {
	suite.Run(t, new(listTestSuite))
}

func (listSuite *listTestSuite) SetupTest() {
	listSuite.numbers = New(1, 2, 3)
}

func (listSuite *listTestSuite) requireValid(l *LinkedList[int]) {
	count := 0
	for n := l.head.next; n != nil; n = n.next {
		count++
	}
	listSuite.Require().Equal(count, l.GetSize(), "size does not match reachable nodes")
	listSuite.Require().Equal(count == 0, l.IsEmpty())
}

func (listSuite *listTestSuite) TestZeroValueIsEmpty() {
	var l LinkedList[string]
	listSuite.True(l.IsEmpty())
	listSuite.Equal(0, l.GetSize())
	listSuite.True(l.Begin().Equal(l.End()))
	listSuite.True(l.CBegin().Equal(l.CEnd()))
	_, ok := l.Front()
	listSuite.False(ok)
}

func (listSuite *listTestSuite) TestNewPreservesOrder() {
	listSuite.Equal([]int{1, 2, 3}, listSuite.numbers.Values())
	listSuite.Equal(3, listSuite.numbers.GetSize())
	listSuite.False(listSuite.numbers.IsEmpty())
	listSuite.Equal("[1 2 3]", listSuite.numbers.String())
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestPushFrontIsReverseChronological() {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.PushFront(i)
		listSuite.Equal(i+1, l.GetSize())
	}
	listSuite.Equal([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, l.Values())
	front, ok := l.Front()
	listSuite.True(ok)
	listSuite.Equal(9, front)
	listSuite.requireValid(l)
}

func (listSuite *listTestSuite) TestPopFront() {
	listSuite.numbers.PopFront()
	listSuite.Equal([]int{2, 3}, listSuite.numbers.Values())
	listSuite.numbers.PopFront()
	listSuite.numbers.PopFront()
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.requireValid(listSuite.numbers)
	listSuite.PanicsWithError(ErrEmptyList.Error(), func() { listSuite.numbers.PopFront() })
}

func (listSuite *listTestSuite) TestInsertAfterBeforeBeginOnEmpty() {
	l := New[string]()
	it := l.InsertAfter(l.BeforeBegin(), "x")
	listSuite.Equal("x", it.Value())
	listSuite.Equal([]string{"x"}, l.Values())
	l.PopFront()
	listSuite.True(l.IsEmpty())
	listSuite.Equal(0, l.GetSize())
}

func (listSuite *listTestSuite) TestInsertAfterBeforeBeginMatchesPushFront() {
	inserted := New(1, 2, 3)
	pushed := New(1, 2, 3)
	inserted.InsertAfter(inserted.BeforeBegin(), 0)
	pushed.PushFront(0)
	listSuite.True(Equal(inserted, pushed))
}

func (listSuite *listTestSuite) TestInsertAfterMiddleAndTail() {
	it := listSuite.numbers.Begin()
	inserted := listSuite.numbers.InsertAfter(it, 10)
	listSuite.Equal(10, inserted.Value())
	listSuite.Equal([]int{1, 10, 2, 3}, listSuite.numbers.Values())

	last := listSuite.numbers.Begin()
	for i := 0; i < 3; i++ {
		last.Next()
	}
	tail := listSuite.numbers.InsertAfter(last.Const(), 4)
	listSuite.Equal([]int{1, 10, 2, 3, 4}, listSuite.numbers.Values())
	listSuite.True(tail.Next().Equal(listSuite.numbers.End()))
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestInsertAfterEndPanics() {
	listSuite.PanicsWithError(ErrInsertAtEnd.Error(), func() {
		listSuite.numbers.InsertAfter(listSuite.numbers.End(), 4)
	})
	listSuite.Equal(3, listSuite.numbers.GetSize())
}

func (listSuite *listTestSuite) TestEmplaceAfter() {
	it, err := listSuite.numbers.EmplaceAfter(listSuite.numbers.CBeforeBegin(), func() (int, error) { return 0, nil })
	listSuite.Require().NoError(err)
	listSuite.Equal(0, it.Value())
	listSuite.Equal([]int{0, 1, 2, 3}, listSuite.numbers.Values())

	failure := errors.New("no value")
	it, err = listSuite.numbers.EmplaceAfter(listSuite.numbers.Begin(), func() (int, error) { return 0, failure })
	listSuite.ErrorIs(err, failure)
	listSuite.True(it.Equal(listSuite.numbers.End()))
	listSuite.Equal([]int{0, 1, 2, 3}, listSuite.numbers.Values())
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestEraseAfter() {
	next := listSuite.numbers.EraseAfter(listSuite.numbers.Begin())
	listSuite.Equal(3, next.Value())
	listSuite.Equal([]int{1, 3}, listSuite.numbers.Values())

	next = listSuite.numbers.EraseAfter(listSuite.numbers.Begin())
	listSuite.True(next.Equal(listSuite.numbers.End()))
	listSuite.Equal([]int{1}, listSuite.numbers.Values())

	next = listSuite.numbers.EraseAfter(listSuite.numbers.CBeforeBegin())
	listSuite.True(next.Equal(listSuite.numbers.End()))
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestEraseAfterPreconditions() {
	empty := New[int]()
	listSuite.PanicsWithError(ErrEmptyList.Error(), func() { empty.EraseAfter(empty.BeforeBegin()) })

	last := listSuite.numbers.Begin()
	last.Next()
	last.Next()
	listSuite.PanicsWithError(ErrNoSuccessor.Error(), func() { listSuite.numbers.EraseAfter(last) })
	listSuite.PanicsWithError(ErrNoSuccessor.Error(), func() { listSuite.numbers.EraseAfter(listSuite.numbers.End()) })
	listSuite.Equal(3, listSuite.numbers.GetSize())
}

func (listSuite *listTestSuite) TestEraseAfterUndoesInsertAfter() {
	pos := listSuite.numbers.Begin()
	pos.Next()
	before := listSuite.numbers.Values()

	listSuite.numbers.InsertAfter(pos, 42)
	next := listSuite.numbers.EraseAfter(pos)

	listSuite.Equal(before, listSuite.numbers.Values())
	listSuite.Equal(3, next.Value())
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestClearIsIdempotent() {
	listSuite.numbers.Clear()
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.Equal(0, listSuite.numbers.GetSize())
	listSuite.numbers.Clear()
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.requireValid(listSuite.numbers)

	listSuite.numbers.PushFront(7)
	listSuite.Equal([]int{7}, listSuite.numbers.Values())
}

func (listSuite *listTestSuite) TestCloneIsIndependent() {
	clone := listSuite.numbers.Clone()
	listSuite.True(Equal(listSuite.numbers, clone))

	clone.PushFront(0)
	clone.EraseAfter(clone.Begin())
	clone.InsertAfter(clone.Begin(), 5)
	clone.PopFront()
	clone.Begin().Set(100)

	listSuite.Equal([]int{1, 2, 3}, listSuite.numbers.Values())
	listSuite.Equal(3, listSuite.numbers.GetSize())
	listSuite.Equal([]int{100, 2, 3}, clone.Values())
	listSuite.requireValid(clone)
}

func (listSuite *listTestSuite) TestCloneEmpty() {
	clone := New[int]().Clone()
	listSuite.NotNil(clone)
	listSuite.True(clone.IsEmpty())
}

func (listSuite *listTestSuite) TestCloneFuncFailure() {
	failure := errors.New("copy failed")
	copies := 0
	clone, err := listSuite.numbers.CloneFunc(func(v int) (int, error) {
		copies++
		if v == 3 {
			return 0, failure
		}
		return v, nil
	})
	listSuite.ErrorIs(err, failure)
	listSuite.Nil(clone)
	listSuite.Equal(3, copies)
	listSuite.Equal([]int{1, 2, 3}, listSuite.numbers.Values())
}

func (listSuite *listTestSuite) TestCloneFuncDeepCopies() {
	words := New([]string{"a"}, []string{"b", "c"})
	clone, err := words.CloneFunc(func(v []string) ([]string, error) {
		return append([]string(nil), v...), nil
	})
	listSuite.Require().NoError(err)
	(*clone.Begin().Ref())[0] = "z"
	listSuite.Equal("a", words.Begin().Value()[0])
}

func (listSuite *listTestSuite) TestAssign() {
	target := New(9, 9)
	target.Assign(listSuite.numbers)
	listSuite.Equal([]int{1, 2, 3}, target.Values())

	target.PushFront(0)
	listSuite.Equal(3, listSuite.numbers.GetSize())
	listSuite.requireValid(target)
}

func (listSuite *listTestSuite) TestAssignSelfIsNoop() {
	listSuite.numbers.Assign(listSuite.numbers)
	listSuite.Equal([]int{1, 2, 3}, listSuite.numbers.Values())
}

func (listSuite *listTestSuite) TestAssignEmptyClears() {
	listSuite.numbers.Assign(New[int]())
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.requireValid(listSuite.numbers)
}

func (listSuite *listTestSuite) TestAssignFuncFailureKeepsTarget() {
	target := New(7, 8)
	failure := errors.New("copy failed")
	err := target.AssignFunc(listSuite.numbers, func(v int) (int, error) {
		if v == 2 {
			return 0, failure
		}
		return v, nil
	})
	listSuite.ErrorIs(err, failure)
	listSuite.Equal([]int{7, 8}, target.Values())
	listSuite.requireValid(target)
}

func (listSuite *listTestSuite) TestAssignFuncConverts() {
	target := New[string]()
	source := New("1", "2")
	err := target.AssignFunc(source, func(v string) (string, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n * 10), nil
	})
	listSuite.Require().NoError(err)
	listSuite.Equal([]string{"10", "20"}, target.Values())
}

func (listSuite *listTestSuite) TestSwapTwiceRestores() {
	other := New(4, 5)
	Swap(listSuite.numbers, other)
	listSuite.Equal([]int{4, 5}, listSuite.numbers.Values())
	listSuite.Equal([]int{1, 2, 3}, other.Values())
	listSuite.Equal(2, listSuite.numbers.GetSize())
	listSuite.Equal(3, other.GetSize())

	listSuite.numbers.Swap(other)
	listSuite.Equal([]int{1, 2, 3}, listSuite.numbers.Values())
	listSuite.Equal([]int{4, 5}, other.Values())
}

func (listSuite *listTestSuite) TestSwapKeepsElementIterators() {
	it := listSuite.numbers.Begin()
	other := New[int]()
	other.Swap(listSuite.numbers)
	listSuite.True(it.Equal(other.Begin()))
	listSuite.True(listSuite.numbers.IsEmpty())
	listSuite.True(listSuite.numbers.Begin().Equal(listSuite.numbers.End()))
}

func (listSuite *listTestSuite) TestAllStopsEarly() {
	var seen []int
	for v := range New(1, 2, 3, 4).All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	listSuite.Equal([]int{1, 2}, seen)
}
