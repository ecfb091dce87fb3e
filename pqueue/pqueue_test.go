package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborescent/morphotree/pqueue"
)

func TestPopReturnsAscendingOrder(t *testing.T) {
	q := pqueue.New[int, string]()
	q.Push(5, "five")
	q.Push(1, "one")
	q.Push(3, "three")

	var got []int
	for !q.Empty() {
		k, _, ok := q.Pop()
		require.True(t, ok)
		got = append(got, k)
	}
	require.Equal(t, []int{1, 3, 5}, got)
}

func TestTopDoesNotRemove(t *testing.T) {
	q := pqueue.New[int, string]()
	q.Push(2, "two")
	q.Push(1, "one")

	k, p, ok := q.Top()
	require.True(t, ok)
	require.Equal(t, 1, k)
	require.Equal(t, "one", p)
	require.Equal(t, 2, q.Len())
}

func TestUpdateDecreaseKey(t *testing.T) {
	q := pqueue.New[int, string]()
	h := q.Push(10, "a")
	q.Push(1, "b")

	q.Update(h, -5, "a")
	k, p, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, -5, k)
	require.Equal(t, "a", p)
}

func TestUpdateIncreaseKey(t *testing.T) {
	q := pqueue.New[int, string]()
	q.Push(1, "a")
	h := q.Push(2, "b")

	q.Update(h, 100, "b")
	k, _, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, k)

	k, _, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 100, k)
}

func TestEmptyQueue(t *testing.T) {
	q := pqueue.New[int, int]()
	require.True(t, q.Empty())
	_, _, ok := q.Pop()
	require.False(t, ok)
}
