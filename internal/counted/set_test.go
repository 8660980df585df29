package counted

import (
	"bytes"
	"cmp"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/multiset/internal/balance"
)

func makeSet(opts ...Option) Set[int, struct{}] {
	return Make[int, struct{}](cmp.Compare[int], nil, opts)
}

func TestInsertAndRemove(t *testing.T) {
	s := makeSet()
	require.True(t, s.Insert(3))
	require.False(t, s.Insert(3))
	require.NoError(t, s.InsertN(5, 4))
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 2, s.Distinct())
	assert.Equal(t, 4, s.Count(5))
	assert.Equal(t, 0, s.Count(4))

	require.True(t, s.Remove(3))
	assert.Equal(t, 1, s.Count(3))
	require.True(t, s.Remove(3))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Remove(3))

	assert.Equal(t, 4, s.RemoveAll(5))
	assert.Equal(t, 0, s.RemoveAll(5))
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Verify())
}

func TestRemoveNErrors(t *testing.T) {
	s := makeSet()
	require.NoError(t, s.InsertN(7, 3))

	require.ErrorIs(t, s.RemoveN(8, 1), ErrNotFound)
	require.ErrorIs(t, s.RemoveN(7, 4), ErrCountExceeded)
	assert.Equal(t, 3, s.Count(7), "failed removal changes nothing")
	require.ErrorIs(t, s.RemoveN(7, 0), ErrInvalidCount)
	require.ErrorIs(t, s.InsertN(7, -1), ErrInvalidCount)

	require.NoError(t, s.RemoveN(7, 2))
	assert.Equal(t, 1, s.Count(7))
	require.NoError(t, s.RemoveN(7, 1))
	assert.False(t, s.Contains(7))
	require.NoError(t, s.Verify())
}

func TestRemoveReportsAbsence(t *testing.T) {
	s := makeSet()
	require.False(t, s.Remove(1))
	require.ErrorIs(t, s.RemoveN(1, 1), ErrNotFound)
	assert.Equal(t, 0, s.Len())

	s.Insert(1)
	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	assert.False(t, s.Contains(1))
	require.NoError(t, s.Verify())
}

func TestMinMaxAndIteration(t *testing.T) {
	s := makeSet(WithBalancing(balance.None))
	_, ok := s.Min()
	require.False(t, ok)
	_, ok = s.Max()
	require.False(t, ok)

	for _, v := range []int{5, 3, 8, 3, 1} {
		s.Insert(v)
	}
	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 8, hi)

	var vals, counts []int
	for v, c := range s.All() {
		vals = append(vals, v)
		counts = append(counts, c)
	}
	assert.Equal(t, []int{1, 3, 5, 8}, vals)
	assert.Equal(t, []int{1, 2, 1, 1}, counts)
	assert.Equal(t, []int{1, 3, 3, 5, 8}, slices.Collect(s.Values()))

	var first []int
	for v := range s.Values() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 3}, first)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, ";", s.String())
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := makeSet(WithLogger(logger))
	s.Insert(42)
	s.Insert(42)
	s.RemoveAll(42)
	out := buf.String()
	assert.Contains(t, out, "value added")
	assert.Contains(t, out, "value removed")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("value=42")))
}

func TestDump(t *testing.T) {
	s := makeSet()
	for _, v := range []int{1, 2, 3} {
		s.Insert(v)
	}
	out := s.Dump()
	assert.Contains(t, out, "2 ×1 (h=2)")
	assert.Equal(t, 2, s.Height())
}
