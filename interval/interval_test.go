package interval

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/multiset"
)

// span covers [start, end), or only start when point is set.
type span struct {
	start, end int
	point      bool
}

func (s span) compare(o span) int {
	if c := cmp.Compare(s.start, o.start); c != 0 {
		return c
	}
	if c := cmp.Compare(s.end, o.end); c != 0 {
		return c
	}
	switch {
	case s.point == o.point:
		return 0
	case s.point:
		return -1
	default:
		return 1
	}
}

func (s span) key() int     { return s.start }
func (s span) endKey() int  { return s.end }
func (s span) hasEnd() bool { return !s.point }

func (s span) upperContains(k int) bool {
	if s.point {
		return k <= s.start
	}
	return k < s.end
}

func (s span) overlaps(o span) bool {
	return o.upperContains(s.start) && s.upperContains(o.start)
}

func makeSpanSet(opts ...multiset.Option) *Set[span, int] {
	return MakeSet(cmp.Compare[int], span.compare, span.key, span.endKey, span.hasEnd, opts...)
}

func randomSpan() span {
	start := rand.Intn(100)
	if rand.Float64() < .1 {
		return span{start: start, end: start, point: true}
	}
	return span{start: start, end: start + rand.Intn(15)}
}

func TestIntervalTree(t *testing.T) {
	assertEq := func(t *testing.T, exp, got span) {
		t.Helper()
		if exp != got {
			t.Fatalf("expected %v, got %v", exp, got)
		}
	}
	tree := makeSpanSet()
	items := []span{{1, 2, false}, {2, 3, false}, {2, 4, false}, {3, 3, true}, {3, 4, false}}
	for _, item := range items {
		tree.Insert(item)
	}
	iter := tree.MakeIter()
	iter.First()
	for _, exp := range items {
		assertEq(t, exp, iter.Cur())
		iter.Next()
	}
	require.False(t, iter.Valid())

	var got []span
	it := tree.MakeIter()
	for it.FirstOverlap(span{start: 3, point: true}); it.Valid(); it.NextOverlap() {
		got = append(got, it.Cur())
	}
	require.Equal(t, []span{{2, 4, false}, {3, 3, true}, {3, 4, false}}, got)
}

func TestNextOverlapWithoutScan(t *testing.T) {
	tree := makeSpanSet()
	tree.Insert(span{start: 1, end: 5})
	tree.Insert(span{start: 2, end: 5})
	it := tree.MakeIter()
	it.First()
	require.True(t, it.Valid())
	it.NextOverlap()
	require.False(t, it.Valid())
}

func TestOverlappingRandom(t *testing.T) {
	for _, b := range []multiset.Balancing{multiset.AVL, multiset.Unbalanced} {
		b := b
		t.Run(b.String(), func(t *testing.T) {
			t.Parallel()
			tree := makeSpanSet(multiset.WithBalancing(b))
			model := map[span]int{}
			for i := 0; i < 2000; i++ {
				s := randomSpan()
				if rand.Float64() < .65 {
					tree.Insert(s)
					model[s]++
				} else if tree.Remove(s) {
					if model[s]--; model[s] == 0 {
						delete(model, s)
					}
				}
				if i%100 != 0 {
					continue
				}
				require.NoError(t, tree.Verify())
				for j := 0; j < 20; j++ {
					q := randomSpan()
					var exp, got []span
					var expCounts, gotCounts []int
					for s := range model {
						if s.overlaps(q) {
							exp = append(exp, s)
						}
					}
					slices.SortFunc(exp, span.compare)
					for _, s := range exp {
						expCounts = append(expCounts, model[s])
					}
					for s, c := range tree.Overlapping(q) {
						got = append(got, s)
						gotCounts = append(gotCounts, c)
					}
					require.Equal(t, exp, got, "query %v", q)
					require.Equal(t, expCounts, gotCounts, "query %v", q)
				}
			}
		})
	}
}

func TestOverlappingEarlyExit(t *testing.T) {
	tree := makeSpanSet()
	for i := 0; i < 10; i++ {
		tree.Insert(span{start: i, end: 20})
	}
	var n int
	for range tree.Overlapping(span{start: 5, end: 6}) {
		if n++; n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestMixedMutationsKeepBounds(t *testing.T) {
	for _, b := range []multiset.Balancing{multiset.AVL, multiset.Unbalanced} {
		b := b
		t.Run(b.String(), func(t *testing.T) {
			t.Parallel()
			tree := makeSpanSet(multiset.WithBalancing(b))
			model := map[span]int{}
			for i := 0; i < 3000; i++ {
				s := randomSpan()
				switch r := rand.Float64(); {
				case r < .5:
					k := 1 + rand.Intn(3)
					require.NoError(t, tree.InsertN(s, k))
					model[s] += k
				case r < .8:
					if model[s] == 0 {
						require.ErrorIs(t, tree.RemoveN(s, 1), multiset.ErrNotFound)
						continue
					}
					k := 1 + rand.Intn(model[s])
					require.NoError(t, tree.RemoveN(s, k))
					if model[s] -= k; model[s] == 0 {
						delete(model, s)
					}
				default:
					require.Equal(t, model[s], tree.RemoveAll(s))
					delete(model, s)
				}
				require.NoError(t, tree.Verify())
				require.Equal(t, len(model), tree.Distinct())

				q := randomSpan()
				var exp, got []span
				for s := range model {
					if s.overlaps(q) {
						exp = append(exp, s)
					}
				}
				slices.SortFunc(exp, span.compare)
				for s, c := range tree.Overlapping(q) {
					require.Equal(t, model[s], c, "count of %v", s)
					got = append(got, s)
				}
				require.Equal(t, exp, got, "query %v", q)
			}
		})
	}
}
