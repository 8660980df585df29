package balance

import (
	"cmp"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/multiset/internal/abstract"
)

func makeTree(k Kind) abstract.Tree[int, struct{}] {
	return abstract.MakeTree[int, struct{}](cmp.Compare[int], nil, New[int, struct{}](k))
}

func requireAVL(t *testing.T, tree *abstract.Tree[int, struct{}]) {
	t.Helper()
	require.NoError(t, tree.Verify())
	it := tree.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		b := balanceOf(it.Node())
		require.Truef(t, b >= -1 && b <= 1, "node %d has balance %d", it.Cur(), b)
	}
	limit := 1.45 * math.Log2(float64(tree.Len()+2))
	require.LessOrEqual(t, float64(tree.Height()), limit)
}

func TestAVLSequentialInsert(t *testing.T) {
	tree := makeTree(AVL)
	for i := 0; i < 1000; i++ {
		tree.Insert(i)
	}
	requireAVL(t, &tree)
	require.Equal(t, 1000, tree.Len())
}

func TestAVLRandomDeletes(t *testing.T) {
	t.Parallel()
	tree := makeTree(AVL)
	const N = 500
	for _, v := range rand.Perm(N) {
		tree.Insert(v)
	}
	requireAVL(t, &tree)
	for i, v := range rand.Perm(N) {
		tree.DeleteNode(tree.Search(v))
		if i%25 == 0 {
			requireAVL(t, &tree)
		}
	}
	require.Nil(t, tree.Root())
	require.NoError(t, tree.Verify())
}

func TestNoneDegenerates(t *testing.T) {
	tree := makeTree(None)
	for i := 0; i < 64; i++ {
		tree.Insert(i)
	}
	require.NoError(t, tree.Verify())
	require.Equal(t, 64, tree.Height())
}

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp Kind
	}{
		{"avl", AVL},
		{"AVL", AVL},
		{"", AVL},
		{"none", None},
		{"unbalanced", None},
	} {
		k, err := ParseKind(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.exp, k)
		rt, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, rt)
	}
	_, err := ParseKind("red-black")
	require.Error(t, err)
}
