package orderstat

import "github.com/ajwerner/multiset/internal/abstract"

type aug struct {
	// occurrences is the number of occurrences of all values rooted at the
	// current subtree.
	occurrences int
	// distinct is the number of nodes rooted at the current subtree.
	distinct int
}

type updater[T any] struct{}

// Update will update the counts for the current node.
func (updater[T]) Update(n *abstract.Node[T, aug], _ abstract.UpdateMeta[T]) (changed bool) {
	a := n.GetA()
	orig := *a
	occurrences, distinct := n.Count(), 1
	for _, c := range [...]*abstract.Node[T, aug]{n.Left(), n.Right()} {
		if c != nil {
			occurrences += c.GetA().occurrences
			distinct += c.GetA().distinct
		}
	}
	a.occurrences, a.distinct = occurrences, distinct
	return *a != orig
}

func occurrences[T any](n *abstract.Node[T, aug]) int {
	if n == nil {
		return 0
	}
	return n.GetA().occurrences
}

func distinct[T any](n *abstract.Node[T, aug]) int {
	if n == nil {
		return 0
	}
	return n.GetA().distinct
}
