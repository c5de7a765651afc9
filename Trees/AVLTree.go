package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated keys. It maintains
// balance through rotations by tracking, at every node, the height of the
// right subtree minus the height of the left one.
// K is the type of the keys, V the type of the values stored alongside them,
// S the type of the handles addressing nodes in the underlying arena; S bounds
// the number of nodes the tree can hold to the maximum value of S.
// The worst case height of the tree is less than 1.4405*log2(n+2)-0.3277,
// so every Insert and Get is O(log n).
// The zero value is an empty tree ready to use.
type AVLTree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[K, V, S]
}

var _ Index[int, struct{}] = (*AVLTree[int, struct{}, uint32])(nil)

// NewAVL returns an empty tree with room for hint nodes before the arena grows.
func NewAVL[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *AVLTree[K, V, S] {
	nodes := make([]node[K, V, S], 1, uint(hint)+1)
	return &AVLTree[K, V, S]{base[K, V, S]{nodes: nodes}}
}

// insert k,v into the subtree at ni recursively. It returns the handle of the subtree
// after rebalancing, whether that subtree got taller, and whether k was added.
func (u *AVLTree[K, V, S]) insert(ni S, k K, v V) (S, bool, bool) {
	if ni == 0 {
		return u.alloc(k, v), true, true
	}
	var grew, added bool
	if ck := u.at(ni).k; k < ck {
		var l S
		l, grew, added = u.insert(u.at(ni).l, k, v)
		u.at(ni).l = l // alloc may have moved the arena, re-fetch the node.
		if grew {
			u.at(ni).bf--
		}
	} else if k > ck {
		var r S
		r, grew, added = u.insert(u.at(ni).r, k, v)
		u.at(ni).r = r
		if grew {
			u.at(ni).bf++
		}
	} else {
		return ni, false, false
	}
	if !grew {
		return ni, false, added
	}
	switch bf := u.at(ni).bf; {
	case bf < -1 || bf > 1:
		u.rebalance(&ni)
		return ni, false, true
	case bf == 0:
		return ni, false, true
	default:
		return ni, true, true
	}
}

// Insert [Index.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(log n)
func (u *AVLTree[K, V, S]) Insert(k K, v V) bool {
	root, _, added := u.insert(u.root, k, v)
	u.root = root
	return added
}

// Get [Index.Get]
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V, S]) Get(k K) *V {
	for curI := u.root; curI != 0; {
		if cur := u.at(curI); k < cur.k {
			curI = cur.l
		} else if k > cur.k {
			curI = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Has [Index.Has]
// Time: O(log n); Space: O(1)
func (u *AVLTree[K, V, S]) Has(k K) bool {
	return u.Get(k) != nil
}

// Corrupt [Index.Corrupt]. Recursive.
// Checks strict key order and that every balance factor equals the real height
// difference of the node's subtrees and lies within [-1,1].
// Time: O(n)
func (u *AVLTree[K, V, S]) Corrupt() bool {
	_, ok := u.check(u.root, nil, nil)
	return !ok
}

// check the subtree at i, whose keys must lie strictly between lo and hi when those are
// given. Returns the height of the subtree.
func (u *AVLTree[K, V, S]) check(i S, lo, hi *K) (int, bool) {
	if i == 0 {
		return 0, true
	}
	cur := u.at(i)
	if (lo != nil && cur.k <= *lo) || (hi != nil && cur.k >= *hi) {
		return 0, false
	}
	lh, ok := u.check(cur.l, lo, &cur.k)
	if !ok {
		return 0, false
	}
	rh, ok := u.check(cur.r, &cur.k, hi)
	if !ok {
		return 0, false
	}
	if d := rh - lh; d != int(cur.bf) || d < -1 || d > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
