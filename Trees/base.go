package Trees

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// base holds the node arena. nodes[0] is the nil node, so the handle 0 means "no subtree"
// and every other handle i refers to nodes[i]. Nodes are never freed individually; the
// whole arena goes away with the tree.
type base[K any, V any, S constraints.Unsigned] struct {
	root  S
	nodes []node[K, V, S]
}

func (u *base[K, V, S]) at(i S) *node[K, V, S] {
	return &u.nodes[i]
}

// alloc a leaf holding k and v. The arena is addressed by S, so running out of handles is
// fatal in the same way running out of memory is.
func (u *base[K, V, S]) alloc(k K, v V) S {
	if len(u.nodes) == 0 {
		u.nodes = append(u.nodes, node[K, V, S]{})
	}
	i := S(len(u.nodes))
	if uint64(len(u.nodes)) > uint64(^S(0)) {
		panic(fmt.Sprintf("tree arena exhausted: %d nodes do not fit in %d bit handles", len(u.nodes), bits.Len64(uint64(^S(0)))))
	}
	u.nodes = append(u.nodes, node[K, V, S]{k: k, v: v})
	return i
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) Size() uint {
	if len(u.nodes) == 0 {
		return 0
	}
	return uint(len(u.nodes) - 1)
}

// InOrder traversal of the tree using an explicit stack of at most Height() handles.
// f returning false stops the traversal.
func (u *base[K, V, S]) InOrder(f func(k K, v *V) bool) {
	st := make([]S, 0, 2*bits.Len(u.Size()+1))
	for curI := u.root; curI != 0; curI = u.at(curI).l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if cur := u.at(curI); !f(cur.k, &cur.v) {
			return
		}
		for curI = u.at(curI).r; curI != 0; curI = u.at(curI).l {
			st = append(st, curI)
		}
	}
}

// Values in ascending key order.
func (u *base[K, V, S]) Values() []V {
	vs := make([]V, 0, u.Size())
	u.InOrder(func(_ K, v *V) bool {
		vs = append(vs, *v)
		return true
	})
	return vs
}

// Height of the tree. Recursive.
// Time: O(n)
func (u *base[K, V, S]) Height() int {
	return u.height(u.root)
}

func (u *base[K, V, S]) height(i S) int {
	if i == 0 {
		return 0
	}
	return 1 + max(u.height(u.at(i).l), u.height(u.at(i).r))
}
