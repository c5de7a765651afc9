package Trees

import "golang.org/x/exp/constraints"

// A node in the AVLTree
// The zero value is the nil node: both children point at itself and bf=0.
type node[K any, V any, S constraints.Unsigned] struct {
	k    K
	v    V
	l, r S
	bf   int8 // height(r)-height(l)
}

// rotateLeft performs a left rotation on the subtree at handle ni. ni is passed by
// reference in order to modify its content. Only the balance factors of the two nodes
// involved change, and they are derived from their old values.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) rotateLeft(ni *S) {
	n := u.at(*ni)
	pi := n.r
	p := u.at(pi)
	n.r = p.l
	p.l = *ni
	n.bf -= 1 + max(p.bf, 0)
	p.bf -= 1 - min(n.bf, 0)
	*ni = pi
}

// rotateRight performs a right rotation on the subtree at handle ni. ni is passed by
// reference in order to modify its content. Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) rotateRight(ni *S) {
	n := u.at(*ni)
	pi := n.l
	p := u.at(pi)
	n.l = p.r
	p.r = *ni
	n.bf += 1 - min(p.bf, 0)
	p.bf += 1 + max(n.bf, 0)
	*ni = pi
}

// rebalance the subtree at ni whose balance factor just left [-1,1] because one of its
// children grew. Afterwards the subtree has the height it had before the insertion.
func (u *base[K, V, S]) rebalance(ni *S) {
	n := u.at(*ni)
	if n.bf < -1 {
		if u.at(n.l).bf > 0 {
			u.rotateLeft(&n.l)
		}
		u.rotateRight(ni)
	} else {
		if u.at(n.r).bf < 0 {
			u.rotateRight(&n.r)
		}
		u.rotateLeft(ni)
	}
}
