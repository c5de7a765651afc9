package Trees

import "cmp"

// Index represents an ordered, insert-only key/value structure implemented
// using nodes. Keys are unique; a second insertion of the same key is ignored
// and leaves both the shape of the structure and the stored value untouched.
// Methods returning a pointer return nil when the key isn't present.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Index[K cmp.Ordered, V any] interface {
	//Insert v under k. Returning true if k was new, false if k was already
	//present, in which case nothing is modified.
	Insert(k K, v V) bool
	//Get the pointer to the value stored under k.
	//The pointer is only valid until the next Insert.
	Get(k K) *V
	//Has k. Equivalent to Get(k)!=nil.
	Has(k K) bool
	//Size of the index.
	Size() uint
	//Height of the index, 0 when empty.
	Height() int
	//InOrder calls f on every key/value pair in ascending key order until f
	//returns false. The index must not be modified during the iteration.
	InOrder(f func(k K, v *V) bool)
	//Values returns a copy of all values in ascending key order.
	Values() []V
	//Corrupt returns whether the index has corrupt structures: keys out of
	//order or bookkeeping that doesn't match the real shape.
	Corrupt() bool
}
