package Trees

import (
	"testing"
)

var (
	bAddN uint32 = 1000000
	bQryN uint32 = bAddN / 2
)

func BenchmarkAVLTree_AddRandom(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		tree := NewAVL[int, int, uint32](bAddN)
		for iter := uint32(0); iter < bAddN; iter++ {
			v := rg.Int()
			tree.Insert(v, v)
		}
	}
}

func BenchmarkAVLTree_AddSequential(b *testing.B) {
	for iter := 0; iter < b.N; iter++ {
		tree := NewAVL[int, int, uint32](bAddN)
		for i := 0; i < int(bAddN); i++ {
			tree.Insert(i, i)
		}
	}
}

var sideEff *int

func BenchmarkAVLTree_Get(b *testing.B) {
	tree := NewAVL[int, int, uint32](bAddN)
	for i := 0; i < int(bAddN); i++ {
		tree.Insert(i<<1, i)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		for iter := uint32(0); iter < bQryN; iter++ {
			sideEff = tree.Get(rg.Intn(int(bAddN) << 1))
		}
	}
}

func BenchmarkAVLTree_Values(b *testing.B) {
	tree := NewAVL[int, int, uint32](bAddN)
	for iter := uint32(0); iter < bAddN; iter++ {
		v := rg.Int()
		tree.Insert(v, v)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_ = tree.Values()
	}
}
