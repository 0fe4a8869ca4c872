package bigint

import (
	"math/bits"
	"sync"
)

// wordPools pools []uint64 scratch slices by size class. Classes are powers
// of four from 16 words (128 bytes) to 4M words (32MB).
var wordPools = [...]sync.Pool{
	{New: func() any { return make([]uint64, 16) }},
	{New: func() any { return make([]uint64, 64) }},
	{New: func() any { return make([]uint64, 256) }},
	{New: func() any { return make([]uint64, 1024) }},
	{New: func() any { return make([]uint64, 4096) }},
	{New: func() any { return make([]uint64, 16384) }},
	{New: func() any { return make([]uint64, 65536) }},
	{New: func() any { return make([]uint64, 262144) }},
	{New: func() any { return make([]uint64, 1048576) }},
	{New: func() any { return make([]uint64, 4194304) }},
}

var wordPoolSizes = [...]int{16, 64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// poolIndex returns the pool index for a slice of size words, or -1 when the
// size is too large for pooling. Index i holds slices of 4^(i+2) words.
func poolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordPoolSizes[len(wordPoolSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 3) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWords returns a slice of exactly size words with unspecified
// contents; every element must be written before it is read. Release it
// with releaseWords when done.
func acquireWords(size int) []uint64 {
	idx := poolIndex(size)
	if idx < 0 {
		return make([]uint64, size)
	}
	s := wordPools[idx].Get().([]uint64)
	return s[:size]
}

// releaseWords returns s to its pool. Slices that did not come from a pool
// are dropped. Safe to call with nil.
func releaseWords(s []uint64) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := poolIndex(c)
	if idx >= 0 && wordPoolSizes[idx] == c {
		wordPools[idx].Put(s[:c])
	}
}

// scratchCopy returns a pooled copy of x.
func scratchCopy(x []uint64) []uint64 {
	s := acquireWords(len(x))
	copy(s, x)
	return s
}
