package bigint

import (
	"fmt"
	"testing"
)

func TestWordPool(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		size    int
		wantCap int
	}{
		{"tiny", 1, 16},
		{"small", 16, 16},
		{"medium", 17, 64},
		{"large", 1000, 1024},
		{"xlarge", 5000, 16384},
		{"too_large", 5000000, 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := acquireWords(tt.size)
			if len(s) != tt.size {
				t.Errorf("acquireWords(%d) length = %d", tt.size, len(s))
			}
			if cap(s) != tt.wantCap {
				t.Errorf("acquireWords(%d) capacity = %d, want %d", tt.size, cap(s), tt.wantCap)
			}
			releaseWords(s)
		})
	}
}

func TestPoolIndexMatchesLinearSearch(t *testing.T) {
	t.Parallel()
	linear := func(size int) int {
		for i, s := range wordPoolSizes {
			if size <= s {
				return i
			}
		}
		return -1
	}
	for size := 0; size <= wordPoolSizes[len(wordPoolSizes)-1]+1; size = size*5/4 + 1 {
		if got, want := poolIndex(size), linear(size); got != want {
			t.Errorf("poolIndex(%d) = %d, want %d", size, got, want)
		}
	}
	for _, s := range wordPoolSizes {
		for _, size := range []int{s - 1, s, s + 1} {
			if got, want := poolIndex(size), linear(size); got != want {
				t.Errorf("poolIndex(%d) = %d, want %d", size, got, want)
			}
		}
	}
}

func TestScratchCopyIsIndependent(t *testing.T) {
	t.Parallel()
	src := []uint64{1, 2, 3, ^uint64(0)}
	// Dirty a pooled slice so a stale value would show through.
	dirty := acquireWords(len(src))
	for i := range dirty {
		dirty[i] = 0xdead
	}
	releaseWords(dirty)

	s := scratchCopy(src)
	defer releaseWords(s)
	if len(s) != len(src) {
		t.Fatalf("scratchCopy length = %d, want %d", len(s), len(src))
	}
	for i := range src {
		if s[i] != src[i] {
			t.Errorf("scratchCopy[%d] = %#x, want %#x", i, s[i], src[i])
		}
	}
	s[0] = 42
	if src[0] != 1 {
		t.Error("scratchCopy shares storage with its source")
	}
}

func TestReleaseForeignSlice(t *testing.T) {
	t.Parallel()
	releaseWords(nil)
	releaseWords(make([]uint64, 100))
}

func BenchmarkScratchCopy(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		src := make([]uint64, n)
		b.Run(fmt.Sprintf("words=%d", n), func(b *testing.B) {
			for b.Loop() {
				releaseWords(scratchCopy(src))
			}
		})
	}
}
