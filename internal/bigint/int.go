package bigint

import "math/bits"

// wordBytes is the size of one storage word in bytes.
const wordBytes = 8

// zeroWords is the read-only magnitude of an uninitialized Int. It is never
// used as destination storage.
var zeroWords = []uint64{0}

// Int is an arbitrary-precision signed integer.
//
// The magnitude is held in base 2^64, least-significant word first: the
// slice length is the number of significant words and its capacity is the
// allocated storage. The zero value is uninitialized; it reads as zero and
// becomes usable as a destination once set with SetUint64, SetInt64,
// SetString or Set.
//
// Every operation that mutates an Int leaves it canonical: at least one
// word, no leading zero words, and zero is never negative.
type Int struct {
	digits []uint64
	neg    bool
}

// New returns a new Int holding value with the given sign.
func New(value uint64, neg bool) *Int {
	return new(Int).SetUint64(value, neg)
}

// NewInt64 returns a new Int holding v.
func NewInt64(v int64) *Int {
	return new(Int).SetInt64(v)
}

// SetUint64 sets z to value with the given sign and returns z. A zero value
// is stored as canonical zero regardless of neg.
func (z *Int) SetUint64(value uint64, neg bool) *Int {
	z.reserve(1)
	z.digits = z.digits[:1]
	z.digits[0] = value
	z.neg = neg && value != 0
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return z.SetUint64(u, v < 0)
}

// Set sets z to a deep copy of x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		z.init()
		return z
	}
	src := x.words()
	z.reserve(len(src))
	z.digits = z.digits[:len(src)]
	copy(z.digits, src)
	z.neg = x.neg
	return z.norm()
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// Reset releases z's storage and returns it to the uninitialized state.
func (z *Int) Reset() {
	z.digits = nil
	z.neg = false
}

// Shrink reallocates z's storage to exactly its significant words and
// returns the number of bytes now allocated.
func (z *Int) Shrink() int {
	if cap(z.digits) != len(z.digits) {
		shrunk := make([]uint64, len(z.digits))
		copy(shrunk, z.digits)
		z.digits = shrunk
	}
	return cap(z.digits) * wordBytes
}

// Len returns the number of significant words. An uninitialized Int has
// length 0.
func (x *Int) Len() int { return len(x.digits) }

// Cap returns the number of allocated words.
func (x *Int) Cap() int { return cap(x.digits) }

// BitLen returns the length of |x| in bits. Zero has length 0.
func (x *Int) BitLen() int {
	d := x.words()
	return (len(d)-1)*64 + bits.Len64(d[len(d)-1])
}

// Words returns a copy of the magnitude, least-significant word first.
func (x *Int) Words() []uint64 {
	return append([]uint64(nil), x.words()...)
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool {
	d := x.words()
	return len(d) == 1 && d[0] == 0
}

// IsNeg reports whether x < 0.
func (x *Int) IsNeg() bool {
	return x.neg && !x.IsZero()
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg flips the sign of z in place and returns z. Zero stays zero.
func (z *Int) Neg() *Int {
	z.init()
	z.neg = !z.neg
	return z.norm()
}

// Abs clears the sign of z in place and returns z.
func (z *Int) Abs() *Int {
	z.init()
	z.neg = false
	return z
}

// Cmp compares x and y and returns -1, 0 or +1. Zeros compare equal
// regardless of sign.
func (x *Int) Cmp(y *Int) int {
	xz, yz := x.IsZero(), y.IsZero()
	switch {
	case xz && yz:
		return 0
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	}
	r := cmpWords(x.words(), y.words())
	if x.neg {
		r = -r
	}
	return r
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return cmpWords(x.words(), y.words())
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// words returns the magnitude of x, reading an uninitialized Int as zero.
func (x *Int) words() []uint64 {
	if len(x.digits) == 0 {
		return zeroWords
	}
	return x.digits
}

// negated returns a read-only view of x with the sign flipped. The view
// shares x's storage and must not be used as a destination.
func (x *Int) negated() *Int {
	return &Int{digits: x.digits, neg: !x.neg}
}

// init turns an uninitialized z into canonical zero.
func (z *Int) init() {
	if len(z.digits) == 0 {
		z.SetUint64(0, false)
	}
}

// reserve guarantees room for n words. When storage must grow it is
// reallocated to 2n words; significant words are preserved. It never shrinks.
func (z *Int) reserve(n int) {
	if cap(z.digits) >= n {
		return
	}
	grown := make([]uint64, len(z.digits), 2*n)
	copy(grown, z.digits)
	z.digits = grown
}

// grow extends z to n significant words, zero-filling the new ones.
func (z *Int) grow(n int) {
	m := len(z.digits)
	if n <= m {
		return
	}
	z.reserve(n)
	z.digits = z.digits[:n]
	clear(z.digits[m:])
}

// norm restores the canonical form of z.
func (z *Int) norm() *Int {
	if len(z.digits) == 0 {
		return z
	}
	z.digits = normWords(z.digits)
	if len(z.digits) == 1 && z.digits[0] == 0 {
		z.neg = false
	}
	return z
}

// addWord adds w to the magnitude of z.
func (z *Int) addWord(w uint64) {
	if c := incr(z.digits, w); c != 0 {
		z.push(c)
	}
}

// mulWord multiplies the magnitude of z by w.
func (z *Int) mulWord(w uint64) {
	if c := mulAddVWW(z.digits, z.digits, w, 0); c != 0 {
		z.push(c)
	}
	z.norm()
}

// divWord divides the magnitude of z by w in place and returns the
// remainder. w must not be zero.
func (z *Int) divWord(w uint64) uint64 {
	r := divWVW(z.digits, 0, z.digits, w)
	z.norm()
	return r
}

// push appends one most-significant word.
func (z *Int) push(w uint64) {
	n := len(z.digits)
	z.reserve(n + 1)
	z.digits = z.digits[:n+1]
	z.digits[n] = w
}
