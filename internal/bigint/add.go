package bigint

// Sum sets z = x + y and returns z. Any of z, x and y may be the same value.
func (z *Int) Sum(x, y *Int) *Int {
	if x.neg != y.neg {
		return z.Difference(x, y.negated())
	}
	neg := x.neg
	xd, yd := x.words(), y.words()
	if alias(z.digits, xd) {
		xd = scratchCopy(xd)
		defer releaseWords(xd)
	}
	if alias(z.digits, yd) {
		yd = scratchCopy(yd)
		defer releaseWords(yd)
	}
	if len(xd) < len(yd) {
		xd, yd = yd, xd
	}
	m, n := len(xd), len(yd)

	z.reserve(m + 1)
	z.digits = z.digits[:m+1]
	c := addVV(z.digits[:n], xd[:n], yd)
	z.digits[m] = addVW(z.digits[n:m], xd[n:], c)
	z.neg = neg
	return z.norm()
}

// Add sets z = z + x and returns z. x may be z.
func (z *Int) Add(x *Int) *Int {
	z.init()
	if z.neg != x.neg {
		return z.Subtract(x.negated())
	}
	xd := x.words()
	if alias(z.digits, xd) {
		xd = scratchCopy(xd)
		defer releaseWords(xd)
	}
	n := len(xd)
	z.grow(n)
	c := addVV(z.digits[:n], z.digits[:n], xd)
	if c = incr(z.digits[n:], c); c != 0 {
		z.push(c)
	}
	return z.norm()
}

// Difference sets z = x - y and returns z. Any of z, x and y may be the
// same value.
func (z *Int) Difference(x, y *Int) *Int {
	if x.neg != y.neg {
		return z.Sum(x, y.negated())
	}
	neg := x.neg
	if x.CmpAbs(y) < 0 {
		x, y = y, x
		neg = !neg
	}
	xd, yd := x.words(), y.words()
	if alias(z.digits, xd) {
		xd = scratchCopy(xd)
		defer releaseWords(xd)
	}
	if alias(z.digits, yd) {
		yd = scratchCopy(yd)
		defer releaseWords(yd)
	}
	m, n := len(xd), len(yd)

	z.reserve(m)
	z.digits = z.digits[:m]
	b := subVV(z.digits[:n], xd[:n], yd)
	subVW(z.digits[n:], xd[n:], b)
	z.neg = neg
	return z.norm()
}

// Subtract sets z = z - x and returns z. x may be z.
func (z *Int) Subtract(x *Int) *Int {
	z.init()
	if z.neg != x.neg {
		return z.Add(x.negated())
	}
	xd := x.words()
	if alias(z.digits, xd) {
		xd = scratchCopy(xd)
		defer releaseWords(xd)
	}
	n := len(xd)
	if cmpWords(z.digits, xd) >= 0 {
		b := subVV(z.digits[:n], z.digits[:n], xd)
		decr(z.digits[n:], b)
		return z.norm()
	}

	// |x| > |z|: z = -(x - z).
	m := len(z.digits)
	z.reserve(n)
	z.digits = z.digits[:n]
	b := subVV(z.digits[:m], xd[:m], z.digits[:m])
	subVW(z.digits[m:], xd[m:], b)
	z.neg = !z.neg
	return z.norm()
}
