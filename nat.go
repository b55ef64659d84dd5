package num

// nat is an unsigned magnitude stored as base-256 limbs, least significant
// limb first:
//
//	x = x[n-1]*256^(n-1) + x[n-2]*256^(n-2) + ... + x[1]*256 + x[0]
//
// A normalized nat has no most-significant zero limbs, except for zero
// itself, which is the single limb [0]. Every function in this file returns
// a normalized nat and never modifies its arguments; results may share
// storage with an argument only when they are numerically identical to it.
type nat []byte

var natTen = nat{10}

// norm strips most-significant zero limbs, leaving at least one limb.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return z[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

func (x nat) clone() nat {
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func natFromUint64(v uint64) nat {
	if v == 0 {
		return nat{0}
	}
	z := make(nat, 0, 8)
	for v > 0 {
		z = append(z, byte(v%256))
		v /= 256
	}
	return z
}

// uint64 returns the low 64 bits of x.
func (x nat) uint64() (v uint64) {
	n := len(x)
	if n > 8 {
		n = 8
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(x[i])
	}
	return v
}

// natCmp compares two normalized magnitudes and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func natCmp(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func natAdd(x, y nat) nat {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make(nat, n, n+1)

	var c byte
	for i := 0; i < n; i++ {
		var xi, yi byte
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		c, z[i] = addLimbs(xi, yi, c)
	}
	if c != 0 {
		z = append(z, c)
	}
	return z.norm()
}

// natSub returns x - y. The caller guarantees x >= y; the result is
// meaningless otherwise.
func natSub(x, y nat) nat {
	z := make(nat, len(x))

	var b byte
	for i, xi := range x {
		var yi byte
		if i < len(y) {
			yi = y[i]
		}
		b, z[i] = subLimbs(xi, yi, b)
	}
	return z.norm()
}

// shl returns x * 256^k by prepending k zero limbs.
func (x nat) shl(k int) nat {
	if k == 0 || x.isZero() {
		return x
	}
	z := make(nat, k+len(x))
	copy(z[k:], x)
	return z
}

// shr returns x / 256^k, discarding the k least-significant limbs.
func (x nat) shr(k int) nat {
	if k == 0 {
		return x
	}
	if k >= len(x) {
		return nat{0}
	}
	return x[k:].clone()
}

// low returns x mod 256^k: the k least-significant limbs of x.
func (x nat) low(k int) nat {
	if k >= len(x) {
		return x
	}
	return x[:k].clone().norm()
}

func natMul(x, y nat) nat {
	return natMulKaratsuba(x, y, karatsubaThreshold)
}

// natMulBasic is schoolbook multiplication: each limb of x scales y into a
// partial product shifted by the limb's position, and the partial products
// are summed.
func natMulBasic(x, y nat) nat {
	z := nat{0}
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		t := make(nat, i+len(y)+1)
		t[i+len(y)] = mulLimbs(t[i:i+len(y)], y, xi)
		z = natAdd(z, t)
	}
	return z
}

// natMulKaratsuba multiplies x and y by splitting both at m limbs:
//
//	x = x1*256^m + x0
//	y = y1*256^m + y0
//
//	x*y = z2*256^2m + z1*256^m + z0
//
//	z0 = x0*y0
//	z2 = x1*y1
//	z1 = (x1+x0)*(y1+y0) - z2 - z0
//
// Operands shorter than threshold limbs are handed to natMulBasic. So are
// single-limb operands regardless of threshold; that keeps m >= 1, and as
// x1+x0 < x whenever x has two or more limbs the recursion always
// terminates.
func natMulKaratsuba(x, y nat, threshold int) nat {
	if len(x) < threshold || len(y) < threshold || len(x) < 2 || len(y) < 2 {
		return natMulBasic(x, y)
	}

	m := len(x)
	if len(y) < m {
		m = len(y)
	}
	m /= 2

	x1, x0 := x.shr(m), x.low(m)
	y1, y0 := y.shr(m), y.low(m)

	z0 := natMulKaratsuba(x0, y0, threshold)
	z2 := natMulKaratsuba(x1, y1, threshold)
	z1 := natMulKaratsuba(natAdd(x1, x0), natAdd(y1, y0), threshold)
	z1 = natSub(natSub(z1, z2), z0)

	return natAdd(natAdd(z2.shl(2*m), z1.shl(m)), z0)
}

// natQuoRem returns x / y and x % y for y != 0 using long division, one
// quotient limb per dividend limb. Each quotient limb is the largest
// d in [1, 255] with y*d <= rem, found by binary search.
func natQuoRem(x, y nat) (q, r nat) {
	q = make(nat, 0, len(x))
	r = nat{0}

	for i := len(x) - 1; i >= 0; i-- {
		r = natAdd(r.shl(1), nat{x[i]})

		if natCmp(r, y) < 0 {
			q = append(q, 0)
			continue
		}

		var best nat
		var d byte
		lo, hi := 1, 255
		for lo <= hi {
			mid := lo + (hi-lo)/2
			p := natMul(nat{byte(mid)}, y)
			if natCmp(p, r) <= 0 {
				best, d = p, byte(mid)
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		q = append(q, d)
		r = natSub(r, best)
	}

	for i, j := 0, len(q)-1; i < j; i, j = i+1, j-1 {
		q[i], q[j] = q[j], q[i]
	}
	return q.norm(), r.norm()
}

// decimalToLimbs converts a string of ASCII decimal digits into a nat. Each
// pass divides the remaining decimal digit string by 256 digit by digit,
// keeping the quotient digits for the next pass and emitting the remainder
// as the next limb, so the value is never held in a native integer.
func decimalToLimbs(digits string) nat {
	d := make([]byte, 0, len(digits))
	for i := 0; i < len(digits); i++ {
		if len(d) == 0 && digits[i] == '0' {
			continue
		}
		d = append(d, digits[i]-'0')
	}
	if len(d) == 0 {
		return nat{0}
	}

	z := make(nat, 0, len(d)/2+1)
	for len(d) > 0 {
		var rem uint
		q := d[:0] // quotient digits overwrite digits already consumed
		for _, v := range d {
			cur := rem*10 + uint(v)
			if cur >= 256 || len(q) > 0 {
				q = append(q, byte(cur/256))
			}
			rem = cur % 256
		}
		z = append(z, byte(rem))
		d = q
	}
	return z.norm()
}
