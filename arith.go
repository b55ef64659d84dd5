package num

// Limb-level primitives. Each works on single base-256 limbs and widens to
// uint16 internally, so no intermediate value can overflow:
//
//	255 + 255 + 1     = 511
//	255 * 255 + 255   = 65280
//
// The multi-limb routines in nat.go are built entirely from these.

// addLimbs returns carry<<8 + sum = x + y + c, with c == 0 or 1.
func addLimbs(x, y, c byte) (carry, sum byte) {
	t := uint16(x) + uint16(y) + uint16(c)
	return byte(t >> 8), byte(t)
}

// subLimbs returns diff - borrow<<8 = x - y - b, with b == 0 or 1.
func subLimbs(x, y, b byte) (borrow, diff byte) {
	t := int16(x) - int16(y) - int16(b)
	if t < 0 {
		return 1, byte(t + 256)
	}
	return 0, byte(t)
}

// mulAddLimb returns hi<<8 + lo = x*y + c.
func mulAddLimb(x, y, c byte) (hi, lo byte) {
	t := uint16(x)*uint16(y) + uint16(c)
	return byte(t >> 8), byte(t)
}

// mulLimbs writes x*y into z, which must have len(x) limbs, and returns the
// final carry limb.
func mulLimbs(z, x []byte, y byte) (carry byte) {
	for i, xi := range x {
		carry, z[i] = mulAddLimb(xi, y, carry)
	}
	return carry
}
