package num

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a random Int of between 1 and maxLimbs limbs (each limb
// is 8 bits) with a random sign, from an external source. maxLimbs < 1
// returns zero.
func RandInt(source RandSource, maxLimbs int) Int {
	if maxLimbs < 1 {
		return zero()
	}

	n := 1 + int(source.Uint64()%uint64(maxLimbs))
	mag := make(nat, n)

	var word uint64
	for i := range mag {
		if i%8 == 0 {
			word = source.Uint64()
		}
		mag[i] = byte(word)
		word >>= 8
	}

	out := Int{sign: positive, mag: mag}
	if source.Uint64()&1 == 1 {
		out.sign = negative
	}
	return out.normalize()
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
