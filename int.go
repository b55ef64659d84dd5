package num

import (
	"bytes"

	"github.com/pkg/errors"
)

var (
	// ErrMalformed is returned, wrapped with details, when a string is not a
	// valid optionally signed decimal integer.
	ErrMalformed = errors.New("num: malformed integer")

	// ErrDivisionByZero is returned when the divisor of Quo, Rem or QuoRem
	// is zero.
	ErrDivisionByZero = errors.New("num: division by zero")
)

type signKind uint8

const (
	positive signKind = iota
	negative
)

// Int is an arbitrary-precision signed integer: a sign and a magnitude of
// base-256 limbs.
//
// Int is a value type; all arithmetic returns new values and never modifies
// the receiver or the argument. The only mutating method is Negate. The zero
// value is 0 and ready to use.
type Int struct {
	sign signKind
	mag  nat
}

func zero() Int { return Int{sign: positive, mag: nat{0}} }

// normalize restores the representation invariants after an operation:
// no most-significant zero limbs, and zero is always positive.
func (i Int) normalize() Int {
	i.mag = i.mag.norm()
	if i.mag.isZero() {
		i.sign = positive
	}
	return i
}

// magnitude returns the limbs of i, reading the empty zero value as [0].
func (i Int) magnitude() nat {
	if len(i.mag) == 0 {
		return nat{0}
	}
	return i.mag
}

func (s signKind) flip() signKind {
	if s == positive {
		return negative
	}
	return positive
}

// Clone returns a copy of i that shares no storage with it.
func (i Int) Clone() Int {
	return Int{sign: i.sign, mag: i.magnitude().clone()}
}

func (i Int) IsZero() bool { return i.magnitude().isZero() }

func (i Int) IsNegative() bool { return i.sign == negative }

// IsPositive reports whether i >= 0. Zero counts as positive.
func (i Int) IsPositive() bool { return i.sign == positive }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.sign == negative {
		return -1
	}
	return 1
}

// Negate flips the sign of i in place. The magnitude is left untouched and
// zero stays positive.
func (i *Int) Negate() {
	if i.IsZero() {
		i.sign = positive
		return
	}
	i.sign = i.sign.flip()
}

func (i Int) Neg() Int {
	i.Negate()
	return i
}

func (i Int) Abs() Int {
	i.sign = positive
	return i
}

func (i Int) Add(n Int) Int {
	x, y := i.magnitude(), n.magnitude()
	if i.sign == n.sign {
		return Int{sign: i.sign, mag: natAdd(x, y)}.normalize()
	}

	switch natCmp(x, y) {
	case 0:
		return zero()
	case 1:
		return Int{sign: i.sign, mag: natSub(x, y)}.normalize()
	default:
		return Int{sign: n.sign, mag: natSub(y, x)}.normalize()
	}
}

func (i Int) Sub(n Int) Int {
	x, y := i.magnitude(), n.magnitude()

	// i - (-n) == i + n
	if i.sign != n.sign {
		return Int{sign: i.sign, mag: natAdd(x, y)}.normalize()
	}

	switch natCmp(x, y) {
	case 0:
		return zero()
	case 1:
		return Int{sign: i.sign, mag: natSub(x, y)}.normalize()
	default:
		// i - n == -(n - i) when |i| < |n|
		return Int{sign: i.sign.flip(), mag: natSub(y, x)}.normalize()
	}
}

func (i Int) Inc() Int { return i.Add(Int{mag: nat{1}}) }
func (i Int) Dec() Int { return i.Sub(Int{mag: nat{1}}) }

// Mul returns the product i*n. Operands of karatsubaThreshold limbs or more
// are multiplied with a recursive divide-and-conquer algorithm.
func (i Int) Mul(n Int) Int {
	s := positive
	if i.sign != n.sign {
		s = negative
	}
	return Int{sign: s, mag: natMul(i.magnitude(), n.magnitude())}.normalize()
}

// QuoRem returns the quotient q and remainder r of i/by. If by is zero,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// r is either zero or has the sign of i, and |r| < |by|. Int does not
// support Euclidean or floored division.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	x, y := i.magnitude(), by.magnitude()
	if y.isZero() {
		return q, r, errors.WithStack(ErrDivisionByZero)
	}
	if x.isZero() || natCmp(x, y) < 0 {
		return zero(), i.normalize(), nil // it's 100% remainder
	}

	qm, rm := natQuoRem(x, y)

	qs := positive
	if i.sign != by.sign {
		qs = negative
	}
	q = Int{sign: qs, mag: qm}.normalize()
	r = Int{sign: i.sign, mag: rm}.normalize()
	return q, r, nil
}

// Quo returns the quotient i/by, truncated towards zero; see QuoRem.
func (i Int) Quo(by Int) (q Int, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder of i%by, which has the sign of i; see QuoRem.
func (i Int) Rem(by Int) (r Int, err error) {
	_, r, err = i.QuoRem(by)
	return r, err
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Int) Cmp(n Int) int {
	if i.sign != n.sign {
		if i.sign == negative {
			return -1
		}
		return 1
	}
	c := natCmp(i.magnitude(), n.magnitude())
	if i.sign == negative {
		return -c
	}
	return c
}

func (i Int) Equal(n Int) bool {
	return i.sign == n.sign && bytes.Equal(i.magnitude(), n.magnitude())
}

func (i Int) NotEqual(n Int) bool         { return !i.Equal(n) }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// The *64 variants accept a native int64 as the second operand.

func (i Int) Add64(n int64) Int { return i.Add(IntFrom64(n)) }
func (i Int) Sub64(n int64) Int { return i.Sub(IntFrom64(n)) }
func (i Int) Mul64(n int64) Int { return i.Mul(IntFrom64(n)) }

func (i Int) QuoRem64(by int64) (q, r Int, err error) { return i.QuoRem(IntFrom64(by)) }
func (i Int) Quo64(by int64) (q Int, err error)       { return i.Quo(IntFrom64(by)) }
func (i Int) Rem64(by int64) (r Int, err error)       { return i.Rem(IntFrom64(by)) }

func (i Int) Cmp64(n int64) int               { return i.Cmp(IntFrom64(n)) }
func (i Int) Equal64(n int64) bool            { return i.Equal(IntFrom64(n)) }
func (i Int) NotEqual64(n int64) bool         { return i.NotEqual(IntFrom64(n)) }
func (i Int) GreaterThan64(n int64) bool      { return i.GreaterThan(IntFrom64(n)) }
func (i Int) GreaterOrEqualTo64(n int64) bool { return i.GreaterOrEqualTo(IntFrom64(n)) }
func (i Int) LessThan64(n int64) bool         { return i.LessThan(IntFrom64(n)) }
func (i Int) LessOrEqualTo64(n int64) bool    { return i.LessOrEqualTo(IntFrom64(n)) }
