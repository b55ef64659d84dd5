/*
Package num provides Int, an arbitrary-precision signed integer type
supporting exact addition, subtraction, multiplication, truncated division
and comparison.

Int is a value type; all operations return new values. The only exception is
Negate, which flips the sign of an Int in place.

Simple example:

	a, _ := IntFromString("123456789")
	b := IntFrom64(987654321)
	fmt.Println(a.Mul(b)) // 121932631112635269

Ints are stored as a sign and a magnitude of base-256 limbs, least
significant first. Large products are computed with a recursive
divide-and-conquer (Karatsuba) multiplication; division is long division
producing one quotient limb per dividend limb.

Int can be created from a variety of sources:

	IntFromString(s string) (out Int, err error)
	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFrom16(v int16) Int
	IntFrom8(v int8) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromBigInt(v *big.Int) Int

Only two operations can fail. IntFromString returns an error wrapping
ErrMalformed for malformed input, and Quo, Rem and QuoRem return
ErrDivisionByZero for a zero divisor. Test for them with errors.Is.

Int supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - gob.GobEncoder
  - gob.GobDecoder
*/
package num
