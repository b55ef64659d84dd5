package num

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// IntFromString creates an Int from an optionally signed decimal string, such
// as "42", "-123" or "+7". Leading zeros are allowed; "0", "-0" and "000" all
// produce zero.
//
// An empty string, a sign with no digits, or any character other than 0-9
// after the sign returns an error wrapping ErrMalformed.
func IntFromString(s string) (out Int, err error) {
	if s == "" {
		return out, errors.Wrap(ErrMalformed, "int string is empty")
	}

	sign, digits := positive, s
	switch s[0] {
	case '-':
		sign, digits = negative, s[1:]
	case '+':
		digits = s[1:]
	}
	if digits == "" {
		return out, errors.Wrapf(ErrMalformed, "int string %q has no digits", s)
	}
	for idx, c := range digits {
		if c < '0' || c > '9' {
			return out, errors.Wrapf(ErrMalformed, "int string %q contains %q at offset %d", s, c, len(s)-len(digits)+idx)
		}
	}

	return Int{sign: sign, mag: decimalToLimbs(digits)}.normalize(), nil
}

func IntFrom64(v int64) Int {
	if v == minInt64 {
		// -v overflows; use the precomputed magnitude instead.
		return Int{sign: negative, mag: minInt64Limbs.clone()}
	} else if v < 0 {
		return Int{sign: negative, mag: natFromUint64(uint64(-v))}
	}
	return Int{sign: positive, mag: natFromUint64(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int     { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{sign: positive, mag: natFromUint64(v)} }

// IntFromBigInt creates an Int from a big.Int. Every big.Int is
// representable, so no accuracy flag is needed.
func IntFromBigInt(v *big.Int) Int {
	be := v.Bytes() // big-endian |v|
	mag := make(nat, len(be))
	for i, b := range be {
		mag[len(be)-1-i] = b
	}
	out := Int{sign: positive, mag: mag}
	if v.Sign() < 0 {
		out.sign = negative
	}
	return out.normalize()
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	x := i.magnitude()
	be := make([]byte, len(x))
	for j, l := range x {
		be[len(x)-1-j] = l
	}
	b.SetBytes(be)
	if i.sign == negative {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in a int64. Values outside the range will
// wrap around. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	v := i.magnitude().uint64()
	if i.sign == negative {
		return -int64(v)
	}
	return int64(v)
}

// IsInt64 reports whether i can be represented as a int64.
func (i Int) IsInt64() bool {
	x := i.magnitude()
	if len(x) > 8 {
		return false
	}
	v := x.uint64()
	if i.sign == negative {
		return v <= 1<<63
	}
	return v <= maxInt64
}

// String returns the canonical decimal form of i: no leading zeros, and a
// leading '-' only when i is negative.
func (i Int) String() string {
	x := i.magnitude()
	if x.isZero() {
		return "0"
	}

	// Each limb is worth log10(256) ~= 2.41 decimal digits.
	buf := make([]byte, 0, len(x)*5/2+2)

	var r nat
	for !x.isZero() {
		x, r = natQuoRem(x, natTen)
		buf = append(buf, '0'+r[0])
	}
	if i.sign == negative {
		buf = append(buf, '-')
	}
	for l, h := 0, len(buf)-1; l < h; l, h = l+1, h-1 {
		buf[l], buf[h] = buf[h], buf[l]
	}
	return string(buf)
}

// Format implements fmt.Formatter for the decimal verbs 'd', 's' and 'v'.
// The '+' and ' ' flags control the sign of non-negative values; width,
// precision (minimum digits), '-' and '0' padding behave as they do for
// built-in integers. Any other verb is reported as a bad verb.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(num.Int=%s)", c, i.String())
		return
	}

	digits := i.Abs().String()

	sign := ""
	switch {
	case i.sign == negative:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var left, zeroes, right int

	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeroes = precision - len(digits)
		case digits == "0" && precision == 0:
			return
		}
	}

	length := len(sign) + zeroes + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && !precisionSet:
			zeroes = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string, as JSON numbers lose
// precision beyond 2^53 in most decoders.
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON
// integer. A JSON null leaves i unchanged.
func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Wrapf(ErrMalformed, "int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface. The first byte holds the
// codec version and the sign bit; the magnitude follows, most significant
// limb first.
func (i Int) GobEncode() ([]byte, error) {
	x := i.magnitude()
	buf := make([]byte, 1+len(x))
	b := intGobVersion << 1
	if i.sign == negative {
		b |= 1
	}
	buf[0] = b
	for j, l := range x {
		buf[len(x)-j] = l
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (i *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*i = zero()
		return nil
	}
	b := buf[0]
	if b>>1 != intGobVersion {
		return errors.Errorf("num: Int.GobDecode: encoding version %d not supported", b>>1)
	}

	be := buf[1:]
	mag := make(nat, len(be))
	for j, l := range be {
		mag[len(be)-1-j] = l
	}
	v := Int{sign: positive, mag: mag}
	if b&1 != 0 {
		v.sign = negative
	}
	*i = v.normalize()
	return nil
}
