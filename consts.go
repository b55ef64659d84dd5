package num

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

// Operands shorter than karatsubaThreshold limbs are multiplied using
// schoolbook multiplication; longer ones are split and multiplied
// recursively. The value only affects speed, never the result.
var karatsubaThreshold = 32

// minInt64Limbs is the magnitude of math.MinInt64, 1<<63, which has no
// positive int64 counterpart to convert from.
var minInt64Limbs = nat{0, 0, 0, 0, 0, 0, 0, 0x80}
