package utils

import "cmp"

// Unsigned covers the counter types used by the ledger.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Unsigned]() T {
	var zero T
	return ^zero
}

// SaturatingAdd returns a+b, silently capped at limit.
func SaturatingAdd[T Unsigned](a, b, limit T) T {
	if a >= limit || b >= limit-a {
		return limit
	}
	return a + b
}

// SaturatingSub returns a-b, floored at zero.
func SaturatingSub[T Unsigned](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

// CheckedAdd returns a+b and true, or a and false when the sum would exceed limit.
// Callers turn the false case into a hard error instead of truncating.
func CheckedAdd[T Unsigned](a, b, limit T) (T, bool) {
	if a > limit || b > limit-a {
		return a, false
	}
	return a + b, true
}

// CheckedSub returns a-b and true, or a and false when b > a.
func CheckedSub[T Unsigned](a, b T) (T, bool) {
	if b > a {
		return a, false
	}
	return a - b, true
}

// CheckedMul returns a*b and true, or zero and false on overflow.
func CheckedMul[T Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// ScaleBasisPoints returns v*bp/10000 using 64-bit intermediate math.
func ScaleBasisPoints(v, bp uint32) uint32 {
	return uint32(uint64(v) * uint64(bp) / 10000)
}
