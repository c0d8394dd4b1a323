package utils

import "math"

// CheckMultiplyOverflow reports whether a*b would overflow uint64.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil
	}
	if a > math.MaxUint64/b {
		return WrapError(ErrInputOutOfRange, "multiplication overflow", nil)
	}
	return nil
}

// SafeMultiply multiplies two uint64 values, failing on overflow.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// CheckU32Range reports whether n exceeds the range of a u32, per spec
// §4.3's "builder fails if n_items exceeds the u32 range".
func CheckU32Range(n uint64) error {
	if n > math.MaxUint32 {
		return WrapError(ErrInputOutOfRange, "item count exceeds u32 range", nil)
	}
	return nil
}
