// Package safe provides overflow-checked integer conversions.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer types the conversions accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// PositiveUint32 is Uint32 that also rejects zero.
func PositiveUint32[T Integer](v T) (uint32, error) {
	if v == 0 {
		return 0, fmt.Errorf("value %d must be positive", v)
	}
	return Uint32(v)
}
