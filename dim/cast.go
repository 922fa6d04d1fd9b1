package dim

import (
	"fmt"
	"math"

	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/format"
)

// Numeric is the set of Go types a Value can be converted to with As.
type Numeric interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// Float comparison bounds for the 64-bit integer targets. MaxInt64 and
// MaxUint64 are not exactly representable in float64, so the checks use the
// exclusive power-of-two bounds instead.
const (
	maxInt64PlusOne  = 9223372036854775808.0  // 2^63
	maxUint64PlusOne = 18446744073709551616.0 // 2^64
)

// As converts v to the numeric type T, failing whenever the conversion would
// alter the value.
//
// Conversion rules:
//   - Integer sources convert to any integer target that can represent the
//     exact value, and to float targets unconditionally (rounding to the
//     nearest representable float is not a failure).
//   - Float sources truncate toward zero for integer targets; the truncated
//     value must fit the target's range. NaN and infinities never convert to
//     integers.
//   - A finite float that overflows float32 fails; NaN and infinities pass
//     through to float targets.
//   - ByteArray2 values never convert.
//
// Returns:
//   - T: Converted value, zero on failure
//   - error: ErrCast naming the source value and target type
func As[T Numeric](v Value) (T, error) {
	var (
		out T
		ok  bool
	)

	switch v.typ {
	case format.TypeU8, format.TypeU16, format.TypeU32, format.TypeU64:
		out, ok = castFromUint[T](v.bits)
	case format.TypeI8, format.TypeI16, format.TypeI32, format.TypeI64:
		out, ok = castFromInt[T](int64(v.bits))
	case format.TypeF32, format.TypeF64:
		out, ok = castFromFloat[T](v.floatVal())
	default:
		return out, fmt.Errorf("%w: %s to %T", errs.ErrCast, v, out)
	}

	if !ok {
		return out, fmt.Errorf("%w: %s to %T", errs.ErrCast, v, out)
	}

	return out, nil
}

func castFromUint[T Numeric](u uint64) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		if u > math.MaxUint8 {
			return out, false
		}
		*p = uint8(u)
	case *uint16:
		if u > math.MaxUint16 {
			return out, false
		}
		*p = uint16(u)
	case *uint32:
		if u > math.MaxUint32 {
			return out, false
		}
		*p = uint32(u)
	case *uint64:
		*p = u
	case *int8:
		if u > math.MaxInt8 {
			return out, false
		}
		*p = int8(u)
	case *int16:
		if u > math.MaxInt16 {
			return out, false
		}
		*p = int16(u)
	case *int32:
		if u > math.MaxInt32 {
			return out, false
		}
		*p = int32(u)
	case *int64:
		if u > math.MaxInt64 {
			return out, false
		}
		*p = int64(u)
	case *float32:
		*p = float32(u)
	case *float64:
		*p = float64(u)
	}

	return out, true
}

func castFromInt[T Numeric](i int64) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		if i < 0 || i > math.MaxUint8 {
			return out, false
		}
		*p = uint8(i)
	case *uint16:
		if i < 0 || i > math.MaxUint16 {
			return out, false
		}
		*p = uint16(i)
	case *uint32:
		if i < 0 || i > math.MaxUint32 {
			return out, false
		}
		*p = uint32(i)
	case *uint64:
		if i < 0 {
			return out, false
		}
		*p = uint64(i)
	case *int8:
		if i < math.MinInt8 || i > math.MaxInt8 {
			return out, false
		}
		*p = int8(i)
	case *int16:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return out, false
		}
		*p = int16(i)
	case *int32:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return out, false
		}
		*p = int32(i)
	case *int64:
		*p = i
	case *float32:
		*p = float32(i)
	case *float64:
		*p = float64(i)
	}

	return out, true
}

func castFromFloat[T Numeric](f float64) (T, bool) {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = f

		return out, true
	case *float32:
		if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return out, false
		}
		*p = float32(f)

		return out, true
	}

	// Integer targets: truncate toward zero, then range-check the truncated
	// value before converting, since out-of-range float-to-int conversion
	// behavior is implementation-specific in Go.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	}
	t := math.Trunc(f)

	switch p := any(&out).(type) {
	case *uint8:
		if t < 0 || t > math.MaxUint8 {
			return out, false
		}
		*p = uint8(t)
	case *uint16:
		if t < 0 || t > math.MaxUint16 {
			return out, false
		}
		*p = uint16(t)
	case *uint32:
		if t < 0 || t > math.MaxUint32 {
			return out, false
		}
		*p = uint32(t)
	case *uint64:
		if t < 0 || t >= maxUint64PlusOne {
			return out, false
		}
		*p = uint64(t)
	case *int8:
		if t < math.MinInt8 || t > math.MaxInt8 {
			return out, false
		}
		*p = int8(t)
	case *int16:
		if t < math.MinInt16 || t > math.MaxInt16 {
			return out, false
		}
		*p = int16(t)
	case *int32:
		if t < math.MinInt32 || t > math.MaxInt32 {
			return out, false
		}
		*p = int32(t)
	case *int64:
		if t < math.MinInt64 || t >= maxInt64PlusOne {
			return out, false
		}
		*p = int64(t)
	}

	return out, true
}
