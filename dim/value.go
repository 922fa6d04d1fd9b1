package dim

import (
	"fmt"
	"math"

	"github.com/arloliu/lasx/format"
)

// Value is a single decoded extra dimension value tagged with its data type.
//
// It is a compact tagged union: numeric payloads live in one 64-bit word
// (signed integers sign-extended, floats as their IEEE-754 bit patterns) and
// the two-byte array type keeps its raw bytes. Values are small and passed
// by value; the zero Value carries an invalid type.
type Value struct {
	// primary payload; integer value or float bit pattern
	bits uint64

	// raw bytes for the two-byte array type
	arr [2]byte

	typ format.DataType
}

// U8 returns a Value holding an unsigned 8-bit integer.
func U8(v uint8) Value { return Value{typ: format.TypeU8, bits: uint64(v)} }

// I8 returns a Value holding a signed 8-bit integer.
func I8(v int8) Value { return Value{typ: format.TypeI8, bits: uint64(v)} }

// U16 returns a Value holding an unsigned 16-bit integer.
func U16(v uint16) Value { return Value{typ: format.TypeU16, bits: uint64(v)} }

// I16 returns a Value holding a signed 16-bit integer.
func I16(v int16) Value { return Value{typ: format.TypeI16, bits: uint64(v)} }

// U32 returns a Value holding an unsigned 32-bit integer.
func U32(v uint32) Value { return Value{typ: format.TypeU32, bits: uint64(v)} }

// I32 returns a Value holding a signed 32-bit integer.
func I32(v int32) Value { return Value{typ: format.TypeI32, bits: uint64(v)} }

// U64 returns a Value holding an unsigned 64-bit integer.
func U64(v uint64) Value { return Value{typ: format.TypeU64, bits: v} }

// I64 returns a Value holding a signed 64-bit integer.
func I64(v int64) Value { return Value{typ: format.TypeI64, bits: uint64(v)} }

// F32 returns a Value holding a 32-bit float.
func F32(v float32) Value { return Value{typ: format.TypeF32, bits: uint64(math.Float32bits(v))} }

// F64 returns a Value holding a 64-bit float.
func F64(v float64) Value { return Value{typ: format.TypeF64, bits: math.Float64bits(v)} }

// Array2 returns a Value holding two raw bytes.
func Array2(b [2]byte) Value { return Value{typ: format.TypeByteArray2, arr: b} }

// Type returns the data type tag of the value.
func (v Value) Type() format.DataType {
	return v.typ
}

// IsNumeric reports whether the value holds a numeric type, i.e. any known
// type except the two-byte array.
func (v Value) IsNumeric() bool {
	return v.typ.Valid() && v.typ != format.TypeByteArray2
}

// Any returns the value as its natural Go type: uint8 for U8, int16 for I16,
// float64 for F64, [2]byte for ByteArray2, and so on. It returns nil for the
// zero Value.
func (v Value) Any() any {
	switch v.typ {
	case format.TypeU8:
		return uint8(v.bits)
	case format.TypeI8:
		return int8(v.bits)
	case format.TypeU16:
		return uint16(v.bits)
	case format.TypeI16:
		return int16(v.bits)
	case format.TypeU32:
		return uint32(v.bits)
	case format.TypeI32:
		return int32(v.bits)
	case format.TypeU64:
		return v.bits
	case format.TypeI64:
		return int64(v.bits)
	case format.TypeF32:
		return math.Float32frombits(uint32(v.bits))
	case format.TypeF64:
		return math.Float64frombits(v.bits)
	case format.TypeByteArray2:
		return v.arr
	default:
		return nil
	}
}

// String returns the value in "Type(payload)" form, e.g. "U16(512)".
func (v Value) String() string {
	if !v.typ.Valid() {
		return "Invalid"
	}

	return fmt.Sprintf("%s(%v)", v.typ, v.Any())
}

// floatVal widens the payload of a float-typed value to float64. F32 widens
// exactly; callers guarantee the type is F32 or F64.
func (v Value) floatVal() float64 {
	if v.typ == format.TypeF32 {
		return float64(math.Float32frombits(uint32(v.bits)))
	}

	return math.Float64frombits(v.bits)
}
