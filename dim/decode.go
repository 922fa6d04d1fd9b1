package dim

import (
	"fmt"
	"math"

	"github.com/arloliu/lasx/endian"
	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/format"
)

// Decode reads one value of type t at offset in data using the given byte
// order engine.
//
// The read is bounds-checked before any byte is touched: a short or nil
// buffer yields ErrTruncatedBuffer, never a panic or an out-of-range read.
//
// Parameters:
//   - data: Packed extra bytes of a single point record
//   - offset: Byte offset of the field within data
//   - t: Data type of the field
//   - engine: Endian engine for byte order (LAS payloads use endian.Little())
//
// Returns:
//   - Value: Decoded value tagged with t
//   - error: ErrUnknownDataType for an invalid tag, ErrTruncatedBuffer when
//     the field does not fit in data
func Decode(data []byte, offset int, t format.DataType, engine endian.Engine) (Value, error) {
	width := t.Size()
	if width == 0 {
		return Value{}, fmt.Errorf("%w: %d", errs.ErrUnknownDataType, uint8(t))
	}
	// The subtraction form cannot overflow for any offset.
	if offset < 0 || offset > len(data)-width {
		return Value{}, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrTruncatedBuffer, width, offset, len(data))
	}

	switch t {
	case format.TypeU8:
		return U8(data[offset]), nil
	case format.TypeI8:
		return I8(int8(data[offset])), nil
	case format.TypeU16:
		return U16(engine.Uint16(data[offset:])), nil
	case format.TypeI16:
		return I16(int16(engine.Uint16(data[offset:]))), nil
	case format.TypeU32:
		return U32(engine.Uint32(data[offset:])), nil
	case format.TypeI32:
		return I32(int32(engine.Uint32(data[offset:]))), nil
	case format.TypeU64:
		return U64(engine.Uint64(data[offset:])), nil
	case format.TypeI64:
		return I64(int64(engine.Uint64(data[offset:]))), nil
	case format.TypeF32:
		return F32(math.Float32frombits(engine.Uint32(data[offset:]))), nil
	case format.TypeF64:
		return F64(math.Float64frombits(engine.Uint64(data[offset:]))), nil
	case format.TypeByteArray2:
		return Array2([2]byte{data[offset], data[offset+1]}), nil
	default:
		return Value{}, fmt.Errorf("%w: %d", errs.ErrUnknownDataType, uint8(t))
	}
}

// Append serializes v at its type's width and appends the bytes to dst,
// returning the extended slice. It is the inverse of Decode: appending a
// value and decoding it back at the same offset reproduces the value.
//
// A Value with an invalid type appends nothing.
func Append(dst []byte, v Value, engine endian.Engine) []byte {
	switch v.typ {
	case format.TypeU8, format.TypeI8:
		return append(dst, byte(v.bits))
	case format.TypeU16, format.TypeI16:
		return engine.AppendUint16(dst, uint16(v.bits))
	case format.TypeU32, format.TypeI32, format.TypeF32:
		return engine.AppendUint32(dst, uint32(v.bits))
	case format.TypeU64, format.TypeI64, format.TypeF64:
		return engine.AppendUint64(dst, v.bits)
	case format.TypeByteArray2:
		return append(dst, v.arr[0], v.arr[1])
	default:
		return dst
	}
}
