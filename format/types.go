// Package format defines the primitive data types of LAS extra bytes
// dimensions: the on-disk type codes, the in-memory type tags, and the fixed
// byte width of each type.
package format

// DataType identifies the primitive element type of an extra bytes dimension.
// The numeric value of each tag is its on-disk type code as stored in the
// descriptor record, so a valid DataType converts to and from the wire byte
// without a translation table. Code 0 is reserved/undefined.
type DataType uint8

const (
	TypeU8         DataType = 0x01 // TypeU8 represents an unsigned 8-bit integer.
	TypeI8         DataType = 0x02 // TypeI8 represents a signed 8-bit integer.
	TypeU16        DataType = 0x03 // TypeU16 represents an unsigned 16-bit integer.
	TypeI16        DataType = 0x04 // TypeI16 represents a signed 16-bit integer.
	TypeU32        DataType = 0x05 // TypeU32 represents an unsigned 32-bit integer.
	TypeI32        DataType = 0x06 // TypeI32 represents a signed 32-bit integer.
	TypeU64        DataType = 0x07 // TypeU64 represents an unsigned 64-bit integer.
	TypeI64        DataType = 0x08 // TypeI64 represents a signed 64-bit integer.
	TypeF32        DataType = 0x09 // TypeF32 represents an IEEE-754 single-precision float.
	TypeF64        DataType = 0x0A // TypeF64 represents an IEEE-754 double-precision float.
	TypeByteArray2 DataType = 0x0B // TypeByteArray2 represents two independent unsigned bytes.
)

// Size returns the byte width of one value of this type within a point's
// packed extra bytes. It is a total function: invalid tags return 0.
func (t DataType) Size() int {
	switch t {
	case TypeU8, TypeI8:
		return 1
	case TypeU16, TypeI16, TypeByteArray2:
		return 2
	case TypeU32, TypeI32, TypeF32:
		return 4
	case TypeU64, TypeI64, TypeF64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the defined type tags.
func (t DataType) Valid() bool {
	return t >= TypeU8 && t <= TypeByteArray2
}

func (t DataType) String() string {
	switch t {
	case TypeU8:
		return "U8"
	case TypeI8:
		return "I8"
	case TypeU16:
		return "U16"
	case TypeI16:
		return "I16"
	case TypeU32:
		return "U32"
	case TypeI32:
		return "I32"
	case TypeU64:
		return "U64"
	case TypeI64:
		return "I64"
	case TypeF32:
		return "F32"
	case TypeF64:
		return "F64"
	case TypeByteArray2:
		return "ByteArray2"
	default:
		return "Unknown"
	}
}
