// Package dim decodes and converts individual extra dimension values.
//
// A point record's extra bytes are a packed little-endian struct laid out by
// the schema's descriptors. This package reads one field of that struct into
// a Value, serializes a Value back into packed bytes, and performs checked
// numeric conversion to a caller-requested Go type.
//
// # Value Representation
//
// Value is a compact tagged union rather than an interface: the type tag
// plus a single 64-bit payload word (signed integers sign-extended, floats
// as IEEE-754 bit patterns) plus two raw bytes for the ByteArray2 type. A
// Value is immutable, small, and copied by value, so decoded values can be
// passed around and compared with == without allocation.
//
// # Decoding and Encoding
//
// Decode bounds-checks the requested field against the buffer before any
// byte is read; a short buffer is reported as errs.ErrTruncatedBuffer and a
// panic can never escape from a malformed input. Append is the inverse,
// serializing a value at its type's width:
//
//	v, err := dim.Decode(extra, 2, format.TypeU16, endian.Little())
//	if err != nil {
//	    return err
//	}
//	packed := dim.Append(nil, v, endian.Little())
//
// # Checked Conversion
//
// As[T] converts a Value to any of the ten Go numeric types, failing with
// errs.ErrCast whenever the conversion would alter the value:
//
//	height, err := dim.As[float64](v)   // any numeric source widens
//	count, err := dim.As[uint8](v)      // fails if v is 256, -1, NaN, ...
//
// The rules mirror checked numeric casts: integer sources must fit the
// target's range; float sources truncate toward zero for integer targets and
// the truncated value must fit; NaN never converts to an integer; finite
// values that overflow float32 fail while NaN and infinities pass through to
// float targets. ByteArray2 values never convert.
package dim
