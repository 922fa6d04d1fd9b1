// Package errs defines the sentinel errors shared by all lasx packages.
//
// Call sites wrap these sentinels with fmt.Errorf("...: %w", err) to attach
// context (descriptor index, dimension name, byte counts) while keeping
// errors.Is matching, so callers can branch on the error kind without parsing
// messages:
//
//	_, err := schema.FieldAs[float64](s, extra, "reflectance")
//	if errors.Is(err, errs.ErrDimensionNotFound) {
//	    // the file simply doesn't carry this dimension
//	}
package errs

import "errors"

var (
	// ErrInvalidDescriptorSize is returned when an extra bytes descriptor
	// record is shorter than the fixed 192-byte layout.
	ErrInvalidDescriptorSize = errors.New("invalid extra bytes descriptor size")

	// ErrInvalidName is returned when a dimension name is not plain ASCII or
	// contains an embedded zero byte.
	ErrInvalidName = errors.New("invalid dimension name")

	// ErrNameTooLong is returned when an authored dimension name exceeds the
	// 32-byte name field of the descriptor record.
	ErrNameTooLong = errors.New("dimension name too long")

	// ErrUnknownDataType is returned when a descriptor carries a data type
	// code outside the defined 1-11 range (0 is reserved/undefined).
	ErrUnknownDataType = errors.New("unknown extra bytes data type code")

	// ErrDimensionNotFound is returned when a lookup names a dimension absent
	// from the schema.
	ErrDimensionNotFound = errors.New("extra dimension not found")

	// ErrCast is returned when a decoded value cannot be represented in the
	// requested output type.
	ErrCast = errors.New("cannot cast dimension value to requested type")

	// ErrTruncatedBuffer is returned when a point's extra bytes slice is too
	// short to read a resolved dimension.
	ErrTruncatedBuffer = errors.New("truncated extra bytes buffer")
)
