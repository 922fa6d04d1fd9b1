package schema

import (
	"fmt"

	"github.com/arloliu/lasx/dim"
	"github.com/arloliu/lasx/endian"
	"github.com/arloliu/lasx/section"
)

// Resolver locates a named dimension within a point's packed extra bytes.
// Both *Schema (linear scan) and *Index (prebuilt lookup) implement it, so
// the access helpers accept either.
type Resolver interface {
	Resolve(name string) (desc section.ExtraBytesDescriptor, offset int, err error)
}

var (
	_ Resolver = (*Schema)(nil)
	_ Resolver = (*Index)(nil)
)

// Field resolves name and decodes its value from one point's packed extra
// bytes.
//
// A resolution failure returns before any buffer access, so probing for an
// optional dimension is safe even with a nil extra slice.
//
// Returns:
//   - dim.Value: Decoded value tagged with the field's data type
//   - error: ErrDimensionNotFound, or ErrTruncatedBuffer when the point's
//     extra bytes are shorter than the schema requires
func Field(r Resolver, extra []byte, name string) (dim.Value, error) {
	desc, offset, err := r.Resolve(name)
	if err != nil {
		return dim.Value{}, err
	}

	return dim.Decode(extra, offset, desc.Type, endian.Little())
}

// FieldAs resolves name, decodes its value and converts it to T.
//
// Returns:
//   - T: Converted value
//   - error: ErrDimensionNotFound, ErrTruncatedBuffer, or ErrCast when the
//     value does not convert to T
func FieldAs[T dim.Numeric](r Resolver, extra []byte, name string) (T, error) {
	var zero T
	v, err := Field(r, extra, name)
	if err != nil {
		return zero, err
	}

	return dim.As[T](v)
}

// ColumnAs decodes the named field from every per-point slice in extras,
// converting each value to T. The name is resolved once; each element of
// extras holds one point's packed extra bytes.
//
// The first failing point aborts the whole column with the point's position
// wrapped into the error.
//
// Returns:
//   - []T: One converted value per point, in input order
//   - error: ErrDimensionNotFound, or a point's ErrTruncatedBuffer/ErrCast
func ColumnAs[T dim.Numeric](r Resolver, extras [][]byte, name string) ([]T, error) {
	desc, offset, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}

	engine := endian.Little()
	out := make([]T, len(extras))
	for i, extra := range extras {
		v, err := dim.Decode(extra, offset, desc.Type, engine)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		conv, err := dim.As[T](v)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = conv
	}

	return out, nil
}
