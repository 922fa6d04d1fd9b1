package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/format"
)

// ExtraBytesDescriptor describes a single extra dimension appended to each
// point record. It is a fixed size of 192 bytes on disk.
//
// The name and data type are decoded into Go-friendly forms; every other
// field is carried verbatim so serialization reproduces the record exactly.
type ExtraBytesDescriptor struct {
	// Reserved carries the two reserved bytes verbatim.
	//
	// Offset: 0, Size: 2 bytes
	Reserved [2]byte

	// TypeCode is the raw on-disk data type code.
	//
	// It is kept alongside Type so descriptors parsed with the legacy F64
	// fallback serialize back with their original code untouched.
	//
	// Offset: 2, Size: 1 byte
	TypeCode byte

	// Options is the validity bitfield for the no-data, min, max, scale and
	// offset blocks. This package carries it verbatim without interpreting it.
	//
	// Offset: 3, Size: 1 byte
	Options byte

	// Name is the decoded dimension name: the bytes of the 32-byte name field
	// before its first zero byte, or all 32 bytes when none is present.
	// Restricted to ASCII.
	//
	// Offset: 4, Size: 32 bytes (zero-padded on disk)
	Name string

	// Unused carries the four unused bytes verbatim.
	//
	// Offset: 36, Size: 4 bytes
	Unused [4]byte

	// NoData is the opaque no-data sentinel block.
	//
	// Offset: 40, Size: 24 bytes
	NoData [MetaBlockSize]byte

	// Min is the opaque minimum block.
	//
	// Offset: 64, Size: 24 bytes
	Min [MetaBlockSize]byte

	// Max is the opaque maximum block.
	//
	// Offset: 88, Size: 24 bytes
	Max [MetaBlockSize]byte

	// Scale is the opaque scale block.
	//
	// Offset: 112, Size: 24 bytes
	Scale [MetaBlockSize]byte

	// Offset is the opaque offset block.
	//
	// Offset: 136, Size: 24 bytes
	Offset [MetaBlockSize]byte

	// Description is the opaque free-text description field.
	//
	// Offset: 160, Size: 32 bytes
	Description [DescriptionSize]byte

	// Type is the resolved data type for TypeCode. With strict parsing the
	// two always agree; with the legacy fallback an unknown TypeCode resolves
	// to format.TypeF64.
	Type format.DataType
}

// NewDescriptor creates a descriptor for the given dimension name and data
// type, with all opaque blocks zeroed.
//
// The name must be ASCII without zero bytes and at most 32 bytes; the type
// must be one of the known data types.
//
// Returns:
//   - ExtraBytesDescriptor: New descriptor ready for serialization
//   - error: ErrNameTooLong, ErrInvalidName or ErrUnknownDataType on invalid input
func NewDescriptor(name string, t format.DataType) (ExtraBytesDescriptor, error) {
	if len(name) > NameSize {
		return ExtraBytesDescriptor{}, fmt.Errorf("%w: %q is %d bytes, limit is %d", errs.ErrNameTooLong, name, len(name), NameSize)
	}
	for i := 0; i < len(name); i++ {
		if name[i] == 0 || name[i] > 0x7F {
			return ExtraBytesDescriptor{}, fmt.Errorf("%w: %q", errs.ErrInvalidName, name)
		}
	}
	if !t.Valid() {
		return ExtraBytesDescriptor{}, fmt.Errorf("%w: %d", errs.ErrUnknownDataType, uint8(t))
	}

	return ExtraBytesDescriptor{
		TypeCode: byte(t),
		Name:     name,
		Type:     t,
	}, nil
}

// ParseDescriptor parses a descriptor record from a byte slice.
//
// Unknown data type codes are rejected; use ParseDescriptorLegacy to match
// readers that fall back to F64 instead.
//
// Parameters:
//   - data: Byte slice starting at the record (must be at least 192 bytes)
//
// Returns:
//   - ExtraBytesDescriptor: Parsed descriptor
//   - error: ErrInvalidDescriptorSize if data is too short, ErrInvalidName if
//     the name field is not ASCII, ErrUnknownDataType on an unknown type code
func ParseDescriptor(data []byte) (ExtraBytesDescriptor, error) {
	return parseDescriptor(data, format.DataTypeFromCode)
}

// ParseDescriptorLegacy parses a descriptor record, resolving unknown data
// type codes to format.TypeF64.
//
// This matches the permissive behavior of older readers. The raw code is
// preserved in TypeCode, so serializing the descriptor reproduces the
// original record byte for byte.
func ParseDescriptorLegacy(data []byte) (ExtraBytesDescriptor, error) {
	return parseDescriptor(data, func(code uint8) (format.DataType, error) {
		return format.DataTypeFromCodeLegacy(code), nil
	})
}

func parseDescriptor(data []byte, resolve func(uint8) (format.DataType, error)) (ExtraBytesDescriptor, error) {
	if len(data) < DescriptorSize {
		return ExtraBytesDescriptor{}, errs.ErrInvalidDescriptorSize
	}

	name, err := decodeName(data[nameOffset : nameOffset+NameSize])
	if err != nil {
		return ExtraBytesDescriptor{}, err
	}

	code := data[typeCodeOffset]
	typ, err := resolve(code)
	if err != nil {
		return ExtraBytesDescriptor{}, err
	}

	desc := ExtraBytesDescriptor{
		TypeCode: code,
		Options:  data[optionsOffset],
		Name:     name,
		Type:     typ,
	}
	copy(desc.Reserved[:], data[reservedOffset:typeCodeOffset])
	copy(desc.Unused[:], data[unusedOffset:noDataOffset])
	copy(desc.NoData[:], data[noDataOffset:minOffset])
	copy(desc.Min[:], data[minOffset:maxOffset])
	copy(desc.Max[:], data[maxOffset:scaleOffset])
	copy(desc.Scale[:], data[scaleOffset:offsetOffset])
	copy(desc.Offset[:], data[offsetOffset:descriptionOffset])
	copy(desc.Description[:], data[descriptionOffset:DescriptorSize])

	return desc, nil
}

// decodeName extracts the dimension name from the 32-byte name field: the
// bytes before the first zero byte, or the whole field when none is present.
func decodeName(field []byte) (string, error) {
	end := bytes.IndexByte(field, 0)
	if end < 0 {
		end = len(field)
	}
	for _, b := range field[:end] {
		if b > 0x7F {
			return "", fmt.Errorf("%w: non-ASCII byte 0x%02X in name field", errs.ErrInvalidName, b)
		}
	}

	return string(field[:end]), nil
}

// Bytes returns the descriptor as a 192-byte slice.
//
// This method uses stack allocation for better performance.
//
// Returns:
//   - []byte: 192-byte descriptor record with all fields encoded
func (d *ExtraBytesDescriptor) Bytes() []byte {
	var b [DescriptorSize]byte // stack allocation, it's faster than heap allocation
	d.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes the descriptor to a pre-allocated slice and returns the
// next position.
//
// This is the most efficient method when writing multiple descriptors
// sequentially.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 192 bytes at offset)
//   - offset: Starting position in data slice
//
// Returns:
//   - int: Next write position (offset + 192)
func (d *ExtraBytesDescriptor) WriteToSlice(data []byte, offset int) int {
	buf := data[offset : offset+DescriptorSize]
	clear(buf)

	copy(buf[reservedOffset:typeCodeOffset], d.Reserved[:])
	buf[typeCodeOffset] = d.TypeCode
	buf[optionsOffset] = d.Options
	copy(buf[nameOffset:nameOffset+NameSize], d.Name)
	copy(buf[unusedOffset:noDataOffset], d.Unused[:])
	copy(buf[noDataOffset:minOffset], d.NoData[:])
	copy(buf[minOffset:maxOffset], d.Min[:])
	copy(buf[maxOffset:scaleOffset], d.Max[:])
	copy(buf[scaleOffset:offsetOffset], d.Scale[:])
	copy(buf[offsetOffset:descriptionOffset], d.Offset[:])
	copy(buf[descriptionOffset:DescriptorSize], d.Description[:])

	return offset + DescriptorSize
}
