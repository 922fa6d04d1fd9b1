package schema

import (
	"fmt"
	"iter"

	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/internal/hash"
	"github.com/arloliu/lasx/internal/options"
	"github.com/arloliu/lasx/section"
)

// Schema is an ordered list of extra bytes descriptors decoded from a
// variable length record. Field order matches declaration order in the
// record, which also fixes each field's byte offset within a point's packed
// extra bytes.
//
// A Schema is immutable after construction and safe for concurrent readers.
// A nil *Schema behaves as an empty schema: lookups fail with
// errs.ErrDimensionNotFound and the size accessors return zero.
type Schema struct {
	fields      []section.ExtraBytesDescriptor
	packedSize  int
	fingerprint uint64
}

// FromRecords builds a Schema from the extra bytes record among the given
// variable length records.
//
// When several records carry the extra bytes record id, the last one wins.
// Nil records are skipped. When no record matches, FromRecords returns
// (nil, nil): an absent schema is a normal state, not an error, and the nil
// *Schema is usable as an empty schema.
//
// The matched payload is split into len(payload)/192 whole descriptor
// records; trailing bytes past the last whole record are ignored. The first
// descriptor that fails to parse fails the whole build, wrapped with the
// descriptor's position.
func FromRecords(records []Record, opts ...Option) (*Schema, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	var (
		payload []byte
		found   bool
	)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if rec.RecordID() == section.ExtraBytesRecordID {
			payload = rec.RecordData()
			found = true
		}
	}
	if !found {
		return nil, nil
	}

	parse := section.ParseDescriptor
	if cfg.legacyTypeFallback {
		parse = section.ParseDescriptorLegacy
	}

	count := len(payload) / section.DescriptorSize
	fields := make([]section.ExtraBytesDescriptor, 0, count)
	for i := range count {
		desc, err := parse(payload[i*section.DescriptorSize:])
		if err != nil {
			return nil, fmt.Errorf("descriptor %d: %w", i, err)
		}
		fields = append(fields, desc)
	}

	return newSchema(fields, payload[:count*section.DescriptorSize]), nil
}

// New builds a Schema from authored descriptors, for writers assembling an
// extra bytes record. The descriptors are copied; later mutation of the
// arguments does not affect the schema.
func New(fields ...section.ExtraBytesDescriptor) *Schema {
	owned := make([]section.ExtraBytesDescriptor, len(fields))
	copy(owned, fields)

	return newSchema(owned, serialize(owned))
}

// newSchema computes the derived state once at construction; payload is the
// exact bytes the fingerprint covers.
func newSchema(fields []section.ExtraBytesDescriptor, payload []byte) *Schema {
	packed := 0
	for i := range fields {
		packed += fields[i].Type.Size()
	}

	return &Schema{
		fields:      fields,
		packedSize:  packed,
		fingerprint: hash.Sum(payload),
	}
}

func serialize(fields []section.ExtraBytesDescriptor) []byte {
	data := make([]byte, len(fields)*section.DescriptorSize)
	offset := 0
	for i := range fields {
		offset = fields[i].WriteToSlice(data, offset)
	}

	return data
}

// Len returns the number of descriptors in the schema.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}

	return len(s.fields)
}

// At returns the descriptor at position i in declaration order. It panics
// when i is out of range, like a slice access.
func (s *Schema) At(i int) section.ExtraBytesDescriptor {
	if s == nil || i < 0 || i >= len(s.fields) {
		panic(fmt.Sprintf("lasx: descriptor index %d out of range [0:%d]", i, s.Len()))
	}

	return s.fields[i]
}

// All returns an iterator over (position, descriptor) pairs in declaration
// order.
//
// Example:
//
//	for i, desc := range schema.All() {
//	    fmt.Printf("field %d: %s %s\n", i, desc.Name, desc.Type)
//	}
func (s *Schema) All() iter.Seq2[int, section.ExtraBytesDescriptor] {
	if s == nil {
		return func(yield func(int, section.ExtraBytesDescriptor) bool) {}
	}

	return func(yield func(int, section.ExtraBytesDescriptor) bool) {
		for i, desc := range s.fields {
			if !yield(i, desc) {
				return
			}
		}
	}
}

// PackedSize returns the total byte width of one point's packed extra bytes
// under this schema, the sum of all field widths in declaration order.
func (s *Schema) PackedSize() int {
	if s == nil {
		return 0
	}

	return s.packedSize
}

// Fingerprint returns the 64-bit xxHash64 identity of the schema's
// descriptor bytes.
//
// Two schemas decoded from byte-identical descriptor records share a
// fingerprint, and bytes past the last whole descriptor do not participate,
// so the fingerprint can key caches shared across files with the same
// schema (a prebuilt Index, for example). A nil schema returns 0, which is
// distinct from the fingerprint of a present-but-empty record.
func (s *Schema) Fingerprint() uint64 {
	if s == nil {
		return 0
	}

	return s.fingerprint
}

// Payload returns the descriptor records serialized into a variable length
// record payload, 192 bytes per descriptor. Writers embed it in a record
// with id section.ExtraBytesRecordID. A nil schema returns nil.
func (s *Schema) Payload() []byte {
	if s == nil {
		return nil
	}

	return serialize(s.fields)
}

// Resolve finds the named dimension and its byte offset within a point's
// packed extra bytes.
//
// Descriptors are scanned in declaration order accumulating field widths;
// the first name match wins and its own width is not part of the offset.
// Name comparison is byte-exact and case-sensitive.
//
// Returns:
//   - section.ExtraBytesDescriptor: The matched descriptor
//   - int: Byte offset of the field within the packed extra bytes
//   - error: ErrDimensionNotFound naming the missing dimension
func (s *Schema) Resolve(name string) (section.ExtraBytesDescriptor, int, error) {
	if s != nil {
		offset := 0
		for i := range s.fields {
			if s.fields[i].Name == name {
				return s.fields[i], offset, nil
			}
			offset += s.fields[i].Type.Size()
		}
	}

	return section.ExtraBytesDescriptor{}, 0, fmt.Errorf("%w: %q", errs.ErrDimensionNotFound, name)
}
