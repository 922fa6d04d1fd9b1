// Package lasx decodes LAS "extra bytes" schemas and per-point field values.
//
// LAS point clouds can append arbitrary extra dimensions to every point
// record. The extra bytes variable length record (record id 4) describes
// them: a packed array of 192-byte descriptors giving each dimension a name,
// a data type, and auxiliary metadata. lasx turns that record into a schema,
// computes where each field lives inside a point's packed extra bytes, and
// decodes values with optional checked conversion to a caller-chosen Go
// type.
//
// The package is a pure in-memory transform: callers hand it record payloads
// and per-point byte slices they already hold. Reading LAS containers,
// decompressing laszip, and interpreting coordinate scale/offset transforms
// all stay outside.
//
// # Core Features
//
//   - Fixed 192-byte descriptor parsing, strict by default with an opt-in
//     legacy F64 fallback for unknown type codes
//   - Offset resolution by declaration order with first-match-wins semantics
//   - Bounds-checked field decoding that never panics on malformed input
//   - Checked numeric conversion to any Go integer or float type
//   - Opt-in O(1) name index, immutable and shareable across goroutines
//   - xxHash64 schema fingerprints for keying caches across files
//   - Schema authoring and serialization for writers
//
// # Basic Usage
//
// Parsing a schema and reading fields:
//
//	import "github.com/arloliu/lasx"
//
//	// Build the schema from a file's variable length records.
//	sch, err := lasx.ParseSchema(records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if sch == nil {
//	    // file has no extra bytes record
//	    return
//	}
//
//	// Decode one point's field, converted to float64.
//	height, err := lasx.FieldAs[float64](sch, point.ExtraBytes, "height")
//
//	// Decode a whole column through a prebuilt index.
//	idx := sch.Index()
//	counts, err := lasx.ColumnAs[uint16](idx, extras, "return_count")
//
// Authoring a schema for a writer:
//
//	reflect, _ := section.NewDescriptor("reflectance", format.TypeU16)
//	sch := schema.New(reflect)
//	rec := schema.RawRecord{ID: section.ExtraBytesRecordID, Payload: sch.Payload()}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the schema
// package, simplifying the most common use cases. For fine-grained control,
// use the underlying packages directly: schema (building, resolving,
// indexing), section (descriptor records), dim (value decode and checked
// casts), format (data type catalog), and endian (byte order).
package lasx

import (
	"github.com/arloliu/lasx/dim"
	"github.com/arloliu/lasx/schema"
)

// ParseSchema builds a schema from the extra bytes record among the given
// variable length records.
//
// When several records carry the extra bytes record id, the last one wins.
// When none matches, ParseSchema returns (nil, nil); the nil schema is safe
// to use and behaves as an empty schema.
//
// Parameters:
//   - records: The file's variable length records, in file order
//   - opts: Optional configuration (see schema.Option)
//
// Available options:
//   - schema.WithLegacyTypeFallback() resolves unknown data type codes to
//     F64 the way older readers do, instead of failing the build
//
// Returns:
//   - *schema.Schema: The decoded schema, or nil when no record matches
//   - error: The first descriptor parse failure, wrapped with its position
//
// Example:
//
//	sch, err := lasx.ParseSchema(records, schema.WithLegacyTypeFallback())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, desc := range sch.All() {
//	    fmt.Printf("field %d: %s %s\n", i, desc.Name, desc.Type)
//	}
func ParseSchema(records []schema.Record, opts ...schema.Option) (*schema.Schema, error) {
	return schema.FromRecords(records, opts...)
}

// Field resolves name against r and decodes its value from one point's
// packed extra bytes.
//
// The resolver is either a *schema.Schema or a *schema.Index; resolution
// failures return before any buffer access.
//
// Parameters:
//   - r: Schema or prebuilt index to resolve the name against
//   - extra: One point's packed extra bytes
//   - name: Dimension name, matched byte-exact and case-sensitive
//
// Returns:
//   - dim.Value: Decoded value tagged with the field's data type
//   - error: errs.ErrDimensionNotFound or errs.ErrTruncatedBuffer
//
// Example:
//
//	v, err := lasx.Field(sch, point.ExtraBytes, "reflectance")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // e.g. U16(512)
func Field(r schema.Resolver, extra []byte, name string) (dim.Value, error) {
	return schema.Field(r, extra, name)
}

// FieldAs resolves name against r, decodes its value from one point's
// packed extra bytes, and converts it to T.
//
// The conversion is checked: it fails with errs.ErrCast whenever the stored
// value cannot be represented in T (see dim.As for the exact rules).
//
// Parameters:
//   - r: Schema or prebuilt index to resolve the name against
//   - extra: One point's packed extra bytes
//   - name: Dimension name
//
// Returns:
//   - T: Converted value
//   - error: errs.ErrDimensionNotFound, errs.ErrTruncatedBuffer or errs.ErrCast
//
// Example:
//
//	height, err := lasx.FieldAs[float64](sch, point.ExtraBytes, "height")
func FieldAs[T dim.Numeric](r schema.Resolver, extra []byte, name string) (T, error) {
	return schema.FieldAs[T](r, extra, name)
}

// ColumnAs decodes the named field from every per-point slice in extras,
// converting each value to T. The name is resolved once, so the per-point
// cost is a bounds-checked read plus the conversion.
//
// Parameters:
//   - r: Schema or prebuilt index to resolve the name against
//   - extras: One packed extra bytes slice per point
//   - name: Dimension name
//
// Returns:
//   - []T: One converted value per point, in input order
//   - error: Resolution failure, or the first point's decode/cast failure
//     wrapped with the point's position
//
// Example:
//
//	idx := sch.Index()
//	heights, err := lasx.ColumnAs[float64](idx, extras, "height")
func ColumnAs[T dim.Numeric](r schema.Resolver, extras [][]byte, name string) ([]T, error) {
	return schema.ColumnAs[T](r, extras, name)
}
