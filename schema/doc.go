// Package schema turns LAS extra bytes records into usable schemas: ordered
// field descriptors, per-field byte offsets, and decoded values out of each
// point's packed extra bytes.
//
// # Building a Schema
//
// FromRecords scans a file's variable length records for the extra bytes
// record (id 4) and decodes its descriptors:
//
//	sch, err := schema.FromRecords(records)
//	if err != nil {
//	    return err
//	}
//	if sch == nil {
//	    // no extra bytes record in this file
//	}
//
// Absence is a normal state: with no matching record the schema is nil (and
// no error), and every method on the nil schema acts as an empty schema.
// When several records carry id 4 the last one wins. Unknown data type codes
// fail the build unless WithLegacyTypeFallback() is given, which resolves
// them to F64 the way older readers do.
//
// # Resolving and Reading Fields
//
// Fields live at fixed offsets determined by declaration order: each field
// starts where the previous one ended. Resolve computes that offset;
// Field/FieldAs decode a value out of one point's packed extra bytes:
//
//	height, err := schema.FieldAs[float64](sch, point.ExtraBytes, "height")
//
// Schema.Resolve scans the descriptors on each call. For hot paths,
// (*Schema).Index() precomputes the lookup once; both types satisfy the
// Resolver interface, so the access helpers take either:
//
//	idx := sch.Index()
//	counts, err := schema.ColumnAs[uint16](idx, extras, "return_count")
//
// # Authoring
//
// Writers build schemas from validated descriptors and serialize them back
// to a record payload:
//
//	reflect, _ := section.NewDescriptor("reflectance", format.TypeU16)
//	sch := schema.New(reflect)
//	rec := schema.RawRecord{ID: section.ExtraBytesRecordID, Payload: sch.Payload()}
//
// # Concurrency
//
// Schema and Index are immutable after construction and safe for concurrent
// readers without locking. Fingerprint gives a stable 64-bit identity for
// sharing prebuilt indexes across files with identical schemas.
package schema
