package schema

// Record is the minimal view of a LAS variable length record the schema
// builder needs: a record id and the raw payload bytes. Any VLR type a
// caller already has can satisfy it with two thin accessors.
type Record interface {
	// RecordID returns the variable length record id.
	RecordID() uint16

	// RecordData returns the raw record payload.
	RecordData() []byte
}

// RawRecord is a trivial Record implementation for callers without their own
// VLR type, and for authoring schema records to embed in a file.
type RawRecord struct {
	// ID is the variable length record id.
	ID uint16

	// Payload is the raw record payload.
	Payload []byte
}

var _ Record = RawRecord{}

// RecordID returns the variable length record id.
func (r RawRecord) RecordID() uint16 {
	return r.ID
}

// RecordData returns the raw record payload.
func (r RawRecord) RecordData() []byte {
	return r.Payload
}
