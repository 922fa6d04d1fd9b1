package section

// Field sizes within the 192-byte extra bytes descriptor record.
const (
	DescriptorSize  = 192 // fixed size of one descriptor record in bytes
	NameSize        = 32  // fixed size of the name field in bytes
	DescriptionSize = 32  // fixed size of the description field in bytes
	MetaBlockSize   = 24  // fixed size of each no-data/min/max/scale/offset block in bytes
)

// Byte offsets of each field within a descriptor record.
const (
	reservedOffset    = 0   // reserved bytes (2 bytes)
	typeCodeOffset    = 2   // data type code (1 byte)
	optionsOffset     = 3   // options bitfield (1 byte)
	nameOffset        = 4   // name field (32 bytes)
	unusedOffset      = 36  // unused bytes (4 bytes)
	noDataOffset      = 40  // no-data block (24 bytes)
	minOffset         = 64  // min block (24 bytes)
	maxOffset         = 88  // max block (24 bytes)
	scaleOffset       = 112 // scale block (24 bytes)
	offsetOffset      = 136 // offset block (24 bytes)
	descriptionOffset = 160 // description field (32 bytes)
)

// ExtraBytesRecordID is the variable length record id that carries the extra
// bytes descriptor payload in a LAS file.
const ExtraBytesRecordID uint16 = 4
