// Package section defines the binary structure of LAS extra bytes descriptor
// records.
//
// The extra bytes variable length record (record id 4) carries an array of
// fixed-size descriptor records, one per extra dimension appended to each
// point. This package handles byte-level parsing and serialization of those
// records; the schema package builds on it to assemble whole schemas and
// resolve field offsets.
//
// # Descriptor Record Format
//
// Each descriptor record is exactly 192 bytes:
//
//	Bytes   | Field       | Size | Description
//	--------|-------------|------|------------------------------------------
//	0-1     | Reserved    | 2    | Reserved, carried verbatim
//	2       | DataType    | 1    | Type code (1-11), see format.DataType
//	3       | Options     | 1    | Bitfield: no_data/min/max/scale/offset validity
//	4-35    | Name        | 32   | ASCII dimension name, zero-terminated
//	36-39   | Unused      | 4    | Unused, carried verbatim
//	40-63   | NoData      | 24   | No-data sentinel block, opaque
//	64-87   | Min         | 24   | Minimum block, opaque
//	88-111  | Max         | 24   | Maximum block, opaque
//	112-135 | Scale       | 24   | Scale block, opaque
//	136-159 | Offset      | 24   | Offset block, opaque
//	160-191 | Description | 32   | Free-text description, opaque
//
// A variable length record payload holds count = len(payload)/192 descriptors
// packed back to back; trailing bytes past the last whole record carry no
// information.
//
// # Name Field
//
// The name occupies 32 bytes on disk. The decoded name is the bytes before
// the first zero byte, or all 32 bytes when no zero byte is present. Names
// are restricted to ASCII; parsing rejects descriptors whose name field
// contains bytes above 0x7F.
//
// # Opaque Blocks
//
// The no-data, min, max, scale and offset blocks (24 bytes each) and the
// description field are carried verbatim without interpretation. Their
// meaning depends on the Options bitfield and the data type, which is a
// concern of higher layers; this package preserves them exactly so that
// serialization round-trips byte-identical records.
//
// # Usage
//
// Parsing a descriptor from a VLR payload:
//
//	desc, err := section.ParseDescriptor(payload[i*section.DescriptorSize:])
//	if err != nil {
//	    return err
//	}
//	fmt.Println(desc.Name, desc.Type)
//
// Authoring a descriptor for a writer:
//
//	desc, err := section.NewDescriptor("reflectance", format.TypeU16)
//	if err != nil {
//	    return err
//	}
//	payload := desc.Bytes()
package section
