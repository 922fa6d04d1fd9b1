package format

import (
	"fmt"

	"github.com/arloliu/lasx/errs"
)

// DataTypeFromCode maps an on-disk type code to its DataType tag.
//
// Codes 1-11 map one-to-one to the defined tags. Any other code, including the
// reserved code 0, returns ErrUnknownDataType carrying the offending code.
//
// Some producers write descriptors with out-of-range codes and expect readers
// to shrug; use DataTypeFromCodeLegacy (or the schema package's
// WithLegacyTypeFallback option) to read such files.
func DataTypeFromCode(code uint8) (DataType, error) {
	t := DataType(code)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownDataType, code)
	}

	return t, nil
}

// DataTypeFromCodeLegacy maps an on-disk type code to its DataType tag,
// treating every unrecognized code (including 0) as TypeF64 instead of
// failing. This mirrors the permissive behavior of older readers; it masks
// malformed descriptors, so prefer DataTypeFromCode for new code.
func DataTypeFromCodeLegacy(code uint8) DataType {
	t := DataType(code)
	if !t.Valid() {
		return TypeF64
	}

	return t
}
