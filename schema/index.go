package schema

import (
	"fmt"

	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/section"
)

// indexEntry pairs a descriptor with its resolved byte offset.
type indexEntry struct {
	desc   section.ExtraBytesDescriptor
	offset int
}

// Index is a prebuilt name lookup over a schema. Schema.Resolve scans the
// descriptors on every call, which is fine for a handful of fields; an
// Index trades one construction pass for constant-time lookups when the
// same schema serves many points or many dimensions.
//
// For duplicate names the first occurrence wins, so Index results are
// identical to Schema.Resolve for every name. An Index is immutable and
// safe for concurrent readers; keyed by Schema.Fingerprint it can be shared
// across files carrying the same schema.
type Index struct {
	byName map[string]indexEntry
}

// Index builds the name lookup for the schema. Works on a nil schema,
// yielding an index that resolves nothing.
func (s *Schema) Index() *Index {
	idx := &Index{byName: make(map[string]indexEntry, s.Len())}
	if s == nil {
		return idx
	}

	offset := 0
	for i := range s.fields {
		name := s.fields[i].Name
		if _, ok := idx.byName[name]; !ok {
			idx.byName[name] = indexEntry{desc: s.fields[i], offset: offset}
		}
		offset += s.fields[i].Type.Size()
	}

	return idx
}

// Resolve finds the named dimension and its byte offset within a point's
// packed extra bytes. Results match Schema.Resolve exactly.
//
// Returns:
//   - section.ExtraBytesDescriptor: The matched descriptor
//   - int: Byte offset of the field within the packed extra bytes
//   - error: ErrDimensionNotFound naming the missing dimension
func (idx *Index) Resolve(name string) (section.ExtraBytesDescriptor, int, error) {
	if idx != nil {
		if e, ok := idx.byName[name]; ok {
			return e.desc, e.offset, nil
		}
	}

	return section.ExtraBytesDescriptor{}, 0, fmt.Errorf("%w: %q", errs.ErrDimensionNotFound, name)
}

// Len returns the number of distinct dimension names in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}

	return len(idx.byName)
}
