package lasx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lasx/dim"
	"github.com/arloliu/lasx/endian"
	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/format"
	"github.com/arloliu/lasx/schema"
	"github.com/arloliu/lasx/section"
)

// TestParseSchema verifies the wrapper builds a schema from records
func TestParseSchema(t *testing.T) {
	sch, err := ParseSchema([]schema.Record{testRecord(t)})

	require.NoError(t, err)
	require.NotNil(t, sch)
	require.Equal(t, 3, sch.Len())
	require.Equal(t, 11, sch.PackedSize())
}

// TestParseSchema_NoRecord verifies absence yields a usable nil schema
func TestParseSchema_NoRecord(t *testing.T) {
	sch, err := ParseSchema([]schema.Record{schema.RawRecord{ID: 1, Payload: []byte("other")}})

	require.NoError(t, err)
	require.Nil(t, sch)

	_, err = Field(sch, nil, "anything")
	require.ErrorIs(t, err, errs.ErrDimensionNotFound)
}

// TestParseSchema_LegacyOption verifies options pass through the wrapper
func TestParseSchema_LegacyOption(t *testing.T) {
	desc, err := section.NewDescriptor("mystery", format.TypeU8)
	require.NoError(t, err)
	payload := desc.Bytes()
	payload[2] = 0xEE // unknown type code

	rec := schema.RawRecord{ID: section.ExtraBytesRecordID, Payload: payload}

	_, err = ParseSchema([]schema.Record{rec})
	require.ErrorIs(t, err, errs.ErrUnknownDataType)

	sch, err := ParseSchema([]schema.Record{rec}, schema.WithLegacyTypeFallback())
	require.NoError(t, err)
	require.Equal(t, format.TypeF64, sch.At(0).Type)
}

// TestEndToEnd verifies the author-serialize-parse-decode workflow
func TestEndToEnd(t *testing.T) {
	// Author a schema with three extra dimensions.
	height, err := section.NewDescriptor("height", format.TypeF64)
	require.NoError(t, err)
	intensity, err := section.NewDescriptor("intensity", format.TypeU16)
	require.NoError(t, err)
	flags, err := section.NewDescriptor("flags", format.TypeU8)
	require.NoError(t, err)

	authored := schema.New(height, intensity, flags)
	records := []schema.Record{
		schema.RawRecord{ID: section.ExtraBytesRecordID, Payload: authored.Payload()},
	}

	// A reader sees the same schema.
	sch, err := ParseSchema(records)
	require.NoError(t, err)
	require.Equal(t, authored.Fingerprint(), sch.Fingerprint())

	// Pack two points and read them back.
	engine := endian.Little()
	points := [][]byte{
		dim.Append(dim.Append(dim.Append(nil, dim.F64(1.25), engine), dim.U16(512), engine), dim.U8(3), engine),
		dim.Append(dim.Append(dim.Append(nil, dim.F64(-7.5), engine), dim.U16(40000), engine), dim.U8(0), engine),
	}

	v, err := Field(sch, points[0], "intensity")
	require.NoError(t, err)
	require.Equal(t, uint16(512), v.Any())

	got, err := FieldAs[float64](sch, points[1], "height")
	require.NoError(t, err)
	require.Equal(t, -7.5, got)

	heights, err := ColumnAs[float64](sch.Index(), points, "height")
	require.NoError(t, err)
	require.Equal(t, []float64{1.25, -7.5}, heights)
}

// TestFieldAs_CastFailure verifies cast errors surface through the wrapper
func TestFieldAs_CastFailure(t *testing.T) {
	sch, err := ParseSchema([]schema.Record{testRecord(t)})
	require.NoError(t, err)

	extra := dim.Append(nil, dim.U16(512), endian.Little())
	extra = dim.Append(extra, dim.F64(3.5), endian.Little())
	extra = dim.Append(extra, dim.U8(9), endian.Little())

	_, err = FieldAs[uint8](sch, extra, "A") // 512 does not fit
	require.ErrorIs(t, err, errs.ErrCast)

	v, err := FieldAs[int32](sch, extra, "B") // 3.5 truncates toward zero
	require.NoError(t, err)
	require.Equal(t, int32(3), v)
}

func testRecord(t *testing.T) schema.Record {
	t.Helper()

	a, err := section.NewDescriptor("A", format.TypeU16)
	require.NoError(t, err)
	b, err := section.NewDescriptor("B", format.TypeF64)
	require.NoError(t, err)
	c, err := section.NewDescriptor("C", format.TypeU8)
	require.NoError(t, err)

	return schema.RawRecord{
		ID:      section.ExtraBytesRecordID,
		Payload: schema.New(a, b, c).Payload(),
	}
}
