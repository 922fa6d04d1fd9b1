package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lasx/errs"
	"github.com/arloliu/lasx/format"
)

// rawDescriptor builds a 192-byte record with the given name and type code,
// leaving every other field zeroed.
func rawDescriptor(name string, code byte) []byte {
	data := make([]byte, DescriptorSize)
	data[typeCodeOffset] = code
	copy(data[nameOffset:nameOffset+NameSize], name)

	return data
}

func TestNewDescriptor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		desc, err := NewDescriptor("reflectance", format.TypeU16)

		require.NoError(t, err)
		require.Equal(t, "reflectance", desc.Name)
		require.Equal(t, format.TypeU16, desc.Type)
		require.Equal(t, byte(format.TypeU16), desc.TypeCode)
		require.Equal(t, byte(0), desc.Options)
	})

	t.Run("name at limit", func(t *testing.T) {
		name := strings.Repeat("a", NameSize)
		desc, err := NewDescriptor(name, format.TypeF64)

		require.NoError(t, err)
		require.Equal(t, name, desc.Name)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := NewDescriptor(strings.Repeat("a", NameSize+1), format.TypeU8)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNameTooLong)
	})

	t.Run("name with zero byte", func(t *testing.T) {
		_, err := NewDescriptor("bad\x00name", format.TypeU8)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("non-ASCII name", func(t *testing.T) {
		_, err := NewDescriptor("h\xc3\xb6he", format.TypeU8)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := NewDescriptor("valid", format.DataType(0))
		require.ErrorIs(t, err, errs.ErrUnknownDataType)

		_, err = NewDescriptor("valid", format.DataType(12))
		require.ErrorIs(t, err, errs.ErrUnknownDataType)
	})
}

func TestParseDescriptor(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		data := rawDescriptor("height", byte(format.TypeU16))
		data[optionsOffset] = 0x02
		data[noDataOffset] = 0xAA
		data[minOffset] = 0xBB
		data[maxOffset] = 0xCC
		data[scaleOffset] = 0xDD
		data[offsetOffset] = 0xEE
		data[descriptionOffset] = 'd'

		desc, err := ParseDescriptor(data)

		require.NoError(t, err)
		require.Equal(t, "height", desc.Name)
		require.Equal(t, format.TypeU16, desc.Type)
		require.Equal(t, byte(format.TypeU16), desc.TypeCode)
		require.Equal(t, byte(0x02), desc.Options)
		require.Equal(t, byte(0xAA), desc.NoData[0])
		require.Equal(t, byte(0xBB), desc.Min[0])
		require.Equal(t, byte(0xCC), desc.Max[0])
		require.Equal(t, byte(0xDD), desc.Scale[0])
		require.Equal(t, byte(0xEE), desc.Offset[0])
		require.Equal(t, byte('d'), desc.Description[0])
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ParseDescriptor(make([]byte, DescriptorSize-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidDescriptorSize)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseDescriptor(nil)

		require.ErrorIs(t, err, errs.ErrInvalidDescriptorSize)
	})

	t.Run("unknown type code", func(t *testing.T) {
		for _, code := range []byte{0, 12, 0x80, 0xFF} {
			_, err := ParseDescriptor(rawDescriptor("dim", code))

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrUnknownDataType)
		}
	})

	t.Run("non-ASCII name", func(t *testing.T) {
		data := rawDescriptor("", byte(format.TypeU8))
		data[nameOffset] = 0xC3
		data[nameOffset+1] = 0xA9

		_, err := ParseDescriptor(data)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidName)
	})

	t.Run("bytes after terminator ignored", func(t *testing.T) {
		data := rawDescriptor("abc", byte(format.TypeI32))
		// Garbage after the terminating zero must not affect the name.
		data[nameOffset+4] = 0xFF
		data[nameOffset+5] = 'x'

		desc, err := ParseDescriptor(data)

		require.NoError(t, err)
		require.Equal(t, "abc", desc.Name)
	})

	t.Run("name fills field", func(t *testing.T) {
		name := strings.Repeat("n", NameSize)
		desc, err := ParseDescriptor(rawDescriptor(name, byte(format.TypeF32)))

		require.NoError(t, err)
		require.Equal(t, name, desc.Name)
		require.Len(t, desc.Name, NameSize)
	})

	t.Run("empty name", func(t *testing.T) {
		desc, err := ParseDescriptor(rawDescriptor("", byte(format.TypeU8)))

		require.NoError(t, err)
		require.Equal(t, "", desc.Name)
	})

	t.Run("extra trailing bytes allowed", func(t *testing.T) {
		data := append(rawDescriptor("tail", byte(format.TypeU32)), 0xDE, 0xAD)

		desc, err := ParseDescriptor(data)

		require.NoError(t, err)
		require.Equal(t, "tail", desc.Name)
	})
}

func TestParseDescriptorLegacy(t *testing.T) {
	t.Run("known code resolves normally", func(t *testing.T) {
		desc, err := ParseDescriptorLegacy(rawDescriptor("angle", byte(format.TypeF32)))

		require.NoError(t, err)
		require.Equal(t, format.TypeF32, desc.Type)
		require.Equal(t, byte(format.TypeF32), desc.TypeCode)
	})

	t.Run("unknown code falls back to F64", func(t *testing.T) {
		desc, err := ParseDescriptorLegacy(rawDescriptor("mystery", 0))

		require.NoError(t, err)
		require.Equal(t, format.TypeF64, desc.Type)
		require.Equal(t, byte(0), desc.TypeCode)
	})

	t.Run("raw code survives round-trip", func(t *testing.T) {
		data := rawDescriptor("mystery", 200)
		data[optionsOffset] = 0x1F
		for i := noDataOffset; i < descriptionOffset; i++ {
			data[i] = byte(i)
		}

		desc, err := ParseDescriptorLegacy(data)
		require.NoError(t, err)
		require.Equal(t, format.TypeF64, desc.Type)
		require.Equal(t, byte(200), desc.TypeCode)

		require.Equal(t, data, desc.Bytes())
	})
}

func TestExtraBytesDescriptor_Bytes(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		desc, err := NewDescriptor("intensity", format.TypeU64)
		require.NoError(t, err)
		desc.Options = 0x05

		data := desc.Bytes()

		require.Len(t, data, DescriptorSize)
		require.Equal(t, byte(format.TypeU64), data[typeCodeOffset])
		require.Equal(t, byte(0x05), data[optionsOffset])
		require.Equal(t, []byte("intensity"), data[nameOffset:nameOffset+9])
		// Name field is zero-padded to its full width.
		for i := nameOffset + 9; i < nameOffset+NameSize; i++ {
			require.Equal(t, byte(0), data[i])
		}
	})

	t.Run("round-trip", func(t *testing.T) {
		original, err := NewDescriptor("round_trip", format.TypeI16)
		require.NoError(t, err)
		original.NoData[5] = 0x42
		original.Scale[0] = 0x99
		copy(original.Description[:], "descriptive text")

		parsed, err := ParseDescriptor(original.Bytes())

		require.NoError(t, err)
		require.Equal(t, original, parsed)
	})
}

func TestExtraBytesDescriptor_WriteToSlice(t *testing.T) {
	t.Run("sequential writes", func(t *testing.T) {
		first, err := NewDescriptor("first", format.TypeU8)
		require.NoError(t, err)
		second, err := NewDescriptor("second", format.TypeF64)
		require.NoError(t, err)

		data := make([]byte, 2*DescriptorSize)
		offset := first.WriteToSlice(data, 0)
		require.Equal(t, DescriptorSize, offset)
		offset = second.WriteToSlice(data, offset)
		require.Equal(t, 2*DescriptorSize, offset)

		got, err := ParseDescriptor(data)
		require.NoError(t, err)
		require.Equal(t, first, got)

		got, err = ParseDescriptor(data[DescriptorSize:])
		require.NoError(t, err)
		require.Equal(t, second, got)
	})

	t.Run("clears stale bytes", func(t *testing.T) {
		desc, err := NewDescriptor("clean", format.TypeU8)
		require.NoError(t, err)

		data := make([]byte, DescriptorSize)
		for i := range data {
			data[i] = 0xFF
		}
		desc.WriteToSlice(data, 0)

		require.Equal(t, desc.Bytes(), data)
	})
}
