// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining the
// ByteOrder and AppendByteOrder interfaces into a unified Engine interface, so
// decode paths (PutUint*/Uint*) and append-style serialization share a single
// dependency.
//
// # Basic Usage
//
// LAS stores every multi-byte value little-endian, so lasx code passes
// endian.Little() everywhere it touches file bytes:
//
//	import "github.com/arloliu/lasx/endian"
//
//	engine := endian.Little()
//	val := engine.Uint16(payload[offset:])
//
// Big() exists for callers reusing the decode helpers on foreign byte orders,
// and Native() for scratch buffers that never leave the host.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use. The
// returned Engine instances are immutable and stateless.
package endian

import "encoding/binary"

// Engine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code
// while providing access to both read/write and append operations.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// nativeLittle probes the host byte order once through binary.NativeEndian:
// the first written byte is the LSB exactly on little-endian hosts.
var nativeLittle = func() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x00FF)

	return b[0] == 0xFF
}()

// Little returns the little-endian engine. It is the byte order of all LAS
// payloads and the one lasx decode paths use.
func Little() Engine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() Engine {
	return binary.BigEndian
}

// IsNativeLittle reports whether the host byte order is little-endian.
func IsNativeLittle() bool {
	return nativeLittle
}

// Native returns the engine matching the host byte order.
func Native() Engine {
	if nativeLittle {
		return binary.LittleEndian
	}

	return binary.BigEndian
}
