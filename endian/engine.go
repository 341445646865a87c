// Package endian provides byte order utilities for the pack engine and
// other binary encoding code.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, and detects the
// host's native byte order so that native-endianness directives in pack
// format strings resolve to a concrete order.
//
// All functions are safe for concurrent use; the returned engines are the
// immutable, stateless binary.LittleEndian and binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host's native byte order as an EndianEngine.
func Native() EndianEngine {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) sits at the
	// lowest address; on a big-endian host the MSB (0x01) does.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == EndianEngine(binary.LittleEndian)
}

// Little returns the little-endian engine.
func Little() EndianEngine {
	return binary.LittleEndian
}

// Big returns the big-endian engine.
func Big() EndianEngine {
	return binary.BigEndian
}
