// Package pack serializes and deserializes fixed-layout binary records
// described by a format string.
//
// The format mini-language reproduces the Lua 5.3 string.pack conventions,
// so records produced by compatible tools decode identically:
//
//	<        little-endian for following fields
//	>        big-endian for following fields
//	=        native endianness for following fields
//	![n]     set maximum alignment to n (default: native, 8)
//	b B      signed/unsigned 1-byte integer
//	h H      signed/unsigned 2-byte integer
//	l L      signed/unsigned 8-byte integer
//	j J      signed/unsigned 8-byte integer
//	T        unsigned 8-byte integer (size_t)
//	i[n] I[n] signed/unsigned integer of n bytes (1..8, default 4)
//	f        4-byte float
//	d n      8-byte float
//	s[n]     string with an n-byte length prefix (default 8)
//	z        zero-terminated string
//	c[n]     fixed string of exactly n bytes, zero padded
//	x        one zero padding byte
//	X<op>    align to op's alignment, packing nothing
//	' '      ignored
//
// Alignment is off by default (maximum alignment 1) until a "!" directive
// appears; a field then aligns to min(field size, maximum alignment), with
// zero bytes as padding. Fixed strings (c) never align.
//
// The format string is parsed once into a sequence of field descriptors
// consumed uniformly by PackedSize, Pack, and Unpack, which keeps the
// three operations symmetric: Unpack(fmt, Pack(fmt, v...), 1) returns v.
package pack
