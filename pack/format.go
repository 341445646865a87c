package pack

import (
	"errors"
	"fmt"

	"github.com/bytekit/bytekit/endian"
)

// Sentinel errors returned by the pack engine. All returned errors wrap one
// of these, so callers can classify failures with errors.Is.
var (
	// ErrFormat indicates an ill-formed format string, or one containing a
	// variable-length field where a fixed size is required.
	ErrFormat = errors.New("pack: invalid format string")

	// ErrArity indicates a mismatch between the number of values supplied
	// to Pack and the number of value-carrying fields in the format.
	ErrArity = errors.New("pack: wrong number of values")

	// ErrType indicates a value whose runtime type is incompatible with
	// its field's declared kind.
	ErrType = errors.New("pack: value type does not match field")

	// ErrRange indicates an integer value or string length that does not
	// fit the declared field width, or an out-of-range start position.
	ErrRange = errors.New("pack: value out of range for field")

	// ErrTruncated indicates unpack input shorter than the format demands.
	ErrTruncated = errors.New("pack: truncated data")
)

// maxIntSize is the widest supported integer field in bytes.
const maxIntSize = 8

// nativeAlign is the alignment selected by a bare "!" directive.
const nativeAlign = 8

type fieldKind uint8

const (
	kindInt          fieldKind = iota // signed integer, size bytes
	kindUint                          // unsigned integer, size bytes
	kindFloat32                       // 4-byte IEEE 754
	kindFloat64                       // 8-byte IEEE 754
	kindFixedString                   // c[n]: exactly size bytes, zero padded
	kindPrefixString                  // s[n]: size-byte length prefix then bytes
	kindZeroString                    // z: bytes then a terminating zero
	kindPadByte                       // x: one zero byte, no value
	kindPadAlign                      // X<op>: alignment only, no value and no bytes of its own
)

// field is one parsed descriptor of the format mini-language. The same
// sequence of fields drives PackedSize, Pack, and Unpack, so the three
// stay symmetric by construction.
type field struct {
	kind   fieldKind
	size   int // byte width; prefix width for kindPrefixString; 0 for z and X
	align  int // effective alignment, already clamped to the active maxalign
	order  endian.EndianEngine
	little bool
}

// hasValue reports whether the field consumes a caller value on pack and
// produces one on unpack.
func (f field) hasValue() bool {
	return f.kind != kindPadByte && f.kind != kindPadAlign
}

// fixedSize returns the field's packed byte count, not counting alignment
// padding, or false for variable-size fields.
func (f field) fixedSize() (int, bool) {
	switch f.kind {
	case kindPrefixString, kindZeroString:
		return 0, false
	case kindPadByte:
		return 1, true
	case kindPadAlign:
		return 0, true
	default:
		return f.size, true
	}
}

type parser struct {
	format   string
	pos      int
	order    endian.EndianEngine
	little   bool
	maxalign int
}

// parseFormat parses a format string into its field descriptor sequence.
//
// Endianness defaults to the host's native order, and maxalign defaults to
// 1 (no alignment) until a "!" directive appears, matching the Lua 5.3
// string.pack conventions the mini-language reproduces.
func parseFormat(formatString string) ([]field, error) {
	p := &parser{
		format:   formatString,
		order:    endian.Native(),
		little:   endian.IsNativeLittleEndian(),
		maxalign: 1,
	}

	var fields []field
	for p.pos < len(p.format) {
		c := p.format[p.pos]
		p.pos++

		switch c {
		case ' ':
			continue
		case '<':
			p.order, p.little = endian.Little(), true
			continue
		case '>':
			p.order, p.little = endian.Big(), false
			continue
		case '=':
			p.order, p.little = endian.Native(), endian.IsNativeLittleEndian()
			continue
		case '!':
			n, err := p.number(nativeAlign)
			if err != nil {
				return nil, err
			}
			if n < 1 || n > maxIntSize {
				return nil, fmt.Errorf("%w: alignment %d out of limits [1,%d]", ErrFormat, n, maxIntSize)
			}
			p.maxalign = n

			continue
		}

		f, err := p.option(c)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

// option parses a single value or padding option, c being its lead byte.
func (p *parser) option(c byte) (field, error) {
	f := field{order: p.order, little: p.little}

	switch c {
	case 'b':
		f.kind, f.size = kindInt, 1
	case 'B':
		f.kind, f.size = kindUint, 1
	case 'h':
		f.kind, f.size = kindInt, 2
	case 'H':
		f.kind, f.size = kindUint, 2
	case 'l', 'j':
		f.kind, f.size = kindInt, 8
	case 'L', 'J', 'T':
		f.kind, f.size = kindUint, 8
	case 'i', 'I':
		n, err := p.number(4)
		if err != nil {
			return field{}, err
		}
		if n < 1 || n > maxIntSize {
			return field{}, fmt.Errorf("%w: integral size %d out of limits [1,%d]", ErrFormat, n, maxIntSize)
		}
		f.size = n
		if c == 'i' {
			f.kind = kindInt
		} else {
			f.kind = kindUint
		}
	case 'f':
		f.kind, f.size = kindFloat32, 4
	case 'd', 'n':
		f.kind, f.size = kindFloat64, 8
	case 's':
		n, err := p.number(8)
		if err != nil {
			return field{}, err
		}
		if n < 1 || n > maxIntSize {
			return field{}, fmt.Errorf("%w: prefix size %d out of limits [1,%d]", ErrFormat, n, maxIntSize)
		}
		f.kind, f.size = kindPrefixString, n
	case 'z':
		f.kind, f.size = kindZeroString, 0
	case 'c':
		n, ok, err := p.optionalNumber()
		if err != nil {
			return field{}, err
		}
		if !ok {
			return field{}, fmt.Errorf("%w: missing size for format option 'c'", ErrFormat)
		}
		f.kind, f.size = kindFixedString, n
	case 'x':
		f.kind, f.size = kindPadByte, 1

		return f, nil
	case 'X':
		return p.alignOption()
	default:
		return field{}, fmt.Errorf("%w: invalid format option '%c'", ErrFormat, c)
	}

	return p.aligned(f, c)
}

// alignOption parses "X<op>": the following option contributes only its
// alignment, no value and no bytes.
func (p *parser) alignOption() (field, error) {
	if p.pos >= len(p.format) {
		return field{}, fmt.Errorf("%w: invalid next option for option 'X'", ErrFormat)
	}

	c := p.format[p.pos]
	p.pos++

	// The borrowed option must follow immediately; a space or directive
	// carries no alignment.
	if c == ' ' {
		return field{}, fmt.Errorf("%w: invalid next option for option 'X'", ErrFormat)
	}

	next, err := p.option(c)
	if err != nil {
		return field{}, err
	}
	// Fixed strings never align, and zero-size options carry no alignment
	// to borrow.
	if next.kind == kindFixedString || next.size == 0 {
		return field{}, fmt.Errorf("%w: invalid next option for option 'X'", ErrFormat)
	}

	align, err := p.clampAlign(next.size)
	if err != nil {
		return field{}, err
	}

	return field{kind: kindPadAlign, align: align, order: p.order, little: p.little}, nil
}

// aligned finalizes a value field's effective alignment. Fixed strings are
// never aligned; everything else aligns to min(size, maxalign).
func (p *parser) aligned(f field, c byte) (field, error) {
	if c == 'c' {
		f.align = 1
		return f, nil
	}

	align, err := p.clampAlign(f.size)
	if err != nil {
		return field{}, err
	}
	f.align = align

	return f, nil
}

func (p *parser) clampAlign(size int) (int, error) {
	align := size
	if align > p.maxalign {
		align = p.maxalign
	}
	if align <= 1 {
		return 1, nil
	}
	if align&(align-1) != 0 {
		return 0, fmt.Errorf("%w: format asks for alignment %d, not a power of 2", ErrFormat, align)
	}

	return align, nil
}

// number parses an optional decimal suffix, returning def when absent.
func (p *parser) number(def int) (int, error) {
	n, ok, err := p.optionalNumber()
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}

	return n, nil
}

func (p *parser) optionalNumber() (int, bool, error) {
	if p.pos >= len(p.format) || p.format[p.pos] < '0' || p.format[p.pos] > '9' {
		return 0, false, nil
	}

	const limit = 1 << 24
	n := 0
	for p.pos < len(p.format) && p.format[p.pos] >= '0' && p.format[p.pos] <= '9' {
		n = n*10 + int(p.format[p.pos]-'0')
		if n > limit {
			return 0, false, fmt.Errorf("%w: size literal too large", ErrFormat)
		}
		p.pos++
	}

	return n, true, nil
}

// padding returns the number of zero bytes needed to advance pos to the
// field's alignment boundary.
func (f field) padding(pos int) int {
	if f.align <= 1 {
		return 0
	}

	return (f.align - pos%f.align) % f.align
}

// PackedSize computes the exact byte length the format string produces.
//
// Variable-length fields (s, z) make the size undefined, so their presence
// fails with ErrFormat rather than guessing.
//
// Parameters:
//   - formatString: Pack format string
//
// Returns:
//   - int: Total packed size in bytes, including alignment padding
//   - error: ErrFormat for an ill-formed format or a variable-length field
func PackedSize(formatString string) (int, error) {
	fields, err := parseFormat(formatString)
	if err != nil {
		return 0, err
	}

	size := 0
	for _, f := range fields {
		n, fixed := f.fixedSize()
		if !fixed {
			return 0, fmt.Errorf("%w: variable-size field in format %q", ErrFormat, formatString)
		}
		size += f.padding(size) + n
	}

	return size, nil
}
