package pack

import (
	"fmt"
	"math"
)

// Unpack deserializes values from data according to the format string.
//
// startPos is 1-based; negative values index from the end of data, so -1
// names the last byte. Decoding begins there and consumes fields in order.
//
// Decoded types mirror the field kinds: int64 for signed integer fields,
// uint64 for unsigned, float32 for f, float64 for d and n, string for all
// string kinds.
//
// Parameters:
//   - formatString: Pack format string
//   - data: Packed input
//   - startPos: 1-based start position, negative counts from the end
//
// Returns:
//   - []any: Decoded values, one per value-carrying field
//   - int: 1-based index of the first unconsumed byte
//   - error: ErrFormat, ErrRange for a bad start position, or ErrTruncated
func Unpack(formatString string, data []byte, startPos int) ([]any, int, error) {
	fields, err := parseFormat(formatString)
	if err != nil {
		return nil, 0, err
	}

	if startPos < 0 {
		startPos = len(data) + startPos + 1
	}
	if startPos < 1 || startPos > len(data)+1 {
		return nil, 0, fmt.Errorf("%w: initial position %d out of string", ErrRange, startPos)
	}

	pos := startPos - 1

	values := make([]any, 0, len(fields))
	for _, f := range fields {
		// Alignment counts from the start of data, mirroring how Pack
		// counts from the start of its output.
		pos += f.padding(pos)
		if pos > len(data) {
			return nil, 0, truncated(formatString, len(data))
		}

		switch f.kind {
		case kindPadAlign:
			continue
		case kindPadByte:
			if pos+1 > len(data) {
				return nil, 0, truncated(formatString, len(data))
			}
			pos++

			continue
		case kindInt:
			u, next, err := readUintN(data, pos, f)
			if err != nil {
				return nil, 0, err
			}
			shift := 64 - 8*uint(f.size)
			values = append(values, int64(u<<shift)>>shift)
			pos = next
		case kindUint:
			u, next, err := readUintN(data, pos, f)
			if err != nil {
				return nil, 0, err
			}
			values = append(values, u)
			pos = next
		case kindFloat32:
			u, next, err := readUintN(data, pos, f)
			if err != nil {
				return nil, 0, err
			}
			values = append(values, math.Float32frombits(uint32(u)))
			pos = next
		case kindFloat64:
			u, next, err := readUintN(data, pos, f)
			if err != nil {
				return nil, 0, err
			}
			values = append(values, math.Float64frombits(u))
			pos = next
		case kindFixedString:
			if pos+f.size > len(data) {
				return nil, 0, truncated(formatString, len(data))
			}
			values = append(values, string(data[pos:pos+f.size]))
			pos += f.size
		case kindPrefixString:
			u, next, err := readUintN(data, pos, f)
			if err != nil {
				return nil, 0, err
			}
			if u > uint64(len(data)-next) {
				return nil, 0, truncated(formatString, len(data))
			}
			n := int(u)
			values = append(values, string(data[next:next+n]))
			pos = next + n
		case kindZeroString:
			end := pos
			for end < len(data) && data[end] != 0 {
				end++
			}
			if end == len(data) {
				return nil, 0, fmt.Errorf("%w: unterminated z string in format %q", ErrTruncated, formatString)
			}
			values = append(values, string(data[pos:end]))
			pos = end + 1
		}
	}

	return values, pos + 1, nil
}

// readUintN reads the field's f.size bytes at pos in the field's byte
// order, returning the value and the position past it.
func readUintN(data []byte, pos int, f field) (uint64, int, error) {
	if pos+f.size > len(data) {
		return 0, 0, fmt.Errorf("%w: data too short for %d-byte field at offset %d", ErrTruncated, f.size, pos)
	}

	var tmp [8]byte
	if f.little {
		copy(tmp[:f.size], data[pos:])
	} else {
		copy(tmp[8-f.size:], data[pos:])
	}

	return f.order.Uint64(tmp[:]), pos + f.size, nil
}

func truncated(formatString string, length int) error {
	return fmt.Errorf("%w: %d bytes too short for format %q", ErrTruncated, length, formatString)
}
