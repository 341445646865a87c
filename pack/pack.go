package pack

import (
	"fmt"
	"math"

	"github.com/bytekit/bytekit/internal/pool"
)

// Pack serializes values according to the format string's field sequence.
//
// Value compatibility is strict: integer fields accept Go integers only
// (floats are rejected even when integral), float fields accept integers
// and floats, and string fields accept string and []byte only.
//
// Parameters:
//   - formatString: Pack format string
//   - values: One value per value-carrying field, in field order
//
// Returns:
//   - []byte: Packed record, newly allocated and owned by the caller
//   - error: ErrFormat, ErrArity, ErrType, or ErrRange
func Pack(formatString string, values ...any) ([]byte, error) {
	fields, err := parseFormat(formatString)
	if err != nil {
		return nil, err
	}

	arity := 0
	for _, f := range fields {
		if f.hasValue() {
			arity++
		}
	}
	if arity != len(values) {
		return nil, fmt.Errorf("%w: format %q has %d fields, got %d values",
			ErrArity, formatString, arity, len(values))
	}

	bb := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(bb)

	next := 0
	for i, f := range fields {
		bb.WriteZeros(f.padding(bb.Len()))

		if !f.hasValue() {
			if f.kind == kindPadByte {
				bb.WriteByte(0)
			}

			continue
		}

		v := values[next]
		next++

		if err := packField(bb, f, i, v); err != nil {
			return nil, err
		}
	}

	return bb.CopyBytes(), nil
}

func packField(bb *pool.ByteBuffer, f field, index int, v any) error {
	switch f.kind {
	case kindInt:
		u, err := intBits(f, index, v, true)
		if err != nil {
			return err
		}
		writeUintN(bb, f, u)
	case kindUint:
		u, err := intBits(f, index, v, false)
		if err != nil {
			return err
		}
		writeUintN(bb, f, u)
	case kindFloat32:
		x, ok := floatArg(v)
		if !ok {
			return fmt.Errorf("%w: field %d wants a number, got %T", ErrType, index, v)
		}
		writeUintN(bb, f, uint64(math.Float32bits(float32(x))))
	case kindFloat64:
		x, ok := floatArg(v)
		if !ok {
			return fmt.Errorf("%w: field %d wants a number, got %T", ErrType, index, v)
		}
		writeUintN(bb, f, math.Float64bits(x))
	case kindFixedString:
		s, ok := stringArg(v)
		if !ok {
			return fmt.Errorf("%w: field %d wants a string, got %T", ErrType, index, v)
		}
		if len(s) > f.size {
			return fmt.Errorf("%w: string of %d bytes longer than c%d field", ErrRange, len(s), f.size)
		}
		bb.WriteString(s)
		bb.WriteZeros(f.size - len(s))
	case kindPrefixString:
		s, ok := stringArg(v)
		if !ok {
			return fmt.Errorf("%w: field %d wants a string, got %T", ErrType, index, v)
		}
		if f.size < maxIntSize && uint64(len(s)) >= uint64(1)<<(8*f.size) {
			return fmt.Errorf("%w: string length %d does not fit in %d-byte prefix", ErrRange, len(s), f.size)
		}
		writeUintN(bb, f, uint64(len(s)))
		bb.WriteString(s)
	case kindZeroString:
		s, ok := stringArg(v)
		if !ok {
			return fmt.Errorf("%w: field %d wants a string, got %T", ErrType, index, v)
		}
		for i := range len(s) {
			if s[i] == 0 {
				return fmt.Errorf("%w: string for z field contains a zero byte", ErrRange)
			}
		}
		bb.WriteString(s)
		bb.WriteByte(0)
	}

	return nil
}

// writeUintN appends the low f.size bytes of u in the field's byte order.
func writeUintN(bb *pool.ByteBuffer, f field, u uint64) {
	var tmp [8]byte
	f.order.PutUint64(tmp[:], u)
	if f.little {
		bb.Write(tmp[:f.size])
	} else {
		bb.Write(tmp[8-f.size:])
	}
}

// intBits validates an integer argument against the field's width and
// signedness and returns its two's-complement bit pattern.
func intBits(f field, index int, v any, signed bool) (uint64, error) {
	sval, uval, isUnsigned, ok := intArg(v)
	if !ok {
		return 0, fmt.Errorf("%w: field %d wants an integer, got %T", ErrType, index, v)
	}

	if signed {
		if isUnsigned {
			if uval > math.MaxInt64 {
				return 0, fmt.Errorf("%w: %d overflows signed %d-byte field", ErrRange, uval, f.size)
			}
			sval = int64(uval)
		}
		if f.size < maxIntSize {
			limit := int64(1) << (8*f.size - 1)
			if sval < -limit || sval >= limit {
				return 0, fmt.Errorf("%w: %d overflows signed %d-byte field", ErrRange, sval, f.size)
			}
		}

		return uint64(sval), nil
	}

	if !isUnsigned {
		if sval < 0 {
			// An 8-byte unsigned field stores the two's complement, the
			// narrower widths reject negatives.
			if f.size == maxIntSize {
				return uint64(sval), nil
			}

			return 0, fmt.Errorf("%w: %d overflows unsigned %d-byte field", ErrRange, sval, f.size)
		}
		uval = uint64(sval)
	}
	if f.size < maxIntSize && uval >= uint64(1)<<(8*f.size) {
		return 0, fmt.Errorf("%w: %d overflows unsigned %d-byte field", ErrRange, uval, f.size)
	}

	return uval, nil
}

// intArg widens any Go integer type. Unsigned 64-bit magnitudes that do
// not fit int64 are reported through uval with isUnsigned set.
func intArg(v any) (sval int64, uval uint64, isUnsigned bool, ok bool) {
	switch x := v.(type) {
	case int:
		return int64(x), 0, false, true
	case int8:
		return int64(x), 0, false, true
	case int16:
		return int64(x), 0, false, true
	case int32:
		return int64(x), 0, false, true
	case int64:
		return x, 0, false, true
	case uint8:
		return int64(x), 0, false, true
	case uint16:
		return int64(x), 0, false, true
	case uint32:
		return int64(x), 0, false, true
	case uint:
		return 0, uint64(x), true, true
	case uint64:
		return 0, x, true, true
	case uintptr:
		return 0, uint64(x), true, true
	default:
		return 0, 0, false, false
	}
}

func floatArg(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		sval, uval, isUnsigned, ok := intArg(v)
		if !ok {
			return 0, false
		}
		if isUnsigned {
			return float64(uval), true
		}

		return float64(sval), true
	}
}

func stringArg(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	default:
		return "", false
	}
}
