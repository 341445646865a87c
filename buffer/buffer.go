// Package buffer provides immutable byte buffers with shared-storage views.
//
// A Buffer is an opaque handle to a contiguous run of bytes. A buffer is
// either a root (owning a private copy of its bytes) or a view (aliasing a
// sub-range of another buffer's storage). Buffers are never mutated after
// construction, so any number of goroutines may read a buffer, or
// overlapping views of the same root, without coordination.
//
// A view keeps its root's storage reachable for as long as the view itself
// is reachable; releasing the last reference to a root and all of its views
// releases the storage.
package buffer

import "errors"

// ErrOutOfRange indicates a view request outside the bounds of its source
// buffer.
var ErrOutOfRange = errors.New("buffer: view out of range")

// Buffer is an immutable view over a contiguous byte range.
//
// The zero value is an empty buffer and is ready to use.
type Buffer struct {
	data []byte
}

// New creates a root buffer holding a private copy of b.
//
// The caller retains ownership of b and may modify it after New returns;
// the buffer is unaffected.
func New(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)

	return &Buffer{data: data}
}

// FromString creates a root buffer holding the bytes of s.
func FromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Wrap creates a buffer that takes ownership of b without copying.
//
// Note: The buffer shares the same underlying memory as b. Callers must not
// modify b after calling Wrap, since buffers are immutable by contract.
func Wrap(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer's contents.
//
// Note: The returned slice shares the buffer's underlying memory and must
// be treated as read-only. Use New(b.Bytes()) to obtain an independent copy.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns the buffer's contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// View returns a read-only buffer sharing storage with b, covering size
// bytes starting at offset.
//
// The view holds a reference to the same backing storage as b, so the root
// buffer's bytes stay alive for the lifetime of the view.
//
// Parameters:
//   - offset: Starting byte position, 0-based
//   - size: Number of bytes in the view
//
// Returns:
//   - *Buffer: View over b's storage
//   - error: ErrOutOfRange if offset < 0, size < 0, or offset+size > b.Len()
func (b *Buffer) View(offset, size int) (*Buffer, error) {
	// Checked as size > len-offset so huge offset/size pairs cannot wrap the
	// sum past the bounds check.
	if offset < 0 || size < 0 || offset > len(b.data) || size > len(b.data)-offset {
		return nil, ErrOutOfRange
	}

	// Full-slice expression caps the view so later append on the result of
	// Bytes() cannot spill into sibling views.
	return &Buffer{data: b.data[offset : offset+size : offset+size]}, nil
}

// Equal reports whether b and other hold identical bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Len() != other.Len() {
		return false
	}
	for i, c := range b.data {
		if other.data[i] != c {
			return false
		}
	}

	return true
}
