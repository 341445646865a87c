package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	buf := New(src)

	src[0] = 99

	require.Equal(t, []byte{1, 2, 3}, buf.Bytes(), "buffer must not observe later mutation of the source slice")
	require.Equal(t, 3, buf.Len())
}

func TestFromString(t *testing.T) {
	buf := FromString("AB")

	require.Equal(t, []byte{0x41, 0x42}, buf.Bytes())
	require.Equal(t, "AB", buf.String())
}

func TestZeroValueEmpty(t *testing.T) {
	var buf Buffer

	require.Equal(t, 0, buf.Len())
	require.Empty(t, buf.Bytes())
}

func TestViewSharesStorage(t *testing.T) {
	require := require.New(t)

	root := New([]byte("hello world"))
	view, err := root.View(6, 5)
	require.NoError(err)
	require.Equal("world", view.String())
	require.Equal(5, view.Len())

	// A view of a view indexes into the inner view, not the root.
	inner, err := view.View(1, 3)
	require.NoError(err)
	require.Equal("orl", inner.String())
}

func TestViewBounds(t *testing.T) {
	root := New(make([]byte, 10))

	tests := []struct {
		name   string
		offset int
		size   int
		ok     bool
	}{
		{name: "full range", offset: 0, size: 10, ok: true},
		{name: "empty at start", offset: 0, size: 0, ok: true},
		{name: "empty at end", offset: 10, size: 0, ok: true},
		{name: "tail", offset: 9, size: 1, ok: true},
		{name: "negative offset", offset: -1, size: 2, ok: false},
		{name: "negative size", offset: 0, size: -1, ok: false},
		{name: "past end", offset: 5, size: 6, ok: false},
		{name: "offset past end", offset: 11, size: 0, ok: false},
		{name: "offset plus size wraps negative", offset: math.MaxInt, size: math.MaxInt, ok: false},
		{name: "huge size", offset: 0, size: math.MaxInt, ok: false},
		{name: "huge offset", offset: math.MaxInt, size: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := root.View(tt.offset, tt.size)
			if tt.ok {
				require.NoError(t, err)
				require.Equal(t, tt.size, view.Len())
			} else {
				require.ErrorIs(t, err, ErrOutOfRange)
			}
		})
	}
}

func TestViewOnEmptyBuffer(t *testing.T) {
	empty := New(nil)

	_, err := empty.View(0, 1)
	require.ErrorIs(t, err, ErrOutOfRange)

	view, err := empty.View(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, view.Len())
}

func TestEqual(t *testing.T) {
	a := New([]byte{1, 2, 3})
	b := FromString(string([]byte{1, 2, 3}))
	c := New([]byte{1, 2, 4})
	d := New([]byte{1, 2})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
}

func TestOverlappingViews(t *testing.T) {
	require := require.New(t)

	root := New([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	left, err := root.View(0, 5)
	require.NoError(err)
	right, err := root.View(3, 5)
	require.NoError(err)

	require.Equal([]byte{0, 1, 2, 3, 4}, left.Bytes())
	require.Equal([]byte{3, 4, 5, 6, 7}, right.Bytes())
}
