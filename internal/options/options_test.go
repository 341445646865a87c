package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	level int
	name  string
}

func TestApply(t *testing.T) {
	require := require.New(t)

	tgt := &target{}
	err := Apply(tgt,
		NoError(func(tg *target) { tg.level = 5 }),
		NoError(func(tg *target) { tg.name = "configured" }),
	)

	require.NoError(err)
	require.Equal(5, tgt.level)
	require.Equal("configured", tgt.name)
}

func TestApplyStopsAtError(t *testing.T) {
	errBad := errors.New("bad option")

	tgt := &target{}
	err := Apply(tgt,
		NoError(func(tg *target) { tg.level = 1 }),
		New(func(tg *target) error { return errBad }),
		NoError(func(tg *target) { tg.level = 2 }),
	)

	require.ErrorIs(t, err, errBad)
	require.Equal(t, 1, tgt.level, "options after the failing one must not apply")
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
