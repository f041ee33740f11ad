package smalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaExtendGrowsAndReportsCurrent(t *testing.T) {
	a := NewArena(256)
	start := a.Current()
	prev, err := a.Extend(64)
	require.NoError(t, err)
	require.Equal(t, start, prev)
	require.Equal(t, uintptr(start)+64, uintptr(a.Current()))
}

func TestArenaExtendFailsPastCapacity(t *testing.T) {
	a := NewArena(64)
	_, err := a.Extend(32)
	require.NoError(t, err)
	_, err = a.Extend(64)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestArenaFailNextDoesNotConsumeCapacity(t *testing.T) {
	a := NewArena(64)
	a.FailNext()
	_, err := a.Extend(16)
	require.ErrorIs(t, err, ErrOutOfMemory)

	// Capacity was not consumed by the injected failure.
	_, err = a.Extend(64)
	require.NoError(t, err)
}
