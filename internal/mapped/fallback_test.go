package mapped

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionHeapFallbackKeepsError(t *testing.T) {
	errMap := errors.New("mapping refused")
	orig := mapAnon
	mapAnon = func(int) ([]byte, error) { return nil, errMap }
	defer func() { mapAnon = orig }()

	r, err := New(256)
	require.NoError(t, err)
	require.False(t, r.Mapped())
	require.ErrorIs(t, r.MapErr(), errMap)
	require.Equal(t, 256, r.Len())
	require.NotNil(t, r.Data())
	require.NoError(t, r.Close())
}
