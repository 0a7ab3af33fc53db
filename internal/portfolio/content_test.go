package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.Equal(t,
		[]string{"Professional video", "editing and", "post-production", "services"},
		Wrap("Professional video editing and post-production services", 18))
	require.Equal(t, []string{"a", "supercalifragilistic", "b"}, Wrap("a supercalifragilistic b", 5))
	require.Nil(t, Wrap("   ", 10))
	require.Equal(t, []string{"as is"}, Wrap("as is", 0))
}

func TestBadge(t *testing.T) {
	require.Equal(t, "Media", Services[0].Badge())
	for _, c := range Services[1:] {
		require.Equal(t, "Coming Soon", c.Badge())
	}
}

func TestFooter(t *testing.T) {
	require.Contains(t, Footer, "EVENING©")
	require.Contains(t, Footer, "All Rights Reserved")
}
