package ai

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Run("short input untouched", func(t *testing.T) {
		require.Equal(t, "hello", truncate("hello", 10))
		require.Equal(t, "hello", truncate("hello", 5))
	})

	t.Run("long input gets a marker", func(t *testing.T) {
		got := truncate("abcdefgh", 4)
		require.Equal(t, "abcd\n... (truncated)", got)
	})

	t.Run("cut never splits a rune", func(t *testing.T) {
		// "дефис" is 10 bytes; every cut point inside it lands
		// mid-rune for odd offsets.
		s := "дефис"
		for max := 1; max < len(s); max++ {
			got := truncate(s, max)
			body := strings.TrimSuffix(got, "\n... (truncated)")
			require.True(t, utf8.ValidString(body), "max=%d produced %q", max, body)
			require.True(t, strings.HasPrefix(s, body))
		}
	})
}
