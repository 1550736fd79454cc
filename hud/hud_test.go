package hud

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0 : 01"},
		{58.5, "0 : 59"},
		{59, "1 : 00"},
		{89.99, "1 : 30"},
		{119, "2 : 00"},
		{-3, "0 : 00"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatClock(tc.seconds), "seconds=%v", tc.seconds)
	}
}

func TestFormatClockSecondsAlwaysTwoDigits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.Float64Range(0, 3600).Draw(t, "seconds")
		out := FormatClock(s)
		require.Regexp(t, `^\d+ : [0-5]\d$`, out)
	})
}

func TestBoardUpdates(t *testing.T) {
	b := New()
	require.Equal(t, "0 : 01", b.Clock())

	b.UpdateTime(61)
	b.UpdateScore(2, 5, 7)
	require.Equal(t, "1 : 02", b.Clock())
	require.Equal(t, "SCORE 2   SHOTS 5   BEST 7", b.Score())
}

func TestBoardIgnoresUpdatesAfterClose(t *testing.T) {
	b := New()
	b.UpdateTime(10)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	b.UpdateTime(30)
	b.UpdateScore(1, 1, 1)
	require.Equal(t, "0 : 11", b.Clock())
	require.Equal(t, "SCORE 0   SHOTS 0   BEST 0", b.Score())
}
