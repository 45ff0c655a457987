package codepoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	for _, tc := range []struct {
		cp   int32
		want Plane
	}{
		{0x000000, Ascii},
		{0x000048, Ascii},
		{0x00007F, Ascii},
		{0x000080, Latin},
		{0x0000E9, Latin},
		{0x0007FF, Latin},
		{0x000800, MultiLingual},
		{0x004E2D, MultiLingual},
		{0x00D7FF, MultiLingual},
		{0x00D800, Invalid},
		{0x00DABC, Invalid},
		{0x00DFFF, Invalid},
		{0x00E000, MultiLingual},
		{0x00FFFF, MultiLingual},
		{0x010000, Extended},
		{0x01F600, Extended},
		{0x10FFFF, Extended},
		{0x110000, Invalid},
		{-1, Invalid},
		{-0x80000000, Invalid},
		{0x7FFFFFFF, Invalid},
	} {
		require.Equal(t, tc.want, Of(tc.cp), "U+%04X", tc.cp)
	}
}

func TestValid(t *testing.T) {
	require.True(t, Valid(0))
	require.True(t, Valid(0x10FFFF))
	require.False(t, Valid(0xD800))
	require.False(t, Valid(0x110000))
	require.False(t, Valid(-1))
}

func TestString(t *testing.T) {
	require.Equal(t, "ascii", Ascii.String())
	require.Equal(t, "latin", Latin.String())
	require.Equal(t, "multilingual", MultiLingual.String())
	require.Equal(t, "extended", Extended.String())
	require.Equal(t, "invalid", Invalid.String())
	require.Equal(t, "invalid", Plane(42).String())
}
