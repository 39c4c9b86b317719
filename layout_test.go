package basexml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout_String(t *testing.T) {
	require.Equal(t, "Standard", LayoutStandard.String())
	require.Equal(t, "CtrlRight", LayoutCtrlRight.String())
	require.Equal(t, "None", LayoutNone.String())
	require.Equal(t, "Layout(?)", Layout(42).String())
}

func TestPackGroup_Samples(t *testing.T) {
	tests := []struct {
		group   uint32
		layout  Layout
		encoded []byte
	}{
		{0x01E3C, LayoutIllegalBoth, []byte{0x38, 0x40, 0x40}},
		{0x01E00, LayoutIllegalLeft, []byte{0x30, 0x40, 0x40}},
		{0x0003C, LayoutIllegalRight, []byte{0x34, 0x40, 0x40}},
		{0x01020, LayoutStandard, []byte{0x40, 0x20, 0x20}},
		{0xFFFFF, LayoutStandard, []byte{0x7F, 0x7F, 0x7F}},
		{0x00000, LayoutCtrlLeftCanonical, []byte{0x20, 0x20, 0x40}},
		{0x00180, LayoutCtrlLeftCanonical, []byte{0x20, 0x09, 0x40}},
		{0x01000, LayoutCtrlRightCanonical, []byte{0x20, 0x60, 0x20}},
		{0x10000, LayoutCtrlBoth, []byte{0x21, 0x40, 0x40}},
		{0x10020, LayoutCtrlLeft, []byte{0x20, 0xC2, 0x80}},
		{0x11000, LayoutCtrlRight, []byte{0xC2, 0x80, 0x20}},
	}

	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			v, l := packGroup(tt.group)
			require.Equal(t, tt.layout, l)
			require.Equal(t, tt.layout, LayoutOf(tt.group))

			buf := make([]byte, GroupSize)
			putGroup(buf, v)
			require.Equal(t, tt.encoded, buf)

			g, l := unpackGroup(readGroup(buf))
			require.Equal(t, tt.layout, l)
			require.Equal(t, tt.group, g)
		})
	}
}

// Every group must round trip, stay clear of the forbidden bytes and never
// look like a termination sequence.
func TestPackGroup_Exhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive check skipped in short mode")
	}

	var counts [LayoutNone]int
	buf := make([]byte, GroupSize)
	for g := uint32(0); g <= groupMask; g++ {
		v, l := packGroup(g)
		counts[l]++

		raw := []byte{byte(v >> 16), byte(v >> 8), byte(v)}
		for _, c := range raw {
			if c == tab {
				t.Fatalf("group %05X packs to TAB before guarding", g)
			}
		}

		putGroup(buf, v)
		for _, c := range buf {
			if IsForbidden(c) {
				t.Fatalf("group %05X encodes to forbidden byte 0x%02X", g, c)
			}
		}
		if isMarker(buf) {
			t.Fatalf("group %05X encodes to a termination sequence", g)
		}

		back, bl := unpackGroup(readGroup(buf))
		if back != g || bl != l {
			t.Fatalf("group %05X decodes to %05X (%v, want %v)", g, back, bl, l)
		}
	}

	for l, n := range counts {
		require.NotZero(t, n, "layout %v never selected", Layout(l))
	}
}

func TestUnpackGroup_NoMatch(t *testing.T) {
	g, l := unpackGroup(0x000000)
	require.Equal(t, LayoutNone, l)
	require.Zero(t, g)

	g, l = unpackGroup(0xFFFFFF)
	require.Equal(t, LayoutNone, l)
	require.Zero(t, g)
}
