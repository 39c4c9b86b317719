package basexml

// Layout identifies one entry of the layout table.
//
// In the comments below the 20 bits of a group are named A (most significant)
// through T, and each layout is shown as the three bytes it produces.
type Layout int

const (
	LayoutIllegalBoth        Layout = iota // 00111 0LS  01ABCDEF  01000000
	LayoutIllegalLeft                      // 00110 0LT  01ABCDEF  01NOPQRS
	LayoutIllegalRight                     // 00110 1SM  01ABCDEF  01GHIJKL
	LayoutStandard                         // 01ABCDEF  0GHIJKLM  0NOPQRST
	LayoutCtrlLeftCanonical                // 0010EFIJ  0010KLMN  01OPQRST
	LayoutCtrlRightCanonical               // 0010PEFG  01HIJKLM  0010QRST
	LayoutCtrlBoth                         // 0010ABCD  01EFIJKL  01MPQRST
	LayoutCtrlLeft                         // 0NOPQRST  110ABCDE  10MFIJKL
	LayoutCtrlRight                        // 110ABCDE  10FPQRST  0GHIJKLM

	// LayoutNone is reported for encoded groups that match no entry.
	LayoutNone
)

var layoutNames = [...]string{
	LayoutIllegalBoth:        "IllegalBoth",
	LayoutIllegalLeft:        "IllegalLeft",
	LayoutIllegalRight:       "IllegalRight",
	LayoutStandard:           "Standard",
	LayoutCtrlLeftCanonical:  "CtrlLeftCanonical",
	LayoutCtrlRightCanonical: "CtrlRightCanonical",
	LayoutCtrlBoth:           "CtrlBoth",
	LayoutCtrlLeft:           "CtrlLeft",
	LayoutCtrlRight:          "CtrlRight",
	LayoutNone:               "None",
}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return "Layout(?)"
	}
	return layoutNames[l]
}

const (
	groupMask   = 0xFFFFF  // 20 bits
	encodedMask = 0xFFFFFF // 24 bits
)

// field moves the group bits selected by mask to the left by shift positions
// (to the right when shift is negative).
type field struct {
	mask  uint32
	shift int
}

func (f field) pack(g uint32) uint32 {
	if f.shift >= 0 {
		return (g & f.mask) << f.shift
	}
	return (g & f.mask) >> -f.shift
}

func (f field) unpack(v uint32) uint32 {
	if f.shift >= 0 {
		return (v >> f.shift) & f.mask
	}
	return (v << -f.shift) & f.mask
}

// entry is one row of the layout table. Unpacking is derived from the same
// fields as packing, so both directions always agree.
type entry struct {
	layout Layout

	// matches selects the groups this layout encodes.
	matches func(g uint32) bool

	// prefix holds the fixed bits written into every encoded group.
	prefix uint32

	// markMask and markValue identify the layout from an encoded group.
	markMask  uint32
	markValue uint32

	// implied holds the group bits that selecting this layout fixes and that
	// therefore are not stored.
	implied uint32

	fields []field
}

func (e *entry) pack(g uint32) uint32 {
	v := e.prefix
	for _, f := range e.fields {
		v |= f.pack(g)
	}
	return v & encodedMask
}

func (e *entry) unpack(v uint32) uint32 {
	g := e.implied
	for _, f := range e.fields {
		g |= f.unpack(v)
	}
	return g & groupMask
}

func equals(mask, value uint32) func(uint32) bool {
	return func(g uint32) bool {
		return g&mask == value
	}
}

// table is checked in order, the first matching entry wins.
//
// The three "illegal" layouts come first: packed with the standard layout
// these groups would produce '<' or '>'. Standard needs both GH and NO to be
// non-zero, otherwise its second or third byte falls into the control range.
// The remaining layouts handle zero GH and/or NO pairs; the last one takes
// everything that is left.
var table = [...]entry{
	{
		layout:    LayoutIllegalBoth,
		matches:   equals(0x03EFD, 0x01E3C), // GHIJKMNOPQRT == 011110011110
		prefix:    0x384040,
		markMask:  0xFCC0F0,
		markValue: 0x384040,
		implied:   0x01E3C,
		fields:    []field{{0x00100, 9}, {0x00002, 15}, {0xFC000, -6}},
	},
	{
		layout:    LayoutIllegalLeft,
		matches:   equals(0x03E80, 0x01E00), // GHIJKM == 011110
		prefix:    0x304040,
		markMask:  0xFCC0C0,
		markValue: 0x304040,
		implied:   0x01E00,
		fields:    []field{{0x00100, 9}, {0x00001, 16}, {0xFC000, -6}, {0x0007E, -1}},
	},
	{
		layout:    LayoutIllegalRight,
		matches:   equals(0x0007D, 0x0003C), // NOPQRT == 011110
		prefix:    0x344040,
		markMask:  0xFCC0C0,
		markValue: 0x344040,
		implied:   0x0003C,
		fields:    []field{{0x00002, 16}, {0x00080, 9}, {0xFC000, -6}, {0x03F00, -8}},
	},
	{
		layout: LayoutStandard,
		matches: func(g uint32) bool {
			return g&0x03000 != 0 && g&0x00060 != 0 // GH != 00 && NO != 00
		},
		prefix:    0x400000,
		markMask:  0xC08080,
		markValue: 0x400000,
		fields:    []field{{0xFC000, 2}, {0x03F80, 1}, {0x0007F, 0}},
	},
	{
		layout:    LayoutCtrlLeftCanonical,
		matches:   equals(0xF3000, 0), // ABCDGH == 000000
		prefix:    0x202040,
		markMask:  0xF0F0C0,
		markValue: 0x202040,
		fields:    []field{{0x0C000, 4}, {0x00C00, 6}, {0x003C0, 2}, {0x0003F, 0}},
	},
	{
		layout:    LayoutCtrlRightCanonical,
		matches:   equals(0xF0060, 0), // ABCDNO == 000000
		prefix:    0x204020,
		markMask:  0xF0C0F0,
		markValue: 0x204020,
		fields:    []field{{0x00010, 15}, {0x0E000, 3}, {0x01F80, 1}, {0x0000F, 0}},
	},
	{
		layout:    LayoutCtrlBoth,
		matches:   equals(0x03060, 0), // GHNO == 0000
		prefix:    0x204040,
		markMask:  0xF0C0C0,
		markValue: 0x204040,
		fields:    []field{{0xF0000, 0}, {0x0C000, -2}, {0x00F00, 0}, {0x00080, -2}, {0x0001F, 0}},
	},
	{
		layout:    LayoutCtrlLeft,
		matches:   equals(0x03000, 0), // GH == 00
		prefix:    0x00C080,
		markMask:  0x80E0C0,
		markValue: 0x00C080,
		fields:    []field{{0x0007F, 16}, {0xF8000, -7}, {0x00080, -2}, {0x04000, -10}, {0x00F00, -8}},
	},
	{
		layout:    LayoutCtrlRight,
		matches:   equals(0x00060, 0), // NO == 00
		prefix:    0xC08000,
		markMask:  0xE0C080,
		markValue: 0xC08000,
		fields:    []field{{0xF8000, 1}, {0x04000, -1}, {0x0001F, 8}, {0x03F80, -7}},
	},
}

// packGroup encodes the 20-bit group g into 24 bits.
func packGroup(g uint32) (uint32, Layout) {
	g &= groupMask
	for i := range table {
		if table[i].matches(g) {
			return table[i].pack(g), table[i].layout
		}
	}
	// Groups failing Standard have GH or NO zero, and the last two entries
	// cover both cases.
	last := &table[len(table)-1]
	return last.pack(g), last.layout
}

// unpackGroup decodes 24 bits into a 20-bit group. Values that match no
// layout decode to zero.
func unpackGroup(v uint32) (uint32, Layout) {
	v &= encodedMask
	for i := range table {
		if v&table[i].markMask == table[i].markValue {
			return table[i].unpack(v), table[i].layout
		}
	}
	return 0, LayoutNone
}

// LayoutOf reports which layout encodes the 20-bit group g.
func LayoutOf(g uint32) Layout {
	_, l := packGroup(g)
	return l
}
