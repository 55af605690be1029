package wf

import "strings"

// Attribute is the Win32-style file attribute bitmask synthesized for
// each search result.
type Attribute uint32

const (
	AttrReadOnly  Attribute = 0x00000001
	AttrHidden    Attribute = 0x00000002
	AttrSystem    Attribute = 0x00000004
	AttrDirectory Attribute = 0x00000010
	AttrArchive   Attribute = 0x00000020
	AttrNormal    Attribute = 0x00000080
)

// attrNames is ordered by bit value for stable String output.
var attrNames = []struct {
	flag Attribute
	name string
}{
	{AttrReadOnly, "READONLY"},
	{AttrHidden, "HIDDEN"},
	{AttrSystem, "SYSTEM"},
	{AttrDirectory, "DIRECTORY"},
	{AttrArchive, "ARCHIVE"},
	{AttrNormal, "NORMAL"},
}

// Has reports whether all bits of flag are set.
func (a Attribute) Has(flag Attribute) bool {
	return a&flag == flag
}

// String renders the set flags pipe-separated, e.g. "HIDDEN|DIRECTORY".
func (a Attribute) String() string {
	if a == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range attrNames {
		if a&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Short renders the flags as a fixed-width rwhsda-style column for
// listings: one letter per known flag, '-' when clear.
func (a Attribute) Short() string {
	var b strings.Builder
	for _, c := range []struct {
		flag Attribute
		ch   byte
	}{
		{AttrDirectory, 'd'},
		{AttrArchive, 'a'},
		{AttrReadOnly, 'r'},
		{AttrHidden, 'h'},
		{AttrSystem, 's'},
	} {
		if a&c.flag != 0 {
			b.WriteByte(c.ch)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
