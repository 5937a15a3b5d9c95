package textrun

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strings"
)

// RunKey is the identity of a run for shape caching. Two runs with equal
// keys need the same shaping work: they have the same width, content,
// flags and bit-identical background alpha. Colors, line and absolute
// columns are not part of the key.
//
// RunKey is comparable and can be used as a map key.
type RunKey struct {
	Width     int
	Content   string
	AlphaBits uint32
	Flags     CellFlags
}

const (
	contentTagCursor = 'c'
	contentTagChars  = 's'
)

// Key projects the run onto its shape-cache identity.
func (r *TextRun) Key() RunKey {
	return RunKey{
		Width:     r.Width(),
		Content:   contentKey(r.Content),
		AlphaBits: math.Float32bits(r.BgAlpha),
		Flags:     r.Flags,
	}
}

// SameShape reports whether a and b can share shaped output.
func SameShape(a, b *TextRun) bool {
	return a.Key() == b.Key()
}

// Hash returns a 64-bit FNV-1a hash of the key. Equal keys hash equally.
func (k RunKey) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.Width))
	h.Write(buf[:])
	h.Write([]byte(k.Content))
	binary.LittleEndian.PutUint32(buf[:4], k.AlphaBits)
	h.Write(buf[:4])
	binary.LittleEndian.PutUint16(buf[:2], uint16(k.Flags))
	h.Write(buf[:2])
	return h.Sum64()
}

// writeRune writes r as four bytes so invalid code points stay distinct.
func writeRune(b *strings.Builder, r rune) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(r))
	b.Write(buf[:])
}

// contentKey encodes content so that two contents encode equally iff they
// are structurally equal. Every base character is followed by all of its
// zero-width slots, empty slots included, as fixed-size code points.
func contentKey(c Content) string {
	var b strings.Builder
	switch v := c.(type) {
	case *CursorContent:
		b.WriteByte(contentTagCursor)
		b.WriteByte(byte(v.Key.Shape))
		if v.Key.IsWide {
			b.WriteByte(1)
		} else {
			b.WriteByte(0)
		}
	case *CharContent:
		b.WriteByte(contentTagChars)
		for i, r := range v.Chars {
			writeRune(&b, r)
			for _, zw := range v.ZeroWidth[i] {
				writeRune(&b, zw)
			}
		}
	}
	return b.String()
}
