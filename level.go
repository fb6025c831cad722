package texload

import (
	"math"
	"math/bits"

	"github.com/woozymasta/bcn"
)

// Level0Size returns the byte length of mip level 0 for a block-compressed
// format. Formats without a block family yield 0, meaning "do not truncate".
// Products that overflow uint64 saturate instead of wrapping.
func Level0Size(format Format, width, height uint32) uint64 {
	w := uint64(width)
	h := uint64(height)

	switch formats[format].family {
	case familyBlock8:
		return mulSat(mulSat((w+3)>>2, (h+3)>>2), 8)
	case familyBlock16:
		return mulSat(mulSat((w+3)>>2, (h+3)>>2), 16)
	case familyPVRTC4:
		return bitsToBytes(mulSat(mulSat(max(w, 8), max(h, 8)), 4))
	case familyPVRTC2:
		return bitsToBytes(mulSat(mulSat(max(w, 16), max(h, 8)), 2))
	default:
		return 0
	}
}

func mulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// bitsToBytes rounds a bit count up to whole bytes.
func bitsToBytes(n uint64) uint64 {
	return n/8 + (n%8+7)/8
}

// ddsLevelCount resolves the mip level count declared by a DDS header.
func ddsLevelCount(flags, mipMapCount uint32) uint32 {
	if flags&bcn.DDSFlagMipmapCount == 0 {
		return 1
	}

	return max(1, mipMapCount)
}
