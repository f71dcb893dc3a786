package rankcode

import (
	"github.com/chronos-tachyon/assert"
)

// PaddingFor returns the number of zero bits needed to fill out the last byte
// of an nbits-long bitstream.
func PaddingFor(nbits uint64) byte {
	return byte((8 - nbits%8) % 8)
}

func encodeCount(n int) byte {
	assert.Assertf(n >= MinSymbols && n <= NumSymbols, "symbol count %d out of range [%d, %d]", n, MinSymbols, NumSymbols)
	return byte(n % NumSymbols)
}

func decodeCount(b byte) int {
	if b == 0 {
		return NumSymbols
	}
	return int(b)
}
