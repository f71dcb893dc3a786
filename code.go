package rankcode

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

const wordBits = 64

// maxBitsPerCode is the longest codeword a Code can hold.  A chain code over
// the full alphabet needs NumSymbols-1 bits.
const maxBitsPerCode = NumSymbols

const codeWords = maxBitsPerCode / wordBits

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// words holds the actual values of the bits.  The most significant bit
	// of words[0] is the first bit.
	words [codeWords]uint64
}

// Append returns the Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code.Size %d >= maxBitsPerCode %d", hc.Size, maxBitsPerCode)
	if bit {
		index, shift := hc.Size/wordBits, wordBits-1-(hc.Size%wordBits)
		hc.words[index] |= uint64(1) << shift
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the Code, counting from 0.
func (hc Code) Bit(i uint16) bool {
	assert.Assertf(i < hc.Size, "bit index %d >= Code.Size %d", i, hc.Size)
	index, shift := i/wordBits, wordBits-1-(i%wordBits)
	return (hc.words[index]>>shift)&1 == 1
}

// chunk returns the i'th group of up to 64 bits, right-aligned, along with the
// number of valid bits in it.
func (hc Code) chunk(i uint16) (uint64, uint8) {
	start := i * wordBits
	if start >= hc.Size {
		return 0, 0
	}
	n := hc.Size - start
	if n > wordBits {
		n = wordBits
	}
	return hc.words[i] >> (wordBits - n), uint8(n)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	buf := make([]byte, hc.Size)
	for i := uint16(0); i < hc.Size; i++ {
		buf[i] = '0'
		if hc.Bit(i) {
			buf[i] = '1'
		}
	}
	return strconv.Quote(string(buf))
}

var _ fmt.Stringer = Code{}
