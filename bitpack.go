package rankcode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Packer packs a sequence of bits into bytes, most significant bit first.
// The zero value is not usable; call NewPacker.
type Packer struct {
	buf   bytes.Buffer
	w     *bitio.Writer
	nbits uint64
	done  bool
}

// NewPacker returns an empty Packer.
func NewPacker() *Packer {
	p := &Packer{}
	p.w = bitio.NewWriter(&p.buf)
	return p
}

// Len returns the number of bits written so far.
func (p *Packer) Len() uint64 {
	return p.nbits
}

// WriteBit appends a single bit.
func (p *Packer) WriteBit(bit bool) error {
	assert.Assertf(!p.done, "Packer used after Finish")
	if err := p.w.WriteBool(bit); err != nil {
		return err
	}
	p.nbits++
	return nil
}

// WriteCode appends every bit of a Code.
func (p *Packer) WriteCode(hc Code) error {
	assert.Assertf(!p.done, "Packer used after Finish")
	for i := uint16(0); i < codeWords; i++ {
		bits, n := hc.chunk(i)
		if n == 0 {
			break
		}
		if err := p.w.WriteBits(bits, n); err != nil {
			return err
		}
	}
	p.nbits += uint64(hc.Size)
	return nil
}

// Finish fills the last byte with zero bits and returns the packed bytes
// together with the number of filler bits.  The Packer cannot be used
// afterward.
func (p *Packer) Finish() (data []byte, padding byte, err error) {
	assert.Assertf(!p.done, "Packer.Finish called twice")
	p.done = true

	skipped, err := p.w.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := p.w.Close(); err != nil {
		return nil, 0, err
	}

	padding = PaddingFor(p.nbits)
	assert.Assertf(skipped == padding, "bitio skipped %d bits, expected %d", skipped, padding)
	assert.Assertf(uint64(p.buf.Len())*8 == p.nbits+uint64(padding), "packed %d bytes for %d bits", p.buf.Len(), p.nbits)
	return p.buf.Bytes(), padding, nil
}

// Pack is a convenience function that packs a slice of bits.
func Pack(bits []bool) ([]byte, byte, error) {
	p := NewPacker()
	for _, bit := range bits {
		if err := p.WriteBit(bit); err != nil {
			return nil, 0, err
		}
	}
	return p.Finish()
}

// Unpacker reads back the bits of a packed byte slice, most significant bit
// first, stopping at an explicit bit count so that filler bits are never
// returned.
type Unpacker struct {
	r         *bitio.Reader
	remaining uint64
}

// NewUnpacker returns an Unpacker that yields the first totalBits bits of
// data.  Returns ErrTruncatedBitstream if data is shorter than totalBits.
func NewUnpacker(data []byte, totalBits uint64) (*Unpacker, error) {
	if available := uint64(len(data)) * 8; totalBits > available {
		return nil, fmt.Errorf("%w: %d bits requested from %d available", ErrTruncatedBitstream, totalBits, available)
	}
	return &Unpacker{
		r:         bitio.NewReader(bytes.NewReader(data)),
		remaining: totalBits,
	}, nil
}

// Remaining returns the number of bits left to read.
func (u *Unpacker) Remaining() uint64 {
	return u.remaining
}

// ReadBit returns the next bit, or io.EOF once totalBits bits have been read.
func (u *Unpacker) ReadBit() (bool, error) {
	if u.remaining == 0 {
		return false, io.EOF
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return false, err
	}
	u.remaining--
	return bit, nil
}

// Unpack is a convenience function that returns the first totalBits bits of
// data.
func Unpack(data []byte, totalBits uint64) ([]bool, error) {
	u, err := NewUnpacker(data, totalBits)
	if err != nil {
		return nil, err
	}
	bits := make([]bool, 0, totalBits)
	for u.Remaining() != 0 {
		bit, err := u.ReadBit()
		if err != nil {
			return nil, err
		}
		bits = append(bits, bit)
	}
	return bits, nil
}
