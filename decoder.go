package rankcode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decoder implements a decoder for a chain code.  A Decoder is immutable and
// may be shared between goroutines.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder for a Tree.
func NewDecoder(t *Tree) *Decoder {
	return &Decoder{tree: t}
}

// Tree returns the code tree.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Next reads one codeword from u and returns its Symbol.
//
// Each walk starts at the root.  A 0 bit selects the left leaf of the current
// level; a 1 bit selects the right leaf at the last level and otherwise moves
// down to the next level.
//
// Returns io.EOF if u is exhausted before the first bit, and
// ErrTruncatedBitstream if it is exhausted in the middle of a codeword.
//
func (d *Decoder) Next(u *Unpacker) (Symbol, error) {
	index := rootIndex
	for depth := 0; ; depth++ {
		bit, err := u.ReadBit()
		if err == io.EOF {
			if depth == 0 {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("%w: bitstream ends %d bits into a codeword", ErrTruncatedBitstream, depth)
		}
		if err != nil {
			return 0, err
		}

		left, right := d.tree.level(index)
		if !bit {
			return left.symbol, nil
		}
		if right.leaf {
			return right.symbol, nil
		}
		index = d.tree.nodes[index].right
	}
}

// DecodeTo decodes every remaining codeword of u and writes the Symbols to w.
// It returns the number of Symbols written.
func (d *Decoder) DecodeTo(w io.ByteWriter, u *Unpacker) (int64, error) {
	var n int64
	for {
		symbol, err := d.Next(u)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := w.WriteByte(byte(symbol)); err != nil {
			return n, err
		}
		n++
	}
}

// DecodeContainer rebuilds the code tree stored in c and decodes its data.
//
// Returns ErrMalformedTree if c.Tree is not exactly one serialized tree, and
// ErrTruncatedBitstream if the data ends in the middle of a codeword.
//
func DecodeContainer(c Container) ([]byte, error) {
	t, n, err := ParseTree(c.Tree)
	if err != nil {
		return nil, err
	}
	if n != len(c.Tree) {
		return nil, fmt.Errorf("%w: tree region is %d bytes, tree uses %d", ErrMalformedTree, len(c.Tree), n)
	}
	if c.Padding > 7 {
		return nil, fmt.Errorf("%w: padding %d > 7", ErrMalformedContainer, c.Padding)
	}
	if len(c.Data) == 0 && c.Padding != 0 {
		return nil, fmt.Errorf("%w: padding %d with no data", ErrMalformedContainer, c.Padding)
	}

	u, err := NewUnpacker(c.Data, c.TotalBits())
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if _, err := NewDecoder(t).DecodeTo(&out, u); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode is a convenience function that parses a container and decodes it.
func Decode(buf []byte) ([]byte, error) {
	c, err := ParseContainer(buf)
	if err != nil {
		return nil, err
	}
	return DecodeContainer(c)
}
