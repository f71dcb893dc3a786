package rankcode

import (
	"fmt"
)

// Encoder implements an encoder for a chain code.  An Encoder is immutable and
// may be shared between goroutines.
type Encoder struct {
	tree  *Tree
	table Table
}

// NewEncoder derives the code table for a Tree and returns an Encoder for it.
func NewEncoder(t *Tree) *Encoder {
	return &Encoder{tree: t, table: DeriveTable(t)}
}

// Tree returns the code tree.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Table returns the code table.
func (e *Encoder) Table() *Table {
	return &e.table
}

// Encode returns the codeword for a Symbol.  The second result is false if the
// Symbol is not part of the code.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.table.Encode(symbol)
}

// Pack encodes every byte of src and packs the resulting bits.
//
// Returns ErrUnknownSymbol if src contains a byte that is not part of the
// code.
//
func (e *Encoder) Pack(src []byte) (data []byte, padding byte, err error) {
	p := NewPacker()
	for offset, b := range src {
		hc, ok := e.table.Encode(Symbol(b))
		if !ok {
			return nil, 0, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, offset)
		}
		if err := p.WriteCode(hc); err != nil {
			return nil, 0, err
		}
	}
	return p.Finish()
}

// EncodeContainer encodes src with this Encoder's code.
func (e *Encoder) EncodeContainer(src []byte) (Container, error) {
	data, padding, err := e.Pack(src)
	if err != nil {
		return Container{}, err
	}
	return Container{
		Padding: padding,
		Tree:    e.tree.AppendBinary(nil),
		Data:    data,
	}, nil
}

// EncodeContainer ranks the bytes of src, builds the matching chain code, and
// encodes src with it.
//
// Returns ErrEmptyInput if src is empty and ErrInsufficientSymbols if src holds
// fewer than MinSymbols distinct byte values.
//
func EncodeContainer(src []byte) (Container, error) {
	order, err := Rank(src)
	if err != nil {
		return Container{}, err
	}
	t, err := BuildTree(order)
	if err != nil {
		return Container{}, err
	}
	return NewEncoder(t).EncodeContainer(src)
}

// Encode is a convenience function that returns the binary form of
// EncodeContainer(src).
func Encode(src []byte) ([]byte, error) {
	c, err := EncodeContainer(src)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}
