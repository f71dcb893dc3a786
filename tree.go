package rankcode

import (
	"bytes"
	"encoding"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a chain-shaped prefix code tree.  Every level of the chain has a
// leaf on its left and, on its right, either the next level or (at the last
// level) a second leaf.
//
// The nodes of the tree live in a single slice and refer to each other by
// index.  The root is always at index 0.  A Tree is immutable once built and
// may be shared between goroutines.
//
type Tree struct {
	nodes []node
	order []Symbol
}

const rootIndex = 0

type node struct {
	leaf   bool
	symbol Symbol
	left   int
	right  int
}

// BuildTree constructs the chain tree for the given rank order.  The first
// Symbol becomes the left leaf of the root, the second Symbol the left leaf of
// the next level, and so on; the last two Symbols share the final level.
//
// Returns ErrInsufficientSymbols if order holds fewer than MinSymbols Symbols,
// and ErrMalformedTree if any Symbol appears more than once.
//
func BuildTree(order []Symbol) (*Tree, error) {
	n := len(order)
	if n < MinSymbols {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientSymbols, n, MinSymbols)
	}

	var seen [NumSymbols]bool
	for _, symbol := range order {
		if seen[symbol] {
			return nil, fmt.Errorf("%w: duplicate symbol %d", ErrMalformedTree, symbol)
		}
		seen[symbol] = true
	}

	t := &Tree{
		nodes: make([]node, 1, 2*n-1),
		order: make([]Symbol, n),
	}
	copy(t.order, order)

	current := rootIndex
	for index := 0; index < n-1; index++ {
		left := t.addLeaf(order[index])
		var right int
		if index == n-2 {
			right = t.addLeaf(order[n-1])
		} else {
			right = t.addBranch()
		}
		t.nodes[current].left = left
		t.nodes[current].right = right
		current = right
	}
	return t, nil
}

func (t *Tree) addLeaf(symbol Symbol) int {
	t.nodes = append(t.nodes, node{leaf: true, symbol: symbol})
	return len(t.nodes) - 1
}

func (t *Tree) addBranch() int {
	t.nodes = append(t.nodes, node{})
	return len(t.nodes) - 1
}

// Len returns the number of Symbols in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Symbols returns the Symbols of the tree in rank order.
func (t *Tree) Symbols() []Symbol {
	out := make([]Symbol, len(t.order))
	copy(out, t.order)
	return out
}

// level returns the left and right children of the branch at index.
func (t *Tree) level(index int) (left node, right node) {
	branch := t.nodes[index]
	assert.Assertf(!branch.leaf, "node %d is a leaf, expected a branch", index)
	left, right = t.nodes[branch.left], t.nodes[branch.right]
	assert.Assertf(left.leaf, "left child of node %d is not a leaf", index)
	return left, right
}

// AppendBinary appends the serialized form of the tree to dst:
//
//     [symbolCount][symbols in rank order]
//
// A symbolCount of 0 stands for NumSymbols.
//
func (t *Tree) AppendBinary(dst []byte) []byte {
	dst = append(dst, encodeCount(len(t.order)))
	for _, symbol := range t.order {
		dst = append(dst, byte(symbol))
	}
	return dst
}

// MarshalBinary returns the serialized form of the tree.
func (t *Tree) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, 1+len(t.order))), nil
}

// UnmarshalBinary replaces the tree with the one serialized in buf.  Unlike
// ParseTree, it rejects trailing bytes.
func (t *Tree) UnmarshalBinary(buf []byte) error {
	parsed, n, err := ParseTree(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedTree, len(buf)-n)
	}
	*t = *parsed
	return nil
}

// ParseTree reads a serialized tree from the start of buf and rebuilds it.  It
// returns the tree and the number of bytes consumed.
//
// Returns ErrMalformedTree if the declared symbol count exceeds the bytes
// available, and ErrInsufficientSymbols if it is less than MinSymbols.
//
func ParseTree(buf []byte) (*Tree, int, error) {
	if len(buf) < 1 {
		return nil, 0, fmt.Errorf("%w: missing symbol count", ErrMalformedTree)
	}
	count := decodeCount(buf[0])
	if 1+count > len(buf) {
		return nil, 0, fmt.Errorf("%w: symbol count %d exceeds %d available bytes", ErrMalformedTree, count, len(buf)-1)
	}

	order := make([]Symbol, count)
	for index := range order {
		order[index] = Symbol(buf[1+index])
	}
	t, err := BuildTree(order)
	if err != nil {
		return nil, 0, err
	}
	return t, 1 + count, nil
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(t.order))
	index := rootIndex
	for depth := 0; ; depth++ {
		left, right := t.level(index)
		if right.leaf {
			fmt.Fprintf(&buf, "\tLevel(%d) = {%d, %d}\n", depth, left.symbol, right.symbol)
			break
		}
		fmt.Fprintf(&buf, "\tLevel(%d) = {%d, *}\n", depth, left.symbol)
		index = t.nodes[index].right
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)
