package rankcode

import (
	"bytes"
	"fmt"
	"io"
)

// Table maps each Symbol of a Tree to its codeword.
type Table struct {
	codes   [NumSymbols]Code
	minSize uint16
	maxSize uint16
}

// DeriveTable walks the chain once and assigns a codeword to every Symbol in
// the tree.  At each level the left leaf receives the current prefix plus a 0
// bit; the prefix then gains a 1 bit, and either belongs to the terminal right
// leaf or becomes the starting prefix of the next level.
//
func DeriveTable(t *Tree) Table {
	var table Table
	var prefix Code
	index := rootIndex
	for {
		left, right := t.level(index)
		table.set(left.symbol, prefix.Append(false))
		prefix = prefix.Append(true)
		if right.leaf {
			table.set(right.symbol, prefix)
			break
		}
		index = t.nodes[index].right
	}
	return table
}

func (table *Table) set(symbol Symbol, hc Code) {
	table.codes[symbol] = hc
	if table.minSize == 0 || table.minSize > hc.Size {
		table.minSize = hc.Size
	}
	if table.maxSize < hc.Size {
		table.maxSize = hc.Size
	}
}

// Encode returns the codeword for a Symbol.  The second result is false if the
// Symbol has no codeword.
func (table *Table) Encode(symbol Symbol) (Code, bool) {
	hc := table.codes[symbol]
	return hc, hc.Size != 0
}

// MinSize is the bit length of the shortest codeword.
func (table *Table) MinSize() uint16 {
	return table.minSize
}

// MaxSize is the bit length of the longest codeword.
func (table *Table) MaxSize() uint16 {
	return table.maxSize
}

// SizeBySymbol returns the bit length of each Symbol's codeword, or 0 for
// Symbols without one.
func (table *Table) SizeBySymbol() []uint16 {
	out := make([]uint16, NumSymbols)
	for symbol := range table.codes {
		out[symbol] = table.codes[symbol].Size
	}
	return out
}

// EncodedBits returns the number of bits needed to encode data with the given
// frequencies, or ErrUnknownSymbol if some counted Symbol has no codeword.
func (table *Table) EncodedBits(freqs *Frequencies) (uint64, error) {
	var total uint64
	for symbol, freq := range freqs {
		if freq == 0 {
			continue
		}
		hc := table.codes[symbol]
		if hc.Size == 0 {
			return 0, fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
		}
		total += freq * uint64(hc.Size)
	}
	return total, nil
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.  Symbols without a codeword are omitted.
func (table *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.maxSize)
	for symbol := range table.codes {
		hc := table.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
