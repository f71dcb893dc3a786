// Package report summarizes the result of an encode: the sizes of each part of
// the container, and how the chain code compares with an optimal Huffman code
// and with zstd on the same input.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/huffman"
	"github.com/klauspost/compress/zstd"

	"github.com/chronos-tachyon/rankcode"
)

// Report holds the sizes for one encoded input.  Byte counts are in bytes and
// bit counts in bits.
type Report struct {
	Original    int     `json:"original"`
	Encoded     int     `json:"encoded"`
	Tree        int     `json:"tree"`
	Data        int     `json:"data"`
	Padding     int     `json:"padding"`
	Symbols     int     `json:"symbols"`
	Ratio       float64 `json:"ratio"`
	ChainBits   uint64  `json:"chainBits"`
	OptimalBits uint64  `json:"optimalBits"`
	Zstd        int     `json:"zstd"`
}

// Build computes the Report for src and the Container it was encoded into.
func Build(src []byte, c rankcode.Container, level zstd.EncoderLevel) (Report, error) {
	t, _, err := rankcode.ParseTree(c.Tree)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Original:  len(src),
		Encoded:   c.Len(),
		Tree:      len(c.Tree),
		Data:      len(c.Data),
		Padding:   int(c.Padding),
		Symbols:   t.Len(),
		ChainBits: c.TotalBits(),
	}
	if r.Original != 0 {
		r.Ratio = float64(r.Encoded) / float64(r.Original)
	}

	freqs := rankcode.CountFrequencies(src)
	r.OptimalBits = optimalBits(&freqs)

	r.Zstd, err = zstdSize(src, level)
	if err != nil {
		return Report{}, err
	}
	return r, nil
}

// optimalBits returns the length of the bitstream a weight-merged Huffman code
// would produce for the same frequencies.
func optimalBits(freqs *rankcode.Frequencies) uint64 {
	leaves := make([]*huffman.Node, 0, rankcode.NumSymbols)
	for symbol, freq := range freqs {
		if freq != 0 {
			leaves = append(leaves, &huffman.Node{Value: huffman.ValueType(symbol), Count: int(freq)})
		}
	}
	if len(leaves) < rankcode.MinSymbols {
		return 0
	}

	huffman.Build(leaves)

	var total uint64
	for _, leaf := range leaves {
		_, size := leaf.Code()
		total += uint64(size) * freqs[leaf.Value]
	}
	return total
}

func zstdSize(src []byte, level zstd.EncoderLevel) (int, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return 0, fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	return len(enc.EncodeAll(src, nil)), nil
}

// WriteTo writes a human-readable summary of the Report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "original size:  %d bytes\n", r.Original)
	fmt.Fprintf(&buf, "encoded size:   %d bytes (%.2f%%)\n", r.Encoded, 100*r.Ratio)
	fmt.Fprintf(&buf, "tree size:      %d bytes (%d symbols)\n", r.Tree, r.Symbols)
	fmt.Fprintf(&buf, "data size:      %d bytes\n", r.Data)
	fmt.Fprintf(&buf, "padding:        %d bits\n", r.Padding)
	fmt.Fprintf(&buf, "chain code:     %d bits\n", r.ChainBits)
	fmt.Fprintf(&buf, "optimal code:   %d bits\n", r.OptimalBits)
	fmt.Fprintf(&buf, "zstd baseline:  %d bytes\n", r.Zstd)
	return buf.WriteTo(w)
}
