package rankcode

import (
	"strings"
	"testing"
)

func TestDeriveTable(t *testing.T) {
	table := DeriveTable(makeTestTree())

	expectDump := strings.Join([]string{
		"Table{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(97) = \"0\"\n",
		"\tEncode(98) = \"10\"\n",
		"\tEncode(99) = \"1110\"\n",
		"\tEncode(100) = \"1111\"\n",
		"\tEncode(114) = \"110\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, ok := table.Encode('z'); ok {
		t.Errorf("expected no codeword for 'z'")
	}
}

func TestDeriveTable_TwoSymbols(t *testing.T) {
	tree, err := BuildTree([]Symbol{'a', 'b'})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := DeriveTable(tree)

	a, _ := table.Encode('a')
	b, _ := table.Encode('b')
	if a.String() != "\"0\"" || b.String() != "\"1\"" {
		t.Errorf("wrong codewords: a=%s b=%s", a, b)
	}
}

func TestDeriveTable_SizesByRank(t *testing.T) {
	const n = 12
	order := make([]Symbol, n)
	for index := range order {
		order[index] = Symbol('A' + index)
	}
	tree, err := BuildTree(order)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	table := DeriveTable(tree)

	for rank := 1; rank <= n; rank++ {
		expect := uint16(rank)
		if rank == n {
			expect = n - 1
		}
		hc, ok := table.Encode(order[rank-1])
		if !ok {
			t.Fatalf("rank %d: no codeword", rank)
		}
		if hc.Size != expect {
			t.Errorf("rank %d: expected size %d, got %d", rank, expect, hc.Size)
		}
	}

	last, _ := table.Encode(order[n-1])
	prev, _ := table.Encode(order[n-2])
	for i := uint16(0); i < last.Size-1; i++ {
		if last.Bit(i) != prev.Bit(i) {
			t.Errorf("last two codewords differ at bit %d", i)
		}
	}
	if last.Bit(last.Size-1) == prev.Bit(prev.Size-1) {
		t.Errorf("last two codewords share their final bit")
	}
}

func TestTable_EncodedBits(t *testing.T) {
	table := DeriveTable(makeTestTree())

	freqs := CountFrequencies([]byte("abracadabra"))
	nbits, err := table.EncodedBits(&freqs)
	if err != nil {
		t.Fatalf("EncodedBits failed: %v", err)
	}
	if nbits != 23 {
		t.Errorf("expected 23 bits, got %d", nbits)
	}

	freqs = CountFrequencies([]byte("abz"))
	if _, err := table.EncodedBits(&freqs); err == nil {
		t.Errorf("expected error for unknown symbol")
	}
}
