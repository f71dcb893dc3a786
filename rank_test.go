package rankcode

import (
	"errors"
	"testing"
)

func TestRank(t *testing.T) {
	type testRow struct {
		name  string
		input string
		order string
	}

	testData := [...]testRow{
		{name: "abracadabra", input: "abracadabra", order: "abrcd"},
		{name: "two-symbols", input: "ab", order: "ab"},
		{name: "reverse-tie", input: "ba", order: "ab"},
		{name: "skewed", input: "aaaaaaaaaaaaaaaaaaaab", order: "ab"},
		{name: "skewed-late", input: "abbbbbbbb", order: "ba"},
		{name: "uniform", input: "jihgfedcbajihgfedcba", order: "abcdefghij"},
		{name: "single", input: "aaaa", order: "a"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			order, err := Rank([]byte(row.input))
			if err != nil {
				t.Fatalf("Rank failed: %v", err)
			}
			actual := make([]byte, len(order))
			for index, symbol := range order {
				actual[index] = byte(symbol)
			}
			if string(actual) != row.order {
				t.Errorf("wrong order:\n\texpect: %q\n\tactual: %q", row.order, actual)
			}
		})
	}
}

func TestRank_Empty(t *testing.T) {
	_, err := Rank(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestFrequencies_Distinct(t *testing.T) {
	freqs := CountFrequencies([]byte("abracadabra"))
	if n := freqs.Distinct(); n != 5 {
		t.Errorf("expected 5 distinct symbols, got %d", n)
	}
	if freqs['a'] != 5 || freqs['b'] != 2 || freqs['r'] != 2 || freqs['c'] != 1 || freqs['d'] != 1 {
		t.Errorf("wrong counts: a=%d b=%d r=%d c=%d d=%d", freqs['a'], freqs['b'], freqs['r'], freqs['c'], freqs['d'])
	}
}
