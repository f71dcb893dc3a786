package rankcode

import (
	"sort"
)

// Frequencies holds the number of occurrences of each Symbol.
type Frequencies [NumSymbols]uint64

// CountFrequencies counts the occurrences of each byte in src.
func CountFrequencies(src []byte) Frequencies {
	var freqs Frequencies
	for _, b := range src {
		freqs[b]++
	}
	return freqs
}

// Distinct returns the number of Symbols with a non-zero frequency.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Rank returns the distinct Symbols in descending order of frequency.  Symbols
// with equal frequency are ordered by ascending value, so that the result
// depends only on the counts.
//
// Returns ErrEmptyInput if every frequency is zero.
//
func (freqs *Frequencies) Rank() ([]Symbol, error) {
	list := make(byRank, 0, NumSymbols)
	for symbol, freq := range freqs {
		if freq != 0 {
			list = append(list, symbolAndFreq{Symbol(symbol), freq})
		}
	}
	if len(list) == 0 {
		return nil, ErrEmptyInput
	}
	list.Sort()

	order := make([]Symbol, len(list))
	for index, item := range list {
		order[index] = item.symbol
	}
	return order, nil
}

// Rank is a convenience function that counts the bytes of src and ranks them.
func Rank(src []byte) ([]Symbol, error) {
	freqs := CountFrequencies(src)
	return freqs.Rank()
}

// type symbolAndFreq + type byRank {{{

type symbolAndFreq struct {
	symbol Symbol
	freq   uint64
}

type byRank []symbolAndFreq

func (list byRank) Len() int {
	return len(list)
}

func (list byRank) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byRank) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.freq != b.freq {
		return a.freq > b.freq
	}
	return a.symbol < b.symbol
}

func (list byRank) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byRank(nil)

// }}}
