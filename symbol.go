package rankcode

// Symbol represents one byte of the input alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MinSymbols is the smallest number of distinct symbols that a chain code can
// represent.
const MinSymbols = 2
