package rankcode

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there are no symbols to rank.
	ErrEmptyInput = errors.New("empty input")

	// ErrInsufficientSymbols is returned when fewer than MinSymbols distinct
	// symbols are available to build a code tree.
	ErrInsufficientSymbols = errors.New("insufficient distinct symbols")

	// ErrMalformedTree is returned when a serialized code tree is
	// inconsistent with its declared length or contents.
	ErrMalformedTree = errors.New("malformed code tree")

	// ErrMalformedContainer is returned when a container's header is
	// inconsistent with the size of the container.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrTruncatedBitstream is returned when the packed data ends in the
	// middle of a codeword.
	ErrTruncatedBitstream = errors.New("truncated bitstream")

	// ErrUnknownSymbol is returned when asked to encode a symbol that has no
	// codeword.
	ErrUnknownSymbol = errors.New("unknown symbol")
)
