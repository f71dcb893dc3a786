package rankcode

import (
	"encoding"
	"fmt"
)

// Container is the self-describing result of encoding.  Its binary form is
//
//     [Padding][Tree...][Data...]
//
// where Tree is a serialized Tree (a symbol count followed by the symbols in
// rank order) and Data is the packed bitstream.
//
type Container struct {
	// Padding is the number of zero filler bits at the end of Data, 0..7.
	Padding byte

	// Tree is the serialized code tree, including its leading count byte.
	Tree []byte

	// Data is the packed bitstream.
	Data []byte
}

// TotalBits returns the number of meaningful bits in Data.
func (c Container) TotalBits() uint64 {
	return uint64(len(c.Data))*8 - uint64(c.Padding)
}

// Len returns the size of the container's binary form.
func (c Container) Len() int {
	return 1 + len(c.Tree) + len(c.Data)
}

// AppendBinary appends the binary form of the container to dst.
func (c Container) AppendBinary(dst []byte) []byte {
	dst = append(dst, c.Padding)
	dst = append(dst, c.Tree...)
	return append(dst, c.Data...)
}

// MarshalBinary returns the binary form of the container.
func (c Container) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, c.Len())), nil
}

// UnmarshalBinary parses buf into c.  The Tree and Data fields alias buf.
func (c *Container) UnmarshalBinary(buf []byte) error {
	parsed, err := ParseContainer(buf)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseContainer splits buf into its padding, tree and data regions.  The
// Tree and Data fields of the result alias buf.
//
// Returns ErrMalformedContainer if the header is inconsistent with the length
// of buf.
//
func ParseContainer(buf []byte) (Container, error) {
	if len(buf) < 2 {
		return Container{}, fmt.Errorf("%w: %d bytes is too short for a header", ErrMalformedContainer, len(buf))
	}

	padding := buf[0]
	if padding > 7 {
		return Container{}, fmt.Errorf("%w: padding %d > 7", ErrMalformedContainer, padding)
	}

	count := decodeCount(buf[1])
	treeEnd := 2 + count
	if treeEnd > len(buf) {
		return Container{}, fmt.Errorf("%w: symbol count %d needs %d bytes, got %d", ErrMalformedContainer, count, treeEnd, len(buf))
	}

	c := Container{
		Padding: padding,
		Tree:    buf[1:treeEnd:treeEnd],
		Data:    buf[treeEnd:],
	}
	if len(c.Data) == 0 && padding != 0 {
		return Container{}, fmt.Errorf("%w: padding %d with no data", ErrMalformedContainer, padding)
	}
	return c, nil
}

var (
	_ encoding.BinaryMarshaler   = Container{}
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)
