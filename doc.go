// Package rankcode implements a lossless byte compressor built on a
// frequency-ranked chain prefix code.
//
// The code is not a weight-optimal Huffman code.  Symbols are ranked by how
// often they occur, and the k-th ranked symbol is assigned the codeword made
// of k-1 one bits followed by a zero bit.  The two lowest ranked symbols share
// the final level of the chain and receive codewords of equal length that
// differ only in their last bit:
//
//     rank 1      "0"
//     rank 2      "10"
//     rank 3      "110"
//     ...
//     rank n-1    "11...10"
//     rank n      "11...11"
//
// Encoded output is a self-describing container:
//
//     [padding:1][symbolCount:1][symbols:symbolCount][packedData...]
//
// The symbol list is the rank order, which is all a reader needs to rebuild
// the code.  A symbolCount byte of 0 stands for 256 symbols.
//
package rankcode
