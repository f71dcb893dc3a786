package rankcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func makeTestTree() *Tree {
	t, err := BuildTree([]Symbol{'a', 'b', 'r', 'c', 'd'})
	if err != nil {
		panic(err)
	}
	return t
}

func TestTree_Dump(t *testing.T) {
	tree := makeTestTree()

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tLen() = 5\n",
		"\tLevel(0) = {97, *}\n",
		"\tLevel(1) = {98, *}\n",
		"\tLevel(2) = {114, *}\n",
		"\tLevel(3) = {99, 100}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestTree_Shape(t *testing.T) {
	tree := makeTestTree()

	if expect, actual := 9, len(tree.nodes); expect != actual {
		t.Fatalf("expected %d nodes, got %d", expect, actual)
	}
	for index, n := range tree.nodes {
		if n.leaf {
			continue
		}
		if !tree.nodes[n.left].leaf {
			t.Errorf("node %d: left child %d is not a leaf", index, n.left)
		}
	}
}

func TestTree_MarshalBinary(t *testing.T) {
	tree := makeTestTree()

	raw, err := tree.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	expectRaw := []byte{5, 'a', 'b', 'r', 'c', 'd'}
	if !bytes.Equal(expectRaw, raw) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectRaw, raw)
	}

	var parsed Tree
	if err := parsed.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if len(parsed.nodes) != len(tree.nodes) {
		t.Fatalf("expected %d nodes, got %d", len(tree.nodes), len(parsed.nodes))
	}
	for index := range tree.nodes {
		if tree.nodes[index] != parsed.nodes[index] {
			t.Errorf("node %d:\n\texpect: %+v\n\tactual: %+v", index, tree.nodes[index], parsed.nodes[index])
		}
	}
}

func TestTree_FullAlphabet(t *testing.T) {
	order := make([]Symbol, NumSymbols)
	for index := range order {
		order[index] = Symbol(NumSymbols - 1 - index)
	}
	tree, err := BuildTree(order)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	raw, _ := tree.MarshalBinary()
	if raw[0] != 0 {
		t.Errorf("expected count byte 0 for %d symbols, got %d", NumSymbols, raw[0])
	}
	parsed, n, err := ParseTree(raw)
	if err != nil {
		t.Fatalf("ParseTree failed: %v", err)
	}
	if n != 1+NumSymbols {
		t.Errorf("expected %d bytes consumed, got %d", 1+NumSymbols, n)
	}
	if parsed.Len() != NumSymbols {
		t.Errorf("expected %d symbols, got %d", NumSymbols, parsed.Len())
	}
}

func TestBuildTree_Errors(t *testing.T) {
	type testRow struct {
		name  string
		order []Symbol
		err   error
	}

	testData := [...]testRow{
		{name: "empty", order: nil, err: ErrInsufficientSymbols},
		{name: "single", order: []Symbol{'a'}, err: ErrInsufficientSymbols},
		{name: "duplicate", order: []Symbol{'a', 'b', 'a'}, err: ErrMalformedTree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := BuildTree(row.order)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}
}

func TestParseTree_Errors(t *testing.T) {
	type testRow struct {
		name string
		raw  []byte
		err  error
	}

	testData := [...]testRow{
		{name: "empty", raw: nil, err: ErrMalformedTree},
		{name: "short", raw: []byte{3, 'a', 'b'}, err: ErrMalformedTree},
		{name: "full-alphabet-short", raw: []byte{0, 'a', 'b'}, err: ErrMalformedTree},
		{name: "single", raw: []byte{1, 'a'}, err: ErrInsufficientSymbols},
		{name: "duplicate", raw: []byte{2, 'a', 'a'}, err: ErrMalformedTree},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ParseTree(row.raw)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}

	var tree Tree
	if err := tree.UnmarshalBinary([]byte{2, 'a', 'b', 'c'}); !errors.Is(err, ErrMalformedTree) {
		t.Errorf("expected ErrMalformedTree for trailing bytes, got %v", err)
	}
}
