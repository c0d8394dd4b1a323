package textio

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolReaderSkipsHeadersAndNonAlphabetic(t *testing.T) {
	r := NewSymbolReader(bufio.NewReader(strings.NewReader(">seq1 description\nACGT\n>seq2\nNNAA\n")))

	var got []byte
	for {
		b, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, b)
	}
	require.Equal(t, "ACGTNNAA", string(got))
}

func TestSymbolReaderEmptyInput(t *testing.T) {
	r := NewSymbolReader(bufio.NewReader(strings.NewReader("")))
	_, ok := r.Next()
	require.False(t, ok)
}

func TestSymbolReaderNoHeaderLine(t *testing.T) {
	r := NewSymbolReader(bufio.NewReader(strings.NewReader("acgt\n")))
	var got []byte
	for {
		b, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, b)
	}
	require.Equal(t, "acgt", string(got))
}
