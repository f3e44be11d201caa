// File: matrix.go
// Role: the adjacency-matrix input format (N, then N rows of N 0/1
// entries), backed by a flat row-major byte slice since every entry is a
// boolean adjacency bit.

package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadAdjacencyMatrix parses the adjacency-matrix format and returns the
// vertex count and the distinct undirected edges (0-indexed), reported
// once per symmetric pair.
func ReadAdjacencyMatrix(r io.Reader) (n int, edges [][2]int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, e := strconv.Atoi(sc.Text())
		if e != nil {
			return 0, false
		}
		return v, true
	}

	n, ok := nextInt()
	if !ok || n < 0 {
		return 0, nil, fmt.Errorf("ioformat: reading N: %w", ErrMalformed)
	}

	// row-major, matching matrix.Dense's flat backing (adapted to uint8).
	entries := make([]uint8, n*n)
	for i := 0; i < n*n; i++ {
		v, ok := nextInt()
		if !ok || (v != 0 && v != 1) {
			return 0, nil, fmt.Errorf("ioformat: matrix entry %d: %w", i, ErrMalformed)
		}
		entries[i] = uint8(v)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if entries[i*n+j] != entries[j*n+i] {
				return 0, nil, fmt.Errorf("ioformat: matrix not symmetric at (%d,%d): %w", i, j, ErrMalformed)
			}
			if entries[i*n+j] == 1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("ioformat: %w", err)
	}
	return n, edges, nil
}

// WriteAdjacencyMatrix writes n and edges (0-indexed) as an N x N 0/1
// matrix, the mirror of ReadAdjacencyMatrix for round-trip testing.
func WriteAdjacencyMatrix(w io.Writer, n int, edges [][2]int) error {
	entries := make([]uint8, n*n)
	for _, e := range edges {
		entries[e[0]*n+e[1]] = 1
		entries[e[1]*n+e[0]] = 1
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sep := " "
			if j == n-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%d%s", entries[i*n+j], sep); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
