// File: adjlist.go
// Role: the adjacency-list file format: a leading line with N,
// then one line per vertex giving its 1-based index followed by its
// 1-based neighbors, terminated by 0.

package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadAdjacencyList parses the adjacency-list format and returns the
// vertex count and the distinct undirected edges, 0-indexed. Each edge is
// reported once even though it appears in both endpoints' lines.
func ReadAdjacencyList(r io.Reader) (n int, edges [][2]int, err error) {
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

	for i := 1; i <= n; i++ {
		idx, ok := nextInt()
		if !ok {
			return 0, nil, fmt.Errorf("ioformat: reading vertex %d's index: %w", i, ErrMalformed)
		}
		if idx != i {
			return 0, nil, fmt.Errorf("ioformat: vertex line %d begins with %d: %w", i, idx, ErrMalformed)
		}
		for {
			w, ok := nextInt()
			if !ok {
				return 0, nil, fmt.Errorf("ioformat: vertex %d's neighbor list never terminated with 0: %w", i, ErrMalformed)
			}
			if w == 0 {
				break
			}
			if w < 1 || w > n {
				return 0, nil, fmt.Errorf("ioformat: vertex %d lists neighbor %d: %w", i, w, ErrVertexRange)
			}
			if w > i {
				edges = append(edges, [2]int{i - 1, w - 1})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("ioformat: %w", err)
	}
	return n, edges, nil
}

// WriteAdjacencyList writes n and edges (0-indexed) in the adjacency-list
// format, one line per vertex in ascending 1-based order.
func WriteAdjacencyList(w io.Writer, n int, edges [][2]int) error {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%d", i+1); err != nil {
			return err
		}
		for _, w := range adj[i] {
			if _, err := fmt.Fprintf(bw, " %d", w+1); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, " 0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
