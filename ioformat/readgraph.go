// File: readgraph.go
// Role: format auto-detection for graph input. Both accepted formats lead
// with N; what follows tells them apart, so callers that take a file of
// either kind (the CLI's -s mode) go through ReadGraph instead of picking
// a parser themselves.

package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadGraph reads a graph in either accepted format, sniffing which one
// the input is: an adjacency matrix is exactly N data lines of N tokens
// each, all of them 0 or 1, after the leading N line; anything else
// parses as an adjacency list. The two grammars never collide — a list
// line leads with its own 1-based vertex index, which for any vertex
// beyond the first is a token no matrix row may contain.
func ReadGraph(r io.Reader) (n int, edges [][2]int, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, fmt.Errorf("ioformat: %w", err)
	}
	content := string(raw)
	if looksLikeMatrix(content) {
		return ReadAdjacencyMatrix(strings.NewReader(content))
	}
	return ReadAdjacencyList(strings.NewReader(content))
}

// looksLikeMatrix applies the sniff rule: after the line carrying N,
// exactly N non-empty lines follow, each holding exactly N tokens, every
// one of them "0" or "1".
func looksLikeMatrix(content string) bool {
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var lines [][]string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			lines = append(lines, fields)
		}
	}
	if len(lines) == 0 || len(lines[0]) != 1 {
		return false
	}
	var n int
	if _, err := fmt.Sscanf(lines[0][0], "%d", &n); err != nil || n < 0 {
		return false
	}
	if len(lines) != n+1 {
		return false
	}
	for _, row := range lines[1:] {
		if len(row) != n {
			return false
		}
		for _, tok := range row {
			if tok != "0" && tok != "1" {
				return false
			}
		}
	}
	return true
}
