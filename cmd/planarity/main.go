// Command planarity is the CLI entry point: algorithm-mode flags
// -p/-o/-d/-2/-3/-4, the -r/-s/-m/-n generator and file-processing flags,
// and the 0 (success) / -2 (failure) exit-code convention.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lowpoint/planarity/core"
	"github.com/lowpoint/planarity/dfsprep"
	"github.com/lowpoint/planarity/drawing"
	"github.com/lowpoint/planarity/embed"
	"github.com/lowpoint/planarity/genrandom"
	"github.com/lowpoint/planarity/homeomorph"
	"github.com/lowpoint/planarity/ioformat"
	"github.com/lowpoint/planarity/verify"
)

const usage = `usage:
  planarity -r C K N            apply algorithm C to K random graphs of N vertices
  planarity -s C I O [O2]       apply algorithm C to the graph read from file I
  planarity -m N O [O2]         generate a maximal planar random graph on N vertices
  planarity -n N O [O2]         generate a maximal-planar-plus-one (nonplanar) random graph

algorithm C is one of:
  -p  planar embedding and Kuratowski subgraph isolation
  -o  outerplanar embedding and obstruction isolation
  -d  planar graph drawing
  -2  K2,3 subgraph homeomorphism search
  -3  K3,3 subgraph homeomorphism search
  -4  K4 subgraph homeomorphism search`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return -2
	}
	var err error
	switch args[0] {
	case "-r":
		err = runRandomBatch(args[1:])
	case "-s":
		err = runSingleFile(args[1:])
	case "-m":
		err = runGenerate(args[1:], false)
	case "-n":
		err = runGenerate(args[1:], true)
	case "-h", "-help":
		fmt.Println(usage)
		return 0
	default:
		fmt.Fprintln(os.Stderr, usage)
		return -2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -2
	}
	return 0
}

// runAlgorithm applies algorithm c to g in place, returning a human-readable
// result line and, for a successful -d run, the drawing layout; the layout
// is nil in every other case. A NonEmbeddable result leaves the
// obstruction in g itself.
func runAlgorithm(c string, g *core.Graph) (result string, layout *drawing.Layout, err error) {
	switch c {
	case "-p", "-o", "-d":
		if err := dfsprep.Run(g); err != nil {
			return "", nil, fmt.Errorf("preprocessing failed: %w", err)
		}
	}

	switch c {
	case "-p", "-d":
		code, err := embed.Embed(g)
		if err != nil {
			return "", nil, err
		}
		if code == embed.NonEmbeddable {
			minor, err := verify.Obstruction(g)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("NONEMBEDDABLE: %s", minor), nil, nil
		}
		if c == "-p" {
			return "OK", nil, nil
		}
		layout, err = drawing.Compute(g)
		if err != nil {
			return "", nil, err
		}
		return "OK", layout, nil

	case "-o":
		code, err := embed.Embed(g, embed.WithMode(core.ModeOuterplanar))
		if err != nil {
			return "", nil, err
		}
		if code == embed.NonEmbeddable {
			minor, err := verify.Obstruction(g)
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("NONEMBEDDABLE: %s", minor), nil, nil
		}
		return "OK", nil, nil

	case "-2", "-3", "-4":
		target := map[string]homeomorph.Target{"-2": homeomorph.TargetK23, "-3": homeomorph.TargetK33, "-4": homeomorph.TargetK4}[c]
		found, err := homeomorph.Search(g, target)
		if err != nil {
			return "", nil, err
		}
		if found {
			return "NONEMBEDDABLE: homeomorph found", nil, nil
		}
		return "OK: no homeomorph found", nil, nil

	default:
		return "", nil, fmt.Errorf("unsupported algorithm %q", c)
	}
}

func isAlgorithmFlag(s string) bool {
	switch s {
	case "-p", "-o", "-d", "-2", "-3", "-4":
		return true
	}
	return false
}

func runRandomBatch(args []string) error {
	if len(args) < 3 || !isAlgorithmFlag(args[0]) {
		return fmt.Errorf("usage: -r C K N")
	}
	c := args[0]
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad K: %w", err)
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad N: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bound := n * (n - 1) / 2
	m := 2 * n
	if m > bound {
		m = bound
	}

	var okCount, nonEmbeddableCount int
	for i := 0; i < k; i++ {
		edges, err := genrandom.Random(n, m, genrandom.WithRand(rng))
		if err != nil {
			return err
		}
		g, err := buildGraph(n, edges)
		if err != nil {
			return err
		}
		result, _, err := runAlgorithm(c, g)
		if err != nil {
			return err
		}
		if strings.HasPrefix(result, "OK") {
			okCount++
		} else {
			nonEmbeddableCount++
		}
	}
	fmt.Printf("%d graphs: %d OK, %d NONEMBEDDABLE\n", k, okCount, nonEmbeddableCount)
	return nil
}

func runSingleFile(args []string) error {
	if len(args) < 3 || !isAlgorithmFlag(args[0]) {
		return fmt.Errorf("usage: -s C I O [O2]")
	}
	c, in, out := args[0], args[1], args[2]
	var out2 string
	if len(args) >= 4 {
		out2 = args[3]
	}

	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to read graph %s: %w", in, err)
	}
	// Input may be in either accepted format; ReadGraph sniffs which.
	n, edges, err := ioformat.ReadGraph(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to read graph %s: %w", in, err)
	}

	g, err := buildGraph(n, edges)
	if err != nil {
		return err
	}
	result, layout, err := runAlgorithm(c, g)
	if err != nil {
		return err
	}
	fmt.Println(result)

	// Restore original vertex order before writing: callers read results
	// back by their own input numbering, not the DFS preorder the
	// embedder computed in.
	// Skipped for -d: the drawing layout's vertex indices are tied to the
	// DFS order it was computed over, so O and O2 must stay in that order
	// together rather than have O alone sorted back.
	if layout == nil {
		if err := g.SortBack(); err != nil {
			return err
		}
	}

	if err := writeAdjacencyListTo(out, g); err != nil {
		return err
	}
	if out2 == "" {
		return nil
	}
	if layout != nil {
		// -d: O2 receives the drawing of the planar graph.
		of, err := os.Create(out2)
		if err != nil {
			return err
		}
		defer of.Close()
		return ioformat.WriteDrawPlanar(of, g, layout)
	}
	// -p/-o/-2/-3/-4: on NonEmbeddable, g has already been reduced in place
	// to the obstruction/homeomorph, so O2 gets the same reduced graph O
	// does; on OK there is no secondary result, so O2 is just a copy of O.
	return writeAdjacencyListTo(out2, g)
}

func runGenerate(args []string, plusOne bool) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: -m|-n N O [O2]")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad N: %w", err)
	}
	out := args[1]
	var out2 string
	if len(args) >= 3 {
		out2 = args[2]
	}

	var edges [][2]int
	if plusOne {
		edges, err = genrandom.MaximalPlanarPlusOne(n)
	} else {
		edges, err = genrandom.MaximalPlanar(n)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := ioformat.WriteAdjacencyList(f, n, edges); err != nil {
		return err
	}

	if out2 != "" {
		f2, err := os.Create(out2)
		if err != nil {
			return err
		}
		defer f2.Close()
		if err := ioformat.WriteAdjacencyList(f2, n, edges); err != nil {
			return err
		}
	}
	return nil
}

func buildGraph(n int, edges [][2]int) (*core.Graph, error) {
	g := core.NewGraph()
	if err := g.Init(n); err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], false, false); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func writeAdjacencyListTo(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	n := g.N()
	var edges [][2]int
	for v := 0; v < n; v++ {
		g.ForEachArc(v, func(e int) {
			w := g.Neighbor(e)
			if w > v {
				edges = append(edges, [2]int{v, w})
			}
		})
	}
	return ioformat.WriteAdjacencyList(f, n, edges)
}
