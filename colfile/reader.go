package colfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/quotient"
)

// Sentinel errors of the .col reader.
var (
	// ErrNoProblemLine indicates the stream ended without a "p edge" line.
	ErrNoProblemLine = errors.New("colfile: missing problem line")

	// ErrBadProblemLine indicates a malformed or repeated "p" line.
	ErrBadProblemLine = errors.New("colfile: malformed problem line")

	// ErrBadEdgeLine indicates a malformed "e" line or an edge that
	// appears before the problem line.
	ErrBadEdgeLine = errors.New("colfile: malformed edge line")
)

// ReadGraph parses a DIMACS .col stream and returns the instance graph
// together with the edge count declared on the problem line. The
// actual edge count may be lower when the input repeats edges or names
// out-of-range vertices.
func ReadGraph(r io.Reader) (quotient.Graph, int, error) {
	var (
		g        quotient.Graph
		declared int
		seenP    bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "c":
			continue
		case "p":
			if seenP {
				return quotient.Graph{}, 0, fmt.Errorf("%w: repeated at line %d", ErrBadProblemLine, line)
			}
			n, m, err := parseProblem(fields)
			if err != nil {
				return quotient.Graph{}, 0, fmt.Errorf("%w: line %d: %v", ErrBadProblemLine, line, err)
			}
			g = quotient.NewGraph(n)
			declared = m
			seenP = true
		case "e":
			if !seenP {
				return quotient.Graph{}, 0, fmt.Errorf("%w: edge before problem line at line %d", ErrBadEdgeLine, line)
			}
			u, v, err := parseEdge(fields)
			if err != nil {
				return quotient.Graph{}, 0, fmt.Errorf("%w: line %d: %v", ErrBadEdgeLine, line, err)
			}
			// 1-indexed on the wire; AddEdge drops out-of-range pairs.
			g = g.AddEdge(u-1, v-1)
		default:
			continue
		}
	}
	if err := sc.Err(); err != nil {
		return quotient.Graph{}, 0, fmt.Errorf("colfile: read: %w", err)
	}
	if !seenP {
		return quotient.Graph{}, 0, ErrNoProblemLine
	}

	return g, declared, nil
}

// ReadGraphFile opens path and parses it with ReadGraph.
func ReadGraphFile(path string) (quotient.Graph, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return quotient.Graph{}, 0, fmt.Errorf("colfile: open: %w", err)
	}
	defer f.Close()

	return ReadGraph(f)
}

func parseProblem(fields []string) (int, int, error) {
	if len(fields) != 4 || fields[1] != "edge" {
		return 0, 0, errors.New("want \"p edge N M\"")
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, 0, fmt.Errorf("bad vertex count %q", fields[2])
	}
	m, err := strconv.Atoi(fields[3])
	if err != nil || m < 0 {
		return 0, 0, fmt.Errorf("bad edge count %q", fields[3])
	}

	return n, m, nil
}

func parseEdge(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, errors.New("want \"e u v\"")
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad endpoint %q", fields[1])
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("bad endpoint %q", fields[2])
	}

	return u, v, nil
}

// BaseName strips the directory and extension from an instance path,
// so "bench/queen5_5.col" becomes "queen5_5".
func BaseName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
