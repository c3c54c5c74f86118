package colfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SolverVersion is stamped into every output report.
const SolverVersion = "v1.0.0"

// Report carries everything the final output file states about a run.
type Report struct {
	InstanceName      string
	CmdLine           string
	NumVertices       int
	NumEdges          int
	TimeLimitSec      float64
	Workers           int
	ThreadsPerProcess int
	WallTimeSec       float64
	WithinTimeLimit   bool
	NumColors         int
	Coloring          []int
}

// WriteReport renders r in the fixed key/value layout: the header
// block followed by one "<vertex> <color>" line per original vertex.
func WriteReport(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "problem_instance_file_name: %s\n", r.InstanceName)
	fmt.Fprintf(bw, "cmd_line: %s\n", r.CmdLine)
	fmt.Fprintf(bw, "solver_version: %s\n", SolverVersion)
	fmt.Fprintf(bw, "number_of_vertices: %d\n", r.NumVertices)
	fmt.Fprintf(bw, "number_of_edges: %d\n", r.NumEdges)
	fmt.Fprintf(bw, "time_limit_sec: %g\n", r.TimeLimitSec)
	fmt.Fprintf(bw, "number_of_mpi_processes: %d\n", r.Workers)
	fmt.Fprintf(bw, "number_of_threads_per_process: %d\n", r.ThreadsPerProcess)
	fmt.Fprintf(bw, "wall_time_sec: %g\n", r.WallTimeSec)
	fmt.Fprintf(bw, "is_within_time_limit: %t\n", r.WithinTimeLimit)
	fmt.Fprintf(bw, "number_of_colors: %d\n", r.NumColors)
	for v, c := range r.Coloring {
		fmt.Fprintf(bw, "%d %d\n", v, c)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("colfile: write report: %w", err)
	}

	return nil
}

// WriteReportFile creates path (truncating any previous run) and
// renders r into it.
func WriteReportFile(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("colfile: create report: %w", err)
	}
	if err := WriteReport(f, r); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReportPath names the rank-0 output file for an instance solved with
// the given worker count.
func ReportPath(dir, base string, workers int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.output", base, workers))
}

// LogPath names the per-rank branch trace file inside dir.
func LogPath(dir string, rank int) string {
	return filepath.Join(dir, fmt.Sprintf("branch_log_rank_%d.txt", rank))
}
