// Command chromatic computes the exact chromatic number of a DIMACS
// .col instance with a parallel Zykov branch-and-bound search.
//
// Usage:
//
//	chromatic [-workers W] [-output DIR] <input.col> <time_limit_sec>
//
// The per-worker thread-pool width comes from OMP_NUM_THREADS (unset or
// zero means one thread). Rank 0 writes <DIR>/<base>_<W>.output and
// every rank traces its search nodes to <DIR>/log/branch_log_rank_<R>.txt.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/chromatic/cluster"
	"github.com/katalvlaran/chromatic/colfile"
	"github.com/katalvlaran/chromatic/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "chromatic:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("chromatic", flag.ContinueOnError)
	workers := fs.Int("workers", 1, "number of peer solver workers")
	outDir := fs.String("output", filepath.Join("..", "build", "output"), "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("want <input.col> <time_limit_sec>, got %d arguments", fs.NArg())
	}
	inputPath := fs.Arg(0)
	limitSec, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil || limitSec < 0 {
		return fmt.Errorf("bad time limit %q", fs.Arg(1))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	g, declared, err := colfile.ReadGraphFile(inputPath)
	if err != nil {
		return err
	}
	logger.Info("instance loaded",
		zap.String("file", inputPath),
		zap.Int("vertices", g.N),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("declared_edges", declared),
	)

	logDir := filepath.Join(*outDir, "log")
	if err = os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}
	logs := make([]*os.File, *workers)
	for rank := range logs {
		if logs[rank], err = os.Create(colfile.LogPath(logDir, rank)); err != nil {
			return err
		}
		defer logs[rank].Close()
	}

	start := time.Now()
	res, err := cluster.Solve(context.Background(), g, cluster.Config{
		Workers:     *workers,
		Threads:     threadsFromEnv(),
		TimeLimit:   time.Duration(limitSec * float64(time.Second)),
		DecompDepth: solver.DefaultDecompDepth,
		Start:       start,
		BranchLog:   func(rank int) io.Writer { return logs[rank] },
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if res.Solution.Solved() {
		if verr := res.Solution.Verify(g); verr != nil {
			logger.Warn("reported coloring failed verification", zap.Error(verr))
		}
	}

	reportPath := colfile.ReportPath(*outDir, colfile.BaseName(inputPath), *workers)
	report := colfile.Report{
		InstanceName:      colfile.BaseName(inputPath),
		CmdLine:           strings.Join(os.Args, " "),
		NumVertices:       g.OrigN,
		NumEdges:          g.EdgeCount(),
		TimeLimitSec:      limitSec,
		Workers:           *workers,
		ThreadsPerProcess: threadsFromEnv(),
		WallTimeSec:       res.WallTime.Seconds(),
		WithinTimeLimit:   res.Completed,
		NumColors:         res.Solution.NumColors,
		Coloring:          res.Solution.Coloring,
	}
	if err = colfile.WriteReportFile(reportPath, report); err != nil {
		return err
	}
	logger.Info("report written",
		zap.String("path", reportPath),
		zap.Int("colors", res.Solution.NumColors),
		zap.Bool("within_time_limit", res.Completed),
	)

	return nil
}

// threadsFromEnv reads OMP_NUM_THREADS; unset, zero, or unparsable
// values mean a single thread.
func threadsFromEnv() int {
	v := os.Getenv("OMP_NUM_THREADS")
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}

	return n
}
