package cluster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chromatic/quotient"
	"github.com/katalvlaran/chromatic/solver"
)

// ErrClusterConfig is returned when a Config field is out of range.
var ErrClusterConfig = errors.New("cluster: invalid configuration")

// Config describes one coordinated run.
type Config struct {
	// Workers is the number of peer ranks (≥ 1).
	Workers int

	// Threads is the task-pool width inside each rank (≥ 1).
	Threads int

	// TimeLimit bounds the whole run in wall-clock time measured from
	// Start. Zero disables the gate.
	TimeLimit time.Duration

	// DecompDepth is the unroll depth of the single-component
	// decomposition.
	DecompDepth int

	// Start anchors the budget and the trace timestamps; the zero
	// value means "now".
	Start time.Time

	// BranchLog, when non-nil, supplies the per-rank trace writer.
	// A nil factory or a nil writer discards the trace for that rank.
	BranchLog func(rank int) io.Writer

	// Logger receives operational events; nil means no logging.
	Logger *zap.Logger
}

func (cfg *Config) normalize() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrClusterConfig, cfg.Workers)
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return nil
}

func (cfg Config) rankLog(rank int) *solver.BranchLog {
	if cfg.BranchLog == nil {
		return solver.NewBranchLog(nil)
	}

	return solver.NewBranchLog(cfg.BranchLog(rank))
}

func (cfg Config) solverOptions() []solver.Option {
	return []solver.Option{
		solver.WithTimeLimit(cfg.TimeLimit),
		solver.WithThreads(cfg.Threads),
		solver.WithDecompDepth(cfg.DecompDepth),
	}
}

// Result is the outcome of one coordinated run, assembled on rank 0.
type Result struct {
	// Solution is the best coloring found across all ranks.
	Solution solver.Solution

	// WallTime is the elapsed time of the whole run.
	WallTime time.Duration

	// Completed reports whether every rank exhausted its share of the
	// search inside the time budget, proving the count optimal.
	Completed bool
}

// Solve colors g exactly using cfg.Workers cooperating ranks and
// returns the merged result. The instance is validated first; a
// timeout degrades the result (Completed false) but is not an error.
func Solve(ctx context.Context, g quotient.Graph, cfg Config) (Result, error) {
	if err := cfg.normalize(); err != nil {
		return Result{}, err
	}
	if err := g.Validate(); err != nil {
		return Result{}, err
	}

	comps := g.ConnectedComponents()
	cfg.Logger.Info("starting coordinated search",
		zap.Int("workers", cfg.Workers),
		zap.Int("threads", cfg.Threads),
		zap.Int("vertices", g.N),
		zap.Int("components", len(comps)),
		zap.Duration("time_limit", cfg.TimeLimit),
	)

	f := newFabric(cfg.Workers)
	var root Result
	eg, egCtx := errgroup.WithContext(ctx)
	for rank := 0; rank < cfg.Workers; rank++ {
		rank := rank
		eg.Go(func() error {
			res, err := runRank(egCtx, f.comm(rank), g, comps, cfg)
			if err != nil {
				return err
			}
			if rank == 0 {
				root = res
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	root.WallTime = time.Since(cfg.Start)
	cfg.Logger.Info("search finished",
		zap.Int("colors", root.Solution.NumColors),
		zap.Bool("completed", root.Completed),
		zap.Duration("wall_time", root.WallTime),
	)

	return root, nil
}

// runRank executes one rank under the policy chosen by the component
// structure. Every rank follows the same collective sequence.
func runRank(ctx context.Context, c *comm, g quotient.Graph, comps [][]int, cfg Config) (Result, error) {
	if len(comps) > 1 {
		return runComponents(ctx, c, g, comps, cfg)
	}

	return runDecomposed(ctx, c, g, cfg)
}

// runComponents deals connected components round-robin: component i
// belongs to rank i mod W. Components are colored independently with
// overlapping palettes, so counts reduce by MAX and the partial
// colorings merge element-wise, unassigned slots staying -1.
func runComponents(ctx context.Context, c *comm, g quotient.Graph, comps [][]int, cfg Config) (Result, error) {
	blog := cfg.rankLog(c.rank)
	coloring := make([]int, g.OrigN)
	for i := range coloring {
		coloring[i] = -1
	}

	localMax := 0
	completed := true
	for i, comp := range comps {
		if i%c.world() != c.rank {
			continue
		}
		sub := g.ExtractSubgraph(comp)
		s, err := solver.NewSearch(g.OrigN, cfg.Start, blog, cfg.solverOptions()...)
		if err != nil {
			return Result{}, err
		}
		s.Run(ctx, sub)
		completed = completed && s.Completed()

		sol := s.Best()
		if !sol.Solved() {
			continue
		}
		if sol.NumColors > localMax {
			localMax = sol.NumColors
		}
		for _, cv := range comp {
			for _, orig := range g.Mapping[cv] {
				coloring[orig] = sol.Coloring[orig]
			}
		}
	}

	cfg.Logger.Debug("rank finished components",
		zap.Int("rank", c.rank),
		zap.Int("local_colors", localMax),
		zap.Bool("completed", completed),
	)

	counts := c.reduceMax(0, []int{localMax})
	merged := c.reduceMax(0, coloring)
	allDone := c.allreduceMin(boolToInt(completed)) == 1

	if c.rank != 0 {
		return Result{}, nil
	}

	return Result{
		Solution:  solver.Solution{NumColors: counts[0], Coloring: merged},
		Completed: allDone,
	}, nil
}

// runDecomposed handles the connected case: every rank unrolls the
// identical frontier, rank r solves tasks r, r+W, r+2W, ... and the
// winner (lowest rank on ties) broadcasts its coloring.
func runDecomposed(ctx context.Context, c *comm, g quotient.Graph, cfg Config) (Result, error) {
	s, err := solver.NewSearch(g.OrigN, cfg.Start, cfg.rankLog(c.rank), cfg.solverOptions()...)
	if err != nil {
		return Result{}, err
	}

	frontier := s.Decompose(ctx, g)
	if len(frontier) == 0 {
		frontier = []quotient.Graph{g}
	}
	var own []quotient.Graph
	for i, sub := range frontier {
		if i%c.world() == c.rank {
			own = append(own, sub)
		}
	}
	cfg.Logger.Debug("rank assigned subproblems",
		zap.Int("rank", c.rank),
		zap.Int("frontier", len(frontier)),
		zap.Int("assigned", len(own)),
	)

	s.RunAll(ctx, own, cfg.DecompDepth)
	best := s.Best()

	minColors, owner := c.allreduceMinLoc(best.NumColors)
	coloring := c.bcast(owner, best.Coloring)
	allDone := c.allreduceMin(boolToInt(s.Completed())) == 1

	if c.rank != 0 {
		return Result{}, nil
	}

	return Result{
		Solution:  solver.Solution{NumColors: minColors, Coloring: coloring},
		Completed: allDone,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
