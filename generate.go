package overlapwfc

import (
	"context"

	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/render"
	"github.com/jkuba/overlapwfc/ruletable"
	"github.com/jkuba/overlapwfc/solver"
	"github.com/jkuba/overlapwfc/wfcconfig"
)

// Result bundles everything a caller might want after a Generate run.
type Result struct {
	Catalog *pattern.Catalog
	Rules   *ruletable.Table
	Solver  *solver.Solver
	Status  solver.Status
	Output  *raster.Raster
}

// Generate runs the full pipeline the subpackages compose into: analyze
// exemplar into a pattern.Catalog, build its ruletable.Table, solve an
// output grid sized per cfg.Solver, and render the result. It runs the
// same sequence cmd/overlapwfc assembles itself, without the CLI's flags,
// file I/O, or cfg.Output artefacts.
func Generate(ctx context.Context, exemplar *raster.Raster, cfg wfcconfig.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := pattern.Analyze(exemplar, cfg.Analyzer.PatternSize, cfg.Analyzer.AllowRotate, cfg.Analyzer.AllowFlip)
	if err != nil {
		return nil, err
	}

	rules, err := ruletable.Build(cat)
	if err != nil {
		return nil, err
	}

	var opts []solver.Option
	opts = append(opts, solver.WithSeed(cfg.Solver.Seed))
	if cfg.Backtrack.Enabled {
		opts = append(opts, solver.WithBacktracking(cfg.Backtrack.MaxDepth, cfg.Backtrack.MaxIterations))
	}

	s, err := solver.New(cat, rules, cfg.Solver.OutputWidth, cfg.Solver.OutputHeight, opts...)
	if err != nil {
		return nil, err
	}

	status, err := s.Run(ctx)
	if err != nil {
		return nil, err
	}

	out, err := render.Render(s.Grid, cat)
	if err != nil {
		return nil, err
	}

	return &Result{Catalog: cat, Rules: rules, Solver: s, Status: status, Output: out}, nil
}
