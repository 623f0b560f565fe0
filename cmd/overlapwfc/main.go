// Command overlapwfc generates a procedurally-woven raster from an
// exemplar image using the overlapping-model Wave Function Collapse
// algorithm.
//
// Usage:
//
//	overlapwfc [flags] -input exemplar.png -output out/
//
// Without -output-width/-output-height the generated grid defaults to
// 32x32 cells.
//
// Examples:
//
//	overlapwfc -input exemplar.png -output out/
//	overlapwfc -input exemplar.png -output out/ -n 2 -rotate -flip
//	overlapwfc -input exemplar.png -output out/ -backtrack -max-depth 20 -max-iterations 5
//	overlapwfc -input exemplar.png -output out/ -seed 42 -verbose
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/jkuba/overlapwfc/pattern"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/render"
	"github.com/jkuba/overlapwfc/ruletable"
	"github.com/jkuba/overlapwfc/solver"
	"github.com/jkuba/overlapwfc/wfcconfig"
	"github.com/jkuba/overlapwfc/wfclog"
)

// Exit codes: 0 solution written, 1 contradiction exhausted, 2 bad config.
const (
	exitSolution      = 0
	exitContradiction = 1
	exitConfigError   = 2
)

func main() {
	input := flag.String("input", "", "path to the exemplar image")
	output := flag.String("output", "", "output directory for artefacts")
	n := flag.Int("n", 3, "pattern window edge (patternSize)")
	rotate := flag.Bool("rotate", false, "include 90/180/270 pattern rotations")
	flip := flag.Bool("flip", false, "include X/Y pattern mirrors")
	width := flag.Int("output-width", 32, "output grid width in cells")
	height := flag.Int("output-height", 32, "output grid height in cells")
	seed := flag.Int64("seed", 0, "PRNG seed (0 resolves to a fixed default)")
	backtrackEnabled := flag.Bool("backtrack", false, "enable contradiction recovery")
	maxDepth := flag.Int("max-depth", 8, "backtracker snapshot stack capacity")
	maxIterations := flag.Int("max-iterations", 4, "backtracker retries per snapshot level")
	savePatterns := flag.Bool("save-patterns", false, "write patterns_preview.png before solving")
	saveIterations := flag.Bool("save-iterations", false, "write iterations/<n>.png after every propagate")
	verbose := flag.Bool("verbose", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: overlapwfc [flags] -input exemplar.png -output out/\n\n")
		fmt.Fprintf(os.Stderr, "Generates a raster via overlapping-model Wave Function Collapse.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  overlapwfc -input exemplar.png -output out/\n")
		fmt.Fprintf(os.Stderr, "  overlapwfc -input exemplar.png -output out/ -n 2 -rotate -flip\n")
		fmt.Fprintf(os.Stderr, "  overlapwfc -input exemplar.png -output out/ -backtrack -max-depth 20 -max-iterations 5\n")
	}
	flag.Parse()

	log := wfclog.New(*verbose)

	if *input == "" || *output == "" {
		fmt.Fprintf(os.Stderr, "overlapwfc: -input and -output are required\n")
		flag.Usage()
		os.Exit(exitConfigError)
	}

	opts := []wfcconfig.Option{
		wfcconfig.WithPatternSize(*n),
		wfcconfig.WithTransforms(*rotate, *flip),
		wfcconfig.WithOutputSize(*width, *height),
		wfcconfig.WithSeed(*seed),
	}
	if *backtrackEnabled {
		opts = append(opts, wfcconfig.WithBacktracking(*maxDepth, *maxIterations))
	}
	if *savePatterns {
		opts = append(opts, wfcconfig.WithSavePatterns(*output))
	}
	if *saveIterations {
		opts = append(opts, wfcconfig.WithSaveIterations(filepath.Join(*output, "iterations")))
	}
	cfg, err := wfcconfig.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: configuration error: %v\n", err)
		os.Exit(exitConfigError)
	}

	os.Exit(run(cfg, *input, *output, log))
}

func run(cfg wfcconfig.Config, inputPath, outputDir string, log *wfclog.Logger) int {
	exemplar, err := raster.Load(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: loading exemplar: %v\n", err)

		return exitConfigError
	}

	cat, err := pattern.Analyze(exemplar, cfg.Analyzer.PatternSize, cfg.Analyzer.AllowRotate, cfg.Analyzer.AllowFlip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: analyzing exemplar: %v\n", err)

		return exitConfigError
	}
	log.Info("catalog built", "patterns", cat.P())

	if cfg.Output.SavePatterns {
		dir := orDefault(cfg.Output.PatternsDir, outputDir)
		if err := writePreview(cat, dir); err != nil {
			fmt.Fprintf(os.Stderr, "overlapwfc: saving pattern preview: %v\n", err)

			return exitConfigError
		}
		log.Info("pattern preview written", "dir", dir)
	}

	rules, err := ruletable.Build(cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: building rule table: %v\n", err)

		return exitConfigError
	}

	solverOpts := []solver.Option{solver.WithSeed(cfg.Solver.Seed)}
	if cfg.Backtrack.Enabled {
		solverOpts = append(solverOpts, solver.WithBacktracking(cfg.Backtrack.MaxDepth, cfg.Backtrack.MaxIterations))
	}

	var s *solver.Solver
	if cfg.Output.SaveIterations {
		dir := orDefault(cfg.Output.IterationsDir, filepath.Join(outputDir, "iterations"))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "overlapwfc: creating iterations dir: %v\n", err)

			return exitConfigError
		}
		solverOpts = append(solverOpts, solver.WithOnIteration(func(iteration int, status solver.Status) {
			frame, err := render.Render(s.Grid, cat)
			if err != nil {
				log.Error("rendering iteration frame", "iteration", iteration, "err", err)

				return
			}
			path := filepath.Join(dir, fmt.Sprintf("%06d.png", iteration))
			if err := frame.Save(path); err != nil {
				log.Error("saving iteration frame", "path", path, "err", err)

				return
			}
			log.WithIteration(iteration).Debug("iteration frame written", "status", status.String())
		}))
	}

	s, err = solver.New(cat, rules, cfg.Solver.OutputWidth, cfg.Solver.OutputHeight, solverOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: constructing solver: %v\n", err)

		return exitConfigError
	}

	status, err := s.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: %v\n", err)

		return exitConfigError
	}

	out, err := render.Render(s.Grid, cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: rendering result: %v\n", err)

		return exitConfigError
	}

	if status == solver.Solution {
		dir := orDefault(cfg.Output.SolutionDir, outputDir)
		if err := saveTo(out, dir, "solution.png"); err != nil {
			fmt.Fprintf(os.Stderr, "overlapwfc: saving solution: %v\n", err)

			return exitConfigError
		}
		log.Important("solution written", "iterations", s.Iteration)
		printSummary(status, s.Iteration, cat.P())

		return exitSolution
	}

	dir := orDefault(cfg.Output.FailedDir, outputDir)
	if err := saveTo(out, dir, "contradiction.png"); err != nil {
		fmt.Fprintf(os.Stderr, "overlapwfc: saving contradiction diagnostic: %v\n", err)

		return exitConfigError
	}
	log.Important("contradiction: no solution found", "iterations", s.Iteration)
	printSummary(status, s.Iteration, cat.P())

	return exitContradiction
}

func orDefault(dir, fallback string) string {
	if dir == "" {
		return fallback
	}

	return dir
}

func writePreview(cat *pattern.Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return cat.SavePreview(filepath.Join(dir, "patterns_preview.png"), 4, 2)
}

func saveTo(out *raster.Raster, dir, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return out.Save(filepath.Join(dir, name))
}

func printSummary(status solver.Status, iterations, patternCount int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Status\tIterations\tPatterns\n")
	fmt.Fprintf(tw, "%s\t%d\t%d\n", status, iterations, patternCount)
	_ = tw.Flush()
}
