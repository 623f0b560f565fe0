package wfcconfig

// AnalyzerConfig tunes pattern analysis.
type AnalyzerConfig struct {
	// PatternSize is the N×N window edge.
	PatternSize int
	// AllowRotate includes 90/180/270 rotations as independent pattern candidates.
	AllowRotate bool
	// AllowFlip includes X and Y mirrors as independent pattern candidates.
	AllowFlip bool
}

// Validate reports ErrInvalidPatternSize for a non-positive PatternSize.
func (c AnalyzerConfig) Validate() error {
	if c.PatternSize <= 0 {
		return ErrInvalidPatternSize
	}

	return nil
}

// SolverConfig tunes the Solver's output grid and PRNG.
type SolverConfig struct {
	OutputWidth  int
	OutputHeight int
	Seed         int64
}

// Validate reports ErrInvalidOutputSize for a non-positive OutputWidth or
// OutputHeight.
func (c SolverConfig) Validate() error {
	if c.OutputWidth <= 0 || c.OutputHeight <= 0 {
		return ErrInvalidOutputSize
	}

	return nil
}

// BacktrackConfig tunes contradiction recovery.
type BacktrackConfig struct {
	Enabled       bool
	MaxDepth      int
	MaxIterations int
}

// Validate reports ErrInvalidBacktrackConfig when Enabled but MaxDepth or
// MaxIterations is non-positive. A disabled config is always valid.
func (c BacktrackConfig) Validate() error {
	if c.Enabled && (c.MaxDepth <= 0 || c.MaxIterations <= 0) {
		return ErrInvalidBacktrackConfig
	}

	return nil
}

// OutputConfig tunes which diagnostic artefacts are written (preview
// "Output" and "Persisted state").
type OutputConfig struct {
	// SavePatterns writes patterns_preview.png (plus its manifest) before solving.
	SavePatterns bool
	// SaveIterations writes iterations/<n>.png after every Propagate.
	SaveIterations bool
	// PatternsDir, IterationsDir, SolutionDir, FailedDir name the
	// directories artefacts are written under; empty means "use the
	// output directory directly", except for IterationsDir, where empty
	// means an "iterations" subdirectory of the output directory.
	PatternsDir   string
	IterationsDir string
	SolutionDir   string
	FailedDir     string
}

// Config aggregates every tunable group the pipeline needs end to end.
type Config struct {
	Analyzer  AnalyzerConfig
	Solver    SolverConfig
	Backtrack BacktrackConfig
	Output    OutputConfig
}

// Option configures a Config via functional arguments.
type Option func(*Config)

// Default returns the documented defaults: patternSize 3, no
// rotation/flip transforms, backtracking disabled, no artefacts saved.
func Default() Config {
	return Config{
		Analyzer: AnalyzerConfig{PatternSize: 3},
		Solver:   SolverConfig{OutputWidth: 32, OutputHeight: 32},
	}
}

// New builds a Config from Default plus the given options, then Validates it.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}

	return c, c.Validate()
}

// Validate runs every group's Validate and returns the first failure.
func (c Config) Validate() error {
	if err := c.Analyzer.Validate(); err != nil {
		return err
	}
	if err := c.Solver.Validate(); err != nil {
		return err
	}

	return c.Backtrack.Validate()
}

// WithPatternSize sets the Analyzer's window edge N.
func WithPatternSize(n int) Option {
	return func(c *Config) { c.Analyzer.PatternSize = n }
}

// WithTransforms enables rotation and/or flip pattern variants.
func WithTransforms(allowRotate, allowFlip bool) Option {
	return func(c *Config) {
		c.Analyzer.AllowRotate = allowRotate
		c.Analyzer.AllowFlip = allowFlip
	}
}

// WithOutputSize sets the Solver's output grid dimensions.
func WithOutputSize(w, h int) Option {
	return func(c *Config) {
		c.Solver.OutputWidth = w
		c.Solver.OutputHeight = h
	}
}

// WithSeed sets the Solver's PRNG seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Solver.Seed = seed }
}

// WithBacktracking enables contradiction recovery bounded by maxDepth
// stacked snapshots, each redrawable maxIterations times.
func WithBacktracking(maxDepth, maxIterations int) Option {
	return func(c *Config) {
		c.Backtrack.Enabled = true
		c.Backtrack.MaxDepth = maxDepth
		c.Backtrack.MaxIterations = maxIterations
	}
}

// WithSavePatterns toggles writing patterns_preview.png under dir.
func WithSavePatterns(dir string) Option {
	return func(c *Config) {
		c.Output.SavePatterns = true
		c.Output.PatternsDir = dir
	}
}

// WithSaveIterations toggles writing iterations/<n>.png under dir.
func WithSaveIterations(dir string) Option {
	return func(c *Config) {
		c.Output.SaveIterations = true
		c.Output.IterationsDir = dir
	}
}
