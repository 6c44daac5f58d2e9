package cluster

// Config bundles every tunable of the clustering run.
type Config struct {
	ScaleFactor int
	NumImgMaps  int
	Span        int
	BlurSigma   float64
	PhiMax      float64

	MinSize int
	MinVol  int

	PrimaryTolerance float64
	AuxTolerance     float64
	ToleranceDecay   float64

	PartitionStdevCut float64
	PartitionSpread   float64

	Breakout int
	Bounce   float64
}

// Option customizes a Config built from NewConfig's defaults.
type Option func(cfg *Config)

// NewConfig returns a Config seeded with the tuned defaults, then
// applies opts in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		ScaleFactor:       1000,
		NumImgMaps:        1,
		Span:              30,
		BlurSigma:         8,
		PhiMax:            15,
		MinSize:           5,
		MinVol:            1_000_000,
		PrimaryTolerance:  3,
		AuxTolerance:      3,
		ToleranceDecay:    0.8,
		PartitionStdevCut: 0.04,
		PartitionSpread:   0.15,
		Breakout:          100,
		Bounce:            0.1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func WithScaleFactor(v int) Option            { return func(cfg *Config) { cfg.ScaleFactor = v } }
func WithNumImgMaps(v int) Option             { return func(cfg *Config) { cfg.NumImgMaps = v } }
func WithSpan(v int) Option                   { return func(cfg *Config) { cfg.Span = v } }
func WithBlurSigma(v float64) Option          { return func(cfg *Config) { cfg.BlurSigma = v } }
func WithPhiMax(v float64) Option             { return func(cfg *Config) { cfg.PhiMax = v } }
func WithMinSize(v int) Option                { return func(cfg *Config) { cfg.MinSize = v } }
func WithMinVol(v int) Option                 { return func(cfg *Config) { cfg.MinVol = v } }
func WithPrimaryTolerance(v float64) Option   { return func(cfg *Config) { cfg.PrimaryTolerance = v } }
func WithAuxTolerance(v float64) Option       { return func(cfg *Config) { cfg.AuxTolerance = v } }
func WithToleranceDecay(v float64) Option     { return func(cfg *Config) { cfg.ToleranceDecay = v } }
func WithPartitionStdevCut(v float64) Option  { return func(cfg *Config) { cfg.PartitionStdevCut = v } }
func WithPartitionSpread(v float64) Option    { return func(cfg *Config) { cfg.PartitionSpread = v } }
func WithBreakout(v int) Option               { return func(cfg *Config) { cfg.Breakout = v } }
func WithBounce(v float64) Option             { return func(cfg *Config) { cfg.Bounce = v } }
