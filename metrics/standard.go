package metrics

// Pre-defined kernel metrics. They live in DefaultRegistry so every package
// can update them without passing a registry around. Updates happen per call
// or per batch, never per field operation.

var (
	// ---- Rounding metrics ----

	// RoundingGuardsActive tracks rounding-mode guards currently held.
	RoundingGuardsActive = DefaultRegistry.Gauge("rounding.guards_active")

	// ---- Skyscraper metrics ----

	// Compressions counts message pairs hashed through CompressMany. Single
	// Compress and Permute calls and proof-of-work grinding are not counted;
	// the solver reports PowAttempts instead.
	Compressions = DefaultRegistry.Counter("skyscraper.compressions")
	// CompressBatches counts the lane blocks of BatchWidth pairs that
	// CompressMany runs, a short tail counting as one block.
	CompressBatches = DefaultRegistry.Counter("skyscraper.batches")

	// ---- Proof-of-work metrics ----

	// PowAttempts counts nonces hashed by the proof-of-work solver.
	PowAttempts = DefaultRegistry.Counter("pow.attempts")
	// PowSolveTime records solver wall time in microseconds.
	PowSolveTime = DefaultRegistry.Histogram("pow.solve_us")

	// ---- NTT metrics ----

	// NTTTransforms counts completed forward and inverse transforms.
	NTTTransforms = DefaultRegistry.Counter("ntt.transforms")
	// NTTParallelTasks counts sub-transforms dispatched to worker goroutines.
	NTTParallelTasks = DefaultRegistry.Counter("ntt.parallel_tasks")
	// NTTTransformTime records engine transform wall time in microseconds.
	NTTTransformTime = DefaultRegistry.Histogram("ntt.transform_us")
	// NTTTwiddleBuilds counts precomputed twiddle bundles.
	NTTTwiddleBuilds = DefaultRegistry.Counter("ntt.twiddle_builds")
)
