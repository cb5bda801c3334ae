package seqgo

import (
	"log/slog"

	"github.com/hupe1980/seqgo/backend"
	"github.com/hupe1980/seqgo/prune"
	"github.com/hupe1980/seqgo/sequence"
)

type options[I comparable] struct {
	constraints sequence.Constraints
	pruning     prune.Strategy[I]
	mode        backend.Mode
	gpu         backend.Counter[I]
	workers     int
	batchSize   int

	preprocess  PreprocessHook[I]
	filter      CandidateFilterHook[I]
	postprocess PostprocessHook[I]

	progress         ProgressFunc
	progressInterval float64

	logger  *Logger
	metrics MetricsCollector
}

// Option configures a Miner.
type Option[I comparable] func(*options[I])

// WithConstraints sets the temporal bounds enforced during matching.
// They only bind when transactions carry timestamps.
func WithConstraints[I comparable](c sequence.Constraints) Option[I] {
	return func(o *options[I]) {
		o.constraints = c
	}
}

// WithPruning sets the pruning strategy applied to counted candidates at
// levels >= 2. The default depends on the constraints: temporal
// feasibility pruning when bounds are active, support-based otherwise.
func WithPruning[I comparable](s prune.Strategy[I]) Option[I] {
	return func(o *options[I]) {
		o.pruning = s
	}
}

// WithBackend sets the counting backend mode. Default is backend.Auto.
func WithBackend[I comparable](mode backend.Mode) Option[I] {
	return func(o *options[I]) {
		o.mode = mode
	}
}

// WithGPUCounter registers an externally implemented GPU-assisted
// counter. It is only used when the backend mode is backend.GPU.
func WithGPUCounter[I comparable](c backend.Counter[I]) Option[I] {
	return func(o *options[I]) {
		o.gpu = c
	}
}

// WithWorkers bounds the parallelism of the accelerated backend.
// Zero (the default) means GOMAXPROCS.
func WithWorkers[I comparable](n int) Option[I] {
	return func(o *options[I]) {
		o.workers = n
	}
}

// WithBatchSize sets how many candidates one worker task counts.
func WithBatchSize[I comparable](n int) Option[I] {
	return func(o *options[I]) {
		o.batchSize = n
	}
}

// WithPreprocessHook sets a hook run once over the transactions before
// level 1.
func WithPreprocessHook[I comparable](h PreprocessHook[I]) Option[I] {
	return func(o *options[I]) {
		o.preprocess = h
	}
}

// WithCandidateFilterHook sets a hook run over each level's surviving
// patterns after pruning.
func WithCandidateFilterHook[I comparable](h CandidateFilterHook[I]) Option[I] {
	return func(o *options[I]) {
		o.filter = h
	}
}

// WithPostprocessHook sets a hook run once over the full ordered result.
func WithPostprocessHook[I comparable](h PostprocessHook[I]) Option[I] {
	return func(o *options[I]) {
		o.postprocess = h
	}
}

// WithProgress sets a progress callback invoked while candidate batches
// are counted. Invocations are rate-limited so the callback cannot
// dominate the counting hot loop; perSecond <= 0 picks a default.
func WithProgress[I comparable](fn ProgressFunc, perSecond float64) Option[I] {
	return func(o *options[I]) {
		o.progress = fn
		o.progressInterval = perSecond
	}
}

// WithLogger configures structured logging. The default discards all
// output.
func WithLogger[I comparable](l *Logger) Option[I] {
	return func(o *options[I]) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLogLevel installs a text logger at the given level.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[I comparable](level slog.Level) Option[I] {
	return func(o *options[I]) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
func WithMetricsCollector[I comparable](mc MetricsCollector) Option[I] {
	return func(o *options[I]) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

func applyOptions[I comparable](optFns []Option[I]) options[I] {
	o := options[I]{
		mode:    backend.Auto,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
