package pipe

import (
	"context"
	"log"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observation is a single Inspect emission.
type Observation struct {
	ChainID uuid.UUID
	Step    int
	Value   any
}

// Sink receives Inspect emissions.
type Sink interface {
	Observe(o Observation)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(o Observation)

// Observe calls f(o).
func (f SinkFunc) Observe(o Observation) {
	f(o)
}

type sinkHolder struct {
	sink Sink
}

var defaultSink atomic.Pointer[sinkHolder]

// DefaultSink returns the process-wide sink used by chains started without
// WithSink. Unless replaced by SetDefaultSink it logs to slog.Default at
// debug level.
func DefaultSink() Sink {
	if h := defaultSink.Load(); h != nil {
		return h.sink
	}
	return slogDefault{}
}

// SetDefaultSink replaces the process-wide sink. A nil s restores the slog default.
func SetDefaultSink(s Sink) {
	if s == nil {
		defaultSink.Store(nil)
		return
	}
	defaultSink.Store(&sinkHolder{sink: s})
}

// slogDefault resolves slog.Default on every emission so that later
// slog.SetDefault calls are honoured.
type slogDefault struct{}

func (slogDefault) Observe(o Observation) {
	emitSlog(slog.Default(), slog.LevelDebug, o)
}

type slogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// SlogSink returns a Sink that writes an "inspect" record to l at the given level.
func SlogSink(l *slog.Logger, level slog.Level) Sink {
	return &slogSink{logger: l, level: level}
}

func (s *slogSink) Observe(o Observation) {
	emitSlog(s.logger, s.level, o)
}

func emitSlog(l *slog.Logger, level slog.Level, o Observation) {
	l.Log(context.Background(), level, "inspect",
		slog.String("chain_id", o.ChainID.String()),
		slog.Int("step", o.Step),
		slog.Any("value", o.Value))
}

type zapSink struct {
	logger *zap.Logger
}

// ZapSink returns a Sink that writes a debug "inspect" entry to l.
func ZapSink(l *zap.Logger) Sink {
	return &zapSink{logger: l}
}

func (s *zapSink) Observe(o Observation) {
	s.logger.Debug("inspect",
		zap.Stringer("chain_id", o.ChainID),
		zap.Int("step", o.Step),
		zap.Any("value", o.Value))
}

type logSink struct {
	logger *log.Logger
}

// LogSink returns a Sink that prints one line per emission to l.
func LogSink(l *log.Logger) Sink {
	return &logSink{logger: l}
}

func (s *logSink) Observe(o Observation) {
	s.logger.Printf("[%s#%d] %v\n", o.ChainID, o.Step, o.Value)
}

// Recorder is a Sink that keeps every emission in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu           sync.Mutex
	observations []Observation
}

// Observe appends o to the recorded emissions.
func (r *Recorder) Observe(o Observation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, o)
}

// Observations returns a copy of the recorded emissions in arrival order.
func (r *Recorder) Observations() []Observation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Observation, len(r.observations))
	copy(out, r.observations)
	return out
}

// Values returns the recorded values in arrival order.
func (r *Recorder) Values() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]any, 0, len(r.observations))
	for _, o := range r.observations {
		out = append(out, o.Value)
	}
	return out
}

// Len returns the number of recorded emissions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observations)
}

// Reset discards every recorded emission.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = nil
}
