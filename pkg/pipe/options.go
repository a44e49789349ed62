package pipe

import "github.com/google/uuid"

type settings struct {
	id   uuid.UUID
	sink Sink
}

// Option configures a chain started with Of.
// Options are inherited by every Pipe derived from the seed.
type Option func(*settings)

// WithSink routes Inspect emissions to s instead of DefaultSink.
func WithSink(s Sink) Option {
	return func(o *settings) {
		o.sink = s
	}
}

// WithID sets the chain id. uuid.Nil is ignored and a fresh id is generated.
func WithID(id uuid.UUID) Option {
	return func(o *settings) {
		o.id = id
	}
}
