package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrGraphNil is returned when an oracle is requested for a nil graph.
	ErrGraphNil = errors.New("oracle: graph is nil")

	// ErrUnreachable is matched by every *UnreachableError.
	ErrUnreachable = errors.New("oracle: site unreachable")
)

// UnreachableError reports a pair of sites with no connecting path.
type UnreachableError struct {
	From string
	To   string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("oracle: no path from %q to %q", e.From, e.To)
}

// Is lets errors.Is(err, ErrUnreachable) match any UnreachableError.
func (e *UnreachableError) Is(target error) bool { return target == ErrUnreachable }

// Option configures an Oracle.
type Option func(*Oracle)

// WithCache makes the oracle read and fill an existing cache, e.g. one built
// by BuildDistanceCache for the same graph.
func WithCache(c *Cache) Option {
	return func(o *Oracle) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithContext bounds every BFS the oracle runs.
func WithContext(ctx context.Context) Option {
	return func(o *Oracle) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a logger for cache warm-up diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Oracle) { o.logger = l }
}

// Stats is a snapshot of oracle activity.
type Stats struct {
	Hits    int64 // queries answered from the cache
	Misses  int64 // queries that required a walk
	BFSRuns int64 // walks performed, including warm-up
	Cached  int   // pairs currently stored
}
