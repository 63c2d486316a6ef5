package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start ID is absent.
	ErrStartNotFound = errors.New("bfs: start site not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a site is dequeued. Returning an error aborts BFS.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// StopAt, if non-empty, ends the walk as soon as this site is dequeued.
	StopAt string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// no target and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every dequeued site.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to sites at most d hops away.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStopAt ends the walk once target is dequeued. Sites still queued at
// that moment keep their Depth and Parent entries but are not in Order.
func WithStopAt(target string) Option {
	return func(o *Options) { o.StopAt = target }
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists visited (dequeued) sites in visit sequence.
	Order []string

	// Depth maps every discovered site to its hop distance from the start.
	Depth map[string]int

	// Parent maps every discovered site except the start to its predecessor.
	Parent map[string]string

	// Reached is true when StopAt was set and the target was dequeued.
	Reached bool
}

// Hops walks parent pointers back from dest to the start and returns the
// number of edges traversed. ok is false if dest was never discovered.
func (r *Result) Hops(dest string) (hops int, ok bool) {
	if _, found := r.Depth[dest]; !found {
		return 0, false
	}
	for cur := dest; ; hops++ {
		prev, has := r.Parent[cur]
		if !has {
			return hops, true
		}
		cur = prev
	}
}

// PathTo reconstructs the path from the start site to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
