package planner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// track is one agent's clock and position. A retired agent makes no
// further moves.
type track struct {
	rem     int
	at      int
	retired bool
}

func (t track) retire() track {
	t.retired = true
	return t
}

// incumbent is the best (value, schedule) an engine has seen.
type incumbent struct {
	value int
	moves []move
	found bool
}

// sharedBest is the global incumbent value across workers. It serializes
// OnImprove so observers see strictly increasing values, and lets every
// worker prune against the best value found anywhere.
type sharedBest struct {
	value atomic.Int64

	mu        sync.Mutex
	mode      string
	onImprove func(int, []string)
	recorder  Recorder
	logger    zerolog.Logger
}

func newSharedBest(mode string, o *Options, seed int) *sharedBest {
	s := &sharedBest{mode: mode, onImprove: o.OnImprove, recorder: o.Recorder, logger: o.Logger}
	s.value.Store(int64(seed))

	return s
}

// publish reports value if it beats the global best.
func (s *sharedBest) publish(value int, path func() []string) {
	if int64(value) <= s.value.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if int64(value) <= s.value.Load() {
		return
	}
	s.value.Store(int64(value))
	p := path()
	s.logger.Debug().Str("mode", s.mode).Int("value", value).Strs("path", p).Msg("incumbent improved")
	s.onImprove(value, p)
	if s.recorder != nil {
		s.recorder.Improved(s.mode, value)
	}
}

// engine holds the mutable state of one depth-first search. Every mutation
// made on the way down (ledger, visited, path) is undone on the way up, so
// the state after a call returns equals the state before it was entered.
type engine struct {
	p       *problem
	bounded bool
	ctx     context.Context
	done    <-chan struct{}
	shared  *sharedBest

	visited []bool
	ledger  *Ledger
	path    []move
	best    incumbent
	nodes   int64
}

func newEngine(ctx context.Context, p *problem, bounded bool, shared *sharedBest, seed incumbent) *engine {
	e := &engine{
		p:       p,
		bounded: bounded,
		ctx:     ctx,
		done:    ctx.Done(),
		shared:  shared,
		visited: make([]bool, p.n),
		ledger:  NewLedger(p.budget),
		path:    make([]move, 0, p.n),
	}
	e.best = incumbent{value: seed.value, found: seed.found, moves: append([]move(nil), seed.moves...)}

	return e
}

// enter is called at every recursion entry.
func (e *engine) enter() error {
	e.nodes++
	return e.interrupted()
}

// interrupted reports the context error, if any, without counting a node.
func (e *engine) interrupted() error {
	select {
	case <-e.done:
		return fmt.Errorf("%w: %w", ErrInterrupted, e.ctx.Err())
	default:
		return nil
	}
}

// claim moves the agent on tr to site s if affordable, recording the payoff
// in the ledger. It must be paired with release.
func (e *engine) claim(agent int, tr track, s int) (track, bool) {
	c := e.p.cost[tr.at][s]
	if c > tr.rem {
		return tr, false
	}
	at := tr.rem - c
	e.ledger.Add(at, e.p.values[s]*at)
	e.visited[s] = true
	e.path = append(e.path, move{agent: agent, site: s, at: at})

	return track{rem: at, at: s}, true
}

// release undoes the most recent claim.
func (e *engine) release() {
	m := e.path[len(e.path)-1]
	e.path = e.path[:len(e.path)-1]
	e.visited[m.site] = false
	e.ledger.Remove(m.at, e.p.values[m.site]*m.at)
}

// offer compares the ledger against the incumbent.
func (e *engine) offer() {
	v := e.ledger.Total()
	if e.best.found && v <= e.best.value {
		return
	}
	e.best.value = v
	e.best.moves = append(e.best.moves[:0], e.path...)
	e.best.found = true
	e.shared.publish(v, e.currentPath)
}

func (e *engine) currentPath() []string {
	return e.p.result(0, e.path).Path
}

// canMove reports whether tr can still afford an unvisited site.
func (e *engine) canMove(tr track) bool {
	if tr.retired {
		return false
	}
	for _, s := range e.p.order[tr.at] {
		if e.visited[s] {
			continue
		}
		return e.p.cost[tr.at][s] <= tr.rem
	}

	return false
}

// hopeless reports whether no completion of the current branch can beat the
// incumbent. The bound assumes each unvisited site is collected by whichever
// agent reaches it directly with the most time left; by the triangle
// inequality no schedule does better, so the bound is admissible.
func (e *engine) hopeless(a, b track) bool {
	if !e.bounded {
		return false
	}
	limit := e.best.value
	if g := int(e.shared.value.Load()); g > limit {
		limit = g
	}
	bound := e.ledger.Total()
	for s := 0; s < e.p.n; s++ {
		if e.visited[s] {
			continue
		}
		left := 0
		if !a.retired {
			left = a.rem - e.p.cost[a.at][s]
		}
		if !b.retired {
			if r := b.rem - e.p.cost[b.at][s]; r > left {
				left = r
			}
		}
		if left > 0 {
			bound += e.p.values[s] * left
		}
	}

	return bound <= limit
}
