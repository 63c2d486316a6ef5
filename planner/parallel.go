package planner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// branch is one root move: the first site of a single agent (j < 0), a
// first pair for two agents (i, j), or the dual branch in which only the
// second agent moves (i < 0).
type branch struct{ i, j int }

// rootBranches lists the root moves in the order the serial search tries them.
func (p *problem) rootBranches(root track) []branch {
	var afford []int
	for _, s := range p.order[root.at] {
		if p.cost[root.at][s] > root.rem {
			break
		}
		afford = append(afford, s)
	}

	var out []branch
	for _, i := range afford {
		if p.agents == 1 {
			out = append(out, branch{i: i, j: -1})
			continue
		}
		for _, j := range afford {
			if j > i {
				out = append(out, branch{i: i, j: j})
			}
		}
	}
	if p.agents == 2 && len(afford) > 0 {
		out = append(out, branch{i: -1, j: -1})
	}

	return out
}

// runBranch explores one root move. The root itself is counted once by
// searchParallel, not per branch.
func (e *engine) runBranch(root track, br branch) error {
	if err := e.interrupted(); err != nil {
		return err
	}
	switch {
	case e.p.agents == 1:
		next, _ := e.claim(0, root, br.i)
		err := e.single(next)
		e.release()
		return err
	case br.i < 0:
		return e.dual(root.retire(), root)
	default:
		na, _ := e.claim(0, root, br.i)
		nb, _ := e.claim(1, root, br.j)
		err := e.dual(na, nb)
		e.release()
		e.release()
		return err
	}
}

// searchParallel distributes the root branches over an errgroup. Each
// branch runs on its own engine (ledger, visited set, incumbent); the
// problem and the oracle cache are shared read-only. Results are reduced by
// value, ties going to the earliest branch.
func searchParallel(ctx context.Context, p *problem, workers int, bounded bool, shared *sharedBest, seed incumbent) (incumbent, int64, error) {
	root := track{rem: p.budget, at: p.n}
	branches := p.rootBranches(root)
	if len(branches) == 0 {
		e := newEngine(ctx, p, bounded, shared, seed)
		err := e.run(root)
		return e.best, e.nodes, err
	}

	engines := make([]*engine, len(branches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, br := range branches {
		br := br
		e := newEngine(gctx, p, bounded, shared, seed)
		engines[k] = e
		g.Go(func() error { return e.runBranch(root, br) })
	}
	err := g.Wait()

	best := seed
	nodes := int64(1) // the root itself
	for _, e := range engines {
		nodes += e.nodes
		if e.best.found && (!best.found || e.best.value > best.value) {
			best = e.best
		}
	}

	return best, nodes, err
}
