package planner

import (
	"time"

	"github.com/katalvlaran/valvenet/oracle"
)

// GreedySeed builds a fast single-agent tour from start: at each step it
// moves to the unvisited active site with the best value/cost ratio (ties:
// larger cost, then smaller ID) and stops at the first choice that does not
// fit in the remaining time.
//
// The result is a lower bound for OptimizeSingle and OptimizeDual, not an
// answer: the optimizers run it to seed their incumbent.
func GreedySeed(o *oracle.Oracle, start string, budget int, opts ...Option) (Result, error) {
	options, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	began := time.Now()
	p, err := newProblem(o, start, budget, 1, options.ActivationCost)
	if err != nil {
		return Result{}, err
	}

	value, moves := p.greedy()
	res := p.result(value, moves)
	res.Seed = value
	res.Complete = true
	if options.Recorder != nil {
		options.Recorder.Finished(ModeGreedy, res, time.Since(began))
	}
	options.Logger.Debug().Str("mode", ModeGreedy).Int("value", value).Strs("path", res.Path).Msg("greedy seed")

	return res, nil
}

// greedy runs the ratio heuristic on the cost matrix.
func (p *problem) greedy() (int, []move) {
	visited := make([]bool, p.n)
	rem, at := p.budget, p.n
	total := 0
	var moves []move
	for {
		pick := -1
		for s := 0; s < p.n; s++ {
			if visited[s] {
				continue
			}
			if pick < 0 || p.preferred(at, s, pick) {
				pick = s
			}
		}
		if pick < 0 || p.cost[at][pick] > rem {
			return total, moves
		}
		rem -= p.cost[at][pick]
		total += p.values[pick] * rem
		visited[pick] = true
		at = pick
		moves = append(moves, move{agent: 0, site: pick, at: rem})
	}
}

// preferred reports whether s beats t as the next greedy move from 'from'.
// Ratios are compared exactly by cross-multiplication; a zero cost counts as
// an infinite ratio.
func (p *problem) preferred(from, s, t int) bool {
	vs, cs := p.values[s], p.cost[from][s]
	vt, ct := p.values[t], p.cost[from][t]
	switch {
	case cs == 0 && ct == 0:
		if vs != vt {
			return vs > vt
		}
	case cs == 0:
		return true
	case ct == 0:
		return false
	default:
		if l, r := vs*ct, vt*cs; l != r {
			return l > r
		}
		if cs != ct {
			return cs > ct
		}
	}

	return s < t
}
