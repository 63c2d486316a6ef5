package planner

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/valvenet/oracle"
)

// problem is the read-only view of one instance shared by every engine and
// worker: the active sites, their values and a dense cost matrix filled from
// the oracle's warmed cache.
type problem struct {
	start  string
	budget int
	agents int
	act    int

	n      int            // number of active sites; position n is the start
	sites  []string       // active site IDs, ascending
	index  map[string]int // active site ID → position
	values []int

	// cost[from][to] = hops + activation, from ∈ [0, n], to ∈ [0, n).
	cost [][]int

	// order[from] lists the sites by ascending cost from 'from', index
	// tiebreak, so exhausted candidates can be cut off with a break.
	order [][]int
}

// newProblem validates the inputs, warms the oracle for the active sites plus
// the start and builds the cost matrix. An unreachable pair aborts here.
func newProblem(o *oracle.Oracle, start string, budget, agents, act int) (*problem, error) {
	if o == nil {
		return nil, ErrNilOracle
	}
	if budget < 0 || budget > MaxBudget {
		return nil, fmt.Errorf("%w: %d", ErrBudget, budget)
	}
	g := o.Graph()
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	active := g.ActiveSites()
	if err := o.BuildCache(append(active, start)); err != nil {
		return nil, err
	}

	n := len(active)
	p := &problem{
		start:  start,
		budget: budget,
		agents: agents,
		act:    act,
		n:      n,
		sites:  active,
		index:  make(map[string]int, n),
		values: make([]int, n),
		cost:   make([][]int, n+1),
		order:  make([][]int, n+1),
	}
	for i, id := range active {
		p.index[id] = i
		p.values[i] = g.Value(id)
	}

	for from := 0; from <= n; from++ {
		fromID := start
		if from < n {
			fromID = active[from]
		}
		row := make([]int, n)
		for to, toID := range active {
			d, err := o.Distance(fromID, toID)
			if err != nil {
				return nil, err
			}
			row[to] = d + act
		}
		p.cost[from] = row
		p.order[from] = sortedTargets(row)
	}

	return p, nil
}

// sortedTargets returns target indices ordered by ascending cost.
func sortedTargets(row []int) []int {
	out := make([]int, len(row))
	for i := range out {
		out[i] = i
	}
	sort.SliceStable(out, func(a, b int) bool { return row[out[a]] < row[out[b]] })

	return out
}

// move is one activation in index space.
type move struct {
	agent int
	site  int
	at    int
}

// result converts a move list into the public Result shape.
func (p *problem) result(value int, moves []move) Result {
	res := Result{
		Value:  value,
		Path:   make([]string, 0, len(moves)),
		Routes: make([][]string, p.agents),
		Steps:  make([]Step, len(moves)),
	}
	for k := range res.Routes {
		res.Routes[k] = []string{}
	}
	for i, m := range moves {
		id := p.sites[m.site]
		res.Steps[i] = Step{Agent: m.agent, Site: id, At: m.at}
		res.Routes[m.agent] = append(res.Routes[m.agent], id)
	}
	sort.SliceStable(res.Steps, func(a, b int) bool { return res.Steps[a].At > res.Steps[b].At })
	for _, s := range res.Steps {
		res.Path = append(res.Path, s.Site)
	}

	return res
}

// evaluate replays routes (one per agent) and returns their value.
func (p *problem) evaluate(routes [][]string) (int, []move, error) {
	if len(routes) > p.agents {
		return 0, nil, fmt.Errorf("%w: %d routes for %d agents", ErrInvalidRoute, len(routes), p.agents)
	}
	used := make([]bool, p.n)
	var (
		total int
		moves []move
	)
	for agent, route := range routes {
		rem, at := p.budget, p.n
		for _, id := range route {
			s, ok := p.index[id]
			if !ok {
				return 0, nil, fmt.Errorf("%w: %q is not an active site", ErrInvalidRoute, id)
			}
			if used[s] {
				return 0, nil, fmt.Errorf("%w: %q activated twice", ErrInvalidRoute, id)
			}
			c := p.cost[at][s]
			if c > rem {
				return 0, nil, fmt.Errorf("%w: %q needs %d, %d left", ErrInvalidRoute, id, c, rem)
			}
			used[s] = true
			rem, at = rem-c, s
			total += p.values[s] * rem
			moves = append(moves, move{agent: agent, site: s, at: rem})
		}
	}

	return total, moves, nil
}
