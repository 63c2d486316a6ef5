package planner

// dual enumerates schedules for two agents sharing one unvisited set.
//
// While both agents are active, each level tries every ordered pair (i, j),
// i ≠ j, of affordable sites: agent a takes i and agent b takes j. Either
// agent may also retire, after which the other continues alone; this covers
// schedules where one route is longer than the other. When both tracks are
// identical (same position, same clock) the pair (j, i) mirrors (i, j) and
// only one of them is explored.
func (e *engine) dual(a, b track) error {
	if err := e.enter(); err != nil {
		return err
	}
	if e.hopeless(a, b) {
		return nil
	}
	if a.retired || b.retired {
		return e.solo(a, b)
	}

	canA, canB := e.canMove(a), e.canMove(b)
	if !canA && !canB {
		e.offer()
		return nil
	}
	mirror := a == b

	if canA && canB {
		if err := e.pairs(a, b, mirror); err != nil {
			return err
		}
	}
	if canB {
		if err := e.dual(a.retire(), b); err != nil {
			return err
		}
	}
	if canA && !mirror {
		if err := e.dual(a, b.retire()); err != nil {
			return err
		}
	}

	return nil
}

// pairs moves both agents at once.
func (e *engine) pairs(a, b track, mirror bool) error {
	for _, i := range e.p.order[a.at] {
		if e.visited[i] {
			continue
		}
		na, ok := e.claim(0, a, i)
		if !ok {
			break
		}
		for _, j := range e.p.order[b.at] {
			if e.visited[j] || (mirror && j < i) {
				continue
			}
			nb, ok := e.claim(1, b, j)
			if !ok {
				break
			}
			err := e.dual(na, nb)
			e.release()
			if err != nil {
				e.release()
				return err
			}
		}
		e.release()
	}

	return nil
}

// solo advances the one agent that has not retired.
func (e *engine) solo(a, b track) error {
	agent, tr := 0, a
	if a.retired {
		agent, tr = 1, b
	}

	moved := false
	if !tr.retired {
		for _, s := range e.p.order[tr.at] {
			if e.visited[s] {
				continue
			}
			next, ok := e.claim(agent, tr, s)
			if !ok {
				break
			}
			moved = true
			var err error
			if agent == 0 {
				err = e.dual(next, b)
			} else {
				err = e.dual(a, next)
			}
			e.release()
			if err != nil {
				return err
			}
		}
	}
	if !moved {
		e.offer()
	}

	return nil
}
