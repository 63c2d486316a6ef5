package planner

// single enumerates visit orders for one agent. For each unvisited site in
// ascending cost order: an unaffordable site ends the scan (every later
// site costs at least as much) after comparing the ledger with the
// incumbent; an affordable one is claimed, explored and released.
func (e *engine) single(tr track) error {
	if err := e.enter(); err != nil {
		return err
	}
	if e.hopeless(tr, track{retired: true}) {
		return nil
	}

	open := false
	for _, s := range e.p.order[tr.at] {
		if e.visited[s] {
			continue
		}
		open = true
		next, ok := e.claim(0, tr, s)
		if !ok {
			e.offer()
			break
		}
		err := e.single(next)
		e.release()
		if err != nil {
			return err
		}
	}
	if !open {
		e.offer()
	}

	return nil
}
