package planner

// Ledger accumulates value contributions bucketed by the remaining time at
// which they were collected. Add and Remove are exact inverses, so a
// recursive search can undo a branch in O(1) without recomputing the sum
// of the rest of the path.
//
// Total is maintained incrementally; Sum recomputes it from the buckets.
type Ledger struct {
	buckets []int
	total   int
}

// NewLedger returns a ledger with budget+1 buckets (indices 0..budget).
func NewLedger(budget int) *Ledger {
	return &Ledger{buckets: make([]int, budget+1)}
}

// Add records amount collected with at time units remaining.
func (l *Ledger) Add(at, amount int) {
	l.buckets[at] += amount
	l.total += amount
}

// Remove undoes a previous Add with the same arguments.
func (l *Ledger) Remove(at, amount int) {
	l.buckets[at] -= amount
	l.total -= amount
}

// Total returns the current sum of all contributions.
func (l *Ledger) Total() int { return l.total }

// Sum recomputes the total from the buckets.
func (l *Ledger) Sum() int {
	s := 0
	for _, v := range l.buckets {
		s += v
	}

	return s
}

// Bucket returns the contributions recorded at remaining time at.
func (l *Ledger) Bucket(at int) int { return l.buckets[at] }

// Len returns the number of buckets.
func (l *Ledger) Len() int { return len(l.buckets) }
