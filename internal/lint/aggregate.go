package lint

import (
	"slices"
	"sync"
)

// Aggregator merges per-file results into one deduplicated set of findings.
//
// Merge may be called concurrently by scan workers. Exact duplicates (equal
// on every Finding field) are suppressed, which makes merging idempotent:
// merging a result with itself changes nothing.
type Aggregator struct {
	mu       sync.Mutex
	seen     map[Finding]struct{}
	findings []Finding
}

// NewAggregator is the [Aggregator] constructor.
func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[Finding]struct{})}
}

// Add records a single finding unless an exact duplicate was seen before.
func (a *Aggregator) Add(f Finding) {
	a.mu.Lock()
	a.add(f)
	a.mu.Unlock()
}

// Merge records every finding of the given result, suppressing duplicates.
func (a *Aggregator) Merge(res Result) {
	a.mu.Lock()
	for _, f := range res {
		a.add(f)
	}
	a.mu.Unlock()
}

func (a *Aggregator) add(f Finding) {
	if _, ok := a.seen[f]; ok {
		return
	}
	a.seen[f] = struct{}{}
	a.findings = append(a.findings, f)
}

// Len returns the number of distinct findings collected so far.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.findings)
}

// Result returns a sorted snapshot of all collected findings. The snapshot
// is a copy: callers may not reach the aggregator's internal state through
// it, and later merges do not disturb snapshots already taken.
func (a *Aggregator) Result() Result {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(Result, len(a.findings))
	copy(out, a.findings)
	slices.SortFunc(out, Finding.Compare)
	return out
}
