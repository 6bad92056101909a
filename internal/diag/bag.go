package diag

import "sort"

// Bag collects diagnostics up to a fixed limit. Diagnostics over the limit
// are dropped but still counted, so a full bag cannot hide an error outcome.
type Bag struct {
	items         []Diagnostic
	max           int
	dropped       int
	droppedErrors int
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, max),
		max:   max,
	}
}

// Add appends d unless the limit is reached. Returns false when dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		b.dropped++
		if d.Severity >= SevError {
			b.droppedErrors++
		}
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Dropped returns how many diagnostics were discarded over the limit.
func (b *Bag) Dropped() int { return b.dropped }

// HasErrors reports whether any diagnostic added so far is an error,
// dropped ones included.
func (b *Bag) HasErrors() bool {
	if b.droppedErrors > 0 {
		return true
	}
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the collected diagnostics. Do not modify the result.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by code, subject, then message, severity descending
// on ties, for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		if di.Subject != dj.Subject {
			return di.Subject < dj.Subject
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Message < dj.Message
	})
}
