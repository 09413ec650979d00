package match

import "cs2-localizer/core/normalize"

// Outcome classifies what happened to one record.
type Outcome string

const (
	OutcomeTranslated Outcome = "translated"
	OutcomeUnmatched  Outcome = "unmatched"
	OutcomeAlreadyCJK Outcome = "already_translated"
	OutcomeSkipped    Outcome = "skipped"
)

// Result is the detailed result of translating one record.
type Result struct {
	Record   Record
	Outcome  Outcome
	Strategy string
}

// Stats summarizes a batch.
type Stats struct {
	Total      int            `json:"total"`
	Translated int            `json:"translated"`
	Skipped    int            `json:"skipped"`
	Unmatched  int            `json:"unmatched"`
	ByStrategy map[string]int `json:"by_strategy"`
}

// ProgressFunc is called while a batch runs.
type ProgressFunc func(done, total, translated int)

// Engine binds a table to the indexes built from its reference data.
type Engine struct {
	table *Table
	index *IndexSet
}

// BuildIndex indexes every object in refs. Non-objects are ignored, and an empty list yields an
// empty index set.
func BuildIndex(t *Table, refs []Record) *IndexSet {
	ix := NewIndexSet()
	if t.Index == nil {
		return ix
	}
	for _, ref := range refs {
		if !ref.IsObject() {
			continue
		}
		t.Index(ix, ref)
	}
	return ix
}

// NewEngine builds the indexes for refs.
func NewEngine(t *Table, refs []Record) *Engine {
	return &Engine{table: t, index: BuildIndex(t, refs)}
}

// Table returns the category table.
func (e *Engine) Table() *Table {
	return e.table
}

// Index returns the built index set.
func (e *Engine) Index() *IndexSet {
	return e.index
}

// TranslateRecord returns rec with its name translated, or rec itself when nothing changes.
func (e *Engine) TranslateRecord(rec Record, opts Options) Record {
	return e.Resolve(rec, opts).Record
}

// Resolve runs the strategy chain for one record.
func (e *Engine) Resolve(rec Record, opts Options) Result {
	if !rec.IsObject() {
		return Result{Record: rec, Outcome: OutcomeSkipped}
	}

	name := rec.String(e.table.NameField)
	if normalize.ContainsCJK(name) {
		return Result{Record: rec, Outcome: OutcomeAlreadyCJK}
	}
	if e.table.RequireName && name == "" {
		return Result{Record: rec, Outcome: OutcomeUnmatched}
	}

	in := Input{Record: rec, Name: name, Options: opts}
	for _, s := range e.table.Strategies {
		m, ok := s.Resolve(e.index, in)
		if !ok {
			continue
		}
		if m.Strategy == "" {
			m.Strategy = s.Name
		}

		// The first hit ends the chain even when it turns out to change nothing.
		translated := e.table.Render(m, in)
		if translated == "" || translated == name {
			return Result{Record: rec, Outcome: OutcomeUnmatched, Strategy: m.Strategy}
		}
		out, err := rec.With(e.table.NameField, translated)
		if err != nil {
			return Result{Record: rec, Outcome: OutcomeUnmatched, Strategy: m.Strategy}
		}
		return Result{Record: out, Outcome: OutcomeTranslated, Strategy: m.Strategy}
	}

	return Result{Record: rec, Outcome: OutcomeUnmatched}
}

// Apply translates every record in order. The returned slice is new and has the same length.
func (e *Engine) Apply(recs []Record, opts Options, progress ...ProgressFunc) ([]Record, Stats) {
	out := make([]Record, len(recs))
	stats := Stats{Total: len(recs), ByStrategy: make(map[string]int)}

	for i, rec := range recs {
		res := e.Resolve(rec, opts)
		out[i] = res.Record

		switch res.Outcome {
		case OutcomeTranslated:
			stats.Translated++
			stats.ByStrategy[res.Strategy]++
		case OutcomeSkipped:
			stats.Skipped++
		case OutcomeUnmatched:
			stats.Unmatched++
		}

		for _, fn := range progress {
			fn(i+1, len(recs), stats.Translated)
		}
	}

	return out, stats
}
