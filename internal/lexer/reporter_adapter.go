package lexer

import "cscan/internal/diag"

// ReporterAdapter адаптирует diag.Bag для лексера: повторы одной и той же
// ошибки (keep-going режим) отбрасываются.
type ReporterAdapter struct {
	Bag   *diag.Bag
	dedup *diag.DedupReporter
}

// Reporter returns a diag.Reporter that forwards unique diagnostics to the bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	if r.dedup == nil {
		r.dedup = diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
	}
	return r.dedup
}

// Suppressed returns how many repeated diagnostics were dropped.
func (r *ReporterAdapter) Suppressed() int {
	return r.dedup.Suppressed()
}
