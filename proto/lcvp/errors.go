// ═══════════════════════════════════════════════════════════════════════════════════════════════
// Error Kinds
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// Three kinds of failure, handled three different ways:
//
//   - Configuration error: refused at construction, via panic. A
//     predictor built with an invalid geometry never exists.
//   - SpecOverflow: a normal, caller-handleable condition. Returned as
//     an error value, never panics.
//   - Protocol violation: a programming bug (retiring branches out of
//     order). There is no sane recovery, so it panics like the rest of
//     this package's "should be structurally impossible" checks.
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package lcvp

import "errors"

// ErrSpecOverflow is returned by EqualityPredictor.UpdateOnBranch (and,
// through it, ValuePredictor.UpdateOnBranch) when the speculative branch
// queue is already at MaxBranchSpecDistance. The failed call leaves
// predictor state unchanged.
var ErrSpecOverflow = errors.New("lcvp: speculative branch queue at capacity")
