// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ValuePredictor - Top-Level Facade
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// ValuePredictor composes an EqualityPredictor with a
// LastCommittedValueTable. It converts an "is the next value equal to
// the last committed one" question answered by the equality predictor
// into an actual predicted value, and converts a newly committed value
// into the boolean the equality predictor trains on. Neither half knows
// about the other's existence. ValuePredictor is purely the wiring
// between them.
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package lcvp

// ValuePredictor predicts whether a load's value will equal the last
// value committed for its PC.
type ValuePredictor struct {
	Equality *EqualityPredictor
	LCVT     *LastCommittedValueTable
}

// NewValuePredictor composes the given EqualityPredictor with a fresh
// LastCommittedValueTable.
func NewValuePredictor(equality *EqualityPredictor) *ValuePredictor {
	return &ValuePredictor{
		Equality: equality,
		LCVT:     NewLastCommittedValueTable(),
	}
}

// ReferenceComponentConfigs returns a three-component reference
// geometry: sizes 1024/4096/8192, history lengths 8/16/32, indexed with
// 10/12/13 bits and tagged with 0/12/13 bits respectively (the first
// component carries no tag).
func ReferenceComponentConfigs() []ComponentConfig {
	return []ComponentConfig{
		{Size: 1024, GhistBits: 8, IndexBits: 10, TagBits: 0},
		{Size: 4096, GhistBits: 16, IndexBits: 12, TagBits: 12},
		{Size: 8192, GhistBits: 32, IndexBits: 13, TagBits: 13},
	}
}

// NewReferenceValuePredictor builds a ValuePredictor over the reference
// three-component geometry from ReferenceComponentConfigs.
func NewReferenceValuePredictor() *ValuePredictor {
	return NewValuePredictor(NewEqualityPredictor(ReferenceComponentConfigs()))
}

// Predict returns the predicted value for pc and the confidence behind
// it. It forces (Low, 0) whenever either half disagrees: the equality
// predictor not predicting "equal", or the LCVT having no value for pc
// yet (so there is nothing to predict regardless of how confident the
// equality predictor is).
func (vp *ValuePredictor) Predict(pc uint64) (Confidence, uint64) {
	confidence, equal := vp.Equality.Predict(pc)
	value, hasValue := vp.LCVT.Lookup(pc)
	if !equal || !hasValue {
		return Low, 0
	}
	return confidence, value
}

// OnValueCommit trains the equality predictor against the real outcome
// (whether value equals the previously committed value for pc), then
// commits value as pc's new last-committed value. wasEqual is computed
// against the LCVT's prior state, before this call's own overwrite. A PC
// with no prior committed value is never vacuously "equal", regardless
// of what value happens to be.
func (vp *ValuePredictor) OnValueCommit(pc uint64, value uint64) {
	prior, hadValue := vp.LCVT.Lookup(pc)
	wasEqual := hadValue && prior == value

	vp.Equality.OnValueCommit(pc, wasEqual)
	vp.LCVT.Update(pc, value)
}

// UpdateOnBranch, OnBranchCommit, and Squash pass straight through to
// the equality predictor; the LCVT carries no speculative state of its
// own to unwind.
func (vp *ValuePredictor) UpdateOnBranch(seq uint64, outcome bool) error {
	return vp.Equality.UpdateOnBranch(seq, outcome)
}

func (vp *ValuePredictor) OnBranchCommit(seq uint64) {
	vp.Equality.OnBranchCommit(seq)
}

func (vp *ValuePredictor) Squash(seq uint64) {
	vp.Equality.Squash(seq)
}
