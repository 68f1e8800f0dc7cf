// ═══════════════════════════════════════════════════════════════════════════════════════════════
// LastCommittedValueTable
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// One committed value per PC, no eviction, no capacity bound. Unlike
// the predictor's own tables, this one is not fixed-size or
// tag-indexed: there is nothing to reclaim here, so a plain Go map is
// the direct shape for an open-ended PC keyspace.
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package lcvp

// LastCommittedValueTable remembers the most recently committed value
// for each PC seen so far. It never evicts: capacity management is out
// of scope for this table, and a map growing with the number of
// distinct PCs observed is the direct translation of that choice.
type LastCommittedValueTable struct {
	values map[uint64]uint64
}

// NewLastCommittedValueTable returns an empty table.
func NewLastCommittedValueTable() *LastCommittedValueTable {
	return &LastCommittedValueTable{values: make(map[uint64]uint64)}
}

// HasValue reports whether pc has ever been committed through Update.
func (t *LastCommittedValueTable) HasValue(pc uint64) bool {
	_, ok := t.values[pc]
	return ok
}

// Lookup returns the last committed value for pc and whether one
// exists. A PC with no committed value yet returns (0, false), never
// conflating "never committed" with "committed as zero".
func (t *LastCommittedValueTable) Lookup(pc uint64) (value uint64, ok bool) {
	value, ok = t.values[pc]
	return
}

// Update records value as pc's most recently committed value,
// overwriting whatever was there before.
func (t *LastCommittedValueTable) Update(pc uint64, value uint64) {
	t.values[pc] = value
}
