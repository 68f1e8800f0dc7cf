// ═══════════════════════════════════════════════════════════════════════════════════════════════
// Component - Tagged Direct-Mapped Table
// ═══════════════════════════════════════════════════════════════════════════════════════════════
//
// One Component is one history length's worth of predictor state: a
// direct-mapped array of Entry backed by its own PathTracker. Entries
// are zero-initialized at construction, overwritten wholesale on
// allocation, and otherwise mutated in place by on-commit updates.
// There is no separate entry lifecycle beyond those two paths.
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package lcvp

// Component is a direct-mapped, tagged table for one history length.
type Component struct {
	entries []Entry
	path    *PathTracker
}

// NewComponent builds a zero-initialized table of size entries backed by
// a PathTracker with the given history geometry. size smaller than
// 1<<indexBits cannot address every slot the tracker can compute and is
// refused here rather than left to panic later on an out-of-range index.
func NewComponent(size, ghistBits, indexBits, tagBits int) *Component {
	if indexBits > 0 && size < (1<<uint(indexBits)) {
		panic("lcvp: Component: size smaller than 1<<index_bits")
	}
	return &Component{
		entries: make([]Entry, size),
		path:    NewPathTracker(ghistBits, indexBits, tagBits),
	}
}

// LookupConflict returns the entry at the PC's index regardless of tag,
// i.e. whatever currently occupies that direct-mapped slot.
func (c *Component) LookupConflict(pc uint64) *Entry {
	return &c.entries[c.path.GetIndex(pc)]
}

// Lookup returns the entry at the PC's index and whether its stored tag
// matches the PC's tag. A tagless component (TagBits == 0) always hits.
func (c *Component) Lookup(pc uint64) (entry *Entry, hit bool) {
	e := &c.entries[c.path.GetIndex(pc)]
	return e, e.Tag == c.path.GetTag(pc)
}

// Allocate overwrites the slot at the PC's index with a fresh entry
// carrying the PC's tag, then applies a single update with outcome.
func (c *Component) Allocate(pc uint64, outcome bool) {
	idx := c.path.GetIndex(pc)
	c.entries[idx] = newEntry(c.path.GetTag(pc), outcome)
}

// OnCommit applies an update to the slot at the PC's index, but only if
// the stored tag still matches: a no-op on a stale or never-allocated
// slot.
func (c *Component) OnCommit(pc uint64, outcome bool) {
	e, hit := c.Lookup(pc)
	if hit {
		e.Update(outcome)
	}
}

// AddBranch and RevertBranches delegate straight through to the
// component's PathTracker; the table itself holds no speculative state
// beyond what the tracker owns.
func (c *Component) AddBranch(outcome bool) { c.path.AddBranch(outcome) }
func (c *Component) RevertBranches(n int)   { c.path.RevertBranches(n) }

// HistoryLen reports the component's configured GhistBits.
// EqualityPredictor keeps components in the order given and does not
// sort by it.
func (c *Component) HistoryLen() int { return c.path.GhistBits }
