package lcvp

import "testing"

func TestLastCommittedValueTableMissOnUnseenPC(t *testing.T) {
	lcvt := NewLastCommittedValueTable()
	if lcvt.HasValue(0x10) {
		t.Fatal("fresh table must not have a value for any pc")
	}
	value, ok := lcvt.Lookup(0x10)
	if ok || value != 0 {
		t.Fatalf("Lookup on unseen pc = (%d,%v), want (0,false)", value, ok)
	}
}

func TestLastCommittedValueTableUpdateThenLookup(t *testing.T) {
	lcvt := NewLastCommittedValueTable()
	lcvt.Update(0x10, 7)

	if !lcvt.HasValue(0x10) {
		t.Fatal("HasValue must report true after Update")
	}
	value, ok := lcvt.Lookup(0x10)
	if !ok || value != 7 {
		t.Fatalf("Lookup = (%d,%v), want (7,true)", value, ok)
	}
}

func TestLastCommittedValueTableOverwrite(t *testing.T) {
	lcvt := NewLastCommittedValueTable()
	lcvt.Update(0x10, 7)
	lcvt.Update(0x10, 9)

	value, ok := lcvt.Lookup(0x10)
	if !ok || value != 9 {
		t.Fatalf("Lookup after overwrite = (%d,%v), want (9,true)", value, ok)
	}
}

func TestLastCommittedValueTableZeroValueIsDistinctFromAbsent(t *testing.T) {
	lcvt := NewLastCommittedValueTable()
	lcvt.Update(0x10, 0)

	if !lcvt.HasValue(0x10) {
		t.Fatal("committing value 0 must still count as having a value")
	}
	value, ok := lcvt.Lookup(0x10)
	if !ok || value != 0 {
		t.Fatalf("Lookup = (%d,%v), want (0,true)", value, ok)
	}
}

func TestLastCommittedValueTableTracksPerPC(t *testing.T) {
	lcvt := NewLastCommittedValueTable()
	lcvt.Update(0x10, 7)
	lcvt.Update(0x20, 42)

	if v, _ := lcvt.Lookup(0x10); v != 7 {
		t.Fatalf("pc 0x10 = %d, want 7", v)
	}
	if v, _ := lcvt.Lookup(0x20); v != 42 {
		t.Fatalf("pc 0x20 = %d, want 42", v)
	}
}
