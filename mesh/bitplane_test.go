package mesh

import "testing"

func TestBitPlaneSetGet(t *testing.T) {
	var p BitPlane
	p.Mark(9)
	if !p.Get(9) {
		t.Error("bit 9 should be set")
	}
	if p.Get(8) || p.Get(10) {
		t.Error("neighbouring bits should be clear")
	}
}

func TestBitPlaneIdxAtRoundTrip(t *testing.T) {
	var p BitPlane
	p.MarkAt(3, 5)
	if !p.GetAt(3, 5) {
		t.Error("(3,5) should be set")
	}
	want := BitPlane(1) << IdxFromPos(3, 5)
	if p != want {
		t.Errorf("plane = %#x, want %#x", p.ToRaw(), want.ToRaw())
	}
	x, y := PosFromIdx(IdxFromPos(3, 5))
	if x != 3 || y != 5 {
		t.Errorf("PosFromIdx round trip = (%d,%d), want (3,5)", x, y)
	}
}

func TestBitPlaneBooleanOps(t *testing.T) {
	a := BitPlane(0b1100)
	b := BitPlane(0b1010)
	if a.And(b) != 0b1000 {
		t.Errorf("And = %#b, want 0b1000", a.And(b).ToRaw())
	}
	if a.Or(b) != 0b1110 {
		t.Errorf("Or = %#b, want 0b1110", a.Or(b).ToRaw())
	}
	if a.Xor(b) != 0b0110 {
		t.Errorf("Xor = %#b, want 0b0110", a.Xor(b).ToRaw())
	}
	if BitPlane(0).Not() != ^BitPlane(0) {
		t.Error("Not(0) should be all ones")
	}
}
