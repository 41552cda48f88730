package mesh

import "testing"

func TestAxisToLocalToWorldRoundTrip(t *testing.T) {
	world := [3]uint32{5, 9, 17}
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		local := a.ToLocal(world)
		got := a.ToWorld(local)
		if got != world {
			t.Errorf("axis %v: ToWorld(ToLocal(%v)) = %v, want %v", a, world, got, world)
		}
	}
}

func TestFaceReverseIsInvolution(t *testing.T) {
	for _, f := range [6]Face{PosX, PosY, PosZ, NegX, NegY, NegZ} {
		if f.Reverse().Reverse() != f {
			t.Errorf("face %v: Reverse(Reverse()) != self", f)
		}
		if f.Reverse().Axis() != f.Axis() {
			t.Errorf("face %v: reverse changed axis", f)
		}
	}
}

func TestFaceIsPositive(t *testing.T) {
	for _, f := range [3]Face{PosX, PosY, PosZ} {
		if !f.IsPositive() {
			t.Errorf("%v should be positive", f)
		}
	}
	for _, f := range [3]Face{NegX, NegY, NegZ} {
		if f.IsPositive() {
			t.Errorf("%v should not be positive", f)
		}
	}
}

func TestFromRawPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid face value")
		}
	}()
	FromRaw(99)
}
