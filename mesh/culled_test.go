package mesh

import "testing"

type constVisibility BitPlane

func (c constVisibility) FaceVisibility(region [3]int, face Face, layer uint32) BitPlane {
	return BitPlane(c)
}

func TestMeshChunkPlaneBitScanSweep(t *testing.T) {
	vis := constVisibility(0xFF00FF00FF00FF00)
	var dest [64]uint32
	n := MeshChunkPlane(vis, [3]int{0, 0, 0}, PosZ, 0, dest[:])
	if n != 32 {
		t.Fatalf("vertex count = %d, want 32", n)
	}
	for i := 0; i < n; i++ {
		x, y, _, _, _ := DecodeVertex(dest[i])
		_ = x
		if y != 1 && y != 3 && y != 5 && y != 7 {
			t.Errorf("vertex %d has y=%d, want one of {1,3,5,7}", i, y)
		}
	}
}

func TestMeshChunkPlanePanicsOnSmallDest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on undersized dest")
		}
	}()
	var dest [10]uint32
	MeshChunkPlane(constVisibility(0), [3]int{0, 0, 0}, PosX, 0, dest[:])
}
