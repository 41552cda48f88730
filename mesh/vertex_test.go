package mesh

import "testing"

func TestEncodeDecodeVertexRoundTrip(t *testing.T) {
	faces := [6]Face{PosX, PosY, PosZ, NegX, NegY, NegZ}
	for x := byte(0); x < 32; x += 7 {
		for y := byte(0); y < 32; y += 5 {
			for l := byte(0); l < 32; l += 3 {
				for _, f := range faces {
					encoded := EncodeVertex(x, y, l, f, 0)
					gx, gy, gl, gf, _ := DecodeVertex(encoded)
					if gx != x || gy != y || gl != l || gf != f {
						t.Fatalf("round trip (%d,%d,%d,%v) -> (%d,%d,%d,%v)", x, y, l, f, gx, gy, gl, gf)
					}
				}
			}
		}
	}
}

func TestEncodeVertexTextureField(t *testing.T) {
	encoded := EncodeVertex(1, 2, 3, PosZ, 511)
	_, _, _, _, texture := DecodeVertex(encoded)
	if texture != 511 {
		t.Errorf("texture = %d, want 511", texture)
	}
}

func TestExpandQuadNonDegeneratePerFace(t *testing.T) {
	for _, f := range [6]Face{PosX, PosY, PosZ, NegX, NegY, NegZ} {
		quad := ExpandQuad(1, 1, 1, f)
		if quad[0] == quad[1] || quad[1] == quad[2] {
			t.Errorf("face %v: degenerate triangle in %v", f, quad)
		}
	}
}
