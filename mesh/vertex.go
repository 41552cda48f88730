package mesh

import "github.com/go-gl/mathgl/mgl32"

// EncodeVertex packs one emitted corner into a single 32-bit word per
// spec §4.4: bits 0..5 local-x, 5..10 local-y, 10..15 layer/local-z,
// 15..19 face, remaining bits reserved for a texture/material id —
// exercised here rather than left idle, supplementing
// original_source/game/src/meshing/vertex.rs's 16-bit texture field that
// the later nvm_v3d revision dropped.
func EncodeVertex(x, y, layer byte, face Face, texture uint16) uint32 {
	return uint32(x&0x1F) |
		uint32(y&0x1F)<<5 |
		uint32(layer&0x1F)<<10 |
		(uint32(face)&0x0F)<<15 |
		(uint32(texture)&0x1FFF)<<19
}

// DecodeVertex is the exact inverse of EncodeVertex. An out-of-range face
// field is a hard error (via Face's own validation).
func DecodeVertex(vert uint32) (x, y, layer byte, face Face, texture uint16) {
	x = byte(vert & 0x1F)
	y = byte((vert >> 5) & 0x1F)
	layer = byte((vert >> 10) & 0x1F)
	face = FromRaw(uint16((vert >> 15) & 0x0F))
	texture = uint16((vert >> 19) & 0x1FFF)
	return
}

type ivec3 [3]int32

func (v ivec3) add(o ivec3) ivec3 { return ivec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v ivec3) abs() ivec3        { return ivec3{iabs(v[0]), iabs(v[1]), iabs(v[2])} }
func (v ivec3) dotOne() int32     { return v[0] + v[1] + v[2] }
func (v ivec3) maxZero() ivec3 {
	return ivec3{max32(v[0], 0), max32(v[1], 0), max32(v[2], 0)}
}

func iabs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// faceBasis returns (u-axis, v-axis, normal) for a face, matching the
// winding table of original_source's get_face_basis.
func faceBasis(f Face) [3]ivec3 {
	switch f {
	case PosX:
		return [3]ivec3{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}
	case PosY:
		return [3]ivec3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	case PosZ:
		return [3]ivec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case NegX:
		return [3]ivec3{{0, 0, 1}, {0, -1, 0}, {-1, 0, 0}}
	case NegY:
		return [3]ivec3{{-1, 0, 0}, {0, 0, 1}, {0, -1, 0}}
	default: // NegZ
		return [3]ivec3{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	}
}

// ExpandQuad is the offline debug/export path (§4.4, "Quad expansion"):
// given a local (x, y, layer, face), look up the face basis and emit the
// four corners as two counter-clockwise-wound triangles whose outward
// normal matches the face. Used only by tooling that wants to export raw
// triangles instead of the packed vertex stream; the renderer is expected
// to consume EncodeVertex's output directly.
func ExpandQuad(x, y, layer byte, face Face) [6]mgl32.Vec3 {
	basis := faceBasis(face)
	basisAbs := [3]ivec3{basis[0].abs(), basis[1].abs(), basis[2].abs()}

	sum := basis[0].add(basis[1]).add(basis[2])
	offsetCorner := ivec3{1, 1, 1}.add(negate(sum.maxZero()))
	offsetPosition := basisAbs[0].scale(int32(x)).add(basisAbs[1].scale(int32(y))).add(basisAbs[2].scale(int32(layer)))
	offsetBase := offsetCorner.add(offsetPosition)

	p := [4]ivec3{
		offsetBase,
		offsetBase.add(basis[0]),
		offsetBase.add(basis[1]),
		offsetBase.add(basis[0]).add(basis[1]),
	}

	var order [6]ivec3
	if basis[2].dotOne() < 0 {
		order = [6]ivec3{p[0], p[1], p[2], p[3], p[2], p[1]}
	} else {
		order = [6]ivec3{p[0], p[2], p[1], p[3], p[1], p[2]}
	}

	var out [6]mgl32.Vec3
	for i, c := range order {
		out[i] = mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])}
	}
	return out
}

func negate(v ivec3) ivec3        { return ivec3{-v[0], -v[1], -v[2]} }
func (v ivec3) scale(s int32) ivec3 { return ivec3{v[0] * s, v[1] * s, v[2] * s} }
