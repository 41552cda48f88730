package world

import "github.com/gekko3d/voxelcore/mesh"

// MultiChunkFaceVisibility is the "future external visibility provider
// wrapping six adjacent chunks" spec.md's Open Questions section describes
// but leaves unbuilt: a second, opt-in implementation of
// mesh.FaceVisibilityProvider that resolves a chunk-boundary cull plane
// from the true neighbour chunk instead of treating the boundary as fully
// exposed. ChunkStorage.FaceVisibility's own boundary behaviour is
// unchanged — this type is additive, layered on top.
//
// Ground: original_source/game/src/world/chunk_face_vis_provider.rs
// (ChunkFaceVisibilityProvider), generalized from its 8-layer ChunkVis
// abstraction to operate directly on ChunkStorage's 64-layer columns.
type MultiChunkFaceVisibility struct {
	Center *ChunkStorage
	// Neighbors is indexed by mesh.Face: Neighbors[mesh.PosX] is the chunk
	// one step in the +X direction from Center, and so on. A nil entry
	// falls back to ChunkStorage's own boundary-is-exposed policy.
	Neighbors [6]*ChunkStorage
}

func axisNegFace(a mesh.Axis) mesh.Face {
	switch a {
	case mesh.AxisX:
		return mesh.NegX
	case mesh.AxisY:
		return mesh.NegY
	default:
		return mesh.NegZ
	}
}

func axisPosFace(a mesh.Axis) mesh.Face {
	switch a {
	case mesh.AxisX:
		return mesh.PosX
	case mesh.AxisY:
		return mesh.PosY
	default:
		return mesh.PosZ
	}
}

// FaceVisibility implements mesh.FaceVisibilityProvider.
func (m *MultiChunkFaceVisibility) FaceVisibility(region [3]int, face mesh.Face, layer uint32) mesh.BitPlane {
	axis := face.Axis()
	basePos := blockAt(region)
	u, v, baseLayer := visIdxAndLayer(basePos, axis)
	base := planeIdxBase(axis, u, v)
	absLayer := baseLayer + layer
	basePlane := m.Center.visData[base+absLayer]

	var cullPlane mesh.BitPlane
	switch {
	case face.IsPositive() && absLayer > 0:
		cullPlane = m.Center.visData[base+absLayer-1]
	case face.IsPositive():
		cullPlane = m.neighborPlane(axisNegFace(axis), u, v, ChunkSize-1)
	case !face.IsPositive() && absLayer < ChunkSize-1:
		cullPlane = m.Center.visData[base+absLayer+1]
	default:
		cullPlane = m.neighborPlane(axisPosFace(axis), u, v, 0)
	}

	return basePlane.And(cullPlane.Not())
}

func (m *MultiChunkFaceVisibility) neighborPlane(nf mesh.Face, u, v, layer uint32) mesh.BitPlane {
	n := m.Neighbors[nf]
	if n == nil {
		return mesh.BitPlane(0)
	}
	base := planeIdxBase(nf.Axis(), u, v)
	return n.visData[base+layer]
}
