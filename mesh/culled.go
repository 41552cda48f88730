package mesh

import (
	"math/bits"

	"github.com/gekko3d/voxelcore"
)

// FaceVisibilityProvider is the capability the mesher consumes: a single
// 8x8 bit plane of exposed faces for one (region, face, layer). Returning
// zero means no exposed faces in that plane. Ground: original_source
// meshing::culled::FaceVisibilityProvider.
type FaceVisibilityProvider interface {
	FaceVisibility(region [3]int, face Face, layer uint32) BitPlane
}

// trailingOnes counts the number of set bits starting at bit 0, i.e. the
// length of the lowest contiguous run of ones. Go's math/bits has no
// TrailingOnes, so it is derived from TrailingZeros64 of the complement —
// the idiomatic Go substitute for Rust's u64::trailing_ones(), still O(1).
func trailingOnes(v uint64) uint {
	return uint(bits.TrailingZeros64(^v))
}

// shiftRightChecked returns v>>i, or 0 if i >= 64 (a shift amount of 64 is
// undefined on some target machines per spec §9; Go itself defines shifts
// by >= the operand width as producing zero, but the check is kept
// explicit to document the invariant the way the original source does).
func shiftRightChecked(v uint64, i uint) uint64 {
	if i >= 64 {
		return 0
	}
	return v >> i
}

// MeshChunkPlane emits at most 64 vertices — one per exposed cell in the
// 8x8 micro-plane (region, face, layer) — into dest, which must have a
// length of at least 64 (it panics otherwise). Returns the number of
// vertices written.
//
// Algorithm: a bit-scan sweep over the 64-bit visibility word, grounded in
// original_source/game/src/meshing/culled.rs::mesh_chunk_plane.
func MeshChunkPlane(vis FaceVisibilityProvider, region [3]int, face Face, layer uint32, dest []uint32) int {
	if len(dest) < 64 {
		voxelcore.Panicf("mesh: destination buffer too small: len=%d, need >= 64", len(dest))
	}

	visibility := vis.FaceVisibility(region, face, layer).ToRaw()
	offset := [3]uint32{uint32(region[0]) * 8, uint32(region[1]) * 8, uint32(region[2]) * 8}

	size := 0
	i := uint(bits.TrailingZeros64(visibility))
	for i < 64 {
		run := trailingOnes(shiftRightChecked(visibility, i))
		for j := uint(0); j < run; j++ {
			k := i + j
			x := uint32(k) & 0x07
			y := uint32(k) >> 3
			worldPos := face.Axis().ToWorld([3]uint32{x, y, layer})
			dest[size] = EncodeVertex(
				byte(offset[0]+worldPos[0]),
				byte(offset[1]+worldPos[1]),
				byte(offset[2]+worldPos[2]),
				face,
				0,
			)
			size++
		}
		i += run
		i += uint(bits.TrailingZeros64(shiftRightChecked(visibility, i)))
	}

	return size
}
