package world

import "github.com/gekko3d/voxelcore/mesh"

// allFaces enumerates the six faces in the spec's canonical order:
// positives before negatives.
var allFaces = [6]mesh.Face{mesh.PosX, mesh.PosY, mesh.PosZ, mesh.NegX, mesh.NegY, mesh.NegZ}

// Run is the vertex span produced by one mesh.MeshChunkPlane call, tagged
// with the (face, region, layer) it came from so a caller can, for
// instance, rebuild per-face draw batches.
type Run struct {
	Face   mesh.Face
	Region [3]int
	Layer  uint32
	Count  int
}

// MeshChunk drives mesh.MeshChunkPlane over all six faces and all 64 layers
// of a chunk — the "glue that drives batched meshing over all six faces and
// layers of a chunk" spec §2 calls out as in-scope. regionOrigin is added to
// every computed micro-plane region before querying vis, letting a caller
// mesh a sub-cube of a larger visibility provider (normally [0,0,0] for a
// single chunk). Vertices are appended to dest, which grows as needed the
// same way append does; the per-(face,layer) run metadata is returned
// alongside it.
func MeshChunk(vis mesh.FaceVisibilityProvider, regionOrigin [3]int, dest []uint32) ([]uint32, []Run) {
	runs := make([]Run, 0, 6*ChunkVisSize*ChunkVisSize*ChunkVisSize)
	var scratch [64]uint32

	for _, face := range allFaces {
		axis := face.Axis()
		for perp1 := 0; perp1 < ChunkVisSize; perp1++ {
			for perp2 := 0; perp2 < ChunkVisSize; perp2++ {
				for regionAxis := 0; regionAxis < ChunkVisSize; regionAxis++ {
					local := axis.ToWorldInt([3]int{perp1, perp2, regionAxis})
					region := [3]int{
						local[0] + regionOrigin[0],
						local[1] + regionOrigin[1],
						local[2] + regionOrigin[2],
					}
					for layer := uint32(0); layer < 8; layer++ {
						n := mesh.MeshChunkPlane(vis, region, face, layer, scratch[:])
						if n == 0 {
							continue
						}
						dest = append(dest, scratch[:n]...)
						runs = append(runs, Run{Face: face, Region: region, Layer: layer, Count: n})
					}
				}
			}
		}
	}

	return dest, runs
}
