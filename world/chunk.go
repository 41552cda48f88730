// Package world stores one cubic chunk of tile identifiers plus the
// precomputed per-axis visibility bitmask the mesher consumes. Ground:
// original_source/game/src/world/chunk_storage.rs (notverymoe/rs_voxels).
package world

import (
	"github.com/gekko3d/voxelcore"
	"github.com/gekko3d/voxelcore/mesh"
	"github.com/gekko3d/voxelcore/pos"
	"github.com/gekko3d/voxelcore/tile"
	"github.com/google/uuid"
)

const (
	// ChunkSize is voxels per chunk side.
	ChunkSize = pos.ChunkSize
	// ChunkLength is the number of cells in a chunk.
	ChunkLength = pos.ChunkLength
	// ChunkVisSize is micro-planes per chunk side.
	ChunkVisSize = pos.ChunkVisSize

	visPlanesPerAxis = ChunkVisSize * ChunkVisSize * ChunkSize
	visDataLength    = 3 * visPlanesPerAxis
)

// ChunkStorage is a fixed-size cube of tile identifiers plus a visibility
// index: for each of the three principal axes, a stack of 8x8 bit planes
// covering the chunk, each bit telling whether the corresponding cell is
// opaque.
type ChunkStorage struct {
	id          uuid.UUID
	log         voxelcore.Logger
	identifiers [ChunkLength]tile.Identifier
	visData     [visDataLength]mesh.BitPlane
}

// NewChunkStorage allocates an empty chunk: all tiles default (air), all
// visibility bits clear.
func NewChunkStorage() *ChunkStorage {
	return &ChunkStorage{id: uuid.New(), log: voxelcore.NewNopLogger()}
}

// ID is a debug tag identifying this chunk instance in logs, distinct from
// any PosChunk — a chunk can be relocated without changing its ID.
func (c *ChunkStorage) ID() uuid.UUID { return c.id }

// SetLogger attaches a diagnostic sink; nil resets to a no-op logger. A
// *voxelcore.DefaultLogger is scoped with Tagged to this chunk's own ID so
// traces from many concurrently-meshed chunks stay distinguishable in a
// shared log stream. Never required for correctness.
func (c *ChunkStorage) SetLogger(l voxelcore.Logger) {
	if l == nil {
		c.log = voxelcore.NewNopLogger()
		return
	}
	if d, ok := l.(*voxelcore.DefaultLogger); ok {
		c.log = d.Tagged(c.id.String())
		return
	}
	c.log = l
}

// Update writes id into the cell at pos and keeps the three per-axis
// visibility planes coherent with solid. Concurrent calls on the same
// ChunkStorage are undefined — the spec mandates a single writer.
func (c *ChunkStorage) Update(p pos.Block, id tile.Identifier, solid bool) {
	c.identifiers[p.ToIdx()] = id

	xIdx, xVis := visSlot(p, mesh.AxisX)
	if c.visData[xVis].Get(xIdx) == solid {
		// Identity-preserving fast path: under the invariant the three axes
		// must agree, so checking one plane suffices to decide whether any
		// write is needed at all.
		return
	}

	yIdx, yVis := visSlot(p, mesh.AxisY)
	zIdx, zVis := visSlot(p, mesh.AxisZ)
	c.visData[xVis].Set(xIdx, solid)
	c.visData[yVis].Set(yIdx, solid)
	c.visData[zVis].Set(zIdx, solid)

	c.log.Debugf("world: chunk %s update idx=%d solid=%v", c.id, p.ToIdx(), solid)
}

// Get returns the tile identifier at pos.
func (c *ChunkStorage) Get(p pos.Block) tile.Identifier {
	return c.identifiers[p.ToIdx()]
}

// visSlot derives the [bit index, plane index] pair for pos on axis, per
// spec §4.3's "Slot derivation": one contiguous run of CHUNK_SIZE layers per
// (micro_x, micro_y) column, three such sub-cubes side by side, one per
// axis.
func visSlot(p pos.Block, axis mesh.Axis) (bitIdx, planeIdx uint32) {
	u, v, layer := visIdxAndLayer(p, axis)
	return bitIdx2(u, v), planeIdxBase(axis, u, v) + layer
}

// visIdxAndLayer returns the micro-plane-local coordinates (u, v, each
// 0..ChunkSize) and the absolute layer along axis for pos.
func visIdxAndLayer(p pos.Block, axis mesh.Axis) (u, v, layer uint32) {
	local := axis.ToLocal([3]uint32{uint32(p.X), uint32(p.Y), uint32(p.Z)})
	return local[0], local[1], local[2]
}

func bitIdx2(u, v uint32) uint32 {
	return (u & 0x07) | ((v & 0x07) << 3)
}

// planeIdxBase is the index of layer 0 of the plane column for micro-column
// (u>>3, v>>3) on axis.
func planeIdxBase(axis mesh.Axis, u, v uint32) uint32 {
	start := uint32(axis) * visPlanesPerAxis
	offXY := (u>>3)*ChunkSize + (v>>3)*ChunkVisSize*ChunkSize
	return start + offXY
}

// blockAt converts a region index (in micro-planes of 8) into the Block
// position of its first voxel.
func blockAt(region [3]int) pos.Block {
	return pos.NewBlock(int16(region[0]*8), int16(region[1]*8), int16(region[2]*8))
}

// FaceVisibility implements mesh.FaceVisibilityProvider: base plane AND NOT
// the neighbouring plane on the side face points toward. Chunk boundaries
// cull to zero — everything on the chunk edge is exposed to the outside;
// inter-chunk culling is the caller's responsibility (see
// MultiChunkFaceVisibility for the opt-in alternative).
func (c *ChunkStorage) FaceVisibility(region [3]int, face mesh.Face, layer uint32) mesh.BitPlane {
	basePos := blockAt(region)
	axis := face.Axis()
	u, v, baseLayer := visIdxAndLayer(basePos, axis)
	base := planeIdxBase(axis, u, v)

	absLayer := baseLayer + layer
	basePlane := c.visData[base+absLayer]

	var cullPlane mesh.BitPlane
	if face.IsPositive() {
		if absLayer > 0 {
			cullPlane = c.visData[base+absLayer-1]
		}
	} else if absLayer < ChunkSize-1 {
		cullPlane = c.visData[base+absLayer+1]
	}

	return basePlane.And(cullPlane.Not())
}
