package light

import (
	"github.com/gekko3d/voxelcore"
	"github.com/gekko3d/voxelcore/pos"
	"github.com/google/uuid"
)

// StorageWorld is a sparse map from chunk position to its StorageChunk,
// created lazily: a chunk with no light in it yet need not exist in the map
// at all, and GetChannel treats an absent chunk as entirely dark.
type StorageWorld struct {
	id     uuid.UUID
	log    voxelcore.Logger
	chunks map[pos.Chunk]*StorageChunk
}

// NewStorageWorld returns an empty world with no chunks allocated.
func NewStorageWorld() *StorageWorld {
	return &StorageWorld{id: uuid.New(), log: voxelcore.NewNopLogger(), chunks: make(map[pos.Chunk]*StorageChunk)}
}

// ID is a debug tag identifying this world instance in logs, same role as
// world.ChunkStorage.ID — distinct worlds raised concurrently stay
// distinguishable in a shared log stream.
func (w *StorageWorld) ID() uuid.UUID { return w.id }

// SetLogger attaches a diagnostic sink; nil resets to a no-op logger. A
// *voxelcore.DefaultLogger is scoped with Tagged to this world's own ID.
// Never required for correctness.
func (w *StorageWorld) SetLogger(l voxelcore.Logger) {
	if l == nil {
		w.log = voxelcore.NewNopLogger()
		return
	}
	if d, ok := l.(*voxelcore.DefaultLogger); ok {
		w.log = d.Tagged(w.id.String())
		return
	}
	w.log = l
}

// GetChannel reads the light level at a global position, returning 0 if its
// chunk has never been touched.
func (w *StorageWorld) GetChannel(p pos.World, channel int) uint8 {
	chunk, block := p.ToChunkAndBlock()
	c, ok := w.chunks[chunk.Normalize()]
	if !ok {
		return 0
	}
	return c.GetChannel(block.ToIdx(), channel)
}

// GetOrCreateChunk returns the StorageChunk at chunkPos, allocating an
// all-dark one on first access.
func (w *StorageWorld) GetOrCreateChunk(chunkPos pos.Chunk) *StorageChunk {
	chunkPos = chunkPos.Normalize()
	c, ok := w.chunks[chunkPos]
	if !ok {
		c = NewStorageChunk()
		w.chunks[chunkPos] = c
		w.log.Debugf("light: world %s allocated chunk %v", w.id, chunkPos)
	}
	return c
}

// GetChunk returns the StorageChunk at chunkPos and whether it has been
// created, without allocating one.
func (w *StorageWorld) GetChunk(chunkPos pos.Chunk) (*StorageChunk, bool) {
	c, ok := w.chunks[chunkPos.Normalize()]
	return c, ok
}
