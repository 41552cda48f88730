// Package light implements multi-channel flood-fill lighting over the
// sparse chunk world: per-block light levels raised monotonically and
// propagated outward by a bounded-transmission queue.
//
// Ground: original_source/crates/nvm_v3d/src/lighting/{storage_chunk,
// storage_world,update,mod}.rs (notverymoe/rs_voxels).
package light

import "github.com/gekko3d/voxelcore/pos"

// Channels is the number of independent light channels a cell carries: red,
// green, blue block light plus sunlight.
const Channels = 4

// SunlightChannel is the reserved channel index fed by RaiseSunlight
// rather than a colored block light source.
const SunlightChannel = 3

// StorageChunk holds the four light channels for every cell of one chunk.
type StorageChunk struct {
	data [pos.ChunkLength][Channels]uint8
}

// NewStorageChunk allocates a chunk with every channel at zero.
func NewStorageChunk() *StorageChunk {
	return &StorageChunk{}
}

// RaiseChannel sets data[idx][channel] to value if value is strictly
// greater than the current level, reporting whether it changed anything.
// Light values only ever move up through this call — darkening is a
// separate, unimplemented removal pass (see SPEC_FULL.md's Open Questions).
func (c *StorageChunk) RaiseChannel(idx int, channel int, value uint8) bool {
	if c.data[idx][channel] < value {
		c.data[idx][channel] = value
		return true
	}
	return false
}

// GetChannel reads the current level of one channel at idx.
func (c *StorageChunk) GetChannel(idx int, channel int) uint8 {
	return c.data[idx][channel]
}

// Data exposes the raw per-cell channel array, e.g. for upload to a GPU
// texture by a caller outside this package's scope.
func (c *StorageChunk) Data() *[pos.ChunkLength][Channels]uint8 {
	return &c.data
}
