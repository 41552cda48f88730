package light

import "github.com/gekko3d/voxelcore/pos"

// TransmissionFunc reports the light cost of passing through the cell at p
// on the given channel — e.g. 0 for air, 255 for a fully opaque block.
// Supplied by the caller since block opacity lives outside this package.
type TransmissionFunc func(p pos.World, channel int) uint8

// couldTransmitTo reports whether a cell currently at level from could ever
// raise a neighbour sitting at level to — i.e. whether it is worth queuing
// that neighbour for propagation. Bounds how far the flood-fill queue grows:
// a neighbour already brighter than from-1 has nothing to gain.
func couldTransmitTo(from, to uint8) bool {
	return from > saturatingAdd1(to)
}

func saturatingAdd1(v uint8) uint8 {
	if v == 255 {
		return 255
	}
	return v + 1
}

func saturatingSub(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

func neighborhoodOf(p pos.World) [6]pos.World {
	return [6]pos.World{
		p.WithOffset(1, 0, 0),
		p.WithOffset(-1, 0, 0),
		p.WithOffset(0, 1, 0),
		p.WithOffset(0, -1, 0),
		p.WithOffset(0, 0, 1),
		p.WithOffset(0, 0, -1),
	}
}

// ChannelUpdate is one (position, target level) pair fed to
// RaiseChannelBatched for a single channel.
type ChannelUpdate struct {
	Pos    pos.World
	Target uint8
}

// RaiseChannelBatched applies a batch of (position, target level) updates to
// one channel and seeds queue with every neighbour that could still gain
// light from an updated cell. Returns how many updates actually raised
// anything.
func RaiseChannelBatched(channel int, storage *StorageWorld, updates []ChannelUpdate, queue *[]pos.World) int {
	updateCount := 0
	for _, u := range updates {
		chunk, block := u.Pos.ToChunkAndBlock()
		idx := block.ToIdx()
		if storage.GetOrCreateChunk(chunk).RaiseChannel(idx, channel, u.Target) {
			updateCount++
			for _, n := range neighborhoodOf(u.Pos) {
				if couldTransmitTo(u.Target, storage.GetChannel(n, channel)) {
					*queue = append(*queue, n)
				}
			}
		}
	}
	return updateCount
}

// RaiseChannelPropagate drains queue with a LIFO flood fill: each popped
// position recomputes its level from its brightest neighbour minus its own
// transmission cost plus one, and — if that raises the cell — requeues
// neighbours that could still gain from the new value. Returns the number
// of cells actually raised.
func RaiseChannelPropagate(getTransmission TransmissionFunc, channel int, storage *StorageWorld, queue *[]pos.World) int {
	updateCount := 0
	for len(*queue) > 0 {
		n := len(*queue) - 1
		p := (*queue)[n]
		*queue = (*queue)[:n]

		neighborhood := neighborhoodOf(p)
		var values [6]uint8
		for i, nb := range neighborhood {
			values[i] = storage.GetChannel(nb, channel)
		}

		transmitCost := saturatingAdd1(getTransmission(p, channel))
		best := values[0]
		for _, v := range values[1:] {
			if v > best {
				best = v
			}
		}
		target := saturatingSub(best, transmitCost)

		chunk, block := p.ToChunkAndBlock()
		didUpdate := storage.GetOrCreateChunk(chunk).RaiseChannel(block.ToIdx(), channel, target)

		if didUpdate {
			updateCount++
			for i, nb := range neighborhood {
				if !couldTransmitTo(target, values[i]) {
					continue
				}
				*queue = append(*queue, nb)
			}
		}
	}
	return updateCount
}
