package light

import "github.com/gekko3d/voxelcore/pos"

// SunlightUpdate is a single sunlight seed: a position and the level to
// raise the sunlight channel to.
type SunlightUpdate struct {
	Pos    pos.World
	Target uint8
}

// BlockLightUpdate is a single colored-light seed, one target level per RGB
// channel.
type BlockLightUpdate struct {
	Pos    pos.World
	Target [3]uint8
}

// RaiseSunlight seeds and propagates a batch of sunlight updates against the
// reserved SunlightChannel. Ground: original_source lighting::mod::
// light_sunlight_raise_batched.
func RaiseSunlight(getTransmission TransmissionFunc, storage *StorageWorld, updates []SunlightUpdate) int {
	queue := make([]pos.World, 0, len(updates))
	batched := make([]ChannelUpdate, len(updates))
	for i, u := range updates {
		batched[i] = ChannelUpdate{Pos: u.Pos, Target: u.Target}
	}
	n := RaiseChannelBatched(SunlightChannel, storage, batched, &queue)
	n += RaiseChannelPropagate(getTransmission, SunlightChannel, storage, &queue)
	return n
}

// RaiseBlockLight seeds and propagates a batch of colored-light updates
// across all three RGB channels, one channel fully propagated before the
// next is seeded — matching the original's per-channel loop rather than
// interleaving channels within one queue. Ground: original_source
// lighting::mod::light_blocklight_raise_batched.
func RaiseBlockLight(getTransmission TransmissionFunc, storage *StorageWorld, updates []BlockLightUpdate) int {
	updateCount := 0
	queue := make([]pos.World, 0, len(updates))
	for channel := 0; channel < 3; channel++ {
		queue = queue[:0]
		batched := make([]ChannelUpdate, len(updates))
		for i, u := range updates {
			batched[i] = ChannelUpdate{Pos: u.Pos, Target: u.Target[channel]}
		}
		updateCount += RaiseChannelBatched(channel, storage, batched, &queue)
		updateCount += RaiseChannelPropagate(getTransmission, channel, storage, &queue)
	}
	return updateCount
}
