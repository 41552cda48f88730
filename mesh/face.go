package mesh

import "github.com/gekko3d/voxelcore"

// Axis is one of the three principal axes a visibility plane is stacked
// along. Ground: original_source meshing::VisAxis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ToLocal remaps world-space [x,y,z] so the third component is the axis
// coordinate (the "layer"). ToWorld is its inverse permutation.
func (a Axis) ToLocal(world [3]uint32) [3]uint32 {
	switch a {
	case AxisX:
		return [3]uint32{world[2], world[1], world[0]}
	case AxisY:
		return [3]uint32{world[0], world[2], world[1]}
	default: // AxisZ
		return world
	}
}

// ToWorld is the inverse of ToLocal.
func (a Axis) ToWorld(local [3]uint32) [3]uint32 {
	switch a {
	case AxisX:
		return [3]uint32{local[2], local[1], local[0]}
	case AxisY:
		return [3]uint32{local[0], local[2], local[1]}
	default: // AxisZ
		return local
	}
}

// ToLocalInt is ToLocal over [3]int, used when indexing region coordinates
// rather than voxel coordinates.
func (a Axis) ToLocalInt(world [3]int) [3]int {
	switch a {
	case AxisX:
		return [3]int{world[2], world[1], world[0]}
	case AxisY:
		return [3]int{world[0], world[2], world[1]}
	default:
		return world
	}
}

// ToWorldInt is the inverse of ToLocalInt. The X/Y permutations are their
// own inverse, same as ToLocal/ToWorld.
func (a Axis) ToWorldInt(local [3]int) [3]int {
	return a.ToLocalInt(local)
}

// Face is one of the six axis-aligned directions of a voxel cell, positives
// ordered before negatives. Ground: original_source meshing::VisFace.
type Face uint8

const (
	PosX Face = iota
	PosY
	PosZ
	NegX
	NegY
	NegZ
	faceCount
)

// FromRaw validates and converts a raw face byte; an out-of-range field is
// a programmer error per spec §4.1/§7.
func FromRaw(raw uint16) Face {
	if raw >= uint16(faceCount) {
		voxelcore.Panicf("mesh: invalid face value: %d", raw)
	}
	return Face(raw)
}

// Axis returns the principal axis this face points along.
func (f Face) Axis() Axis {
	switch f {
	case PosX, NegX:
		return AxisX
	case PosY, NegY:
		return AxisY
	default:
		return AxisZ
	}
}

// Reverse returns the opposite face on the same axis.
func (f Face) Reverse() Face {
	switch f {
	case PosX:
		return NegX
	case PosY:
		return NegY
	case PosZ:
		return NegZ
	case NegX:
		return PosX
	case NegY:
		return PosY
	case NegZ:
		return PosZ
	}
	voxelcore.Panicf("mesh: invalid face value: %d", f)
	return 0
}

// IsPositive reports whether f is one of the three positive-direction faces.
func (f Face) IsPositive() bool { return f < NegX }

// String names the face, for diagnostics.
func (f Face) String() string {
	switch f {
	case PosX:
		return "+X"
	case PosY:
		return "+Y"
	case PosZ:
		return "+Z"
	case NegX:
		return "-X"
	case NegY:
		return "-Y"
	case NegZ:
		return "-Z"
	default:
		return "invalid"
	}
}
