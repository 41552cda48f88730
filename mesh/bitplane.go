package mesh

import "github.com/gekko3d/voxelcore"

// debugChecks gates the bit-index bounds assertions. It is a compile-time
// const set to true, so the checks run in every build; setting it to false
// lets the compiler fold the dead branch away, the same trade the teacher
// makes with Logger.DebugEnabled() for its own hot paths.
const debugChecks = true

// BitPlane is one 8x8 micro-plane packed into a 64-bit word: bit i is cell
// (i&7, i>>3). Ground: original_source game/src/meshing/bit_plane.rs.
type BitPlane uint64

func isIdxValid(idx uint32) bool { return idx < 64 }

func assertIdx(idx uint32) {
	if debugChecks && !isIdxValid(idx) {
		voxelcore.Panicf("mesh: bit plane index out of range: %d", idx)
	}
}

// Set writes state into bit idx.
func (p *BitPlane) Set(idx uint32, state bool) {
	assertIdx(idx)
	if state {
		p.Mark(idx)
	} else {
		p.Clear(idx)
	}
}

// Mark sets bit idx.
func (p *BitPlane) Mark(idx uint32) {
	assertIdx(idx)
	*p |= 1 << idx
}

// Clear unsets bit idx.
func (p *BitPlane) Clear(idx uint32) {
	assertIdx(idx)
	*p &^= 1 << idx
}

// Get reads bit idx.
func (p BitPlane) Get(idx uint32) bool {
	assertIdx(idx)
	return p&(1<<idx) != 0
}

// MarkAt sets the bit at micro-plane coordinate (x, y), x,y in 0..8.
func (p *BitPlane) MarkAt(x, y uint32) { p.Mark(IdxFromPos(x, y)) }

// ClearAt clears the bit at micro-plane coordinate (x, y).
func (p *BitPlane) ClearAt(x, y uint32) { p.Clear(IdxFromPos(x, y)) }

// GetAt reads the bit at micro-plane coordinate (x, y).
func (p BitPlane) GetAt(x, y uint32) bool { return p.Get(IdxFromPos(x, y)) }

// IdxFromPos packs an 8x8 (x, y) coordinate into a bit index.
func IdxFromPos(x, y uint32) uint32 { return x | y<<3 }

// PosFromIdx is the inverse of IdxFromPos.
func PosFromIdx(idx uint32) (x, y uint32) { return idx & 0x07, idx >> 3 }

// Or is bitwise OR over the whole plane.
func (p BitPlane) Or(o BitPlane) BitPlane { return p | o }

// And is bitwise AND over the whole plane.
func (p BitPlane) And(o BitPlane) BitPlane { return p & o }

// Xor is bitwise XOR over the whole plane.
func (p BitPlane) Xor(o BitPlane) BitPlane { return p ^ o }

// Not is bitwise complement over the whole plane.
func (p BitPlane) Not() BitPlane { return ^p }

// Push shifts left and inserts a set bit at position 0.
func (p *BitPlane) Push() { *p = (*p << 1) | 1 }

// Skip shifts left without inserting a set bit.
func (p *BitPlane) Skip() { *p <<= 1 }

// ToRaw exposes the underlying 64 bits.
func (p BitPlane) ToRaw() uint64 { return uint64(p) }
