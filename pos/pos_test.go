package pos

import "testing"

func TestBlockToIdxRoundTrip(t *testing.T) {
	for _, b := range []Block{
		NewBlock(0, 0, 0),
		NewBlock(63, 0, 0),
		NewBlock(0, 63, 0),
		NewBlock(0, 0, 63),
		NewBlock(17, 42, 5),
	} {
		idx := b.ToIdx()
		got := BlockFromIdx(idx)
		if got != b {
			t.Errorf("BlockFromIdx(ToIdx(%v)) = %v, want %v", b, got, b)
		}
	}
}

func TestNewBlockUnclippedWraps(t *testing.T) {
	b := NewBlockUnclipped(-1, 64, 65)
	want := Block{X: 63, Y: 0, Z: 1}
	if b != want {
		t.Errorf("NewBlockUnclipped(-1,64,65) = %v, want %v", b, want)
	}
}

func TestChunkAndBlockRoundTrip(t *testing.T) {
	chunk := NewChunk(3, -5, 100)
	block := NewBlock(10, 20, 30)
	w := FromChunkAndBlock(chunk, block)

	gotChunk, gotBlock := w.ToChunkAndBlock()
	if gotChunk != chunk {
		t.Errorf("chunk = %v, want %v", gotChunk, chunk)
	}
	if gotBlock != block {
		t.Errorf("block = %v, want %v", gotBlock, block)
	}
}

func TestToChunkAndBlockNegativeWorld(t *testing.T) {
	w := NewWorld(-1, -64, -65)
	chunk, block := w.ToChunkAndBlock()

	if chunk.X != -1 || block.X != 63 {
		t.Errorf("X: chunk=%d block=%d, want chunk=-1 block=63", chunk.X, block.X)
	}
	if chunk.Y != -1 || block.Y != 0 {
		t.Errorf("Y: chunk=%d block=%d, want chunk=-1 block=0", chunk.Y, block.Y)
	}
	if chunk.Z != -2 || block.Z != 63 {
		t.Errorf("Z: chunk=%d block=%d, want chunk=-2 block=63", chunk.Z, block.Z)
	}
}

func TestWithOffset(t *testing.T) {
	w := NewWorld(10, 10, 10).WithOffset(-1, 0, 1)
	want := NewWorld(9, 10, 11)
	if w != want {
		t.Errorf("WithOffset = %v, want %v", w, want)
	}
}
