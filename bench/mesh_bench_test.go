package bench

import (
	"testing"

	"github.com/gekko3d/voxelcore/pos"
	"github.com/gekko3d/voxelcore/tile"
	"github.com/gekko3d/voxelcore/world"
)

func TestMeshChunksParallelPreservesOrderAndIndependence(t *testing.T) {
	const n = 12
	chunks := make([]*world.ChunkStorage, n)
	jobs := make([]ChunkJob, n)
	for i := 0; i < n; i++ {
		c := world.NewChunkStorage()
		c.Update(pos.NewBlock(int16(i%60), 4, 4), tile.Identifier(1), true)
		chunks[i] = c
		jobs[i] = ChunkJob{Vis: c, RegionOrigin: [3]int{0, 0, 0}}
	}

	results := MeshChunksParallel(jobs)
	if len(results) != n {
		t.Fatalf("got %d results, want %d", len(results), n)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has Index=%d, want %d", i, r.Index, i)
		}
		if len(r.Vertices) != 6 {
			t.Errorf("result %d has %d vertices, want 6 (isolated solid cell)", i, len(r.Vertices))
		}
	}
}
