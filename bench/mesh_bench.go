// Package bench is a non-core harness demonstrating the one form of
// parallelism the core packages themselves never do: meshing many disjoint
// chunk storages concurrently, each owned by one goroutine for the
// duration of its own MeshChunk call.
//
// Ground: the worker-pool shape of
// github.com/gekko3d/gekko's particles_ecs.go (GOMAXPROCS-bounded worker
// count, job channel, WaitGroup), applied here to chunk meshing instead of
// particle emission.
package bench

import (
	"runtime"
	"sync"

	"github.com/gekko3d/voxelcore/mesh"
	"github.com/gekko3d/voxelcore/world"
)

// ChunkJob is one chunk to mesh: its visibility provider and the region
// origin MeshChunk should use for it.
type ChunkJob struct {
	Vis          mesh.FaceVisibilityProvider
	RegionOrigin [3]int
}

// ChunkResult is one job's output, paired with its index in the input slice
// so callers can recover ordering after concurrent dispatch.
type ChunkResult struct {
	Index    int
	Vertices []uint32
	Runs     []world.Run
}

// MeshChunksParallel runs world.MeshChunk over every job on a bounded
// worker pool, one goroutine per worker, workers capped at GOMAXPROCS (and
// never more than len(jobs)). Each job's destination buffer is private, so
// no synchronization is needed beyond the result channel — the caller
// contract spec §5 requires (disjoint storages, no shared mutable state)
// holds by construction as long as the caller passes genuinely independent
// ChunkStorages.
func MeshChunksParallel(jobs []ChunkJob) []ChunkResult {
	workerCount := runtime.GOMAXPROCS(0)
	if workerCount > 8 {
		workerCount = 8
	}
	if workerCount > len(jobs) {
		workerCount = len(jobs)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	jobCh := make(chan int)
	resCh := make(chan ChunkResult, len(jobs))

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				job := jobs[idx]
				vertices, runs := world.MeshChunk(job.Vis, job.RegionOrigin, nil)
				resCh <- ChunkResult{Index: idx, Vertices: vertices, Runs: runs}
			}
		}()
	}

	go func() {
		for i := range jobs {
			jobCh <- i
		}
		close(jobCh)
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	results := make([]ChunkResult, len(jobs))
	for r := range resCh {
		results[r.Index] = r
	}
	return results
}
