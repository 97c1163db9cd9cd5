// Package objmesh is a high-throughput importer and exporter for the
// Wavefront OBJ 3D geometry text format.
//
// # Usage
//
// Import parses an OBJ file into a [Mesh]; Export serializes a [Mesh] back
// to an OBJ file. Import accepts [Option] values to tune the parallel
// parsing pipeline (batch size, consumer count, ring capacity); Export
// takes no options.
//
// # Architecture
//
// Import is single-producer / multiple-consumer: the input is memory-mapped
// once, a producer goroutine cuts it into newline-aligned batches and
// publishes them on a bounded lock-free ring, and a pool of consumer
// goroutines drain the ring, each parsing its batches into a private local
// store. Once every consumer has returned, an assembly pass walks the
// batches in file order and concatenates the per-consumer ranges into the
// final Mesh. See the package's internal/ring package for the ring
// algorithm and batch.go/consumer.go/producer.go/assembly.go for the
// pipeline stages.
//
// # Non-goals
//
// No geometry validation is performed: a Face's indices are not checked to
// resolve to existing entries. OBJ features beyond v/vt/vn/f (free-form
// surfaces, groups, smoothing, lines, points, material libraries) are
// recognized as unknown lines and ignored.
package objmesh

import (
	"sync"

	"github.com/calvinalkan/objmesh/internal/ring"
)

// sequentialThreshold is the input size below which Import runs the
// sequential path instead of spawning the parallel pipeline: below this
// size, goroutine and ring setup cost dominates the parse itself.
const sequentialThreshold = 1 << 20 // 1 MiB

// RunStats carries additive telemetry about one Import call. It is not
// part of the core's correctness contract.
type RunStats struct {
	BytesRead    int64
	Batches      int
	NumConsumers int
	Positions    int
	TexCoords    int
	Normals      int
	Faces        int
}

// Import parses path into mesh, replacing its contents. On failure mesh is
// left cleared and an error describing the failure (see [ImportError]) is
// returned.
func Import(path string, mesh *Mesh, opts ...Option) (RunStats, error) {
	cfg := applyOptions(opts)

	mf, err := openMappedInput(path)
	if err != nil {
		mesh.Clear()
		return RunStats{}, &ImportError{Path: path, Kind: AcquisitionFailed, Err: err}
	}
	defer mf.closeHandle()

	input := mf.bytes()
	if len(input) == 0 {
		mesh.Clear()
		return RunStats{}, &ImportError{Path: path, Kind: EmptyInput}
	}

	var stats RunStats
	stats.BytesRead = int64(len(input))

	if len(input) < sequentialThreshold || cfg.NumConsumers == 1 {
		stats.Batches = importSequential(input, cfg.BatchSize, mesh)
		stats.NumConsumers = 1
	} else {
		importParallel(input, cfg, mesh, &stats)
	}

	stats.Positions = len(mesh.Positions)
	stats.TexCoords = len(mesh.TexCoords)
	stats.Normals = len(mesh.Normals)
	stats.Faces = mesh.NumFaces()

	return stats, nil
}

// importParallel runs the producer/consumer pipeline described in the
// package doc comment.
func importParallel(input []byte, cfg options, mesh *Mesh, stats *RunStats) {
	batchCount := countBatches(input, cfg.BatchSize)
	batches := make([]Batch, batchCount)
	artifacts := make([]batchArtifact, batchCount)

	r := ring.New[*Batch](cfg.QueueCapacity)
	stores := make([]localStore, cfg.NumConsumers)

	var wg sync.WaitGroup
	wg.Add(cfg.NumConsumers)
	for i := 0; i < cfg.NumConsumers; i++ {
		go func(id int) {
			defer wg.Done()
			runConsumer(id, r, &stores[id], artifacts)
		}(i)
	}

	runProducer(input, cfg.BatchSize, batches, r, cfg.NumConsumers)

	wg.Wait()

	assemble(artifacts, stores, mesh)

	stats.Batches = batchCount
	stats.NumConsumers = cfg.NumConsumers
}

// importSequential parses the entire input on the calling goroutine,
// cutting the same newline-aligned batches the parallel path would and
// propagating (v, t, n) running totals across them in order. It is used
// for inputs too small to amortize pipeline setup, and doubles as the
// differential-testing oracle the parallel path's output must match
// exactly. It returns the number of batches cut.
func importSequential(input []byte, batchSize int, mesh *Mesh) int {
	mesh.Clear()

	store := localStore{}
	var vSeen, tSeen, nSeen uint32
	offset := 0
	batches := 0

	for offset < len(input) {
		data, next := nextBatchSpan(input, offset, batchSize)
		offset = next
		batches++

		b := &Batch{ID: batches - 1, Data: data, VSeen: vSeen, TSeen: tSeen, NSeen: nSeen}
		v, t, n := countBatchLines(data)
		parseBatch(b, &store)
		vSeen += v
		tSeen += t
		nSeen += n
	}

	mesh.Positions = append(mesh.Positions, store.positions...)
	mesh.TexCoords = append(mesh.TexCoords, store.texcoords...)
	mesh.Normals = append(mesh.Normals, store.normals...)
	mesh.FaceTape = append(mesh.FaceTape, store.faceTape...)
	mesh.FaceLengths = append(mesh.FaceLengths, store.faceLengths...)
	return batches
}

// Export serializes mesh to path in canonical OBJ form: all v lines, then
// all vt, then all vn, then all f. On failure the output file may be
// truncated; see [ExportError].
func Export(path string, mesh *Mesh) error {
	return exportMesh(path, mesh)
}
