package renderer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// workerQueueSize bounds the tasks waiting in the pool across all renders
const workerQueueSize = 256

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int            // Index of the tile in the grid
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool is one long-lived dynamic worker pool shared by every render of a process.
// Close it once when no more renders will run.
type WorkerPool struct {
	pool       worker.DynamicWorkerPool
	slots      chan struct{} // one token per queued or running task
	nextID     atomic.Int64
	numWorkers int
	closeOnce  sync.Once
}

// NewWorkerPool starts a pool of numWorkers workers. numWorkers <= 0 uses the CPU count.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		pool:       worker.NewDynamicWorkerPool(numWorkers, workerQueueSize, 1*time.Second),
		slots:      make(chan struct{}, workerQueueSize),
		numWorkers: numWorkers,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Close stops the workers. Later calls do nothing.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		wp.pool.Stop()
	})
}

// tileBatch collects the results of the tiles of one render. Tiles never overlap,
// so workers write to the shared pixel array without locking.
type tileBatch struct {
	wp       *WorkerPool
	renderer *TileRenderer
	results  chan TileResult
	wg       sync.WaitGroup
}

func (wp *WorkerPool) newBatch(tileRenderer *TileRenderer, numTasks int) *tileBatch {
	return &tileBatch{
		wp:       wp,
		renderer: tileRenderer,
		results:  make(chan TileResult, numTasks),
	}
}

// SubmitTask queues a tile, waiting while the pool's queue is full.
// Exactly one result is delivered per submitted task.
func (b *tileBatch) SubmitTask(ctx context.Context, task TileTask) {
	b.wp.slots <- struct{}{}
	b.wg.Add(1)
	b.wp.pool.SubmitTask(worker.Task{
		ID: int(b.wp.nextID.Add(1)),
		Do: func() (any, error) {
			defer func() { <-b.wp.slots }()
			defer b.wg.Done()
			stats, err := b.renderer.RenderTileBounds(ctx, task.Tile.Bounds, task.PixelStats)
			b.results <- TileResult{TaskID: task.TaskID, Stats: stats, Error: err}
			return stats, err
		},
	})
}

// GetResult retrieves a completed tile result. It reports false once the batch is finished
// and every result has been read.
func (b *tileBatch) GetResult() (TileResult, bool) {
	result, ok := <-b.results
	return result, ok
}

// Finish waits for every submitted task of the batch and closes its result queue
func (b *tileBatch) Finish() {
	b.wg.Wait()
	close(b.results)
}
