package renderer

import (
	"runtime"
	"sync"
)

// bandTask is a contiguous range of scanlines for one worker to render
type bandTask struct {
	yMin, yMax int
}

// bandSize is the number of scanlines per task. Small bands keep workers
// busy when some rows are more expensive than others.
const bandSize = 8

// renderParallel renders the image with a pool of scanline workers.
// Every band covers a disjoint row range of the shared framebuffer and
// each pixel is written exactly once, so no locking is needed.
func (rt *Raytracer) renderParallel(img *Image) {
	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	numBands := (rt.height + bandSize - 1) / bandSize
	tasks := make(chan bandTask, numBands)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				rt.renderRows(img, task.yMin, task.yMax)
			}
		}()
	}

	for yMin := 0; yMin < rt.height; yMin += bandSize {
		tasks <- bandTask{yMin: yMin, yMax: min(yMin+bandSize, rt.height)}
	}
	close(tasks)

	wg.Wait()
}
