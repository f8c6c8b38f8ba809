package telegram

import (
	"context"
	"sync"
	"time"
)

// workerPool AI so'rovlarini parallel bajaradi, update loop ni bloklamaydi
type workerPool struct {
	jobs        chan suggestionJob
	workerCount int
	handler     *BotHandler
	wg          sync.WaitGroup
	startOnce   sync.Once
}

const (
	jobQueueSize       = 100
	defaultWorkerCount = 4
	// suggestionTimeout retry lar bilan birga bitta so'rov uchun
	suggestionTimeout = 90 * time.Second
)

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		jobs:        make(chan suggestionJob, jobQueueSize),
		workerCount: workerCount,
		handler:     handler,
	}
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	wp.startOnce.Do(func() {
		wp.handler.log.Info("starting suggestion workers", map[string]interface{}{"workers": wp.workerCount})
		for i := 0; i < wp.workerCount; i++ {
			wp.wg.Add(1)
			go wp.worker(ctx, i)
		}
	})
}

func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			wp.handler.log.Debug("worker shutting down", map[string]interface{}{"worker": id})
			return
		case job := <-wp.jobs:
			wp.process(ctx, job)
		}
	}
}

// process processes a job with context timeout
func (wp *workerPool) process(ctx context.Context, job suggestionJob) {
	ctx, cancel := context.WithTimeout(ctx, suggestionTimeout)
	defer cancel()
	wp.handler.deliver(ctx, job)
}

// submit navbat to'la bo'lsa false qaytaradi
func (wp *workerPool) submit(job suggestionJob) bool {
	select {
	case wp.jobs <- job:
		return true
	default:
		return false
	}
}

// shutdown ishlayotgan workerlarni kutadi (ctx allaqachon bekor qilingan bo'lishi kerak)
func (wp *workerPool) shutdown() {
	wp.wg.Wait()
}
