// Package service runs many independent genpdf.Document renders
// concurrently through a fixed worker pool, entirely outside the
// synchronous per-document render loop the core engine guarantees.
package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"genpdf"
	"genpdf/logging"
)

// Job is one document submitted for rendering.
type Job struct {
	ID  string
	Doc *genpdf.Document
}

// Result is the outcome of a completed Job. Err is set when rendering or
// storing failed; PDF holds the rendered bytes whenever rendering
// succeeded, so both are set when only the storage write failed.
type Result struct {
	JobID     string
	PDF       []byte
	Err       error
	Duration  time.Duration
	Completed bool
}

var ErrQueueFull = fmt.Errorf("job queue is full")

// Pool renders Jobs with a fixed number of worker goroutines, each
// owning one Document end-to-end; it never makes a single Document's
// own Render call concurrent.
type Pool struct {
	size    int
	jobs    chan Job
	logger  logging.Logger
	storage Storage

	mu      sync.RWMutex
	results map[string]Result

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewPool(size int, storage Storage, logger logging.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		size:    size,
		jobs:    make(chan Job, size*2),
		logger:  logger,
		storage: storage,
		results: make(map[string]Result),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.logger.Info("starting render pool", "size", p.size)
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker(i + 1)
	}
}

// Submit enqueues a job and returns its ID (generating one if Job.ID is
// empty). Returns ErrQueueFull if the pool's buffer is saturated.
func (p *Pool) Submit(job Job) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	select {
	case p.jobs <- job:
		return job.ID, nil
	default:
		p.logger.Warn("render job queue full, rejecting job", "job_id", job.ID)
		return "", ErrQueueFull
	}
}

// Result returns the stored outcome for a job ID, if it has completed.
func (p *Pool) Result(jobID string) (Result, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	r, ok := p.results[jobID]
	return r, ok
}

// Stop closes the job channel and waits for in-flight workers to drain,
// forcing cancellation if ctx expires first.
func (p *Pool) Stop(ctx context.Context) {
	p.logger.Info("stopping render pool")
	close(p.jobs)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("render pool stopped gracefully")
	case <-ctx.Done():
		p.logger.Warn("render pool stop timed out, forcing shutdown")
		p.cancel()
		p.wg.Wait()
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := p.logger.With("worker_id", id)
	log.Debug("worker started")
	defer log.Debug("worker stopped")

	for job := range p.jobs {
		start := time.Now()
		var buf bytes.Buffer
		err := job.Doc.Render(&buf)
		duration := time.Since(start)

		result := Result{JobID: job.ID, Duration: duration, Completed: true}
		if err != nil {
			log.Error("render job failed", "job_id", job.ID, "error", err)
			result.Err = err
		} else {
			result.PDF = buf.Bytes()
			if p.storage != nil {
				if serr := p.storage.Store(p.ctx, job.ID, result.PDF); serr != nil {
					log.Error("storing rendered pdf failed", "job_id", job.ID, "error", serr)
					result.Err = serr
				}
			}
			log.Debug("render job completed", "job_id", job.ID, "duration", duration)
		}

		p.mu.Lock()
		p.results[job.ID] = result
		p.mu.Unlock()
	}
}
