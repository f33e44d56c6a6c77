package parallel

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CreateJobQueue starts poolSize workers reading from a queue of queueSize
// jobs. The first job to fail cancels the context passed to the others.
func CreateJobQueue(ctx context.Context, queueSize int, poolSize int) *JobQueue {
	group, groupCtx := errgroup.WithContext(ctx)
	queue := &JobQueue{
		jobsChannel: make(chan func(context.Context) error, queueSize),
		group:       group,
		ctx:         groupCtx,
	}

	for i := 1; i <= poolSize; i++ {
		group.Go(queue.worker)
	}
	return queue
}

type JobQueue struct {
	jobsChannel chan func(context.Context) error
	group       *errgroup.Group
	ctx         context.Context
	closeOnce   sync.Once
}

// Add enqueues a job. It blocks while the queue is full and fails once the
// queue context is cancelled.
func (queue *JobQueue) Add(job func(context.Context) error) error {
	if job == nil {
		return fmt.Errorf("nil function")
	}

	select {
	case queue.jobsChannel <- job:
		return nil
	case <-queue.ctx.Done():
		return queue.ctx.Err()
	}
}

// Wait closes the queue, waits for the workers to drain it and returns the
// first job error.
func (queue *JobQueue) Wait() error {
	queue.Close()
	return queue.group.Wait()
}

func (queue *JobQueue) Close() {
	queue.closeOnce.Do(func() {
		close(queue.jobsChannel)
	})
}

func (queue *JobQueue) worker() error {
	for job := range queue.jobsChannel {
		if queue.ctx.Err() != nil {
			continue
		}
		if err := job(queue.ctx); err != nil {
			return err
		}
	}
	return nil
}
