package workspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

type saveJob struct {
	seq      uint64
	snapshot timesheet.WeeklySessions
}

type saveFailure struct {
	seq uint64
	err error
}

// saveQueue runs saves one at a time in submission order. A job, once
// accepted, always runs: the worker's context is independent of whichever
// caller triggered the save and is bounded only by timeout.
type saveQueue struct {
	save    func(ctx context.Context, job saveJob) error
	timeout time.Duration

	mu        sync.Mutex
	cond      *sync.Cond
	pending   []saveJob
	issued    uint64
	completed uint64
	// failures since the last successful save. A successful save writes the
	// whole snapshot, so it supersedes every earlier failure.
	failures []saveFailure
	closing  bool
	stopped  chan struct{}
}

func newSaveQueue(timeout time.Duration, save func(ctx context.Context, job saveJob) error) *saveQueue {
	q := &saveQueue{
		save:    save,
		timeout: timeout,
		stopped: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

func (q *saveQueue) run() {
	defer close(q.stopped)
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closing {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		job := q.pending[0]
		q.pending[0] = saveJob{}
		q.pending = q.pending[1:]
		q.mu.Unlock()

		err := q.runJob(job)

		q.mu.Lock()
		q.completed = job.seq
		if err != nil {
			q.failures = append(q.failures, saveFailure{seq: job.seq, err: err})
		} else {
			q.failures = nil
		}
		q.cond.Broadcast()
		q.mu.Unlock()
	}
}

func (q *saveQueue) runJob(job saveJob) error {
	ctx := context.Background()
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	return q.save(ctx, job)
}

// enqueue accepts a snapshot and returns its sequence number. It never blocks
// on the worker.
func (q *saveQueue) enqueue(snapshot timesheet.WeeklySessions) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.issued++
	q.pending = append(q.pending, saveJob{seq: q.issued, snapshot: snapshot})
	q.cond.Broadcast()
	return q.issued
}

// flush waits until every job accepted before the call has run and returns
// the failures among them that no later successful save has superseded.
// Concurrent callers each see the same outcome for the same saves.
func (q *saveQueue) flush(ctx context.Context) error {
	wake := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer wake()

	q.mu.Lock()
	defer q.mu.Unlock()
	target := q.issued
	for q.completed < target {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.cond.Wait()
	}

	var errs []error
	for _, f := range q.failures {
		if f.seq <= target {
			errs = append(errs, f.err)
		}
	}
	return errors.Join(errs...)
}

// close lets the worker drain what is pending and waits for it to stop.
func (q *saveQueue) close() {
	q.mu.Lock()
	q.closing = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.stopped
}
