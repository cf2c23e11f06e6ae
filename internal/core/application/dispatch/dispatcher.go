// Package dispatch bounds how many booking attempts run at the same time.
// The dispatcher is a fixed-size admission gate: a task runs only after it
// holds a slot, and the slot is returned when the task ends. Shutdown drains
// in-flight tasks within a grace period, then cancels the stragglers.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"shiftbooker/internal/pkg/errs"
)

var (
	// ErrSlotTimeout is returned when no slot frees up within the acquire
	// timeout. The caller still owns the work item and must roll back any
	// bookkeeping done before dispatching.
	ErrSlotTimeout = errors.New("no dispatch slot became available in time")

	// ErrDispatcherClosed is returned when Dispatch is called after Shutdown
	// has begun.
	ErrDispatcherClosed = errors.New("dispatcher is shut down")
)

// Task is a unit of work executed under a dispatch slot. The context is
// cancelled when the dispatcher's shutdown grace period expires.
type Task func(ctx context.Context)

// Dispatcher runs tasks with a hard cap on concurrency. Tasks run on their
// own goroutines against the dispatcher's base context, so they outlive the
// poll cycle that submitted them but not the dispatcher itself.
type Dispatcher struct {
	slots          chan struct{}
	acquireTimeout time.Duration

	baseCtx context.Context
	cancel  context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher with maxConcurrent slots. acquireTimeout
// bounds how long Dispatch waits for a free slot; zero means wait until the
// submitting context is cancelled.
func NewDispatcher(maxConcurrent int, acquireTimeout time.Duration) (*Dispatcher, error) {
	if maxConcurrent < 1 {
		return nil, errs.NewValueIsInvalidError("maxConcurrent must be at least 1")
	}
	if acquireTimeout < 0 {
		return nil, errs.NewValueIsInvalidError("acquireTimeout must not be negative")
	}

	baseCtx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		slots:          make(chan struct{}, maxConcurrent),
		acquireTimeout: acquireTimeout,
		baseCtx:        baseCtx,
		cancel:         cancel,
	}, nil
}

// Dispatch acquires a slot and runs the task on its own goroutine. It blocks
// until a slot is free, the acquire timeout expires, or ctx is cancelled. The
// task itself runs against the dispatcher's base context, not ctx, so it is
// not tied to the lifetime of the submitting poll cycle.
func (d *Dispatcher) Dispatch(ctx context.Context, task Task) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.mu.Unlock()

	var timeout <-chan time.Time
	if d.acquireTimeout > 0 {
		timer := time.NewTimer(d.acquireTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case d.slots <- struct{}{}:
	case <-timeout:
		return ErrSlotTimeout
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-d.baseCtx.Done():
		return ErrDispatcherClosed
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.slots
		return ErrDispatcherClosed
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer func() {
			<-d.slots
			d.wg.Done()
		}()
		task(d.baseCtx)
	}()

	return nil
}

// InFlight returns the number of tasks currently holding a slot.
func (d *Dispatcher) InFlight() int {
	return len(d.slots)
}

// Shutdown stops accepting new tasks and waits up to grace for in-flight
// tasks to finish. Tasks still running when the grace period expires have
// their context cancelled, and Shutdown still waits for them to return, so no
// task touches shared state after Shutdown comes back. A zero grace waits
// indefinitely. Returns nil when everything drained within the grace period,
// context.DeadlineExceeded otherwise.
func (d *Dispatcher) Shutdown(grace time.Duration) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	var timeout <-chan time.Time
	if grace > 0 {
		timer := time.NewTimer(grace)
		defer timer.Stop()
		timeout = timer.C
	}

	var err error
	select {
	case <-done:
	case <-timeout:
		err = context.DeadlineExceeded
	}

	d.cancel()
	<-done

	return err
}
