package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"hippo/internal/pet"
	"hippo/internal/storage"
)

const persistTimeout = 10 * time.Second

// pendingOp is the coalesced work waiting for the worker. A wipe always
// runs before the snapshot.
type pendingOp struct {
	wipe bool
	snap *pet.Pet
}

// persister writes snapshots to storage on its own goroutine. Only the
// latest snapshot is kept; intermediate ones are dropped.
type persister struct {
	kv      storage.Store
	metrics Metrics

	mu      sync.Mutex
	pending pendingOp

	// ioMu orders drains from the worker and from flush.
	ioMu    sync.Mutex
	written map[string]string

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

func newPersister(kv storage.Store, m Metrics, written map[string]string) *persister {
	if written == nil {
		written = make(map[string]string)
	}
	return &persister{
		kv:      kv,
		metrics: m,
		written: written,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (w *persister) start() {
	go w.run()
}

func (w *persister) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			_ = w.drain(ctx)
			cancel()
		case <-w.stop:
			return
		}
	}
}

func (w *persister) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// queueWrite replaces any pending snapshot with p.
func (w *persister) queueWrite(p pet.Pet) {
	w.mu.Lock()
	w.pending.snap = &p
	w.mu.Unlock()
	w.signal()
}

// queueWipe drops any pending snapshot and schedules removal of every key.
func (w *persister) queueWipe() {
	w.mu.Lock()
	w.pending = pendingOp{wipe: true}
	w.mu.Unlock()
	w.signal()
}

// drain applies the pending op and returns the errors it hit.
func (w *persister) drain(ctx context.Context) error {
	w.ioMu.Lock()
	defer w.ioMu.Unlock()

	w.mu.Lock()
	op := w.pending
	w.pending = pendingOp{}
	w.mu.Unlock()

	var errs []error
	if op.wipe {
		for _, key := range AllKeys {
			if err := w.kv.Remove(ctx, key); err != nil {
				log.Printf("Error removing %s: %v", key, err)
				w.metrics.RecordPersistFailure("remove")
				errs = append(errs, err)
			}
		}
		w.written = make(map[string]string)
	}
	if op.snap != nil {
		values := encode(*op.snap)
		for _, key := range AllKeys {
			v, ok := values[key]
			if !ok {
				continue
			}
			if prev, seen := w.written[key]; seen && prev == v {
				continue
			}
			if err := w.kv.Set(ctx, key, v); err != nil {
				log.Printf("Error saving %s: %v", key, err)
				w.metrics.RecordPersistFailure("set")
				errs = append(errs, err)
				continue
			}
			w.written[key] = v
		}
	}
	return errors.Join(errs...)
}

// flush drains synchronously on the caller's goroutine.
func (w *persister) flush(ctx context.Context) error {
	return w.drain(ctx)
}

// close stops the worker and then drains whatever is still pending.
func (w *persister) close(ctx context.Context) error {
	close(w.stop)
	<-w.done
	return w.drain(ctx)
}
