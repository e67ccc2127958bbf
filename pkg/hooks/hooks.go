// Package hooks provides the plugin extension points fired around domain
// operations.
//
// A Filter transforms a payload before the operation commits: listeners run
// in priority order, each receiving the previous listener's result, and the
// first error aborts the operation. An Action announces something that already
// happened: listeners run on a background goroutine and cannot affect the
// caller; their failures are logged.
package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Nour-Ali/NodeBB-nour/pkg/metrics"
)

// DefaultPriority is used when a listener does not pick one.
const DefaultPriority = 10

type entry[F any] struct {
	id       string
	priority int
	seq      int
	fn       F
}

// registry keeps listeners sorted by priority, then registration order.
type registry[F any] struct {
	mu      sync.RWMutex
	entries []entry[F]
	seq     int
}

func (r *registry[F]) add(id string, priority int, fn F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.entries = append(r.entries, entry[F]{id: id, priority: priority, seq: r.seq, fn: fn})
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].priority != r.entries[j].priority {
			return r.entries[i].priority < r.entries[j].priority
		}
		return r.entries[i].seq < r.entries[j].seq
	})
}

func (r *registry[F]) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (r *registry[F]) snapshot() []entry[F] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry[F], len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *registry[F]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// FilterFunc receives the current payload and returns the payload handed to
// the next listener. Returning the argument unchanged is fine.
type FilterFunc[T any] func(ctx context.Context, payload T) (T, error)

// Filter is a named, awaited transformation hook.
type Filter[T any] struct {
	name string
	reg  registry[FilterFunc[T]]
}

// NewFilter creates an empty filter hook.
func NewFilter[T any](name string) *Filter[T] {
	return &Filter[T]{name: name}
}

// Name returns the hook name, e.g. "filter:group.create".
func (f *Filter[T]) Name() string { return f.name }

// Register adds fn under id with the given priority. Lower priorities run first.
func (f *Filter[T]) Register(id string, priority int, fn FilterFunc[T]) {
	f.reg.add(id, priority, fn)
}

// Unregister removes the listener registered under id.
func (f *Filter[T]) Unregister(id string) bool {
	return f.reg.remove(id)
}

// Len reports the number of listeners.
func (f *Filter[T]) Len() int { return f.reg.len() }

// Fire runs every listener in order and returns the final payload. With no
// listeners it returns payload as is.
func (f *Filter[T]) Fire(ctx context.Context, payload T) (T, error) {
	entries := f.reg.snapshot()
	if len(entries) == 0 {
		return payload, nil
	}

	var err error
	defer func() { metrics.RecordHookFire(f.name, err) }()

	for _, e := range entries {
		if err = ctx.Err(); err != nil {
			return payload, err
		}
		payload, err = e.fn(ctx, payload)
		if err != nil {
			err = fmt.Errorf("%s listener %s: %w", f.name, e.id, err)
			return payload, err
		}
	}
	return payload, nil
}

// ActionFunc reacts to a completed operation.
type ActionFunc[T any] func(ctx context.Context, payload T) error

// Action is a named fire-and-forget notification hook.
type Action[T any] struct {
	name string
	log  *slog.Logger
	reg  registry[ActionFunc[T]]
	wg   sync.WaitGroup
}

// NewAction creates an empty action hook. Listener failures are logged on log.
func NewAction[T any](name string, log *slog.Logger) *Action[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Action[T]{name: name, log: log}
}

// Name returns the hook name, e.g. "action:group.create".
func (a *Action[T]) Name() string { return a.name }

// Register adds fn under id with the given priority. Lower priorities run first.
func (a *Action[T]) Register(id string, priority int, fn ActionFunc[T]) {
	a.reg.add(id, priority, fn)
}

// Unregister removes the listener registered under id.
func (a *Action[T]) Unregister(id string) bool {
	return a.reg.remove(id)
}

// Len reports the number of listeners.
func (a *Action[T]) Len() int { return a.reg.len() }

// Fire schedules the listeners and returns immediately. Listeners see ctx's
// values but not its cancellation, so a finished request does not cut them
// short.
func (a *Action[T]) Fire(ctx context.Context, payload T) {
	entries := a.reg.snapshot()
	if len(entries) == 0 {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.run(context.WithoutCancel(ctx), entries, payload)
	}()
}

func (a *Action[T]) run(ctx context.Context, entries []entry[ActionFunc[T]], payload T) {
	var failed error
	for _, e := range entries {
		if err := a.call(ctx, e, payload); err != nil {
			failed = err
			a.log.ErrorContext(ctx, "hook listener failed",
				slog.String("hook", a.name),
				slog.String("listener", e.id),
				slog.String("error", err.Error()),
			)
		}
	}
	metrics.RecordHookFire(a.name, failed)
}

func (a *Action[T]) call(ctx context.Context, e entry[ActionFunc[T]], payload T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return e.fn(ctx, payload)
}

// Wait blocks until every scheduled notification has finished or ctx ends.
func (a *Action[T]) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
