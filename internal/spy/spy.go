// Package spy provides recording and stub collaborators for the lookup
// service. Recording wrappers append every call to a shared CallLog so tests
// can assert call counts and call order without a mocking framework.
package spy

import (
	"context"
	"sync"

	"bank_lookup/internal/repository"

	"github.com/google/uuid"
)

type Call struct {
	Target string
	Method string
	Args   []any
}

func (c Call) Name() string {
	return c.Target + "." + c.Method
}

type CallLog struct {
	mu    sync.Mutex
	calls []Call
}

func (l *CallLog) record(target, method string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, Call{Target: target, Method: method, Args: args})
}

// Calls returns a copy of the recorded calls in invocation order.
func (l *CallLog) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Call(nil), l.calls...)
}

// Methods returns "Target.Method" for every call, in order.
func (l *CallLog) Methods() []string {
	calls := l.Calls()
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.Name())
	}
	return names
}

func (l *CallLog) Count(target, method string) int {
	n := 0
	for _, c := range l.Calls() {
		if c.Target == target && c.Method == method {
			n++
		}
	}
	return n
}

func (l *CallLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

const (
	RepositoryTarget = "Repository"
	ConverterTarget  = "Converter"
)

// Repository records GetByID calls and delegates to Next.
type Repository[T any] struct {
	Next repository.Repository[T]
	Log  *CallLog
}

func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	r.Log.record(RepositoryTarget, "GetByID", id)
	return r.Next.GetByID(ctx, id)
}

// Converter records ToJSON calls and delegates to Next.
type Converter[T any] struct {
	Next repository.Converter[T]
	Log  *CallLog
}

func (c *Converter[T]) ToJSON(record T) (string, error) {
	c.Log.record(ConverterTarget, "ToJSON", record)
	return c.Next.ToJSON(record)
}

// StubRepository returns Record and Err, or defers to Fn when set.
type StubRepository[T any] struct {
	Record T
	Err    error
	Fn     func(ctx context.Context, id uuid.UUID) (T, error)
}

func (s *StubRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	if s.Fn != nil {
		return s.Fn(ctx, id)
	}
	return s.Record, s.Err
}

// StubConverter returns Output and Err, or defers to Fn when set.
type StubConverter[T any] struct {
	Output string
	Err    error
	Fn     func(record T) (string, error)
}

func (s *StubConverter[T]) ToJSON(record T) (string, error) {
	if s.Fn != nil {
		return s.Fn(record)
	}
	return s.Output, s.Err
}

var (
	_ repository.Repository[any] = (*Repository[any])(nil)
	_ repository.Converter[any]  = (*Converter[any])(nil)
	_ repository.Repository[any] = (*StubRepository[any])(nil)
	_ repository.Converter[any]  = (*StubConverter[any])(nil)
)
