// Package executortest provides a scriptable Executor for tests.
package executortest

import (
	"context"
	"sync"
)

// Call records one Execute invocation.
type Call struct {
	Name string
	Args []string
}

// Fake is an executor.Executor whose behaviour is supplied by Run.
type Fake struct {
	Run func(name string, args []string) (string, error)

	mu    sync.Mutex
	calls []Call
}

func (f *Fake) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Run == nil {
		return "", nil
	}
	return f.Run(name, args)
}

// Calls returns the invocations seen so far.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
