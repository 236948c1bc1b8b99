// Package concurrency implements a channel based resource manager for data-parallel operations.
package concurrency

import (
	"runtime"
	"sync"

	"github.com/Pro7ech/vanillabgv/utils"
)

// ResourceManager dispatches tasks to goroutines, handing to each running task
// exclusive ownership of one resource of type T (e.g. a scratch buffer) for
// the duration of the task. The number of resources bounds the parallelism.
type ResourceManager[T any] struct {
	wg        sync.WaitGroup
	resources chan T
	errors    chan error
}

// NewResourceManager instantiates a new [ResourceManager] over the given resources.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {

	if len(resources) == 0 {
		panic("cannot NewResourceManager: at least one resource is required")
	}

	ch := make(chan T, len(resources))
	for i := range resources {
		ch <- resources[i]
	}

	return &ResourceManager[T]{
		resources: ch,
		errors:    make(chan error, 1),
	}
}

// Task is a function taking as input a resource that it owns
// for the duration of its execution.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] in a new goroutine, once a resource is available.
// If a previous task already failed, the task is skipped.
// Only the first error is retained.
func (rm *ResourceManager[T]) Run(f Task[T]) {
	rm.wg.Add(1)
	go func() {
		defer rm.wg.Done()

		if len(rm.errors) != 0 {
			return
		}

		resource := <-rm.resources
		defer func() { rm.resources <- resource }()

		if err := f(resource); err != nil {
			select {
			case rm.errors <- err:
			default:
			}
		}
	}()
}

// Wait waits until all submitted tasks have returned and
// returns the first encountered error, if any.
func (rm *ResourceManager[T]) Wait() (err error) {
	rm.wg.Wait()
	select {
	case err = <-rm.errors:
	default:
	}
	return
}

// Workers returns the default number of workers, i.e. [runtime.NumCPU].
func Workers() int {
	return runtime.NumCPU()
}

// ParallelFor splits [0, n) into at most len(resources) contiguous chunks and
// calls f(resource, start, end) on each chunk concurrently, each chunk owning
// a distinct resource. It returns the first error returned by f, if any.
func ParallelFor[T any](resources []T, n int, f func(resource T, start, end int) error) error {

	chunks := utils.Chunks(n, len(resources))

	switch len(chunks) {
	case 0:
		return nil
	case 1:
		return f(resources[0], chunks[0][0], chunks[0][1])
	}

	rm := NewResourceManager(resources[:len(chunks)])

	for _, c := range chunks {
		start, end := c[0], c[1]
		rm.Run(func(resource T) error {
			return f(resource, start, end)
		})
	}

	return rm.Wait()
}
