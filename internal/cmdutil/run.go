// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunOrdered runs work(ctx, i) for i in [0,n) on at most threads goroutines
// (0 = all CPUs) and hands the results to emit strictly in index order, as
// soon as each prefix is complete. The first error from work or emit cancels
// the rest and is returned.
func RunOrdered[T any](
	parent context.Context,
	n, threads int,
	work func(ctx context.Context, i int) (T, error),
	emit func(i int, v T) error,
) error {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	slots := make([]chan T, n)
	for i := range slots {
		slots[i] = make(chan T, 1)
	}

	emitted := make(chan error, 1)
	go func() {
		for i := 0; i < n; i++ {
			select {
			case v := <-slots[i]:
				if err := emit(i, v); err != nil {
					cancel()
					emitted <- err
					return
				}
			case <-ctx.Done():
				emitted <- ctx.Err()
				return
			}
		}
		emitted <- nil
	}()

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := work(gctx, i)
			if err != nil {
				return err
			}
			slots[i] <- v
			return nil
		})
	}
	// gctx is done once Wait returns; the emitter watches ctx instead and
	// only gives up early when work failed.
	werr := g.Wait()
	if werr != nil {
		cancel()
	}
	eerr := <-emitted

	if eerr != nil && !errors.Is(eerr, context.Canceled) {
		return eerr
	}
	if werr != nil {
		return werr
	}
	return eerr
}
