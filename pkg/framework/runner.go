package framework

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang/glog"
)

// Group runs a set of Runnables concurrently and collects their
// errors. The zero value is ready to use.
type Group struct {
	wg   sync.WaitGroup
	lock sync.Mutex
	errs AggregatedError
}

// Go starts each runnable in its own goroutine under ctx.
func (g *Group) Go(ctx context.Context, runnables ...Runnable) {
	for _, r := range runnables {
		g.wg.Add(1)
		go func(r Runnable) {
			defer g.wg.Done()
			err := r.Run(ctx)
			if err == nil || err == context.Canceled {
				return
			}
			g.lock.Lock()
			g.errs.Add(err)
			g.lock.Unlock()
		}(r)
	}
}

// Wait blocks until every runnable started by Go has returned.
// A runnable exiting with context.Canceled counts as clean shutdown.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.errs.Aggregate()
}

// SignalContext derives a context that is canceled on SIGINT or
// SIGTERM. A second signal aborts the process.
func SignalContext(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		glog.Info("stop requested")
		cancel()
		<-sigCh
		glog.Exit("stop requested again, aborting")
	}()
	return ctx
}
