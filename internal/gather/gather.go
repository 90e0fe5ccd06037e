// internal/gather/gather.go
//
// Wait-for-all fetch combinator used by page handlers.
//
// Context
// -------
// Every page render issues a set of independent datastore reads with no
// ordering dependency between them.  Group runs them concurrently and
// blocks until all settle.  A failed fetch never fails the render: the
// closure's error is trapped here, logged, and counted, and the caller's
// destination variable simply keeps its fallback zero value (nil record,
// empty slice).  This is the page-level degradation policy — missing
// content renders placeholder copy, never a 500.
//
// The Group carries one deadline for the whole fan-out; individual
// queries inherit it through the context.
package gather

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/veltadigital/velta/internal/metrics"
)

// Group fans out fetch closures and waits for all of them.
type Group struct {
	eg     *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
}

// WithTimeout returns a Group whose fetches share one deadline.
func WithTimeout(parent context.Context, d time.Duration) *Group {
	ctx, cancel := context.WithTimeout(parent, d)
	eg, ctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: ctx, cancel: cancel}
}

// Go schedules one named fetch.  The closure's error is swallowed after
// logging; the group itself never reports failure.
func (g *Group) Go(name string, fetch func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if err := fetch(g.ctx); err != nil {
			metrics.FetchFallbacksTotal.Inc()
			zap.S().Warnw("fetch fallback", "fetch", name, "err", err)
		}
		return nil
	})
}

// Wait blocks until every scheduled fetch has settled.
func (g *Group) Wait() {
	_ = g.eg.Wait() // closures never return errors
	g.cancel()
}
