package mandel

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// workCursor hands out bands to workers on demand. The mutex is held only
// across the pull, never while a band renders, so the critical section is
// a couple of loads and an increment.
type workCursor struct {
	mu    sync.Mutex
	bands []band
	next  int
}

// pull returns the next unassigned band. ok is false once every band has
// been handed out; a band is handed out exactly once.
func (c *workCursor) pull() (bd band, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= len(c.bands) {
		return band{}, false
	}
	bd = c.bands[c.next]
	c.next++
	return bd, true
}

// RenderDynamic renders the viewport into buf using on-demand work
// distribution: the buffer is split into the same row bands as
// [RenderStatic], but a fixed set of `workers` goroutines pulls bands
// from a shared cursor. Workers that finish a cheap band early pull more
// work, which self-balances against the spatial variation in per-pixel
// iteration cost across the set.
//
// The call blocks until all workers finish and surfaces the first worker
// failure. Same contract as [Render]: buf length must match b, and the
// output is byte-identical to a sequential render of the same inputs.
func RenderDynamic(buf []byte, b Bounds, vp Viewport, workers int, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateWorkers(b, workers, o); err != nil {
		return err
	}
	checkBuffer(buf, b)

	cursor := &workCursor{bands: bands(buf, b, vp, workers)}
	Logger().Debug("dynamic render",
		"width", b.Width, "height", b.Height,
		"workers", workers, "bands", len(cursor.bands))

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				bd, ok := cursor.pull()
				if !ok {
					return nil
				}
				bd.render(o.limit)
			}
		})
	}
	return g.Wait()
}
