package mandel

import "golang.org/x/sync/errgroup"

// RenderStatic renders the viewport into buf using a fixed band
// partition: the buffer is split into row bands up front and every band
// gets its own goroutine. The call blocks until all workers finish and
// surfaces the first worker failure; on failure no partial result is
// delivered.
//
// The partition is fixed before any work runs, so a band that lands on an
// expensive region of the set cannot be helped by idle workers. See
// [RenderDynamic] for the self-balancing variant.
//
// Same contract as [Render]: buf length must match b, and the output is
// byte-identical to a sequential render of the same inputs.
func RenderStatic(buf []byte, b Bounds, vp Viewport, workers int, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateWorkers(b, workers, o); err != nil {
		return err
	}
	checkBuffer(buf, b)

	parts := bands(buf, b, vp, workers)
	Logger().Debug("static render",
		"width", b.Width, "height", b.Height,
		"workers", workers, "bands", len(parts))

	var g errgroup.Group
	for _, bd := range parts {
		bd := bd
		g.Go(func() error {
			bd.render(o.limit)
			return nil
		})
	}
	return g.Wait()
}

// validateWorkers extends validate with the scheduler-only worker check.
func validateWorkers(b Bounds, workers int, o renderOptions) error {
	if workers < 1 {
		return ErrInvalidWorkers
	}
	return validate(b, o)
}
