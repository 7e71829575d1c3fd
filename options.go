package mandel

// RenderOption configures a render call.
//
// All three entry points accept the same options, and the defaults are
// identical, which preserves the guarantee that sequential and scheduled
// renders of the same inputs produce byte-identical buffers.
//
// Example:
//
//	// Default 255-iteration limit
//	err := mandel.Render(buf, b, vp)
//
//	// Deeper iteration for zoomed-in viewports
//	err := mandel.Render(buf, b, vp, mandel.WithIterationLimit(1000))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render call.
type renderOptions struct {
	limit int
}

// defaultRenderOptions returns the options used when none are supplied.
func defaultRenderOptions() renderOptions {
	return renderOptions{limit: DefaultIterLimit}
}

// WithIterationLimit sets the escape iteration cap for a render call.
// Counts above 255 all shade to black, so limits beyond 256 only refine
// the set boundary, not the gradient. A limit below 1 fails the call
// with [ErrInvalidLimit].
func WithIterationLimit(n int) RenderOption {
	return func(o *renderOptions) {
		o.limit = n
	}
}
