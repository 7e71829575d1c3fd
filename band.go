package mandel

// band is one unit of parallel work: a contiguous run of rows, the
// sub-slice of the pixel buffer covering them, and the viewport corners
// of the complex-plane region they map to. All bands are derived before
// any worker starts, and their buffer slices never overlap, so workers
// write pixel data without synchronization.
type band struct {
	bounds Bounds
	vp     Viewport
	buf    []byte
}

// render runs the sequential core over the band's slice.
func (bd band) render(limit int) {
	renderInto(bd.buf, bd.bounds, bd.vp, limit)
}

// bands slices buf into consecutive row bands of height/workers + 1 rows
// each; the trailing band may be shorter. The band set covers every row
// exactly once, including when workers exceeds the height (one-row bands,
// fewer bands than workers).
//
// Each band's viewport corners are derived independently from its row
// offset via PixelToPoint, so a band renders the same pixels whether it
// is scheduled or part of a full sequential pass.
func bands(buf []byte, b Bounds, vp Viewport, workers int) []band {
	rowsPerBand := b.Height/workers + 1
	out := make([]band, 0, (b.Height+rowsPerBand-1)/rowsPerBand)
	for top := 0; top < b.Height; top += rowsPerBand {
		rows := rowsPerBand
		if top+rows > b.Height {
			rows = b.Height - top
		}
		out = append(out, band{
			bounds: Bounds{Width: b.Width, Height: rows},
			vp: Viewport{
				UpperLeft:  PixelToPoint(b, 0, top, vp),
				LowerRight: PixelToPoint(b, b.Width, top+rows, vp),
			},
			buf: buf[top*b.Width : (top+rows)*b.Width],
		})
	}
	return out
}
