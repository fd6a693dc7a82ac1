package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	ioutils "github.com/handiism/triangle-solver/internal/io"
	"github.com/handiism/triangle-solver/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	triangleColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	interiorColor   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	textColor       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	annotationColor = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

// Options controls the figure produced by a Renderer.
type Options struct {
	// Width and Height are the output size in pixels.
	Width  int
	Height int

	// Supersample is the factor lines are drawn at before scaling down.
	// Values below 1 are treated as 1.
	Supersample int

	// Margin is the blank border in output pixels.
	Margin float64

	// LineWidth is the stroke width in output pixels.
	LineWidth float64

	// MarkerSize is the side of the square vertex markers in output pixels.
	MarkerSize float64

	// Annotate adds angle and segment names to the figure.
	Annotate bool

	// JPEGQuality is used when saving to .jpg files.
	JPEGQuality int
}

// DefaultOptions returns a 640x480 figure without annotation.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      480,
		Supersample: 2,
		Margin:      40,
		LineWidth:   2,
		MarkerSize:  8,
		JPEGQuality: 90,
	}
}

// Validate reports options that cannot produce a figure.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("figure size %dx%d must be positive", o.Width, o.Height)
	}
	if 2*o.Margin >= float64(o.Width) || 2*o.Margin >= float64(o.Height) {
		return fmt.Errorf("margin %g leaves no room in a %dx%d figure", o.Margin, o.Width, o.Height)
	}
	return nil
}

// Renderer draws constructions to raster images.
//
// A Renderer holds no per-figure state and may be shared between goroutines.
type Renderer struct {
	options Options
	images  *ioutils.ImageService
	face    font.Face
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(options Options) *Renderer {
	if options.Supersample < 1 {
		options.Supersample = 1
	}
	images := ioutils.NewImageService()
	if options.JPEGQuality > 0 {
		images.JPEGQuality = options.JPEGQuality
	}
	return &Renderer{
		options: options,
		images:  images,
		face:    inconsolata.Regular8x16,
	}
}

// Viewport returns the mapping from construction to output pixel
// coordinates used for c.
func (r *Renderer) Viewport(c model.Construction) Viewport {
	lo, hi := c.Bounds()
	pad := 0.12 * model.Distance(c.A, c.B)
	lo = lo.Sub(model.Point{X: pad, Y: pad})
	hi = hi.Add(model.Point{X: pad, Y: pad})
	return NewViewport(lo, hi, r.options.Width, r.options.Height, r.options.Margin)
}

// Render draws c and returns the image. When solution is not nil the solved
// angle is printed below the figure.
func (r *Renderer) Render(ctx context.Context, c model.Construction, solution *float64) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.options.Validate(); err != nil {
		return nil, err
	}
	if err := checkConstruction(c); err != nil {
		return nil, err
	}

	vp := r.Viewport(c)
	s := r.options.Supersample

	dc := gg.NewContext(r.options.Width*s, r.options.Height*s)
	dc.SetColor(backgroundColor)
	dc.Clear()
	r.drawShapes(dc, c, vp.Scaled(float64(s)), float64(s))

	out := r.images.ScaleImage(ctx, dc.Image(), r.options.Width, r.options.Height)

	tc := gg.NewContextForRGBA(out)
	tc.SetFontFace(r.face)
	r.drawLabels(tc, c, vp, solution)

	return out, nil
}

// Save renders c and writes it to path. The encoding follows the file
// extension, .png or .jpg.
func (r *Renderer) Save(ctx context.Context, c model.Construction, solution *float64, path string) error {
	img, err := r.Render(ctx, c, solution)
	if err != nil {
		return err
	}
	if err := r.images.SaveImage(ctx, img, path); err != nil {
		return fmt.Errorf("save figure %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) drawShapes(dc *gg.Context, c model.Construction, vp Viewport, s float64) {
	ax, ay := vp.ToPixel(c.A)
	bx, by := vp.ToPixel(c.B)
	cx, cy := vp.ToPixel(c.C)
	mx, my := vp.ToPixel(c.M)

	// outer triangle
	dc.SetColor(triangleColor)
	dc.SetLineWidth(r.options.LineWidth * s)
	dc.MoveTo(ax, ay)
	dc.LineTo(bx, by)
	dc.LineTo(cx, cy)
	dc.ClosePath()
	dc.Stroke()

	// cevians
	dc.SetColor(interiorColor)
	dc.SetDash(6*s, 4*s)
	dc.DrawLine(ax, ay, mx, my)
	dc.DrawLine(bx, by, mx, my)
	dc.DrawLine(cx, cy, mx, my)
	dc.Stroke()
	dc.SetDash()

	size := r.options.MarkerSize * s
	dc.SetColor(triangleColor)
	for _, p := range [][2]float64{{ax, ay}, {bx, by}, {cx, cy}} {
		dc.DrawRectangle(p[0]-size/2, p[1]-size/2, size, size)
	}
	dc.Fill()

	dc.SetColor(interiorColor)
	dc.DrawRectangle(mx-size/2, my-size/2, size, size)
	dc.Fill()
}

func (r *Renderer) drawLabels(dc *gg.Context, c model.Construction, vp Viewport, solution *float64) {
	dc.SetColor(textColor)
	for _, l := range VertexLabels(c) {
		x, y := vp.ToPixel(l.Pos)
		dc.DrawStringAnchored(l.Text, x, y, 0.5, 0.5)
	}

	if r.options.Annotate {
		for _, l := range Annotations(c) {
			if l.Kind == LabelUnknown {
				dc.SetColor(interiorColor)
			} else {
				dc.SetColor(annotationColor)
			}
			x, y := vp.ToPixel(l.Pos)
			dc.DrawStringAnchored(l.Text, x, y, 0.5, 0.5)
		}
	}

	if solution != nil {
		dc.SetColor(interiorColor)
		caption := fmt.Sprintf("x = %.2f deg", *solution)
		dc.DrawStringAnchored(caption, r.options.Margin/2, float64(r.options.Height)-r.options.Margin/2, 0, 0.5)
	}
}

var errNonFinite = errors.New("construction has non-finite coordinates")

func checkConstruction(c model.Construction) error {
	for _, p := range c.Points() {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errNonFinite
		}
	}
	if model.Distance(c.A, c.B) == 0 {
		return errors.New("construction has an empty baseline")
	}
	return nil
}
