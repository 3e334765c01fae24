// Package export renders a routed diagram to PNG. It is the engine's
// verification surface: every connector in the output went through the
// connection-point selector and the orthogonal router.
package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"orthoroute/connections"
	"orthoroute/core"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width    int
	Height   int
	Padding  int
	FontSize int
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:    1200,
		Height:   800,
		Padding:  40,
		FontSize: 14,
	}
}

var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorBlack     = color.RGBA{51, 51, 51, 255}
	colorShapeFill = color.RGBA{232, 240, 254, 255}
	colorShapeBdr  = color.RGBA{66, 103, 178, 255}
	colorContainer = color.RGBA{245, 245, 245, 255}
	colorRoute     = color.RGBA{46, 125, 50, 255}
	colorPoint     = color.RGBA{230, 81, 0, 255}
)

// renderContext holds the target image plus the supersampling scale applied
// to line widths and fonts.
type renderContext struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	face      font.Face
}

func newRenderContext(img *image.RGBA, scale int, fontSize int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 2,
		face:      face,
	}, nil
}

// RenderPNG routes every connector of the diagram through the router and
// writes the rendered result. Renders at 4x and downsamples for smooth
// lines.
func RenderPNG(d *core.Diagram, router *connections.Router, w io.Writer, opts PNGOptions) error {
	scale := 4
	large := image.NewRGBA(image.Rect(0, 0, opts.Width*scale, opts.Height*scale))
	ctx, err := newRenderContext(large, scale, opts.FontSize)
	if err != nil {
		return err
	}

	draw.Draw(large, large.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	tf := fitTransform(d, opts, scale)

	// Containers first so nested shapes draw on top.
	for _, s := range d.Shapes {
		if len(s.Children) > 0 {
			ctx.drawShape(s, tf, colorContainer, colorBlack)
		}
	}
	for _, s := range d.Shapes {
		if len(s.Children) == 0 {
			ctx.drawShape(s, tf, colorShapeFill, colorShapeBdr)
		}
	}

	for _, conn := range d.Connectors {
		route, choice := router.RouteConnector(d, conn)
		if len(route) < 2 {
			continue
		}
		ctx.drawRoute(route, tf)
		ctx.drawMarker(tf.apply(choice.Start), colorPoint)
		ctx.drawMarker(tf.apply(choice.End), colorPoint)
	}

	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return png.Encode(w, final)
}

// transform maps diagram coordinates to image pixels.
type transform struct {
	scale      float64
	dx, dy     float64
	pixelScale float64
}

func (t transform) apply(p core.Point) core.Point {
	return core.Point{
		X: (p.X*t.scale + t.dx) * t.pixelScale,
		Y: (p.Y*t.scale + t.dy) * t.pixelScale,
	}
}

func fitTransform(d *core.Diagram, opts PNGOptions, pixelScale int) transform {
	if len(d.Shapes) == 0 {
		return transform{scale: 1, pixelScale: float64(pixelScale)}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range d.Shapes {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
		maxX = math.Max(maxX, s.X+s.Width)
		maxY = math.Max(maxY, s.Y+s.Height)
	}
	contentW := math.Max(maxX-minX, 1)
	contentH := math.Max(maxY-minY, 1)

	availW := float64(opts.Width - 2*opts.Padding)
	availH := float64(opts.Height - 2*opts.Padding)
	fit := math.Min(availW/contentW, availH/contentH)
	if fit > 1.5 {
		fit = 1.5
	}

	return transform{
		scale:      fit,
		dx:         float64(opts.Padding) + (availW-contentW*fit)/2 - minX*fit,
		dy:         float64(opts.Padding) + (availH-contentH*fit)/2 - minY*fit,
		pixelScale: float64(pixelScale),
	}
}

func (ctx *renderContext) drawShape(s core.Shape, tf transform, fill, border color.Color) {
	tl := tf.apply(core.Point{X: s.X, Y: s.Y})
	br := tf.apply(core.Point{X: s.X + s.Width, Y: s.Y + s.Height})

	for y := int(tl.Y); y <= int(br.Y); y++ {
		for x := int(tl.X); x <= int(br.X); x++ {
			ctx.img.Set(x, y, fill)
		}
	}
	ctx.drawLine(tl.X, tl.Y, br.X, tl.Y, border)
	ctx.drawLine(br.X, tl.Y, br.X, br.Y, border)
	ctx.drawLine(br.X, br.Y, tl.X, br.Y, border)
	ctx.drawLine(tl.X, br.Y, tl.X, tl.Y, border)

	label := s.Label
	if label == "" {
		label = s.ID
	}
	ctx.drawTextCentered(int((tl.X+br.X)/2), int((tl.Y+br.Y)/2), label, colorBlack)
}

func (ctx *renderContext) drawRoute(route []core.Point, tf transform) {
	for i := 1; i < len(route); i++ {
		a := tf.apply(route[i-1])
		b := tf.apply(route[i])
		ctx.drawLine(a.X, a.Y, b.X, b.Y, colorRoute)
	}
	// Arrowhead along the final segment.
	a := tf.apply(route[len(route)-2])
	b := tf.apply(route[len(route)-1])
	ctx.drawArrowhead(a, b, colorRoute)
}

func (ctx *renderContext) drawArrowhead(from, to core.Point, c color.Color) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	nx, ny := dx/dist, dy/dist
	arrowLen := 8.0 * ctx.scale
	arrowWidth := 4.0 * ctx.scale

	ax1 := to.X - nx*arrowLen + ny*arrowWidth
	ay1 := to.Y - ny*arrowLen - nx*arrowWidth
	ax2 := to.X - nx*arrowLen - ny*arrowWidth
	ay2 := to.Y - ny*arrowLen + nx*arrowWidth

	for t := 0.0; t <= 1.0; t += 0.05 {
		mx := ax1 + (ax2-ax1)*t
		my := ay1 + (ay2-ay1)*t
		ctx.drawLine(to.X, to.Y, mx, my, c)
	}
}

func (ctx *renderContext) drawMarker(p core.Point, c color.Color) {
	r := 3.0 * ctx.scale
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				ctx.img.Set(int(p.X+dx), int(p.Y+dy), c)
			}
		}
	}
}

func (ctx *renderContext) drawLine(x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		ctx.img.Set(int(x1), int(y1), c)
		return
	}
	perpX := -dy / dist
	perpY := dx / dist
	half := ctx.lineWidth / 2

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t
		for offset := -half; offset <= half; offset += 0.5 {
			ctx.img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

func (ctx *renderContext) drawTextCentered(x, y int, text string, c color.Color) {
	if text == "" {
		return
	}
	width := font.MeasureString(ctx.face, text).Ceil()
	metrics := ctx.face.Metrics()
	baselineY := y + int(float64(metrics.Ascent.Ceil())*0.15)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(text)
}
