// Package visualize renders planning problems and their solutions as images.
package visualize

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"go.viam.com/asvplan/motionplan"
	"go.viam.com/asvplan/referenceframe"
)

// DefaultSize is the length in pixels of the longer side of a rendered workspace.
const DefaultSize = 800

var (
	backgroundColor = color.White
	borderColor     = color.Black
	obstacleColor   = color.RGBA{96, 96, 96, 255}
	gapColor        = color.RGBA{200, 235, 200, 255}
	chainColor      = color.RGBA{120, 160, 230, 255}
	startColor      = color.RGBA{40, 170, 60, 255}
	goalColor       = color.RGBA{210, 40, 40, 255}
	textColor       = color.Black
)

var font *truetype.Font

func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Options controls what gets drawn.
type Options struct {
	// Size in pixels of the longer side of the workspace.
	Size int
	// Draw every Stride-th configuration of the path. Zero picks a stride that draws about 50 chains.
	Stride int
	// Caption is written in the top left corner when set.
	Caption string
}

// canvas maps workspace coordinates onto the image, with y pointing up.
type canvas struct {
	dc        *gg.Context
	workspace r2.Rect
	scale     float64
}

func newCanvas(workspace r2.Rect, size int) (*canvas, error) {
	if workspace.IsEmpty() || workspace.X.Length() <= 0 || workspace.Y.Length() <= 0 {
		return nil, errors.Errorf("cannot draw workspace %v with no area", workspace)
	}
	if size <= 0 {
		return nil, errors.Errorf("image size must be positive, got %d", size)
	}
	scale := float64(size) / max(workspace.X.Length(), workspace.Y.Length())
	w := int(workspace.X.Length()*scale + 0.5)
	h := int(workspace.Y.Length()*scale + 0.5)
	return &canvas{dc: gg.NewContext(w, h), workspace: workspace, scale: scale}, nil
}

func (c *canvas) toPixel(p r2.Point) (float64, float64) {
	return (p.X - c.workspace.X.Lo) * c.scale, float64(c.dc.Height()) - (p.Y-c.workspace.Y.Lo)*c.scale
}

func (c *canvas) fillRect(r r2.Rect, col color.Color) {
	x, y := c.toPixel(r2.Point{X: r.X.Lo, Y: r.Y.Hi})
	c.dc.DrawRectangle(x, y, r.X.Length()*c.scale, r.Y.Length()*c.scale)
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *canvas) line(a, b r2.Point, col color.Color, width float64) {
	x0, y0 := c.toPixel(a)
	x1, y1 := c.toPixel(b)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

func (c *canvas) chain(q referenceframe.Configuration, col color.Color, width float64) {
	joints := q.Joints()
	for i := 1; i < len(joints); i++ {
		c.line(joints[i-1], joints[i], col, width)
	}
	x, y := c.toPixel(joints[0])
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, width+1)
	c.dc.Fill()
}

// Draw renders the problem and, when plan is not nil, the plan's tree and path.
func Draw(problem *motionplan.Problem, plan *motionplan.Plan, opts Options) (*gg.Context, error) {
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	c, err := newCanvas(problem.Workspace, opts.Size)
	if err != nil {
		return nil, err
	}
	c.dc.SetColor(backgroundColor)
	c.dc.Clear()

	for _, gap := range problem.GapRegions() {
		c.fillRect(gap, gapColor)
	}
	for _, o := range problem.Obstacles {
		c.fillRect(o.Rect, obstacleColor)
	}

	if plan != nil {
		for i, edge := range plan.Tree {
			// older edges are blue, newer ones drift towards red
			hue := 240 * (1 - float64(i)/float64(len(plan.Tree)))
			c.line(edge.From, edge.To, colorful.Hsv(hue, 0.6, 0.9), 1)
		}
		stride := opts.Stride
		if stride <= 0 {
			stride = max(1, len(plan.Path)/50)
		}
		for i := 0; i < len(plan.Path); i += stride {
			c.chain(plan.Path[i], chainColor, 1)
		}
	}

	c.chain(problem.Start, startColor, 2)
	c.chain(problem.Goal, goalColor, 2)

	c.dc.SetColor(borderColor)
	c.dc.SetLineWidth(2)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.dc.Stroke()

	if opts.Caption != "" {
		c.dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 14}))
		c.dc.SetColor(textColor)
		c.dc.DrawString(opts.Caption, 8, 20)
	}
	return c.dc, nil
}

// EncodePNG renders the problem and plan as a PNG into w.
func EncodePNG(w io.Writer, problem *motionplan.Problem, plan *motionplan.Plan, opts Options) error {
	dc, err := Draw(problem, plan, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the problem and plan to a PNG file.
func SavePNG(filePath string, problem *motionplan.Problem, plan *motionplan.Plan, opts Options) error {
	dc, err := Draw(problem, plan, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(dc.SavePNG(filePath), "failed to write %q", filePath)
}
