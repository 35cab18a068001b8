package core

import (
	"fmt"
	"math"
	"sort"
)

// CellAspect is the height/width ratio of a terminal cell.
const CellAspect = 2.0

// Glyphs used by the canvas.
const (
	FillGlyph  = '█'
	GlowGlyph  = '░'
	DotGlyph   = '•' // Shape smaller than a cell
	SpeckGlyph = '·' // Shape much smaller than a cell
)

// glowDim is how much a glow halo darkens its color.
const glowDim = 0.45

// Canvas is a Surface that scales a fixed logical viewport onto a Screen.
// The viewport keeps its aspect ratio and is centered in the screen.
type Canvas struct {
	screen *Screen

	logicalW float64
	logicalH float64

	// Scaling from logical units to cells
	scaleX float64
	scaleY float64

	// Drawing area in cells, and its offset inside the screen
	cols      int
	rows      int
	offsetCol int
	offsetRow int

	glowBlur  float64
	glowColor Color

	// Reusable buffer for scanline intersections
	intersectionBuf []float64
}

// Ensure Canvas implements Surface
var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas drawing a logicalW x logicalH viewport into screen.
func NewCanvas(screen *Screen, logicalW, logicalH float64) (*Canvas, error) {
	if logicalW <= 0 || logicalH <= 0 {
		return nil, fmt.Errorf("%w: logical size %vx%v", ErrInvalidSurface, logicalW, logicalH)
	}
	if screen == nil || screen.Width() <= 0 || screen.Height() <= 0 {
		return nil, fmt.Errorf("%w: screen has no cells", ErrInvalidSurface)
	}

	c := &Canvas{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
	}
	c.fit()
	return c, nil
}

// fit recomputes scale and offsets from the current screen size.
func (c *Canvas) fit() {
	sw := float64(c.screen.Width())
	sh := float64(c.screen.Height())

	// Columns per logical unit; rows are CellAspect times coarser
	s := math.Min(sw/c.logicalW, sh*CellAspect/c.logicalH)
	c.scaleX = s
	c.scaleY = s / CellAspect

	c.cols = int(c.logicalW * c.scaleX)
	c.rows = int(c.logicalH * c.scaleY)
	c.offsetCol = (c.screen.Width() - c.cols) / 2
	c.offsetRow = (c.screen.Height() - c.rows) / 2
}

// Resize resizes the backing screen and refits the viewport.
func (c *Canvas) Resize(width, height int) {
	c.screen.Resize(width, height)
	c.fit()
}

// Screen returns the backing screen buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Area returns the drawing area in cells: offset column, offset row, columns, rows.
func (c *Canvas) Area() (col, row, cols, rows int) {
	return c.offsetCol, c.offsetRow, c.cols, c.rows
}

// Size returns the logical viewport size.
func (c *Canvas) Size() (float64, float64) {
	return c.logicalW, c.logicalH
}

// Clear wipes the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// SetGlow sets the halo applied around subsequent fills.
func (c *Canvas) SetGlow(blur float64, col Color) {
	c.glowBlur = math.Max(blur, 0)
	c.glowColor = col
}

// FillRect fills every cell whose center lies in r.
func (c *Canvas) FillRect(r Rect, col Color) {
	c.fillShape(r, col, func(x, y float64) bool {
		return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
	})
}

// FillCircle fills every cell whose center lies within radius of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	bounds := NewRect(cx-radius, cy-radius, 2*radius, 2*radius)
	r2 := radius * radius
	c.fillShape(bounds, col, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r2
	})
}

// FillPolygon fills a polygon using a scanline pass per cell row.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 {
		return
	}

	bounds := polygonBounds(points)
	painted := false
	row0, row1 := c.rowSpan(bounds)
	for row := row0; row <= row1; row++ {
		scanY := c.logicalY(row)

		// Find intersections with all edges
		c.intersectionBuf = c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				c.intersectionBuf = append(c.intersectionBuf, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(c.intersectionBuf)

		// Fill between pairs of intersections
		for i := 0; i+1 < len(c.intersectionBuf); i += 2 {
			x0, x1 := c.intersectionBuf[i], c.intersectionBuf[i+1]
			col0, col1 := c.colSpan(NewRect(x0, 0, x1-x0, 0))
			for cc := col0; cc <= col1; cc++ {
				x := c.logicalX(cc)
				if x >= x0 && x <= x1 && c.plot(cc, row, FillGlyph, col) {
					painted = true
				}
			}
		}
	}

	if !painted {
		cx, cy := polygonCentroid(points)
		c.plotLogical(cx, cy, c.subCellGlyph(bounds), col)
	}
	c.glow(bounds)
}

// fillShape paints cells inside bounds whose centers satisfy inside.
// A shape smaller than a cell still paints the cell holding its center.
func (c *Canvas) fillShape(bounds Rect, col Color, inside func(x, y float64) bool) {
	painted := false
	row0, row1 := c.rowSpan(bounds)
	col0, col1 := c.colSpan(bounds)
	for row := row0; row <= row1; row++ {
		for cc := col0; cc <= col1; cc++ {
			if inside(c.logicalX(cc), c.logicalY(row)) && c.plot(cc, row, FillGlyph, col) {
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := bounds.Center()
		c.plotLogical(cx, cy, c.subCellGlyph(bounds), col)
	}
	c.glow(bounds)
}

// glow paints a dim halo around bounds on cells that are still blank.
func (c *Canvas) glow(bounds Rect) {
	if c.glowBlur <= 0 {
		return
	}
	halo := NewRect(bounds.X-c.glowBlur, bounds.Y-c.glowBlur, bounds.W+2*c.glowBlur, bounds.H+2*c.glowBlur)
	haloColor := c.glowColor.Dim(glowDim)

	row0, row1 := c.rowSpan(halo)
	col0, col1 := c.colSpan(halo)
	for row := row0; row <= row1; row++ {
		for cc := col0; cc <= col1; cc++ {
			if c.screen.GetCell(cc, row) != blankCell {
				continue
			}
			x, y := c.logicalX(cc), c.logicalY(row)
			dx := math.Max(math.Max(bounds.X-x, 0), x-bounds.Right())
			dy := math.Max(math.Max(bounds.Y-y, 0), y-bounds.Bottom())
			if math.Hypot(dx, dy) <= c.glowBlur {
				c.plot(cc, row, GlowGlyph, haloColor)
			}
		}
	}
}

// subCellGlyph picks a glyph for a shape too small to cover any cell center.
func (c *Canvas) subCellGlyph(bounds Rect) rune {
	cellArea := (1 / c.scaleX) * (1 / c.scaleY)
	if bounds.W*bounds.H < cellArea/16 {
		return SpeckGlyph
	}
	return DotGlyph
}

// plot sets a cell inside the drawing area. Returns false if it was clipped.
func (c *Canvas) plot(col, row int, r rune, color Color) bool {
	if col < c.offsetCol || col >= c.offsetCol+c.cols || row < c.offsetRow || row >= c.offsetRow+c.rows {
		return false
	}
	c.screen.SetCell(col, row, Cell{Rune: r, Color: color})
	return true
}

// plotLogical sets the cell holding a logical point.
func (c *Canvas) plotLogical(x, y float64, r rune, color Color) {
	c.plot(c.cellCol(x), c.cellRow(y), r, color)
}

func (c *Canvas) cellCol(x float64) int {
	return c.offsetCol + int(math.Floor(x*c.scaleX))
}

func (c *Canvas) cellRow(y float64) int {
	return c.offsetRow + int(math.Floor(y*c.scaleY))
}

// logicalX returns the logical x of a cell column's center.
func (c *Canvas) logicalX(col int) float64 {
	return (float64(col-c.offsetCol) + 0.5) / c.scaleX
}

// logicalY returns the logical y of a cell row's center.
func (c *Canvas) logicalY(row int) float64 {
	return (float64(row-c.offsetRow) + 0.5) / c.scaleY
}

// colSpan returns the inclusive column range covering r, clipped to the drawing area.
func (c *Canvas) colSpan(r Rect) (int, int) {
	lo := max(c.cellCol(r.X), c.offsetCol)
	hi := min(c.cellCol(r.Right()), c.offsetCol+c.cols-1)
	return lo, hi
}

// rowSpan returns the inclusive row range covering r, clipped to the drawing area.
func (c *Canvas) rowSpan(r Rect) (int, int) {
	lo := max(c.cellRow(r.Y), c.offsetRow)
	hi := min(c.cellRow(r.Bottom()), c.offsetRow+c.rows-1)
	return lo, hi
}

func polygonBounds(points []Point) Rect {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

func polygonCentroid(points []Point) (float64, float64) {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return sx / n, sy / n
}
