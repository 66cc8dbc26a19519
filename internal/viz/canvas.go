package viz

import (
	"math"
	"strings"
)

// Braille cells are 2x4 dots:
// 1 4
// 2 5
// 3 6
// 7 8
const brailleBlank = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells addressed in sub-pixels, so a
// Width x Height canvas holds (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = []rune(strings.Repeat(string(rune(brailleBlank)), w))
	}
	return c
}

// Set lights the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the canvas rows, top first.
func (c *Canvas) Lines() []string {
	out := make([]string, len(c.grid))
	for i, row := range c.grid {
		out[i] = string(row)
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// TraceStrip draws values as a polyline spanning the whole canvas, with a
// vertical marker at sample cursor. Larger values are drawn higher.
func TraceStrip(values []float64, cursor, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if len(values) == 0 || width <= 0 || height <= 0 {
		return c
	}
	dotsX, dotsY := width*2, height*4

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	toX := func(i int) int {
		if len(values) == 1 {
			return 0
		}
		return i * (dotsX - 1) / (len(values) - 1)
	}
	toY := func(v float64) int {
		if hi == lo {
			return dotsY / 2
		}
		// halved so spans near ±MaxFloat64 stay finite
		r := (hi/2 - v/2) / (hi/2 - lo/2)
		if math.IsNaN(r) {
			r = 0.5
		}
		r = math.Max(0, math.Min(1, r))
		return int(r * float64(dotsY-1))
	}

	px, py := toX(0), toY(values[0])
	c.Set(px, py)
	for i := 1; i < len(values); i++ {
		x, y := toX(i), toY(values[i])
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}

	if cursor >= 0 && cursor < len(values) {
		x := toX(cursor)
		c.DrawLine(x, 0, x, dotsY-1)
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
