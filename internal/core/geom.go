// Package core provides fundamental types and utilities shared by the game
// simulation and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Point is a board coordinate. Entity coordinates are always multiples of
// the grid's cell size.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is one of the four movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists all directions in a fixed order (used for random picks).
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit offset of the direction in cells.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the toroidal board. Width and Height are integer multiples
// of CellSize.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid derives a grid from a viewport size by flooring both dimensions to
// a multiple of the cell size.
func NewGrid(widthPx, heightPx, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{
		Width:    Max(0, widthPx/cellSize*cellSize),
		Height:   Max(0, heightPx/cellSize*cellSize),
		CellSize: cellSize,
	}
}

// Cols returns the number of cells per row.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cells per column.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cell returns the point of the cell at column cx, row cy.
func (g Grid) Cell(cx, cy int) Point {
	return Point{X: cx * g.CellSize, Y: cy * g.CellSize}
}

// Contains reports whether p lies on the board (no wrapping).
func (g Grid) Contains(p Point) bool {
	return NewRect(0, 0, g.Width, g.Height).Contains(p.X, p.Y)
}

// Step moves p one cell in dir and wraps around the board edges: a
// coordinate below zero becomes dimension-CellSize, a coordinate at or past
// the dimension becomes zero.
func (g Grid) Step(p Point, dir Direction) Point {
	dx, dy := dir.Delta()
	next := p.Add(dx*g.CellSize, dy*g.CellSize)

	if next.X < 0 {
		next.X = g.Width - g.CellSize
	}
	if next.X >= g.Width {
		next.X = 0
	}
	if next.Y < 0 {
		next.Y = g.Height - g.CellSize
	}
	if next.Y >= g.Height {
		next.Y = 0
	}
	return next
}

// Wrap folds an arbitrary cell-aligned point back onto the board.
func (g Grid) Wrap(p Point) Point {
	if g.Width <= 0 || g.Height <= 0 {
		return Point{}
	}
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Distance returns the Euclidean distance between a and b in cells.
func (g Grid) Distance(a, b Point) float64 {
	dx := float64(a.X-b.X) / float64(g.CellSize)
	dy := float64(a.Y-b.Y) / float64(g.CellSize)
	return math.Sqrt(dx*dx + dy*dy)
}

// RandomCell returns a uniformly random cell-aligned point.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return g.Cell(rng.Intn(Max(1, g.Cols())), rng.Intn(Max(1, g.Rows())))
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
