package dotmatrix

import (
	"golang.org/x/sync/errgroup"
)

// Matrix is the filled/unfilled state of every pixel of a Source, stored row
// by row. A Matrix is not modified after Evaluate returns it.
type Matrix struct {
	width, height int
	dots          []bool
}

func newMatrix(width, height int) *Matrix {
	return &Matrix{
		width:  width,
		height: height,
		dots:   make([]bool, width*height),
	}
}

func (m *Matrix) Width() int  { return m.width }
func (m *Matrix) Height() int { return m.height }

// At returns the dot at (x, y). ok is false when (x, y) lies outside of the
// matrix.
func (m *Matrix) At(x, y int) (on, ok bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false, false
	}
	return m.dots[y*m.width+x], true
}

// Row returns the dots of row y, left to right.
func (m *Matrix) Row(y int) []bool {
	return m.dots[y*m.width : (y+1)*m.width]
}

// Evaluate applies rule to every pixel of src. The columns of each row are
// split into spans and at most workers goroutines evaluate spans at once;
// with one worker or fewer the whole matrix is evaluated on the calling
// goroutine. The result does not depend on the number of workers.
func Evaluate(src Source, rule Rule, workers int) *Matrix {
	m := newMatrix(src.Width(), src.Height())
	if workers <= 1 || m.width < 2 {
		for y := 0; y < m.height; y++ {
			evaluateSpan(m.Row(y), src, rule, y, 0, m.width)
		}
		return m
	}

	if workers > m.width {
		workers = m.width
	}
	span := (m.width + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < m.height; y++ {
		for x0 := 0; x0 < m.width; x0 += span {
			// Each goroutine writes a disjoint range of one row and only
			// reads src.
			row, y, x0, x1 := m.Row(y), y, x0, min(x0+span, m.width)
			g.Go(func() error {
				evaluateSpan(row, src, rule, y, x0, x1)
				return nil
			})
		}
	}
	// evaluateSpan cannot fail; Wait only joins the goroutines.
	_ = g.Wait()
	return m
}

func evaluateSpan(row []bool, src Source, rule Rule, y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		row[x] = rule.IsOn(src, x, y)
	}
}
