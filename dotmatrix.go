/*
Package dotmatrix encodes images as unicode braille symbols. Any 2x4 pixel
area can be represented by one of unicode's 256 braille symbols, see
https://en.wikipedia.org/wiki/Braille_Patterns

Every pixel is first resolved to a filled or unfilled dot by a Rule, producing
a Matrix. The Matrix is then drawn cell by cell, left-right and top-bottom,
with a line feed after each row of cells.
*/
package dotmatrix

import (
	"bytes"
	"image"
	"io"
	"runtime"
)

// Option configures an Encoder.
type Option func(enc *Encoder)

// WithRule sets the rule deciding which pixels are filled.
func WithRule(rule Rule) Option {
	return func(enc *Encoder) {
		enc.rule = rule
	}
}

// WithWorkers sets how many goroutines evaluate a row. One or fewer evaluates
// sequentially.
func WithWorkers(n int) Option {
	return func(enc *Encoder) {
		enc.workers = n
	}
}

// WithTrailingCells always draws one more row and one more column of cells
// than the image strictly needs, even when its dimensions are exact multiples
// of the cell size. The extra cells are unfilled past the image edge.
func WithTrailingCells() Option {
	return func(enc *Encoder) {
		enc.trailing = true
	}
}

type Encoder struct {
	w        io.Writer
	rule     Rule
	workers  int
	trailing bool
}

// NewEncoder provides an Encoder writing to w. Unless configured otherwise it
// uses DefaultRule and one worker per available CPU.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		w:       w,
		rule:    DefaultRule,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode encodes img with DefaultRule and writes the braille symbols to w.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}

// Encode encodes the image as a series of braille and line feed characters and
// writes them to the encoder's writer.
func (enc *Encoder) Encode(img image.Image) error {
	return enc.EncodeSource(NewImageSource(img))
}

// EncodeSource evaluates every pixel of src before anything is written, so
// nothing reaches the writer unless the whole image was encoded.
func (enc *Encoder) EncodeSource(src Source) error {
	m := Evaluate(src, enc.rule, enc.workers)
	_, err := enc.w.Write(enc.Render(m))
	return err
}

// Cells returns how many columns and rows of braille symbols Render draws for
// an image of the given size.
func (enc *Encoder) Cells(width, height int) (cols, rows int) {
	if enc.trailing {
		return width/2 + 1, height/4 + 1
	}
	return (width + 1) / 2, (height + 3) / 4
}

// Render draws m as lines of braille symbols, each terminated by a line feed.
func (enc *Encoder) Render(m *Matrix) []byte {
	cols, rows := enc.Cells(m.Width(), m.Height())

	var buf bytes.Buffer
	// Braille symbols take three bytes of UTF-8.
	buf.Grow(rows * (cols*3 + 1))
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			buf.WriteRune(RegionBraille(cx, cy, m))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
