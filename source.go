package dotmatrix

import (
	"image"
	"image/color"
)

// Source is a read-only grid of pixels addressed from (0, 0) at the top left.
// Coordinates outside of [0, Width) x [0, Height) are never an error, they are
// simply not InBounds.
type Source interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	// PixelAt is only meaningful when InBounds(x, y) is true.
	PixelAt(x, y int) Pixel
}

// Pixel is a non-alpha-premultiplied red, green, blue and alpha quadruple.
type Pixel [4]uint8

// Sum adds up every channel, alpha included.
func (p Pixel) Sum() int {
	return int(p[0]) + int(p[1]) + int(p[2]) + int(p[3])
}

// RGBSum adds up red, green and blue.
func (p Pixel) RGBSum() int {
	return int(p[0]) + int(p[1]) + int(p[2])
}

// ImageSource is a Source backed by a packed RGBA copy of an image.Image.
// Every decoded format reads the same way: gray is spread over red, green
// and blue, and images without transparency are fully opaque.
type ImageSource struct {
	width, height int
	pix           []uint8
}

// NewImageSource copies img. An image's bounds do not necessarily start at
// (0, 0); the copy always does.
func NewImageSource(img image.Image) *ImageSource {
	bounds := img.Bounds()
	src := &ImageSource{
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	src.pix = make([]uint8, src.width*src.height*4)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < src.height; y++ {
			i := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(src.pix[y*src.width*4:(y+1)*src.width*4], nrgba.Pix[i:i+src.width*4])
		}
		return src
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			src.pix[i], src.pix[i+1], src.pix[i+2], src.pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return src
}

func (src *ImageSource) Width() int  { return src.width }
func (src *ImageSource) Height() int { return src.height }

func (src *ImageSource) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < src.width && y < src.height
}

func (src *ImageSource) PixelAt(x, y int) Pixel {
	i := (y*src.width + x) * 4
	return Pixel{src.pix[i], src.pix[i+1], src.pix[i+2], src.pix[i+3]}
}
