package dotmatrix

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Adjust holds tone adjustments applied to an image before it is encoded.
// Zero fields are left alone.
type Adjust struct {
	// Gamma of 1.0 gives the original image. Less than 1.0 darkens the image
	// and greater than 1.0 lightens it.
	Gamma float64 `yaml:"gamma"`
	// Brightness in [-100, 100]. -100 gives a solid black image, 100 a solid white one.
	Brightness float64 `yaml:"brightness"`
	// Contrast in [-100, 100]. -100 gives a solid grey image.
	Contrast float64 `yaml:"contrast"`
	// Sharpen greater than 0 sharpens the image.
	Sharpen float64 `yaml:"sharpen"`
	// SigmoidMidpoint is the midpoint of contrast, in [0, 1].
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	// SigmoidFactor greater than 0 increases contrast, less than 0 decreases it.
	SigmoidFactor float64 `yaml:"sigmoid_factor"`
	Invert        bool    `yaml:"invert"`
}

// IsZero reports whether a leaves images untouched.
func (a Adjust) IsZero() bool {
	return (a.Gamma == 0 || a.Gamma == 1) && a.Brightness == 0 && a.Contrast == 0 &&
		a.Sharpen == 0 && a.SigmoidFactor == 0 && !a.Invert
}

// Apply returns img with the adjustments applied, in the order gamma,
// brightness, sharpen, contrast, sigmoid, invert.
func (a Adjust) Apply(img image.Image) image.Image {
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		midpoint := a.SigmoidMidpoint
		if midpoint == 0 {
			midpoint = 0.5
		}
		img = imaging.AdjustSigmoid(img, midpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}

// Fit scales img down, keeping its aspect ratio, so that its braille encoding
// fits within cols columns and lines lines of text. The last line is kept
// free for the prompt. Images that already fit are returned as is.
func Fit(img image.Image, cols, lines int) image.Image {
	if lines > 1 {
		lines--
	}
	// Multiply cols by 2 since each braille symbol is 2 pixels wide
	// Multiply lines by 4 since each braille symbol is 4 pixels high
	width, height := cols*2, lines*4
	bounds := img.Bounds()
	if width <= 0 || height <= 0 || (bounds.Dx() <= width && bounds.Dy() <= height) {
		return img
	}
	return resize.Thumbnail(uint(width), uint(height), img, resize.NearestNeighbor)
}
