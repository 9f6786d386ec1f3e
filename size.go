package dotmatrix

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ErrUnknownSize is the cause of every error ParseSize returns for text that
// is neither "_" nor WIDTHxHEIGHT.
var ErrUnknownSize = errors.New("unknown size format")

// Size is the width and height an image is resized to before it is encoded.
// The zero Size leaves images untouched.
type Size struct {
	Width, Height int
	sized         bool
}

// Sized returns a Size that resizes to exactly width x height pixels.
func Sized(width, height int) Size {
	return Size{Width: width, Height: height, sized: true}
}

// IsDefault reports whether s leaves images at their own size.
func (s Size) IsDefault() bool {
	return !s.sized
}

func (s Size) String() string {
	if !s.sized {
		return "_"
	}
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize reads "_" or WIDTHxHEIGHT.
func ParseSize(s string) (Size, error) {
	if s == "_" {
		return Size{}, nil
	}
	parts := strings.Split(s, "x")
	if len(parts) < 2 {
		return Size{}, errors.Wrapf(ErrUnknownSize, "%q", s)
	}
	w, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Size{}, errors.Wrapf(err, "couldn't parse an int in the image size %q", s)
	}
	h, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Size{}, errors.Wrapf(err, "couldn't parse an int in the image size %q", s)
	}
	return Sized(int(w), int(h)), nil
}

// Apply resizes img to s with a triangle (linear) filter. img is returned as
// is when s is the default or already matches its bounds.
func (s Size) Apply(img image.Image) image.Image {
	if !s.sized {
		return img
	}
	bounds := img.Bounds()
	if bounds.Dx() == s.Width && bounds.Dy() == s.Height {
		return img
	}
	if s.Width == 0 || s.Height == 0 {
		// imaging derives a zero dimension from the aspect ratio.
		return image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	}
	return imaging.Resize(img, s.Width, s.Height, imaging.Linear)
}
