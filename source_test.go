package dotmatrix_test

import (
	"image"
	"image/color"

	"github.com/kevin-cantwell/dotmatrix/v2"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ImageSource", func() {
	rect := image.Rect(0, 0, 1, 1)

	ycbcr := func() image.Image {
		img := image.NewYCbCr(rect, image.YCbCrSubsampleRatio444)
		img.Cb[0], img.Cr[0] = 128, 128
		return img
	}

	table.DescribeTable("packs every format as RGBA",
		func(img image.Image, want dotmatrix.Pixel) {
			Expect(dotmatrix.NewImageSource(img).PixelAt(0, 0)).To(Equal(want))
		},
		table.Entry("gray", &image.Gray{Pix: []uint8{50}, Stride: 1, Rect: rect}, dotmatrix.Pixel{50, 50, 50, 255}),
		table.Entry("gray16", &image.Gray16{Pix: []uint8{0x80, 0x80}, Stride: 2, Rect: rect}, dotmatrix.Pixel{128, 128, 128, 255}),
		table.Entry("ycbcr", ycbcr(), dotmatrix.Pixel{0, 0, 0, 255}),
		table.Entry("cmyk", image.NewCMYK(rect), dotmatrix.Pixel{255, 255, 255, 255}),
		table.Entry("opaque palette", image.NewPaletted(rect, color.Palette{color.Black}), dotmatrix.Pixel{0, 0, 0, 255}),
		table.Entry("transparent palette", image.NewPaletted(rect, color.Palette{color.Transparent}), dotmatrix.Pixel{0, 0, 0, 0}),
		table.Entry("nrgba", &image.NRGBA{Pix: []uint8{10, 20, 30, 40}, Stride: 4, Rect: rect}, dotmatrix.Pixel{10, 20, 30, 40}),
		table.Entry("rgba", &image.RGBA{Pix: []uint8{255, 255, 255, 255}, Stride: 4, Rect: rect}, dotmatrix.Pixel{255, 255, 255, 255}),
	)

	It("copies pixels relative to the image's minimum point", func() {
		img := image.NewNRGBA(image.Rect(5, 5, 7, 8))
		img.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 4})
		img.SetNRGBA(6, 7, color.NRGBA{5, 6, 7, 8})
		src := dotmatrix.NewImageSource(img)

		Expect(src.Width()).To(Equal(2))
		Expect(src.Height()).To(Equal(3))
		Expect(src.PixelAt(0, 0)).To(Equal(dotmatrix.Pixel{1, 2, 3, 4}))
		Expect(src.PixelAt(1, 0)).To(Equal(dotmatrix.Pixel{}))
		Expect(src.PixelAt(1, 2)).To(Equal(dotmatrix.Pixel{5, 6, 7, 8}))
	})

	It("copies sub-images of non-NRGBA images the same way", func() {
		img := image.NewGray(image.Rect(0, 0, 4, 4))
		img.SetGray(3, 3, color.Gray{Y: 9})
		src := dotmatrix.NewImageSource(img.SubImage(image.Rect(2, 2, 4, 4)))

		Expect(src.Width()).To(Equal(2))
		Expect(src.PixelAt(0, 0)).To(Equal(dotmatrix.Pixel{0, 0, 0, 255}))
		Expect(src.PixelAt(1, 1)).To(Equal(dotmatrix.Pixel{9, 9, 9, 255}))
	})

	It("bounds checks every coordinate", func() {
		src := dotmatrix.NewImageSource(solid(2, 3, white))
		Expect(src.InBounds(0, 0)).To(BeTrue())
		Expect(src.InBounds(1, 2)).To(BeTrue())
		for _, pt := range []image.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
			Expect(src.InBounds(pt.X, pt.Y)).To(BeFalse(), "%v", pt)
		}
	})

	It("sums with and without alpha", func() {
		px := dotmatrix.Pixel{1, 2, 3, 4}
		Expect(px.Sum()).To(Equal(10))
		Expect(px.RGBSum()).To(Equal(6))
		Expect(dotmatrix.Pixel{255, 255, 255, 255}.Sum()).To(Equal(1020))
	})
})
