package dotmatrix_test

import (
	"image"

	"github.com/kevin-cantwell/dotmatrix/v2"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// points is a Sampler over a set of filled points. Points set to false exist
// but are unfilled; points missing from the map do not exist.
type points map[image.Point]bool

func (p points) At(x, y int) (bool, bool) {
	on, ok := p[image.Pt(x, y)]
	return on, ok
}

// liar claims every dot is filled but that none of them exist.
type liar struct{}

func (liar) At(x, y int) (bool, bool) { return true, false }

// braille returns the pattern whose bits are set in mask.
func braille(mask int) dotmatrix.Braille {
	var b dotmatrix.Braille
	for i, pt := range dotBits {
		b[pt.X][pt.Y] = mask&(1<<uint(i)) != 0
	}
	return b
}

// dotBits is the x,y position of each bit of a braille symbol, lowest first.
var dotBits = [8]image.Point{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{0, 3}, {1, 3},
}

var _ = Describe("Braille", func() {
	It("is blank with no dots", func() {
		Expect(dotmatrix.Braille{}.Rune()).To(Equal(rune(0x2800)))
		Expect(dotmatrix.Braille{}.String()).To(Equal("⠀"))
	})

	It("is full with every dot", func() {
		b := dotmatrix.Braille{{true, true, true, true}, {true, true, true, true}}
		Expect(b.Rune()).To(Equal(rune(0x28FF)))
		Expect(b.String()).To(Equal("⣿"))
	})

	It("maps each dot to its bit", func() {
		for i, pt := range dotBits {
			var b dotmatrix.Braille
			b[pt.X][pt.Y] = true
			Expect(b.Rune()).To(Equal(rune(0x2800+1<<uint(i))), "dot at %v", pt)
		}
	})

	It("changes by exactly the bit's value when one dot flips", func() {
		for mask := 0; mask < 256; mask++ {
			r := braille(mask).Rune()
			Expect(r).To(BeNumerically(">=", 0x2800))
			Expect(r).To(BeNumerically("<=", 0x28FF))
			for i := 0; i < 8; i++ {
				flipped := braille(mask ^ 1<<uint(i)).Rune()
				diff := int(flipped) - int(r)
				if diff < 0 {
					diff = -diff
				}
				Expect(diff).To(Equal(1<<uint(i)), "mask %08b bit %d", mask, i)
			}
		}
	})
})

var _ = Describe("RegionBraille", func() {
	It("samples the pixels of its own cell", func() {
		s := points{
			image.Pt(3, 11): true,
			// Neighboring cells.
			image.Pt(1, 11): true,
			image.Pt(4, 11): true,
			image.Pt(3, 12): true,
			image.Pt(3, 7):  true,
		}
		Expect(dotmatrix.RegionBraille(1, 2, s)).To(Equal(rune(0x2880)))
	})

	It("only depends on the dots sampled", func() {
		a, b := points{}, points{}
		for i, pt := range dotBits {
			a[pt] = i%2 == 0
			// Shift b to the cell at (2, 1).
			b[pt.Add(image.Pt(4, 4))] = i%2 == 0
		}
		Expect(dotmatrix.RegionBraille(0, 0, a)).To(Equal(rune(0x2800 + 0x55)))
		Expect(dotmatrix.RegionBraille(2, 1, b)).To(Equal(rune(0x2800 + 0x55)))
	})

	It("leaves missing dots unfilled", func() {
		Expect(dotmatrix.RegionBraille(0, 0, points{})).To(Equal(rune(0x2800)))
		Expect(dotmatrix.RegionBraille(5, 5, liar{})).To(Equal(rune(0x2800)))
	})
})
