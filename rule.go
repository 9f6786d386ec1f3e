package dotmatrix

import (
	"fmt"
	"image"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ErrUnknownRule is the cause of every error ParseRule returns for text that
// is not one of the recognized rule formats.
var ErrUnknownRule = errors.New("unknown format for on off rule")

type ruleKind uint8

const (
	thresholdRule ruleKind = iota
	invertedThresholdRule
	borderRule
)

// Rule decides whether a single pixel of a Source is drawn as a filled dot.
// The zero Rule is Threshold(0).
type Rule struct {
	kind      ruleKind
	threshold int
	distance  int
}

// DefaultRule is the rule used when none is given.
var DefaultRule = Threshold(100)

// Threshold fills a dot when the sum of all of the pixel's channels, alpha
// included, is at least t.
func Threshold(t int) Rule {
	return Rule{kind: thresholdRule, threshold: t}
}

// InvertedThreshold fills a dot when the sum of the pixel's red, green and
// blue channels is at most t. Alpha is ignored.
func InvertedThreshold(t int) Rule {
	return Rule{kind: invertedThresholdRule, threshold: t}
}

// Border fills a dot when a pixel up to distance steps away in one of the four
// cardinal directions differs from it by at least threshold in any channel.
func Border(threshold, distance int) Rule {
	return Rule{kind: borderRule, threshold: threshold, distance: distance}
}

// IsOn reports whether the pixel at (x, y) is filled. Pixels out of bounds are
// never filled.
func (r Rule) IsOn(src Source, x, y int) bool {
	if !src.InBounds(x, y) {
		return false
	}
	switch r.kind {
	case invertedThresholdRule:
		return src.PixelAt(x, y).RGBSum() <= r.threshold
	case borderRule:
		return r.isBorder(src, x, y)
	default:
		return src.PixelAt(x, y).Sum() >= r.threshold
	}
}

var cardinals = [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (r Rule) isBorder(src Source, x, y int) bool {
	px := src.PixelAt(x, y)
	for _, d := range cardinals {
		for k := 1; k <= r.distance; k++ {
			// Negative neighbors clamp to the first row or column rather than
			// being skipped.
			nx, ny := clampZero(x+d.X*k), clampZero(y+d.Y*k)
			if !src.InBounds(nx, ny) {
				continue
			}
			if maxChannelDiff(src.PixelAt(nx, ny), px) >= r.threshold {
				return true
			}
		}
	}
	return false
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// maxChannelDiff is the largest absolute difference between matching
// channels of a and b, alpha included.
func maxChannelDiff(a, b Pixel) int {
	var diff int
	for i := range a {
		if d := absDiff(a[i], b[i]); d > diff {
			diff = d
		}
	}
	return diff
}

func (r Rule) String() string {
	switch r.kind {
	case invertedThresholdRule:
		return fmt.Sprintf("InvertedThreshold(%d)", r.threshold)
	case borderRule:
		return fmt.Sprintf("Border(%d,%d)", r.threshold, r.distance)
	default:
		return fmt.Sprintf("Threshold(%d)", r.threshold)
	}
}

var (
	thresholdPattern         = regexp.MustCompile(`^Threshold\((\d+)\)$`)
	invertedThresholdPattern = regexp.MustCompile(`^InvertedThreshold\((\d+)\)$`)
	borderPattern            = regexp.MustCompile(`^Border\((\d+),(\d+)\)$`)
)

// ParseRule reads one of Threshold(<uint>), InvertedThreshold(<uint>) or
// Border(<uint>,<uint>). Anything else fails with ErrUnknownRule as the
// cause; digits that do not fit a 32-bit integer fail with a
// *strconv.NumError as the cause.
func ParseRule(s string) (Rule, error) {
	if m := thresholdPattern.FindStringSubmatch(s); m != nil {
		t, err := parseParam(s, m[1])
		if err != nil {
			return Rule{}, err
		}
		return Threshold(t), nil
	}
	if m := invertedThresholdPattern.FindStringSubmatch(s); m != nil {
		t, err := parseParam(s, m[1])
		if err != nil {
			return Rule{}, err
		}
		return InvertedThreshold(t), nil
	}
	if m := borderPattern.FindStringSubmatch(s); m != nil {
		t, err := parseParam(s, m[1])
		if err != nil {
			return Rule{}, err
		}
		d, err := parseParam(s, m[2])
		if err != nil {
			return Rule{}, err
		}
		return Border(t, d), nil
	}
	return Rule{}, errors.Wrapf(ErrUnknownRule, "%q", s)
}

func parseParam(rule, digits string) (int, error) {
	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "number parse error in on off rule %q", rule)
	}
	return int(v), nil
}
