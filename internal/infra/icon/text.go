package icon

import (
	"image"
	"image/color"

	"navshortcut/internal/errors"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	ellipsis = "…"

	shadowRadius  = 4
	shadowOffsetY = 2
	// Three box blur passes of half the shadow radius approximate a gaussian of that radius.
	shadowBoxRadius = shadowRadius / 2
	shadowPasses    = 3
)

// textStyle renders the overlay label. A font.Face is not safe for concurrent use,
// so neither is textStyle.
type textStyle struct {
	face    font.Face
	ascent  int
	descent int
	padding int
	fill    *image.Uniform
	shadow  *image.Uniform
}

func newTextStyle(size float64, padding int, fill, shadow color.NRGBA) (*textStyle, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse overlay font")
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create overlay font face")
	}

	metrics := face.Metrics()

	return &textStyle{
		face:    face,
		ascent:  metrics.Ascent.Ceil(),
		descent: metrics.Descent.Ceil(),
		padding: padding,
		fill:    image.NewUniform(fill),
		shadow:  image.NewUniform(shadow),
	}, nil
}

// bandHeight is the height of the background band behind one line of text.
func (s *textStyle) bandHeight() int {
	return s.ascent + s.descent + 2*s.padding
}

// width returns the kerned advance of text rounded up to whole pixels.
func (s *textStyle) width(text string) int {
	return font.MeasureString(s.face, text).Ceil()
}

// ellipsize truncates text at the end and appends an ellipsis until it fits in maxWidth.
// It returns "" when not even the ellipsis fits.
func (s *textStyle) ellipsize(text string, maxWidth int) string {
	if s.width(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if s.width(candidate) <= maxWidth {
			return candidate
		}
	}

	return ""
}

// drawCentered draws text horizontally centred on canvas with its baseline at baseline,
// over a blurred drop shadow.
func (s *textStyle) drawCentered(canvas *image.RGBA, text string, baseline int) {
	bounds := canvas.Bounds()
	mask := image.NewAlpha(bounds)

	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: s.face,
		Dot: fixed.Point26_6{
			X: (fixed.I(bounds.Dx()) - font.MeasureString(s.face, text)) / 2,
			Y: fixed.I(baseline),
		},
	}
	d.DrawString(text)

	shadowMask := blurAlpha(mask, shadowBoxRadius, shadowPasses)
	draw.DrawMask(canvas, bounds.Add(image.Pt(0, shadowOffsetY)), s.shadow, image.Point{}, shadowMask, bounds.Min, draw.Over)
	draw.DrawMask(canvas, bounds, s.fill, image.Point{}, mask, bounds.Min, draw.Over)
}

// blurAlpha applies separable box blurs to an alpha mask.
func blurAlpha(src *image.Alpha, radius, passes int) *image.Alpha {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	cur := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur[y*w+x] = int(src.Pix[y*src.Stride+x])
		}
	}

	tmp := make([]int, w*h)
	for range passes {
		boxBlur(cur, tmp, w, h, radius, 1, w)
		boxBlur(tmp, cur, h, w, radius, w, 1)
	}

	dst := image.NewAlpha(bounds)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Pix[y*dst.Stride+x] = uint8(cur[y*w+x])
		}
	}

	return dst
}

// boxBlur blurs lines of src into dst. Each of the lines has length n; step is the
// distance between neighbours on a line and lineStep the distance between lines.
// Samples outside the line count as zero.
func boxBlur(src, dst []int, n, lines, radius, step, lineStep int) {
	window := 2*radius + 1
	for line := 0; line < lines; line++ {
		base := line * lineStep
		sum := 0
		for i := 0; i <= radius && i < n; i++ {
			sum += src[base+i*step]
		}
		for i := 0; i < n; i++ {
			dst[base+i*step] = sum / window
			if in := i + radius + 1; in < n {
				sum += src[base+in*step]
			}
			if out := i - radius; out >= 0 {
				sum -= src[base+out*step]
			}
		}
	}
}
