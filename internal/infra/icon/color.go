package icon

import (
	"image/color"
	"strconv"
	"strings"

	"navshortcut/internal/errors"
)

// ParseHexColor parses #AARRGGBB or #RRGGBB into a non-premultiplied colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return color.NRGBA{}, errors.Errorf("invalid colour %q: want #AARRGGBB or #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid colour %q", s)
	}

	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// premultiplied converts c to the alpha-premultiplied form used by IconVG palettes.
func premultiplied(c color.NRGBA) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
