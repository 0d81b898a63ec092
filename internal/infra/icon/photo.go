package icon

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/errors"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	silhouetteSize = 256

	maxPhotoSide   = 4096
	maxPhotoPixels = maxPhotoSide * maxPhotoSide
)

var (
	silhouetteBackground = image.NewUniform(color.RGBA{R: 0xE3, G: 0xE3, B: 0xE3, A: 0xFF})
	silhouetteFigure     = color.RGBA{R: 0xA8, G: 0xA8, B: 0xA8, A: 0xFF}
)

// decodePhoto decodes any registered raster format. The header is checked first so that
// oversized images are rejected before their pixels are allocated.
func decodePhoto(blob entity.PhotoBlob) (image.Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(blob))
	if err != nil {
		return nil, errors.Wrap(err, "decode photo header")
	}
	if !isSafePhotoBounds(cfg.Width, cfg.Height) {
		return nil, errors.Errorf("%s photo of %dx%d exceeds size limits", format, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, errors.Wrap(err, "decode photo")
	}
	if img.Bounds().Empty() {
		return nil, errors.Errorf("decoded %s photo is empty", format)
	}

	return img, nil
}

func isSafePhotoBounds(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width > maxPhotoSide || height > maxPhotoSide {
		return false
	}

	return int64(width)*int64(height) <= maxPhotoPixels
}

// renderSilhouette draws the default "no photo" picture: a grey person on a light background.
func renderSilhouette() (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, silhouetteSize, silhouetteSize))
	draw.Draw(canvas, canvas.Bounds(), silhouetteBackground, image.Point{}, draw.Src)

	if err := rasterizeIcon(canvas, canvas.Bounds(), icons.SocialPerson, silhouetteFigure); err != nil {
		return nil, errors.Wrap(err, "render silhouette")
	}

	return canvas, nil
}

// scaleFill scales src over the whole of dst with bilinear filtering.
func scaleFill(dst *image.RGBA, src image.Image) {
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}

// rasterizeIcon renders an IconVG graphic into r of dst, painting it with fill.
func rasterizeIcon(dst draw.Image, r image.Rectangle, graphic []byte, fill color.RGBA) error {
	palette := iconvg.DefaultPalette
	palette[0] = fill

	var z iconvg.Rasterizer
	z.SetDstImage(dst, r, draw.Over)

	return iconvg.Decode(&z, graphic, &iconvg.DecodeOptions{Palette: &palette})
}
