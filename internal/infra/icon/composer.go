// Package icon renders navigation shortcut icons and assembles shortcut payloads.
package icon

import (
	"image"
	"image/color"
	"log/slog"

	"navshortcut/config"
	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/service"
	"navshortcut/internal/errors"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/draw"
)

// Composer implements service.IconComposer. All drawing state is prepared once at
// construction; Compose must not be called from more than one goroutine at a time.
type Composer struct {
	size        int
	borderWidth int
	borderColor *image.Uniform
	scheme      string

	labels service.LabelService
	text   *textStyle
	logger *slog.Logger

	silhouette *image.RGBA
	glyph      *image.RGBA
}

var _ service.IconComposer = (*Composer)(nil)

// NewComposer prepares fonts, the default silhouette and the navigation glyph.
func NewComposer(cfg *config.IconConfig, scheme string, labels service.LabelService, logger *slog.Logger) (*Composer, error) {
	if cfg == nil {
		return nil, errors.New("icon config is required")
	}
	if cfg.Size <= 0 {
		return nil, errors.Errorf("icon size must be positive, got %d", cfg.Size)
	}
	if labels == nil {
		return nil, errors.New("label service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	borderColor, err := ParseHexColor(cfg.BorderColor)
	if err != nil {
		return nil, errors.Wrap(err, "border colour")
	}
	textColor, err := ParseHexColor(cfg.TextColor)
	if err != nil {
		return nil, errors.Wrap(err, "text colour")
	}
	shadowColor, err := ParseHexColor(cfg.ShadowColor)
	if err != nil {
		return nil, errors.Wrap(err, "shadow colour")
	}
	glyphColor, err := ParseHexColor(cfg.GlyphColor)
	if err != nil {
		return nil, errors.Wrap(err, "glyph colour")
	}

	text, err := newTextStyle(cfg.TextSize, cfg.TextPadding, textColor, shadowColor)
	if err != nil {
		return nil, err
	}

	silhouette, err := renderSilhouette()
	if err != nil {
		return nil, err
	}

	glyph, err := renderGlyph(cfg.Density, premultiplied(glyphColor))
	if err != nil {
		return nil, err
	}

	return &Composer{
		size:        cfg.Size,
		borderWidth: cfg.BorderWidth,
		borderColor: image.NewUniform(borderColor),
		scheme:      scheme,
		labels:      labels,
		text:        text,
		logger:      logger,
		silhouette:  silhouette,
		glyph:       glyph,
	}, nil
}

// Compose renders the icon for record and photo and assembles the payload.
func (c *Composer) Compose(record *entity.AddressRecord, photo entity.PhotoBlob) *entity.ShortcutPayload {
	if record == nil {
		record = &entity.AddressRecord{}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	scaleFill(canvas, c.resolvePhoto(record.Ref, photo))
	c.drawBorder(canvas)

	if record.Found {
		if label := c.labels.TypeLabel(record.Type, record.CustomLabel()); label != "" {
			c.drawLabel(canvas, label)
		}
	}

	c.drawGlyph(canvas)

	return &entity.ShortcutPayload{
		DisplayName: record.DisplayName,
		Icon:        entity.NewComposedIcon(canvas),
		Intent:      entity.NewNavigationIntent(c.scheme, record.FormattedAddress),
	}
}

func (c *Composer) resolvePhoto(ref string, photo entity.PhotoBlob) image.Image {
	if photo == nil {
		return c.silhouette
	}

	img, err := decodePhoto(photo)
	if err != nil {
		c.logger.Warn("Falling back to default silhouette",
			slog.String("ref", ref),
			slog.Int("photoBytes", len(photo)),
			slog.Any("error", err),
		)

		return c.silhouette
	}

	return img
}

// drawBorder paints the outer borderWidth pixels on every side. A rectangle stroke of
// twice the width centred on the icon edge leaves exactly this band visible; each
// pixel is blended once so corners are no darker than edges.
func (c *Composer) drawBorder(canvas *image.RGBA) {
	b, s := c.borderWidth, c.size
	if b <= 0 {
		return
	}
	if 2*b >= s {
		draw.Draw(canvas, canvas.Bounds(), c.borderColor, image.Point{}, draw.Over)

		return
	}

	for _, strip := range []image.Rectangle{
		image.Rect(0, 0, s, b),
		image.Rect(0, s-b, s, s),
		image.Rect(0, b, b, s-b),
		image.Rect(s-b, b, s, s-b),
	} {
		draw.Draw(canvas, strip, c.borderColor, image.Point{}, draw.Over)
	}
}

// drawLabel fills the text band above the bottom border and writes label into it.
func (c *Composer) drawLabel(canvas *image.RGBA, label string) {
	b, s := c.borderWidth, c.size

	band := image.Rect(b, s-c.text.bandHeight(), s-b, s-b)
	draw.Draw(canvas, band, c.borderColor, image.Point{}, draw.Over)

	fitted := c.text.ellipsize(label, s-2*b)
	if fitted == "" {
		return
	}

	c.text.drawCentered(canvas, fitted, s-c.text.descent-c.text.padding)
}

// glyphRect is the top-right corner area of the navigation glyph, inset by the border.
func (c *Composer) glyphRect() image.Rectangle {
	b, s := c.borderWidth, c.size
	w, h := c.glyph.Bounds().Dx(), c.glyph.Bounds().Dy()

	return image.Rect(s-b-w, b, s-b, b+h)
}

func (c *Composer) drawGlyph(canvas *image.RGBA) {
	draw.Draw(canvas, c.glyphRect(), c.glyph, image.Point{}, draw.Over)
}

// renderGlyph rasterizes the navigation glyph at its density-scaled size.
func renderGlyph(density float64, fill color.RGBA) (*image.RGBA, error) {
	w := int(20 * density)
	h := int(19*density) + 1
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("glyph size %dx%d is empty at density %v", w, h, density)
	}

	glyph := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := rasterizeIcon(glyph, glyph.Bounds(), icons.MapsDirections, fill); err != nil {
		return nil, errors.Wrap(err, "render navigation glyph")
	}

	return glyph, nil
}
