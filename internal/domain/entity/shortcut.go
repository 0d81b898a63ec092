package entity

import (
	"bytes"
	"image"
	"image/png"

	"navshortcut/internal/errors"
)

const (
	// IntentActionView is the launch action of navigation shortcuts.
	IntentActionView = "android.intent.action.VIEW"
	// IntentFlagClearTop brings an existing navigation task to the front instead of stacking a new one.
	IntentFlagClearTop = "FLAG_ACTIVITY_CLEAR_TOP"
)

// ComposedIcon is a fixed-size square raster. It is immutable once produced.
type ComposedIcon struct {
	img *image.RGBA
}

// NewComposedIcon wraps a rendered square image.
func NewComposedIcon(img *image.RGBA) *ComposedIcon {
	return &ComposedIcon{img: img}
}

// Image returns the rendered raster. Callers must not modify it.
func (i *ComposedIcon) Image() *image.RGBA {
	return i.img
}

// Size returns the side length in pixels.
func (i *ComposedIcon) Size() int {
	return i.img.Bounds().Dx()
}

// PNG encodes the icon.
func (i *ComposedIcon) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.img); err != nil {
		return nil, errors.Wrap(err, "failed to encode icon")
	}

	return buf.Bytes(), nil
}

// LaunchIntent describes what the platform launches when the shortcut is tapped.
type LaunchIntent struct {
	Action string   `json:"action"`
	URI    string   `json:"uri"`
	Flags  []string `json:"flags"`
}

// NewNavigationIntent builds the launch intent for a navigation app. The address is
// concatenated verbatim after "<scheme>:q="; an absent address is rendered as "null".
func NewNavigationIntent(scheme string, address *string) LaunchIntent {
	text := "null"
	if address != nil {
		text = *address
	}

	return LaunchIntent{
		Action: IntentActionView,
		URI:    scheme + ":q=" + text,
		Flags:  []string{IntentFlagClearTop},
	}
}

// ShortcutPayload bundles everything a launcher needs to install a shortcut.
// It is only built once every field has been resolved.
type ShortcutPayload struct {
	DisplayName *string
	Icon        *ComposedIcon
	Intent      LaunchIntent
}
