package dnd

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/oriel-sdk/oriel/engine/core"
)

// DecodeImage turns raw dropped bytes into the RGBA buffer an image drop
// event carries. PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func DecodeImage(data []byte) (*core.ImageData, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode dropped image: %w", err)
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)

	core.LogDebug("decoded dropped %s image, %dx%d", format, bounds.Dx(), bounds.Dy())
	return &core.ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: rgba.Stride,
		Pixels: rgba.Pix,
	}, nil
}
