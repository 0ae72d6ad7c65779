package window

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"golang.org/x/image/draw"
)

// IconSize is the edge length window icons are resampled to.
const IconSize = 64

// DecodeIcon decodes an icon image (PNG).
func DecodeIcon(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding icon: %w", err)
	}
	return img, nil
}

// IconImage converts img to a size x size RGBA image.
func IconImage(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
