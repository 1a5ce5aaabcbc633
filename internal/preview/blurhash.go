// Package preview computes lightweight placeholders for extracted covers.
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/bbrks/go-blurhash"
	"golang.org/x/image/draw"
)

// thumbSize bounds the image BlurHash is computed from.
const thumbSize = 64

// BlurHash components: 4 horizontal, 3 vertical.
const (
	xComponents = 4
	yComponents = 3
)

// BlurHash returns the BlurHash string for encoded JPEG or PNG data.
func BlurHash(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	hash, err := blurhash.Encode(xComponents, yComponents, thumbnail(img))
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}

// thumbnail scales img so neither side exceeds thumbSize, keeping the aspect
// ratio. Small images are returned as is.
func thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= thumbSize && h <= thumbSize {
		return img
	}

	var dw, dh int
	if w > h {
		dw, dh = thumbSize, max(h*thumbSize/w, 1)
	} else {
		dw, dh = max(w*thumbSize/h, 1), thumbSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
