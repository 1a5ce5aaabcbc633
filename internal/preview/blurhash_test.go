package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestBlurHash_PNG(t *testing.T) {
	data := encodePNG(t, gradient(32, 32))

	hash, err := BlurHash(data)
	require.NoError(t, err)
	// 1 size flag + 1 max AC + 4 DC + 2 per AC component
	assert.Len(t, hash, 6+2*(xComponents*yComponents-1))

	again, err := BlurHash(data)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}

func TestBlurHash_JPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradient(200, 120), nil))

	hash, err := BlurHash(buf.Bytes())
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestBlurHash_InvalidImage(t *testing.T) {
	_, err := BlurHash([]byte{0xFF, 0xD8, 0xFF, 0xD9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"small kept", 40, 20, 40, 20},
		{"landscape", 640, 320, 64, 32},
		{"portrait", 300, 600, 32, 64},
		{"extreme", 1000, 2, 64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := thumbnail(gradient(tt.w, tt.h)).Bounds()
			assert.Equal(t, tt.wantW, b.Dx())
			assert.Equal(t, tt.wantH, b.Dy())
		})
	}
}
