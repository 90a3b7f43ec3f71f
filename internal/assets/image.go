// Package assets decodes texture image files into pixel data ready for upload.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage reads an image file and returns it as RGBA with the bottom
// row first, the order glTexImage2D expects.
func DecodeImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	return flipToRGBA(img), nil
}

// flipToRGBA converts img to RGBA and mirrors it vertically.
func flipToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	dst := image.NewRGBA(src.Bounds())
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+rowBytes]
		dstY := b.Dy() - 1 - y
		copy(dst.Pix[dstY*dst.Stride:dstY*dst.Stride+rowBytes], srcRow)
	}
	return dst
}
