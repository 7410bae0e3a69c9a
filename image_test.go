package appicon

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestImage_EncodeDecodeRoundtrip(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sample.png")

	src := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	src.SetNRGBA(3, 5, color.NRGBA{R: 33, G: 150, B: 243, A: 255})

	if err := encodePNG(src, out); err != nil {
		t.Fatalf("could not encode the image file: %v", err)
	}

	img, err := decodeImg(out)
	if err != nil {
		t.Fatalf("could not decode the image file: %v", err)
	}

	if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != 32 || dy != 16 {
		t.Errorf("Decoded image expected to be 32x16. Got %dx%d", dx, dy)
	}

	r, g, b, a := img.At(3, 5).RGBA()
	got := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	if got != (color.NRGBA{R: 33, G: 150, B: 243, A: 255}) {
		t.Errorf("Decoded pixel expected to survive the roundtrip. Got %v", got)
	}
}

func TestImage_DecodeShouldRejectNonImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sample.txt")

	if err := os.WriteFile(out, []byte("not an image"), 0644); err != nil {
		t.Fatalf("could not write the test file: %v", err)
	}

	if _, err := decodeImg(out); err == nil {
		t.Errorf("A non image file should have been rejected")
	}
}

func TestImage_ImgToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 12, 12))
	src.SetRGBA(4, 4, color.RGBA{R: 233, G: 30, B: 99, A: 255})

	res := imgToNRGBA(src)

	if res.Bounds().Min != (image.Point{}) {
		t.Errorf("Converted image expected to have its min-point at (0, 0)")
	}
	if dx, dy := res.Bounds().Dx(), res.Bounds().Dy(); dx != 10 || dy != 10 {
		t.Errorf("Converted image expected to be 10x10. Got %dx%d", dx, dy)
	}
	if got := res.NRGBAAt(2, 2); got != (color.NRGBA{R: 233, G: 30, B: 99, A: 255}) {
		t.Errorf("Converted pixel expected to keep its color. Got %v", got)
	}

	// An NRGBA image anchored at the origin is returned as is.
	nrgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if imgToNRGBA(nrgba) != nrgba {
		t.Errorf("An NRGBA image anchored at the origin should have been returned untouched")
	}
}

func TestImage_ImgToNRGBAShiftedOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	src.SetNRGBA(5, 5, color.NRGBA{R: 33, G: 150, B: 243, A: 255})
	src.SetNRGBA(14, 14, color.NRGBA{R: 233, G: 30, B: 99, A: 255})

	res := imgToNRGBA(src)

	if res.Bounds().Min != (image.Point{}) {
		t.Errorf("Converted image expected to have its min-point at (0, 0)")
	}
	if got := res.NRGBAAt(0, 0); got != (color.NRGBA{R: 33, G: 150, B: 243, A: 255}) {
		t.Errorf("First row pixel expected to keep its color. Got %v", got)
	}
	if got := res.NRGBAAt(9, 9); got != (color.NRGBA{R: 233, G: 30, B: 99, A: 255}) {
		t.Errorf("Last row pixel expected to keep its color. Got %v", got)
	}
}
