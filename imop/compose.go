package imop

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Bitmap holds the destination image of a composition operation.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap instantiates a new transparent bitmap of the provided dimensions.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Trim crops the image to the bounding box of the pixels whose alpha
// channel exceeds the threshold. It returns the source image untouched
// in case it's fully transparent.
func Trim(src *image.NRGBA, threshold uint8) *image.NRGBA {
	var (
		bounds = src.Bounds()
		minX   = bounds.Max.X
		minY   = bounds.Max.Y
		maxX   = bounds.Min.X
		maxY   = bounds.Min.Y
	)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if minX > maxX || minY > maxY {
		return src
	}

	return imaging.Crop(src, image.Rect(minX, minY, maxX+1, maxY+1))
}

// FitCenter scales the source image down to fit into a square canvas of the
// provided size, preserving the aspect ratio, and pastes it centered onto a
// transparent background. The ratio argument expresses how much of the canvas
// the content may occupy, the rest is left as padding on each side.
func FitCenter(src image.Image, size int, ratio float64) *image.NRGBA {
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	zone := int(float64(size) * ratio)

	fitted := imaging.Fit(src, zone, zone, imaging.Lanczos)
	canvas := imaging.New(size, size, color.NRGBA{})

	return imaging.PasteCenter(canvas, fitted)
}

// Fill paints a square canvas of the provided size with a solid color.
func Fill(size int, c color.NRGBA) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)

	return canvas
}

// RoundedRect paints a square canvas filled with a rounded rectangle
// of the provided corner radius and color. It's used as the backdrop
// of the legacy launcher icons.
func RoundedRect(size int, radius float64, c color.NRGBA) *image.NRGBA {
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), radius)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
	dc.Fill()

	return imaging.Clone(dc.Image())
}

// Over draws the source image over the backdrop using the source-over
// composition rule and returns the resulting bitmap. The two images
// are expected to share the same dimensions.
func Over(bitmap *Bitmap, src, dst *image.NRGBA) *Bitmap {
	if bitmap == nil {
		bitmap = NewBitmap(dst.Bounds())
	}

	draw.Draw(bitmap.Img, bitmap.Img.Bounds(), dst, dst.Bounds().Min, draw.Src)
	draw.Draw(bitmap.Img, bitmap.Img.Bounds(), src, src.Bounds().Min, draw.Over)

	return bitmap
}
