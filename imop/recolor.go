package imop

import (
	"image"
	"image/color"
)

// Whiteout replaces the color of every pixel with pure white,
// preserving the alpha channel. Android expects the monochrome
// adaptive layer to be shaped this way.
func Whiteout(src *image.NRGBA) *image.NRGBA {
	var (
		bounds = src.Bounds()
		dst    = image.NewNRGBA(bounds)
		dx     = bounds.Dx()
		dy     = bounds.Dy()
	)

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			_, _, _, a := src.At(x, y).RGBA()
			dst.SetNRGBA(x, y, color.NRGBA{
				R: 0xff, G: 0xff, B: 0xff,
				A: uint8(a >> 8),
			})
		}
	}

	return dst
}

// Monochrome converts the image to a single luminance channel,
// preserving the alpha channel.
func Monochrome(src *image.NRGBA) *image.NRGBA {
	var (
		bounds = src.Bounds()
		dst    = image.NewNRGBA(bounds)
		dx     = bounds.Dx()
		dy     = bounds.Dy()
	)

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			// The straight channel values are read directly, since the
			// premultiplied ones would darken the semi-transparent pixels.
			px := src.NRGBAAt(x, y)
			lum := float32(px.R)*0.299 + float32(px.G)*0.587 + float32(px.B)*0.114
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(lum),
				G: uint8(lum),
				B: uint8(lum),
				A: px.A,
			})
		}
	}

	return dst
}

// Tint replaces the color of every pixel with the provided color,
// modulating its opacity with the source alpha channel.
func Tint(src *image.NRGBA, c color.NRGBA) *image.NRGBA {
	var (
		bounds = src.Bounds()
		dst    = image.NewNRGBA(bounds)
		dx     = bounds.Dx()
		dy     = bounds.Dy()
	)

	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			_, _, _, a := src.At(x, y).RGBA()
			alpha := uint32(a>>8) * uint32(c.A) / 255
			dst.SetNRGBA(x, y, color.NRGBA{
				R: c.R, G: c.G, B: c.B,
				A: uint8(alpha),
			})
		}
	}

	return dst
}
