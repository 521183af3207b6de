package lighting

import (
	"image/color"

	"github.com/Faultbox/vertexshade/pkg/math"
)

// Opaque is the alpha bits of a fully opaque packed color.
const Opaque uint32 = 0xFF000000

// PackRGB packs channels into an opaque 0xAARRGGBB value.
func PackRGB(r, g, b uint8) uint32 {
	return Opaque | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits the RGB channels out of a packed color.
func UnpackRGB(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Gray broadcasts a [0, 1] level into equal opaque channels, rounding to
// the nearest step.
func Gray(level float32) uint32 {
	return Opaque | 0x010101*uint32(math.Clamp(level, 0, 1)*255+0.5)
}

// ToNRGBA converts a packed color for the image package.
func ToNRGBA(c uint32) color.NRGBA {
	r, g, b := UnpackRGB(c)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c >> 24)}
}
