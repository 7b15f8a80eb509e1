package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image is a dense row-major float RGB framebuffer. Row 0 is at the
// bottom of the frame, matching the camera's image-point convention.
// Values are unclamped; conversion to a displayable image clamps.
type Image struct {
	Width  int
	Height int
	Pix    []float64 // Height*Width*3 values, channel order R, G, B
}

// NewImage creates a zeroed framebuffer of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// Set stores a color at pixel (x, y), with y = 0 at the bottom
func (img *Image) Set(x, y int, c core.Vec3) {
	i := (y*img.Width + x) * 3
	img.Pix[i] = c.X
	img.Pix[i+1] = c.Y
	img.Pix[i+2] = c.Z
}

// At returns the color at pixel (x, y), with y = 0 at the bottom
func (img *Image) At(x, y int) core.Vec3 {
	i := (y*img.Width + x) * 3
	return core.NewVec3(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
}

// RGBA converts the framebuffer to an 8-bit image with the origin at the
// top-left, applying gamma correction when gamma > 0 and != 1, then
// clamping to [0, 1]
func (img *Image) RGBA(gamma float64) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			if gamma > 0 && gamma != 1 {
				c = c.GammaCorrect(gamma)
			}
			c = c.Clamp(0.0, 1.0)

			out.SetRGBA(x, img.Height-1-y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return out
}
