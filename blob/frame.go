package blob

import (
	"image"
	"time"
)

// Frame is a decoded depth frame.
//
// Pixels are in raster order, Width values per row. A zero pixel is an invalid
// reading (no return, out of range, occluded).
type Frame struct {
	Width       int
	Height      int
	CaptureTime time.Time
	Pixels      []uint16
}

// At returns the pixel at column x, row y. ok is false outside the frame.
func (f Frame) At(x, y int) (uint16, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0, false
	}

	return f.Pixels[y*f.Width+x], true
}

// Row returns row y as a subslice of Pixels, or nil if y is outside the frame.
func (f Frame) Row(y int) []uint16 {
	if y < 0 || y >= f.Height {
		return nil
	}

	start := y * f.Width

	return f.Pixels[start : start+f.Width : start+f.Width]
}

// ValidCount returns the number of nonzero pixels.
func (f Frame) ValidCount() int {
	n := 0
	for _, p := range f.Pixels {
		if p != 0 {
			n++
		}
	}

	return n
}

// Gray16 copies the frame into a new image.Gray16 with origin (0, 0).
func (f Frame) Gray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		row := img.Pix[y*img.Stride:]
		for x, p := range f.Row(y) {
			row[2*x] = byte(p >> 8)
			row[2*x+1] = byte(p)
		}
	}

	return img
}

// gray16ToPixels copies img into dst in raster order. image.Gray16 stores each pixel
// big-endian.
func gray16ToPixels(dst []uint16, img *image.Gray16) {
	bounds := img.Bounds()
	width := bounds.Dx()
	for y := range bounds.Dy() {
		row := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		out := dst[y*width : (y+1)*width]
		for x := range out {
			out[x] = uint16(row[2*x])<<8 | uint16(row[2*x+1])
		}
	}
}
