package blob

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"
)

func colorGray16(v uint16) color.Gray16 {
	return color.Gray16{Y: v}
}

// syntheticDepth renders a tilted floor with a box in front of it and invalid pixels
// along the left edge and at random dropouts, in millimetres.
func syntheticDepth(width, height int, seed uint64) []uint16 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	pixels := make([]uint16, width*height)
	for y := range height {
		for x := range width {
			i := y*width + x
			switch {
			case x < width/20:
				pixels[i] = 0
			case rng.IntN(50) == 0:
				pixels[i] = 0
			case x > width/3 && x < width/2 && y > height/3 && y < height*2/3:
				pixels[i] = 900
			default:
				d := 1200 + 3000*float64(height-y)/float64(height) + float64(rng.IntN(5))
				pixels[i] = uint16(min(d, math.MaxUint16))
			}
		}
	}

	return pixels
}

var baseCaptureTime = time.Date(2025, 3, 14, 9, 26, 53, 589000000, time.UTC)
