package diagnostic

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	webp "github.com/deepteams/webp"

	"github.com/groopm/groopm/densitymap"
	"github.com/groopm/groopm/groopmlog"
)

var log = groopmlog.New("diagnostic")

// ExportHeatMap renders view 0 of m (raw density, or blurred when
// blurred is true) as a grayscale WebP image written to w. opts is passed
// through to webp.Encode verbatim; nil selects its defaults.
func ExportHeatMap(w io.Writer, m *densitymap.Map, blurred bool, opts *webp.EncoderOptions) error {
	scale := m.Scale()
	if scale < 1 {
		return ErrEmptyMap
	}

	img := image.NewGray(image.Rect(0, 0, scale, scale))

	lo, hi := math.MaxFloat64, -math.MaxFloat64
	grid := make([]float64, scale*scale)
	for x := 0; x < scale; x++ {
		for y := 0; y < scale; y++ {
			var v float64
			if blurred {
				v = m.BlurredAt(x, y)
			} else {
				v = m.RawAt(x, y)
			}
			grid[x*scale+y] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	span := hi - lo
	if span == 0 {
		log.Info("diagnostic: constant density plane, rendering flat image")
		span = 1
	}

	for x := 0; x < scale; x++ {
		for y := 0; y < scale; y++ {
			norm := (grid[x*scale+y] - lo) / span
			img.SetGray(x, y, color.Gray{Y: uint8(norm * 255)})
		}
	}

	if err := webp.Encode(w, img, opts); err != nil {
		return fmt.Errorf("diagnostic: encode heat map: %w", err)
	}

	return nil
}
