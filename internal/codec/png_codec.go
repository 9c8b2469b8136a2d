// Package codec turns reconstructed pixel buffers into a web-friendly image
// stream. PNG is used because snapshots must survive an encode/decode
// round-trip without color loss.
package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
)

const ContentType = "image/png"

func EncodePNG(buffer *reconstruction.Buffer) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			pix := buffer.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: pix.R, G: pix.G, B: pix.B, A: 0xff})
		}
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
