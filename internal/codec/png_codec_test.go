package codec

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/reconstruction"
)

func TestEncodePNGRoundTripIsLossless(t *testing.T) {
	buffer := reconstruction.NewBuffer(3, 2, reconstruction.White)
	buffer.Set(0, 0, reconstruction.RGB{R: 0xff})
	buffer.Set(2, 1, reconstruction.RGB{R: 0x12, G: 0x34, B: 0x56})

	encoded, err := EncodePNG(buffer)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(encoded))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			want := buffer.At(x, y)
			r, g, b, _ := img.At(x, y).RGBA()
			assert.Equal(t, uint32(want.R), r>>8)
			assert.Equal(t, uint32(want.G), g>>8)
			assert.Equal(t, uint32(want.B), b>>8)
		}
	}
}
