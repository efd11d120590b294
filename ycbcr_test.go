package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYUVMatrixNeutralGrayStaysGray(t *testing.T) {
	li := &LogImage{}
	el := &LogImageElement{
		BitsPerSample: 8,
		Transfer:      TransferCCIR601,
		RefLowData:    16,
		RefHighData:   235,
	}

	m, err := yuvToRGBMatrix(li, el)
	assert.NoError(t, err)

	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	r, g, b := ycbcrToRGB(m, 0.5-refLow, 0, 0)
	assert.InDelta(t, r, g, 1e-9)
	assert.InDelta(t, g, b, 1e-9)
}

// TestYUVMatrixBlackAndWhitePoints pins the two literal reference points
// spec §8 calls out directly: neutral Y at the black reference code decodes
// to 0, and neutral Y at the white reference code decodes to 1.
func TestYUVMatrixBlackAndWhitePoints(t *testing.T) {
	li := &LogImage{}
	el := &LogImageElement{
		BitsPerSample: 8,
		Transfer:      TransferCCIR601,
		RefLowData:    16,
		RefHighData:   235,
	}

	m, err := yuvToRGBMatrix(li, el)
	assert.NoError(t, err)

	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	refHigh := float64(el.RefHighData) / float64(el.MaxValue())

	r, g, b := ycbcrToRGB(m, refLow-refLow, 0, 0)
	assert.InDelta(t, 0, r, 1e-6)
	assert.InDelta(t, 0, g, 1e-6)
	assert.InDelta(t, 0, b, 1e-6)

	r, g, b = ycbcrToRGB(m, refHigh-refLow, 0, 0)
	assert.InDelta(t, 1, r, 1e-6)
	assert.InDelta(t, 1, g, 1e-6)
	assert.InDelta(t, 1, b, 1e-6)
}

func TestYUVMatrixUnsupportedTransfer(t *testing.T) {
	_, err := yuvToRGBMatrix(&LogImage{}, &LogImageElement{BitsPerSample: 8, Transfer: TransferLogarithmic, RefHighData: 255})
	assert.Error(t, err)
}

func TestConvertCbYCrToRGBAClampsToUnitRange(t *testing.T) {
	li := &LogImage{Width: 1, Height: 1}
	el := &LogImageElement{
		BitsPerSample: 8,
		Transfer:      TransferCCIR601,
		RefLowData:    16,
		RefHighData:   235,
	}
	// Cb and Cr pushed to their extremes should clamp, not overflow [0,1].
	src := []float32{1.0, 0.5, 1.0}
	out, err := convertCbYCrToRGBA(li, el, src)
	assert.NoError(t, err)
	for _, v := range out[:3] {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
	assert.Equal(t, float32(1.0), out[3])
}

func TestConvertCbYCrYExpandsToTwoPixels(t *testing.T) {
	li := &LogImage{Width: 2, Height: 1}
	el := &LogImageElement{
		BitsPerSample: 8,
		Transfer:      TransferCCIR601,
		RefLowData:    16,
		RefHighData:   235,
	}
	src := []float32{0.5, 0.5, 0.5, 0.6}
	out, err := convertCbYCrYToRGBA(li, el, src)
	assert.NoError(t, err)
	assert.Len(t, out, 8)
}
