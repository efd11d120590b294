package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLength8bpp(t *testing.T) {
	el := &LogImageElement{BitsPerSample: 8, Depth: 3}
	// 10 pixels * 3 channels = 30 bytes, rounded up to a 32-bit boundary.
	assert.Equal(t, 32, RowLength(10, el))
}

func TestRowLength16bpp(t *testing.T) {
	el := &LogImageElement{BitsPerSample: 16, Depth: 1}
	assert.Equal(t, 20, RowLength(10, el))
}

func TestRowLength10bppPadded(t *testing.T) {
	el := &LogImageElement{BitsPerSample: 10, Depth: 3, Packing: PackingPadRight}
	// 3 samples per 32-bit word: 10 pixels * 3 channels = 30 samples -> 10 words -> 40 bytes.
	assert.Equal(t, 40, RowLength(10, el))
}

func TestRowLength10bppTightlyPacked(t *testing.T) {
	el := &LogImageElement{BitsPerSample: 10, Depth: 1, Packing: PackingTight}
	// 10 samples * 10 bits = 100 bits -> ceil(100/32) = 4 words -> 16 bytes.
	assert.Equal(t, 16, RowLength(10, el))
}

func TestRowLength12bppInUshort(t *testing.T) {
	el := &LogImageElement{BitsPerSample: 12, Depth: 1, Packing: PackingPadRight}
	assert.Equal(t, 20, RowLength(10, el))
}

func TestMaxValue(t *testing.T) {
	assert.Equal(t, 1023, (&LogImageElement{BitsPerSample: 10}).MaxValue())
	assert.Equal(t, 4095, (&LogImageElement{BitsPerSample: 12}).MaxValue())
	assert.Equal(t, 65535, (&LogImageElement{BitsPerSample: 16}).MaxValue())
}
