package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestImage(width, height int, isMSB bool, bufSize int) *LogImage {
	return &LogImage{
		Width:  width,
		Height: height,
		IsMSB:  isMSB,
		handle: newMemHandle(make([]byte, bufSize)),
	}
}

func TestElement8RoundTrip(t *testing.T) {
	el := &LogImageElement{Descriptor: DescriptorRGB, Depth: 3, BitsPerSample: 8}
	li := newTestImage(2, 1, true, 64)

	src := []float32{0, 0.5, 1, 1, 0, 0.5}
	assert.NoError(t, li.writeElement8(el, src))

	got, err := li.readElement8(el)
	assert.NoError(t, err)
	for i := range src {
		assert.InDelta(t, src[i], got[i], 1.0/255.0)
	}
}

func TestElement16RoundTripBothEndiannesses(t *testing.T) {
	for _, isMSB := range []bool{true, false} {
		el := &LogImageElement{Descriptor: DescriptorRGB, Depth: 1, BitsPerSample: 16}
		li := newTestImage(4, 1, isMSB, 64)

		src := []float32{0, 0.25, 0.75, 1}
		assert.NoError(t, li.writeElement16(el, src))

		got, err := li.readElement16(el)
		assert.NoError(t, err)
		for i := range src {
			assert.InDelta(t, src[i], got[i], 1.0/65535.0)
		}
	}
}

func TestElement10RoundTripBothEndiannesses(t *testing.T) {
	for _, isMSB := range []bool{true, false} {
		el := &LogImageElement{Descriptor: DescriptorRed, Depth: 3, BitsPerSample: 10, Packing: PackingPadRight}
		li := newTestImage(2, 1, isMSB, 64)

		src := []float32{0, 0.5, 1, 1, 0, 0.5}
		assert.NoError(t, li.writeElement10(el, src))

		got, err := li.readElement10(el)
		assert.NoError(t, err)
		for i := range src {
			assert.InDelta(t, src[i], got[i], 1.0/1023.0)
		}
	}
}

func TestElement12RoundTrip(t *testing.T) {
	el := &LogImageElement{Descriptor: DescriptorRGB, Depth: 3, BitsPerSample: 12, Packing: PackingPadRight}
	li := newTestImage(1, 1, true, 32)

	src := []float32{0, 0.5, 1}
	assert.NoError(t, li.writeElement12(el, src))

	got, err := li.readElement12(el)
	assert.NoError(t, err)
	for i := range src {
		assert.InDelta(t, src[i], got[i], 1.0/4095.0)
	}
}

// TestElement10PlanarDPXElementUsesReverseOffset guards against gating the
// forward/reverse 10-bit offset quirk on an element's own depth instead of
// the image's composite depth: a planar DPX file has three single-channel
// (Depth==1) elements but li.Depth==3 overall, and must decode with the
// same reverse-offset convention writeElement10 always writes, not the
// single-channel-file forward convention.
func TestElement10PlanarDPXElementUsesReverseOffset(t *testing.T) {
	el := &LogImageElement{Descriptor: DescriptorRed, Depth: 1, BitsPerSample: 10, Packing: PackingPadRight}
	li := newTestImage(3, 1, true, 32)
	li.SrcFormat = FormatDPX
	li.Depth = 3 // composite depth of the planar RGB file this element belongs to

	src := []float32{0, 0.5, 1}
	assert.NoError(t, li.writeElement10(el, src))

	got, err := li.readElement10(el)
	assert.NoError(t, err)
	for i := range src {
		assert.InDelta(t, src[i], got[i], 1.0/1023.0)
	}
}

func TestReadElement10PackedSingleWord(t *testing.T) {
	el := &LogImageElement{Descriptor: DescriptorRed, Depth: 1, BitsPerSample: 10, Packing: PackingTight}
	li := newTestImage(3, 1, true, 32)

	// Manually pack three 10-bit samples (512, 1, 1023) LSB-first into one
	// word, matching readPackedBitstream's continuous bit cursor.
	var word uint32
	word |= uint32(512)
	word |= uint32(1) << 10
	word |= uint32(1023) << 20
	word = swapUint32(word, li.IsMSB)
	assert.NoError(t, writeUint32Row(li.handle, []uint32{word}))

	got, err := li.readElement10Packed(el)
	assert.NoError(t, err)
	assert.InDelta(t, 512.0/1023.0, got[0], 1e-9)
	assert.InDelta(t, 1.0/1023.0, got[1], 1e-9)
	assert.InDelta(t, 1023.0/1023.0, got[2], 1e-9)
}

// TestWriteElementDataRejectsTightPacking10bpp guards against routing
// PackingTight into writeElement10, which only implements the
// reverse-offset padded layout: RowLength sizes a tightly-packed row
// smaller than the padded writer needs, which would overflow the
// allocated word buffer for large enough width*depth. Tight packing on
// write must be rejected outright rather than mis-packed.
func TestWriteElementDataRejectsTightPacking10bpp(t *testing.T) {
	el := &LogImageElement{Descriptor: DescriptorRed, Depth: 1, BitsPerSample: 10, Packing: PackingTight}
	li := newTestImage(97, 1, true, 1024)

	err := li.writeElementData(el, make([]float32, 97))
	assert.Error(t, err)
}
