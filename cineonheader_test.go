package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCineonHeaderWriteThenReadRoundTrip(t *testing.T) {
	li := &LogImage{
		Width:  8,
		Height: 4,
		IsMSB:  true,
		Elements: []LogImageElement{
			{
				Descriptor:      DescriptorRGB,
				Depth:           3,
				BitsPerSample:   10,
				Packing:         PackingPadRight,
				Transfer:        TransferPrintingDensity,
				DataOffset:      cineonGenericHeaderSize,
				RefLowData:      0,
				RefHighData:     1023,
				RefLowQuantity:  0,
				RefHighQuantity: 2.048,
			},
		},
		Creator: "ohcineon",
		handle:  newMemHandle(make([]byte, cineonGenericHeaderSize)),
	}

	assert.NoError(t, writeCineonHeader(li))

	got := &LogImage{IsMSB: true, handle: newMemHandle(li.handle.(*memHandle).Bytes())}
	assert.NoError(t, readCineonHeader(got))

	assert.Equal(t, li.Width, got.Width)
	assert.Equal(t, li.Height, got.Height)
	assert.Equal(t, 1, len(got.Elements))
	assert.Equal(t, DescriptorRGB, got.Elements[0].Descriptor)
	assert.Equal(t, 10, got.Elements[0].BitsPerSample)
	// Cineon semantics are fixed regardless of what was written.
	assert.Equal(t, PackingPadRight, got.Elements[0].Packing)
	assert.Equal(t, TransferPrintingDensity, got.Elements[0].Transfer)
	assert.Equal(t, int64(cineonGenericHeaderSize), got.Elements[0].DataOffset)
	assert.Equal(t, 1023, got.Elements[0].RefHighData)
	assert.InDelta(t, 2.048, got.Elements[0].RefHighQuantity, 1e-6)
	assert.Equal(t, "ohcineon", got.Creator)
}

func TestCineonHeaderRoundTripBothByteOrders(t *testing.T) {
	for _, isMSB := range []bool{true, false} {
		li := &LogImage{
			Width:  5,
			Height: 2,
			IsMSB:  isMSB,
			Elements: []LogImageElement{
				{Descriptor: DescriptorRGB, Depth: 3, BitsPerSample: 8, DataOffset: cineonGenericHeaderSize},
			},
			handle: newMemHandle(make([]byte, cineonGenericHeaderSize)),
		}
		assert.NoError(t, writeCineonHeader(li))

		got := &LogImage{IsMSB: isMSB, handle: newMemHandle(li.handle.(*memHandle).Bytes())}
		assert.NoError(t, readCineonHeader(got))
		assert.Equal(t, 5, got.Width)
		assert.Equal(t, 2, got.Height)
	}
}

func TestIsCineonMagicDetectsByteOrderViaDispatch(t *testing.T) {
	var be [4]byte
	putHeaderU32(be[:], cineonMagic, true)
	assert.True(t, detectIsMSB(cineonMagic, cineonMagicSwap, be[:]))

	var le [4]byte
	putHeaderU32(le[:], cineonMagic, false)
	assert.False(t, detectIsMSB(cineonMagic, cineonMagicSwap, le[:]))
}
