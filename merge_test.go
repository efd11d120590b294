package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSingleElementPassesThrough(t *testing.T) {
	li := &LogImage{Width: 1, Height: 1, Depth: 3}
	li.Elements = []LogImageElement{{Descriptor: DescriptorRGB, Depth: 3}}
	data := [][]float32{{0.1, 0.2, 0.3}}

	merged, composite, err := mergeElements(li, data)
	assert.NoError(t, err)
	assert.Equal(t, DescriptorRGB, composite)
	assert.Equal(t, data[0], merged)
}

func TestMergeThreePlanarChannelsIntoRGB(t *testing.T) {
	li := &LogImage{Width: 2, Height: 1, Depth: 3}
	li.Elements = []LogImageElement{
		{Descriptor: DescriptorRed, Depth: 1},
		{Descriptor: DescriptorGreen, Depth: 1},
		{Descriptor: DescriptorBlue, Depth: 1},
	}
	r := []float32{0.1, 0.4}
	g := []float32{0.2, 0.5}
	b := []float32{0.3, 0.6}

	merged, composite, err := mergeElements(li, [][]float32{r, g, b})
	assert.NoError(t, err)
	assert.Equal(t, DescriptorRGB, composite)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, merged)
}

func TestMergeRGBPlusAlpha(t *testing.T) {
	li := &LogImage{Width: 1, Height: 1, Depth: 4}
	li.Elements = []LogImageElement{
		{Descriptor: DescriptorRGB, Depth: 3},
		{Descriptor: DescriptorAlpha, Depth: 1},
	}
	rgb := []float32{0.1, 0.2, 0.3}
	a := []float32{0.9}

	merged, composite, err := mergeElements(li, [][]float32{rgb, a})
	assert.NoError(t, err)
	assert.Equal(t, DescriptorRGBA, composite)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.9}, merged)
}

func TestMergeLuminanceAndAlphaProducesYA(t *testing.T) {
	li := &LogImage{Width: 1, Height: 1, Depth: 2}
	li.Elements = []LogImageElement{
		{Descriptor: DescriptorLuminance, Depth: 1},
		{Descriptor: DescriptorAlpha, Depth: 1},
	}
	y := []float32{0.42}
	a := []float32{0.75}

	merged, composite, err := mergeElements(li, [][]float32{y, a})
	assert.NoError(t, err)
	assert.Equal(t, DescriptorYA, composite)
	assert.Equal(t, []float32{0.42, 0.75}, merged)
}

func TestMergeLoneLuminancePassesThrough(t *testing.T) {
	li := &LogImage{Width: 2, Height: 1, Depth: 1}
	li.Elements = []LogImageElement{{Descriptor: DescriptorLuminance, Depth: 1}}
	y := []float32{0.2, 0.4}

	merged, composite, err := mergeElements(li, [][]float32{y})
	assert.NoError(t, err)
	assert.Equal(t, DescriptorLuminance, composite)
	assert.Equal(t, y, merged)
}

func TestMergeUnknownCompositeIsAnError(t *testing.T) {
	li := &LogImage{Width: 1, Height: 1, Depth: 1}
	li.Elements = []LogImageElement{
		{Descriptor: DescriptorDepth, Depth: 1},
		{Descriptor: DescriptorComposite, Depth: 1},
	}
	_, _, err := mergeElements(li, [][]float32{{0}, {0}})
	assert.Error(t, err)
}
