package logimage

// GetDataRGBA reads every element, merges the planes into one composite
// raster (spec §4.3) and converts it to interleaved RGBA (spec §4.4). When
// outIsLinear is true, the RGB channels are additionally passed through the
// sRGB→linear LUT before returning; alpha is never touched. The returned
// slice has length Width*Height*4.
func (li *LogImage) GetDataRGBA(outIsLinear bool) ([]float32, error) {
	planeData := make([][]float32, len(li.Elements))
	for i := range li.Elements {
		debugf(1, "logimage: reading element %d (%s, %d bpp)\n", i, li.Elements[i].Descriptor, li.Elements[i].BitsPerSample)
		data, err := li.readElementData(&li.Elements[i])
		if err != nil {
			return nil, err
		}
		planeData[i] = data
	}

	merged, composite, err := mergeElements(li, planeData)
	if err != nil {
		return nil, err
	}

	rgba, err := li.mergedToRGBA(composite, merged)
	if err != nil {
		return nil, err
	}

	if outIsLinear {
		lut := sRGBToLinLUT(&li.Elements[0])
		applyRGBLUT(rgba, lut, li.Elements[0].MaxValue())
	}
	return rgba, nil
}

// SetDataRGBA writes an interleaved RGBA raster out through every declared
// element, re-encoding through each element's transfer and bit depth. When
// inIsLinear is true, the RGB channels are first converted from linear to
// sRGB via the lin→sRGB LUT. It requires a single element covering the
// whole composite (spec §9's multi-element write path is out of scope,
// mirroring the write-side limitations already present in
// writeElementData's packing restrictions).
func (li *LogImage) SetDataRGBA(rgba []float32, inIsLinear bool) error {
	if len(rgba) != li.Width*li.Height*4 {
		return ArgumentError("RGBA buffer does not match the image's width*height*4")
	}
	if len(li.Elements) != 1 {
		return UnsupportedError("writing a multi-element composite is not supported")
	}

	el := &li.Elements[0]

	if inIsLinear {
		srgb := make([]float32, len(rgba))
		copy(srgb, rgba)
		lut := linToSRGBLUT(el)
		applyRGBLUT(srgb, lut, el.MaxValue())
		rgba = srgb
	}

	planar, err := li.rgbaToMerged(el.Descriptor, rgba)
	if err != nil {
		return err
	}

	debugf(1, "logimage: writing element 0 (%s, %d bpp)\n", el.Descriptor, el.BitsPerSample)
	return li.writeElementData(el, planar)
}
