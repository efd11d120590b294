package logimage

// mergedToRGBA turns the interleaved composite produced by mergeElements
// into RGBA, applying whatever colorimetric conversion the representative
// element's transfer calls for (spec §4.4). The first element is always the
// one whose Transfer/reference values govern the composite: by convention
// every plane of a given file shares the same transfer.
func (li *LogImage) mergedToRGBA(composite Descriptor, data []float32) ([]float32, error) {
	el := &li.Elements[0]

	switch composite {
	case DescriptorRGB:
		return li.convertPlanarRGBA(el, data, 3)
	case DescriptorRGBA:
		return li.convertPlanarRGBA(el, data, 4)
	case DescriptorABGR:
		rgba := convertABGRToRGBA(data)
		if el.Transfer == TransferPrintingDensity {
			applyRGBLUT(rgba, logToLinLUT(li, el), el.MaxValue())
		}
		return rgba, nil
	case DescriptorCbYCr:
		return convertCbYCrToRGBA(li, el, data)
	case DescriptorCbYCrA:
		return convertCbYCrAToRGBA(li, el, data)
	case DescriptorCbYCrY:
		return convertCbYCrYToRGBA(li, el, data)
	case DescriptorCbYACrYA:
		return convertCbYACrYAToRGBA(li, el, data)
	case DescriptorLuminance:
		return convertLuminanceToRGBA(li, el, data, false, nil)
	case DescriptorYA:
		return convertYAToRGBA(li, el, data)
	default:
		return nil, UnsupportedError("no RGBA conversion is defined for this composite descriptor")
	}
}

// rgbaToMerged is mergedToRGBA's inverse: given an RGBA raster, it produces
// the interleaved composite a writer would store, re-encoding through
// whichever transfer the target element declares.
func (li *LogImage) rgbaToMerged(composite Descriptor, rgba []float32) ([]float32, error) {
	el := &li.Elements[0]

	switch composite {
	case DescriptorRGB, DescriptorRGBA:
		depth := 3
		if composite == DescriptorRGBA {
			depth = 4
		}
		return li.convertRGBAToPlanar(el, rgba, depth)
	default:
		return nil, UnsupportedError("writing this composite descriptor is not supported")
	}
}

// convertPlanarRGBA converts a 3- or 4-channel interleaved plane that is
// already channel-order R,G,B[,A] into RGBA, applying the printing-density
// LUT when the element's transfer is PrintingDensity and passing values
// through unchanged for every other transfer.
func (li *LogImage) convertPlanarRGBA(el *LogImageElement, data []float32, depth int) ([]float32, error) {
	n := li.Width * li.Height
	dst := make([]float32, n*4)

	var lut []float32
	switch el.Transfer {
	case TransferPrintingDensity:
		lut = logToLinLUT(li, el)
	}

	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			v := data[i*depth+c]
			if lut != nil {
				v = lut[lutIndex(v, el.MaxValue())]
			}
			dst[i*4+c] = v
		}
		if depth == 4 {
			dst[i*4+3] = data[i*4+3]
		} else {
			dst[i*4+3] = 1.0
		}
	}
	return dst, nil
}

// convertRGBAToPlanar is convertPlanarRGBA's inverse, used when writing.
func (li *LogImage) convertRGBAToPlanar(el *LogImageElement, rgba []float32, depth int) ([]float32, error) {
	n := li.Width * li.Height
	dst := make([]float32, n*depth)

	var lut []float32
	switch el.Transfer {
	case TransferPrintingDensity:
		lut = linToLogLUT(li, el)
	}

	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			v := rgba[i*4+c]
			if lut != nil {
				v = lut[lutIndex(v, el.MaxValue())]
			}
			dst[i*depth+c] = v
		}
		if depth == 4 {
			dst[i*depth+3] = rgba[i*4+3]
		}
	}
	return dst, nil
}

// convertABGRToRGBA only reverses channel order; mergedToRGBA applies the
// printing-density LUT to the result when the element's transfer calls for it.
func convertABGRToRGBA(data []float32) []float32 {
	n := len(data) / 4
	dst := make([]float32, n*4)
	for i := 0; i < n; i++ {
		a, b, g, r := data[i*4+0], data[i*4+1], data[i*4+2], data[i*4+3]
		dst[i*4+0] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = a
	}
	return dst
}

// convertYAToRGBA expands a merged [Y, A] stream (the result of combining a
// lone Luminance plane with a lone Alpha plane) into greyscale RGBA. It
// de-interleaves Y and A and defers the actual Y->RGB scaling to
// convertLuminanceToRGBA, so a YA plane goes through the same
// conversion-matrix scaling and refLowData offset as a lone Luminance
// plane — only the source alpha is preserved instead of defaulting to 1.
func convertYAToRGBA(li *LogImage, el *LogImageElement, data []float32) ([]float32, error) {
	n := len(data) / 2
	y := make([]float32, n)
	a := make([]float32, n)
	for i := 0; i < n; i++ {
		y[i] = data[i*2+0]
		a[i] = data[i*2+1]
	}
	return convertLuminanceToRGBA(li, el, y, true, a)
}
