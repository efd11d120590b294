package logimage

// mergeElements assembles the per-plane float arrays produced by the
// bit-packed codec (C2) into one interleaved composite array plus the
// composite descriptor C4 should use to interpret it (spec §4.3).
//
// Unlike the source library, which walks sortedElementData by source
// declaration order (a table meant to be indexed by output slot), this
// walks it by output slot, skipping unassigned slots — the redesign spec
// §9 calls for to avoid misordering when elements arrive out of sequence.
func mergeElements(li *LogImage, planeData [][]float32) ([]float32, Descriptor, error) {
	if len(li.Elements) == 1 {
		return planeData[0], li.Elements[0].Descriptor, nil
	}

	hasAlpha := false
	for _, el := range li.Elements {
		if el.Descriptor == DescriptorAlpha {
			hasAlpha = true
			break
		}
	}

	// The composite depth is the sum of the merged planes' depths; Depth and
	// Composite planes are skipped below and so are not counted.
	compositeDepth := 0
	for _, el := range li.Elements {
		if el.Descriptor != DescriptorDepth && el.Descriptor != DescriptorComposite {
			compositeDepth += el.Depth
		}
	}
	const unset = Descriptor(0)
	composite := unset

	var slot [8]int
	for i := range slot {
		slot[i] = -1
	}

	for i, el := range li.Elements {
		switch el.Descriptor {
		case DescriptorRed, DescriptorRGB:
			composite = rgbOrRGBA(hasAlpha)
			slot[0] = i

		case DescriptorGreen:
			composite = rgbOrRGBA(hasAlpha)
			slot[1] = i

		case DescriptorBlue:
			composite = rgbOrRGBA(hasAlpha)
			slot[2] = i

		case DescriptorAlpha:
			slot[compositeDepth-1] = i

		case DescriptorLuminance:
			if composite == unset {
				if hasAlpha {
					composite = DescriptorYA
				} else {
					composite = DescriptorLuminance
				}
			} else if composite == DescriptorChrominance {
				composite = chromaComposite(compositeDepth, hasAlpha)
			}
			if compositeDepth == 1 || (compositeDepth == 2 && hasAlpha) {
				slot[0] = i
			} else {
				slot[1] = i
			}

		case DescriptorChrominance:
			if composite == unset {
				composite = DescriptorChrominance
			} else if composite == DescriptorLuminance {
				composite = chromaComposite(compositeDepth, hasAlpha)
			}
			if slot[0] == -1 {
				slot[0] = i
			} else {
				slot[2] = i
			}

		case DescriptorCbYCr:
			if hasAlpha {
				composite = DescriptorCbYCrA
			} else {
				composite = DescriptorCbYCr
			}
			slot[0] = i

		case DescriptorRGBA, DescriptorABGR, DescriptorCbYACrYA, DescriptorCbYCrY, DescriptorCbYCrA:
			composite = el.Descriptor
			slot[0] = i

		case DescriptorDepth, DescriptorComposite:
			// Unsupported planes are silently skipped; the merged
			// raster's channel count is whatever the remaining,
			// supported planes sum to.

		default:
			return nil, 0, UnsupportedError("descriptor not recognized by the planar merger")
		}
	}

	if composite == unset {
		return nil, 0, FormatError("planar elements do not resolve to a known composite descriptor")
	}

	order := make([]int, 0, len(li.Elements))
	for _, idx := range slot {
		if idx >= 0 {
			order = append(order, idx)
		}
	}

	merged := make([]float32, li.Width*li.Height*compositeDepth)
	cursors := make([]int, len(order))
	out := 0
	for pix := 0; pix < li.Width*li.Height; pix++ {
		for oi, srcIdx := range order {
			d := li.Elements[srcIdx].Depth
			copy(merged[out:out+d], planeData[srcIdx][cursors[oi]:cursors[oi]+d])
			cursors[oi] += d
			out += d
		}
	}

	return merged, composite, nil
}

func rgbOrRGBA(hasAlpha bool) Descriptor {
	if hasAlpha {
		return DescriptorRGBA
	}
	return DescriptorRGB
}

func chromaComposite(depth int, hasAlpha bool) Descriptor {
	switch depth {
	case 2:
		return DescriptorCbYCrY
	case 3:
		if hasAlpha {
			return DescriptorCbYACrYA
		}
		return DescriptorCbYCr
	case 4:
		return DescriptorCbYCrA
	default:
		return Descriptor(0)
	}
}
