package logimage

import "math"

// negativeFilmGamma is the fixed gamma of the camera negative the printing
// density transfer function assumes; it is not configurable per spec.
const negativeFilmGamma = 0.6

// logToLinLUT builds the printing-density-to-linear lookup table for one
// element, indexed by raw integer code in [0, maxValue]. The exponent uses
// gamma/1.7 as the source computes it, the analytic inverse of
// linToLogLUT's 1.7/gamma (verified by round-tripping the two tables).
func logToLinLUT(li *LogImage, el *LogImageElement) []float32 {
	maxValue := float64(el.MaxValue())
	lut := make([]float32, el.MaxValue()+1)

	step := el.RefHighQuantity / maxValue
	softClip := 0.0
	breakPoint := li.ReferenceWhite - softClip

	gain := maxValue / (1.0 - math.Pow(10,
		(li.ReferenceBlack-li.ReferenceWhite)*step/negativeFilmGamma*li.Gamma/1.7))
	offset := gain - maxValue

	kneeOffset := math.Pow(10,
		(breakPoint-li.ReferenceWhite)*step/negativeFilmGamma*li.Gamma/1.7)*gain - offset
	kneeGain := (maxValue - kneeOffset) / math.Pow(5*softClip, softClip/100)

	for i := range lut {
		v := float64(i)
		switch {
		case v < li.ReferenceBlack:
			lut[i] = 0
		case v > breakPoint:
			lut[i] = float32((math.Pow(v-breakPoint, softClip/100)*kneeGain + kneeOffset) / maxValue)
		default:
			lut[i] = float32((math.Pow(10, (v-li.ReferenceWhite)*step/negativeFilmGamma*li.Gamma/1.7)*gain - offset) / maxValue)
		}
	}
	return lut
}

// linToLogLUT builds the inverse of logToLinLUT: given a normalized linear
// code index, it produces the printing-density code that would decode back
// to it.
func linToLogLUT(li *LogImage, el *LogImageElement) []float32 {
	maxValue := float64(el.MaxValue())
	lut := make([]float32, el.MaxValue()+1)

	step := el.RefHighQuantity / maxValue
	gain := maxValue / (1.0 - math.Pow(10,
		(li.ReferenceBlack-li.ReferenceWhite)*step/negativeFilmGamma*li.Gamma/1.7))
	offset := gain - maxValue

	for i := range lut {
		code := float64(i) + offset
		if code < 1 {
			code = 1
		}
		lut[i] = float32((li.ReferenceWhite +
			math.Log10(math.Pow(code/gain, 1.7/li.Gamma))/(step/negativeFilmGamma)) / maxValue)
	}
	return lut
}

// linToSRGBLUT and sRGBToLinLUT implement the IEC 61966-2-1 piecewise
// transfer curve, tabulated per element bit depth like the other LUTs.
func linToSRGBLUT(el *LogImageElement) []float32 {
	lut := make([]float32, el.MaxValue()+1)
	maxValue := float64(el.MaxValue())
	for i := range lut {
		col := float64(i) / maxValue
		lut[i] = float32(linearToSRGB(col))
	}
	return lut
}

func sRGBToLinLUT(el *LogImageElement) []float32 {
	lut := make([]float32, el.MaxValue()+1)
	maxValue := float64(el.MaxValue())
	for i := range lut {
		col := float64(i) / maxValue
		lut[i] = float32(sRGBToLinear(col))
	}
	return lut
}

func linearToSRGB(col float64) float64 {
	if col < 0.0031308 {
		if col < 0 {
			return 0
		}
		return col * 12.92
	}
	return 1.055*math.Pow(col, 1.0/2.4) - 0.055
}

func sRGBToLinear(col float64) float64 {
	if col < 0.04045 {
		if col < 0 {
			return 0
		}
		return col / 12.92
	}
	return math.Pow((col+0.055)/1.055, 2.4)
}

// lutIndex maps a normalized [0,1] sample back to the integer code a LUT
// built by this file is indexed by, mirroring the source's float_uint.
func lutIndex(v float32, maxValue int) int {
	return int(floatToCode(v, maxValue))
}

// applyRGBLUT maps only the R, G, B channels of an interleaved RGBA buffer
// through lut in place, leaving alpha untouched.
func applyRGBLUT(rgba []float32, lut []float32, maxValue int) {
	for i := 0; i < len(rgba); i += 4 {
		rgba[i+0] = lut[lutIndex(rgba[i+0], maxValue)]
		rgba[i+1] = lut[lutIndex(rgba[i+1], maxValue)]
		rgba[i+2] = lut[lutIndex(rgba[i+2], maxValue)]
	}
}
