package logimage

import (
	"gonum.org/v1/gonum/mat"
)

// yuvToRGBMatrix builds the 3x3 matrix that turns a (Y, Cb, Cr) triplet,
// each already recentered around zero, into (R, G, B). The four supported
// curves mirror the source's getYUVtoRGBMatrix; Unspecified/UserDefined/
// Logarithmic/PrintingDensity have no defined matrix.
func yuvToRGBMatrix(li *LogImage, el *LogImageElement) (*mat.Dense, error) {
	maxValue := float64(el.MaxValue())
	refHigh := float64(el.RefHighData) / maxValue
	refLow := float64(el.RefLowData) / maxValue

	scaleY := 1.0 / (refHigh - refLow)
	scaleCbCr := scaleY * ((940.0 - 64.0) / (960.0 - 64.0))

	var raw [9]float64
	switch el.Transfer {
	case TransferLinear:
		raw = [9]float64{
			1, 1, 1,
			1, 1, 1,
			1, 1, 1,
		}
	case TransferSMPTE240M:
		raw = [9]float64{
			1.0000, 0.0000, 1.5756,
			1.0000, -0.2253, -0.5000,
			1.0000, 1.8270, 0.0000,
		}
	case TransferCCIR709_1:
		raw = [9]float64{
			1.000000, 0.000000, 1.574800,
			1.000000, -0.187324, -0.468124,
			1.000000, 1.855600, 0.000000,
		}
	case TransferCCIR601:
		raw = [9]float64{
			1.000000, 0.000000, 1.402000,
			1.000000, -0.344136, -0.714136,
			1.000000, 1.772000, 0.000000,
		}
	default:
		return nil, UnsupportedError("no YCbCr matrix is defined for this transfer")
	}

	scale := mat.NewDense(3, 3, []float64{
		scaleY, scaleCbCr, scaleCbCr,
		scaleY, scaleCbCr, scaleCbCr,
		scaleY, scaleCbCr, scaleCbCr,
	})
	m := mat.NewDense(3, 3, raw[:])
	m.MulElem(m, scale)
	return m, nil
}

// ycbcrToRGB applies m to one recentered (y, cb, cr) triplet via a matrix-
// vector product, then clamps every channel to [0,1].
func ycbcrToRGB(m *mat.Dense, y, cb, cr float64) (r, g, b float64) {
	in := mat.NewVecDense(3, []float64{y, cb, cr})
	var out mat.VecDense
	out.MulVec(m, in)
	return clamp01(out.AtVec(0)), clamp01(out.AtVec(1)), clamp01(out.AtVec(2))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// convertCbYCrToRGBA converts a packed (Cb, Y, Cr) plane into interleaved
// RGBA, one output pixel per input triplet.
func convertCbYCrToRGBA(li *LogImage, el *LogImageElement, src []float32) ([]float32, error) {
	m, err := yuvToRGBMatrix(li, el)
	if err != nil {
		return nil, err
	}
	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	n := li.Width * li.Height
	dst := make([]float32, n*4)

	for i := 0; i < n; i++ {
		cb := float64(src[i*3+0]) - 0.5
		y := float64(src[i*3+1]) - refLow
		cr := float64(src[i*3+2]) - 0.5
		r, g, b := ycbcrToRGB(m, y, cb, cr)
		dst[i*4+0] = float32(r)
		dst[i*4+1] = float32(g)
		dst[i*4+2] = float32(b)
		dst[i*4+3] = 1.0
	}
	return dst, nil
}

// convertCbYCrAToRGBA is convertCbYCrToRGBA's counterpart for the
// already-alpha-bearing composite descriptor.
func convertCbYCrAToRGBA(li *LogImage, el *LogImageElement, src []float32) ([]float32, error) {
	m, err := yuvToRGBMatrix(li, el)
	if err != nil {
		return nil, err
	}
	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	n := li.Width * li.Height
	dst := make([]float32, n*4)

	for i := 0; i < n; i++ {
		cb := float64(src[i*4+0]) - 0.5
		y := float64(src[i*4+1]) - refLow
		cr := float64(src[i*4+2]) - 0.5
		a := src[i*4+3]
		r, g, b := ycbcrToRGB(m, y, cb, cr)
		dst[i*4+0] = float32(r)
		dst[i*4+1] = float32(g)
		dst[i*4+2] = float32(b)
		dst[i*4+3] = a
	}
	return dst, nil
}

// convertCbYCrYToRGBA expands 4:2:2 subsampled (Cb, Y0, Cr, Y1) groups into
// two full RGBA pixels, re-using one chroma pair for both.
func convertCbYCrYToRGBA(li *LogImage, el *LogImageElement, src []float32) ([]float32, error) {
	m, err := yuvToRGBMatrix(li, el)
	if err != nil {
		return nil, err
	}
	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	pairs := li.Width * li.Height / 2
	dst := make([]float32, li.Width*li.Height*4)

	for i := 0; i < pairs; i++ {
		cb := float64(src[i*4+0]) - 0.5
		y1 := float64(src[i*4+1]) - refLow
		cr := float64(src[i*4+2]) - 0.5
		y2 := float64(src[i*4+3]) - refLow

		r1, g1, b1 := ycbcrToRGB(m, y1, cb, cr)
		r2, g2, b2 := ycbcrToRGB(m, y2, cb, cr)

		o := i * 8
		dst[o+0], dst[o+1], dst[o+2], dst[o+3] = float32(r1), float32(g1), float32(b1), 1.0
		dst[o+4], dst[o+5], dst[o+6], dst[o+7] = float32(r2), float32(g2), float32(b2), 1.0
	}
	return dst, nil
}

// convertCbYACrYAToRGBA is convertCbYCrYToRGBA's variant where each luma
// sample carries its own alpha value.
func convertCbYACrYAToRGBA(li *LogImage, el *LogImageElement, src []float32) ([]float32, error) {
	m, err := yuvToRGBMatrix(li, el)
	if err != nil {
		return nil, err
	}
	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	pairs := li.Width * li.Height / 2
	dst := make([]float32, li.Width*li.Height*4)

	for i := 0; i < pairs; i++ {
		cb := float64(src[i*6+0]) - 0.5
		y1 := float64(src[i*6+1]) - refLow
		a1 := src[i*6+2]
		cr := float64(src[i*6+3]) - 0.5
		y2 := float64(src[i*6+4]) - refLow
		a2 := src[i*6+5]

		r1, g1, b1 := ycbcrToRGB(m, y1, cb, cr)
		r2, g2, b2 := ycbcrToRGB(m, y2, cb, cr)

		o := i * 8
		dst[o+0], dst[o+1], dst[o+2], dst[o+3] = float32(r1), float32(g1), float32(b1), a1
		dst[o+4], dst[o+5], dst[o+6], dst[o+7] = float32(r2), float32(g2), float32(b2), a2
	}
	return dst, nil
}

// convertLuminanceToRGBA turns a single-channel luma plane into a greyscale
// RGBA raster, scaling by the matrix's Y coefficient only (matrix[0]).
func convertLuminanceToRGBA(li *LogImage, el *LogImageElement, src []float32, hasAlpha bool, alpha []float32) ([]float32, error) {
	m, err := yuvToRGBMatrix(li, el)
	if err != nil {
		return nil, err
	}
	refLow := float64(el.RefLowData) / float64(el.MaxValue())
	scaleY := m.At(0, 0)
	n := li.Width * li.Height
	dst := make([]float32, n*4)

	for i := 0; i < n; i++ {
		v := clamp01((float64(src[i]) - refLow) * scaleY)
		dst[i*4+0] = float32(v)
		dst[i*4+1] = float32(v)
		dst[i*4+2] = float32(v)
		if hasAlpha {
			dst[i*4+3] = alpha[i]
		} else {
			dst[i*4+3] = 1.0
		}
	}
	return dst, nil
}
