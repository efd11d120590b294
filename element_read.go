package logimage

import (
	"fmt"
	"io"
)

// readElementData reads one plane's worth of samples (width*height*depth
// floats, row-major, channel-interleaved) from the image's byte handle,
// dispatching on (bitsPerSample, packing) as spec §4.2.1 describes.
func (li *LogImage) readElementData(el *LogImageElement) ([]float32, error) {
	switch el.BitsPerSample {
	case 1:
		if el.Depth != 1 {
			return nil, UnsupportedError("1 bpp is only defined for single-channel planes")
		}
		return li.readElement1(el)
	case 8:
		return li.readElement8(el)
	case 10:
		if el.Packing == PackingTight {
			return li.readElement10Packed(el)
		}
		return li.readElement10(el)
	case 12:
		if el.Packing == PackingTight {
			return li.readElement12Packed(el)
		}
		return li.readElement12(el)
	case 16:
		return li.readElement16(el)
	default:
		return nil, UnsupportedError(fmt.Sprintf("%d bits per sample", el.BitsPerSample))
	}
}

// readElement1 reads a single-channel 1-bit plane, 32-bit word padded rows.
func (li *LogImage) readElement1(el *LogImageElement) ([]float32, error) {
	data := make([]float32, li.Width*li.Height)

	if err := li.handle.Seek(el.DataOffset, io.SeekStart); err != nil {
		return nil, err
	}

	for y := 0; y < li.Height; y++ {
		for x := 0; x < li.Width; x += 32 {
			word, err := li.handle.ReadUint()
			if err != nil {
				return nil, wrapIO(err, "read 1bpp word")
			}
			word = swapUint32(word, li.IsMSB)
			for offset := 0; offset < 32 && x+offset < li.Width; offset++ {
				bit := (word >> uint(offset)) & 0x1
				data[y*li.Width+x+offset] = float32(bit)
			}
		}
	}
	return data, nil
}

// readElement8 reads an 8-bit plane whose rows are padded to 32 bits.
func (li *LogImage) readElement8(el *LogImageElement) ([]float32, error) {
	w, d := li.Width, el.Depth
	rowBytes := RowLength(w, el)
	data := make([]float32, w*li.Height*d)

	for y := 0; y < li.Height; y++ {
		if err := li.handle.Seek(el.DataOffset+int64(y)*int64(rowBytes), io.SeekStart); err != nil {
			return nil, err
		}
		for x := 0; x < w*d; x++ {
			b, err := li.handle.ReadUchar()
			if err != nil {
				return nil, wrapIO(err, "read 8bpp sample")
			}
			data[y*w*d+x] = float32(b) / 255.0
		}
	}
	return data, nil
}

// readElement10 reads non-tightly-packed 10-bit samples (packing 1 or 2),
// three samples per 32-bit word with two bits unused. DPX files whose
// composite image is itself single-channel are historically written with
// the sample offsets advancing forward instead of backward within the
// word; this core reproduces that quirk exactly, gated on the image's
// overall depth rather than any one element's (a planar three-element RGB
// file has li.Depth==3 even though each element's own Depth==1, and must
// take the reverse-offset branch like any other multi-channel file).
func (li *LogImage) readElement10(el *LogImageElement) ([]float32, error) {
	w, d := li.Width, el.Depth
	data := make([]float32, w*li.Height*d)

	if err := li.handle.Seek(el.DataOffset, io.SeekStart); err != nil {
		return nil, err
	}

	forward := li.Depth == 1 && li.SrcFormat == FormatDPX

	var pixel uint32
	for y := 0; y < li.Height; y++ {
		if forward {
			offset := 32
			for x := 0; x < w*d; x++ {
				if offset >= 30 {
					if el.Packing == PackingPadRight {
						offset = 2
					} else {
						offset = 0
					}
					var err error
					pixel, err = li.handle.ReadUint()
					if err != nil {
						return nil, wrapIO(err, "read 10bpp word")
					}
					pixel = swapUint32(pixel, li.IsMSB)
				}
				data[y*w*d+x] = float32((pixel>>uint(offset))&0x3FF) / 1023.0
				offset += 10
			}
		} else {
			offset := -1
			for x := 0; x < w*d; x++ {
				if offset < 0 {
					if el.Packing == PackingPadRight {
						offset = 22
					} else {
						offset = 20
					}
					var err error
					pixel, err = li.handle.ReadUint()
					if err != nil {
						return nil, wrapIO(err, "read 10bpp word")
					}
					pixel = swapUint32(pixel, li.IsMSB)
				}
				data[y*w*d+x] = float32((pixel>>uint(offset))&0x3FF) / 1023.0
				offset -= 10
			}
		}
	}
	return data, nil
}

// readElement10Packed reads the continuous 10-bit bit-stream where a
// sample may straddle two 32-bit words ("10 Packed").
func (li *LogImage) readElement10Packed(el *LogImageElement) ([]float32, error) {
	return li.readPackedBitstream(el, 10, 0x3FF, 1023.0)
}

// readElement12Packed is readElement10Packed's 12-bit counterpart.
func (li *LogImage) readElement12Packed(el *LogImageElement) ([]float32, error) {
	return li.readPackedBitstream(el, 12, 0xFFF, 4095.0)
}

// readPackedBitstream implements the shared "N Packed" algorithm used by
// both 10-bit and 12-bit tightly-packed planes: per row, samples are read
// off a continuous bit cursor into 32-bit words, with the two-word straddle
// case handled via a saved oldPixel/offset2 pair.
func (li *LogImage) readPackedBitstream(el *LogImageElement, bits int, mask uint32, norm float32) ([]float32, error) {
	w, d := li.Width, el.Depth
	rowBytes := RowLength(w, el)
	data := make([]float32, w*li.Height*d)

	for y := 0; y < li.Height; y++ {
		if err := li.handle.Seek(el.DataOffset+int64(y)*int64(rowBytes), io.SeekStart); err != nil {
			return nil, err
		}

		var pixel, oldPixel uint32
		offset, offset2 := 0, 0

		for x := 0; x < w*d; x++ {
			switch {
			case offset2 != 0:
				offset = bits - offset2
				offset2 = 0
				oldPixel = 0
			case offset == 32:
				offset = 0
			case offset+bits > 32:
				oldPixel = pixel >> uint(offset)
				offset2 = 32 - offset
				offset = 0
			}

			if offset == 0 {
				var err error
				pixel, err = li.handle.ReadUint()
				if err != nil {
					return nil, wrapIO(err, fmt.Sprintf("read %dbpp packed word", bits))
				}
				pixel = swapUint32(pixel, li.IsMSB)
			}

			value := ((pixel << uint(offset2)) >> uint(offset)) & mask
			value |= oldPixel
			data[y*w*d+x] = float32(value) / norm
			offset += bits
		}
	}
	return data, nil
}

// readElement12 reads 12-bit samples stored one per 16-bit word ("in
// ushort"): packing 1 right-pads (high bits), packing 2 left-pads (low
// bits).
func (li *LogImage) readElement12(el *LogImageElement) ([]float32, error) {
	w, d := li.Width, el.Depth
	numSamples := w * li.Height * d
	data := make([]float32, numSamples)

	if err := li.handle.Seek(el.DataOffset, io.SeekStart); err != nil {
		return nil, err
	}

	for i := 0; i < numSamples; i++ {
		pixel, err := li.handle.ReadUshort()
		if err != nil {
			return nil, wrapIO(err, "read 12bpp sample")
		}
		pixel = swapUint16(pixel, li.IsMSB)

		var v uint16
		if el.Packing == PackingPadRight {
			v = pixel >> 4
		} else {
			v = pixel & 0xFFF
		}
		data[i] = float32(v) / 4095.0
	}
	return data, nil
}

// readElement16 reads plain 16-bit samples.
func (li *LogImage) readElement16(el *LogImageElement) ([]float32, error) {
	w, d := li.Width, el.Depth
	numSamples := w * li.Height * d
	data := make([]float32, numSamples)

	if err := li.handle.Seek(el.DataOffset, io.SeekStart); err != nil {
		return nil, err
	}

	for i := 0; i < numSamples; i++ {
		pixel, err := li.handle.ReadUshort()
		if err != nil {
			return nil, wrapIO(err, "read 16bpp sample")
		}
		pixel = swapUint16(pixel, li.IsMSB)
		data[i] = float32(pixel) / 65535.0
	}
	return data, nil
}
