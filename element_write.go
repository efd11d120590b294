package logimage

import (
	"encoding/binary"
	"fmt"
)

// floatToCode converts a normalized [0,1] float to the nearest integer
// code in [0, maxValue], matching the source's float_uint: scale, round to
// nearest, then clamp.
func floatToCode(v float32, maxValue int) uint32 {
	scaled := v*float32(maxValue) + 0.5
	if scaled < 0 {
		return 0
	}
	if scaled > float32(maxValue) {
		return uint32(maxValue)
	}
	return uint32(scaled)
}

// writeElementData writes one plane's worth of samples to the image's byte
// handle, dispatching on bitsPerSample. Only the subset the format
// actually writes is supported (spec §4.2.2): 8, 10 (packing 1 only), 12
// (packed into the high bits of a 16-bit word) and 16.
func (li *LogImage) writeElementData(el *LogImageElement, data []float32) error {
	switch el.BitsPerSample {
	case 8:
		return li.writeElement8(el, data)
	case 10:
		if el.Packing != PackingPadRight {
			return UnsupportedError("10 bpp write requires packing 1 (padded to the right)")
		}
		return li.writeElement10(el, data)
	case 12:
		return li.writeElement12(el, data)
	case 16:
		return li.writeElement16(el, data)
	default:
		return UnsupportedError(fmt.Sprintf("%d bits per sample on write", el.BitsPerSample))
	}
}

func (li *LogImage) writeElement8(el *LogImageElement, data []float32) error {
	w, d := li.Width, el.Depth
	rowBytes := RowLength(w, el)
	row := make([]byte, rowBytes)

	for y := 0; y < li.Height; y++ {
		for x := 0; x < w*d; x++ {
			row[x] = byte(floatToCode(data[y*w*d+x], 255))
		}
		for x := w * d; x < rowBytes; x++ {
			row[x] = 0
		}
		if _, err := li.handle.Write(row); err != nil {
			return wrapIO(err, "write 8bpp row")
		}
	}
	return nil
}

// writeElement10 packs samples MSB-first into 32-bit words using the
// reverse-offset convention (start 22, step -10) — the only 10-bit layout
// the source writer implements.
func (li *LogImage) writeElement10(el *LogImageElement, data []float32) error {
	w, d := li.Width, el.Depth
	rowBytes := RowLength(w, el)
	row := make([]uint32, rowBytes/4)

	for y := 0; y < li.Height; y++ {
		offset := 22
		index := 0
		var pixel uint32

		for x := 0; x < w*d; x++ {
			pixel |= floatToCode(data[y*w*d+x], 1023) << uint(offset)
			offset -= 10
			if offset < 0 {
				row[index] = swapUint32(pixel, li.IsMSB)
				index++
				pixel = 0
				offset = 22
			}
		}
		if pixel != 0 {
			row[index] = swapUint32(pixel, li.IsMSB)
		}

		if err := writeUint32Row(li.handle, row); err != nil {
			return wrapIO(err, "write 10bpp row")
		}
	}
	return nil
}

// writeElement12 shifts each 12-bit sample left by 4 into a 16-bit word
// (equivalent to packing 1), matching the source's writer exactly — packing
// 0 and packing 2 are not implemented on write (spec §4.2.2, §9).
func (li *LogImage) writeElement12(el *LogImageElement, data []float32) error {
	w, d := li.Width, el.Depth
	row := make([]uint16, w*d)

	for y := 0; y < li.Height; y++ {
		for x := 0; x < w*d; x++ {
			v := uint16(floatToCode(data[y*w*d+x], 4095)) << 4
			row[x] = swapUint16(v, li.IsMSB)
		}
		if err := writeUint16Row(li.handle, row); err != nil {
			return wrapIO(err, "write 12bpp row")
		}
	}
	return nil
}

func (li *LogImage) writeElement16(el *LogImageElement, data []float32) error {
	w, d := li.Width, el.Depth
	row := make([]uint16, w*d)

	for y := 0; y < li.Height; y++ {
		for x := 0; x < w*d; x++ {
			v := uint16(floatToCode(data[y*w*d+x], 65535))
			row[x] = swapUint16(v, li.IsMSB)
		}
		if err := writeUint16Row(li.handle, row); err != nil {
			return wrapIO(err, "write 16bpp row")
		}
	}
	return nil
}

// writeUint32Row writes each already-byte-order-corrected word (see
// swapUint32) using the host's native byte order, the write-side mirror of
// byteHandle.ReadUint's native-order read.
func writeUint32Row(h byteHandle, row []uint32) error {
	buf := make([]byte, len(row)*4)
	for i, v := range row {
		binary.NativeEndian.PutUint32(buf[i*4:], v)
	}
	_, err := h.Write(buf)
	return err
}

// writeUint16Row is writeUint32Row's 16-bit counterpart.
func writeUint16Row(h byteHandle, row []uint16) error {
	buf := make([]byte, len(row)*2)
	for i, v := range row {
		binary.NativeEndian.PutUint16(buf[i*2:], v)
	}
	_, err := h.Write(buf)
	return err
}
