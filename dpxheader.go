package logimage

import (
	"io"
	"os"
)

// DPX generic + image header field offsets (SMPTE 268M). Only the fields
// the core actually consumes (spec §3, §6) are read or written, plus the
// Creator field; timecodes, other free-form description fields and the
// film/television headers are left zeroed.
const (
	dpxOffImageOffset   = 4  // uint32: byte offset of first element's pixel data
	dpxOffGenericSize   = 24 // uint32: generic file header size
	dpxOffCreator       = 100 // ASCII, null-terminated: File Information "Creator" field
	dpxCreatorSize      = 100
	dpxOffOrientation   = 768
	dpxOffNumElements   = 770
	dpxOffPixelsPerLine = 772
	dpxOffLinesPerImage = 776
	dpxOffElementsBase  = 780
	dpxElementSize      = 72

	dpxGenericHeaderSize = 1664 // generic + image header, rounded for simplicity
)

// readDPXHeader populates li from a DPX file/buffer whose magic has
// already been consumed by OpenFromFile/OpenFromMemory.
func readDPXHeader(li *LogImage) error {
	debugf(2, "dpx: reading header\n")

	readAt := func(off int64) (uint32, error) {
		if err := li.handle.Seek(off, io.SeekStart); err != nil {
			return 0, err
		}
		v, err := li.handle.ReadUint()
		return swapUint32(v, li.IsMSB), err
	}
	readU16At := func(off int64) (uint16, error) {
		if err := li.handle.Seek(off, io.SeekStart); err != nil {
			return 0, err
		}
		v, err := li.handle.ReadUshort()
		return swapUint16(v, li.IsMSB), err
	}

	width, err := readAt(dpxOffPixelsPerLine)
	if err != nil {
		return wrapIO(err, "dpx: read pixels per line")
	}
	height, err := readAt(dpxOffLinesPerImage)
	if err != nil {
		return wrapIO(err, "dpx: read lines per image")
	}
	numElements, err := readU16At(dpxOffNumElements)
	if err != nil {
		return wrapIO(err, "dpx: read number of elements")
	}
	if numElements == 0 || numElements > 8 {
		return FormatError("dpx: number of elements out of range")
	}

	creator, err := readHeaderStringAt(li, dpxOffCreator, dpxCreatorSize)
	if err != nil {
		return wrapIO(err, "dpx: read creator")
	}

	li.Width = int(width)
	li.Height = int(height)
	li.SrcFormat = FormatDPX
	li.ReferenceBlack = DefaultCineonReferenceBlack
	li.ReferenceWhite = DefaultCineonReferenceWhite
	li.Gamma = DefaultGamma
	li.Creator = creator

	li.Elements = make([]LogImageElement, numElements)
	li.Depth = 0

	for i := 0; i < int(numElements); i++ {
		base := int64(dpxOffElementsBase + i*dpxElementSize)

		refLowData, err := readAt(base + 4)
		if err != nil {
			return wrapIO(err, "dpx: read element reference low data")
		}
		refLowQuantity, err := readAt(base + 8)
		if err != nil {
			return wrapIO(err, "dpx: read element reference low quantity")
		}
		refHighData, err := readAt(base + 12)
		if err != nil {
			return wrapIO(err, "dpx: read element reference high data")
		}
		refHighQuantity, err := readAt(base + 16)
		if err != nil {
			return wrapIO(err, "dpx: read element reference high quantity")
		}

		if err := li.handle.Seek(base+20, io.SeekStart); err != nil {
			return err
		}
		descriptor, err := li.handle.ReadUchar()
		if err != nil {
			return wrapIO(err, "dpx: read element descriptor")
		}
		transfer, err := li.handle.ReadUchar()
		if err != nil {
			return wrapIO(err, "dpx: read element transfer")
		}
		if _, err := li.handle.ReadUchar(); err != nil { // colorimetric, unused
			return wrapIO(err, "dpx: read element colorimetric")
		}
		bitsPerSample, err := li.handle.ReadUchar()
		if err != nil {
			return wrapIO(err, "dpx: read element bits per sample")
		}
		packing, err := li.handle.ReadUshort()
		if err != nil {
			return wrapIO(err, "dpx: read element packing")
		}
		packing = swapUint16(packing, li.IsMSB)
		if _, err := li.handle.ReadUshort(); err != nil { // encoding, unused (no compression)
			return wrapIO(err, "dpx: read element encoding")
		}
		dataOffset, err := li.handle.ReadUint()
		if err != nil {
			return wrapIO(err, "dpx: read element data offset")
		}
		dataOffset = swapUint32(dataOffset, li.IsMSB)

		el := &li.Elements[i]
		el.Descriptor = Descriptor(descriptor)
		el.Depth = descriptorDepth(el.Descriptor)
		el.BitsPerSample = int(bitsPerSample)
		el.Packing = Packing(packing)
		el.Transfer = normalizeTransfer(transfer)
		el.DataOffset = int64(dataOffset)
		el.RefLowData = int(int32(refLowData))
		el.RefHighData = int(int32(refHighData))
		el.RefLowQuantity = float64(floatFromBits(refLowQuantity))
		el.RefHighQuantity = float64(floatFromBits(refHighQuantity))

		li.Depth += el.Depth
	}

	return nil
}

// writeDPXHeader writes a minimal DPX generic+image header for a
// single-element file, padding up to dpxGenericHeaderSize before the first
// element's pixel data starts.
func writeDPXHeader(li *LogImage) error {
	debugf(2, "dpx: writing header\n")

	buf := make([]byte, dpxGenericHeaderSize)
	putU32 := func(off int, v uint32) { putHeaderU32(buf[off:], v, li.IsMSB) }
	putU16 := func(off int, v uint16) { putHeaderU16(buf[off:], v, li.IsMSB) }

	if li.IsMSB {
		copy(buf[0:4], []byte{'S', 'D', 'P', 'X'})
	} else {
		copy(buf[0:4], []byte{'X', 'P', 'D', 'S'})
	}
	putU32(dpxOffImageOffset, uint32(dpxGenericHeaderSize))
	putU32(dpxOffGenericSize, uint32(dpxGenericHeaderSize))
	putHeaderString(buf, dpxOffCreator, dpxCreatorSize, li.Creator)
	putU16(dpxOffNumElements, uint16(len(li.Elements)))
	putU32(dpxOffPixelsPerLine, uint32(li.Width))
	putU32(dpxOffLinesPerImage, uint32(li.Height))

	for i, el := range li.Elements {
		base := dpxOffElementsBase + i*dpxElementSize
		putU32(base+4, uint32(int32(el.RefLowData)))
		putU32(base+8, float32Bits(float32(el.RefLowQuantity)))
		putU32(base+12, uint32(int32(el.RefHighData)))
		putU32(base+16, float32Bits(float32(el.RefHighQuantity)))
		buf[base+20] = byte(el.Descriptor)
		buf[base+21] = byte(el.Transfer)
		buf[base+23] = byte(el.BitsPerSample)
		putU16(base+24, uint16(el.Packing))
		putU32(base+28, uint32(el.DataOffset))
	}

	if _, err := li.handle.Write(buf); err != nil {
		return wrapIO(err, "dpx: write header")
	}
	return nil
}

// normalizeTransfer maps a raw on-disk transfer byte onto a Transfer,
// folding wire code 8 (CCIR 601-2 system M) onto TransferCCIR601 (wire
// code 7, system B/G) since both share the same conversion matrix.
func normalizeTransfer(raw uint8) Transfer {
	if raw == 8 {
		return TransferCCIR601
	}
	return Transfer(raw)
}

// descriptorDepth returns the channel count implied by a plane descriptor.
func descriptorDepth(d Descriptor) int {
	switch d {
	case DescriptorRGB:
		return 3
	case DescriptorRGBA, DescriptorABGR, DescriptorCbYCrA:
		return 4
	case DescriptorCbYCr:
		return 3
	case DescriptorCbYCrY:
		return 2
	case DescriptorCbYACrYA:
		return 3
	default:
		return 1
	}
}

func createDPX(path string, width, height, bits int, isLog, hasAlpha bool, refWhite, refBlack, gamma float64, creator string) (*LogImage, error) {
	el := LogImageElement{
		BitsPerSample: bits,
		Packing:       PackingPadRight,
	}
	switch {
	case hasAlpha:
		el.Descriptor = DescriptorRGBA
	default:
		el.Descriptor = DescriptorRGB
	}
	if isLog {
		el.Transfer = TransferPrintingDensity
	} else {
		el.Transfer = TransferLinear
	}
	el.Depth = descriptorDepth(el.Descriptor)
	el.DataOffset = dpxGenericHeaderSize
	el.RefLowData = 0
	el.RefHighData = el.MaxValue()
	el.RefLowQuantity = 0
	el.RefHighQuantity = 2.048

	li := &LogImage{
		Width:          width,
		Height:         height,
		Depth:          el.Depth,
		Elements:       []LogImageElement{el},
		IsMSB:          true,
		SrcFormat:      FormatDPX,
		ReferenceBlack: refBlack,
		ReferenceWhite: refWhite,
		Gamma:          gamma,
		Creator:        creator,
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, wrapIO(err, "dpx: create file")
	}
	li.handle = newFileHandle(f)

	if err := writeDPXHeader(li); err != nil {
		li.Close()
		return nil, err
	}
	return li, nil
}
