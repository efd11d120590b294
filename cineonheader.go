package logimage

import (
	"io"
	"os"
)

// Cineon generic + image header field offsets (Kodak's Cineon File Format
// spec). As with dpxheader.go, only the fields the core consumes are
// modeled; film-edge and vendor-defined headers are left zeroed.
const (
	cineonOffImageOffset   = 4
	cineonOffCreator       = 44 // ASCII, null-terminated: file information "Creator" field
	cineonCreatorSize      = 100
	cineonOffOrientation   = 200
	cineonOffNumElements   = 201
	cineonOffPixelsPerLine = 204
	cineonOffLinesPerImage = 208
	cineonOffElementsBase  = 212
	cineonElementSize      = 52

	cineonGenericHeaderSize = 1024
)

// readCineonHeader populates li from a Cineon file/buffer whose magic has
// already been consumed. Cineon has no per-file gamma/reference fields in
// the subset this core reads; the fixed defaults apply (spec §3).
func readCineonHeader(li *LogImage) error {
	debugf(2, "cineon: reading header\n")

	readAt := func(off int64) (uint32, error) {
		if err := li.handle.Seek(off, io.SeekStart); err != nil {
			return 0, err
		}
		v, err := li.handle.ReadUint()
		return swapUint32(v, li.IsMSB), err
	}

	if err := li.handle.Seek(cineonOffNumElements, io.SeekStart); err != nil {
		return err
	}
	numElements, err := li.handle.ReadUchar()
	if err != nil {
		return wrapIO(err, "cineon: read number of elements")
	}
	if numElements == 0 || numElements > 8 {
		return FormatError("cineon: number of elements out of range")
	}

	width, err := readAt(cineonOffPixelsPerLine)
	if err != nil {
		return wrapIO(err, "cineon: read pixels per line")
	}
	height, err := readAt(cineonOffLinesPerImage)
	if err != nil {
		return wrapIO(err, "cineon: read lines per image")
	}

	creator, err := readHeaderStringAt(li, cineonOffCreator, cineonCreatorSize)
	if err != nil {
		return wrapIO(err, "cineon: read creator")
	}

	li.Width = int(width)
	li.Height = int(height)
	li.SrcFormat = FormatCineon
	li.ReferenceBlack = DefaultCineonReferenceBlack
	li.ReferenceWhite = DefaultCineonReferenceWhite
	li.Gamma = DefaultGamma
	li.Creator = creator

	li.Elements = make([]LogImageElement, numElements)
	li.Depth = 0

	for i := 0; i < int(numElements); i++ {
		base := int64(cineonOffElementsBase + i*cineonElementSize)

		if err := li.handle.Seek(base, io.SeekStart); err != nil {
			return err
		}
		descriptor, err := li.handle.ReadUchar()
		if err != nil {
			return wrapIO(err, "cineon: read element descriptor")
		}
		if _, err := li.handle.ReadUchar(); err != nil { // data sign, unused
			return wrapIO(err, "cineon: read element data sign")
		}
		bitsPerSample, err := li.handle.ReadUchar()
		if err != nil {
			return wrapIO(err, "cineon: read element bits per sample")
		}
		if _, err := li.handle.ReadUchar(); err != nil { // reserved
			return wrapIO(err, "cineon: read element padding")
		}

		refLowData, err := li.handle.ReadUint()
		if err != nil {
			return wrapIO(err, "cineon: read element reference low data")
		}
		refLowData = swapUint32(refLowData, li.IsMSB)
		refLowQuantity, err := li.handle.ReadUint()
		if err != nil {
			return wrapIO(err, "cineon: read element reference low quantity")
		}
		refLowQuantity = swapUint32(refLowQuantity, li.IsMSB)
		refHighData, err := li.handle.ReadUint()
		if err != nil {
			return wrapIO(err, "cineon: read element reference high data")
		}
		refHighData = swapUint32(refHighData, li.IsMSB)
		refHighQuantity, err := li.handle.ReadUint()
		if err != nil {
			return wrapIO(err, "cineon: read element reference high quantity")
		}
		refHighQuantity = swapUint32(refHighQuantity, li.IsMSB)

		dataOffset, err := readAt(base + 24)
		if err != nil {
			return wrapIO(err, "cineon: read element data offset")
		}

		el := &li.Elements[i]
		el.Descriptor = Descriptor(descriptor)
		el.Depth = descriptorDepth(el.Descriptor)
		el.BitsPerSample = int(bitsPerSample)
		el.Packing = PackingPadRight
		el.Transfer = TransferPrintingDensity
		el.DataOffset = int64(dataOffset)
		el.RefLowData = int(int32(refLowData))
		el.RefHighData = int(int32(refHighData))
		el.RefLowQuantity = float64(floatFromBits(refLowQuantity))
		el.RefHighQuantity = float64(floatFromBits(refHighQuantity))

		li.Depth += el.Depth
	}

	return nil
}

// writeCineonHeader writes a minimal single-element Cineon header.
func writeCineonHeader(li *LogImage) error {
	debugf(2, "cineon: writing header\n")

	buf := make([]byte, cineonGenericHeaderSize)
	putU32 := func(off int, v uint32) { putHeaderU32(buf[off:], v, li.IsMSB) }

	if li.IsMSB {
		putU32(0, cineonMagic)
	} else {
		putU32(0, cineonMagicSwap)
	}
	putU32(cineonOffImageOffset, uint32(cineonGenericHeaderSize))
	putHeaderString(buf, cineonOffCreator, cineonCreatorSize, li.Creator)
	buf[cineonOffNumElements] = byte(len(li.Elements))
	putU32(cineonOffPixelsPerLine, uint32(li.Width))
	putU32(cineonOffLinesPerImage, uint32(li.Height))

	for i, el := range li.Elements {
		base := cineonOffElementsBase + i*cineonElementSize
		buf[base+0] = byte(el.Descriptor)
		buf[base+2] = byte(el.BitsPerSample)
		putU32(base+4, uint32(int32(el.RefLowData)))
		putU32(base+8, float32Bits(float32(el.RefLowQuantity)))
		putU32(base+12, uint32(int32(el.RefHighData)))
		putU32(base+16, float32Bits(float32(el.RefHighQuantity)))
		putU32(base+24, uint32(el.DataOffset))
	}

	if _, err := li.handle.Write(buf); err != nil {
		return wrapIO(err, "cineon: write header")
	}
	return nil
}

func createCineon(path string, width, height, bits int, creator string) (*LogImage, error) {
	el := LogImageElement{
		Descriptor:    DescriptorRGB,
		Depth:         3,
		BitsPerSample: bits,
		Packing:       PackingPadRight,
		Transfer:      TransferPrintingDensity,
		DataOffset:    cineonGenericHeaderSize,
	}
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
		SrcFormat:      FormatCineon,
		ReferenceBlack: DefaultCineonReferenceBlack,
		ReferenceWhite: DefaultCineonReferenceWhite,
		Gamma:          DefaultGamma,
		Creator:        creator,
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, wrapIO(err, "cineon: create file")
	}
	li.handle = newFileHandle(f)

	if err := writeCineonHeader(li); err != nil {
		li.Close()
		return nil, err
	}
	return li, nil
}
