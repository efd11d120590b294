package logimage

// Format identifies which of the two sibling containers a LogImage was
// read from or is being written to.
type Format int

const (
	FormatDPX Format = iota
	FormatCineon
)

func (f Format) String() string {
	switch f {
	case FormatDPX:
		return "DPX"
	case FormatCineon:
		return "Cineon"
	default:
		return "Unknown"
	}
}

// Magic numbers and their byte-swapped forms (spec §6). Stored as the
// literal integers a big-endian 4-byte load of the file's first bytes
// produces (see isDpx/isCineon), rather than as a `*(uint*)buffer`
// reinterpretation of the file bytes.
const (
	dpxMagic       uint32 = 0x53445058 // "SDPX"
	dpxMagicSwap   uint32 = 0x58504453 // "XPDS", byte-swapped: file is LSB-first
	cineonMagic    uint32 = 0x802A5FD7
	cineonMagicSwap uint32 = 0xD75F2A80
)

// Descriptor identifies which channel(s) a plane (element) holds.
type Descriptor int

const (
	DescriptorRed Descriptor = iota + 1
	DescriptorGreen
	DescriptorBlue
	DescriptorAlpha
	_ // 5 unused, mirrors the source's numbering gap
	DescriptorLuminance
	DescriptorChrominance
	DescriptorDepth     // unsupported
	DescriptorComposite // unsupported
	DescriptorRGB       Descriptor = 50
	DescriptorRGBA      Descriptor = 51
	DescriptorABGR      Descriptor = 52
	DescriptorCbYCrY    Descriptor = 100
	DescriptorCbYACrYA  Descriptor = 102
	DescriptorCbYCr     Descriptor = 103
	DescriptorCbYCrA    Descriptor = 104
	// DescriptorYA has no file representation: the merger produces it when
	// a single Luminance plane is combined with a single Alpha plane.
	DescriptorYA Descriptor = -1
)

func (d Descriptor) String() string {
	switch d {
	case DescriptorRed:
		return "Red"
	case DescriptorGreen:
		return "Green"
	case DescriptorBlue:
		return "Blue"
	case DescriptorAlpha:
		return "Alpha"
	case DescriptorLuminance:
		return "Luminance"
	case DescriptorChrominance:
		return "Chrominance"
	case DescriptorDepth:
		return "Depth"
	case DescriptorComposite:
		return "Composite"
	case DescriptorRGB:
		return "RGB"
	case DescriptorRGBA:
		return "RGBA"
	case DescriptorABGR:
		return "ABGR"
	case DescriptorCbYCrY:
		return "CbYCrY"
	case DescriptorCbYACrYA:
		return "CbYACrYA"
	case DescriptorCbYCr:
		return "CbYCr"
	case DescriptorCbYCrA:
		return "CbYCrA"
	case DescriptorYA:
		return "YA"
	default:
		return "Unknown"
	}
}

// Packing says how sub-byte samples are arranged within 32-bit words.
// Only meaningful for 10- and 12-bit samples.
type Packing int

const (
	PackingTight      Packing = 0 // continuous bit-stream across word boundaries
	PackingPadRight   Packing = 1 // "Method A" / 12-bit "in ushort" high-bit aligned
	PackingPadLeft    Packing = 2 // "Method B" / 12-bit "in ushort" low-bit aligned
)

// Transfer selects the colorimetric conversion applied to a plane.
type Transfer int

// These values are the literal SMPTE 268M / Cineon wire codes, not an
// arbitrary enumeration — dpxheader.go and cineonheader.go cast the
// on-disk byte straight into a Transfer, so the constants must line up
// with the codes a real file actually stores. The format defines two
// distinct CCIR 601 codes (system B/G and system M); both get the same
// conversion matrix, so readers normalize wire code 8 onto
// TransferCCIR601 rather than giving it its own constant.
const (
	TransferUserDefined Transfer = iota
	TransferPrintingDensity
	TransferLinear
	TransferLogarithmic
	TransferUnspecified
	TransferSMPTE240M
	TransferCCIR709_1
	TransferCCIR601
)

// Cineon's fixed defaults (spec §3). readDPXHeader applies the same values
// to DPX files; it does not read reference black/white or gamma from the
// DPX header.
const (
	DefaultCineonReferenceBlack = 95.0
	DefaultCineonReferenceWhite = 685.0
	DefaultGamma                = 1.7
)

// LogImageElement describes a single image plane stored in the file.
type LogImageElement struct {
	Descriptor    Descriptor
	Depth         int // channels within this plane
	BitsPerSample int // 1, 8, 10, 12, 16
	Packing       Packing
	Transfer      Transfer

	DataOffset int64

	RefLowData, RefHighData         int
	RefLowQuantity, RefHighQuantity float64
}

// MaxValue returns (1<<BitsPerSample)-1, the largest integer sample code
// this element's bit depth can represent.
func (e *LogImageElement) MaxValue() int {
	return (1 << uint(e.BitsPerSample)) - 1
}

// LogImage is the open file handle plus the global parameters shared by
// every element in it.
type LogImage struct {
	Width, Height int
	Depth         int // derived: number of channels in the merged composite

	Elements []LogImageElement
	IsMSB    bool
	SrcFormat Format

	ReferenceBlack, ReferenceWhite float64
	Gamma                          float64

	// Creator is the free-form ASCII string stored in the file's Creator
	// field (File Information header, DPX and Cineon alike). Populated on
	// read; written verbatim (truncated to the field width) on Create.
	Creator string

	handle byteHandle
	isMem  bool
}

// Close releases the underlying byte handle. It is safe to call on a nil
// *LogImage or one already closed.
func (li *LogImage) Close() error {
	if li == nil || li.handle == nil {
		return nil
	}
	err := li.handle.Close()
	li.handle = nil
	return err
}

// GetSize returns the image's width, height and composite channel depth.
func (li *LogImage) GetSize() (width, height, depth int) {
	return li.Width, li.Height, li.Depth
}
