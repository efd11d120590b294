package logimage

import (
	"encoding/binary"
	"os"
)

// isDpx reports whether the first 4 bytes of buf are the DPX magic number
// or its byte-swapped form (spec §4.5, §6).
func isDpx(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	v := binary.BigEndian.Uint32(buf[:4])
	return v == dpxMagic || v == dpxMagicSwap
}

// isCineon is isDpx's Cineon counterpart.
func isCineon(buf []byte) bool {
	if len(buf) < 4 {
		return false
	}
	v := binary.BigEndian.Uint32(buf[:4])
	return v == cineonMagic || v == cineonMagicSwap
}

func detectIsMSB(magic, magicSwap uint32, buf []byte) bool {
	v := binary.BigEndian.Uint32(buf[:4])
	return v == magic
}

// OpenFromFile opens a DPX or Cineon file by path, detecting the format
// from its magic number.
func OpenFromFile(path string) (*LogImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapIO(err, "open file")
	}

	var magicBuf [4]byte
	if _, err := f.ReadAt(magicBuf[:], 0); err != nil {
		f.Close()
		return nil, wrapIO(err, "read magic")
	}

	li := &LogImage{handle: newFileHandle(f)}
	if err := li.dispatchHeader(magicBuf[:]); err != nil {
		li.Close()
		return nil, err
	}
	return li, nil
}

// OpenFromMemory opens a DPX or Cineon image already resident in buf.
func OpenFromMemory(buf []byte) (*LogImage, error) {
	if len(buf) < 4 {
		return nil, FormatError("buffer too small to contain a magic number")
	}

	li := &LogImage{handle: newMemHandle(buf)}
	if err := li.dispatchHeader(buf[:4]); err != nil {
		return nil, err
	}
	return li, nil
}

func (li *LogImage) dispatchHeader(magicBuf []byte) error {
	switch {
	case isDpx(magicBuf):
		li.IsMSB = detectIsMSB(dpxMagic, dpxMagicSwap, magicBuf)
		return readDPXHeader(li)
	case isCineon(magicBuf):
		li.IsMSB = detectIsMSB(cineonMagic, cineonMagicSwap, magicBuf)
		return readCineonHeader(li)
	default:
		return FormatError("unrecognized magic number")
	}
}

// Create opens a new file for writing in the requested format. Cineon
// ignores isLogarithmic, hasAlpha, refWhite, refBlack and gamma — Cineon's
// semantics are fixed (printing density, RGB, default film response).
// creator is written verbatim into the file's Creator field.
func Create(path string, format Format, width, height, bits int, isLogarithmic, hasAlpha bool, refWhite, refBlack, gamma float64, creator string) (*LogImage, error) {
	switch format {
	case FormatDPX:
		return createDPX(path, width, height, bits, isLogarithmic, hasAlpha, refWhite, refBlack, gamma, creator)
	case FormatCineon:
		return createCineon(path, width, height, bits, creator)
	default:
		return nil, UnsupportedError("unknown target format")
	}
}
