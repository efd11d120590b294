package logimage

import (
	"encoding/binary"
	"io"
	"math"
)

// putHeaderU32 and putHeaderU16 write v into buf so that a later native-
// order read followed by swapUint32/swapUint16(·, isMSB) reproduces v,
// mirroring the convention byteio.go's read path and element_write.go's
// writeUint32Row/writeUint16Row already use.
func putHeaderU32(buf []byte, v uint32, isMSB bool) {
	binary.NativeEndian.PutUint32(buf, swapUint32(v, isMSB))
}

func putHeaderU16(buf []byte, v uint16, isMSB bool) {
	binary.NativeEndian.PutUint16(buf, swapUint16(v, isMSB))
}

func float32Bits(f float32) uint32   { return math.Float32bits(f) }
func floatFromBits(v uint32) float32 { return math.Float32frombits(v) }

// putHeaderString writes s left-justified into buf[off:off+size] as ASCII,
// truncated to size-1 bytes and null-terminated, zero-padding the rest —
// the fixed-width free-form text field convention both DPX's and Cineon's
// file-information headers use (Creator, project name, and similar).
func putHeaderString(buf []byte, off, size int, s string) {
	field := buf[off : off+size]
	for i := range field {
		field[i] = 0
	}
	n := size - 1
	if len(s) < n {
		n = len(s)
	}
	copy(field, s[:n])
}

// readHeaderString reads a null-terminated (or full-width) ASCII field back
// out, the inverse of putHeaderString.
func readHeaderString(buf []byte, off, size int) string {
	field := buf[off : off+size]
	n := 0
	for n < len(field) && field[n] != 0 {
		n++
	}
	return string(field[:n])
}

// readHeaderStringAt seeks li's handle to off and reads a size-byte
// fixed-width ASCII field, the byteHandle-backed counterpart of
// readHeaderString for callers that don't already hold the whole header
// in a buffer.
func readHeaderStringAt(li *LogImage, off, size int) (string, error) {
	if err := li.handle.Seek(int64(off), io.SeekStart); err != nil {
		return "", err
	}
	buf := make([]byte, size)
	for i := range buf {
		b, err := li.handle.ReadUchar()
		if err != nil {
			return "", err
		}
		buf[i] = b
	}
	return readHeaderString(buf, 0, size), nil
}
