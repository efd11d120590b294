package logimage

import (
	"encoding/binary"
	"io"
	"math/bits"
	"os"
)

// hostIsBigEndian reports whether this process's native integer
// representation is big-endian. Computed once, without unsafe, by reading a
// known two-byte pattern back with encoding/binary's native-order codec.
var hostIsBigEndian = func() bool {
	buf := []byte{0x01, 0x00}
	return binary.NativeEndian.Uint16(buf) != 1
}()

// swapUint32 byte-swaps x when the host's native order disagrees with
// isMSB ("value is stored MSB-first in the file"), and leaves it alone
// otherwise. Callers always apply this themselves after a raw host-order
// read — see byteHandle.ReadUint.
func swapUint32(x uint32, isMSB bool) uint32 {
	if isMSB == hostIsBigEndian {
		return x
	}
	return bits.ReverseBytes32(x)
}

// swapUint16 is swapUint32's 16-bit counterpart.
func swapUint16(x uint16, isMSB bool) uint16 {
	if isMSB == hostIsBigEndian {
		return x
	}
	return bits.ReverseBytes16(x)
}

// byteHandle is the C1 byte source/sink abstraction: a uniform seekable
// byte interface backed either by a host file or an in-memory buffer, plus
// typed accessors that read the raw bytes in host order — endian
// correction is always the caller's responsibility via swapUint32/
// swapUint16, matching the image's isMSB flag.
type byteHandle interface {
	Seek(offset int64, whence int) error
	ReadUchar() (uint8, error)
	ReadUshort() (uint16, error)
	ReadUint() (uint32, error)
	Write(p []byte) (int, error)
	Close() error
}

// fileHandle is a byteHandle backed by an *os.File.
type fileHandle struct {
	f *os.File
}

func newFileHandle(f *os.File) *fileHandle {
	return &fileHandle{f: f}
}

func (h *fileHandle) Seek(offset int64, whence int) error {
	_, err := h.f.Seek(offset, whence)
	return wrapIO(err, "seek")
}

func (h *fileHandle) ReadUchar() (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(h.f, buf[:]); err != nil {
		return 0, wrapIO(err, "read_uchar")
	}
	return buf[0], nil
}

func (h *fileHandle) ReadUshort() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(h.f, buf[:]); err != nil {
		return 0, wrapIO(err, "read_ushort")
	}
	return binary.NativeEndian.Uint16(buf[:]), nil
}

func (h *fileHandle) ReadUint() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(h.f, buf[:]); err != nil {
		return 0, wrapIO(err, "read_uint")
	}
	return binary.NativeEndian.Uint32(buf[:]), nil
}

func (h *fileHandle) Write(p []byte) (int, error) {
	n, err := h.f.Write(p)
	return n, wrapIO(err, "write")
}

func (h *fileHandle) Close() error {
	return wrapIO(h.f.Close(), "close")
}

// memHandle is a byteHandle backed by an in-memory slice. Reads are bounded
// by len(buf); writes past the end grow the buffer, so the same type
// serves both OpenFromMemory (read-only, pre-sized) and an in-memory sink
// built by a test.
type memHandle struct {
	buf []byte
	off int
}

func newMemHandle(buf []byte) *memHandle {
	return &memHandle{buf: buf}
}

func (h *memHandle) Seek(offset int64, whence int) error {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(h.off)
	case io.SeekEnd:
		base = int64(len(h.buf))
	default:
		return ArgumentError("invalid seek whence")
	}
	pos := base + offset
	if pos < 0 {
		return wrapIO(io.ErrUnexpectedEOF, "seek")
	}
	h.off = int(pos)
	return nil
}

func (h *memHandle) readN(n int) ([]byte, error) {
	if h.off+n > len(h.buf) {
		return nil, wrapIO(io.ErrUnexpectedEOF, "read")
	}
	p := h.buf[h.off : h.off+n]
	h.off += n
	return p, nil
}

func (h *memHandle) ReadUchar() (uint8, error) {
	p, err := h.readN(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func (h *memHandle) ReadUshort() (uint16, error) {
	p, err := h.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(p), nil
}

func (h *memHandle) ReadUint() (uint32, error) {
	p, err := h.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(p), nil
}

func (h *memHandle) Write(p []byte) (int, error) {
	need := h.off + len(p)
	if need > len(h.buf) {
		grown := make([]byte, need)
		copy(grown, h.buf)
		h.buf = grown
	}
	copy(h.buf[h.off:], p)
	h.off += len(p)
	return len(p), nil
}

func (h *memHandle) Close() error {
	return nil
}

// Bytes returns the current contents of an in-memory sink.
func (h *memHandle) Bytes() []byte {
	return h.buf
}
