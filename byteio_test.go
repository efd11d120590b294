package logimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapUint32RoundTrip(t *testing.T) {
	v := uint32(0x01020304)
	assert.Equal(t, v, swapUint32(swapUint32(v, true), true))
	assert.Equal(t, v, swapUint32(swapUint32(v, false), false))
}

func TestSwapUint32MatchesHostOrder(t *testing.T) {
	v := uint32(0x01020304)
	if hostIsBigEndian {
		assert.Equal(t, v, swapUint32(v, true))
		assert.NotEqual(t, v, swapUint32(v, false))
	} else {
		assert.Equal(t, v, swapUint32(v, false))
		assert.NotEqual(t, v, swapUint32(v, true))
	}
}

func TestMemHandleWriteThenRead(t *testing.T) {
	h := newMemHandle(make([]byte, 8))
	n, err := h.Write([]byte{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.NoError(t, h.Seek(0, 0))
	b, err := h.ReadUchar()
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), b)
}

func TestMemHandleGrowsOnWrite(t *testing.T) {
	h := newMemHandle(nil)
	_, err := h.Write([]byte{9, 9, 9})
	assert.NoError(t, err)
	assert.Equal(t, []byte{9, 9, 9}, h.Bytes())
}
