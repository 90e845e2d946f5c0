package crc

import (
	"sync"

	"github.com/chronos-tachyon/assert"
	buffer "github.com/chronos-tachyon/buffer/v3"
)

var bufferPools [MaxBufferBits + 1]sync.Pool

func takeBuffer(bb BufferBits) *buffer.Buffer {
	assert.Assertf(bb >= MinBufferBits && bb <= MaxBufferBits, "BufferBits %d out of range", uint(bb))
	if v := bufferPools[bb].Get(); v != nil {
		return v.(*buffer.Buffer)
	}
	buf := new(buffer.Buffer)
	buf.Init(uint(bb))
	return buf
}

func giveBuffer(buf *buffer.Buffer) {
	assert.NotNil(&buf)
	bb := BufferBits(buf.NumBits())
	assert.Assertf(bb >= MinBufferBits && bb <= MaxBufferBits, "buffer NumBits %d out of range", uint(bb))
	buf.Clear()
	bufferPools[bb].Put(buf)
}
