package crc

const strDefault = "default"

const bitsPerByte = 8

// bytesForWidth returns the number of bytes needed to hold width bits.
func bytesForWidth(width uint) int {
	return int((width + bitsPerByte - 1) / bitsPerByte)
}
