package main

import (
	"github.com/chronos-tachyon/crc"
	getopt "github.com/pborman/getopt/v2"
)

// type FormatFlag {{{

// FormatFlag implements getopt.Value for crc.Format.
type FormatFlag struct {
	Value crc.Format
}

// Set fulfills getopt.Value.
func (flag *FormatFlag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag FormatFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*FormatFlag)(nil)

// }}}

// type BufferBitsFlag {{{

// BufferBitsFlag implements getopt.Value for crc.BufferBits.
type BufferBitsFlag struct {
	Value crc.BufferBits
}

// Set fulfills getopt.Value.
func (flag *BufferBitsFlag) Set(str string, opt getopt.Option) error {
	return flag.Value.Parse(str)
}

// String fulfills getopt.Value.
func (flag BufferBitsFlag) String() string {
	return flag.Value.String()
}

var _ getopt.Value = (*BufferBitsFlag)(nil)

// }}}
