package elf

import (
	"io"
	"os"
)

// ReadHeader reads the first 64 bytes of the named file and decodes them.
// Open and read failures, including files shorter than 64 bytes, surface
// as I/O errors wrapping the underlying cause.
func ReadHeader(path string) (Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, &ParseError{Kind: IOError, Err: err}
	}
	defer file.Close()

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(file, buf); err != nil {
		return Header{}, &ParseError{Kind: IOError, Err: err}
	}

	return DecodeHeader(buf)
}
