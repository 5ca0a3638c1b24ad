package elf

import "fmt"

// ErrorKind identifies the validation step that rejected the input.
type ErrorKind int

const (
	InvalidSize ErrorKind = iota
	InvalidMagic
	InvalidClass
	InvalidData
	InvalidVersion
	InvalidOSABI
	ReservedOSABI
	InvalidType
	InvalidMachine
	IOError
)

// kindMessages holds the fixed one-line description for each error kind.
var kindMessages = map[ErrorKind]string{
	InvalidSize:    "invalid ELF header size",
	InvalidMagic:   "invalid ELF magic number",
	InvalidClass:   "invalid ELF class",
	InvalidData:    "invalid ELF data encoding",
	InvalidVersion: "invalid ELF version",
	InvalidOSABI:   "invalid ELF OS/ABI",
	ReservedOSABI:  "reserved ELF OS/ABI value",
	InvalidType:    "invalid ELF file type",
	InvalidMachine: "invalid ELF machine",
	IOError:        "failed to read ELF header",
}

// ParseError is returned by every decoding operation. Kind selects the
// fixed message, Value carries the rejected wire value where one exists,
// and Err holds the underlying cause for I/O failures.
type ParseError struct {
	Kind  ErrorKind
	Value uint64
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", kindMessages[e.Kind], e.Err)
	}
	return kindMessages[e.Kind]
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
