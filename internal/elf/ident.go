package elf

import (
	"bytes"
	"fmt"
)

// IdentSize is the length of the e_ident block at the start of every
// ELF file.
const IdentSize = 16

// elfMagic is the four-byte signature every ELF file starts with.
var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// Class distinguishes 32-bit from 64-bit object files (EI_CLASS).
type Class byte

const (
	ClassNone Class = 0
	Class32   Class = 1
	Class64   Class = 2
)

var classNames = map[Class]string{
	ClassNone: "Invalid class",
	Class32:   "32-bit objects",
	Class64:   "64-bit objects",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Class(%d)", byte(c))
}

// Data identifies the byte order the file declares for its multi-byte
// fields (EI_DATA).
type Data byte

const (
	DataNone Data = 0
	Data2LSB Data = 1
	Data2MSB Data = 2
)

var dataNames = map[Data]string{
	DataNone: "Invalid data encoding",
	Data2LSB: "Little-endian",
	Data2MSB: "Big-endian",
}

func (d Data) String() string {
	if s, ok := dataNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Data(%d)", byte(d))
}

// Version is the ELF format version. The same two values are carried by
// the e_ident version byte and the 32-bit e_version header field.
type Version byte

const (
	VersionNone    Version = 0
	VersionCurrent Version = 1
)

var versionNames = map[Version]string{
	VersionNone:    "Invalid version",
	VersionCurrent: "Current version",
}

func (v Version) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Version(%d)", byte(v))
}

// OSABI identifies the operating system and ABI extensions the file
// targets (EI_OSABI).
type OSABI byte

const (
	OSABINone       OSABI = 0
	OSABIHPUX       OSABI = 1
	OSABINetBSD     OSABI = 2
	OSABIGNU        OSABI = 3
	OSABISolaris    OSABI = 6
	OSABIAIX        OSABI = 7
	OSABIIRIX       OSABI = 8
	OSABIFreeBSD    OSABI = 9
	OSABITru64      OSABI = 10
	OSABIModesto    OSABI = 11
	OSABIOpenBSD    OSABI = 12
	OSABIOpenVMS    OSABI = 13
	OSABINSK        OSABI = 14
	OSABIAROS       OSABI = 15
	OSABIFenixOS    OSABI = 16
	OSABICloudABI   OSABI = 17
	OSABIOpenVOS    OSABI = 18
	OSABIStandalone OSABI = 255
)

// osABINames lists every assigned OS/ABI value. Values missing from the
// table are reserved, see reserved().
var osABINames = map[OSABI]string{
	OSABINone:       "No extensions or unspecified",
	OSABIHPUX:       "HP-UX",
	OSABINetBSD:     "NetBSD",
	OSABIGNU:        "GNU",
	OSABISolaris:    "Solaris",
	OSABIAIX:        "AIX",
	OSABIIRIX:       "IRIX",
	OSABIFreeBSD:    "FreeBSD",
	OSABITru64:      "Tru64",
	OSABIModesto:    "Novell Modesto",
	OSABIOpenBSD:    "OpenBSD",
	OSABIOpenVMS:    "OpenVMS",
	OSABINSK:        "NonStop Kernel",
	OSABIAROS:       "AROS",
	OSABIFenixOS:    "FenixOS",
	OSABICloudABI:   "CloudABI",
	OSABIOpenVOS:    "Stratus Technologies OpenVOS",
	OSABIStandalone: "Standalone (embedded) application",
}

func (o OSABI) String() string {
	if s, ok := osABINames[o]; ok {
		return s
	}
	return fmt.Sprintf("OSABI(%d)", byte(o))
}

// reserved reports whether the value falls in one of the unassigned gaps
// of the OS/ABI table: 4, 5 and 19 through 254.
func (o OSABI) reserved() bool {
	return o == 4 || o == 5 || (o >= 19 && o <= 254)
}

// Ident holds the decoded e_ident block, the first sixteen bytes of an
// ELF file.
type Ident struct {
	Magic      [4]byte
	Class      Class
	Data       Data
	Version    Version
	OSABI      OSABI
	ABIVersion uint8
}

// DecodeIdent decodes and validates the e_ident block at the start of b.
// Checks run in the field order of the block and stop at the first
// failure. The ABI version byte is copied verbatim and bytes 9 through
// 15 are padding, ignored.
func DecodeIdent(b []byte) (Ident, error) {
	if len(b) < IdentSize {
		return Ident{}, &ParseError{Kind: InvalidSize, Value: uint64(len(b))}
	}

	if !bytes.Equal(b[:4], elfMagic[:]) {
		return Ident{}, &ParseError{Kind: InvalidMagic}
	}

	class := Class(b[4])
	if class != Class32 && class != Class64 {
		return Ident{}, &ParseError{Kind: InvalidClass, Value: uint64(b[4])}
	}

	data := Data(b[5])
	if data != Data2LSB && data != Data2MSB {
		return Ident{}, &ParseError{Kind: InvalidData, Value: uint64(b[5])}
	}

	version := Version(b[6])
	if version > VersionCurrent {
		return Ident{}, &ParseError{Kind: InvalidVersion, Value: uint64(b[6])}
	}

	osabi := OSABI(b[7])
	if _, ok := osABINames[osabi]; !ok {
		if osabi.reserved() {
			return Ident{}, &ParseError{Kind: ReservedOSABI, Value: uint64(b[7])}
		}
		return Ident{}, &ParseError{Kind: InvalidOSABI, Value: uint64(b[7])}
	}

	ident := Ident{
		Class:      class,
		Data:       data,
		Version:    version,
		OSABI:      osabi,
		ABIVersion: b[8],
	}
	copy(ident.Magic[:], b[:4])
	return ident, nil
}
