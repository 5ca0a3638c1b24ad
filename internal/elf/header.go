package elf

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the length of a 64-bit ELF file header, e_ident block
// included.
const HeaderSize = 64

// Type classifies the object file (e_type).
type Type uint16

const (
	TypeNone   Type = 0
	TypeRel    Type = 1
	TypeExec   Type = 2
	TypeDyn    Type = 3
	TypeCore   Type = 4
	TypeLoProc Type = 0xff00
	TypeHiProc Type = 0xffff
)

// typeNames lists every accepted file type. Validation and rendering
// both go through this table.
var typeNames = map[Type]string{
	TypeNone:   "No file type",
	TypeRel:    "Relocatable file",
	TypeExec:   "Executable file",
	TypeDyn:    "Shared object file",
	TypeCore:   "Core file",
	TypeLoProc: "Processor-specific",
	TypeHiProc: "Processor-specific",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// Machine identifies the required architecture (e_machine).
type Machine uint16

const (
	MachineNone        Machine = 0
	MachineM32         Machine = 1
	MachineSPARC       Machine = 2
	Machine386         Machine = 3
	Machine68K         Machine = 4
	Machine88K         Machine = 5
	Machine860         Machine = 7
	MachineMIPS        Machine = 8
	MachineS370        Machine = 9
	MachineMIPSRS3LE   Machine = 10
	MachinePARISC      Machine = 15
	MachineVPP500      Machine = 17
	MachineSPARC32Plus Machine = 18
	Machine960         Machine = 19
	MachinePPC         Machine = 20
	MachinePPC64       Machine = 21
	MachineS390        Machine = 22
	MachineX86_64      Machine = 62
	MachineAARCH64     Machine = 183
	MachineRISCV       Machine = 243
	MachineLoProc      Machine = 0xff00
	MachineHiProc      Machine = 0xffff
)

// machineNames lists every accepted machine value. Anything outside the
// table fails decoding.
var machineNames = map[Machine]string{
	MachineNone:        "No machine",
	MachineM32:         "AT&T WE 32100",
	MachineSPARC:       "SPARC",
	Machine386:         "Intel 80386",
	Machine68K:         "Motorola 68000",
	Machine88K:         "Motorola 88000",
	Machine860:         "Intel 80860",
	MachineMIPS:        "MIPS I Architecture",
	MachineS370:        "IBM System/370 Processor",
	MachineMIPSRS3LE:   "MIPS RS3000 Little-endian",
	MachinePARISC:      "Hewlett-Packard PA-RISC",
	MachineVPP500:      "Fujitsu VPP500",
	MachineSPARC32Plus: "Enhanced instruction set SPARC",
	Machine960:         "Intel 80960",
	MachinePPC:         "PowerPC",
	MachinePPC64:       "PowerPC64",
	MachineS390:        "IBM System/390 Processor",
	MachineX86_64:      "AMD x86-64 architecture",
	MachineAARCH64:     "ARM AARCH64",
	MachineRISCV:       "RISC-V",
	MachineLoProc:      "Processor-specific",
	MachineHiProc:      "Processor-specific",
}

func (m Machine) String() string {
	if s, ok := machineNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Machine(%d)", uint16(m))
}

// Header is the decoded 64-byte ELF file header.
type Header struct {
	Ident     Ident
	Type      Type
	Machine   Machine
	Version   Version
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// DecodeHeader decodes and validates the 64-byte file header at the
// start of b. The e_ident block is validated first and its errors pass
// through unchanged. All multi-byte fields are read little-endian
// regardless of the declared data encoding.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, &ParseError{Kind: InvalidSize, Value: uint64(len(b))}
	}

	ident, err := DecodeIdent(b[:IdentSize])
	if err != nil {
		return Header{}, err
	}

	typ := Type(binary.LittleEndian.Uint16(b[16:18]))
	if _, ok := typeNames[typ]; !ok {
		return Header{}, &ParseError{Kind: InvalidType, Value: uint64(typ)}
	}

	machine := Machine(binary.LittleEndian.Uint16(b[18:20]))
	if _, ok := machineNames[machine]; !ok {
		return Header{}, &ParseError{Kind: InvalidMachine, Value: uint64(machine)}
	}

	version := binary.LittleEndian.Uint32(b[20:24])
	if version > uint32(VersionCurrent) {
		return Header{}, &ParseError{Kind: InvalidVersion, Value: uint64(version)}
	}

	return Header{
		Ident:     ident,
		Type:      typ,
		Machine:   machine,
		Version:   Version(version),
		Entry:     binary.LittleEndian.Uint64(b[24:32]),
		Phoff:     binary.LittleEndian.Uint64(b[32:40]),
		Shoff:     binary.LittleEndian.Uint64(b[40:48]),
		Flags:     binary.LittleEndian.Uint32(b[48:52]),
		Ehsize:    binary.LittleEndian.Uint16(b[52:54]),
		Phentsize: binary.LittleEndian.Uint16(b[54:56]),
		Phnum:     binary.LittleEndian.Uint16(b[56:58]),
		Shentsize: binary.LittleEndian.Uint16(b[58:60]),
		Shnum:     binary.LittleEndian.Uint16(b[60:62]),
		Shstrndx:  binary.LittleEndian.Uint16(b[62:64]),
	}, nil
}
