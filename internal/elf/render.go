package elf

import (
	"fmt"
	"strings"
)

// String renders the identification block as a field-by-field listing.
// Lines are joined with "\n" and the result carries no trailing newline.
func (n Ident) String() string {
	lines := []string{
		"ELF Identification:",
		fmt.Sprintf("  Magic: [% x]", n.Magic[:]),
		fmt.Sprintf("  Class: %s", n.Class),
		fmt.Sprintf("  Data: %s", n.Data),
		fmt.Sprintf("  Version: %s", n.Version),
		fmt.Sprintf("  OS/ABI: %s", n.OSABI),
		fmt.Sprintf("  ABI Version: %d", n.ABIVersion),
	}
	return strings.Join(lines, "\n")
}

// String renders the full header listing, identification block first.
// Lines are joined with "\n" and the result carries no trailing newline.
func (h Header) String() string {
	lines := []string{
		h.Ident.String(),
		fmt.Sprintf("ELF Type: %s", h.Type),
		fmt.Sprintf("Machine: %s", h.Machine),
		fmt.Sprintf("Version: %s", h.Version),
		fmt.Sprintf("Entry point address: %#x", h.Entry),
		fmt.Sprintf("Start of program headers: %d (bytes into file)", h.Phoff),
		fmt.Sprintf("Start of section headers: %d (bytes into file)", h.Shoff),
		fmt.Sprintf("Flags: %#x", h.Flags),
		fmt.Sprintf("Size of this header: %d (bytes)", h.Ehsize),
		fmt.Sprintf("Size of program headers: %d (bytes)", h.Phentsize),
		fmt.Sprintf("Number of program headers: %d", h.Phnum),
		fmt.Sprintf("Size of section headers: %d (bytes)", h.Shentsize),
		fmt.Sprintf("Number of section headers: %d", h.Shnum),
		fmt.Sprintf("Section header string table index: %d", h.Shstrndx),
	}
	return strings.Join(lines, "\n")
}
