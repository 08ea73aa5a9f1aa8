// Package mt32 decodes Roland MT-32 SysEx bulk dumps into patch name tables.
//
// A dump is a run of DT1 (data set) messages. The decoder does not split
// it into messages; it searches the raw byte stream for the command
// prefixes of the two memory areas it cares about (timbre memory and patch
// memory) and reads fixed-width records after each match.
package mt32

import "errors"

const (
	sysExStart     = 0xF0
	manufacturerID = 0x41 // Roland
	deviceID       = 0x10
	modelID        = 0x16 // MT-32 / LA synth
	cmdDT1         = 0x12

	// Address high bytes following the DT1 command.
	addrPatchMemory  = 0x05
	addrTimbreMemory = 0x08
	addrDisplay      = 0x20
)

const (
	GroupSize  = 64
	MaxTimbres = 64
	NumPatches = 128

	PatchesPerBlock = 32
	PatchRecordSize = 8
	TimbreNameSize  = 10
	TitleSize       = 20

	// Two address bytes follow the high address byte of a command prefix.
	addrTailSize = 2

	titleOffset = 8
)

var (
	// ErrInvalidFormat is returned when the buffer does not start with an
	// MT-32 DT1 header.
	ErrInvalidFormat = errors.New("not a valid MT-32 SysEx file")

	// ErrMalformedRecord marks a command prefix found too close to the end of
	// the buffer to hold its record. Scanning of that record stream stops.
	ErrMalformedRecord = errors.New("truncated record at end of dump")
)

// Header is the 5-byte DT1 prefix every MT-32 dump starts with.
var Header = [5]byte{sysExStart, manufacturerID, deviceID, modelID, cmdDT1}

var (
	timbrePrefix = [6]byte{sysExStart, manufacturerID, deviceID, modelID, cmdDT1, addrTimbreMemory}
	patchPrefix  = [6]byte{sysExStart, manufacturerID, deviceID, modelID, cmdDT1, addrPatchMemory}
	displayAddr  = [3]byte{addrDisplay, 0x00, 0x00}
)

// HasHeader reports whether buf begins with the MT-32 DT1 header.
func HasHeader(buf []byte) bool {
	if len(buf) < len(Header) {
		return false
	}
	for i, b := range Header {
		if buf[i] != b {
			return false
		}
	}
	return true
}

// ValidateFrame returns ErrInvalidFormat unless buf begins with Header.
func ValidateFrame(buf []byte) error {
	if !HasHeader(buf) {
		return ErrInvalidFormat
	}
	return nil
}

// matchAt reports whether prefix occurs in buf at offset i.
func matchAt(buf []byte, i int, prefix [6]byte) bool {
	if i < 0 || i+len(prefix) > len(buf) || buf[i] != prefix[0] {
		return false
	}
	for j := 1; j < len(prefix); j++ {
		if buf[i+j] != prefix[j] {
			return false
		}
	}
	return true
}
