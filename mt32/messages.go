package mt32

import (
	"bytes"
	"fmt"

	"gitlab.com/gomidi/midi/v2"
)

const sysExEnd = 0xF7

// Message is one SysEx frame of a dump.
type Message struct {
	Offset     int
	Raw        midi.Message
	DT1        bool // false for frames that are not MT-32 data sets
	Address    uint32
	DataLen    int
	ChecksumOK bool
}

func (m Message) String() string {
	if !m.DT1 {
		return fmt.Sprintf("%6d  % X", m.Offset, []byte(m.Raw))
	}
	chk := "ok"
	if !m.ChecksumOK {
		chk = "BAD"
	}
	return fmt.Sprintf("%6d  DT1 %06X  %3d bytes  %-8s checksum %s", m.Offset, m.Address, m.DataLen, AreaName(m.Address), chk)
}

// AreaName names the MT-32 memory area an address falls into.
func AreaName(addr uint32) string {
	switch byte(addr >> 16) {
	case 0x03:
		return "temp"
	case 0x04:
		return "rhythm"
	case addrPatchMemory:
		return "patch"
	case addrTimbreMemory:
		return "timbre"
	case 0x10:
		return "system"
	case addrDisplay:
		return "display"
	case 0x7F:
		return "reset"
	default:
		return "?"
	}
}

// Messages splits buf into its F0..F7 frames. An unterminated trailing
// frame is dropped.
func Messages(buf []byte) []Message {
	var out []Message
	for off := 0; off < len(buf); {
		start := bytes.IndexByte(buf[off:], sysExStart)
		if start < 0 {
			break
		}
		start += off
		end := bytes.IndexByte(buf[start+1:], sysExEnd)
		if end < 0 {
			break
		}
		end += start + 2
		out = append(out, parseMessage(start, midi.Message(buf[start:end])))
		off = end
	}
	return out
}

func parseMessage(offset int, raw midi.Message) Message {
	m := Message{Offset: offset, Raw: raw}
	var body []byte
	if !raw.GetSysEx(&body) {
		return m
	}
	// manufacturer, device, model, command, 3 address bytes, checksum
	if len(body) < 8 || !bytes.Equal(body[:4], Header[1:]) {
		return m
	}
	m.DT1 = true
	m.Address = uint32(body[4])<<16 | uint32(body[5])<<8 | uint32(body[6])
	m.DataLen = len(body) - 8
	m.ChecksumOK = checksum(body[4:len(body)-1]) == body[len(body)-1]
	return m
}

// checksum is the Roland DT1 checksum over address and data bytes.
func checksum(data []byte) byte {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	return byte((128 - sum%128) % 128)
}
