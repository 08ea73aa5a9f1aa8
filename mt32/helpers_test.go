package mt32

// dt1 builds an MT-32 data-set message for addr carrying data.
func dt1(addr [3]byte, data ...byte) []byte {
	msg := append([]byte{}, Header[:]...)
	msg = append(msg, addr[:]...)
	msg = append(msg, data...)
	body := append(append([]byte{}, addr[:]...), data...)
	return append(msg, checksum(body), sysExEnd)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func titleMsg(text string) []byte {
	field := make([]byte, TitleSize)
	for i := range field {
		field[i] = ' '
	}
	copy(field, text)
	return dt1([3]byte{addrDisplay, 0, 0}, field...)
}

// timbreMsg writes a timbre name followed by a few parameter bytes.
func timbreMsg(n int, name string) []byte {
	field := make([]byte, TimbreNameSize+4)
	copy(field, name)
	return dt1([3]byte{addrTimbreMemory, byte(n * 2), 0}, field...)
}

type rec struct{ group, timbre, keyShift byte }

func patchMsg(block int, recs ...rec) []byte {
	var data []byte
	for _, r := range recs {
		data = append(data, r.group, r.timbre, r.keyShift, 50, 12, 0, 1, 0)
	}
	return dt1([3]byte{addrPatchMemory, byte(block * 2), 0}, data...)
}

func repeatRec(r rec, n int) []rec {
	out := make([]rec, n)
	for i := range out {
		out[i] = r
	}
	return out
}

// padBlock fills recs up to a whole block with records selecting the stock
// name of their own slot.
func padBlock(recs ...rec) []rec {
	for i := len(recs); i < PatchesPerBlock; i++ {
		recs = append(recs, rec{GroupPresetA, byte(i), 24})
	}
	return recs
}
