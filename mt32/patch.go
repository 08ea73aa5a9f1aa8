package mt32

import "fmt"

// Timbre groups selectable from a patch record.
const (
	GroupPresetA = 0x00
	GroupPresetB = 0x01
	GroupMemory  = 0x02
	GroupRhythm  = 0x03
)

// PatchTable maps program numbers 0-127 to display names.
type PatchTable [NumPatches]string

// Reason explains why a patch record left its slot at the stock name.
type Reason int

const (
	ReasonUnassigned Reason = iota + 1
	ReasonUnknownGroup
	ReasonIndexRange
	ReasonNoTimbre
)

func (r Reason) String() string {
	switch r {
	case ReasonUnassigned:
		return "unassigned"
	case ReasonUnknownGroup:
		return "unknown timbre group"
	case ReasonIndexRange:
		return "timbre number out of range"
	case ReasonNoTimbre:
		return "custom timbre not in dump"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Unresolved records a patch slot that kept its stock name.
type Unresolved struct {
	Slot   int    `json:"slot"`
	Group  byte   `json:"group"`
	Index  byte   `json:"index"`
	Reason Reason `json:"reason"`
}

func (u Unresolved) String() string {
	return fmt.Sprintf("slot %d (group 0x%02X, timbre %d): %s", u.Slot, u.Group, u.Index, u.Reason)
}

// PatchScan is the result of ResolvePatches.
type PatchScan struct {
	Patches    PatchTable
	Unresolved []Unresolved

	// Assigned counts slots covered by a patch record, resolved or not.
	Assigned int

	// Consumed is the offset just past the last record read.
	Consumed int
}

// Patch record layout.
const (
	recGroup    = 0
	recTimbre   = 1
	recKeyShift = 2
)

// ResolvePatches walks every patch-memory write in buf. Each carries
// PatchesPerBlock records which are assigned to consecutive slots,
// continuing across writes. Slots without a usable record keep their stock
// name, so every entry of the returned table is set.
//
// A write too short to hold its next record stops the scan with
// ErrMalformedRecord; the slots already resolved are returned.
func ResolvePatches(buf []byte, timbres TimbreTable) (PatchScan, error) {
	scan := PatchScan{Patches: StockPatches()}
	slot := 0
	for i := 0; i+len(patchPrefix) <= len(buf) && slot < NumPatches; i++ {
		if !matchAt(buf, i, patchPrefix) {
			continue
		}
		pos := i + len(patchPrefix) + addrTailSize
		for r := 0; r < PatchesPerBlock && slot < NumPatches; r++ {
			if pos+PatchRecordSize > len(buf) {
				return scan, ErrMalformedRecord
			}
			rec := buf[pos : pos+PatchRecordSize]
			if name, reason := resolveRecord(rec, timbres); reason == 0 {
				scan.Patches[slot] = name
			} else {
				scan.Unresolved = append(scan.Unresolved, Unresolved{
					Slot:   slot,
					Group:  rec[recGroup],
					Index:  rec[recTimbre],
					Reason: reason,
				})
			}
			slot++
			pos += PatchRecordSize
			scan.Assigned = slot
			scan.Consumed = pos
		}
		i = pos
	}
	return scan, nil
}

// resolveRecord picks the name a patch record points at. A zero Reason
// means the name is valid.
func resolveRecord(rec []byte, timbres TimbreTable) (string, Reason) {
	group, idx := rec[recGroup], int(rec[recTimbre])
	switch {
	case group == GroupPresetA && rec[recKeyShift] == 0:
		return "", ReasonUnassigned
	case group == GroupPresetA:
		if idx >= GroupSize {
			return "", ReasonIndexRange
		}
		return GroupA[idx], 0
	case group == GroupPresetB:
		if idx >= GroupSize {
			return "", ReasonIndexRange
		}
		return GroupB[idx], 0
	case group == GroupMemory:
		if idx >= MaxTimbres {
			return "", ReasonIndexRange
		}
		name, ok := timbres.Name(idx)
		if !ok {
			return "", ReasonNoTimbre
		}
		return name, 0
	default:
		return "", ReasonUnknownGroup
	}
}
