package mt32

// Bank is a decoded dump, ready for an instrument list.
type Bank struct {
	Title   string      `json:"title"`
	Patches PatchTable  `json:"patches"`
	Timbres TimbreTable `json:"timbres"`
	Report  Report      `json:"report"`
}

// Report describes what the decoder saw and what it had to skip.
type Report struct {
	TitleFound    bool         `json:"title_found"`
	TimbreBytes   int          `json:"timbre_bytes"`
	PatchBytes    int          `json:"patch_bytes"`
	Assigned      int          `json:"assigned"`
	Unresolved    []Unresolved `json:"unresolved,omitempty"`
	TimbreErr     error        `json:"-"`
	PatchErr      error        `json:"-"`
	TimbreProblem string       `json:"timbre_problem,omitempty"`
	PatchProblem  string       `json:"patch_problem,omitempty"`
}

// Decode runs the full pipeline over buf. Only ErrInvalidFormat is
// returned as an error; truncated or overfull record streams are noted in
// the Report and decoding carries on with what was read.
func Decode(buf []byte, fallbackTitle string) (*Bank, error) {
	if err := ValidateFrame(buf); err != nil {
		return nil, err
	}

	b := &Bank{Title: fallbackTitle}
	if title, ok := decodeTitle(buf); ok {
		b.Title = title
		b.Report.TitleFound = true
	}

	timbres, n, err := ScanTimbres(buf)
	b.Timbres = timbres
	b.Report.TimbreBytes = n
	if err != nil {
		b.Report.TimbreErr = err
		b.Report.TimbreProblem = err.Error()
	}

	scan, err := ResolvePatches(buf, timbres)
	b.Patches = scan.Patches
	b.Report.PatchBytes = scan.Consumed
	b.Report.Assigned = scan.Assigned
	b.Report.Unresolved = scan.Unresolved
	if err != nil {
		b.Report.PatchErr = err
		b.Report.PatchProblem = err.Error()
	}
	return b, nil
}
