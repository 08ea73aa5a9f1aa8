// Package ins writes Cakewalk/Sonar instrument definition (.INS) files.
package ins

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var divider = "; " + strings.Repeat("-", 70)

// BankName is the patch name list and instrument name used for title.
func BankName(title string) string {
	return title + " Patch Bank"
}

// Write emits a single-instrument definition file whose patch name list
// holds names in program order.
func Write(w io.Writer, title string, names []string) error {
	bw := bufio.NewWriter(w)
	bank := BankName(title)

	fmt.Fprintf(bw, "\n%s\n\n.Patch Names\n\n\n", divider)
	fmt.Fprintf(bw, "[%s]\n", bank)
	for i, name := range names {
		fmt.Fprintf(bw, "%d=%s\n", i, name)
	}
	fmt.Fprintf(bw, "\n%s\n\n.Note Names\n\n", divider)
	fmt.Fprintf(bw, "\n%s\n\n.Instrument Definitions\n\n", divider)
	fmt.Fprintf(bw, "\n[%s]\nPatch[*]=%s\n", bank, bank)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write instrument list: %w", err)
	}
	return nil
}

// Render returns the file Write would produce.
func Render(title string, names []string) string {
	var sb strings.Builder
	_ = Write(&sb, title, names)
	return sb.String()
}
