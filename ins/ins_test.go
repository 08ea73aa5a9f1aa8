package ins

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderLayout(t *testing.T) {
	out := Render("Space Quest", []string{"Alpha", "Beta"})

	want := "\n; ----------------------------------------------------------------------\n\n.Patch Names\n\n\n" +
		"[Space Quest Patch Bank]\n" +
		"0=Alpha\n1=Beta\n" +
		"\n; ----------------------------------------------------------------------\n\n.Note Names\n\n" +
		"\n; ----------------------------------------------------------------------\n\n.Instrument Definitions\n\n" +
		"\n[Space Quest Patch Bank]\nPatch[*]=Space Quest Patch Bank\n"

	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
}

func TestRenderSectionOrder(t *testing.T) {
	names := make([]string, 128)
	for i := range names {
		names[i] = "x"
	}
	out := Render("T", names)

	patch := strings.Index(out, ".Patch Names")
	note := strings.Index(out, ".Note Names")
	def := strings.Index(out, ".Instrument Definitions")
	if !(patch >= 0 && patch < note && note < def) {
		t.Fatalf("sections out of order: %d %d %d", patch, note, def)
	}
	if !strings.Contains(out, "\n127=x\n") {
		t.Errorf("last slot missing")
	}
	if strings.Contains(out, "\n128=") {
		t.Errorf("unexpected slot 128")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	if err := Write(failWriter{}, "T", []string{"a"}); err == nil {
		t.Fatalf("expected error from failing writer")
	}
}
