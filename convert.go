package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"syx2ins/ins"
	"syx2ins/mt32"
)

const (
	syxExt = ".SYX"
	insExt = ".INS"
)

var errOutputExists = errors.New("output file already exists")

// inputPath returns path, or path with .SYX appended when path has no
// extension and does not exist.
func inputPath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if filepath.Ext(path) != "" {
		return "", fmt.Errorf("file %q does not exist", path)
	}
	withExt := path + syxExt
	if _, err := os.Stat(withExt); err != nil {
		return "", fmt.Errorf("file %q does not exist", withExt)
	}
	log.Printf("No extension given and %q does not exist. Using %q", path, withExt)
	return withExt, nil
}

// outputPath appends .INS to extensionless paths.
func outputPath(path string) string {
	if filepath.Ext(path) == "" {
		return path + insExt
	}
	return path
}

// fallbackTitle names a bank after its dump file when the dump carries no
// LCD title.
func fallbackTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// createNew opens path for writing, refusing to replace an existing file.
func createNew(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%q: %w", path, errOutputExists)
	}
	return f, err
}

// openLog mirrors log output into name. The returned func restores stderr
// logging and closes the file.
func openLog(name string) func() {
	f, err := os.Create(name)
	if err != nil {
		log.Printf("could not open log file %s: %v", name, err)
		return func() {}
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

func runConvert(syxPath, insPath string) {
	closeLog := openLog(logFileName)
	defer closeLog()

	log.Printf("Input file: %q", syxPath)
	out, err := convertFile(syxPath, insPath)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	log.Printf("Wrote %s", out)
	log.Println("DONE!")
}

// convertFile decodes the dump at syxPath and writes its instrument list.
// It returns the path written.
func convertFile(syxPath, insPath string) (string, error) {
	in, err := inputPath(syxPath)
	if err != nil {
		return "", err
	}
	buf, err := os.ReadFile(in)
	if err != nil {
		return "", fmt.Errorf("failed to read dump: %w", err)
	}

	bank, err := mt32.Decode(buf, fallbackTitle(in))
	if err != nil {
		return "", fmt.Errorf("%s: %w", in, err)
	}
	narrate(bank)

	out := outputPath(insPath)
	f, err := createNew(out)
	if err != nil {
		return "", err
	}
	if err := ins.Write(f, bank.Title, bank.Patches[:]); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", out, err)
	}
	return out, nil
}

func narrate(bank *mt32.Bank) {
	log.Println("MT-32 sysex header found!")
	if bank.Report.TitleFound {
		log.Println("Custom title text found.")
	} else {
		log.Println("No custom title text found. Using file name instead.")
	}
	log.Printf("[%s]", bank.Title)

	log.Printf("Cataloged %d custom timbre names", len(bank.Timbres))
	if bank.Report.TimbreErr != nil {
		log.Printf("timbre scan stopped early at byte %d: %v", bank.Report.TimbreBytes, bank.Report.TimbreErr)
	}

	log.Printf("Generating final instrument list (%d slots from dump)", bank.Report.Assigned)
	for i, name := range bank.Patches {
		log.Printf("%3d %s", i, name)
	}
	for _, u := range bank.Report.Unresolved {
		log.Printf("kept stock name for %s", u)
	}
	if bank.Report.PatchErr != nil {
		log.Printf("patch scan stopped early at byte %d: %v", bank.Report.PatchBytes, bank.Report.PatchErr)
	}
}
