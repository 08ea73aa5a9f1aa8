package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"syx2ins/mt32"
)

func readDump(path string) []byte {
	in, err := inputPath(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	buf, err := os.ReadFile(in)
	if err != nil {
		log.Fatalf("failed to read dump: %v", err)
	}
	return buf
}

// dumpMessages lists the SysEx frames of a dump on stdout.
func dumpMessages(path string) {
	buf := readDump(path)
	if !mt32.HasHeader(buf) {
		log.Printf("warning: %v", mt32.ErrInvalidFormat)
	}
	writeMessages(os.Stdout, buf)
}

func writeMessages(w io.Writer, buf []byte) int {
	msgs := mt32.Messages(buf)
	fmt.Fprintf(w, "%d bytes, %d messages\n", len(buf), len(msgs))
	for _, m := range msgs {
		fmt.Fprintln(w, m)
	}
	return len(msgs)
}

// printBank writes the decoded bank as JSON on stdout.
func printBank(path string) {
	buf := readDump(path)
	bank, err := mt32.Decode(buf, fallbackTitle(path))
	if err != nil {
		log.Fatalf("failed to decode %s: %v", path, err)
	}
	log.Printf("Decoded %q: %d custom timbres, %d slots from dump", bank.Title, len(bank.Timbres), bank.Report.Assigned)

	asJson, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal bank to JSON: %v", err)
	}
	fmt.Println(string(asJson))
}
