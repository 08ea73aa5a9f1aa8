package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const (
	// Matched case-insensitively against MIDI input port names.
	portHint = "mt-32"
	portEnv  = "SYX2INS_PORT"

	// Narration is mirrored here, next to the converted files.
	logFileName = "log.txt"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  %[1]s syxfile insfile
  %[1]s convert syxfile insfile
  %[1]s capture syxfile [insfile]    (input port from $SYX2INS_PORT)
  %[1]s dump syxfile
  %[1]s json syxfile
  %[1]s mcp
`, os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "convert":
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		runConvert(os.Args[2], os.Args[3])
	case "capture":
		if len(os.Args) < 3 || len(os.Args) > 4 {
			usage()
			os.Exit(2)
		}
		insPath := ""
		if len(os.Args) == 4 {
			insPath = os.Args[3]
		}
		hint := os.Getenv(portEnv)
		if hint == "" {
			hint = portHint
		}
		runCapture(hint, os.Args[2], insPath)
	case "dump":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		dumpMessages(os.Args[2])
	case "json":
		if len(os.Args) != 3 {
			usage()
			os.Exit(2)
		}
		printBank(os.Args[2])
	case "mcp":
		runMCP()
	default:
		// syx2ins syxfile insfile
		if len(os.Args) == 3 {
			runConvert(os.Args[1], os.Args[2])
			return
		}
		log.Fatalf("unknown command %q", os.Args[1])
	}
}

func findInPort(nameFragment string) (drivers.In, error) {
	ins := midi.GetInPorts()
	if len(ins) == 0 {
		return nil, fmt.Errorf("no MIDI inputs available")
	}

	lower := strings.ToLower(nameFragment)
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), lower) {
			return in, nil
		}
	}

	return nil, fmt.Errorf("no MIDI input contains %q", nameFragment)
}
