package main

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"syx2ins/mt32"
)

const (
	// How long to wait for the first SysEx message of a dump.
	captureStartTimeout = 60 * time.Second
	// A dump is complete once the port has been quiet this long.
	captureIdleTimeout = 2 * time.Second
)

var errNoDump = errors.New("timed out waiting for SysEx dump")

// captureDump records SysEx messages arriving on inPort and returns them
// concatenated, in the layout of a .syx file.
func captureDump(inPort drivers.In, start, idle time.Duration) ([]byte, error) {
	msgCh := make(chan midi.Message, 512)
	var dropped atomic.Int64

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, _ int32) {
		if len(msg) == 0 || msg[0] != 0xF0 {
			return
		}
		select {
		case msgCh <- append(midi.Message(nil), msg...):
		default:
			dropped.Add(1)
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(4096))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for dump: %w", err)
	}

	buf, err := collectDump(msgCh, start, idle)
	stop()
	if n := dropped.Load(); n > 0 {
		log.Printf("dropped %d SysEx messages, dump is incomplete", n)
	}
	return buf, err
}

// collectDump appends messages from msgCh until none arrive for idle.
// The first message may take up to start.
func collectDump(msgCh <-chan midi.Message, start, idle time.Duration) ([]byte, error) {
	var buf []byte
	timer := time.NewTimer(start)
	defer timer.Stop()

	for {
		select {
		case msg := <-msgCh:
			if len(buf) == 0 {
				log.Println("Receiving SysEx dump")
			}
			buf = append(buf, msg...)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(idle)
		case <-timer.C:
			if len(buf) == 0 {
				return nil, errNoDump
			}
			return buf, nil
		}
	}
}

func runCapture(nameHint, syxPath, insPath string) {
	defer midi.CloseDriver()

	log.Println("Available MIDI inputs:")
	log.Print(midi.GetInPorts().String())

	in, err := findInPort(nameHint)
	if err != nil {
		log.Fatalf("could not find MT-32 MIDI in port: %v", err)
	}
	log.Printf("Listening on %s. Start the bulk dump now.", in.String())

	buf, err := captureDump(in, captureStartTimeout, captureIdleTimeout)
	if err != nil {
		log.Fatalf("capture failed: %v", err)
	}
	log.Printf("Captured %d bytes", len(buf))

	if err := mt32.ValidateFrame(buf); err != nil {
		log.Printf("warning: %v", err)
	}

	f, err := createNew(syxPath)
	if err != nil {
		log.Fatalf("failed to save dump: %v", err)
	}
	if _, err := f.Write(buf); err != nil {
		_ = f.Close()
		log.Fatalf("failed to save dump: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("failed to save dump: %v", err)
	}
	log.Printf("Wrote %s", syxPath)

	if insPath == "" {
		return
	}
	out, err := convertFile(syxPath, insPath)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	log.Printf("Wrote %s", out)
}
