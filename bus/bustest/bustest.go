// Package bustest provides recording doubles for the display bus, GPIO pins
// and delays, so display sequences can be checked without hardware.
package bustest

import (
	"fmt"
	"sync"
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// EventKind tells what an Event recorded.
type EventKind int

const (
	// Command is a SendCommand call.
	Command EventKind = iota
	// Data is a SendDataSlice call.
	Data
	// Delay is a Sleep call.
	Delay
	// PinOut is a GPIO level change.
	PinOut
)

// Event is one recorded operation.
type Event struct {
	Kind        EventKind
	Instruction byte          // Command
	Args        []byte        // Command
	Words       []uint16      // Data, widened to 16 bits
	Duration    time.Duration // Delay
	Pin         string        // PinOut
	Level       gpio.Level    // PinOut
}

func (e Event) String() string {
	switch e.Kind {
	case Command:
		return fmt.Sprintf("cmd 0x%02X % X", e.Instruction, e.Args)
	case Data:
		return fmt.Sprintf("data %d words", len(e.Words))
	case Delay:
		return fmt.Sprintf("delay %s", e.Duration)
	default:
		return fmt.Sprintf("pin %s %s", e.Pin, e.Level)
	}
}

// Log is an ordered list of events shared by several doubles.
type Log struct {
	mu     sync.Mutex
	Events []Event
}

func (l *Log) add(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = append(l.Events, e)
}

// Commands returns only the Command events.
func (l *Log) Commands() []Event {
	return l.filter(Command)
}

// Delays returns only the Delay events.
func (l *Log) Delays() []Event {
	return l.filter(Delay)
}

// Instructions returns the instruction byte of every command, in order.
func (l *Log) Instructions() []byte {
	var out []byte
	for _, e := range l.Commands() {
		out = append(out, e.Instruction)
	}
	return out
}

// Reset drops all recorded events.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Events = nil
}

func (l *Log) filter(k EventKind) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Event
	for _, e := range l.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Recorder is a bus.Interface that records every call.
type Recorder[W bus.Word] struct {
	K   bus.Kind
	Log *Log

	// CommandErr, if set, is returned by every SendCommand without recording.
	CommandErr error
	// DataErr, if set, is returned by every SendDataSlice without recording.
	DataErr error
}

var _ bus.Interface[uint8] = (*Recorder[uint8])(nil)

// NewRecorder returns a Recorder of the given kind. If log is nil a new one
// is allocated.
func NewRecorder[W bus.Word](k bus.Kind, log *Log) *Recorder[W] {
	if log == nil {
		log = &Log{}
	}
	return &Recorder[W]{K: k, Log: log}
}

// Kind implements bus.Commander.
func (r *Recorder[W]) Kind() bus.Kind {
	return r.K
}

// SendCommand implements bus.Commander.
func (r *Recorder[W]) SendCommand(cmd byte, args []byte) error {
	if r.CommandErr != nil {
		return r.CommandErr
	}
	r.Log.add(Event{Kind: Command, Instruction: cmd, Args: append([]byte{}, args...)})
	return nil
}

// SendDataSlice implements bus.Interface.
func (r *Recorder[W]) SendDataSlice(data []W) error {
	if r.DataErr != nil {
		return r.DataErr
	}
	words := make([]uint16, len(data))
	for i, w := range data {
		words[i] = uint16(w)
	}
	r.Log.add(Event{Kind: Data, Words: words})
	return nil
}

// Sleeper records delays instead of sleeping.
type Sleeper struct {
	Log *Log
}

// NewSleeper returns a Sleeper writing to log, or to a new Log if nil.
func NewSleeper(log *Log) *Sleeper {
	if log == nil {
		log = &Log{}
	}
	return &Sleeper{Log: log}
}

// Sleep records d.
func (s *Sleeper) Sleep(d time.Duration) {
	s.Log.add(Event{Kind: Delay, Duration: d})
}

// Total returns the sum of all recorded delays.
func (s *Sleeper) Total() time.Duration {
	var total time.Duration
	for _, e := range s.Log.Delays() {
		total += e.Duration
	}
	return total
}

// Pin is a gpio.PinIO that records every level written to it.
type Pin struct {
	gpiotest.Pin
	Log *Log

	// Err, if set, is returned by Out without recording.
	Err error
}

// NewPin returns a named recording pin.
func NewPin(name string, log *Log) *Pin {
	if log == nil {
		log = &Log{}
	}
	return &Pin{Pin: gpiotest.Pin{N: name}, Log: log}
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	if p.Err != nil {
		return p.Err
	}
	p.Log.add(Event{Kind: PinOut, Pin: p.N, Level: l})
	return p.Pin.Out(l)
}
