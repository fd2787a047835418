package models

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/flavioheleno/mipidsi/bus"
	"github.com/flavioheleno/mipidsi/bus/bustest"
	"github.com/flavioheleno/mipidsi/dcs"
	"github.com/flavioheleno/mipidsi/options"
	"github.com/flavioheleno/mipidsi/pixel"
)

// customModel overrides a few defaults.
type customModel struct {
	ST7789
	calls []string
}

func (m *customModel) Sleep(di bus.Commander, delay Delayer) error {
	m.calls = append(m.calls, "sleep")
	return nil
}

func (m *customModel) Wake(di bus.Commander, delay Delayer) error {
	m.calls = append(m.calls, "wake")
	return nil
}

func (m *customModel) UpdateAddressWindow(di bus.Commander, rotation options.Rotation, sx, sy, ex, ey uint16) error {
	m.calls = append(m.calls, "window")
	return dcs.WriteCommand(di, dcs.NewSetColumnAddress(sx+1, ex+1))
}

func TestCheckInterface(t *testing.T) {
	di := bustest.NewRecorder[uint8](bus.Parallel8Bit, nil)
	if err := CheckInterface(di, bus.Serial4Line, bus.Parallel8Bit); err != nil {
		t.Errorf("CheckInterface() error = %v, want nil", err)
	}
	if err := CheckInterface(di, bus.Serial4Line); !errors.Is(err, options.UnsupportedInterface) {
		t.Errorf("CheckInterface() error = %v, want UnsupportedInterface", err)
	}
}

func TestInitUnsupportedInterface(t *testing.T) {
	tests := []struct {
		name    string
		model   Model
		kind    bus.Kind
		wantErr bool
	}{
		{"st7789 serial", ST7789{}, bus.Serial4Line, false},
		{"st7789 parallel16", ST7789{}, bus.Parallel16Bit, false},
		{"gc9107 parallel8", GC9107{}, bus.Parallel8Bit, false},
		{"gc9107 parallel16", GC9107{}, bus.Parallel16Bit, true},
		{"rm67162 parallel16", RM67162{}, bus.Parallel16Bit, true},
		{"ili9486 serial", ILI9486{}, bus.Serial4Line, false},
		{"ili9488 rgb565 serial", ILI9488{}, bus.Serial4Line, true},
		{"ili9488 rgb565 parallel8", ILI9488{}, bus.Parallel8Bit, false},
		{"ili9488 rgb666 serial", ILI9488{Format: pixel.RGB666}, bus.Serial4Line, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			di := bustest.NewRecorder[uint8](tt.kind, nil)
			opts := options.FullSize(tt.model.FramebufferSize())
			_, err := tt.model.Init(di, bustest.NewSleeper(nil), &opts)
			if tt.wantErr {
				if !errors.Is(err, options.UnsupportedInterface) {
					t.Errorf("Init() error = %v, want UnsupportedInterface", err)
				}
				// Nothing may reach the bus.
				if n := len(di.Log.Events); n != 0 {
					t.Errorf("Init() sent %d commands before failing", n)
				}
				return
			}
			if err != nil {
				t.Errorf("Init() error = %v", err)
			}
		})
	}
}

func TestST7789Init(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint8](bus.Serial4Line, log)
	delay := bustest.NewSleeper(log)

	opts := options.WithAll(options.Size{W: 135, H: 240}, options.Offset{X: 52, Y: 40})
	opts.Orientation = options.Orientation{Rotation: options.Deg90}
	opts.InvertColors = options.Inverted

	madctl, err := ST7789{}.Init(di, delay, &opts)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if madctl != 0x60 {
		t.Errorf("Init() = 0x%02X, want 0x60", byte(madctl))
	}

	want := []byte{dcs.SLPOUT, dcs.MADCTL, dcs.INVON, dcs.COLMOD, dcs.NORON, dcs.DISPON}
	if got := log.Instructions(); !bytes.Equal(got, want) {
		t.Errorf("instructions = % X, want % X", got, want)
	}
	if got := log.Commands()[3].Args; !bytes.Equal(got, []byte{0x55}) {
		t.Errorf("COLMOD = % X, want 55", got)
	}
	if got := delay.Total(); got != 300*time.Millisecond {
		t.Errorf("total delay = %v, want 300ms", got)
	}
	// The last thing Init does is wait for DISPON to settle.
	if last := log.Events[len(log.Events)-1]; last.Kind != bustest.Delay || last.Duration != 120*time.Millisecond {
		t.Errorf("last event = %v, want delay 120ms", last)
	}
}

func TestILI948xInit(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint16](bus.Parallel16Bit, log)
	opts := options.FullSize(ILI9488{}.FramebufferSize())
	opts.ColorOrder = options.BGR

	madctl, err := ILI9488{}.Init(di, bustest.NewSleeper(log), &opts)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if madctl != 0x08 {
		t.Errorf("Init() = 0x%02X, want 0x08", byte(madctl))
	}
	want := []byte{dcs.SLPOUT, dcs.COLMOD, dcs.MADCTL, dcs.INVOFF, 0xB6, dcs.NORON, dcs.DISPON}
	if got := log.Instructions(); !bytes.Equal(got, want) {
		t.Errorf("instructions = % X, want % X", got, want)
	}
}

func TestInitPropagatesBusError(t *testing.T) {
	errBus := errors.New("bus down")
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			m, err := ByName(name)
			if err != nil {
				t.Fatal(err)
			}
			di := bustest.NewRecorder[uint8](bus.Parallel8Bit, nil)
			di.CommandErr = errBus
			opts := options.FullSize(m.FramebufferSize())
			if _, err := m.Init(di, bustest.NewSleeper(nil), &opts); !errors.Is(err, errBus) {
				t.Errorf("Init() error = %v, want %v", err, errBus)
			}
		})
	}
}

func TestUpdateOptions(t *testing.T) {
	di := bustest.NewRecorder[uint8](bus.Serial4Line, nil)
	opts := options.FullSize(ST7789{}.FramebufferSize())
	opts.Orientation = options.Orientation{Rotation: options.Deg180}

	madctl, err := UpdateOptions(ST7789{}, di, &opts)
	if err != nil {
		t.Fatalf("UpdateOptions() error = %v", err)
	}
	if madctl != 0xC0 {
		t.Errorf("UpdateOptions() = 0x%02X, want 0xC0", byte(madctl))
	}
	cmds := di.Log.Commands()
	if len(cmds) != 1 || cmds[0].Instruction != dcs.MADCTL || !bytes.Equal(cmds[0].Args, []byte{0xC0}) {
		t.Errorf("commands = %v, want [MADCTL C0]", cmds)
	}
}

func TestUpdateAddressWindow(t *testing.T) {
	di := bustest.NewRecorder[uint8](bus.Serial4Line, nil)
	if err := UpdateAddressWindow(ST7789{}, di, options.Deg0, 52, 40, 186, 279); err != nil {
		t.Fatalf("UpdateAddressWindow() error = %v", err)
	}
	cmds := di.Log.Commands()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].Instruction != dcs.CASET || !bytes.Equal(cmds[0].Args, []byte{0x00, 0x34, 0x00, 0xBA}) {
		t.Errorf("CASET = %v", cmds[0])
	}
	if cmds[1].Instruction != dcs.PASET || !bytes.Equal(cmds[1].Args, []byte{0x00, 0x28, 0x01, 0x17}) {
		t.Errorf("PASET = %v", cmds[1])
	}
}

func TestSleepWake(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint8](bus.Serial4Line, log)
	delay := bustest.NewSleeper(log)

	if err := Sleep(ST7789{}, di, delay); err != nil {
		t.Fatalf("Sleep() error = %v", err)
	}
	if err := Wake(ST7789{}, di, delay); err != nil {
		t.Fatalf("Wake() error = %v", err)
	}

	want := []string{"cmd 0x10 ", "delay 120ms", "cmd 0x11 ", "delay 120ms"}
	if len(log.Events) != len(want) {
		t.Fatalf("events = %v, want %v", log.Events, want)
	}
	for i, e := range log.Events {
		if e.String() != want[i] {
			t.Errorf("event %d = %q, want %q", i, e.String(), want[i])
		}
	}
}

func TestSleepErrorSkipsDelay(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint8](bus.Serial4Line, log)
	di.CommandErr = errors.New("bus down")

	if err := Sleep(ST7789{}, di, bustest.NewSleeper(log)); err == nil {
		t.Fatal("Sleep() should fail")
	}
	if len(log.Delays()) != 0 {
		t.Error("Sleep() waited after a failed command")
	}
}

func TestSetVerticalScrollRegion(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom uint16
		wantArgs    []byte
	}{
		{"no fixed areas", 0, 0, []byte{0x00, 0x00, 0x01, 0x40, 0x00, 0x00}},
		{"top and bottom", 20, 40, []byte{0x00, 0x14, 0x01, 0x04, 0x00, 0x28}},
		{"exactly full", 300, 20, []byte{0x01, 0x2C, 0x00, 0x00, 0x00, 0x14}},
		{"too tall", 300, 21, []byte{0x01, 0x40, 0x00, 0x00, 0x00, 0x00}},
		{"overflowing sum", 0xFFFF, 0xFFFF, []byte{0x01, 0x40, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			di := bustest.NewRecorder[uint8](bus.Serial4Line, nil)
			if err := SetVerticalScrollRegion(ST7789{}, di, tt.top, tt.bottom); err != nil {
				t.Fatalf("SetVerticalScrollRegion() error = %v", err)
			}
			cmds := di.Log.Commands()
			if len(cmds) != 1 || cmds[0].Instruction != dcs.VSCRDEF {
				t.Fatalf("commands = %v, want one VSCRDEF", cmds)
			}
			if !bytes.Equal(cmds[0].Args, tt.wantArgs) {
				t.Errorf("VSCRDEF = % X, want % X", cmds[0].Args, tt.wantArgs)
			}
		})
	}
}

func TestDefaultCommands(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint8](bus.Serial4Line, log)
	m := ST7789{}
	opts := options.FullSize(m.FramebufferSize())

	if err := SetVerticalScrollOffset(m, di, 0x0102); err != nil {
		t.Fatal(err)
	}
	if err := SetTearingEffect(m, di, options.TearingVertical, &opts); err != nil {
		t.Fatal(err)
	}
	if err := WriteMemoryStart(m, di); err != nil {
		t.Fatal(err)
	}
	if err := SoftwareReset(m, di); err != nil {
		t.Fatal(err)
	}

	want := []byte{dcs.VSCAD, dcs.TEON, dcs.RAMWR, dcs.SWRESET}
	if got := log.Instructions(); !bytes.Equal(got, want) {
		t.Errorf("instructions = % X, want % X", got, want)
	}
}

func TestOverridesReplaceDefaults(t *testing.T) {
	log := &bustest.Log{}
	di := bustest.NewRecorder[uint8](bus.Serial4Line, log)
	m := &customModel{}

	if err := Sleep(m, di, bustest.NewSleeper(log)); err != nil {
		t.Fatal(err)
	}
	if err := Wake(m, di, bustest.NewSleeper(log)); err != nil {
		t.Fatal(err)
	}
	if err := UpdateAddressWindow(m, di, options.Deg0, 0, 0, 9, 9); err != nil {
		t.Fatal(err)
	}
	// Not overridden, falls back to the default.
	if err := WriteMemoryStart(m, di); err != nil {
		t.Fatal(err)
	}

	if len(m.calls) != 3 || m.calls[0] != "sleep" || m.calls[1] != "wake" || m.calls[2] != "window" {
		t.Errorf("calls = %v", m.calls)
	}
	want := []byte{dcs.CASET, dcs.RAMWR}
	if got := log.Instructions(); !bytes.Equal(got, want) {
		t.Errorf("instructions = % X, want % X", got, want)
	}
	if len(log.Delays()) != 0 {
		t.Error("overridden Sleep/Wake still waited")
	}
}

func TestByName(t *testing.T) {
	m, err := ByName("ST7789")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if _, ok := m.(ST7789); !ok {
		t.Errorf("ByName(ST7789) = %T", m)
	}
	if _, err := ByName("st7735"); err == nil {
		t.Error("ByName(st7735) should fail")
	}
	if n := len(Names()); n != 7 {
		t.Errorf("len(Names()) = %d, want 7", n)
	}
}
