// Package mipidsi drives TFT displays whose controllers implement the MIPI
// Display Command Set (DCS), such as the ST7789, GC9107, RM67162 and the
// ILI948x family.
//
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - RGB565 (16-bit) or RGB666 (18-bit) color, depending on the model
// - Panels smaller than the controller's framebuffer, with an offset
// - Rotation in 90° steps and mirroring, done by the controller
// - Hardware vertical scrolling and tearing effect output
// - Sleep mode
//
// # Hardware Connection
//
// Connect the display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// Parallel 8-bit and 16-bit buses are supported too, see the bus package.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"image/color"
//
//		"github.com/flavioheleno/mipidsi"
//		"github.com/flavioheleno/mipidsi/bus"
//		"github.com/flavioheleno/mipidsi/models"
//		"github.com/flavioheleno/mipidsi/options"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		port, _ := spireg.Open("")
//		di, _ := bus.ConnectSPI(port, gpioreg.ByName("GPIO25"), 0)
//
//		// Create device for a 135x240 ST7789 panel
//		dev, _ := mipidsi.NewBuilder[uint8](models.ST7789{}, di).
//			DisplaySize(135, 240).
//			DisplayOffset(52, 40).
//			Orientation(options.Orientation{Rotation: options.Deg90}).
//			InvertColors(options.Inverted).
//			ResetPin(gpioreg.ByName("GPIO27")).
//			Init(models.SystemDelay{})
//		defer dev.Halt()
//
//		// Fill the display
//		red := image.NewUniform(color.RGBA{R: 0xFF, A: 0xFF})
//		dev.Draw(dev.Bounds(), red, image.Point{})
//	}
//
// # Display Size and Offset
//
// Many panels only show part of the controller's framebuffer. DisplaySize
// and DisplayOffset describe the visible area in the default orientation;
// the driver moves the offset around when the display is rotated or
// mirrored. Common ST7789 panels:
//
//	DisplaySize(240, 320)                       // 2.0" and 2.4"
//	DisplaySize(240, 240)                       // 1.3" and 1.54"
//	DisplaySize(135, 240).DisplayOffset(52, 40) // 1.14"
//	DisplaySize(172, 320).DisplayOffset(34, 0)  // 1.47"
//
// # Drawing Modes
//
// Draw converts any image to the model's color format. ShowRawData writes
// pixels that are already encoded, in bus words, and skips the conversion:
//
//	// Two RGB565 pixels at (0, 0) and (1, 0)
//	dev.ShowRawData(0, 0, 1, 0, []uint8{0xF8, 0x00, 0x07, 0xE0})
//
// # Reset
//
// If a reset pin is set, Init pulls it low for the model's reset duration,
// then waits 10ms after releasing it. Without a reset pin, a software reset
// command is sent instead.
//
// # Concurrency
//
// A Display is not safe for concurrent use. Every method blocks until the
// bus transfer and any settle delay are complete.
package mipidsi
