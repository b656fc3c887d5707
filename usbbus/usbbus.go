// Package usbbus drives rt2800 register traffic over USB control
// transfers. Every CSR access is a vendor request on endpoint zero;
// the chip exposes no memory-mapped window over USB.
package usbbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	rt2800 "github.com/wifiuserspace/rt2800up"
)

// Vendor request numbers understood by the rt2800 USB bootrom and
// firmware.
const (
	reqDeviceMode  uint8 = 1
	reqSingleWrite uint8 = 2
	reqSingleRead  uint8 = 3
	reqMultiWrite  uint8 = 6
	reqMultiRead   uint8 = 7
	reqEEPROMWrite uint8 = 8
	reqEEPROMRead  uint8 = 9
	reqLEDControl  uint8 = 10
	reqRXControl   uint8 = 12
)

// Device mode values for reqDeviceMode.
const (
	modeReset    uint16 = 1
	modeUnplug   uint16 = 2
	modeFunction uint16 = 3
	modeTest     uint16 = 4
	modeSleep    uint16 = 7
	modeFirmware uint16 = 8
	modeAutorun  uint16 = 17
)

const (
	reqTypeVendorOut = uint8(gousb.ControlOut | gousb.ControlVendor | gousb.ControlDevice)
	reqTypeVendorIn  = uint8(gousb.ControlIn | gousb.ControlVendor | gousb.ControlDevice)
)

// csrCacheSize bounds a single multi-register transfer. Larger bursts
// are split; the bootrom rejects control transfers past this size.
const csrCacheSize = 64

// firmwareImageBase is the CSR offset the instruction memory is
// mapped at during firmware mode.
const firmwareImageBase = 0x3000

// ErrNotFound is returned when no matching device is on the bus.
var ErrNotFound = errors.New("usbbus: no rt2800 device found")

// DefaultVendorID is Ralink's USB vendor ID, carried by nearly every
// retail rt2800 part regardless of the brand on the box.
const DefaultVendorID = 0x148f

// Bus is a USB transport for one rt2800 device. It owns the gousb
// handles and releases them on Close. Not safe for concurrent use;
// callers serialize.
type Bus struct {
	ctx    *gousb.Context
	dev    *gousb.Device
	config *gousb.Config
	iface  *gousb.Interface
}

var _ rt2800.Bus = (*Bus)(nil)
var _ rt2800.EEPROMReader = (*Bus)(nil)

// Open claims the first device matching vid:pid. Pass zero pid to
// accept any product under the vendor ID.
func Open(vid, pid uint16) (*Bus, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if desc.Vendor != gousb.ID(vid) {
			return false
		}
		return pid == 0 || desc.Product == gousb.ID(pid)
	})
	// OpenDevices can return both matches and an error when some
	// device on the bus is unopenable. Matches win.
	if len(devs) == 0 {
		ctx.Close()
		if err != nil {
			return nil, fmt.Errorf("usbbus: enumerate: %w", err)
		}
		return nil, ErrNotFound
	}
	for _, d := range devs[1:] {
		d.Close()
	}

	b, err := wrap(ctx, devs[0])
	if err != nil {
		devs[0].Close()
		ctx.Close()
		return nil, err
	}
	return b, nil
}

func wrap(ctx *gousb.Context, dev *gousb.Device) (*Bus, error) {
	// The kernel rt2800usb driver binds these IDs on most systems.
	dev.SetAutoDetach(true)

	config, err := dev.Config(1)
	if err != nil {
		return nil, fmt.Errorf("usbbus: set configuration: %w", err)
	}

	iface, err := config.Interface(0, 0)
	if err != nil {
		config.Close()
		return nil, fmt.Errorf("usbbus: claim interface: %w", err)
	}

	return &Bus{ctx: ctx, dev: dev, config: config, iface: iface}, nil
}

// Close releases the interface and USB handles.
func (b *Bus) Close() error {
	if b.iface != nil {
		b.iface.Close()
	}
	var errs []error
	if b.config != nil {
		errs = append(errs, b.config.Close())
	}
	if b.dev != nil {
		errs = append(errs, b.dev.Close())
	}
	if b.ctx != nil {
		errs = append(errs, b.ctx.Close())
	}
	return errors.Join(errs...)
}

// Kind reports the USB transport.
func (b *Bus) Kind() rt2800.BusKind { return rt2800.BusUSB }

// Read32 reads one CSR.
func (b *Bus) Read32(offset uint32) (uint32, error) {
	var buf [4]byte
	_, err := b.dev.Control(reqTypeVendorIn, reqMultiRead, 0, uint16(offset), buf[:])
	if err != nil {
		return 0, fmt.Errorf("usbbus: read csr %04x: %w", offset, err)
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 |
		uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// Write32 writes one CSR.
func (b *Bus) Write32(offset, value uint32) error {
	buf := [4]byte{
		byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24),
	}
	_, err := b.dev.Control(reqTypeVendorOut, reqMultiWrite, 0, uint16(offset), buf[:])
	if err != nil {
		return fmt.Errorf("usbbus: write csr %04x: %w", offset, err)
	}
	return nil
}

// ReadBurst fills p from consecutive CSRs, split into transfers the
// bootrom accepts.
func (b *Bus) ReadBurst(offset uint32, p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > csrCacheSize {
			n = csrCacheSize
		}
		_, err := b.dev.Control(reqTypeVendorIn, reqMultiRead, 0, uint16(offset), p[:n])
		if err != nil {
			return fmt.Errorf("usbbus: burst read at %04x: %w", offset, err)
		}
		offset += uint32(n)
		p = p[n:]
	}
	return nil
}

// WriteBurst writes p to consecutive CSRs.
func (b *Bus) WriteBurst(offset uint32, p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if n > csrCacheSize {
			n = csrCacheSize
		}
		_, err := b.dev.Control(reqTypeVendorOut, reqMultiWrite, 0, uint16(offset), p[:n])
		if err != nil {
			return fmt.Errorf("usbbus: burst write at %04x: %w", offset, err)
		}
		offset += uint32(n)
		p = p[n:]
	}
	return nil
}

// WriteFirmware stages the upper 4KiB of the image into instruction
// memory and switches the bootrom into firmware mode. USB parts keep
// the lower half in mask ROM, so only the tail is transferred.
func (b *Bus) WriteFirmware(data []byte) error {
	const half = 4096
	if len(data) < half {
		return fmt.Errorf("usbbus: firmware image too short: %d bytes", len(data))
	}

	if err := b.WriteBurst(firmwareImageBase, data[len(data)-half:]); err != nil {
		return fmt.Errorf("usbbus: firmware stage: %w", err)
	}

	_, err := b.dev.Control(reqTypeVendorOut, reqDeviceMode, modeFirmware, 0, nil)
	if err != nil {
		return fmt.Errorf("usbbus: enter firmware mode: %w", err)
	}

	// The MCU needs a moment to boot before the first mailbox access.
	time.Sleep(10 * time.Millisecond)
	return nil
}

// ReadEEPROM fills words straight from the configuration EEPROM via
// the dedicated vendor request, bypassing the efuse window.
func (b *Bus) ReadEEPROM(words []uint16) error {
	buf := make([]byte, 2*len(words))
	for off := 0; off < len(buf); {
		n := len(buf) - off
		if n > csrCacheSize {
			n = csrCacheSize
		}
		_, err := b.dev.Control(reqTypeVendorIn, reqEEPROMRead, 0, uint16(off), buf[off:off+n])
		if err != nil {
			return fmt.Errorf("usbbus: eeprom read at %04x: %w", off, err)
		}
		off += n
	}
	for i := range words {
		words[i] = uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
	}
	return nil
}

// Reset asks the bootrom for a device reset. The handle is unusable
// afterwards; reopen the device to continue.
func (b *Bus) Reset() error {
	_, err := b.dev.Control(reqTypeVendorOut, reqDeviceMode, modeReset, 0, nil)
	if err != nil {
		return fmt.Errorf("usbbus: reset: %w", err)
	}
	return nil
}
