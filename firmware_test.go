package rt2800

import (
	"bytes"
	"errors"
	"math/bits"
	"testing"
)

// makeFirmwareChunk builds one chunk with a valid CRC trailer.
func makeFirmwareChunk(size int, seed byte) []byte {
	chunk := make([]byte, size)
	for i := range chunk[:size-2] {
		chunk[i] = seed + byte(i)
	}
	crc := bits.ReverseBytes16(crcCCITT(^uint16(0), chunk[:size-2]))
	chunk[size-2] = byte(crc >> 8)
	chunk[size-1] = byte(crc)
	return chunk
}

func TestValidateFirmwareUSB(t *testing.T) {
	d, _ := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	image := append(makeFirmwareChunk(4096, 1), makeFirmwareChunk(4096, 2)...)
	if err := d.ValidateFirmware(image); err != nil {
		t.Fatalf("valid two-chunk image rejected: %v", err)
	}

	// USB chipsets other than the 28xx generation need a multi-image
	// file carrying one of the upper sub-images.
	if err := d.ValidateFirmware(makeFirmwareChunk(4096, 1)); !errors.Is(err, ErrFirmwareVersion) {
		t.Errorf("single-chunk image: got %v, want ErrFirmwareVersion", err)
	}

	if err := d.ValidateFirmware(image[:100]); !errors.Is(err, ErrFirmwareLength) {
		t.Errorf("truncated image: got %v, want ErrFirmwareLength", err)
	}

	corrupt := append([]byte(nil), image...)
	corrupt[4200] ^= 0xff
	if err := d.ValidateFirmware(corrupt); !errors.Is(err, ErrFirmwareCRC) {
		t.Errorf("corrupt image: got %v, want ErrFirmwareCRC", err)
	}
}

func TestValidateFirmwarePCIChunking(t *testing.T) {
	d, _ := newTestDevice(t, RT3572, 0x0223, RF3052, BusPCI)

	// PCI parts validate in 8KiB units, so a 4KiB file that would be
	// fine on USB has the wrong length here.
	if err := d.ValidateFirmware(makeFirmwareChunk(4096, 1)); !errors.Is(err, ErrFirmwareLength) {
		t.Fatalf("4KiB image on PCI: got %v, want ErrFirmwareLength", err)
	}

	if err := d.ValidateFirmware(makeFirmwareChunk(8192, 1)); err != nil {
		t.Fatalf("valid 8KiB image rejected: %v", err)
	}
}

func TestCRCRoundTrip(t *testing.T) {
	chunk := makeFirmwareChunk(4096, 7)
	if !checkFirmwareCRC(chunk) {
		t.Fatal("generated chunk fails its own CRC")
	}
	chunk[0] ^= 0x01
	if checkFirmwareCRC(chunk) {
		t.Fatal("flipped bit not detected")
	}
}

func TestLoadFirmware(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	image := append(makeFirmwareChunk(4096, 1), makeFirmwareChunk(4096, 2)...)
	if err := d.LoadFirmware(image); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !bytes.Equal(m.fw, image) {
		t.Error("image handed to the transport differs from input")
	}
}

func TestLoadFirmwarePBFTimeout(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)
	m.regs[regPBFSysCtrl] = 0

	image := append(makeFirmwareChunk(4096, 1), makeFirmwareChunk(4096, 2)...)
	if err := d.LoadFirmware(image); !errors.Is(err, ErrBusyTimeout) {
		t.Fatalf("got %v, want ErrBusyTimeout", err)
	}
}
