package rt2800

// BusKind tells the core which of the three supported transports is
// carrying register traffic. Several init paths branch on it.
type BusKind uint8

const (
	BusUSB BusKind = iota
	BusPCI
	BusSoC
)

func (k BusKind) String() string {
	switch k {
	case BusUSB:
		return "usb"
	case BusPCI:
		return "pci"
	case BusSoC:
		return "soc"
	}
	return "unknown"
}

// Bus is the transport capability the core drives registers through.
// Implementations perform raw byte-level I/O only; all protocol logic
// (busy bits, indirect spaces, retry budgets) lives in this package.
//
// A Bus is not required to be safe for concurrent use. The core
// serializes access through the Device mutex.
type Bus interface {
	// Read32 reads a 32-bit CSR at the given byte offset.
	Read32(offset uint32) (uint32, error)
	// Write32 writes a 32-bit CSR at the given byte offset.
	Write32(offset uint32, value uint32) error
	// ReadBurst fills p from consecutive registers starting at offset.
	ReadBurst(offset uint32, p []byte) error
	// WriteBurst writes p to consecutive registers starting at offset.
	WriteBurst(offset uint32, p []byte) error
	// WriteFirmware transfers a validated firmware image into the
	// device's instruction memory. Bus-specific: USB parts take the
	// upper 4KiB half through a dedicated vendor request.
	WriteFirmware(data []byte) error
	// Kind reports the transport in use.
	Kind() BusKind
}

// EEPROMReader is an optional Bus extension for transports that can
// read the configuration EEPROM directly. Without it the core falls
// back to the efuse register path.
type EEPROMReader interface {
	// ReadEEPROM fills words with the device's configuration memory.
	ReadEEPROM(words []uint16) error
}
