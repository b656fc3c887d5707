package rt2800

import (
	"fmt"
	"log/slog"
	"sync"
)

// eepromWords is the size of the configuration image in 16-bit words.
// Large enough for the extended RT3593/RT3883 layout.
const eepromWords = 0x0100

// Config carries the construction parameters for a Device.
type Config struct {
	// Logger receives structured driver logs. Nil disables logging.
	Logger *slog.Logger
	// EEPROM optionally supplies a pre-read configuration image.
	// When empty the device's own efuse/EEPROM is read during probe.
	EEPROM []uint16
}

type capabilities struct {
	externalLNA2G bool
	externalLNA5G bool
	hwRadio       bool
	btCoexist     bool
	externalPATX0 bool
	externalPATX1 bool
	powerLimit    bool
}

type antennaConfig struct {
	txChains uint8
	rxChains uint8
	// Selected antenna per path; 0 = A, 1 = B, 2 = hardware diversity.
	tx uint8
	rx uint8
}

const antennaHWDiversity = 2

// calibrationCache holds filter-tuning results computed once during
// radio bring-up and consumed by every later channel change.
type calibrationCache struct {
	// Legacy sweep results (RF bank unaware families).
	bw20 uint8
	bw40 uint8
	// Closed-loop results (RT6352).
	rxBW20 uint8
	rxBW40 uint8
	txBW20 uint8
	txBW40 uint8
	// Baseband snapshots taken during RX filter calibration.
	bbp25 uint8
	bbp26 uint8
	// Per-band TX mixer gain trim from EEPROM.
	txMixerGain24 uint8
	txMixerGain5  uint8
}

type linkState struct {
	// vgcLevel shadows the VGC last written into BBP 66. It gates
	// write suppression and is cleared across a radio cycle.
	vgcLevel uint8
}

// Device is a handle on one rt2800-family radio. All methods must be
// externally serialized per handle; the embedded mutex guards the
// exported operations against accidental overlap but indirect
// register sequencing still assumes one caller at a time.
type Device struct {
	mu  sync.Mutex
	bus Bus
	log *slog.Logger

	// Chip identity, immutable after Probe.
	rt  ChipRT
	rev uint16
	rf  ChipRF

	eeprom []uint16
	caps   capabilities
	ant    antennaConfig

	freqOffset uint8
	ledMCUReg  uint16
	lnaGain    uint8

	cal  calibrationCache
	link linkState

	enabled bool
	// Current RF channel, used by VCO recalibration.
	channel uint16
	ht40    bool
}

// New wraps a transport in an unprobed device handle.
func New(bus Bus, cfg Config) *Device {
	d := &Device{
		bus: bus,
		log: cfg.Logger,
	}
	if len(cfg.EEPROM) > 0 {
		d.eeprom = make([]uint16, eepromWords)
		copy(d.eeprom, cfg.EEPROM)
	}
	return d
}

// Probe reads and validates the chip identity, loads the EEPROM image
// and derives capabilities from it. Must succeed before any other
// operation.
func (d *Device) Probe() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.probeRT(); err != nil {
		return err
	}
	if err := d.validateEEPROM(); err != nil {
		return err
	}
	if err := d.initEEPROM(); err != nil {
		return err
	}
	d.info("probed radio",
		slog.String("rt", fmt.Sprintf("%04x", uint16(d.rt))),
		slog.String("rev", fmt.Sprintf("%04x", d.rev)),
		slog.String("rf", fmt.Sprintf("%04x", uint16(d.rf))),
		slog.String("bus", d.bus.Kind().String()))
	return nil
}

// probeRT reads the chipset identity word. PCI cards that do not
// answer on the standard CSR are retried on the RT3290 WLAN block.
func (d *Device) probeRT() error {
	reg := d.register32(regMACCSR0)
	rt := ChipRT(getField(reg, macCSR0Chipset))
	rev := uint16(getField(reg, macCSR0Revision))

	if !knownRT(rt) && d.bus.Kind() == BusPCI {
		reg = d.register32(regMACCSR03290)
		rt = ChipRT(getField(reg, macCSR0Chipset))
		rev = uint16(getField(reg, macCSR0Revision))
	}

	if !knownRT(rt) {
		d.logerr("invalid RT chipset detected",
			slog.String("rt", fmt.Sprintf("%04x", uint16(rt))),
			slog.String("rev", fmt.Sprintf("%04x", rev)))
		return fmt.Errorf("%w: rt %04x", ErrUnsupportedChip, uint16(rt))
	}

	// The RT5390 identity on SoC boards is really an MT7620.
	if rt == RT5390 && d.bus.Kind() == BusSoC {
		rt = RT6352
	}

	d.rt = rt
	d.rev = rev
	return nil
}

func knownRT(rt ChipRT) bool {
	switch rt {
	case RT2860, RT2872, RT2883, RT3070, RT3071, RT3090, RT3290,
		RT3352, RT3390, RT3572, RT3593, RT3883, RT5350, RT5390,
		RT5392, RT5592:
		return true
	}
	return false
}

func (d *Device) rtRevGTE(rt ChipRT, rev uint16) bool {
	return d.rt == rt && d.rev >= rev
}

func (d *Device) rtRev(rt ChipRT, rev uint16) bool {
	return d.rt == rt && d.rev == rev
}

func (d *Device) rtRevLT(rt ChipRT, rev uint16) bool {
	return d.rt == rt && d.rev < rev
}

// clkIs20MHz reports whether the SoC reference clock runs at 20MHz.
// The clock framework is not reachable from userspace, so assume the
// common 40MHz crystal.
func (d *Device) clkIs20MHz() bool {
	return false
}

func (d *Device) is305xSoC() bool {
	if d.bus.Kind() != BusSoC || d.rt != RT2872 {
		return false
	}
	switch d.rf {
	case RF3020, RF3021, RF3022:
		return true
	}
	d.warn("unknown RF chipset on rt305x")
	return false
}

// EnableRadio brings the radio from Disabled to Enabled. Calling it
// on an already-enabled radio fails; tear down first.
func (d *Device) EnableRadio() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.enabled {
		return ErrRadioEnabled
	}
	if err := d.enableRadio(); err != nil {
		return fmt.Errorf("radio enable: %w", err)
	}
	d.enabled = true
	d.resetTunerLocked()
	return nil
}

// DisableRadio tears the radio down. Best effort: hardware timeouts
// during teardown are logged, never returned. A radio that was never
// enabled is left untouched beyond the DMA idle check.
func (d *Device) DisableRadio() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled {
		return
	}
	d.enabled = false
	d.link = linkState{}

	d.disableWPDMA()

	// Wait for DMA, ignore error.
	if err := d.waitWPDMAReady(); err != nil {
		d.warn("DMA still busy during teardown")
	}

	reg := d.register32(regMACSysCtrl)
	setField(&reg, macSysCtrlEnableTX, 0)
	setField(&reg, macSysCtrlEnableRX, 0)
	d.writeRegister(regMACSysCtrl, reg)
}

// Enabled reports whether the radio is currently up.
func (d *Device) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

func (d *Device) disableWPDMA() {
	reg := d.register32(regWPDMAGloCfg)
	setField(&reg, wpdmaGloCfgEnableTXDMA, 0)
	setField(&reg, wpdmaGloCfgTXDMABusy, 0)
	setField(&reg, wpdmaGloCfgEnableRXDMA, 0)
	setField(&reg, wpdmaGloCfgRXDMABusy, 0)
	setField(&reg, wpdmaGloCfgTXWritebackDone, 1)
	d.writeRegister(regWPDMAGloCfg, reg)
}

// RfkillPoll reports whether the hardware kill switch is asserted.
// Devices without the switch always report false.
func (d *Device) RfkillPoll() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.caps.hwRadio {
		return false
	}
	reg := d.register32(regGPIOCtrl)
	return getField(reg, gpioCtrlVal2) != 0
}

// LinkStats is a snapshot of the receive-path error counters. The
// hardware counters clear on read.
type LinkStats struct {
	RXCRCErrors uint32
	RXPHYErrors uint32
}

// ReadLinkStats reads and clears the receive error counters.
func (d *Device) ReadLinkStats() LinkStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	reg := d.register32(regRXStaCnt0)
	return LinkStats{
		RXCRCErrors: getField(reg, rxStaCnt0CRCError),
		RXPHYErrors: getField(reg, rxStaCnt0PHYError),
	}
}

// FilterFlags selects which frame classes the hardware RX filter
// passes up. The zero value keeps the monitor-friendly defaults:
// nothing dropped for addressing reasons, control frames kept.
type FilterFlags uint

const (
	// FilterFCSFail passes frames with bad FCS.
	FilterFCSFail FilterFlags = 1 << iota
	// FilterPLCPFail passes frames with PHY errors.
	FilterPLCPFail
	// FilterAllMulti passes all multicast.
	FilterAllMulti
	// FilterControl passes control frames.
	FilterControl
	// FilterPSPoll passes PS-Poll frames.
	FilterPSPoll
)

// ConfigFilter programs the hardware receive filter. Frames not
// addressed to us and foreign-BSS frames are never dropped; this
// build exists to observe, not to associate.
func (d *Device) ConfigFilter(flags FilterFlags) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.configFilter(flags)
}

func (d *Device) configFilter(flags FilterFlags) {
	b2u := func(drop bool) uint32 {
		if drop {
			return 1
		}
		return 0
	}

	reg := d.register32(regRXFilterCfg)
	setField(&reg, rxFilterDropCRCError, b2u(flags&FilterFCSFail == 0))
	setField(&reg, rxFilterDropPHYError, b2u(flags&FilterPLCPFail == 0))
	setField(&reg, rxFilterDropNotToMe, 0)
	setField(&reg, rxFilterDropNotMyBSSD, 0)
	setField(&reg, rxFilterDropVerError, 1)
	setField(&reg, rxFilterDropMulticast, b2u(flags&FilterAllMulti == 0))
	setField(&reg, rxFilterDropBroadcast, 0)
	setField(&reg, rxFilterDropDuplicate, 0)
	setField(&reg, rxFilterDropCFEndAck, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropCFEnd, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropAck, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropCTS, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropRTS, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropPSPoll, b2u(flags&FilterPSPoll == 0))
	setField(&reg, rxFilterDropBA, 0)
	setField(&reg, rxFilterDropBAR, b2u(flags&FilterControl == 0))
	setField(&reg, rxFilterDropCntl, b2u(flags&FilterControl == 0))
	d.writeRegister(regRXFilterCfg, reg)
}

// MACAddr returns the station address read from EEPROM.
func (d *Device) MACAddr() [6]byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	var mac [6]byte
	for i := 0; i < 3; i++ {
		w, _ := d.eepromRead(eepromMACAddr0 + eepromWord(i))
		mac[2*i] = byte(w)
		mac[2*i+1] = byte(w >> 8)
	}
	return mac
}

// Identity reports the probed chip identity.
func (d *Device) Identity() (rt ChipRT, rev uint16, rf ChipRF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rt, d.rev, d.rf
}
