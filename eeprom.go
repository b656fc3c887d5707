package rt2800

import (
	"fmt"
	"log/slog"
)

// eepromWord names a 16-bit configuration field. The word offset it
// resolves to depends on the chip family: RT3593 and RT3883 use an
// extended layout, everything else the standard one.
type eepromWord uint8

const (
	eepromChipID eepromWord = iota
	eepromVersion
	eepromMACAddr0
	eepromMACAddr1
	eepromMACAddr2
	eepromNICConf0
	eepromNICConf1
	eepromNICConf2
	eepromFreq
	eepromLEDAGConf
	eepromLEDActConf
	eepromLEDPolarity
	eepromLNA
	eepromExtLNA2
	eepromRSSIBG
	eepromRSSIBG2
	eepromTXMixerGainBG
	eepromRSSIA
	eepromRSSIA2
	eepromTXMixerGainA
	eepromEIRPMaxTXPower
	eepromTXPowerDelta
	eepromTXPowerBG1
	eepromTXPowerBG2
	eepromTXPowerA1
	eepromTXPowerA2
	eepromTXPowerInit
	eepromTXPowerByRate
	eepromBBPStart
	eepromWordCount
)

// Standard word layout.
var eepromMapStd = [eepromWordCount]uint16{
	eepromChipID:         0x0000,
	eepromVersion:        0x0001,
	eepromMACAddr0:       0x0002,
	eepromMACAddr1:       0x0003,
	eepromMACAddr2:       0x0004,
	eepromNICConf0:       0x001a,
	eepromNICConf1:       0x001b,
	eepromFreq:           0x001d,
	eepromLEDAGConf:      0x001e,
	eepromLEDActConf:     0x001f,
	eepromLEDPolarity:    0x0020,
	eepromNICConf2:       0x0021,
	eepromLNA:            0x0022,
	eepromRSSIBG:         0x0023,
	eepromRSSIBG2:        0x0024,
	eepromTXMixerGainBG:  0x0024, // overlaps with RSSI_BG2
	eepromRSSIA:          0x0025,
	eepromRSSIA2:         0x0026,
	eepromTXMixerGainA:   0x0026, // overlaps with RSSI_A2
	eepromEIRPMaxTXPower: 0x0027,
	eepromTXPowerDelta:   0x0028,
	eepromTXPowerBG1:     0x0029,
	eepromTXPowerBG2:     0x0030,
	eepromTXPowerA1:      0x003c,
	eepromTXPowerA2:      0x0053,
	eepromTXPowerInit:    0x0068,
	eepromTXPowerByRate:  0x006f,
	eepromBBPStart:       0x0078,
}

// Extended layout for RT3593/RT3883.
var eepromMapExt = [eepromWordCount]uint16{
	eepromChipID:         0x0000,
	eepromVersion:        0x0001,
	eepromMACAddr0:       0x0002,
	eepromMACAddr1:       0x0003,
	eepromMACAddr2:       0x0004,
	eepromNICConf0:       0x001a,
	eepromNICConf1:       0x001b,
	eepromNICConf2:       0x001c,
	eepromEIRPMaxTXPower: 0x0020,
	eepromFreq:           0x0022,
	eepromLEDAGConf:      0x0023,
	eepromLEDActConf:     0x0024,
	eepromLEDPolarity:    0x0025,
	eepromLNA:            0x0026,
	eepromExtLNA2:        0x0027,
	eepromRSSIBG:         0x0028,
	eepromRSSIBG2:        0x0029,
	eepromRSSIA:          0x002a,
	eepromRSSIA2:         0x002b,
	eepromTXPowerBG1:     0x0030,
	eepromTXPowerBG2:     0x0037,
	eepromTXPowerA1:      0x004b,
	eepromTXPowerA2:      0x0065,
	eepromTXPowerByRate:  0x00a0,
}

// EEPROM field masks.
const (
	nicConf0RXPath uint16 = 0x000f
	nicConf0TXPath uint16 = 0x00f0
	nicConf0RFType uint16 = 0x0f00

	nicConf1HWRadio         uint16 = 0x0001
	nicConf1ExternalTXALC   uint16 = 0x0002
	nicConf1ExternalLNA2G   uint16 = 0x0004
	nicConf1ExternalLNA5G   uint16 = 0x0008
	nicConf1CardbusAccel    uint16 = 0x0010
	nicConf1BW40MSB2G       uint16 = 0x0020
	nicConf1BW40MSB5G       uint16 = 0x0040
	nicConf1WPSPBC          uint16 = 0x0080
	nicConf1BW40M2G         uint16 = 0x0100
	nicConf1BW40M5G         uint16 = 0x0200
	nicConf1BroadbandExtLNA uint16 = 0x0400
	nicConf1AntDiversity    uint16 = 0x1800
	nicConf1InternalTXALC   uint16 = 0x2000
	nicConf1BTCoexist       uint16 = 0x4000
	nicConf1DACTest         uint16 = 0x8000

	// RT3352 reuses the top bits for external PA presence.
	nicConf1ExternalTX0PA3352 uint16 = 0x4000
	nicConf1ExternalTX1PA3352 uint16 = 0x8000

	freqOffset      uint16 = 0x00ff
	freqLEDMode     uint16 = 0x7f00
	freqLEDPolarity uint16 = 0x8000

	lnaBG uint16 = 0x00ff
	lnaA0 uint16 = 0xff00

	rssiBGOffset0 uint16 = 0x00ff
	rssiBGOffset1 uint16 = 0xff00
	rssiBG2Offset2 uint16 = 0x00ff
	rssiBG2LNAA1   uint16 = 0xff00
	rssiAOffset0   uint16 = 0x00ff
	rssiAOffset1   uint16 = 0xff00
	rssiA2Offset2  uint16 = 0x00ff
	rssiA2LNAA2    uint16 = 0xff00

	extLNA2A1 uint16 = 0x00ff
	extLNA2A2 uint16 = 0xff00

	eirpMaxTXPower2GHz uint16 = 0x00ff
	eirpMaxTXPower5GHz uint16 = 0xff00

	txMixerGainVal uint16 = 0x0007
)

const (
	eirpMaxTXPowerLimit = 0x50
	ledModeTXRXActivity = 1
)

func (d *Device) eepromMap() *[eepromWordCount]uint16 {
	if d.rt == RT3593 || d.rt == RT3883 {
		return &eepromMapExt
	}
	return &eepromMapStd
}

// eepromIndex resolves a named field to its word offset. Index 0 is
// valid only for the chip-id field; any other field resolving to 0 is
// unmapped on this chipset and the access fails rather than silently
// hitting word 0.
func (d *Device) eepromIndex(word eepromWord) (uint16, error) {
	if word >= eepromWordCount {
		return 0, fmt.Errorf("%w: field %d out of range", ErrEEPROMWord, word)
	}
	index := d.eepromMap()[word]
	if word != eepromChipID && index == 0 {
		d.logerr("EEPROM field not mapped on this chipset",
			slog.Int("field", int(word)))
		return 0, fmt.Errorf("%w: field %d", ErrEEPROMWord, word)
	}
	return index, nil
}

func (d *Device) eepromRead(word eepromWord) (uint16, error) {
	index, err := d.eepromIndex(word)
	if err != nil {
		return 0, err
	}
	return d.eeprom[index], nil
}

func (d *Device) eepromWrite(word eepromWord, data uint16) error {
	index, err := d.eepromIndex(word)
	if err != nil {
		return err
	}
	d.eeprom[index] = data
	return nil
}

// eepromReadFromArray indexes into a multi-word field such as the
// per-channel TX power tables.
func (d *Device) eepromReadFromArray(array eepromWord, offset uint16) (uint16, error) {
	index, err := d.eepromIndex(array)
	if err != nil {
		return 0, err
	}
	if int(index+offset) >= len(d.eeprom) {
		return 0, fmt.Errorf("%w: array %d offset %d", ErrEEPROMWord, array, offset)
	}
	return d.eeprom[index+offset], nil
}

// eepromByte reads one byte out of the word-addressed image.
func (d *Device) eepromByte(byteOffset uint16) uint8 {
	w := d.eeprom[byteOffset/2]
	if byteOffset%2 == 1 {
		return uint8(w >> 8)
	}
	return uint8(w)
}

// readEEPROMRaw fills the in-memory image from whichever source is
// available: a pre-read image handed in at construction, a transport
// that can read EEPROM directly, or the efuse register path.
func (d *Device) readEEPROMRaw() error {
	if d.eeprom != nil {
		return nil
	}
	d.eeprom = make([]uint16, eepromWords)

	if r, ok := d.bus.(EEPROMReader); ok {
		if err := r.ReadEEPROM(d.eeprom); err != nil {
			return fmt.Errorf("EEPROM read: %w", err)
		}
		return nil
	}

	if !d.efuseDetect() {
		return fmt.Errorf("no EEPROM source: transport cannot read EEPROM and efuse not present")
	}
	d.readEEPROMEfuse()
	return nil
}

func abs8(v uint16) int {
	s := int(int8(uint8(v)))
	if s < 0 {
		return -s
	}
	return s
}

// validateEEPROM reads the raw image and repairs blank or corrupt
// fields in place. All repairs are idempotent: running validation on
// an already-valid image changes nothing.
func (d *Device) validateEEPROM() error {
	if err := d.readEEPROMRaw(); err != nil {
		return err
	}

	word, _ := d.eepromRead(eepromNICConf0)
	if word == 0xffff {
		word = 0
		setField(&word, nicConf0RXPath, 2)
		setField(&word, nicConf0TXPath, 1)
		setField(&word, nicConf0RFType, uint16(RF2820))
		d.eepromWrite(eepromNICConf0, word)
		d.debug("EEPROM antenna field repaired", slog.Uint64("word", uint64(word)))
	} else if d.rt == RT2860 || d.rt == RT2872 {
		// Max of 2 RX streams on the RT28x0 series.
		if getField(word, nicConf0RXPath) > 2 {
			setField(&word, nicConf0RXPath, 2)
		}
		d.eepromWrite(eepromNICConf0, word)
	}

	word, _ = d.eepromRead(eepromNICConf1)
	if word == 0xffff {
		d.eepromWrite(eepromNICConf1, 0)
		d.debug("EEPROM NIC config repaired")
	}

	word, _ = d.eepromRead(eepromFreq)
	if word&0x00ff == 0x00ff {
		setField(&word, freqOffset, 0)
		d.eepromWrite(eepromFreq, word)
		d.debug("EEPROM frequency offset repaired", slog.Uint64("word", uint64(word)))
	}
	if word&0xff00 == 0xff00 {
		setField(&word, freqLEDMode, ledModeTXRXActivity)
		setField(&word, freqLEDPolarity, 0)
		d.eepromWrite(eepromFreq, word)
		d.eepromWrite(eepromLEDAGConf, 0x5555)
		d.eepromWrite(eepromLEDActConf, 0x2221)
		d.eepromWrite(eepromLEDPolarity, 0xa9f8)
		d.debug("EEPROM LED mode repaired", slog.Uint64("word", uint64(word)))
	}

	// lna0 serves as the reference value for LNA backfill. The LNA
	// word itself is never validated.
	word, _ = d.eepromRead(eepromLNA)
	defaultLNAGain := getField(word, lnaA0)

	word, _ = d.eepromRead(eepromRSSIBG)
	if abs8(getField(word, rssiBGOffset0)) > 10 {
		setField(&word, rssiBGOffset0, 0)
	}
	if abs8(getField(word, rssiBGOffset1)) > 10 {
		setField(&word, rssiBGOffset1, 0)
	}
	d.eepromWrite(eepromRSSIBG, word)

	word, _ = d.eepromRead(eepromRSSIBG2)
	if abs8(getField(word, rssiBG2Offset2)) > 10 {
		setField(&word, rssiBG2Offset2, 0)
	}
	if d.rt != RT3593 && d.rt != RT3883 {
		if v := getField(word, rssiBG2LNAA1); v == 0x00 || v == 0xff {
			setField(&word, rssiBG2LNAA1, defaultLNAGain)
		}
	}
	d.eepromWrite(eepromRSSIBG2, word)

	word, _ = d.eepromRead(eepromRSSIA)
	if abs8(getField(word, rssiAOffset0)) > 10 {
		setField(&word, rssiAOffset0, 0)
	}
	if abs8(getField(word, rssiAOffset1)) > 10 {
		setField(&word, rssiAOffset1, 0)
	}
	d.eepromWrite(eepromRSSIA, word)

	word, _ = d.eepromRead(eepromRSSIA2)
	if abs8(getField(word, rssiA2Offset2)) > 10 {
		setField(&word, rssiA2Offset2, 0)
	}
	if d.rt != RT3593 && d.rt != RT3883 {
		if v := getField(word, rssiA2LNAA2); v == 0x00 || v == 0xff {
			setField(&word, rssiA2LNAA2, defaultLNAGain)
		}
	}
	d.eepromWrite(eepromRSSIA2, word)

	if d.rt == RT3593 || d.rt == RT3883 {
		word, err := d.eepromRead(eepromExtLNA2)
		if err == nil {
			if v := getField(word, extLNA2A1); v == 0x00 || v == 0xff {
				setField(&word, extLNA2A1, defaultLNAGain)
			}
			if v := getField(word, extLNA2A2); v == 0x00 || v == 0xff {
				setField(&word, extLNA2A2, defaultLNAGain)
			}
			d.eepromWrite(eepromExtLNA2, word)
		}
	}

	return nil
}

// initEEPROM derives the RF identity, antenna configuration and
// capability flags from the validated image.
func (d *Device) initEEPROM() error {
	conf0, _ := d.eepromRead(eepromNICConf0)

	// RT28xx/RT30xx keep the RF type in NIC_CONF0; newer families
	// store it in the chip-id word or imply it from the RT identity.
	var rf ChipRF
	switch {
	case d.rt == RT3290 || d.rt == RT5390 || d.rt == RT5392 || d.rt == RT6352:
		w, _ := d.eepromRead(eepromChipID)
		rf = ChipRF(w)
	case d.rt == RT3352:
		rf = RF3322
	case d.rt == RT3883:
		rf = RF3853
	case d.rt == RT5350:
		rf = RF5350
	default:
		rf = ChipRF(getField(conf0, nicConf0RFType))
	}

	if !knownRF(rf) {
		d.logerr("invalid RF chipset detected",
			slog.String("rf", fmt.Sprintf("%04x", uint16(rf))))
		return fmt.Errorf("%w: rf %04x", ErrUnsupportedChip, uint16(rf))
	}
	d.rf = rf
	d.info("found RF chipset", slog.String("rf", fmt.Sprintf("%04x", uint16(rf))))

	d.ant.txChains = uint8(getField(conf0, nicConf0TXPath))
	d.ant.rxChains = uint8(getField(conf0, nicConf0RXPath))

	conf1, _ := d.eepromRead(eepromNICConf1)

	switch d.rt {
	case RT3070, RT3090, RT3352, RT3390:
		switch getField(conf1, nicConf1AntDiversity) {
		case 0, 1, 2:
			d.ant.tx, d.ant.rx = 0, 0
		case 3:
			d.ant.tx, d.ant.rx = 0, 1
		}
	default:
		d.ant.tx, d.ant.rx = 0, 0
	}

	// These chips have hardware RX antenna diversity.
	if d.rtRevGTE(RT5390, RevRT5390R) || d.rtRevGTE(RT5390, RevRT5370G) {
		d.ant.tx = antennaHWDiversity
		d.ant.rx = antennaHWDiversity
	}

	d.caps.externalLNA5G = getField(conf1, nicConf1ExternalLNA5G) != 0
	d.caps.externalLNA2G = getField(conf1, nicConf1ExternalLNA2G) != 0
	d.caps.hwRadio = getField(conf1, nicConf1HWRadio) != 0
	d.caps.btCoexist = d.rt != RT3352 && getField(conf1, nicConf1BTCoexist) != 0

	freq, _ := d.eepromRead(eepromFreq)
	d.freqOffset = uint8(getField(freq, freqOffset))
	d.ledMCUReg = freq

	eirp, _ := d.eepromRead(eepromEIRPMaxTXPower)
	d.caps.powerLimit = getField(eirp, eirpMaxTXPower2GHz) < eirpMaxTXPowerLimit

	if d.rt == RT3352 {
		d.caps.externalPATX0 = getField(conf1, nicConf1ExternalTX0PA3352) != 0
		d.caps.externalPATX1 = getField(conf1, nicConf1ExternalTX1PA3352) != 0
	}

	// TX mixer gain trim, used when programming the RF mixer on the
	// 30xx/3572 families.
	switch d.rt {
	case RT3070, RT3071, RT3090, RT3352, RT3572:
		w, _ := d.eepromRead(eepromTXMixerGainBG)
		d.cal.txMixerGain24 = uint8(getField(w, txMixerGainVal))
	}
	if d.rt == RT3572 {
		w, _ := d.eepromRead(eepromTXMixerGainA)
		d.cal.txMixerGain5 = uint8(getField(w, txMixerGainVal))
	}

	return nil
}

func knownRF(rf ChipRF) bool {
	switch rf {
	case RF2820, RF2850, RF2720, RF2750, RF3020, RF2020, RF3021,
		RF3022, RF3052, RF3053, RF3070, RF3290, RF3320, RF3322,
		RF3853, RF5350, RF5360, RF5362, RF5370, RF5372, RF5390,
		RF5392, RF5592, RF7620:
		return true
	}
	return false
}
