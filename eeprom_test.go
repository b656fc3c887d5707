package rt2800

import (
	"errors"
	"testing"
)

func TestValidateEEPROMIdempotent(t *testing.T) {
	m := newMockBus(BusUSB)
	d := New(m, Config{EEPROM: testEEPROM(RF5370, 1, 1)})
	d.rt = RT5390

	if err := d.validateEEPROM(); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	first := append([]uint16(nil), d.eeprom...)

	if err := d.validateEEPROM(); err != nil {
		t.Fatalf("second validation: %v", err)
	}
	for i := range first {
		if d.eeprom[i] != first[i] {
			t.Fatalf("word %#04x changed on revalidation: %04x -> %04x",
				i, first[i], d.eeprom[i])
		}
	}
}

func TestValidateEEPROMRepairsBlankImage(t *testing.T) {
	blank := make([]uint16, eepromWords)
	for i := range blank {
		blank[i] = 0xffff
	}
	m := newMockBus(BusUSB)
	d := New(m, Config{EEPROM: blank})
	d.rt = RT2860

	if err := d.validateEEPROM(); err != nil {
		t.Fatalf("validation: %v", err)
	}

	conf0, _ := d.eepromRead(eepromNICConf0)
	if getField(conf0, nicConf0RXPath) != 2 || getField(conf0, nicConf0TXPath) != 1 {
		t.Errorf("antenna defaults not written: conf0=%04x", conf0)
	}
	if getField(conf0, nicConf0RFType) != uint16(RF2820) {
		t.Errorf("RF default not written: conf0=%04x", conf0)
	}

	freq, _ := d.eepromRead(eepromFreq)
	if getField(freq, freqOffset) != 0 {
		t.Errorf("frequency offset not cleared: %04x", freq)
	}
	if getField(freq, freqLEDMode) != ledModeTXRXActivity {
		t.Errorf("LED mode not defaulted: %04x", freq)
	}

}

func TestValidateEEPROMClampsRSSIOffsets(t *testing.T) {
	image := testEEPROM(RF5370, 1, 1)
	image[0x0023] = 0x7f14 // offsets +20 and +127, both out of range
	m := newMockBus(BusUSB)
	d := New(m, Config{EEPROM: image})
	d.rt = RT5390

	if err := d.validateEEPROM(); err != nil {
		t.Fatalf("validation: %v", err)
	}
	rssi, _ := d.eepromRead(eepromRSSIBG)
	if getField(rssi, rssiBGOffset0) != 0 || getField(rssi, rssiBGOffset1) != 0 {
		t.Errorf("out-of-range RSSI offsets kept: %04x", rssi)
	}

	// In-range offsets survive untouched.
	image2 := testEEPROM(RF5370, 1, 1)
	image2[0x0023] = 0xf605 // +5 and -10
	d2 := New(newMockBus(BusUSB), Config{EEPROM: image2})
	d2.rt = RT5390
	if err := d2.validateEEPROM(); err != nil {
		t.Fatalf("validation: %v", err)
	}
	if rssi, _ := d2.eepromRead(eepromRSSIBG); rssi != 0xf605 {
		t.Errorf("in-range RSSI offsets modified: %04x", rssi)
	}
}

func TestEEPROMUnmappedField(t *testing.T) {
	m := newMockBus(BusUSB)
	d := New(m, Config{EEPROM: testEEPROM(RF5370, 1, 1)})
	d.rt = RT5390

	// The extended-layout LNA2 word has no home in the standard map;
	// the access must fail, not silently hit word zero.
	if _, err := d.eepromRead(eepromExtLNA2); !errors.Is(err, ErrEEPROMWord) {
		t.Fatalf("got %v, want ErrEEPROMWord", err)
	}

	// Index zero stays valid for the chip-id word itself.
	if _, err := d.eepromRead(eepromChipID); err != nil {
		t.Fatalf("chip id read failed: %v", err)
	}
}

func TestEEPROMByteOrder(t *testing.T) {
	m := newMockBus(BusUSB)
	d := New(m, Config{EEPROM: testEEPROM(RF5370, 1, 1)})
	d.eeprom[0x98] = 0xbbaa

	if got := d.eepromByte(0x130); got != 0xaa {
		t.Errorf("even byte = %02x, want aa", got)
	}
	if got := d.eepromByte(0x131); got != 0xbb {
		t.Errorf("odd byte = %02x, want bb", got)
	}
}
