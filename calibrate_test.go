package rt2800

import "testing"

// TestInitRXFilter walks the filter-capacitance search against a
// scripted passband/stopband response and checks the exact-hit
// back-off step.
func TestInitRXFilter(t *testing.T) {
	d, m := newTestDevice(t, RT3070, 0x0200, RF3020, BusUSB)

	// Passband reads 40. Stopband drop grows two counts per filter
	// step over the starting capacitance, so the 20MHz sweep lands
	// exactly on its target and must back off one step.
	m.bbpReadHook = func(reg uint32) (uint8, bool) {
		if reg != 55 {
			return 0, false
		}
		const passband = 40
		if m.bbp[24] == 0 {
			return passband, true
		}
		drop := 2 * (m.rf[24]&0x1f - 7)
		return passband - drop, true
	}

	d.rxFilterCalibration()

	if d.cal.bw20 != 18 {
		t.Errorf("bw20 filter = %#x, want 18", d.cal.bw20)
	}
	if d.cal.bw40 != 0x34 {
		t.Errorf("bw40 filter = %#x, want 0x34", d.cal.bw40)
	}
	if m.rf[22]&0x01 != 0 {
		t.Errorf("loopback still enabled after calibration: rf22=%#x", m.rf[22])
	}
	if m.bbp[24] != 0 {
		t.Errorf("test tone selector not cleared: bbp24=%#x", m.bbp[24])
	}
	if m.bbp[4]&bbp4Bandwidth != 0 {
		t.Errorf("bandwidth not restored to 20MHz: bbp4=%#x", m.bbp[4])
	}
}

// TestBWFilterCalibrationRestoresState runs the low-pass filter
// calibration with a scripted DC-offset response and verifies every
// touched register comes back to its prior value.
func TestBWFilterCalibrationRestoresState(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF7620, BusSoC)
	if d.rt != RT6352 {
		t.Fatalf("rt = %v, want RT6352", d.rt)
	}
	m.mt7620 = true

	for i, reg := range bwCalSaveRegs {
		m.rf[reg|5<<6] = 0x40 + uint8(i)
	}
	m.bbp[23] = 0x77
	m.regs[regRFControl0] = 0x1234
	m.regs[regRFBypass0] = 0x5678

	// DC-offset reads alternate full-scale then zero, so the first
	// measurement at each bandwidth already exceeds the target and
	// the search stops at filter code 0. Everything else behind the
	// BBP 159 window reports ready.
	dcocReads := 0
	m.bbpReadHook = func(reg uint32) (uint8, bool) {
		if reg != 159 {
			return 0, false
		}
		if m.bbp[158] == 0x39 {
			dcocReads++
			if dcocReads%2 == 1 {
				return 0x3a, true
			}
			return 0x00, true
		}
		return 0x02, true
	}

	d.bwFilterCalibration(true)

	if d.cal.txBW20 != 0 || d.cal.txBW40 != 0 {
		t.Errorf("tx filter codes = %#x/%#x, want 0/0", d.cal.txBW20, d.cal.txBW40)
	}
	for i, reg := range bwCalSaveRegs {
		if got, want := m.rf[reg|5<<6], 0x40+uint8(i); got != want {
			t.Errorf("bank 5 reg %d = %#x, want %#x", reg, got, want)
		}
	}
	if m.bbp[23] != 0x77 {
		t.Errorf("bbp23 = %#x, want 0x77", m.bbp[23])
	}
	if m.regs[regRFControl0] != 0x1234 {
		t.Errorf("RF_CONTROL0 = %#x, want 0x1234", m.regs[regRFControl0])
	}
	if m.regs[regRFBypass0] != 0x5678 {
		t.Errorf("RF_BYPASS0 = %#x, want 0x5678", m.regs[regRFBypass0])
	}
}
