package rt2800

import "log/slog"

// defaultVGC computes the baseline receiver VGC for the current band
// and chip. The LNA gain term comes from the EEPROM calibration data
// loaded at channel-switch time.
func (d *Device) defaultVGC() uint8 {
	lna := d.lnaGain
	if d.channel <= 14 {
		switch d.rt {
		case RT3070, RT3071, RT3090, RT3290, RT3390, RT3572,
			RT3593, RT5390, RT5392, RT5592, RT6352:
			return 0x1c + 2*lna
		default:
			return 0x2e + lna
		}
	}
	switch d.rt {
	case RT3593, RT3883:
		return 0x20 + (lna*5)/3
	case RT5592:
		return 0x24 + 2*lna
	default:
		if d.ht40 {
			return 0x3a + (lna*5)/3
		}
		return 0x32 + (lna*5)/3
	}
}

// writeVGC programs the VGC into BBP 66 and updates the cached level.
func (d *Device) writeVGC(vgc uint8, rssi int) {
	switch d.rt {
	case RT3572, RT3593, RT3883:
		d.bbpWriteWithRXChain(66, vgc)
	case RT5592:
		if rssi > -65 {
			d.bbpWrite(83, 0x4a)
		} else {
			d.bbpWrite(83, 0x7a)
		}
		d.bbpWriteWithRXChain(66, vgc)
	default:
		d.bbpWrite(66, vgc)
	}
	d.link.vgcLevel = vgc
	d.trace("vgc updated", slog.Uint64("vgc", uint64(vgc)), slog.Int("rssi", rssi))
}

// setVGC programs the VGC if it changed. Writes are suppressed while
// the level is stable to keep bus traffic down.
func (d *Device) setVGC(vgc uint8, rssi int) {
	if d.link.vgcLevel == vgc {
		return
	}
	d.writeVGC(vgc, rssi)
}

// resetTunerLocked writes the band default unconditionally. The BBP
// init tables park BBP 66 at a value the cached level may already
// match, so suppression must not apply here.
func (d *Device) resetTunerLocked() {
	d.link = linkState{}
	d.writeVGC(d.defaultVGC(), 0)
}

// ResetTuner restores the receiver gain to its band default. Call it
// after a channel or antenna change invalidates the tuned level. Does
// nothing while the radio is down.
func (d *Device) ResetTuner() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.enabled {
		return
	}
	d.resetTunerLocked()
}

// LinkTuner adjusts the receiver VGC for the given average RSSI in
// dBm. Strong signals get a chip-specific boost above the default to
// trade sensitivity for noise isolation.
func (d *Device) LinkTuner(rssi int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.enabled {
		return
	}

	// The first RT2860 revision has a broken AGC and must keep the
	// values programmed at channel switch.
	if d.rtRev(RT2860, RevRT2860C) {
		return
	}

	vgc := d.defaultVGC()
	switch d.rt {
	case RT3572, RT3593:
		if rssi > -65 {
			if d.channel <= 14 {
				vgc += 0x20
			} else {
				vgc += 0x10
			}
		}
	case RT3883:
		if rssi > -65 {
			vgc += 0x10
		}
	case RT5592:
		if rssi > -65 {
			vgc += 0x20
		}
	default:
		if rssi > -80 {
			vgc += 0x10
		}
	}
	d.setVGC(vgc, rssi)
}
