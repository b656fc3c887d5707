package rt2800

import "log/slog"

// rfInitCalibration pulses the calibration-trigger bit of the given
// RF register.
func (d *Device) rfInitCalibration(reg uint) {
	rfcsr := d.rfcsrRead(reg)
	rfcsr |= 0x80
	d.rfcsrWrite(reg, rfcsr)
	msleep(1)
	rfcsr &^= 0x80
	d.rfcsrWrite(reg, rfcsr)
}

// initRXFilter sweeps the RF 24 filter capacitance until the measured
// passband-to-stopband drop reaches the target. Returns the final
// RF 24 value.
func (d *Device) initRXFilter(bw40 bool, filterTarget uint8) uint8 {
	var passband, stopband uint8
	overtuned := false

	rfcsr24 := uint8(0x07)
	if bw40 {
		rfcsr24 = 0x27
	}
	d.rfcsrWrite(24, rfcsr24)

	bbp := d.bbpRead(4)
	var bw uint8
	if bw40 {
		bw = 2
	}
	setField(&bbp, bbp4Bandwidth, bw)
	d.bbpWrite(4, bbp)

	rfcsr := d.rfcsrRead(31)
	var h20m uint8
	if bw40 {
		h20m = 1
	}
	setField(&rfcsr, rfcsr31RXH20M, h20m)
	d.rfcsrWrite(31, rfcsr)

	rfcsr = d.rfcsrRead(22)
	setField(&rfcsr, rfcsr22Loopback, 1)
	d.rfcsrWrite(22, rfcsr)

	// Passband test tone.
	d.bbpWrite(24, 0)
	for i := 0; i < 100; i++ {
		d.bbpWrite(25, 0x90)
		msleep(1)
		passband = d.bbpRead(55)
		if passband != 0 {
			break
		}
	}

	// Stopband test tone. Step the filter until the drop hits the
	// target, then back off one step if the last step overshot onto
	// the target exactly.
	d.bbpWrite(24, 0x06)
	for i := 0; i < 100; i++ {
		d.bbpWrite(25, 0x90)
		msleep(1)
		stopband = d.bbpRead(55)

		if passband-stopband <= filterTarget {
			rfcsr24++
			if passband-stopband == filterTarget {
				overtuned = true
			}
		} else {
			break
		}
		d.rfcsrWrite(24, rfcsr24)
	}
	if overtuned {
		rfcsr24--
	}

	d.rfcsrWrite(24, rfcsr24)
	return rfcsr24
}

// rxFilterCalibration tunes the RX baseband filter for 20MHz and
// 40MHz operation and stores the results for channel switching.
func (d *Device) rxFilterCalibration() {
	var tgtBW20, tgtBW40 uint8
	if d.rt == RT3070 {
		tgtBW20, tgtBW40 = 0x16, 0x19
	} else {
		tgtBW20, tgtBW40 = 0x13, 0x15
	}

	d.cal.bw20 = d.initRXFilter(false, tgtBW20)
	d.cal.bw40 = d.initRXFilter(true, tgtBW40)

	// BBP 25/26 are restored at channel switch on the RF3052.
	d.cal.bbp25 = d.bbpRead(25)
	d.cal.bbp26 = d.bbpRead(26)

	d.bbpWrite(24, 0)

	rfcsr := d.rfcsrRead(22)
	setField(&rfcsr, rfcsr22Loopback, 0)
	d.rfcsrWrite(22, rfcsr)

	bbp := d.bbpRead(4)
	setField(&bbp, bbp4Bandwidth, 0)
	d.bbpWrite(4, bbp)

	d.debug("rx filter calibrated",
		slog.Uint64("bw20", uint64(d.cal.bw20)),
		slog.Uint64("bw40", uint64(d.cal.bw40)))
}

// bbpCoreSoftReset holds the baseband core in reset, optionally
// reprogramming the bandwidth while it is held.
func (d *Device) bbpCoreSoftReset(setBW, ht40 bool) {
	bbp := d.bbpRead(21)
	d.bbpWrite(21, bbp|0x1)
	usleep(100)

	if setBW {
		bbp = d.bbpRead(4)
		var bw uint8
		if ht40 {
			bw = 2
		}
		setField(&bbp, bbp4Bandwidth, bw)
		d.bbpWrite(4, bbp)
		usleep(100)
	}

	bbp = d.bbpRead(21)
	d.bbpWrite(21, bbp&^0x1)
	usleep(100)
}

// rfLPConfig puts the RF front end into loopback for filter
// calibration, routed through either the TX or RX path.
func (d *Device) rfLPConfig(txcal bool) {
	if txcal {
		d.writeRegister(regRFControl0, 0x04)
	} else {
		d.writeRegister(regRFControl0, 0x02)
	}
	d.writeRegister(regRFBypass0, 0x06)

	rf := d.rfcsrReadBank(5, 17)
	d.rfcsrWriteBank(5, 17, rf|0x80)

	if txcal {
		d.rfcsrWriteBank(5, 18, 0xc1)
		d.rfcsrWriteBank(5, 19, 0x20)
		d.rfcsrWriteBank(5, 20, 0x02)
		rf = d.rfcsrReadBank(5, 3)
		d.rfcsrWriteBank(5, 3, rf|0x3f)
		rf = d.rfcsrReadBank(5, 4)
		d.rfcsrWriteBank(5, 4, rf|0x3f)
		d.rfcsrWriteBank(5, 5, 0x31)
	} else {
		d.rfcsrWriteBank(5, 18, 0xf1)
		d.rfcsrWriteBank(5, 19, 0x18)
		d.rfcsrWriteBank(5, 20, 0x02)
		rf = d.rfcsrReadBank(5, 3)
		d.rfcsrWriteBank(5, 3, rf&^uint8(0x3f)|0x34)
		rf = d.rfcsrReadBank(5, 4)
		d.rfcsrWriteBank(5, 4, rf&^uint8(0x3f)|0x34)
	}
}

// lpTxFilterBWCal kicks one low-pass filter measurement and reads
// back the signed 7-bit result from the DC-offset table.
func (d *Device) lpTxFilterBWCal() int8 {
	d.bbpDcocWrite(0, 0x82)

	for cnt := 0; cnt < 20; cnt++ {
		usleep(500)
		if d.bbpRead(159) == 0x02 {
			break
		}
	}

	cal := int(d.bbpDcocRead(0x39) & 0x7f)
	if cal >= 0x40 {
		cal -= 128
	}
	return int8(cal)
}

// bank-5 registers touched by the bandwidth filter calibration.
var bwCalSaveRegs = []uint{
	0, 1, 3, 4, 5, 6, 7, 8, 17, 18, 19, 20,
	37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 58, 59,
}

// bwFilterCalibration runs the RT6352 TX or RX low-pass filter
// calibration at both bandwidths and records the resulting AGC filter
// codes. Every register it touches is saved first and restored after,
// including on the early-exit paths of the search.
func (d *Device) bwFilterCalibration(txcal bool) {
	saved := make(map[uint]uint8, len(bwCalSaveRegs))
	for _, reg := range bwCalSaveRegs {
		saved[reg] = d.rfcsrReadBank(5, reg)
	}
	savedBBP23 := d.bbpRead(23)
	savedDcoc0 := d.bbpDcocRead(0)
	savedDcoc2 := d.bbpDcocRead(2)
	savedRFControl0 := d.register32(regRFControl0)
	savedRFBypass0 := d.register32(regRFBypass0)

	rf := d.rfcsrReadBank(5, 0)
	d.rfcsrWriteBank(5, 0, rf|0x3)
	rf = d.rfcsrReadBank(5, 1)
	d.rfcsrWriteBank(5, 1, rf|0x1)

	for cnt := 0; cnt < 40; cnt++ {
		usleep(500)
		if d.rfcsrReadBank(5, 1)&0x1 == 0 {
			break
		}
	}

	rf = d.rfcsrReadBank(5, 0)
	d.rfcsrWriteBank(5, 0, rf&^uint8(0x3)|0x1)

	bbp := d.bbpRead(23)
	d.bbpWrite(23, bbp&^uint8(0x1f)|0x10)

	for loop := 0; loop <= 1; loop++ {
		ht40 := loop == 1

		var filterTarget uint8
		switch {
		case txcal && !ht40:
			filterTarget = 0x09
		case txcal && ht40:
			filterTarget = 0x02
		case !txcal && !ht40:
			filterTarget = 0x27
		default:
			filterTarget = 0x31
		}

		rf = d.rfcsrReadBank(5, 8)
		rf &^= 0x04
		if ht40 {
			rf |= 0x04
		}
		d.rfcsrWriteBank(5, 8, rf)

		d.bbpCoreSoftReset(true, ht40)
		d.rfLPConfig(txcal)

		if txcal {
			d.rfcsrWriteBank(5, 58, d.rfcsrReadBank(5, 58)&^uint8(0x7f))
			d.rfcsrWriteBank(5, 59, d.rfcsrReadBank(5, 59)&^uint8(0x7f))
		} else {
			d.rfcsrWriteBank(5, 6, d.rfcsrReadBank(5, 6)&^uint8(0x7f))
			d.rfcsrWriteBank(5, 7, d.rfcsrReadBank(5, 7)&^uint8(0x7f))
		}
		usleep(1000)

		d.bbpDcocWrite(2, d.bbpDcocRead(2)&^uint8(0x6))
		d.bbpCoreSoftReset(false, ht40)
		calInit := d.lpTxFilterBWCal()
		d.bbpDcocWrite(2, d.bbpDcocRead(2)|0x6)

		var agcFC uint8
		for {
			if txcal {
				d.rfcsrWriteBank(5, 58, d.rfcsrReadBank(5, 58)&^uint8(0x7f)|agcFC)
				d.rfcsrWriteBank(5, 59, d.rfcsrReadBank(5, 59)&^uint8(0x7f)|agcFC)
			} else {
				d.rfcsrWriteBank(5, 6, d.rfcsrReadBank(5, 6)&^uint8(0x7f)|agcFC)
				d.rfcsrWriteBank(5, 7, d.rfcsrReadBank(5, 7)&^uint8(0x7f)|agcFC)
			}
			usleep(500)

			d.bbpCoreSoftReset(false, ht40)
			calVal := d.lpTxFilterBWCal()
			calDiff := calInit - calVal

			if (calDiff > int8(filterTarget) && agcFC == 0) ||
				(calDiff < int8(filterTarget) && agcFC == 0x3f) {
				agcFC = 0
				break
			}
			if calDiff <= int8(filterTarget) && agcFC < 0x3f {
				agcFC++
				continue
			}
			break
		}

		switch {
		case txcal && !ht40:
			d.cal.txBW20 = agcFC
		case txcal && ht40:
			d.cal.txBW40 = agcFC
		case !txcal && !ht40:
			d.cal.rxBW20 = agcFC
		default:
			d.cal.rxBW40 = agcFC
		}
	}

	for _, reg := range bwCalSaveRegs {
		d.rfcsrWriteBank(5, reg, saved[reg])
	}
	d.bbpWrite(23, savedBBP23)
	d.bbpDcocWrite(0, savedDcoc0)
	d.bbpDcocWrite(2, savedDcoc2)

	bbp = d.bbpRead(4)
	var bw uint8
	if d.ht40 {
		bw = 2
	}
	setField(&bbp, bbp4Bandwidth, bw)
	d.bbpWrite(4, bbp)

	d.writeRegister(regRFControl0, savedRFControl0)
	d.writeRegister(regRFBypass0, savedRFBypass0)

	d.debug("bw filter calibrated", slog.Bool("tx", txcal))
}
