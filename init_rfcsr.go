package rt2800

// normalModeSetup3xxx leaves the calibration loopback paths and moves
// the synthesizer into its operating configuration.
func (d *Device) normalModeSetup3xxx() {
	rfcsr := d.rfcsrRead(17)

	setField(&rfcsr, rfcsr17TXLO1En, 0)
	if d.rt == RT3070 ||
		d.rtRevLT(RT3071, RevRT3071E) ||
		d.rtRevLT(RT3090, RevRT3090E) ||
		d.rtRevLT(RT3390, RevRT3390E) {
		if !d.caps.externalLNA2G {
			setField(&rfcsr, rfcsr17R, 1)
		}
	}

	minGain := uint8(2)
	if d.rt == RT3070 {
		minGain = 1
	}
	if d.cal.txMixerGain24 >= minGain {
		setField(&rfcsr, rfcsr17TXMixer, d.cal.txMixerGain24)
	}

	d.rfcsrWrite(17, rfcsr)

	if d.rt == RT3090 {
		// Turn off the unused DAC1 and ADC1 to save power.
		bbp := d.bbpRead(138)
		word, _ := d.eepromRead(eepromNICConf0)
		if getField(word, nicConf0RXPath) == 1 {
			bbp &^= bbp138RXADC1
		}
		if getField(word, nicConf0TXPath) == 1 {
			bbp |= bbp138TXDAC1
		}
		d.bbpWrite(138, bbp)
	}

	if d.rt == RT3070 {
		rfcsr = d.rfcsrRead(27)
		if d.rtRevLT(RT3070, RevRT3070F) {
			setField(&rfcsr, rfcsr27R1, 3)
		} else {
			setField(&rfcsr, rfcsr27R1, 0)
		}
		setField(&rfcsr, rfcsr27R2, 0)
		setField(&rfcsr, rfcsr27R3, 0)
		setField(&rfcsr, rfcsr27R4, 0)
		d.rfcsrWrite(27, rfcsr)
	} else if d.rt == RT3071 || d.rt == RT3090 || d.rt == RT3390 {
		rfcsr = d.rfcsrRead(1)
		setField(&rfcsr, rfcsr1RFBlockEn, 1)
		setField(&rfcsr, rfcsr1RX0PD, 0)
		setField(&rfcsr, rfcsr1TX0PD, 0)
		setField(&rfcsr, rfcsr1RX1PD, 1)
		setField(&rfcsr, rfcsr1TX1PD, 1)
		d.rfcsrWrite(1, rfcsr)

		rfcsr = d.rfcsrRead(15)
		setField(&rfcsr, rfcsr15TXLO2En, 0)
		d.rfcsrWrite(15, rfcsr)

		rfcsr = d.rfcsrRead(20)
		setField(&rfcsr, rfcsr20RXLO1En, 0)
		d.rfcsrWrite(20, rfcsr)

		rfcsr = d.rfcsrRead(21)
		setField(&rfcsr, rfcsr21RXLO2En, 0)
		d.rfcsrWrite(21, rfcsr)
	}
}

func (d *Device) normalModeSetup3593() {
	rfcsr := d.rfcsrRead(50)
	setField(&rfcsr, rfcsr50TXLO2En, 0)
	d.rfcsrWrite(50, rfcsr)

	rfcsr = d.rfcsrRead(51)
	txGain := getField(d.cal.txMixerGain24, rfcsr17TXMixer)
	setField(&rfcsr, rfcsr51Bits24, txGain)
	d.rfcsrWrite(51, rfcsr)

	rfcsr = d.rfcsrRead(38)
	setField(&rfcsr, rfcsr38RXLO1En, 0)
	d.rfcsrWrite(38, rfcsr)

	rfcsr = d.rfcsrRead(39)
	setField(&rfcsr, rfcsr39RXLO2En, 0)
	d.rfcsrWrite(39, rfcsr)

	rfcsr = d.rfcsrRead(1)
	setField(&rfcsr, rfcsr1RFBlockEn, 1)
	setField(&rfcsr, rfcsr1PLLPD, 1)
	d.rfcsrWrite(1, rfcsr)

	rfcsr = d.rfcsrRead(30)
	setField(&rfcsr, rfcsr30RXVCM, 2)
	d.rfcsrWrite(30, rfcsr)
}

func (d *Device) normalModeSetup5xxx() {
	// Turn off the unused DAC1 and ADC1 to save power.
	bbp := d.bbpRead(138)
	word, _ := d.eepromRead(eepromNICConf0)
	if getField(word, nicConf0RXPath) == 1 {
		bbp &^= bbp138RXADC1
	}
	if getField(word, nicConf0TXPath) == 1 {
		bbp |= bbp138TXDAC1
	}
	d.bbpWrite(138, bbp)

	rfcsr := d.rfcsrRead(38)
	setField(&rfcsr, rfcsr38RXLO1En, 0)
	d.rfcsrWrite(38, rfcsr)

	rfcsr = d.rfcsrRead(39)
	setField(&rfcsr, rfcsr39RXLO2En, 0)
	d.rfcsrWrite(39, rfcsr)

	d.bbp4MACIfCtrl()

	rfcsr = d.rfcsrRead(30)
	setField(&rfcsr, rfcsr30RXVCM, 2)
	d.rfcsrWrite(30, rfcsr)
}

func (d *Device) initRFCSR305xSoC() {
	d.rfInitCalibration(30)

	d.rfcsrWrite(0, 0x50)
	d.rfcsrWrite(1, 0x01)
	d.rfcsrWrite(2, 0xf7)
	d.rfcsrWrite(3, 0x75)
	d.rfcsrWrite(4, 0x40)
	d.rfcsrWrite(5, 0x03)
	d.rfcsrWrite(6, 0x02)
	d.rfcsrWrite(7, 0x50)
	d.rfcsrWrite(8, 0x39)
	d.rfcsrWrite(9, 0x0f)
	d.rfcsrWrite(10, 0x60)
	d.rfcsrWrite(11, 0x21)
	d.rfcsrWrite(12, 0x75)
	d.rfcsrWrite(13, 0x75)
	d.rfcsrWrite(14, 0x90)
	d.rfcsrWrite(15, 0x58)
	d.rfcsrWrite(16, 0xb3)
	d.rfcsrWrite(17, 0x92)
	d.rfcsrWrite(18, 0x2c)
	d.rfcsrWrite(19, 0x02)
	d.rfcsrWrite(20, 0xba)
	d.rfcsrWrite(21, 0xdb)
	d.rfcsrWrite(22, 0x00)
	d.rfcsrWrite(23, 0x31)
	d.rfcsrWrite(24, 0x08)
	d.rfcsrWrite(25, 0x01)
	d.rfcsrWrite(26, 0x25)
	d.rfcsrWrite(27, 0x23)
	d.rfcsrWrite(28, 0x13)
	d.rfcsrWrite(29, 0x83)
	d.rfcsrWrite(30, 0x00)
	d.rfcsrWrite(31, 0x00)
}

func (d *Device) initRFCSR30xx() {
	// The vendor driver only calibrates the 3070 here.
	d.rfInitCalibration(30)

	d.rfcsrWrite(4, 0x40)
	d.rfcsrWrite(5, 0x03)
	d.rfcsrWrite(6, 0x02)
	d.rfcsrWrite(7, 0x60)
	d.rfcsrWrite(9, 0x0f)
	d.rfcsrWrite(10, 0x41)
	d.rfcsrWrite(11, 0x21)
	d.rfcsrWrite(12, 0x7b)
	d.rfcsrWrite(14, 0x90)
	d.rfcsrWrite(15, 0x58)
	d.rfcsrWrite(16, 0xb3)
	d.rfcsrWrite(17, 0x92)
	d.rfcsrWrite(18, 0x2c)
	d.rfcsrWrite(19, 0x02)
	d.rfcsrWrite(20, 0xba)
	d.rfcsrWrite(21, 0xdb)
	d.rfcsrWrite(24, 0x16)
	d.rfcsrWrite(25, 0x03)
	d.rfcsrWrite(29, 0x1f)

	if d.rtRevLT(RT3070, RevRT3070F) {
		reg := d.register32(regLDOCfg0)
		setField(&reg, ldoCfg0BGSel, 1)
		setField(&reg, ldoCfg0CoreVLevel, 3)
		d.writeRegister(regLDOCfg0, reg)
	} else if d.rt == RT3071 || d.rt == RT3090 {
		d.rfcsrWrite(31, 0x14)

		rfcsr := d.rfcsrRead(6)
		setField(&rfcsr, rfcsr6R2, 1)
		d.rfcsrWrite(6, rfcsr)

		reg := d.register32(regLDOCfg0)
		setField(&reg, ldoCfg0BGSel, 1)
		if d.rtRevLT(RT3071, RevRT3071E) ||
			d.rtRevLT(RT3090, RevRT3090E) {
			word, _ := d.eepromRead(eepromNICConf1)
			if getField(word, nicConf1DACTest) != 0 {
				setField(&reg, ldoCfg0CoreVLevel, 3)
			} else {
				setField(&reg, ldoCfg0CoreVLevel, 0)
			}
		}
		d.writeRegister(regLDOCfg0, reg)

		reg = d.register32(regGPIOSwitch)
		setField(&reg, gpioSwitch5, 0)
		d.writeRegister(regGPIOSwitch, reg)
	}

	d.rxFilterCalibration()

	if d.rtRevLT(RT3070, RevRT3070F) ||
		d.rtRevLT(RT3071, RevRT3071E) ||
		d.rtRevLT(RT3090, RevRT3090E) {
		d.rfcsrWrite(27, 0x03)
	}

	d.ledOpenDrainEnable()
	d.normalModeSetup3xxx()
}

func (d *Device) initRFCSR3290() {
	d.rfInitCalibration(2)

	d.rfcsrWrite(1, 0x0f)
	d.rfcsrWrite(2, 0x80)
	d.rfcsrWrite(3, 0x08)
	d.rfcsrWrite(4, 0x00)
	d.rfcsrWrite(6, 0xa0)
	d.rfcsrWrite(8, 0xf3)
	d.rfcsrWrite(9, 0x02)
	d.rfcsrWrite(10, 0x53)
	d.rfcsrWrite(11, 0x4a)
	d.rfcsrWrite(12, 0x46)
	d.rfcsrWrite(13, 0x9f)
	d.rfcsrWrite(18, 0x02)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(25, 0x83)
	d.rfcsrWrite(26, 0x82)
	d.rfcsrWrite(27, 0x09)
	d.rfcsrWrite(29, 0x10)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x80)
	d.rfcsrWrite(33, 0x00)
	d.rfcsrWrite(34, 0x05)
	d.rfcsrWrite(35, 0x12)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(38, 0x85)
	d.rfcsrWrite(39, 0x1b)
	d.rfcsrWrite(40, 0x0b)
	d.rfcsrWrite(41, 0xbb)
	d.rfcsrWrite(42, 0xd5)
	d.rfcsrWrite(43, 0x7b)
	d.rfcsrWrite(44, 0x0e)
	d.rfcsrWrite(45, 0xa2)
	d.rfcsrWrite(46, 0x73)
	d.rfcsrWrite(47, 0x00)
	d.rfcsrWrite(48, 0x10)
	d.rfcsrWrite(49, 0x98)
	d.rfcsrWrite(52, 0x38)
	d.rfcsrWrite(53, 0x00)
	d.rfcsrWrite(54, 0x78)
	d.rfcsrWrite(55, 0x43)
	d.rfcsrWrite(56, 0x02)
	d.rfcsrWrite(57, 0x80)
	d.rfcsrWrite(58, 0x7f)
	d.rfcsrWrite(59, 0x09)
	d.rfcsrWrite(60, 0x45)
	d.rfcsrWrite(61, 0xc1)

	rfcsr := d.rfcsrRead(29)
	setField(&rfcsr, rfcsr29RSSIGain, 3)
	d.rfcsrWrite(29, rfcsr)

	d.ledOpenDrainEnable()
	d.normalModeSetup3xxx()
}

func (d *Device) initRFCSR3352() {
	tx0ExtPA := d.caps.externalPATX0
	tx1ExtPA := d.caps.externalPATX1

	d.rfInitCalibration(30)

	d.rfcsrWrite(0, 0xf0)
	d.rfcsrWrite(1, 0x23)
	d.rfcsrWrite(2, 0x50)
	d.rfcsrWrite(3, 0x18)
	d.rfcsrWrite(4, 0x00)
	d.rfcsrWrite(5, 0x00)
	d.rfcsrWrite(6, 0x33)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(8, 0xf1)
	d.rfcsrWrite(9, 0x02)
	d.rfcsrWrite(10, 0xd2)
	d.rfcsrWrite(11, 0x42)
	d.rfcsrWrite(12, 0x1c)
	d.rfcsrWrite(13, 0x00)
	d.rfcsrWrite(14, 0x5a)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0x01)
	d.rfcsrWrite(18, 0x45)
	d.rfcsrWrite(19, 0x02)
	d.rfcsrWrite(20, 0x00)
	d.rfcsrWrite(21, 0x00)
	d.rfcsrWrite(22, 0x00)
	d.rfcsrWrite(23, 0x00)
	d.rfcsrWrite(24, 0x00)
	d.rfcsrWrite(25, 0x80)
	d.rfcsrWrite(26, 0x00)
	d.rfcsrWrite(27, 0x03)
	d.rfcsrWrite(28, 0x03)
	d.rfcsrWrite(29, 0x00)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x80)
	d.rfcsrWrite(33, 0x00)

	rfcsr := uint8(0x01)
	if tx0ExtPA {
		setField(&rfcsr, rfcsr34TX0ExtPA, 1)
	}
	if tx1ExtPA {
		setField(&rfcsr, rfcsr34TX1ExtPA, 1)
	}
	d.rfcsrWrite(34, rfcsr)

	d.rfcsrWrite(35, 0x03)
	d.rfcsrWrite(36, 0xbd)
	d.rfcsrWrite(37, 0x3c)
	d.rfcsrWrite(38, 0x5f)
	d.rfcsrWrite(39, 0xc5)
	d.rfcsrWrite(40, 0x33)

	rfcsr = 0x52
	if !tx0ExtPA {
		setField(&rfcsr, rfcsr41Bit1, 1)
		setField(&rfcsr, rfcsr41Bit4, 1)
	}
	d.rfcsrWrite(41, rfcsr)

	rfcsr = 0x52
	if !tx1ExtPA {
		setField(&rfcsr, rfcsr42Bit1, 1)
		setField(&rfcsr, rfcsr42Bit4, 1)
	}
	d.rfcsrWrite(42, rfcsr)

	d.rfcsrWrite(43, 0xdb)
	d.rfcsrWrite(44, 0xdb)
	d.rfcsrWrite(45, 0xdb)
	d.rfcsrWrite(46, 0xdd)
	d.rfcsrWrite(47, 0x0d)
	d.rfcsrWrite(48, 0x14)
	d.rfcsrWrite(49, 0x00)

	rfcsr = 0x2d
	if tx0ExtPA {
		setField(&rfcsr, rfcsr50TX0ExtPA, 1)
	}
	if tx1ExtPA {
		setField(&rfcsr, rfcsr50TX1ExtPA, 1)
	}
	d.rfcsrWrite(50, rfcsr)

	pick := func(ext bool, a, b uint8) uint8 {
		if ext {
			return a
		}
		return b
	}
	d.rfcsrWrite(51, pick(tx0ExtPA, 0x52, 0x7f))
	d.rfcsrWrite(52, pick(tx0ExtPA, 0xc0, 0x00))
	d.rfcsrWrite(53, pick(tx0ExtPA, 0xd2, 0x52))
	d.rfcsrWrite(54, pick(tx0ExtPA, 0xc0, 0x1b))
	d.rfcsrWrite(55, pick(tx1ExtPA, 0x52, 0x7f))
	d.rfcsrWrite(56, pick(tx1ExtPA, 0xc0, 0x00))
	d.rfcsrWrite(57, pick(tx0ExtPA, 0x49, 0x52))
	d.rfcsrWrite(58, pick(tx1ExtPA, 0xc0, 0x1b))
	d.rfcsrWrite(59, 0x00)
	d.rfcsrWrite(60, 0x00)
	d.rfcsrWrite(61, 0x00)
	d.rfcsrWrite(62, 0x00)
	d.rfcsrWrite(63, 0x00)

	d.rxFilterCalibration()
	d.ledOpenDrainEnable()
	d.normalModeSetup3xxx()
}

func (d *Device) initRFCSR3390() {
	d.rfInitCalibration(30)

	d.rfcsrWrite(0, 0xa0)
	d.rfcsrWrite(1, 0xe1)
	d.rfcsrWrite(2, 0xf1)
	d.rfcsrWrite(3, 0x62)
	d.rfcsrWrite(4, 0x40)
	d.rfcsrWrite(5, 0x8b)
	d.rfcsrWrite(6, 0x42)
	d.rfcsrWrite(7, 0x34)
	d.rfcsrWrite(8, 0x00)
	d.rfcsrWrite(9, 0xc0)
	d.rfcsrWrite(10, 0x61)
	d.rfcsrWrite(11, 0x21)
	d.rfcsrWrite(12, 0x3b)
	d.rfcsrWrite(13, 0xe0)
	d.rfcsrWrite(14, 0x90)
	d.rfcsrWrite(15, 0x53)
	d.rfcsrWrite(16, 0xe0)
	d.rfcsrWrite(17, 0x94)
	d.rfcsrWrite(18, 0x5c)
	d.rfcsrWrite(19, 0x4a)
	d.rfcsrWrite(20, 0xb2)
	d.rfcsrWrite(21, 0xf6)
	d.rfcsrWrite(22, 0x00)
	d.rfcsrWrite(23, 0x14)
	d.rfcsrWrite(24, 0x08)
	d.rfcsrWrite(25, 0x3d)
	d.rfcsrWrite(26, 0x85)
	d.rfcsrWrite(27, 0x00)
	d.rfcsrWrite(28, 0x41)
	d.rfcsrWrite(29, 0x8f)
	d.rfcsrWrite(30, 0x20)
	d.rfcsrWrite(31, 0x0f)

	reg := d.register32(regGPIOSwitch)
	setField(&reg, gpioSwitch5, 0)
	d.writeRegister(regGPIOSwitch, reg)

	d.rxFilterCalibration()

	if d.rtRevLT(RT3390, RevRT3390E) {
		d.rfcsrWrite(27, 0x03)
	}

	d.ledOpenDrainEnable()
	d.normalModeSetup3xxx()
}

func (d *Device) initRFCSR3572() {
	d.rfInitCalibration(30)

	d.rfcsrWrite(0, 0x70)
	d.rfcsrWrite(1, 0x81)
	d.rfcsrWrite(2, 0xf1)
	d.rfcsrWrite(3, 0x02)
	d.rfcsrWrite(4, 0x4c)
	d.rfcsrWrite(5, 0x05)
	d.rfcsrWrite(6, 0x4a)
	d.rfcsrWrite(7, 0xd8)
	d.rfcsrWrite(9, 0xc3)
	d.rfcsrWrite(10, 0xf1)
	d.rfcsrWrite(11, 0xb9)
	d.rfcsrWrite(12, 0x70)
	d.rfcsrWrite(13, 0x65)
	d.rfcsrWrite(14, 0xa0)
	d.rfcsrWrite(15, 0x53)
	d.rfcsrWrite(16, 0x4c)
	d.rfcsrWrite(17, 0x23)
	d.rfcsrWrite(18, 0xac)
	d.rfcsrWrite(19, 0x93)
	d.rfcsrWrite(20, 0xb3)
	d.rfcsrWrite(21, 0xd0)
	d.rfcsrWrite(22, 0x00)
	d.rfcsrWrite(23, 0x3c)
	d.rfcsrWrite(24, 0x16)
	d.rfcsrWrite(25, 0x15)
	d.rfcsrWrite(26, 0x85)
	d.rfcsrWrite(27, 0x00)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x9b)
	d.rfcsrWrite(30, 0x09)
	d.rfcsrWrite(31, 0x10)

	rfcsr := d.rfcsrRead(6)
	setField(&rfcsr, rfcsr6R2, 1)
	d.rfcsrWrite(6, rfcsr)

	reg := d.register32(regLDOCfg0)
	setField(&reg, ldoCfg0CoreVLevel, 3)
	setField(&reg, ldoCfg0BGSel, 1)
	d.writeRegister(regLDOCfg0, reg)
	msleep(1)
	reg = d.register32(regLDOCfg0)
	setField(&reg, ldoCfg0CoreVLevel, 0)
	setField(&reg, ldoCfg0BGSel, 1)
	d.writeRegister(regLDOCfg0, reg)

	d.rxFilterCalibration()
	d.ledOpenDrainEnable()
	d.normalModeSetup3xxx()
}

func (d *Device) rt3593PostBBPInit() {
	const txbfEnabled = false

	bbp := d.bbpRead(105)
	if d.ant.rxChains == 1 {
		bbp &^= bbp105MLDFor2St
	} else {
		bbp |= bbp105MLDFor2St
	}
	d.bbpWrite(105, bbp)

	d.bbp4MACIfCtrl()

	d.bbpWrite(92, 0x02)
	d.bbpWrite(82, 0x82)
	d.bbpWrite(106, 0x05)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(88, 0x90)
	d.bbpWrite(148, 0xc8)
	d.bbpWrite(47, 0x48)
	d.bbpWrite(120, 0x50)

	if txbfEnabled {
		d.bbpWrite(163, 0xbd)
	} else {
		d.bbpWrite(163, 0x9d)
	}

	// SNR mapping.
	d.bbpWrite(142, 6)
	d.bbpWrite(143, 160)
	d.bbpWrite(142, 7)
	d.bbpWrite(143, 161)
	d.bbpWrite(142, 8)
	d.bbpWrite(143, 162)

	// ADC/DAC control.
	d.bbpWrite(31, 0x08)

	// RX AGC energy lower bound in log2.
	d.bbpWrite(68, 0x0b)

	d.bbpWrite(105, 0x04)
}

func (d *Device) initRFCSR3593() {
	// Disable GPIO #4 and #7 function for LAN PE control.
	reg := d.register32(regGPIOSwitch)
	setField(&reg, gpioSwitch4, 0)
	setField(&reg, gpioSwitch7, 0)
	d.writeRegister(regGPIOSwitch, reg)

	d.rfcsrWrite(1, 0x03)
	d.rfcsrWrite(3, 0x80)
	d.rfcsrWrite(5, 0x00)
	d.rfcsrWrite(6, 0x40)
	d.rfcsrWrite(8, 0xf1)
	d.rfcsrWrite(9, 0x02)
	d.rfcsrWrite(10, 0xd3)
	d.rfcsrWrite(11, 0x40)
	d.rfcsrWrite(12, 0x4e)
	d.rfcsrWrite(13, 0x12)
	d.rfcsrWrite(18, 0x40)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x78)
	d.rfcsrWrite(33, 0x3b)
	d.rfcsrWrite(34, 0x3c)
	d.rfcsrWrite(35, 0xe0)
	d.rfcsrWrite(38, 0x86)
	d.rfcsrWrite(39, 0x23)
	d.rfcsrWrite(44, 0xd3)
	d.rfcsrWrite(45, 0xbb)
	d.rfcsrWrite(46, 0x60)
	d.rfcsrWrite(49, 0x8e)
	d.rfcsrWrite(50, 0x86)
	d.rfcsrWrite(51, 0x75)
	d.rfcsrWrite(52, 0x45)
	d.rfcsrWrite(53, 0x18)
	d.rfcsrWrite(54, 0x18)
	d.rfcsrWrite(55, 0x18)
	d.rfcsrWrite(56, 0xdb)
	d.rfcsrWrite(57, 0x6e)

	// Initiate calibration.
	rfcsr := d.rfcsrRead(2)
	setField(&rfcsr, rfcsr2RescalEn, 1)
	d.rfcsrWrite(2, rfcsr)

	d.freqCalMode1()

	rfcsr = d.rfcsrRead(18)
	setField(&rfcsr, rfcsr18XOTuneBP, 1)
	d.rfcsrWrite(18, rfcsr)

	reg = d.register32(regLDOCfg0)
	setField(&reg, ldoCfg0CoreVLevel, 3)
	setField(&reg, ldoCfg0BGSel, 1)
	d.writeRegister(regLDOCfg0, reg)
	msleep(1)
	reg = d.register32(regLDOCfg0)
	setField(&reg, ldoCfg0CoreVLevel, 0)
	d.writeRegister(regLDOCfg0, reg)

	// The RX filter is not calibrated on this chip. Use fixed values.
	d.cal.bw20 = 0x1f
	d.cal.bw40 = 0x2f

	// Save BBP 25 and 26 for channel switching.
	d.cal.bbp25 = d.bbpRead(25)
	d.cal.bbp26 = d.bbpRead(26)

	d.ledOpenDrainEnable()
	d.normalModeSetup3593()

	d.rt3593PostBBPInit()
}

func (d *Device) initRFCSR5350() {
	d.rfcsrWrite(0, 0xf0)
	d.rfcsrWrite(1, 0x23)
	d.rfcsrWrite(2, 0x50)
	d.rfcsrWrite(3, 0x08)
	d.rfcsrWrite(4, 0x49)
	d.rfcsrWrite(5, 0x10)
	d.rfcsrWrite(6, 0xe0)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(8, 0xf1)
	d.rfcsrWrite(9, 0x02)
	d.rfcsrWrite(10, 0x53)
	d.rfcsrWrite(11, 0x4a)
	d.rfcsrWrite(12, 0x46)
	if d.clkIs20MHz() {
		d.rfcsrWrite(13, 0x1f)
	} else {
		d.rfcsrWrite(13, 0x9f)
	}
	d.rfcsrWrite(14, 0x00)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0xc0)
	d.rfcsrWrite(18, 0x03)
	d.rfcsrWrite(19, 0x00)
	d.rfcsrWrite(20, 0x00)
	d.rfcsrWrite(21, 0x00)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(23, 0x00)
	d.rfcsrWrite(24, 0x00)
	d.rfcsrWrite(25, 0x80)
	d.rfcsrWrite(26, 0x00)
	d.rfcsrWrite(27, 0x03)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0xd0)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x80)
	d.rfcsrWrite(33, 0x00)
	d.rfcsrWrite(34, 0x07)
	d.rfcsrWrite(35, 0x12)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(37, 0x08)
	d.rfcsrWrite(38, 0x85)
	d.rfcsrWrite(39, 0x1b)
	d.rfcsrWrite(40, 0x0b)
	d.rfcsrWrite(41, 0xbb)
	d.rfcsrWrite(42, 0xd5)
	d.rfcsrWrite(43, 0x9b)
	d.rfcsrWrite(44, 0x0c)
	d.rfcsrWrite(45, 0xa6)
	d.rfcsrWrite(46, 0x73)
	d.rfcsrWrite(47, 0x00)
	d.rfcsrWrite(48, 0x10)
	d.rfcsrWrite(49, 0x80)
	d.rfcsrWrite(50, 0x00)
	d.rfcsrWrite(51, 0x00)
	d.rfcsrWrite(52, 0x38)
	d.rfcsrWrite(53, 0x00)
	d.rfcsrWrite(54, 0x38)
	d.rfcsrWrite(55, 0x43)
	d.rfcsrWrite(56, 0x82)
	d.rfcsrWrite(57, 0x00)
	d.rfcsrWrite(58, 0x39)
	d.rfcsrWrite(59, 0x0b)
	d.rfcsrWrite(60, 0x45)
	d.rfcsrWrite(61, 0xd1)
	d.rfcsrWrite(62, 0x00)
	d.rfcsrWrite(63, 0x00)
}

func (d *Device) initRFCSR3883() {
	// The ECO value should come from the SoC. All known boards use 5.
	const eco = 5

	d.rfInitCalibration(2)

	d.rfcsrWrite(0, 0xe0)
	d.rfcsrWrite(1, 0x03)
	d.rfcsrWrite(2, 0x50)
	d.rfcsrWrite(3, 0x20)
	d.rfcsrWrite(4, 0x00)
	d.rfcsrWrite(5, 0x00)
	d.rfcsrWrite(6, 0x40)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(8, 0x5b)
	d.rfcsrWrite(9, 0x08)
	d.rfcsrWrite(10, 0xd3)
	d.rfcsrWrite(11, 0x48)
	d.rfcsrWrite(12, 0x1a)
	d.rfcsrWrite(13, 0x12)
	d.rfcsrWrite(14, 0x00)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0x00)

	// RFCSR 17 is programmed later from the EEPROM frequency offset.

	d.rfcsrWrite(18, 0x40)
	d.rfcsrWrite(19, 0x00)
	d.rfcsrWrite(20, 0x00)
	d.rfcsrWrite(21, 0x00)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(23, 0xc0)
	d.rfcsrWrite(24, 0x00)
	d.rfcsrWrite(25, 0x00)
	d.rfcsrWrite(26, 0x00)
	d.rfcsrWrite(27, 0x00)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x00)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x80)
	d.rfcsrWrite(33, 0x00)
	d.rfcsrWrite(34, 0x20)
	d.rfcsrWrite(35, 0x00)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(37, 0x00)
	d.rfcsrWrite(38, 0x86)
	d.rfcsrWrite(39, 0x23)
	d.rfcsrWrite(40, 0x00)
	d.rfcsrWrite(41, 0x00)
	d.rfcsrWrite(42, 0x00)
	d.rfcsrWrite(43, 0x00)
	d.rfcsrWrite(44, 0x93)
	d.rfcsrWrite(45, 0xbb)
	d.rfcsrWrite(46, 0x60)
	d.rfcsrWrite(47, 0x00)
	d.rfcsrWrite(48, 0x00)
	d.rfcsrWrite(49, 0x8e)
	d.rfcsrWrite(50, 0x86)
	d.rfcsrWrite(51, 0x51)
	d.rfcsrWrite(52, 0x05)
	d.rfcsrWrite(53, 0x76)
	d.rfcsrWrite(54, 0x76)
	d.rfcsrWrite(55, 0x76)
	d.rfcsrWrite(56, 0xdb)
	d.rfcsrWrite(57, 0x3e)
	d.rfcsrWrite(58, 0x00)
	d.rfcsrWrite(59, 0x00)
	d.rfcsrWrite(60, 0x00)
	d.rfcsrWrite(61, 0x00)
	d.rfcsrWrite(62, 0x00)
	d.rfcsrWrite(63, 0x00)

	d.bbpWrite(137, 0x0f)
	d.bbpWrite(163, 0x9d)
	d.bbpWrite(105, 0x05)

	d.bbpWrite(179, 0x02)
	d.bbpWrite(180, 0x00)
	d.bbpWrite(182, 0x40)
	d.bbpWrite(180, 0x01)
	d.bbpWrite(182, 0x9c)
	d.bbpWrite(179, 0x00)

	d.bbpWrite(142, 0x04)
	d.bbpWrite(143, 0x3b)
	d.bbpWrite(142, 0x06)
	d.bbpWrite(143, 0xa0)
	d.bbpWrite(142, 0x07)
	d.bbpWrite(143, 0xa1)
	d.bbpWrite(142, 0x08)
	d.bbpWrite(143, 0xa2)
	d.bbpWrite(148, 0xc8)

	if eco == 5 {
		d.rfcsrWrite(32, 0xd8)
		d.rfcsrWrite(33, 0x32)
	}

	rfcsr := d.rfcsrRead(2)
	setField(&rfcsr, rfcsr2RescalBP, 0)
	setField(&rfcsr, rfcsr2RescalEn, 1)
	d.rfcsrWrite(2, rfcsr)
	msleep(1)
	setField(&rfcsr, rfcsr2RescalEn, 0)
	d.rfcsrWrite(2, rfcsr)

	rfcsr = d.rfcsrRead(1)
	setField(&rfcsr, rfcsr1RFBlockEn, 1)
	d.rfcsrWrite(1, rfcsr)

	rfcsr = d.rfcsrRead(6)
	rfcsr |= 0xc0
	d.rfcsrWrite(6, rfcsr)

	rfcsr = d.rfcsrRead(22)
	rfcsr |= 0x20
	d.rfcsrWrite(22, rfcsr)

	rfcsr = d.rfcsrRead(46)
	rfcsr |= 0x20
	d.rfcsrWrite(46, rfcsr)

	rfcsr = d.rfcsrRead(20)
	rfcsr &^= 0xee
	d.rfcsrWrite(20, rfcsr)
}

func (d *Device) initRFCSR5390() {
	d.rfInitCalibration(2)

	d.rfcsrWrite(1, 0x0f)
	d.rfcsrWrite(2, 0x80)
	d.rfcsrWrite(3, 0x88)
	d.rfcsrWrite(5, 0x10)
	if d.rtRevGTE(RT5390, RevRT5390F) {
		d.rfcsrWrite(6, 0xe0)
	} else {
		d.rfcsrWrite(6, 0xa0)
	}
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(10, 0x53)
	d.rfcsrWrite(11, 0x4a)
	d.rfcsrWrite(12, 0x46)
	d.rfcsrWrite(13, 0x9f)
	d.rfcsrWrite(14, 0x00)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0x00)
	d.rfcsrWrite(18, 0x03)
	d.rfcsrWrite(19, 0x00)

	d.rfcsrWrite(20, 0x00)
	d.rfcsrWrite(21, 0x00)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(23, 0x00)
	d.rfcsrWrite(24, 0x00)
	if d.bus.Kind() == BusUSB && d.rtRevGTE(RT5390, RevRT5390F) {
		d.rfcsrWrite(25, 0x80)
	} else {
		d.rfcsrWrite(25, 0xc0)
	}
	d.rfcsrWrite(26, 0x00)
	d.rfcsrWrite(27, 0x09)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x10)

	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x80)
	d.rfcsrWrite(33, 0x00)
	d.rfcsrWrite(34, 0x07)
	d.rfcsrWrite(35, 0x12)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(37, 0x08)
	d.rfcsrWrite(38, 0x85)
	d.rfcsrWrite(39, 0x1b)

	d.rfcsrWrite(40, 0x0b)
	d.rfcsrWrite(41, 0xbb)
	d.rfcsrWrite(42, 0xd2)
	d.rfcsrWrite(43, 0x9a)
	d.rfcsrWrite(44, 0x0e)
	d.rfcsrWrite(45, 0xa2)
	if d.rtRevGTE(RT5390, RevRT5390F) {
		d.rfcsrWrite(46, 0x73)
	} else {
		d.rfcsrWrite(46, 0x7b)
	}
	d.rfcsrWrite(47, 0x00)
	d.rfcsrWrite(48, 0x10)
	d.rfcsrWrite(49, 0x94)

	d.rfcsrWrite(52, 0x38)
	if d.rtRevGTE(RT5390, RevRT5390F) {
		d.rfcsrWrite(53, 0x00)
	} else {
		d.rfcsrWrite(53, 0x84)
	}
	d.rfcsrWrite(54, 0x78)
	d.rfcsrWrite(55, 0x44)
	if d.rtRevGTE(RT5390, RevRT5390F) {
		d.rfcsrWrite(56, 0x42)
	} else {
		d.rfcsrWrite(56, 0x22)
	}
	d.rfcsrWrite(57, 0x80)
	d.rfcsrWrite(58, 0x7f)
	d.rfcsrWrite(59, 0x8f)

	d.rfcsrWrite(60, 0x45)
	if d.rtRevGTE(RT5390, RevRT5390F) {
		if d.bus.Kind() == BusUSB {
			d.rfcsrWrite(61, 0xd1)
		} else {
			d.rfcsrWrite(61, 0xd5)
		}
	} else {
		if d.bus.Kind() == BusUSB {
			d.rfcsrWrite(61, 0xdd)
		} else {
			d.rfcsrWrite(61, 0xb5)
		}
	}
	d.rfcsrWrite(62, 0x00)
	d.rfcsrWrite(63, 0x00)

	d.normalModeSetup5xxx()

	d.ledOpenDrainEnable()
}

func (d *Device) initRFCSR5392() {
	d.rfInitCalibration(2)

	d.rfcsrWrite(1, 0x17)
	d.rfcsrWrite(3, 0x88)
	d.rfcsrWrite(5, 0x10)
	d.rfcsrWrite(6, 0xe0)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(10, 0x53)
	d.rfcsrWrite(11, 0x4a)
	d.rfcsrWrite(12, 0x46)
	d.rfcsrWrite(13, 0x9f)
	d.rfcsrWrite(14, 0x00)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0x00)
	d.rfcsrWrite(18, 0x03)
	d.rfcsrWrite(19, 0x4d)
	d.rfcsrWrite(20, 0x00)
	d.rfcsrWrite(21, 0x8d)
	d.rfcsrWrite(22, 0x20)
	d.rfcsrWrite(23, 0x0b)
	d.rfcsrWrite(24, 0x44)
	d.rfcsrWrite(25, 0x80)
	d.rfcsrWrite(26, 0x82)
	d.rfcsrWrite(27, 0x09)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x10)
	d.rfcsrWrite(30, 0x10)
	d.rfcsrWrite(31, 0x80)
	d.rfcsrWrite(32, 0x20)
	d.rfcsrWrite(33, 0xc0)
	d.rfcsrWrite(34, 0x07)
	d.rfcsrWrite(35, 0x12)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(37, 0x08)
	d.rfcsrWrite(38, 0x89)
	d.rfcsrWrite(39, 0x1b)
	d.rfcsrWrite(40, 0x0f)
	d.rfcsrWrite(41, 0xbb)
	d.rfcsrWrite(42, 0xd5)
	d.rfcsrWrite(43, 0x9b)
	d.rfcsrWrite(44, 0x0e)
	d.rfcsrWrite(45, 0xa2)
	d.rfcsrWrite(46, 0x73)
	d.rfcsrWrite(47, 0x0c)
	d.rfcsrWrite(48, 0x10)
	d.rfcsrWrite(49, 0x94)
	d.rfcsrWrite(50, 0x94)
	d.rfcsrWrite(51, 0x3a)
	d.rfcsrWrite(52, 0x48)
	d.rfcsrWrite(53, 0x44)
	d.rfcsrWrite(54, 0x38)
	d.rfcsrWrite(55, 0x43)
	d.rfcsrWrite(56, 0xa1)
	d.rfcsrWrite(57, 0x00)
	d.rfcsrWrite(58, 0x39)
	d.rfcsrWrite(59, 0x07)
	d.rfcsrWrite(60, 0x45)
	d.rfcsrWrite(61, 0x91)
	d.rfcsrWrite(62, 0x39)
	d.rfcsrWrite(63, 0x07)

	d.normalModeSetup5xxx()

	d.ledOpenDrainEnable()
}

func (d *Device) initRFCSR5592() {
	d.rfInitCalibration(30)

	d.rfcsrWrite(1, 0x3f)
	d.rfcsrWrite(3, 0x08)
	d.rfcsrWrite(5, 0x10)
	d.rfcsrWrite(6, 0xe4)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(14, 0x00)
	d.rfcsrWrite(15, 0x00)
	d.rfcsrWrite(16, 0x00)
	d.rfcsrWrite(18, 0x03)
	d.rfcsrWrite(19, 0x4d)
	d.rfcsrWrite(20, 0x10)
	d.rfcsrWrite(21, 0x8d)
	d.rfcsrWrite(26, 0x82)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x10)
	d.rfcsrWrite(33, 0xc0)
	d.rfcsrWrite(34, 0x07)
	d.rfcsrWrite(35, 0x12)
	d.rfcsrWrite(47, 0x0c)
	d.rfcsrWrite(53, 0x22)
	d.rfcsrWrite(63, 0x07)

	d.rfcsrWrite(2, 0x80)
	msleep(1)

	d.freqCalMode1()

	// Enable the DC filter.
	if d.rtRevGTE(RT5592, RevRT5592C) {
		d.bbpWrite(103, 0xc0)
	}

	d.normalModeSetup5xxx()

	if d.rtRevLT(RT5592, RevRT5592C) {
		d.rfcsrWrite(27, 0x03)
	}

	d.ledOpenDrainEnable()
}

func (d *Device) initRFCSR6352() {
	// RF central register defaults.
	d.rfcsrWrite(0, 0x02)
	d.rfcsrWrite(1, 0x03)
	d.rfcsrWrite(2, 0x33)
	d.rfcsrWrite(3, 0xff)
	d.rfcsrWrite(4, 0x0c)
	d.rfcsrWrite(5, 0x40)
	d.rfcsrWrite(6, 0x00)
	d.rfcsrWrite(7, 0x00)
	d.rfcsrWrite(8, 0x00)
	d.rfcsrWrite(9, 0x00)
	d.rfcsrWrite(10, 0x00)
	d.rfcsrWrite(11, 0x00)
	d.rfcsrWrite(12, d.freqOffset)
	d.rfcsrWrite(13, 0x00)
	d.rfcsrWrite(14, 0x40)
	d.rfcsrWrite(15, 0x22)
	d.rfcsrWrite(16, 0x4c)
	d.rfcsrWrite(17, 0x00)
	d.rfcsrWrite(18, 0x00)
	d.rfcsrWrite(19, 0x00)
	d.rfcsrWrite(20, 0xa0)
	d.rfcsrWrite(21, 0x12)
	d.rfcsrWrite(22, 0x07)
	d.rfcsrWrite(23, 0x13)
	d.rfcsrWrite(24, 0xfe)
	d.rfcsrWrite(25, 0x24)
	d.rfcsrWrite(26, 0x7a)
	d.rfcsrWrite(27, 0x00)
	d.rfcsrWrite(28, 0x00)
	d.rfcsrWrite(29, 0x05)
	d.rfcsrWrite(30, 0x00)
	d.rfcsrWrite(31, 0x00)
	d.rfcsrWrite(32, 0x00)
	d.rfcsrWrite(33, 0x00)
	d.rfcsrWrite(34, 0x00)
	d.rfcsrWrite(35, 0x00)
	d.rfcsrWrite(36, 0x00)
	d.rfcsrWrite(37, 0x00)
	d.rfcsrWrite(38, 0x00)
	d.rfcsrWrite(39, 0x00)
	d.rfcsrWrite(40, 0x00)
	d.rfcsrWrite(41, 0xd0)
	d.rfcsrWrite(42, 0x5b)
	d.rfcsrWrite(43, 0x00)

	d.rfcsrWrite(11, 0x21)
	if d.clkIs20MHz() {
		d.rfcsrWrite(13, 0x03)
	} else {
		d.rfcsrWrite(13, 0x00)
	}
	d.rfcsrWrite(14, 0x7c)
	d.rfcsrWrite(16, 0x80)
	d.rfcsrWrite(17, 0x99)
	d.rfcsrWrite(18, 0x99)
	d.rfcsrWrite(19, 0x09)
	d.rfcsrWrite(20, 0x50)
	d.rfcsrWrite(21, 0xb0)
	d.rfcsrWrite(22, 0x00)
	d.rfcsrWrite(23, 0x06)
	d.rfcsrWrite(24, 0x00)
	d.rfcsrWrite(25, 0x00)
	d.rfcsrWrite(26, 0x5d)
	d.rfcsrWrite(27, 0x00)
	d.rfcsrWrite(28, 0x61)
	d.rfcsrWrite(29, 0xb5)
	d.rfcsrWrite(43, 0x02)

	d.rfcsrWrite(28, 0x62)
	d.rfcsrWrite(29, 0xad)
	d.rfcsrWrite(39, 0x80)

	// RF channel register defaults, mirrored into both band banks.
	d.rfcsrWriteChanreg(0, 0x03)
	d.rfcsrWriteChanreg(1, 0x00)
	d.rfcsrWriteChanreg(2, 0x00)
	d.rfcsrWriteChanreg(3, 0x00)
	d.rfcsrWriteChanreg(4, 0x00)
	d.rfcsrWriteChanreg(5, 0x08)
	d.rfcsrWriteChanreg(6, 0x00)
	d.rfcsrWriteChanreg(7, 0x51)
	d.rfcsrWriteChanreg(8, 0x53)
	d.rfcsrWriteChanreg(9, 0x16)
	d.rfcsrWriteChanreg(10, 0x61)
	d.rfcsrWriteChanreg(11, 0x53)
	d.rfcsrWriteChanreg(12, 0x22)
	d.rfcsrWriteChanreg(13, 0x3d)
	d.rfcsrWriteChanreg(14, 0x06)
	d.rfcsrWriteChanreg(15, 0x13)
	d.rfcsrWriteChanreg(16, 0x22)
	d.rfcsrWriteChanreg(17, 0x27)
	d.rfcsrWriteChanreg(18, 0x02)
	d.rfcsrWriteChanreg(19, 0xa7)
	d.rfcsrWriteChanreg(20, 0x01)
	d.rfcsrWriteChanreg(21, 0x52)
	d.rfcsrWriteChanreg(22, 0x80)
	d.rfcsrWriteChanreg(23, 0xb3)
	d.rfcsrWriteChanreg(24, 0x00)
	d.rfcsrWriteChanreg(25, 0x00)
	d.rfcsrWriteChanreg(26, 0x00)
	d.rfcsrWriteChanreg(27, 0x00)
	d.rfcsrWriteChanreg(28, 0x5c)
	d.rfcsrWriteChanreg(29, 0x6b)
	d.rfcsrWriteChanreg(30, 0x6b)
	d.rfcsrWriteChanreg(31, 0x31)
	d.rfcsrWriteChanreg(32, 0x5d)
	d.rfcsrWriteChanreg(33, 0x00)
	d.rfcsrWriteChanreg(34, 0xe6)
	d.rfcsrWriteChanreg(35, 0x55)
	d.rfcsrWriteChanreg(36, 0x00)
	d.rfcsrWriteChanreg(37, 0xbb)
	d.rfcsrWriteChanreg(38, 0xb3)
	d.rfcsrWriteChanreg(39, 0xb3)
	d.rfcsrWriteChanreg(40, 0x03)
	d.rfcsrWriteChanreg(41, 0x00)
	d.rfcsrWriteChanreg(42, 0x00)
	d.rfcsrWriteChanreg(43, 0xb3)
	d.rfcsrWriteChanreg(44, 0xd3)
	d.rfcsrWriteChanreg(45, 0xd5)
	d.rfcsrWriteChanreg(46, 0x07)
	d.rfcsrWriteChanreg(47, 0x68)
	d.rfcsrWriteChanreg(48, 0xef)
	d.rfcsrWriteChanreg(49, 0x1c)
	d.rfcsrWriteChanreg(54, 0x07)
	d.rfcsrWriteChanreg(55, 0xa8)
	d.rfcsrWriteChanreg(56, 0x85)
	d.rfcsrWriteChanreg(57, 0x10)
	d.rfcsrWriteChanreg(58, 0x07)
	d.rfcsrWriteChanreg(59, 0x6a)
	d.rfcsrWriteChanreg(60, 0x85)
	d.rfcsrWriteChanreg(61, 0x10)
	d.rfcsrWriteChanreg(62, 0x1c)
	d.rfcsrWriteChanreg(63, 0x00)

	d.rfcsrWriteBank(6, 45, 0xc5)

	d.rfcsrWriteChanreg(9, 0x47)
	d.rfcsrWriteChanreg(10, 0x71)
	d.rfcsrWriteChanreg(11, 0x33)
	d.rfcsrWriteChanreg(14, 0x0e)
	d.rfcsrWriteChanreg(17, 0x23)
	d.rfcsrWriteChanreg(19, 0xa4)
	d.rfcsrWriteChanreg(20, 0x02)
	d.rfcsrWriteChanreg(21, 0x12)
	d.rfcsrWriteChanreg(28, 0x1c)
	d.rfcsrWriteChanreg(29, 0xeb)
	d.rfcsrWriteChanreg(32, 0x7d)
	d.rfcsrWriteChanreg(34, 0xd6)
	d.rfcsrWriteChanreg(36, 0x08)
	d.rfcsrWriteChanreg(38, 0xb4)
	d.rfcsrWriteChanreg(43, 0xd3)
	d.rfcsrWriteChanreg(44, 0xb3)
	d.rfcsrWriteChanreg(45, 0xd5)
	d.rfcsrWriteChanreg(46, 0x27)
	d.rfcsrWriteBank(4, 47, 0x67)
	d.rfcsrWriteBank(6, 47, 0x69)
	d.rfcsrWriteChanreg(48, 0xff)
	d.rfcsrWriteBank(4, 54, 0x27)
	d.rfcsrWriteBank(6, 54, 0x20)
	d.rfcsrWriteChanreg(55, 0x66)
	d.rfcsrWriteChanreg(56, 0xff)
	d.rfcsrWriteChanreg(57, 0x1c)
	d.rfcsrWriteChanreg(58, 0x20)
	d.rfcsrWriteChanreg(59, 0x6b)
	d.rfcsrWriteChanreg(60, 0xf7)
	d.rfcsrWriteChanreg(61, 0x09)

	d.rfcsrWriteChanreg(10, 0x51)
	d.rfcsrWriteChanreg(14, 0x06)
	d.rfcsrWriteChanreg(19, 0xa7)
	d.rfcsrWriteChanreg(28, 0x2c)
	d.rfcsrWriteChanreg(55, 0x64)
	d.rfcsrWriteChanreg(8, 0x51)
	d.rfcsrWriteChanreg(9, 0x36)
	d.rfcsrWriteChanreg(11, 0x53)
	d.rfcsrWriteChanreg(14, 0x16)

	d.rfcsrWriteChanreg(47, 0x6c)
	d.rfcsrWriteChanreg(48, 0xfc)
	d.rfcsrWriteChanreg(49, 0x1f)
	d.rfcsrWriteChanreg(54, 0x27)
	d.rfcsrWriteChanreg(55, 0x66)
	d.rfcsrWriteChanreg(59, 0x6b)

	// Channel register overrides for the DRQFN package.
	d.rfcsrWriteChanreg(43, 0xd3)
	d.rfcsrWriteChanreg(44, 0xe3)
	d.rfcsrWriteChanreg(45, 0xe5)
	d.rfcsrWriteChanreg(47, 0x28)
	d.rfcsrWriteChanreg(55, 0x68)
	d.rfcsrWriteChanreg(56, 0xf7)
	d.rfcsrWriteChanreg(58, 0x02)
	d.rfcsrWriteChanreg(60, 0xc7)

	// RF DC calibration register defaults.
	d.rfcsrWriteDccal(0, 0x47)
	d.rfcsrWriteDccal(1, 0x00)
	d.rfcsrWriteDccal(2, 0x00)
	d.rfcsrWriteDccal(3, 0x00)
	d.rfcsrWriteDccal(4, 0x00)
	d.rfcsrWriteDccal(5, 0x00)
	d.rfcsrWriteDccal(6, 0x10)
	d.rfcsrWriteDccal(7, 0x10)
	d.rfcsrWriteDccal(8, 0x04)
	d.rfcsrWriteDccal(9, 0x00)
	d.rfcsrWriteDccal(10, 0x07)
	d.rfcsrWriteDccal(11, 0x01)
	d.rfcsrWriteDccal(12, 0x07)
	d.rfcsrWriteDccal(13, 0x07)
	d.rfcsrWriteDccal(14, 0x07)
	d.rfcsrWriteDccal(15, 0x20)
	d.rfcsrWriteDccal(16, 0x22)
	d.rfcsrWriteDccal(17, 0x00)
	d.rfcsrWriteDccal(18, 0x00)
	d.rfcsrWriteDccal(19, 0x00)
	d.rfcsrWriteDccal(20, 0x00)
	d.rfcsrWriteDccal(21, 0xf1)
	d.rfcsrWriteDccal(22, 0x11)
	d.rfcsrWriteDccal(23, 0x02)
	d.rfcsrWriteDccal(24, 0x41)
	d.rfcsrWriteDccal(25, 0x20)
	d.rfcsrWriteDccal(26, 0x00)
	d.rfcsrWriteDccal(27, 0xd7)
	d.rfcsrWriteDccal(28, 0xa2)
	d.rfcsrWriteDccal(29, 0x20)
	d.rfcsrWriteDccal(30, 0x49)
	d.rfcsrWriteDccal(31, 0x20)
	d.rfcsrWriteDccal(32, 0x04)
	d.rfcsrWriteDccal(33, 0xf1)
	d.rfcsrWriteDccal(34, 0xa1)
	d.rfcsrWriteDccal(35, 0x01)
	d.rfcsrWriteDccal(41, 0x00)
	d.rfcsrWriteDccal(42, 0x00)
	d.rfcsrWriteDccal(43, 0x00)
	d.rfcsrWriteDccal(44, 0x00)
	d.rfcsrWriteDccal(45, 0x00)
	d.rfcsrWriteDccal(46, 0x00)
	d.rfcsrWriteDccal(47, 0x3e)
	d.rfcsrWriteDccal(48, 0x3d)
	d.rfcsrWriteDccal(49, 0x3e)
	d.rfcsrWriteDccal(50, 0x3d)
	d.rfcsrWriteDccal(51, 0x3e)
	d.rfcsrWriteDccal(52, 0x3d)
	d.rfcsrWriteDccal(53, 0x00)
	d.rfcsrWriteDccal(54, 0x00)
	d.rfcsrWriteDccal(55, 0x00)
	d.rfcsrWriteDccal(56, 0x00)
	d.rfcsrWriteDccal(57, 0x00)
	d.rfcsrWriteDccal(58, 0x10)
	d.rfcsrWriteDccal(59, 0x10)
	d.rfcsrWriteDccal(60, 0x0a)
	d.rfcsrWriteDccal(61, 0x00)
	d.rfcsrWriteDccal(62, 0x00)
	d.rfcsrWriteDccal(63, 0x00)

	d.rfcsrWriteDccal(3, 0x08)
	d.rfcsrWriteDccal(4, 0x04)
	d.rfcsrWriteDccal(5, 0x20)

	d.rfcsrWriteDccal(5, 0x00)
	d.rfcsrWriteDccal(17, 0x7c)

	d.bwFilterCalibration(true)
	d.bwFilterCalibration(false)
}

// initRFCSR programs the RF synthesizer defaults for the probed chip.
// Chips older than the RT3070 carry no programmable RF registers.
func (d *Device) initRFCSR() {
	if d.is305xSoC() {
		d.initRFCSR305xSoC()
		return
	}

	switch d.rt {
	case RT3070, RT3071, RT3090:
		d.initRFCSR30xx()
	case RT3290:
		d.initRFCSR3290()
	case RT3352:
		d.initRFCSR3352()
	case RT3390:
		d.initRFCSR3390()
	case RT3883:
		d.initRFCSR3883()
	case RT3572:
		d.initRFCSR3572()
	case RT3593:
		d.initRFCSR3593()
	case RT5350:
		d.initRFCSR5350()
	case RT5390:
		d.initRFCSR5390()
	case RT5392:
		d.initRFCSR5392()
	case RT5592:
		d.initRFCSR5592()
	case RT6352:
		d.initRFCSR6352()
	}
}
