package rt2800

// EEPROM_BBP_START words carry per-board baseband overrides: register
// id in the high byte, value in the low byte.
const (
	eepromBBPSize         = 16
	eepromBBPRegID uint16 = 0xff00
	eepromBBPValue uint16 = 0x00ff
)

func (d *Device) initBBP5592GLRT() {
	glrt := []uint8{
		0xe0, 0x1f, 0x38, 0x32, 0x08, 0x28, 0x19, 0x0a, 0xff, 0x00, // 128..137
		0x16, 0x10, 0x10, 0x0b, 0x36, 0x2c, 0x26, 0x24, 0x42, 0x36, // 138..147
		0x30, 0x2d, 0x4c, 0x46, 0x3d, 0x40, 0x3e, 0x42, 0x3d, 0x40, // 148..157
		0x3c, 0x34, 0x2c, 0x2f, 0x3c, 0x35, 0x2e, 0x2a, 0x49, 0x41, // 158..167
		0x36, 0x31, 0x30, 0x30, 0x0e, 0x0d, 0x28, 0x21, 0x1c, 0x16, // 168..177
		0x50, 0x4a, 0x43, 0x40, 0x10, 0x10, 0x10, 0x10, 0x00, 0x00, // 178..187
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 188..197
		0x00, 0x00, 0x7d, 0x14, 0x32, 0x2c, 0x36, 0x4c, 0x43, 0x2c, // 198..207
		0x2e, 0x36, 0x30, 0x6e, // 208..211
	}
	for i, v := range glrt {
		d.bbpGLRTWrite(uint8(128+i), v)
	}
}

func (d *Device) initBBPEarly() {
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(68, 0x0b)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(73, 0x10)
	d.bbpWrite(81, 0x37)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)
	d.bbpWrite(84, 0x99)
	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)
	d.bbpWrite(103, 0x00)
	d.bbpWrite(105, 0x05)
	d.bbpWrite(106, 0x35)
}

// disableUnusedDACADC powers down the second DAC/ADC pair on
// single-chain boards.
func (d *Device) disableUnusedDACADC() {
	value := d.bbpRead(138)
	word, _ := d.eepromRead(eepromNICConf0)
	if getField(word, nicConf0TXPath) == 1 {
		value |= bbp138TXDAC1
	}
	if getField(word, nicConf0RXPath) == 1 {
		value &^= bbp138RXADC1
	}
	d.bbpWrite(138, value)
}

func (d *Device) initBBP305xSoC() {
	d.bbpWrite(31, 0x08)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x10)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(78, 0x0e)
	d.bbpWrite(80, 0x08)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)
	d.bbpWrite(84, 0x99)
	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(105, 0x01)
	d.bbpWrite(106, 0x35)
}

func (d *Device) initBBP28xx() {
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)

	if d.rtRev(RT2860, RevRT2860C) {
		d.bbpWrite(69, 0x16)
		d.bbpWrite(73, 0x12)
	} else {
		d.bbpWrite(69, 0x12)
		d.bbpWrite(73, 0x10)
	}

	d.bbpWrite(70, 0x0a)
	d.bbpWrite(81, 0x37)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)

	if d.rtRev(RT2860, RevRT2860D) {
		d.bbpWrite(84, 0x19)
	} else {
		d.bbpWrite(84, 0x99)
	}

	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)
	d.bbpWrite(103, 0x00)
	d.bbpWrite(105, 0x05)
	d.bbpWrite(106, 0x35)
}

func (d *Device) initBBP30xx() {
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x10)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(79, 0x13)
	d.bbpWrite(80, 0x05)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)
	d.bbpWrite(84, 0x99)
	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)

	if d.rtRevGTE(RT3070, RevRT3070F) ||
		d.rtRevGTE(RT3071, RevRT3071E) ||
		d.rtRevGTE(RT3090, RevRT3090E) {
		d.bbpWrite(103, 0xc0)
	} else {
		d.bbpWrite(103, 0x00)
	}

	d.bbpWrite(105, 0x05)
	d.bbpWrite(106, 0x35)

	if d.rt == RT3071 || d.rt == RT3090 {
		d.disableUnusedDACADC()
	}
}

func (d *Device) initBBP3290() {
	d.bbp4MACIfCtrl()

	d.bbpWrite(31, 0x08)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(68, 0x0b)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x13)
	d.bbpWrite(75, 0x46)
	d.bbpWrite(76, 0x28)
	d.bbpWrite(77, 0x58)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(74, 0x0b)
	d.bbpWrite(79, 0x18)
	d.bbpWrite(80, 0x09)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x7a)
	d.bbpWrite(84, 0x9a)
	d.bbpWrite(86, 0x38)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x02)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(105, 0x1c)
	d.bbpWrite(106, 0x03)
	d.bbpWrite(128, 0x12)
	d.bbpWrite(67, 0x24)
	d.bbpWrite(143, 0x04)
	d.bbpWrite(142, 0x99)
	d.bbpWrite(150, 0x30)
	d.bbpWrite(151, 0x2e)
	d.bbpWrite(152, 0x20)
	d.bbpWrite(153, 0x34)
	d.bbpWrite(154, 0x40)
	d.bbpWrite(155, 0x3b)
	d.bbpWrite(253, 0x04)

	value := d.bbpRead(47)
	value |= bbp47TSSIADC6
	d.bbpWrite(47, value)

	// 5-bit ADC for acquisition, 8-bit ADC for data.
	value = d.bbpRead(3)
	value |= bbp3ADCModeSwitch | bbp3ADCInitMode
	d.bbpWrite(3, value)
}

func (d *Device) initBBP3352() {
	d.bbpWrite(3, 0x00)
	d.bbpWrite(4, 0x50)
	d.bbpWrite(31, 0x08)
	d.bbpWrite(47, 0x48)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(68, 0x0b)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x13)
	d.bbpWrite(75, 0x46)
	d.bbpWrite(76, 0x28)
	d.bbpWrite(77, 0x59)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(78, 0x0e)
	d.bbpWrite(80, 0x08)
	d.bbpWrite(81, 0x37)
	d.bbpWrite(82, 0x62)

	if d.rt == RT5350 {
		d.bbpWrite(83, 0x7a)
		d.bbpWrite(84, 0x9a)
	} else {
		d.bbpWrite(83, 0x6a)
		d.bbpWrite(84, 0x99)
	}

	d.bbpWrite(86, 0x38)
	d.bbpWrite(88, 0x90)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x02)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)

	if d.rt == RT5350 {
		d.bbpWrite(105, 0x3c)
		d.bbpWrite(106, 0x03)
	} else {
		d.bbpWrite(105, 0x34)
		d.bbpWrite(106, 0x05)
	}

	d.bbpWrite(120, 0x50)
	d.bbpWrite(137, 0x0f)
	d.bbpWrite(163, 0xbd)

	// ITxBF timeout of 0x9c40 (1000ms).
	d.bbpWrite(179, 0x02)
	d.bbpWrite(180, 0x00)
	d.bbpWrite(182, 0x40)
	d.bbpWrite(180, 0x01)
	d.bbpWrite(182, 0x9c)
	d.bbpWrite(179, 0x00)

	// Reprogram the inband interface so the RXWI carries right values.
	d.bbpWrite(142, 0x04)
	d.bbpWrite(143, 0x3b)
	d.bbpWrite(142, 0x06)
	d.bbpWrite(143, 0xa0)
	d.bbpWrite(142, 0x07)
	d.bbpWrite(143, 0xa1)
	d.bbpWrite(142, 0x08)
	d.bbpWrite(143, 0xa2)

	d.bbpWrite(148, 0xc8)

	if d.rt == RT5350 {
		// Software antenna selection for OFDM and CCK, previous
		// selection cleared.
		d.bbpWrite(150, 0x40)
		d.bbpWrite(151, 0x30)
		d.bbpWrite(152, 0xa3)
		d.bbpWrite(154, 0)
	}
}

func (d *Device) initBBP3390() {
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x10)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(79, 0x13)
	d.bbpWrite(80, 0x05)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)
	d.bbpWrite(84, 0x99)
	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)

	if d.rtRevGTE(RT3390, RevRT3390E) {
		d.bbpWrite(103, 0xc0)
	} else {
		d.bbpWrite(103, 0x00)
	}

	d.bbpWrite(105, 0x05)
	d.bbpWrite(106, 0x35)

	d.disableUnusedDACADC()
}

func (d *Device) initBBP3572() {
	d.bbpWrite(31, 0x08)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x10)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(79, 0x13)
	d.bbpWrite(80, 0x05)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x6a)
	d.bbpWrite(84, 0x99)
	d.bbpWrite(86, 0x00)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x00)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(105, 0x05)
	d.bbpWrite(106, 0x35)

	d.disableUnusedDACADC()
}

func (d *Device) initBBP3593() {
	d.initBBPEarly()

	d.bbpWrite(79, 0x13)
	d.bbpWrite(80, 0x05)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(137, 0x0f)

	d.bbpWrite(84, 0x19)

	// DC filter.
	if d.rtRevGTE(RT3593, RevRT3593E) {
		d.bbpWrite(103, 0xc0)
	}
}

func (d *Device) initBBP3883() {
	d.initBBPEarly()

	d.bbpWrite(4, 0x50)
	d.bbpWrite(47, 0x48)
	d.bbpWrite(86, 0x46)
	d.bbpWrite(88, 0x90)
	d.bbpWrite(92, 0x02)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(105, 0x34)
	d.bbpWrite(106, 0x12)
	d.bbpWrite(120, 0x50)
	d.bbpWrite(137, 0x0f)
	d.bbpWrite(163, 0x9d)

	// ITxBF timeout of 0x9c40 (1000ms).
	d.bbpWrite(179, 0x02)
	d.bbpWrite(180, 0x00)
	d.bbpWrite(182, 0x40)
	d.bbpWrite(180, 0x01)
	d.bbpWrite(182, 0x9c)
	d.bbpWrite(179, 0x00)

	// Reprogram the inband interface so the RXWI carries right values.
	d.bbpWrite(142, 0x04)
	d.bbpWrite(143, 0x3b)
	d.bbpWrite(142, 0x06)
	d.bbpWrite(143, 0xa0)
	d.bbpWrite(142, 0x07)
	d.bbpWrite(143, 0xa1)
	d.bbpWrite(142, 0x08)
	d.bbpWrite(143, 0xa2)
	d.bbpWrite(148, 0xc8)
}

func (d *Device) initBBP53xx() {
	d.bbp4MACIfCtrl()

	d.bbpWrite(31, 0x08)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x38)
	d.bbpWrite(68, 0x0b)
	d.bbpWrite(69, 0x12)
	d.bbpWrite(73, 0x13)
	d.bbpWrite(75, 0x46)
	d.bbpWrite(76, 0x28)
	d.bbpWrite(77, 0x59)
	d.bbpWrite(70, 0x0a)
	d.bbpWrite(79, 0x13)
	d.bbpWrite(80, 0x05)
	d.bbpWrite(81, 0x33)
	d.bbpWrite(82, 0x62)
	d.bbpWrite(83, 0x7a)
	d.bbpWrite(84, 0x9a)
	d.bbpWrite(86, 0x38)

	if d.rt == RT5392 {
		d.bbpWrite(88, 0x90)
	}

	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x02)

	if d.rt == RT5392 {
		d.bbpWrite(95, 0x9a)
		d.bbpWrite(98, 0x12)
	}

	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(105, 0x3c)

	if d.rt == RT5390 {
		d.bbpWrite(106, 0x03)
	} else {
		d.bbpWrite(106, 0x12)
	}

	d.bbpWrite(128, 0x12)

	if d.rt == RT5392 {
		d.bbpWrite(134, 0xd0)
		d.bbpWrite(135, 0xf6)
	}

	d.disableUnusedDACADC()

	word, _ := d.eepromRead(eepromNICConf1)
	divMode := getField(word, nicConf1AntDiversity)
	ant := uint8(0)
	if divMode == 3 {
		ant = 1
	}

	// Bluetooth combo cards select the shared antenna over GPIO.
	if d.caps.btCoexist {
		reg := d.register32(regGPIOCtrl)
		setField(&reg, gpioCtrlDir3, 0)
		setField(&reg, gpioCtrlDir6, 0)
		setField(&reg, gpioCtrlVal3, 0)
		setField(&reg, gpioCtrlVal6, 0)
		if ant == 0 {
			setField(&reg, gpioCtrlVal3, 1)
		} else {
			setField(&reg, gpioCtrlVal6, 1)
		}
		d.writeRegister(regGPIOCtrl, reg)
	}

	// These chips have hardware RX antenna diversity.
	if d.rtRevGTE(RT5390, RevRT5390R) || d.rtRevGTE(RT5390, RevRT5370G) {
		d.bbpWrite(150, 0)
		d.bbpWrite(151, 0)
		d.bbpWrite(154, 0)
	}

	value := d.bbpRead(152)
	if ant == 0 {
		value |= bbp152RXDefault
	} else {
		value &^= bbp152RXDefault
	}
	d.bbpWrite(152, value)

	d.initFreqCalibration()
}

func (d *Device) initBBP5592() {
	d.initBBPEarly()

	value := d.bbpRead(105)
	if d.ant.rxChains == 2 {
		value |= bbp105MLDFor2St
	} else {
		value &^= bbp105MLDFor2St
	}
	d.bbpWrite(105, value)

	d.bbp4MACIfCtrl()

	d.bbpWrite(20, 0x06)
	d.bbpWrite(31, 0x08)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(68, 0xdd)
	d.bbpWrite(69, 0x1a)
	d.bbpWrite(70, 0x05)
	d.bbpWrite(73, 0x13)
	d.bbpWrite(74, 0x0f)
	d.bbpWrite(75, 0x4f)
	d.bbpWrite(76, 0x28)
	d.bbpWrite(77, 0x59)
	d.bbpWrite(84, 0x9a)
	d.bbpWrite(86, 0x38)
	d.bbpWrite(88, 0x90)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x02)
	d.bbpWrite(95, 0x9a)
	d.bbpWrite(98, 0x12)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(105, 0x3c)
	d.bbpWrite(106, 0x35)
	d.bbpWrite(128, 0x12)
	d.bbpWrite(134, 0xd0)
	d.bbpWrite(135, 0xf6)
	d.bbpWrite(137, 0x0f)

	// Generalized likelihood ratio test thresholds.
	d.initBBP5592GLRT()

	d.bbp4MACIfCtrl()

	word, _ := d.eepromRead(eepromNICConf1)
	divMode := getField(word, nicConf1AntDiversity)
	value = d.bbpRead(152)
	if divMode == 3 {
		// Auxiliary antenna.
		value &^= bbp152RXDefault
	} else {
		// Main antenna.
		value |= bbp152RXDefault
	}
	d.bbpWrite(152, value)

	if d.rtRevGTE(RT5592, RevRT5592C) {
		value = d.bbpRead(254)
		value |= bbp254Bit7
		d.bbpWrite(254, value)
	}

	d.initFreqCalibration()

	d.bbpWrite(84, 0x19)
	if d.rtRevGTE(RT5592, RevRT5592C) {
		d.bbpWrite(103, 0xc0)
	}
}

func (d *Device) initBBP6352() {
	// Maximum likelihood detection for the 2-stream case.
	bbp := d.bbpRead(105)
	if d.ant.rxChains == 2 {
		bbp |= bbp105MLDFor2St
	} else {
		bbp &^= bbp105MLDFor2St
	}
	d.bbpWrite(105, bbp)

	// Avoid data loss and CRC errors.
	d.bbp4MACIfCtrl()

	// Fix the I/Q swap issue.
	bbp = d.bbpRead(1)
	bbp |= 0x04
	d.bbpWrite(1, bbp)

	// G band baseband defaults.
	d.bbpWrite(3, 0x08)
	d.bbpWrite(4, 0x00)
	d.bbpWrite(6, 0x08)
	d.bbpWrite(14, 0x09)
	d.bbpWrite(15, 0xff)
	d.bbpWrite(16, 0x01)
	d.bbpWrite(20, 0x06)
	d.bbpWrite(21, 0x00)
	d.bbpWrite(22, 0x00)
	d.bbpWrite(27, 0x00)
	d.bbpWrite(28, 0x00)
	d.bbpWrite(30, 0x00)
	d.bbpWrite(31, 0x48)
	d.bbpWrite(47, 0x40)
	d.bbpWrite(62, 0x00)
	d.bbpWrite(63, 0x00)
	d.bbpWrite(64, 0x00)
	d.bbpWrite(65, 0x2c)
	d.bbpWrite(66, 0x1c)
	d.bbpWrite(67, 0x20)
	d.bbpWrite(68, 0xdd)
	d.bbpWrite(69, 0x10)
	d.bbpWrite(70, 0x05)
	d.bbpWrite(73, 0x18)
	d.bbpWrite(74, 0x0f)
	d.bbpWrite(75, 0x60)
	d.bbpWrite(76, 0x44)
	d.bbpWrite(77, 0x59)
	d.bbpWrite(78, 0x1e)
	d.bbpWrite(79, 0x1c)
	d.bbpWrite(80, 0x0c)
	d.bbpWrite(81, 0x3a)
	d.bbpWrite(82, 0xb6)
	d.bbpWrite(83, 0x9a)
	d.bbpWrite(84, 0x9a)
	d.bbpWrite(86, 0x38)
	d.bbpWrite(88, 0x90)
	d.bbpWrite(91, 0x04)
	d.bbpWrite(92, 0x02)
	d.bbpWrite(95, 0x9a)
	d.bbpWrite(96, 0x00)
	d.bbpWrite(103, 0xc0)
	d.bbpWrite(104, 0x92)
	d.bbpWrite(105, 0x3c)
	d.bbpWrite(106, 0x12)
	d.bbpWrite(109, 0x00)
	d.bbpWrite(134, 0x10)
	d.bbpWrite(135, 0xa6)
	d.bbpWrite(137, 0x04)
	d.bbpWrite(142, 0x30)
	d.bbpWrite(143, 0xf7)
	d.bbpWrite(160, 0xec)
	d.bbpWrite(161, 0xc4)
	d.bbpWrite(162, 0x77)
	d.bbpWrite(163, 0xf9)
	d.bbpWrite(164, 0x00)
	d.bbpWrite(165, 0x00)
	d.bbpWrite(186, 0x00)
	d.bbpWrite(187, 0x00)
	d.bbpWrite(188, 0x00)
	d.bbpWrite(186, 0x00)
	d.bbpWrite(187, 0x01)
	d.bbpWrite(188, 0x00)
	d.bbpWrite(189, 0x00)

	d.bbpWrite(91, 0x06)
	d.bbpWrite(92, 0x04)
	d.bbpWrite(93, 0x54)
	d.bbpWrite(99, 0x50)
	d.bbpWrite(148, 0x84)
	d.bbpWrite(167, 0x80)
	d.bbpWrite(178, 0xff)
	d.bbpWrite(106, 0x13)

	// G band GLRT thresholds.
	glrt := []struct{ reg, value uint8 }{
		{0, 0x00}, {1, 0x14}, {2, 0x20}, {3, 0x0a}, {10, 0x16},
		{11, 0x06}, {12, 0x02}, {13, 0x07}, {14, 0x05}, {15, 0x09},
		{16, 0x20}, {17, 0x08}, {18, 0x4a}, {19, 0x00}, {20, 0x00},
		{128, 0xe0}, {129, 0x1f}, {130, 0x4f}, {131, 0x32}, {132, 0x08},
		{133, 0x28}, {134, 0x19}, {135, 0x0a}, {138, 0x16}, {139, 0x10},
		{140, 0x10}, {141, 0x1a}, {142, 0x36}, {143, 0x2c}, {144, 0x26},
		{145, 0x24}, {146, 0x42}, {147, 0x40}, {148, 0x30}, {149, 0x29},
		{150, 0x4c}, {151, 0x46}, {152, 0x3d}, {153, 0x40}, {154, 0x3e},
		{155, 0x38}, {156, 0x3d}, {157, 0x2f}, {158, 0x3c}, {159, 0x34},
		{160, 0x2c}, {161, 0x2f}, {162, 0x3c}, {163, 0x35}, {164, 0x2e},
		{165, 0x2f}, {166, 0x49}, {167, 0x41}, {168, 0x36}, {169, 0x39},
		{170, 0x30}, {171, 0x30}, {172, 0x0e}, {173, 0x0d}, {174, 0x28},
		{175, 0x21}, {176, 0x1c}, {177, 0x16}, {178, 0x50}, {179, 0x4a},
		{180, 0x43}, {181, 0x50}, {182, 0x10}, {183, 0x10}, {184, 0x10},
		{185, 0x10}, {200, 0x7d}, {201, 0x14}, {202, 0x32}, {203, 0x2c},
		{204, 0x36}, {205, 0x4c}, {206, 0x43}, {207, 0x2c}, {208, 0x2e},
		{209, 0x36}, {210, 0x30}, {211, 0x6e},
	}
	for _, w := range glrt {
		d.bbpGLRTWrite(w.reg, w.value)
	}

	// G band DC offset compensation.
	dcoc := []struct{ reg, value uint8 }{
		{140, 0x0c}, {141, 0x00}, {142, 0x10}, {143, 0x10}, {144, 0x10},
		{145, 0x10}, {146, 0x08}, {147, 0x40}, {148, 0x04}, {149, 0x04},
		{150, 0x08}, {151, 0x08}, {152, 0x03}, {153, 0x03}, {154, 0x03},
		{155, 0x02}, {156, 0x40}, {157, 0x40}, {158, 0x64}, {159, 0x64},
	}
	for _, w := range dcoc {
		d.bbpDcocWrite(w.reg, w.value)
	}

	d.bbp4MACIfCtrl()
}

// initBBP programs the baseband defaults for the probed chip, then
// applies any per-board overrides from EEPROM. A few families skip the
// override pass entirely.
func (d *Device) initBBP() {
	if d.is305xSoC() {
		d.initBBP305xSoC()
	}

	switch d.rt {
	case RT2860, RT2872, RT2883:
		d.initBBP28xx()
	case RT3070, RT3071, RT3090:
		d.initBBP30xx()
	case RT3290:
		d.initBBP3290()
	case RT3352, RT5350:
		d.initBBP3352()
	case RT3390:
		d.initBBP3390()
	case RT3572:
		d.initBBP3572()
	case RT3593:
		d.initBBP3593()
		return
	case RT3883:
		d.initBBP3883()
		return
	case RT5390, RT5392:
		d.initBBP53xx()
	case RT5592:
		d.initBBP5592()
		return
	case RT6352:
		d.initBBP6352()
	}

	for i := uint16(0); i < eepromBBPSize; i++ {
		word, err := d.eepromReadFromArray(eepromBBPStart, i)
		if err != nil {
			break
		}
		if word != 0xffff && word != 0x0000 {
			reg := getField(word, eepromBBPRegID)
			value := getField(word, eepromBBPValue)
			d.bbpWrite(uint(reg), uint8(value))
		}
	}
}
