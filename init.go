package rt2800

import (
	"fmt"
	"log/slog"
)

// waitBBPRFReady polls MAC_STATUS_CFG until the BBP/RF access
// arbiter goes idle.
func (d *Device) waitBBPRFReady() error {
	for i := 0; i < registerBusyCount; i++ {
		reg := d.register32(regMACStatusCfg)
		if getField(reg, macStatusCfgBBPRFBusy) == 0 {
			return nil
		}
		usleep(registerBusyDelay)
	}
	d.logerr("BBP/RF register access failed, aborting")
	return ErrBusyTimeout
}

// waitBBPReady reactivates the baseband after firmware load and waits
// until BBP register 0 reads back a plausible version value.
func (d *Device) waitBBPReady() error {
	d.writeRegister(regH2MBBPAgent, 0)
	d.writeRegister(regH2MMailboxCSR, 0)
	usleep(1)

	for i := 0; i < registerBusyCount; i++ {
		value := d.bbpRead(0)
		if value != 0xff && value != 0x00 {
			return nil
		}
		usleep(registerBusyDelay)
	}
	d.logerr("BBP register access failed, aborting")
	return ErrBusyTimeout
}

func (d *Device) bbp4MACIfCtrl() {
	value := d.bbpRead(4)
	value |= bbp4MACIfCtrl
	d.bbpWrite(4, value)
}

func (d *Device) initFreqCalibration() {
	d.bbpWrite(142, 1)
	d.bbpWrite(143, 57)
}

func (d *Device) ledOpenDrainEnable() {
	reg := d.register32(regOpt14CSR)
	reg |= 0x00000001
	d.writeRegister(regOpt14CSR, reg)
}

const freqOffsetBound = 0x5f

// freqCalMode1 walks RFCSR 17 towards the EEPROM frequency offset.
// USB parts hand the transition to the MCU; others step one code at a
// time to avoid unlocking the synthesizer.
func (d *Device) freqCalMode1() {
	target := d.freqOffset & rfcsr17Code
	if target > freqOffsetBound {
		target = freqOffsetBound
	}

	rfcsr := d.rfcsrRead(17)
	prev := rfcsr
	setField(&rfcsr, rfcsr17Code, target)
	if rfcsr == prev {
		return
	}

	if d.bus.Kind() == BusUSB {
		d.mcuRequest(mcuFreqOffset, 0xff, target, prev)
		return
	}

	cur := getField(prev, rfcsr17Code)
	for cur != target {
		if cur < target {
			cur++
		} else {
			cur--
		}
		setField(&rfcsr, rfcsr17Code, cur)
		d.rfcsrWrite(17, rfcsr)
		msleep(1)
	}
}

// busInitRegisters performs the transport-specific MAC reset that
// precedes register programming. USB parts get a CSR/BBP soft reset
// with DMA quiesced.
func (d *Device) busInitRegisters() error {
	if d.bus.Kind() != BusUSB {
		return nil
	}
	if err := d.waitCSRReady(); err != nil {
		return err
	}

	reg := d.register32(regPBFSysCtrl)
	d.writeRegister(regPBFSysCtrl, reg&^pbfSysCtrlHostRAM)

	d.writeRegister(regMACSysCtrl, macSysCtrlResetCSR|macSysCtrlResetBBP)
	d.writeRegister(regUSBDMACfg, 0)
	d.writeRegister(regMACSysCtrl, 0)
	return nil
}

// initRegisters programs the MAC defaults. Runs after firmware load
// with DMA stopped.
func (d *Device) initRegisters() error {
	d.disableWPDMA()

	if err := d.busInitRegisters(); err != nil {
		return err
	}

	d.writeRegister(regLegacyRate, 0x0000013f)
	d.writeRegister(regHTBasicRate, 0x00008003)

	d.writeRegister(regMACSysCtrl, 0x00000000)

	reg := d.register32(regBCNTimeCfg)
	setField(&reg, bcnTimeCfgInterval, 1600)
	setField(&reg, bcnTimeCfgTSFTicking, 0)
	setField(&reg, bcnTimeCfgTSFSync, 0)
	setField(&reg, bcnTimeCfgTBTTEnable, 0)
	setField(&reg, bcnTimeCfgBeaconGen, 0)
	setField(&reg, bcnTimeCfgTXTimeCompense, 0)
	d.writeRegister(regBCNTimeCfg, reg)

	// Monitor defaults: everything except version errors reaches the
	// host.
	d.configFilter(FilterAllMulti | FilterFCSFail | FilterControl | FilterPSPoll)

	reg = d.register32(regBkoffSlotCfg)
	setField(&reg, bkoffSlotCfgSlotTime, 9)
	setField(&reg, bkoffSlotCfgCCDelayTime, 2)
	d.writeRegister(regBkoffSlotCfg, reg)

	if d.rt == RT3290 {
		reg = d.register32(regWLANFunCtrl)
		if reg&wlanFunCtrlWLANEn != 0 {
			reg |= wlanFunCtrlPCIeClkReq
			d.writeRegister(regWLANFunCtrl, reg)
		}

		reg = d.register32(regCMBCtrl)
		if reg&cmbCtrlLDO0En == 0 {
			reg |= cmbCtrlLDO0En
			setField(&reg, cmbCtrlLDOBGSel, 3)
			d.writeRegister(regCMBCtrl, reg)
		}

		reg = d.register32(regOSCCtrl)
		setField(&reg, oscCtrlROSCEn, 1)
		setField(&reg, oscCtrlCalReq, 1)
		setField(&reg, oscCtrlRefCycle, 0x27)
		d.writeRegister(regOSCCtrl, reg)

		reg = d.register32(regCoexCfg0)
		setField(&reg, coexCfgAnt, 0x5e)
		d.writeRegister(regCoexCfg0, reg)

		reg = d.register32(regCoexCfg2)
		setField(&reg, coexCfg2BTCoex1, 0x00)
		setField(&reg, coexCfg2BTCoex0, 0x17)
		setField(&reg, coexCfg2WLCoex1, 0x93)
		setField(&reg, coexCfg2WLCoex0, 0x7f)
		d.writeRegister(regCoexCfg2, reg)

		reg = d.register32(regPLLCtrl)
		setField(&reg, pllCtrlControl, 1)
		d.writeRegister(regPLLCtrl, reg)
	}

	switch {
	case d.rt == RT3071 || d.rt == RT3090 || d.rt == RT3290 || d.rt == RT3390:
		if d.rt == RT3290 {
			d.writeRegister(regTXSWCfg0, 0x00000404)
		} else {
			d.writeRegister(regTXSWCfg0, 0x00000400)
		}
		d.writeRegister(regTXSWCfg1, 0x00000000)
		if (d.rt == RT3071 && d.rev < RevRT3071E) ||
			(d.rt == RT3090 && d.rev < RevRT3090E) ||
			(d.rt == RT3390 && d.rev < RevRT3390E) {
			word, _ := d.eepromRead(eepromNICConf1)
			if word&nicConf1DACTest != 0 {
				d.writeRegister(regTXSWCfg2, 0x0000002c)
			} else {
				d.writeRegister(regTXSWCfg2, 0x0000000f)
			}
		} else {
			d.writeRegister(regTXSWCfg2, 0x00000000)
		}
	case d.rt == RT3070:
		d.writeRegister(regTXSWCfg0, 0x00000400)
		if d.rev < RevRT3070F {
			d.writeRegister(regTXSWCfg1, 0x00000000)
			d.writeRegister(regTXSWCfg2, 0x0000002c)
		} else {
			d.writeRegister(regTXSWCfg1, 0x00080606)
			d.writeRegister(regTXSWCfg2, 0x00000000)
		}
	case d.is305xSoC():
		d.writeRegister(regTXSWCfg0, 0x00000400)
		d.writeRegister(regTXSWCfg1, 0x00000000)
		d.writeRegister(regTXSWCfg2, 0x00000030)
	case d.rt == RT3352:
		d.writeRegister(regTXSWCfg0, 0x00000402)
		d.writeRegister(regTXSWCfg1, 0x00080606)
		d.writeRegister(regTXSWCfg2, 0x00000000)
	case d.rt == RT3572:
		d.writeRegister(regTXSWCfg0, 0x00000400)
		d.writeRegister(regTXSWCfg1, 0x00080606)
	case d.rt == RT3593:
		d.writeRegister(regTXSWCfg0, 0x00000402)
		d.writeRegister(regTXSWCfg1, 0x00000000)
		if d.rev < RevRT3593E {
			word, _ := d.eepromRead(eepromNICConf1)
			if word&nicConf1DACTest != 0 {
				d.writeRegister(regTXSWCfg2, 0x0000001f)
			} else {
				d.writeRegister(regTXSWCfg2, 0x0000000f)
			}
		} else {
			d.writeRegister(regTXSWCfg2, 0x00000000)
		}
	case d.rt == RT3883:
		d.writeRegister(regTXSWCfg0, 0x00000402)
		d.writeRegister(regTXSWCfg1, 0x00000000)
		d.writeRegister(regTXSWCfg2, 0x00040000)
		d.writeRegister(regTXTXBFCfg0, 0x8000fc21)
		d.writeRegister(regTXTXBFCfg3, 0x00009c40)
	case d.rt == RT5390 || d.rt == RT5392:
		d.writeRegister(regTXSWCfg0, 0x00000404)
		d.writeRegister(regTXSWCfg1, 0x00080606)
		d.writeRegister(regTXSWCfg2, 0x00000000)
	case d.rt == RT5592:
		d.writeRegister(regTXSWCfg0, 0x00000404)
		d.writeRegister(regTXSWCfg1, 0x00000000)
		d.writeRegister(regTXSWCfg2, 0x00000000)
	case d.rt == RT5350:
		d.writeRegister(regTXSWCfg0, 0x00000404)
	case d.rt == RT6352:
		d.writeRegister(regTXSWCfg0, 0x00000401)
		d.writeRegister(regTXSWCfg1, 0x000c0000)
		d.writeRegister(regTXSWCfg2, 0x00000000)
		d.writeRegister(regMIMOPSCfg, 0x00000002)
		d.writeRegister(regTXPinCfg, 0x00150f0f)
		d.writeRegister(regTXALCVGA3, 0x00000000)
		d.writeRegister(regTX0BBGainAtten, 0x0)
		d.writeRegister(regTX1BBGainAtten, 0x0)
		d.writeRegister(regTX0RFGainAtten, 0x6c6c666c)
		d.writeRegister(regTX1RFGainAtten, 0x6c6c666c)
		d.writeRegister(regTX0RFGainCorr, 0x3630363a)
		d.writeRegister(regTX1RFGainCorr, 0x3630363a)
		reg = d.register32(regTXALCCfg1)
		reg &^= txALCCfg1ROSBusyEn
		d.writeRegister(regTXALCCfg1, reg)
	default:
		d.writeRegister(regTXSWCfg0, 0x00000000)
		d.writeRegister(regTXSWCfg1, 0x00080606)
	}

	reg = d.register32(regTXLinkCfg)
	setField(&reg, txLinkCfgRemoteMFBLifetime, 32)
	setField(&reg, txLinkCfgMFBEnable, 0)
	setField(&reg, txLinkCfgRemoteUMFSEnable, 0)
	setField(&reg, txLinkCfgTXMRQEn, 0)
	setField(&reg, txLinkCfgTXRDGEn, 0)
	setField(&reg, txLinkCfgTXCFAckEn, 1)
	setField(&reg, txLinkCfgRemoteMFB, 0)
	setField(&reg, txLinkCfgRemoteMFS, 0)
	d.writeRegister(regTXLinkCfg, reg)

	reg = d.register32(regTXTimeoutCfg)
	setField(&reg, txTimeoutCfgMPDULifetime, 9)
	setField(&reg, txTimeoutCfgRXAckTimeout, 32)
	setField(&reg, txTimeoutCfgTXOpTimeout, 10)
	d.writeRegister(regTXTimeoutCfg, reg)

	reg = d.register32(regMaxLenCfg)
	setField(&reg, maxLenCfgMaxMPDU, aggregationSize)
	var maxPSDU uint32
	switch {
	case d.bus.Kind() == BusUSB:
		maxPSDU = 3
	case d.rt == RT2883 || (d.rt == RT3070 && d.rev < RevRT3070E):
		maxPSDU = 2
	default:
		maxPSDU = 1
	}
	setField(&reg, maxLenCfgMaxPSDU, maxPSDU)
	setField(&reg, maxLenCfgMinPSDU, 10)
	setField(&reg, maxLenCfgMinMPDU, 10)
	d.writeRegister(regMaxLenCfg, reg)

	reg = d.register32(regLEDCfg)
	setField(&reg, ledCfgOnPeriod, 70)
	setField(&reg, ledCfgOffPeriod, 30)
	setField(&reg, ledCfgSlowBlinkPeriod, 3)
	setField(&reg, ledCfgRLedMode, 3)
	setField(&reg, ledCfgGLedMode, 3)
	setField(&reg, ledCfgYLedMode, 3)
	setField(&reg, ledCfgLedPolar, 1)
	d.writeRegister(regLEDCfg, reg)

	d.writeRegister(regPBFMaxPcnt, 0x1f3fbf9f)

	reg = d.register32(regTXRTYCfg)
	setField(&reg, txRtyCfgShortRtyLimit, 2)
	setField(&reg, txRtyCfgLongRtyLimit, 2)
	setField(&reg, txRtyCfgLongRtyThres, 2000)
	setField(&reg, txRtyCfgNonAggRtyMode, 0)
	setField(&reg, txRtyCfgAggRtyMode, 0)
	setField(&reg, txRtyCfgTXAutoFBEn, 1)
	d.writeRegister(regTXRTYCfg, reg)

	reg = d.register32(regAutoRspCfg)
	setField(&reg, autoRspCfgAutoresponder, 1)
	setField(&reg, autoRspCfgBACAckPolicy, 1)
	setField(&reg, autoRspCfgCTS40MMode, 1)
	setField(&reg, autoRspCfgCTS40MRef, 0)
	setField(&reg, autoRspCfgARPreamble, 0)
	setField(&reg, autoRspCfgDualCTSEn, 0)
	setField(&reg, autoRspCfgAckCTSPSMBit, 0)
	d.writeRegister(regAutoRspCfg, reg)

	d.writeProtCfg(regCCKProtCfg, 3, 0, true, protCfgTXAllowCCK|
		protCfgTXAllowOFDM|protCfgTXAllowMM20|protCfgTXAllowGF20)
	d.writeProtCfg(regOFDMProtCfg, 3, 0, true, protCfgTXAllowCCK|
		protCfgTXAllowOFDM|protCfgTXAllowMM20|protCfgTXAllowGF20)
	d.writeProtCfg(regMM20ProtCfg, 0x4004, 1, false,
		protCfgTXAllowOFDM|protCfgTXAllowMM20|protCfgTXAllowGF20)
	d.writeProtCfg(regMM40ProtCfg, 0x4084, 1, false, protCfgTXAllowOFDM|
		protCfgTXAllowMM20|protCfgTXAllowMM40|protCfgTXAllowGF20|protCfgTXAllowGF40)
	d.writeProtCfg(regGF20ProtCfg, 0x4004, 1, false,
		protCfgTXAllowOFDM|protCfgTXAllowMM20|protCfgTXAllowGF20)
	d.writeProtCfg(regGF40ProtCfg, 0x4084, 1, false, protCfgTXAllowOFDM|
		protCfgTXAllowMM20|protCfgTXAllowMM40|protCfgTXAllowGF20|protCfgTXAllowGF40)

	if d.bus.Kind() == BusUSB {
		d.writeRegister(regPBFCfg, 0xf40006)

		reg = d.register32(regWPDMAGloCfg)
		setField(&reg, wpdmaGloCfgEnableTXDMA, 0)
		setField(&reg, wpdmaGloCfgTXDMABusy, 0)
		setField(&reg, wpdmaGloCfgEnableRXDMA, 0)
		setField(&reg, wpdmaGloCfgRXDMABusy, 0)
		setField(&reg, wpdmaGloCfgWPDMABurstSize, 3)
		setField(&reg, wpdmaGloCfgTXWritebackDone, 0)
		setField(&reg, wpdmaGloCfgBigEndian, 0)
		setField(&reg, wpdmaGloCfgRXHdrScatter, 0)
		setField(&reg, wpdmaGloCfgHdrSegLen, 0)
		d.writeRegister(regWPDMAGloCfg, reg)
	}

	// The vendor driver also sets the reserved truncation enable bit.
	reg = d.register32(regTXOPCtrlCfg)
	setField(&reg, txopCtrlCfgTimeoutTrunEn, 1)
	setField(&reg, txopCtrlCfgACTrunEn, 1)
	setField(&reg, txopCtrlCfgTXRateGrpTrunEn, 1)
	setField(&reg, txopCtrlCfgUserModeTrunEn, 1)
	setField(&reg, txopCtrlCfgMIMOPSTrunEn, 1)
	setField(&reg, txopCtrlCfgReservedTrunEn, 1)
	setField(&reg, txopCtrlCfgLSIGTxopEn, 0)
	setField(&reg, txopCtrlCfgExtCCAEn, 0)
	setField(&reg, txopCtrlCfgExtCCADly, 88)
	setField(&reg, txopCtrlCfgExtCWMin, 0)
	d.writeRegister(regTXOPCtrlCfg, reg)

	if d.rt == RT5592 {
		d.writeRegister(regTXOPHldrET, 0x00000082)
	} else {
		d.writeRegister(regTXOPHldrET, 0x00000002)
	}

	if d.rt == RT3883 {
		d.writeRegister(regTXFbkCfg3S0, 0x12111008)
		d.writeRegister(regTXFbkCfg3S1, 0x16151413)
	}

	reg = d.register32(regTXRTSCfg)
	setField(&reg, txRtsCfgAutoRtsRetryLimit, 7)
	setField(&reg, txRtsCfgRtsThres, maxRTSThreshold)
	setField(&reg, txRtsCfgRtsFbkEn, 1)
	d.writeRegister(regTXRTSCfg, reg)

	d.writeRegister(regExpAckTime, 0x002400ca)

	// The vendor driver uses the OFDM SIFS of 16 for CCK as well; 10
	// breaks 11g with CTS protection.
	reg = d.register32(regXIFSTimeCfg)
	setField(&reg, xifsTimeCfgCCKMSifs, 16)
	setField(&reg, xifsTimeCfgOFDMSifs, 16)
	setField(&reg, xifsTimeCfgOFDMXifs, 4)
	setField(&reg, xifsTimeCfgEIFS, 314)
	setField(&reg, xifsTimeCfgBBRxendEn, 1)
	d.writeRegister(regXIFSTimeCfg, reg)

	d.writeRegister(regPwrPinCfg, 0x00000003)

	// The ASIC keeps garbage after boot; clear the key tables.
	for i := uint32(0); i < 4; i++ {
		d.writeRegister(regSharedKeyModeBase+4*i, 0)
	}
	for i := uint32(0); i < wcidEntryCount; i++ {
		d.clearWCID(i)
		d.writeRegister(regMACWCIDAttrBase+4*i, 0)
		d.writeRegister(regMACIVEIVBase+8*i, 0)
	}

	if d.bus.Kind() == BusUSB {
		reg = d.register32(regUSCycCnt)
		setField(&reg, usCycCntClockCycle, 30)
		d.writeRegister(regUSCycCnt, reg)
	} else if d.bus.Kind() == BusPCI {
		reg = d.register32(regUSCycCnt)
		setField(&reg, usCycCntClockCycle, 125)
		d.writeRegister(regUSCycCnt, reg)
	}

	// MCS fallback ladders. Each nibble is the fallback index of one
	// MCS, so the tables cover the registers completely.
	d.writeRegister(regHTFbkCfg0, 0x65432100)
	d.writeRegister(regHTFbkCfg1, 0xedcba988)
	d.writeRegister(regLGFbkCfg0, 0xedcba988)
	reg = d.register32(regLGFbkCfg1)
	reg = reg&0xffff0000 | 0x2100
	d.writeRegister(regLGFbkCfg1, reg)

	// Do not force the BA window size here; the TXWI carries it.
	reg = d.register32(regAMPDUBAWin)
	setField(&reg, ampduBAWinForceEnable, 0)
	setField(&reg, ampduBAWinForceWinsize, 0)
	d.writeRegister(regAMPDUBAWin, reg)

	// Error counters clear on read.
	d.register32(regRXStaCnt0)
	d.register32(regRXStaCnt1)
	d.register32(regRXStaCnt2)
	d.register32(regTXStaCnt0)
	d.register32(regTXStaCnt1)
	d.register32(regTXStaCnt2)

	// Pre-TBTT interrupt leadtime of 6ms.
	reg = d.register32(regINTTimerCfg)
	setField(&reg, intTimerCfgPreTBTTTimer, 6<<4)
	d.writeRegister(regINTTimerCfg, reg)

	reg = d.register32(regCHTimeCfg)
	setField(&reg, chTimeCfgEIFSBusy, 1)
	setField(&reg, chTimeCfgNavBusy, 1)
	setField(&reg, chTimeCfgRXBusy, 1)
	setField(&reg, chTimeCfgTXBusy, 1)
	setField(&reg, chTimeCfgTmrEn, 1)
	d.writeRegister(regCHTimeCfg, reg)

	return nil
}

// writeProtCfg programs one protection config register. All six share
// the same layout; short NAV protection is always on.
func (d *Device) writeProtCfg(offset uint32, rate, ctrl uint32, rtsEn bool, txAllow uint32) {
	reg := d.register32(offset)
	setField(&reg, protCfgRate, rate)
	setField(&reg, protCfgCtrl, ctrl)
	reg |= protCfgNavShort
	const allowAll = protCfgTXAllowCCK | protCfgTXAllowOFDM | protCfgTXAllowMM20 |
		protCfgTXAllowMM40 | protCfgTXAllowGF20 | protCfgTXAllowGF40
	reg = reg&^allowAll | txAllow
	if rtsEn {
		reg |= protCfgRTSThresEn
	} else {
		reg &^= protCfgRTSThresEn
	}
	d.writeRegister(offset, reg)
}

// clearWCID invalidates one WCID table entry (all-ones MAC).
func (d *Device) clearWCID(idx uint32) {
	d.registerMultiwrite(regMACWCIDBase+8*idx, []uint32{0xffffffff, 0xffffffff})
}

// enableRadio runs the full bring-up: DMA idle check, MAC defaults,
// firmware boot signal, BBP and RFCSR initialization, then TX/RX
// enable. Caller holds the device lock.
func (d *Device) enableRadio() error {
	if err := d.waitWPDMAReady(); err != nil {
		return err
	}
	if err := d.initRegisters(); err != nil {
		return err
	}
	if err := d.waitBBPRFReady(); err != nil {
		return err
	}

	// Signal the firmware that boot is complete.
	d.writeRegister(regH2MBBPAgent, 0)
	d.writeRegister(regH2MMailboxCSR, 0)
	if d.bus.Kind() == BusUSB {
		d.writeRegister(regH2MIntSrc, 0)
	}
	d.mcuRequest(mcuBootSignal, 0, 0, 0)
	msleep(1)

	if err := d.waitBBPReady(); err != nil {
		return err
	}

	d.initBBP()
	d.initRFCSR()

	if d.bus.Kind() == BusUSB &&
		(d.rt == RT3070 || d.rt == RT3071 || d.rt == RT3572) {
		usleep(200)
		d.mcuRequest(mcuCurrent, 0, 0, 0)
		usleep(10)
	}

	reg := d.register32(regMACSysCtrl)
	setField(&reg, macSysCtrlEnableTX, 1)
	setField(&reg, macSysCtrlEnableRX, 0)
	d.writeRegister(regMACSysCtrl, reg)

	usleep(50)

	reg = d.register32(regWPDMAGloCfg)
	setField(&reg, wpdmaGloCfgEnableTXDMA, 1)
	setField(&reg, wpdmaGloCfgEnableRXDMA, 1)
	setField(&reg, wpdmaGloCfgTXWritebackDone, 1)
	d.writeRegister(regWPDMAGloCfg, reg)

	reg = d.register32(regMACSysCtrl)
	setField(&reg, macSysCtrlEnableTX, 1)
	setField(&reg, macSysCtrlEnableRX, 1)
	d.writeRegister(regMACSysCtrl, reg)

	// Hand the LED configuration words to the MCU.
	word, _ := d.eepromRead(eepromLEDAGConf)
	d.mcuRequest(mcuLEDAGConf, 0xff, uint8(word), uint8(word>>8))
	word, _ = d.eepromRead(eepromLEDActConf)
	d.mcuRequest(mcuLEDActConf, 0xff, uint8(word), uint8(word>>8))
	word, _ = d.eepromRead(eepromLEDPolarity)
	d.mcuRequest(mcuLEDPolarity, 0xff, uint8(word), uint8(word>>8))

	d.info("radio enabled",
		slog.String("rt", fmt.Sprintf("%04x", uint16(d.rt))),
		slog.String("rf", fmt.Sprintf("%04x", uint16(d.rf))))
	return nil
}
