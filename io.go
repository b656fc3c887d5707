package rt2800

import (
	"encoding/binary"
	"log/slog"
	"time"
)

// regSentinel is what a failed direct read degrades to. Callers that
// cannot tolerate a stale value must check for it explicitly.
const regSentinel uint32 = 0xffffffff

func usleep(us int) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

func msleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// register32 reads a direct CSR. Bus failures degrade to the all-ones
// sentinel so a single bad transaction does not abort the caller.
func (d *Device) register32(offset uint32) uint32 {
	v, err := d.bus.Read32(offset)
	if err != nil {
		d.warn("register read failed",
			slog.Uint64("offset", uint64(offset)),
			slog.String("err", err.Error()))
		return regSentinel
	}
	return v
}

func (d *Device) writeRegister(offset, value uint32) {
	if err := d.bus.Write32(offset, value); err != nil {
		d.warn("register write failed",
			slog.Uint64("offset", uint64(offset)),
			slog.String("err", err.Error()))
	}
}

func (d *Device) registerMultiwrite(offset uint32, words []uint32) {
	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	if err := d.bus.WriteBurst(offset, buf); err != nil {
		d.warn("register burst write failed",
			slog.Uint64("offset", uint64(offset)),
			slog.String("err", err.Error()))
	}
}

// regbusyRead polls offset until the busy field clears. Returns the
// last value read and whether the field cleared within the budget.
// On exhaustion the returned value is the sentinel.
func (d *Device) regbusyRead(offset, busy uint32) (uint32, bool) {
	for i := 0; i < registerBusyCount; i++ {
		reg := d.register32(offset)
		if getField(reg, busy) == 0 {
			return reg, true
		}
		usleep(registerBusyDelay)
	}
	d.logerr("indirect register access failed, hardware stuck busy",
		slog.Uint64("offset", uint64(offset)))
	return regSentinel, false
}

func (d *Device) bbpWrite(word uint, value uint8) {
	if _, ok := d.regbusyRead(regBBPCSRCfg, bbpCSRCfgBusy); ok {
		var reg uint32
		setField(&reg, bbpCSRCfgValue, uint32(value))
		setField(&reg, bbpCSRCfgRegnum, uint32(word))
		setField(&reg, bbpCSRCfgBusy, 1)
		setField(&reg, bbpCSRCfgReadControl, 0)
		setField(&reg, bbpCSRCfgBBPRWMode, 1)
		d.writeRegister(regBBPCSRCfg, reg)
	}
}

// bbpRead returns 0xff when the BBP never becomes available, matching
// the sentinel the hardware would produce.
func (d *Device) bbpRead(word uint) uint8 {
	reg := regSentinel
	if _, ok := d.regbusyRead(regBBPCSRCfg, bbpCSRCfgBusy); ok {
		var req uint32
		setField(&req, bbpCSRCfgRegnum, uint32(word))
		setField(&req, bbpCSRCfgBusy, 1)
		setField(&req, bbpCSRCfgReadControl, 1)
		setField(&req, bbpCSRCfgBBPRWMode, 1)
		d.writeRegister(regBBPCSRCfg, req)

		reg, _ = d.regbusyRead(regBBPCSRCfg, bbpCSRCfgBusy)
	}
	return uint8(getField(reg, bbpCSRCfgValue))
}

// rfWrite shifts a full 24-bit programming word out to a legacy serial
// RF part. The word number only identifies which synthesizer register
// the value encodes; it is not transmitted.
func (d *Device) rfWrite(word uint, value uint32) {
	if _, ok := d.regbusyRead(regRFCSRCfg0, rfCSRCfg0Busy); ok {
		var reg uint32
		setField(&reg, rfCSRCfg0RegIDValue, value)
		setField(&reg, rfCSRCfg0StandbyMode, 0)
		setField(&reg, rfCSRCfg0Sel, 0)
		setField(&reg, rfCSRCfg0Busy, 1)
		d.writeRegister(regRFCSRCfg0, reg)
		d.trace("rf serial write",
			slog.Uint64("word", uint64(word)),
			slog.Uint64("value", uint64(value)))
	}
}

func (d *Device) rfcsrWrite(word uint, value uint8) {
	if d.rt == RT6352 {
		if _, ok := d.regbusyRead(regRFCSRCfg, rfCSRCfgBusyMT7620); ok {
			var reg uint32
			setField(&reg, rfCSRCfgDataMT7620, uint32(value))
			setField(&reg, rfCSRCfgRegnumMT7620, uint32(word))
			setField(&reg, rfCSRCfgWriteMT7620, 1)
			setField(&reg, rfCSRCfgBusyMT7620, 1)
			d.writeRegister(regRFCSRCfg, reg)
		}
		return
	}
	if _, ok := d.regbusyRead(regRFCSRCfg, rfCSRCfgBusy); ok {
		var reg uint32
		setField(&reg, rfCSRCfgData, uint32(value))
		setField(&reg, rfCSRCfgRegnum, uint32(word))
		setField(&reg, rfCSRCfgWrite, 1)
		setField(&reg, rfCSRCfgBusy, 1)
		d.writeRegister(regRFCSRCfg, reg)
	}
}

func (d *Device) rfcsrRead(word uint) uint8 {
	if d.rt == RT6352 {
		reg := regSentinel
		if _, ok := d.regbusyRead(regRFCSRCfg, rfCSRCfgBusyMT7620); ok {
			var req uint32
			setField(&req, rfCSRCfgRegnumMT7620, uint32(word))
			setField(&req, rfCSRCfgWriteMT7620, 0)
			setField(&req, rfCSRCfgBusyMT7620, 1)
			d.writeRegister(regRFCSRCfg, req)

			reg, _ = d.regbusyRead(regRFCSRCfg, rfCSRCfgBusyMT7620)
		}
		return uint8(getField(reg, rfCSRCfgDataMT7620))
	}
	reg := regSentinel
	if _, ok := d.regbusyRead(regRFCSRCfg, rfCSRCfgBusy); ok {
		var req uint32
		setField(&req, rfCSRCfgRegnum, uint32(word))
		setField(&req, rfCSRCfgWrite, 0)
		setField(&req, rfCSRCfgBusy, 1)
		d.writeRegister(regRFCSRCfg, req)

		reg, _ = d.regbusyRead(regRFCSRCfg, rfCSRCfgBusy)
	}
	return uint8(getField(reg, rfCSRCfgData))
}

// One physical RFCSR control register multiplexes several logical
// banks on newer families. The bank selector rides in the high bits
// of the register number.
func (d *Device) rfcsrWriteBank(bank uint8, reg uint, value uint8) {
	d.rfcsrWrite(reg|uint(bank)<<6, value)
}

func (d *Device) rfcsrReadBank(bank uint8, reg uint) uint8 {
	return d.rfcsrRead(reg | uint(bank)<<6)
}

// Channel registers are mirrored in banks 4 and 6.
func (d *Device) rfcsrWriteChanreg(reg uint, value uint8) {
	d.rfcsrWriteBank(4, reg, value)
	d.rfcsrWriteBank(6, reg, value)
}

// DC calibration registers are mirrored in banks 5 and 7.
func (d *Device) rfcsrWriteDccal(reg uint, value uint8) {
	d.rfcsrWriteBank(5, reg, value)
	d.rfcsrWriteBank(7, reg, value)
}

// The glitch-removal and DC-offset tables sit behind BBP 195/196 and
// BBP 158/159 indirection pairs.
func (d *Device) bbpGLRTWrite(reg uint8, value uint8) {
	d.bbpWrite(195, reg)
	d.bbpWrite(196, value)
}

func (d *Device) bbpDcocWrite(reg uint8, value uint8) {
	d.bbpWrite(158, reg)
	d.bbpWrite(159, value)
}

func (d *Device) bbpDcocRead(reg uint8) uint8 {
	d.bbpWrite(158, reg)
	return d.bbpRead(159)
}

// bbpWriteWithRXChain replays a BBP write once per active RX chain,
// selecting the chain through BBP 27 before each write.
func (d *Device) bbpWriteWithRXChain(word uint, value uint8) {
	for chain := uint8(0); chain < d.ant.rxChains; chain++ {
		reg := d.bbpRead(27)
		setField(&reg, bbp27RXChainSel, chain)
		d.bbpWrite(27, reg)

		d.bbpWrite(word, value)
	}
}

// mcuRequest posts a command to the on-chip MCU. This is a
// two-register handshake: the mailbox carries owner/token/args, then a
// write to the host command register fires the command.
func (d *Device) mcuRequest(command, token, arg0, arg1 uint8) {
	d.trace("mcu request", slog.Uint64("cmd", uint64(command)))
	if reg, ok := d.regbusyRead(regH2MMailboxCSR, h2mMailboxCSROwner); ok {
		setField(&reg, h2mMailboxCSROwner, 1)
		setField(&reg, h2mMailboxCSRCmdToken, uint32(token))
		setField(&reg, h2mMailboxCSRArg0, uint32(arg0))
		setField(&reg, h2mMailboxCSRArg1, uint32(arg1))
		d.writeRegister(regH2MMailboxCSR, reg)

		var cmd uint32
		setField(&cmd, hostCmdCSRHostCommand, uint32(command))
		d.writeRegister(regHostCmdCSR, cmd)
	}
}

// waitCSRReady waits for MAC_CSR0 to read back something other than
// all-zeros or all-ones, the sign that the chip is out of reset.
func (d *Device) waitCSRReady() error {
	for i := 0; i < registerBusyCount; i++ {
		reg := d.register32(regMACCSR0)
		if reg != 0 && reg != regSentinel {
			return nil
		}
		usleep(1)
	}
	d.logerr("unstable hardware, MAC_CSR0 never settled")
	return ErrBusyTimeout
}

// waitWPDMAReady waits for both DMA engines to go idle.
func (d *Device) waitWPDMAReady() error {
	var reg uint32
	for i := 0; i < registerBusyCount; i++ {
		reg = d.register32(regWPDMAGloCfg)
		if getField(reg, wpdmaGloCfgTXDMABusy) == 0 &&
			getField(reg, wpdmaGloCfgRXDMABusy) == 0 {
			return nil
		}
		usleep(10)
	}
	d.logerr("WPDMA TX/RX stuck busy", slog.Uint64("reg", uint64(reg)))
	return ErrBusyTimeout
}

func (d *Device) efuseRegs() (ctrl, data0, data1, data2, data3 uint32) {
	if d.rt == RT3290 {
		return regEfuseCtrl3290, regEfuseData03290, regEfuseData13290,
			regEfuseData23290, regEfuseData33290
	}
	return regEfuseCtrl, regEfuseData0, regEfuseData1,
		regEfuseData2, regEfuseData3
}

// efuseDetect reports whether the chip carries its configuration in
// efuse rather than an external EEPROM part.
func (d *Device) efuseDetect() bool {
	ctrl, _, _, _, _ := d.efuseRegs()
	reg := d.register32(ctrl)
	return getField(reg, efuseCtrlPresent) != 0
}

// efuseReadBlock loads one 16-byte efuse block into the EEPROM image
// at word index i. The hardware hands the data back high block first.
func (d *Device) efuseReadBlock(i uint) {
	ctrl, data0, data1, data2, data3 := d.efuseRegs()

	reg := d.register32(ctrl)
	setField(&reg, efuseCtrlAddressIn, uint32(i*2))
	setField(&reg, efuseCtrlMode, 0)
	setField(&reg, efuseCtrlKick, 1)
	d.writeRegister(ctrl, reg)

	d.regbusyRead(ctrl, efuseCtrlKick)

	for n, dataReg := range []uint32{data3, data2, data1, data0} {
		v := d.register32(dataReg)
		idx := i + uint(n)*2
		if int(idx)+1 < len(d.eeprom) {
			d.eeprom[idx] = uint16(v)
			d.eeprom[idx+1] = uint16(v >> 16)
		}
	}
}

func (d *Device) readEEPROMEfuse() {
	for i := uint(0); i < uint(len(d.eeprom)); i += 8 {
		d.efuseReadBlock(i)
	}
}
