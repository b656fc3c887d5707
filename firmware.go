package rt2800

import (
	"fmt"
	"log/slog"
	"math/bits"
)

// Firmware images come in chip-specific base units: USB parts and the
// RT3290 take 4KiB chunks, PCI and SoC parts take 8KiB. A file may
// concatenate several chunks to carry multiple chip-variant builds.
const (
	firmwareChunkUSB = 4096
	firmwareChunkPCI = 8192
)

// crcCCITT is the reflected CRC-16/CCITT (poly 0x8408) the vendor
// firmware trailer uses. The legacy driver bit-reversed every byte in
// and out of the straight CCITT algorithm; running the reflected
// variant directly produces the same result.
func crcCCITT(crc uint16, data []byte) uint16 {
	for _, c := range data {
		crc ^= uint16(c)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0x8408
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// checkFirmwareCRC validates one chunk. The trailing two bytes hold
// the expected CRC big-endian; they are excluded from the computation
// and the computed value is byte-swapped before comparison.
func checkFirmwareCRC(chunk []byte) bool {
	fwCRC := uint16(chunk[len(chunk)-2])<<8 | uint16(chunk[len(chunk)-1])
	crc := crcCCITT(^uint16(0), chunk[:len(chunk)-2])
	return fwCRC == bits.ReverseBytes16(crc)
}

func (d *Device) firmwareChunkLen() int {
	if d.bus.Kind() == BusUSB || d.rt == RT3290 {
		return firmwareChunkUSB
	}
	return firmwareChunkPCI
}

// ValidateFirmware checks image length, sub-image expectations and the
// per-chunk CRC trailer. It never touches hardware.
func (d *Device) ValidateFirmware(data []byte) error {
	fwLen := d.firmwareChunkLen()

	if len(data) == 0 || len(data)%fwLen != 0 {
		return fmt.Errorf("%w: %d bytes, want multiple of %d", ErrFirmwareLength, len(data), fwLen)
	}

	// Most USB chipsets need one of the upper sub-images appended to
	// the base image; a single-chunk file cannot carry it.
	if d.bus.Kind() == BusUSB &&
		d.rt != RT2860 && d.rt != RT2872 && d.rt != RT3070 &&
		len(data)/fwLen == 1 {
		return fmt.Errorf("%w: single sub-image file for chipset %04x", ErrFirmwareVersion, uint16(d.rt))
	}

	// Multi-chunk files validate as independent images.
	for offset := 0; offset < len(data); offset += fwLen {
		if !checkFirmwareCRC(data[offset : offset+fwLen]) {
			return fmt.Errorf("%w: chunk at offset %d", ErrFirmwareCRC, offset)
		}
	}

	return nil
}

// LoadFirmware transfers a validated image into the device and brings
// the on-chip MCU out of reset. DMA is left disabled; only radio
// enable may turn it on.
func (d *Device) LoadFirmware(data []byte) error {
	if d.rt == RT3290 {
		if err := d.enableWLAN3290(); err != nil {
			return fmt.Errorf("rt3290 wlan enable: %w", err)
		}
	}

	// Without this the device can fall back asleep mid-load and hang
	// the next interface bring-up.
	d.writeRegister(regAutoWakeCfg, 0)

	if err := d.waitCSRReady(); err != nil {
		return fmt.Errorf("firmware load: %w", err)
	}
	d.debug("hardware stable, loading firmware", slog.Int("len", len(data)))

	if d.bus.Kind() == BusPCI {
		switch d.rt {
		case RT3290, RT3572, RT5390, RT5392:
			reg := d.register32(regAUXCtrl)
			setField(&reg, auxCtrlForcePCIeClk, 1)
			setField(&reg, auxCtrlWakePCIeEn, 1)
			d.writeRegister(regAUXCtrl, reg)
		}
		d.writeRegister(regPwrPinCfg, 0x00000002)
	}

	d.disableWPDMA()

	if err := d.bus.WriteFirmware(data); err != nil {
		return fmt.Errorf("firmware transfer: %w", err)
	}

	ready := false
	for i := 0; i < registerBusyCount; i++ {
		reg := d.register32(regPBFSysCtrl)
		if getField(reg, pbfSysCtrlReady) != 0 {
			ready = true
			break
		}
		usleep(1)
	}
	if !ready {
		d.logerr("PBF system register not ready after firmware load")
		return ErrBusyTimeout
	}

	// DMA must stay down until radio enable.
	d.disableWPDMA()

	d.writeRegister(regH2MBBPAgent, 0)
	d.writeRegister(regH2MMailboxCSR, 0)
	if d.bus.Kind() == BusUSB {
		d.writeRegister(regH2MIntSrc, 0)
		d.mcuRequest(mcuBootSignal, 0, 0, 0)
	}
	usleep(1)

	return nil
}

// enableWLAN3290 powers the RT3290 WLAN function block and waits for
// its PLL and crystal to settle, retrying the reset dance a few times
// if they do not.
func (d *Device) enableWLAN3290() error {
	reg := d.register32(regWLANFunCtrl)
	setField(&reg, wlanFunCtrlGPIOOutOEAll, 0xff)
	setField(&reg, wlanFunCtrlFrcWLAntSet, 1)
	setField(&reg, wlanFunCtrlWLANClkEn, 0)
	setField(&reg, wlanFunCtrlWLANEn, 1)
	d.writeRegister(regWLANFunCtrl, reg)

	usleep(registerBusyDelay)

	count := 0
	for {
		var i int
		for i = 0; i < registerBusyCount; i++ {
			reg = d.register32(regCMBCtrl)
			if getField(reg, cmbCtrlPLLLd) != 0 &&
				getField(reg, cmbCtrlXtalRdy) != 0 {
				break
			}
			usleep(registerBusyDelay)
		}

		if i >= registerBusyCount {
			if count >= 10 {
				return ErrBusyTimeout
			}
			d.writeRegister(0x58, 0x018)
			usleep(registerBusyDelay)
			d.writeRegister(0x58, 0x418)
			usleep(registerBusyDelay)
			d.writeRegister(0x58, 0x618)
			usleep(registerBusyDelay)
			count++
		} else {
			count = 0
		}

		reg = d.register32(regWLANFunCtrl)
		setField(&reg, wlanFunCtrlPCIeClkReq, 0)
		setField(&reg, wlanFunCtrlWLANClkEn, 1)
		setField(&reg, wlanFunCtrlWLANReset, 1)
		d.writeRegister(regWLANFunCtrl, reg)
		usleep(10)
		setField(&reg, wlanFunCtrlWLANReset, 0)
		d.writeRegister(regWLANFunCtrl, reg)
		usleep(10)
		d.writeRegister(regIntSourceCSR, 0x7fffffff)

		if count == 0 {
			return nil
		}
	}
}
