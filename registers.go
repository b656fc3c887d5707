package rt2800

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// getField extracts a bitfield described by a contiguous mask.
func getField[T constraints.Unsigned](reg, mask T) T {
	return (reg & mask) >> bits.TrailingZeros64(uint64(mask))
}

// setField writes value into the bitfield described by mask.
func setField[T constraints.Unsigned](reg *T, mask, value T) {
	shift := bits.TrailingZeros64(uint64(mask))
	*reg = (*reg &^ mask) | ((value << shift) & mask)
}

// Busy-poll budget shared by every indirect register access. These are
// hardware timing contracts, not tunables.
const (
	registerBusyCount = 100
	registerBusyDelay = 100 // microseconds
)

// Host-MCU and system control registers.
const (
	regCMBCtrl      = 0x0020
	regOSCCtrl      = 0x0038
	regCoexCfg0     = 0x0040
	regCoexCfg2     = 0x0048
	regPLLCtrl      = 0x0050
	regWLANFunCtrl  = 0x0080
	regAUXCtrl      = 0x010c
	regOpt14CSR     = 0x0114
	regIntSourceCSR = 0x0200
	regWPDMAGloCfg  = 0x0208
	regGPIOCtrl     = 0x0228
	regUSBDMACfg    = 0x02a0
	regUSCycCnt     = 0x02a4
	regPBFSysCtrl   = 0x0400
	regHostCmdCSR   = 0x0404
	regPBFCfg       = 0x0408
	regPBFMaxPcnt   = 0x040c
	regRFCSRCfg     = 0x0500
	regRFControl0   = 0x0518
	regRFBypass0    = 0x051c
	regRFControl2   = 0x0528
	regRFBypass2    = 0x052c
	regEfuseCtrl    = 0x0580
	regEfuseData0   = 0x0590
	regEfuseData1   = 0x0594
	regEfuseData2   = 0x0598
	regEfuseData3   = 0x059c
	regLDOCfg0      = 0x05d4
	regGPIOSwitch   = 0x05dc
	regPwrPinCfg    = 0x0030
)

// RT3290 keeps its WLAN block at low offsets.
const (
	regMACCSR03290    = 0x0000
	regEfuseCtrl3290  = 0x0024
	regEfuseData03290 = 0x0028
	regEfuseData13290 = 0x002c
	regEfuseData23290 = 0x0030
	regEfuseData33290 = 0x0034
)

// MAC registers.
const (
	regMACCSR0      = 0x1000
	regMACSysCtrl   = 0x1004
	regMACAddrDW0   = 0x1008
	regMACAddrDW1   = 0x100c
	regMACBSSIDDW0  = 0x1010
	regMACBSSIDDW1  = 0x1014
	regMaxLenCfg    = 0x1018
	regBBPCSRCfg    = 0x101c
	regRFCSRCfg0    = 0x1020
	regRFCSRCfg1    = 0x1024
	regLEDCfg       = 0x102c
	regAMPDUBAWin   = 0x1040
	regXIFSTimeCfg  = 0x1100
	regBkoffSlotCfg = 0x1104
	regCHTimeCfg    = 0x110c
	regBCNTimeCfg   = 0x1114
	regTBTTSyncCfg  = 0x1118
	regINTTimerCfg  = 0x1128
	regCHIdleSta    = 0x1130
	regCHBusySta    = 0x1134
	regCHBusyStaSec = 0x1138
	regMACStatusCfg = 0x1200
	regPwrMgtCfg    = 0x1204
	regAutoWakeCfg  = 0x1208
	regMIMOPSCfg    = 0x1210
	regEdcaAC0Cfg   = 0x1300
	regTXPinCfg     = 0x1328
	regTXBandCfg    = 0x132c
	regTXSWCfg0     = 0x1330
	regTXSWCfg1     = 0x1334
	regTXSWCfg2     = 0x1338
	regTXOPCtrlCfg  = 0x1340
	regTXRTSCfg     = 0x1344
	regTXTimeoutCfg = 0x1348
	regTXRTYCfg     = 0x134c
	regTXLinkCfg    = 0x1350
	regHTFbkCfg0    = 0x1354
	regHTFbkCfg1    = 0x1358
	regLGFbkCfg0    = 0x135c
	regLGFbkCfg1    = 0x1360
	regCCKProtCfg   = 0x1364
	regOFDMProtCfg  = 0x1368
	regMM20ProtCfg  = 0x136c
	regMM40ProtCfg  = 0x1370
	regGF20ProtCfg  = 0x1374
	regGF40ProtCfg  = 0x1378
	regExpAckTime   = 0x1380
	regTXTXBFCfg0   = 0x138c
	regTXTXBFCfg3   = 0x13ac
	regTXFbkCfg3S0  = 0x13c4
	regTXFbkCfg3S1  = 0x13c8
	regRXFilterCfg  = 0x1400
	regAutoRspCfg   = 0x1404
	regLegacyRate   = 0x1408
	regHTBasicRate  = 0x140c
	regTXOPHldrET   = 0x1608
	regRXStaCnt0    = 0x1700
	regRXStaCnt1    = 0x1704
	regRXStaCnt2    = 0x1708
	regTXStaCnt0    = 0x170c
	regTXStaCnt1    = 0x1710
	regTXStaCnt2    = 0x1714
)

// RT6352 (MT7620) TX power closed-loop registers. These overlay the
// beamforming block offsets; the chip repurposes the range.
const (
	regTXALCCfg1       = 0x13b4
	regTX0RFGainCorr   = 0x13a0
	regTX1RFGainCorr   = 0x13a4
	regTX0RFGainAtten  = 0x13a8
	regTX1RFGainAtten  = 0x13ac
	regTX0BBGainAtten  = 0x13c0
	regTX1BBGainAtten  = 0x13c4
	regTXALCVGA3       = 0x13c8
	txALCCfg1ROSBusyEn uint32 = 0x00000010
)

// Key and station tables, cleared during bring-up.
const (
	regMACWCIDBase       = 0x1800
	regPairwiseKeyBase   = 0x4000
	regMACIVEIVBase      = 0x6000
	regMACWCIDAttrBase   = 0x6800
	regSharedKeyBase     = 0x6c00
	regSharedKeyModeBase = 0x7000
	wcidEntryCount       = 256
)

// MCU mailbox registers.
const (
	regH2MMailboxCSR    = 0x7010
	regH2MMailboxCID    = 0x7014
	regH2MMailboxStatus = 0x701c
	regH2MIntSrc        = 0x7024
	regH2MBBPAgent      = 0x7028
)

// MAC_CSR0 fields.
const (
	macCSR0Revision uint32 = 0x0000ffff
	macCSR0Chipset  uint32 = 0xffff0000
)

// MAC_SYS_CTRL fields.
const (
	macSysCtrlResetCSR uint32 = 0x00000001
	macSysCtrlResetBBP uint32 = 0x00000002
	macSysCtrlEnableTX uint32 = 0x00000004
	macSysCtrlEnableRX uint32 = 0x00000008
)

// WPDMA_GLO_CFG fields.
const (
	wpdmaGloCfgEnableTXDMA     uint32 = 0x00000001
	wpdmaGloCfgTXDMABusy       uint32 = 0x00000002
	wpdmaGloCfgEnableRXDMA     uint32 = 0x00000004
	wpdmaGloCfgRXDMABusy       uint32 = 0x00000008
	wpdmaGloCfgWPDMABurstSize  uint32 = 0x00000030
	wpdmaGloCfgTXWritebackDone uint32 = 0x00000040
	wpdmaGloCfgBigEndian       uint32 = 0x00000080
)

// BBP_CSR_CFG fields.
const (
	bbpCSRCfgValue       uint32 = 0x000000ff
	bbpCSRCfgRegnum      uint32 = 0x0000ff00
	bbpCSRCfgBusy        uint32 = 0x00010000
	bbpCSRCfgReadControl uint32 = 0x00020000
	bbpCSRCfgBBPParDur   uint32 = 0x00040000
	bbpCSRCfgBBPRWMode   uint32 = 0x00080000
)

// RF_CSR_CFG fields. RT6352 (MT7620) widens the register number so the
// bank selector fits, and moves the handshake bits up.
const (
	rfCSRCfgData   uint32 = 0x000000ff
	rfCSRCfgRegnum uint32 = 0x00003f00
	rfCSRCfgWrite  uint32 = 0x00010000
	rfCSRCfgBusy   uint32 = 0x00020000

	// Legacy serial RF interface used by the oldest RF parts. The
	// 24-bit value shifted out encodes the whole register, so there
	// is no separate register-number field.
	rfCSRCfg0RegIDValue  uint32 = 0x00ffffff
	rfCSRCfg0StandbyMode uint32 = 0x20000000
	rfCSRCfg0Sel         uint32 = 0x40000000
	rfCSRCfg0Busy        uint32 = 0x80000000

	rfCSRCfgDataMT7620   uint32 = 0x000000ff
	rfCSRCfgRegnumMT7620 uint32 = 0x0003ff00
	rfCSRCfgWriteMT7620  uint32 = 0x00100000
	rfCSRCfgBusyMT7620   uint32 = 0x80000000
)

// H2M_MAILBOX_CSR fields.
const (
	h2mMailboxCSRArg0     uint32 = 0x000000ff
	h2mMailboxCSRArg1     uint32 = 0x0000ff00
	h2mMailboxCSRCmdToken uint32 = 0x00ff0000
	h2mMailboxCSROwner    uint32 = 0xff000000
)

// HOST_CMD_CSR fields.
const hostCmdCSRHostCommand uint32 = 0x000000ff

// PBF_SYS_CTRL fields.
const pbfSysCtrlReady uint32 = 0x00000080

// AUX_CTRL fields.
const (
	auxCtrlForcePCIeClk uint32 = 0x00000400
	auxCtrlWakePCIeEn   uint32 = 0x00000800
)

// EFUSE_CTRL fields.
const (
	efuseCtrlMode      uint32 = 0x000000c0
	efuseCtrlAddressIn uint32 = 0x03fe0000
	efuseCtrlKick      uint32 = 0x40000000
	efuseCtrlPresent   uint32 = 0x80000000
)

// WLAN_FUN_CTRL fields (RT3290).
const (
	wlanFunCtrlWLANEn       uint32 = 0x00000001
	wlanFunCtrlWLANClkEn    uint32 = 0x00000002
	wlanFunCtrlWLANReset    uint32 = 0x00000008
	wlanFunCtrlPCIeClkReq   uint32 = 0x00000100
	wlanFunCtrlFrcWLAntSet  uint32 = 0x00002000
	wlanFunCtrlGPIOOutOEAll uint32 = 0xff000000
)

// CMB_CTRL fields (RT3290).
const (
	cmbCtrlXtalRdy uint32 = 0x00400000
	cmbCtrlPLLLd   uint32 = 0x00800000
)

// TX_PIN_CFG fields.
const (
	txPinCfgPAPEG0En  uint32 = 0x00000001
	txPinCfgPAPEA0En  uint32 = 0x00000002
	txPinCfgPAPEG1En  uint32 = 0x00000004
	txPinCfgPAPEA1En  uint32 = 0x00000008
	txPinCfgLNAPEG0En uint32 = 0x00000010
	txPinCfgLNAPEA0En uint32 = 0x00000020
	txPinCfgLNAPEG1En uint32 = 0x00000040
	txPinCfgLNAPEA1En uint32 = 0x00000080
	txPinCfgRFTREn    uint32 = 0x00000100
	txPinCfgTRSWEn    uint32 = 0x00000200
	txPinCfgRFRXEn    uint32 = 0x00000400
	txPinCfgPAPEG2En  uint32 = 0x00010000
	txPinCfgPAPEA2En  uint32 = 0x00020000
	txPinCfgLNAPEG2En uint32 = 0x00040000
	txPinCfgLNAPEA2En uint32 = 0x00080000

	// Mask that clears every PA PE enable in one AND.
	txPinCfgPAPEDisable uint32 = 0xfcfffff0
)

// TX_BAND_CFG fields.
const (
	txBandCfgHT40Minus uint32 = 0x00000001
	txBandCfgA         uint32 = 0x00000002
	txBandCfgBG        uint32 = 0x00000004
)

// GPIO_CTRL fields used for antenna selection and band switching.
const (
	gpioCtrlDir3 uint32 = 0x00000008
	gpioCtrlDir4 uint32 = 0x00000010
	gpioCtrlDir6 uint32 = 0x00000040
	gpioCtrlDir7 uint32 = 0x00000080
	gpioCtrlDir8 uint32 = 0x00000100
	gpioCtrlVal2 uint32 = 0x00040000
	gpioCtrlVal3 uint32 = 0x00080000
	gpioCtrlVal4 uint32 = 0x00100000
	gpioCtrlVal6 uint32 = 0x00400000
	gpioCtrlVal7 uint32 = 0x00800000
	gpioCtrlVal8 uint32 = 0x01000000
)

// LDO_CFG0 fields.
const (
	ldoCfg0BGSel      uint32 = 0x03000000
	ldoCfg0CoreVLevel uint32 = 0x1c000000
)

// GPIO_SWITCH pin enables.
const (
	gpioSwitch4 uint32 = 0x00000010
	gpioSwitch5 uint32 = 0x00000020
	gpioSwitch7 uint32 = 0x00000080
)

// RX_FILTER_CFG fields.
const (
	rxFilterDropCRCError  uint32 = 0x00000001
	rxFilterDropPHYError  uint32 = 0x00000002
	rxFilterDropNotToMe   uint32 = 0x00000004
	rxFilterDropNotMyBSSD uint32 = 0x00000008
	rxFilterDropVerError  uint32 = 0x00000010
	rxFilterDropMulticast uint32 = 0x00000020
	rxFilterDropBroadcast uint32 = 0x00000040
	rxFilterDropDuplicate uint32 = 0x00000080
	rxFilterDropCFEndAck  uint32 = 0x00000100
	rxFilterDropCFEnd     uint32 = 0x00000200
	rxFilterDropAck       uint32 = 0x00000400
	rxFilterDropCTS       uint32 = 0x00000800
	rxFilterDropRTS       uint32 = 0x00001000
	rxFilterDropPSPoll    uint32 = 0x00002000
	rxFilterDropBA        uint32 = 0x00004000
	rxFilterDropBAR       uint32 = 0x00008000
	rxFilterDropCntl      uint32 = 0x00010000
)

// RX_STA_CNT0 fields.
const (
	rxStaCnt0CRCError uint32 = 0x0000ffff
	rxStaCnt0PHYError uint32 = 0xffff0000
)

// BCN_TIME_CFG fields.
const (
	bcnTimeCfgInterval       uint32 = 0x0000ffff
	bcnTimeCfgTSFTicking     uint32 = 0x00010000
	bcnTimeCfgTSFSync        uint32 = 0x00060000
	bcnTimeCfgTBTTEnable     uint32 = 0x00080000
	bcnTimeCfgBeaconGen      uint32 = 0x00100000
	bcnTimeCfgTXTimeCompense uint32 = 0xf0000000
)

// BKOFF_SLOT_CFG fields.
const (
	bkoffSlotCfgSlotTime    uint32 = 0x000000ff
	bkoffSlotCfgCCDelayTime uint32 = 0x0000ff00
)

// CMB_CTRL LDO fields (RT3290).
const (
	cmbCtrlLDOBGSel uint32 = 0x00030000
	cmbCtrlLDO0En   uint32 = 0x00040000
)

// OSC_CTRL fields (RT3290).
const (
	oscCtrlRefCycle uint32 = 0x00001fff
	oscCtrlCalReq   uint32 = 0x40000000
	oscCtrlROSCEn   uint32 = 0x80000000
)

// COEX_CFG0 / COEX_CFG2 fields (RT3290).
const (
	coexCfgAnt        uint32 = 0xff000000
	coexCfg2WLCoex0   uint32 = 0x000000ff
	coexCfg2WLCoex1   uint32 = 0x0000ff00
	coexCfg2BTCoex0   uint32 = 0x00ff0000
	coexCfg2BTCoex1   uint32 = 0xff000000
	pllCtrlControl    uint32 = 0x00003fff
	pbfSysCtrlHostRAM uint32 = 0x00002000
)

// TX_LINK_CFG fields.
const (
	txLinkCfgRemoteMFBLifetime uint32 = 0x000000ff
	txLinkCfgMFBEnable         uint32 = 0x00000100
	txLinkCfgRemoteUMFSEnable  uint32 = 0x00000200
	txLinkCfgTXMRQEn           uint32 = 0x00000400
	txLinkCfgTXRDGEn           uint32 = 0x00000800
	txLinkCfgTXCFAckEn         uint32 = 0x00001000
	txLinkCfgRemoteMFB         uint32 = 0x00ff0000
	txLinkCfgRemoteMFS         uint32 = 0xff000000
)

// TX_TIMEOUT_CFG fields.
const (
	txTimeoutCfgMPDULifetime uint32 = 0x000000f0
	txTimeoutCfgRXAckTimeout uint32 = 0x0000ff00
	txTimeoutCfgTXOpTimeout  uint32 = 0x00ff0000
)

// MAX_LEN_CFG fields.
const (
	maxLenCfgMaxMPDU uint32 = 0x00000fff
	maxLenCfgMaxPSDU uint32 = 0x00003000
	maxLenCfgMinPSDU uint32 = 0x0000c000
	maxLenCfgMinMPDU uint32 = 0x000f0000

	aggregationSize = 3840
)

// LED_CFG fields.
const (
	ledCfgOnPeriod        uint32 = 0x000000ff
	ledCfgOffPeriod       uint32 = 0x0000ff00
	ledCfgSlowBlinkPeriod uint32 = 0x003f0000
	ledCfgRLedMode        uint32 = 0x03000000
	ledCfgGLedMode        uint32 = 0x0c000000
	ledCfgYLedMode        uint32 = 0x30000000
	ledCfgLedPolar        uint32 = 0x40000000
)

// TX_RTY_CFG fields.
const (
	txRtyCfgShortRtyLimit uint32 = 0x000000ff
	txRtyCfgLongRtyLimit  uint32 = 0x0000ff00
	txRtyCfgLongRtyThres  uint32 = 0x0fff0000
	txRtyCfgNonAggRtyMode uint32 = 0x10000000
	txRtyCfgAggRtyMode    uint32 = 0x20000000
	txRtyCfgTXAutoFBEn    uint32 = 0x40000000
)

// AUTO_RSP_CFG fields.
const (
	autoRspCfgAutoresponder uint32 = 0x00000001
	autoRspCfgBACAckPolicy  uint32 = 0x00000002
	autoRspCfgCTS40MMode    uint32 = 0x00000004
	autoRspCfgCTS40MRef     uint32 = 0x00000008
	autoRspCfgARPreamble    uint32 = 0x00000010
	autoRspCfgDualCTSEn     uint32 = 0x00000040
	autoRspCfgAckCTSPSMBit  uint32 = 0x00000080
)

// Protection config fields, shared by the CCK/OFDM/MM/GF registers.
const (
	protCfgRate        uint32 = 0x0000ffff
	protCfgCtrl        uint32 = 0x00030000
	protCfgNavShort    uint32 = 0x00040000
	protCfgTXAllowCCK  uint32 = 0x00100000
	protCfgTXAllowOFDM uint32 = 0x00200000
	protCfgTXAllowMM20 uint32 = 0x00400000
	protCfgTXAllowMM40 uint32 = 0x00800000
	protCfgTXAllowGF20 uint32 = 0x01000000
	protCfgTXAllowGF40 uint32 = 0x02000000
	protCfgRTSThresEn  uint32 = 0x04000000
)

// WPDMA_GLO_CFG scatter fields used by the USB bring-up path.
const (
	wpdmaGloCfgRXHdrScatter uint32 = 0x00000100
	wpdmaGloCfgHdrSegLen    uint32 = 0xffff0000
)

// TXOP_CTRL_CFG fields.
const (
	txopCtrlCfgTimeoutTrunEn   uint32 = 0x00000001
	txopCtrlCfgACTrunEn        uint32 = 0x00000002
	txopCtrlCfgTXRateGrpTrunEn uint32 = 0x00000004
	txopCtrlCfgUserModeTrunEn  uint32 = 0x00000008
	txopCtrlCfgMIMOPSTrunEn    uint32 = 0x00000010
	txopCtrlCfgReservedTrunEn  uint32 = 0x00000020
	txopCtrlCfgLSIGTxopEn      uint32 = 0x00000040
	txopCtrlCfgExtCCAEn        uint32 = 0x00000080
	txopCtrlCfgExtCCADly       uint32 = 0x0000ff00
	txopCtrlCfgExtCWMin        uint32 = 0x000f0000
)

// TX_RTS_CFG fields.
const (
	txRtsCfgAutoRtsRetryLimit uint32 = 0x000000ff
	txRtsCfgRtsThres          uint32 = 0x00ffff00
	txRtsCfgRtsFbkEn          uint32 = 0x01000000

	maxRTSThreshold = 2353
)

// XIFS_TIME_CFG fields.
const (
	xifsTimeCfgCCKMSifs     uint32 = 0x000000ff
	xifsTimeCfgOFDMSifs     uint32 = 0x0000ff00
	xifsTimeCfgOFDMXifs     uint32 = 0x000f0000
	xifsTimeCfgEIFS         uint32 = 0x1ff00000
	xifsTimeCfgBBRxendEn    uint32 = 0x20000000
	usCycCntClockCycle      uint32 = 0x000000ff
	intTimerCfgPreTBTTTimer uint32 = 0x0000ffff
)

// CH_TIME_CFG fields.
const (
	chTimeCfgTmrEn    uint32 = 0x00000001
	chTimeCfgTXBusy   uint32 = 0x00000002
	chTimeCfgRXBusy   uint32 = 0x00000004
	chTimeCfgNavBusy  uint32 = 0x00000008
	chTimeCfgEIFSBusy uint32 = 0x00000010
)

// AMPDU_BA_WINSIZE fields.
const (
	ampduBAWinForceWinsize uint32 = 0x0000003f
	ampduBAWinForceEnable  uint32 = 0x00000040
)

// MAC_STATUS_CFG fields.
const macStatusCfgBBPRFBusy uint32 = 0x00000003

// Baseband register fields (8-bit space).
const (
	bbp3HT40Minus     uint8 = 0x20
	bbp3ADCModeSwitch uint8 = 0x40
	bbp3ADCInitMode   uint8 = 0x80
	bbp4Bandwidth     uint8 = 0x18
	bbp4MACIfCtrl     uint8 = 0x40
	bbp27RXChainSel   uint8 = 0x60
	bbp47TSSIADC6     uint8 = 0x80
	bbp49UpdateFlag   uint8 = 0x01
	bbp138RXADC1      uint8 = 0x02
	bbp138TXDAC1      uint8 = 0x20
	bbp105MLDFor2St   uint8 = 0x04
	bbp109TX0Power    uint8 = 0x0f
	bbp109TX1Power    uint8 = 0xf0
	bbp110TX2Power    uint8 = 0x0f
	bbp152RXDefault   uint8 = 0x80
	bbp254Bit7        uint8 = 0x80
)

// Legacy 32-bit RF programming word fields, serialized through
// RF_CSR_CFG0 on RF2820/2850/2720/2750.
const (
	rf2AntennaRX2 uint32 = 0x00000040
	rf2AntennaTX1 uint32 = 0x00004000
	rf2AntennaRX1 uint32 = 0x00020000

	rf3TXPowerA7DBmBoost uint32 = 0x00000200
	rf3TXPowerG          uint32 = 0x00003e00
	rf3TXPowerA          uint32 = 0x00003c00

	rf4TXPowerA7DBmBoost uint32 = 0x00000040
	rf4TXPowerG          uint32 = 0x000007c0
	rf4TXPowerA          uint32 = 0x00000780
	rf4FreqOffset        uint32 = 0x001f8000
	rf4HT40              uint32 = 0x00200000
)

// RFCSR register fields (8-bit space).
const (
	rfcsr1RFBlockEn uint8 = 0x01
	rfcsr1PLLPD     uint8 = 0x02
	rfcsr1RX0PD     uint8 = 0x04
	rfcsr1TX0PD     uint8 = 0x08
	rfcsr1RX1PD     uint8 = 0x10
	rfcsr1TX1PD     uint8 = 0x20
	rfcsr1RX2PD     uint8 = 0x40
	rfcsr1TX2PD     uint8 = 0x80

	// MT7620 reuses low RFCSR numbers for chain enables.
	rfcsr1TX2EnMT7620 uint8 = 0x02
	rfcsr2RX2EnMT7620 uint8 = 0x02
	rfcsr2TX2EnMT7620 uint8 = 0x20

	rfcsr2RescalBP  uint8 = 0x40
	rfcsr2RescalEn  uint8 = 0x80
	rfcsr3K         uint8 = 0x0f
	rfcsr3Bit1      uint8 = 0x02
	rfcsr3Bit2      uint8 = 0x04
	rfcsr3Bit3      uint8 = 0x08
	rfcsr3Bit4      uint8 = 0x10
	rfcsr3Bit5      uint8 = 0x20
	rfcsr3PA1Bias   uint8 = 0x20
	rfcsr3PA2Bias   uint8 = 0x40
	rfcsr3VCOCalEn  uint8 = 0x80
	rfcsr4VCOCalEn  uint8 = 0x80
	rfcsr5R1        uint8 = 0x0c
	rfcsr6R1        uint8 = 0x03
	rfcsr6R2        uint8 = 0x40
	rfcsr6TXDiv     uint8 = 0x0c
	rfcsr6VCOIC     uint8 = 0xc0
	rfcsr7RFTuning  uint8 = 0x01
	rfcsr7Bit2      uint8 = 0x04
	rfcsr7Bit3      uint8 = 0x08
	rfcsr7Bit4      uint8 = 0x10
	rfcsr7Bits67    uint8 = 0xc0
	rfcsr7Bits      uint8 = 0xe0
	rfcsr9K         uint8 = 0x0f
	rfcsr9N         uint8 = 0x10
	rfcsr9Mod       uint8 = 0x80
	rfcsr11R        uint8 = 0x03
	rfcsr11PLLMod   uint8 = 0x0c
	rfcsr11PLLIdoh  uint8 = 0x40
	rfcsr11Mod      uint8 = 0xc0
	rfcsr12TXPower  uint8 = 0x1f
	rfcsr12DRAmp    uint8 = 0xe0
	rfcsr13TXPower  uint8 = 0x1f
	rfcsr13DR0      uint8 = 0xe0
	rfcsr13RDivMT7620 uint8 = 0x03

	rfcsr15TXLO2En    uint8 = 0x08
	rfcsr16TXBB       uint8 = 0x1f
	rfcsr16TXMixer    uint8 = 0x07
	rfcsr16PLLFreqSel uint8 = 0x0f
	rfcsr16SDMMode    uint8 = 0xe0
	rfcsr17TXMixer    uint8 = 0x07
	rfcsr17TXLO1En    uint8 = 0x08
	rfcsr17R          uint8 = 0x20
	rfcsr17Code       uint8 = 0x7f
	rfcsr18XOTuneBP   uint8 = 0x40
	rfcsr19RXLO1En    uint8 = 0x02
	rfcsr19K          uint8 = 0x03
	rfcsr20RXLO1En    uint8 = 0x08
	rfcsr21RXLO2En    uint8 = 0x08
	rfcsr21Bit1       uint8 = 0x01
	rfcsr21Bit8       uint8 = 0x80
	rfcsr22Loopback   uint8 = 0x01
	rfcsr22FreqplanD  uint8 = 0x07
	rfcsr23FreqOff    uint8 = 0x7f
	rfcsr24TXAGCFC  uint8 = 0x3f
	rfcsr24TXH20M   uint8 = 0x40
	rfcsr24TXCalib  uint8 = 0x7f
	rfcsr27R1       uint8 = 0x03
	rfcsr27R2       uint8 = 0x04
	rfcsr27R3       uint8 = 0x08
	rfcsr27R4       uint8 = 0x10
	rfcsr28Ch11HT40 uint8 = 0x04
	rfcsr29RSSIGain uint8 = 0x03
	rfcsr30TXH20M   uint8 = 0x02
	rfcsr30RXH20M   uint8 = 0x04
	rfcsr30RXVCM    uint8 = 0x18
	rfcsr30RFCal    uint8 = 0x80
	rfcsr31RXAGCFC  uint8 = 0x3f
	rfcsr31RXH20M   uint8 = 0x40
	rfcsr31RXCalib  uint8 = 0x7f
	rfcsr32TXAGCFC  uint8 = 0xf8
	rfcsr34TX0ExtPA uint8 = 0x04
	rfcsr34TX1ExtPA uint8 = 0x08
	rfcsr36RFBS     uint8 = 0x80
	rfcsr38RXLO1En  uint8 = 0x20
	rfcsr39RXLO2En  uint8 = 0x80
	rfcsr39RXDiv    uint8 = 0x40
	rfcsr41Bit1     uint8 = 0x01
	rfcsr41Bit4     uint8 = 0x08
	rfcsr42Bit1       uint8 = 0x01
	rfcsr42Bit4       uint8 = 0x08
	rfcsr42TX2En      uint8 = 0x40
	rfcsr49TX         uint8 = 0x3f
	rfcsr49EP         uint8 = 0xc0
	rfcsr49TXDiv      uint8 = 0x02
	rfcsr49TXLO1IC    uint8 = 0x1c
	rfcsr50TX         uint8 = 0x3f
	rfcsr50TX0ExtPA   uint8 = 0x02
	rfcsr50TXLO2En    uint8 = 0x10
	rfcsr50TX1ExtPA   uint8 = 0x10
	rfcsr50TXLO1En    uint8 = 0x20
	rfcsr50EP         uint8 = 0xc0
	rfcsr51Bits01     uint8 = 0x03
	rfcsr51Bits24     uint8 = 0x1c
	rfcsr51Bits57     uint8 = 0xe0
	rfcsr53TXPower    uint8 = 0x3f
	rfcsr54TXPower    uint8 = 0x3f
	rfcsr55TXPower    uint8 = 0x3f
	rfcsr57DrvCC      uint8 = 0xfc

	// RF3322 places the HT40 TX/RX bits differently.
	rf3322Rfcsr30TXH20M uint8 = 0x01
	rf3322Rfcsr30RXH20M uint8 = 0x02
)

// MCU mailbox commands.
const (
	mcuSleep       uint8 = 0x30
	mcuWakeup      uint8 = 0x31
	mcuRadioOff    uint8 = 0x35
	mcuCurrent     uint8 = 0x36
	mcuLED         uint8 = 0x50
	mcuLEDStrength uint8 = 0x51
	mcuLEDAGConf   uint8 = 0x52
	mcuLEDActConf  uint8 = 0x53
	mcuLEDPolarity uint8 = 0x54
	mcuBootSignal  uint8 = 0x72
	mcuFreqOffset  uint8 = 0x74
	mcuBandSelect  uint8 = 0x91
)

// ChipRT identifies the MAC/baseband generation read from MAC_CSR0.
type ChipRT uint16

const (
	RT2860 ChipRT = 0x2860
	RT2872 ChipRT = 0x2872
	RT2883 ChipRT = 0x2883
	RT3070 ChipRT = 0x3070
	RT3071 ChipRT = 0x3071
	RT3090 ChipRT = 0x3090
	RT3290 ChipRT = 0x3290
	RT3352 ChipRT = 0x3352
	RT3390 ChipRT = 0x3390
	RT3572 ChipRT = 0x3572
	RT3593 ChipRT = 0x3593
	RT3883 ChipRT = 0x3883
	RT5350 ChipRT = 0x5350
	RT5390 ChipRT = 0x5390
	RT5392 ChipRT = 0x5392
	RT5592 ChipRT = 0x5592
	RT6352 ChipRT = 0x6352
)

// Chip revisions that gate init-table quirks.
const (
	RevRT2860C uint16 = 0x0100
	RevRT2860D uint16 = 0x0101
	RevRT3070E uint16 = 0x0211
	RevRT3070F uint16 = 0x0201
	RevRT3071E uint16 = 0x0211
	RevRT3090E uint16 = 0x0211
	RevRT3390E uint16 = 0x0211
	RevRT3593E uint16 = 0x0211
	RevRT5592C uint16 = 0x0221
	RevRT5390F uint16 = 0x0502
	RevRT5390R uint16 = 0x1502
	RevRT5370G uint16 = 0x0503
)

// ChipRF identifies the RF synthesizer subtype. For older chips it
// comes from an EEPROM field; newer families store it in the chip-id
// word or imply it from the RT identity.
type ChipRF uint16

const (
	RF2820 ChipRF = 0x0001
	RF2850 ChipRF = 0x0002
	RF2720 ChipRF = 0x0003
	RF2750 ChipRF = 0x0004
	RF3020 ChipRF = 0x0005
	RF2020 ChipRF = 0x0006
	RF3021 ChipRF = 0x0007
	RF3022 ChipRF = 0x0008
	RF3052 ChipRF = 0x0009
	RF3320 ChipRF = 0x000b
	RF3322 ChipRF = 0x000c
	RF3053 ChipRF = 0x000d
	RF5592 ChipRF = 0x000f
	RF3290 ChipRF = 0x3290
	RF5350 ChipRF = 0x5350
	RF5360 ChipRF = 0x5360
	RF5362 ChipRF = 0x5362
	RF5370 ChipRF = 0x5370
	RF5372 ChipRF = 0x5372
	RF5390 ChipRF = 0x5390
	RF5392 ChipRF = 0x5392
	RF3070 ChipRF = 0x3070
	RF3853 ChipRF = 0x3853
	RF7620 ChipRF = 0x7620
)
