package rt2800

import (
	"errors"
	"testing"
)

type regWrite struct {
	offset uint32
	value  uint32
}

// mockBus emulates just enough of the register file for the core to
// run: direct CSRs are a sparse map, and writes to the indirect BBP
// and RFCSR windows are decoded into small register files so reads
// through the windows return what was written.
type mockBus struct {
	kind   BusKind
	mt7620 bool // decode RF_CSR_CFG with the widened register-number field

	regs   map[uint32]uint32
	bbp    [256]uint8
	rf     [1024]uint8
	writes []regWrite
	fw     []byte

	reads map[uint32]int

	// bbpReadHook, when set, can override the value returned by a
	// read through the BBP window.
	bbpReadHook func(reg uint32) (uint8, bool)

	failReads bool
}

func newMockBus(kind BusKind) *mockBus {
	m := &mockBus{
		kind:  kind,
		regs:  make(map[uint32]uint32),
		reads: make(map[uint32]int),
	}
	// Plausible BBP version so bring-up readiness checks pass.
	m.bbp[0] = 0x29
	m.regs[regPBFSysCtrl] = pbfSysCtrlReady
	return m
}

var errMockRead = errors.New("mock read failure")

func (m *mockBus) Read32(offset uint32) (uint32, error) {
	m.reads[offset]++
	if m.failReads {
		return 0, errMockRead
	}
	return m.regs[offset], nil
}

func (m *mockBus) Write32(offset, value uint32) error {
	m.writes = append(m.writes, regWrite{offset, value})

	switch offset {
	case regBBPCSRCfg:
		reg := (value & bbpCSRCfgRegnum) >> 8
		if value&bbpCSRCfgReadControl != 0 {
			result := m.bbp[reg]
			if m.bbpReadHook != nil {
				if v, ok := m.bbpReadHook(reg); ok {
					result = v
				}
			}
			m.regs[offset] = value&^(bbpCSRCfgBusy|bbpCSRCfgValue) | uint32(result)
		} else {
			m.bbp[reg] = uint8(value)
			m.regs[offset] = value &^ bbpCSRCfgBusy
		}

	case regRFCSRCfg:
		var reg uint32
		var write, busy uint32
		if m.mt7620 {
			reg = (value & rfCSRCfgRegnumMT7620) >> 8
			write, busy = rfCSRCfgWriteMT7620, rfCSRCfgBusyMT7620
		} else {
			reg = (value & rfCSRCfgRegnum) >> 8
			write, busy = rfCSRCfgWrite, rfCSRCfgBusy
		}
		if value&write != 0 {
			m.rf[reg] = uint8(value)
			m.regs[offset] = value &^ busy
		} else {
			m.regs[offset] = value&^(busy|0xff) | uint32(m.rf[reg])
		}

	case regH2MMailboxCSR:
		// The emulated MCU consumes commands immediately.
		m.regs[offset] = value &^ h2mMailboxCSROwner

	default:
		m.regs[offset] = value
	}
	return nil
}

func (m *mockBus) ReadBurst(offset uint32, p []byte) error {
	if m.failReads {
		return errMockRead
	}
	for i := range p {
		p[i] = 0
	}
	return nil
}

func (m *mockBus) WriteBurst(offset uint32, p []byte) error {
	return nil
}

func (m *mockBus) WriteFirmware(data []byte) error {
	m.fw = append([]byte(nil), data...)
	return nil
}

func (m *mockBus) Kind() BusKind { return m.kind }

// bbpWrites counts data writes to one BBP register through the
// indirect window.
func (m *mockBus) bbpWrites(reg uint32) int {
	n := 0
	for _, w := range m.writes {
		if w.offset != regBBPCSRCfg || w.value&bbpCSRCfgReadControl != 0 {
			continue
		}
		if (w.value&bbpCSRCfgRegnum)>>8 == reg {
			n++
		}
	}
	return n
}

// testEEPROM builds a minimal valid configuration image.
func testEEPROM(rf ChipRF, txChains, rxChains uint16) []uint16 {
	e := make([]uint16, eepromWords)
	e[0x0000] = uint16(rf) // chip id doubles as RF type on newer parts
	e[0x0002] = 0x2400     // MAC address
	e[0x0003] = 0x1234
	e[0x0004] = 0x5678

	var conf0 uint16
	setField(&conf0, nicConf0RXPath, rxChains)
	setField(&conf0, nicConf0TXPath, txChains)
	setField(&conf0, nicConf0RFType, uint16(rf)&0xf)
	e[0x001a] = conf0

	e[0x001b] = 0      // NIC_CONF1: no external LNA, no BT
	e[0x001d] = 0x0102 // freq offset 2, LED mode 1
	e[0x0022] = 0x0a08 // LNA gain: BG 8, A0 10
	return e
}

func newTestDevice(t *testing.T, rt ChipRT, rev uint16, rf ChipRF, kind BusKind) (*Device, *mockBus) {
	t.Helper()

	m := newMockBus(kind)
	m.regs[regMACCSR0] = uint32(rt)<<16 | uint32(rev)

	d := New(m, Config{EEPROM: testEEPROM(rf, 1, 1)})
	if err := d.Probe(); err != nil {
		t.Fatalf("test device probe: %v", err)
	}
	return d, m
}
