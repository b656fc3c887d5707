package rt2800

import "testing"

func TestRegbusyReadBounded(t *testing.T) {
	m := newMockBus(BusUSB)
	const offset = 0x0730
	const busy = 0x80000000
	m.regs[offset] = busy

	d := New(m, Config{})
	v, ok := d.regbusyRead(offset, busy)
	if ok {
		t.Fatal("stuck-busy register reported ready")
	}
	if v != regSentinel {
		t.Errorf("exhausted poll returned %08x, want sentinel", v)
	}
	if n := m.reads[offset]; n != registerBusyCount {
		t.Errorf("polled %d times, want exactly %d", n, registerBusyCount)
	}
}

func TestRegbusyReadClears(t *testing.T) {
	m := newMockBus(BusUSB)
	const offset = 0x0730
	m.regs[offset] = 0x1234

	d := New(m, Config{})
	v, ok := d.regbusyRead(offset, 0x80000000)
	if !ok || v != 0x1234 {
		t.Fatalf("got %08x ok=%v, want 1234 true", v, ok)
	}
	if n := m.reads[offset]; n != 1 {
		t.Errorf("idle register polled %d times", n)
	}
}

func TestRegister32SentinelOnError(t *testing.T) {
	m := newMockBus(BusUSB)
	m.failReads = true

	d := New(m, Config{})
	if v := d.register32(regMACCSR0); v != regSentinel {
		t.Errorf("failed read returned %08x, want sentinel", v)
	}
}

func TestIndirectRoundTrip(t *testing.T) {
	m := newMockBus(BusUSB)
	d := New(m, Config{})

	d.bbpWrite(66, 0x38)
	if got := d.bbpRead(66); got != 0x38 {
		t.Errorf("bbp 66 read back %02x, want 38", got)
	}

	d.rfcsrWrite(17, 0x25)
	if got := d.rfcsrRead(17); got != 0x25 {
		t.Errorf("rfcsr 17 read back %02x, want 25", got)
	}
}

func TestRFCSRBankEncoding(t *testing.T) {
	m := newMockBus(BusUSB)
	m.mt7620 = true
	d := New(m, Config{})
	d.rt = RT6352

	d.rfcsrWriteBank(5, 7, 0x5a)
	if got := m.rf[5<<6|7]; got != 0x5a {
		t.Errorf("bank 5 reg 7 holds %02x, want 5a", got)
	}
	if got := d.rfcsrReadBank(5, 7); got != 0x5a {
		t.Errorf("bank read returned %02x, want 5a", got)
	}

	// Chanreg mirrors banks 4 and 6.
	d.rfcsrWriteChanreg(12, 0x77)
	if m.rf[4<<6|12] != 0x77 || m.rf[6<<6|12] != 0x77 {
		t.Errorf("chanreg write not mirrored: bank4=%02x bank6=%02x",
			m.rf[4<<6|12], m.rf[6<<6|12])
	}
}
