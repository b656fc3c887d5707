package rt2800

import (
	"errors"
	"testing"
)

func TestProbeIdentity(t *testing.T) {
	d, _ := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	rt, rev, rf := d.Identity()
	if rt != RT5390 || rev != RevRT5390F || rf != RF5370 {
		t.Errorf("identity = %04x/%04x/%04x", uint16(rt), rev, uint16(rf))
	}
}

func TestProbeUnknownChipset(t *testing.T) {
	m := newMockBus(BusUSB)
	m.regs[regMACCSR0] = 0xabcd0100

	d := New(m, Config{EEPROM: testEEPROM(RF5370, 1, 1)})
	if err := d.Probe(); !errors.Is(err, ErrUnsupportedChip) {
		t.Fatalf("got %v, want ErrUnsupportedChip", err)
	}
}

func TestProbeSoCIdentityOverride(t *testing.T) {
	// The RT5390 identity on a SoC bus is really an MT7620.
	m := newMockBus(BusSoC)
	m.regs[regMACCSR0] = uint32(RT5390)<<16 | 0x0500

	d := New(m, Config{EEPROM: testEEPROM(RF7620, 2, 2)})
	if err := d.Probe(); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if rt, _, _ := d.Identity(); rt != RT6352 {
		t.Errorf("rt = %04x, want RT6352", uint16(rt))
	}
}

func TestRadioLifecycleGuards(t *testing.T) {
	d, _ := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	if d.Enabled() {
		t.Fatal("radio enabled before bring-up")
	}
	if err := d.EnableRadio(); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if !d.Enabled() {
		t.Fatal("radio not enabled after bring-up")
	}

	if err := d.EnableRadio(); !errors.Is(err, ErrRadioEnabled) {
		t.Fatalf("second enable: got %v, want ErrRadioEnabled", err)
	}

	d.DisableRadio()
	if d.Enabled() {
		t.Fatal("radio still enabled after teardown")
	}

	// Teardown of a disabled radio is a no-op.
	before := len(dMockWrites(d))
	d.DisableRadio()
	if after := len(dMockWrites(d)); after != before {
		t.Errorf("disabled teardown touched hardware: %d new writes", after-before)
	}

	if err := d.EnableRadio(); err != nil {
		t.Fatalf("re-enable: %v", err)
	}
}

func dMockWrites(d *Device) []regWrite {
	return d.bus.(*mockBus).writes
}

func TestMACAddr(t *testing.T) {
	d, _ := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	want := [6]byte{0x00, 0x24, 0x34, 0x12, 0x78, 0x56}
	if got := d.MACAddr(); got != want {
		t.Errorf("mac = %x, want %x", got, want)
	}
}

func TestConfigFilterMonitorDefaults(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)

	d.ConfigFilter(FilterFCSFail | FilterPLCPFail | FilterAllMulti |
		FilterControl | FilterPSPoll)

	reg := m.regs[regRXFilterCfg]
	if getField(reg, rxFilterDropCRCError) != 0 {
		t.Error("CRC failures dropped in monitor config")
	}
	if getField(reg, rxFilterDropNotToMe) != 0 || getField(reg, rxFilterDropNotMyBSSD) != 0 {
		t.Error("addressing filters enabled; monitor mode must keep foreign frames")
	}
	if getField(reg, rxFilterDropVerError) != 1 {
		t.Error("version-error frames not dropped")
	}

	// Everything off again: error frames get dropped, addressing
	// still passes.
	d.ConfigFilter(0)
	reg = m.regs[regRXFilterCfg]
	if getField(reg, rxFilterDropCRCError) != 1 || getField(reg, rxFilterDropPHYError) != 1 {
		t.Error("error frames kept with all flags clear")
	}
	if getField(reg, rxFilterDropNotToMe) != 0 {
		t.Error("addressing filter enabled with all flags clear")
	}
}

func TestReadLinkStats(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5370, BusUSB)
	m.regs[regRXStaCnt0] = 0x00050007

	stats := d.ReadLinkStats()
	if stats.RXCRCErrors != 7 || stats.RXPHYErrors != 5 {
		t.Errorf("stats = %+v", stats)
	}
}
