package rt2800

import "testing"

func TestLinkTunerSuppressesStableVGC(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5390, BusUSB)
	d.enabled = true

	d.ResetTuner()
	base := m.bbpWrites(66)
	if base == 0 {
		t.Fatal("reset did not program BBP 66")
	}

	// RSSI below the boost threshold resolves to the default level
	// the reset already programmed, so no traffic.
	d.LinkTuner(-90)
	if got := m.bbpWrites(66); got != base {
		t.Errorf("weak-signal tune wrote BBP 66: %d writes, want %d", got, base)
	}

	// Strong signal raises the level and must hit the register once.
	d.LinkTuner(-70)
	if got := m.bbpWrites(66); got != base+1 {
		t.Errorf("boost tune: %d writes, want %d", got, base+1)
	}

	// Same RSSI again, same level: suppressed.
	d.LinkTuner(-70)
	if got := m.bbpWrites(66); got != base+1 {
		t.Errorf("repeat tune wrote BBP 66: %d writes, want %d", got, base+1)
	}

	// Dropping back to the default forces one more write.
	d.LinkTuner(-90)
	if got := m.bbpWrites(66); got != base+2 {
		t.Errorf("return to default: %d writes, want %d", got, base+2)
	}
}

func TestLinkTunerFrozenOnRT2860C(t *testing.T) {
	d, m := newTestDevice(t, RT2860, RevRT2860C, RF2820, BusPCI)
	d.enabled = true

	d.ResetTuner()
	base := m.bbpWrites(66)

	// The first RT2860 revision keeps the channel-switch AGC values.
	d.LinkTuner(-50)
	if got := m.bbpWrites(66); got != base {
		t.Errorf("RT2860C tune wrote BBP 66: %d writes, want %d", got, base)
	}
}

// TestTunerIdleWhileRadioDisabled checks the tuner leaves the hardware
// alone before the radio has ever been enabled and after teardown.
func TestTunerIdleWhileRadioDisabled(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5390, BusUSB)

	d.ResetTuner()
	d.LinkTuner(-50)
	if got := m.bbpWrites(66); got != 0 {
		t.Errorf("tuner wrote BBP 66 %d time(s) while radio disabled", got)
	}

	if err := d.EnableRadio(); err != nil {
		t.Fatalf("EnableRadio: %v", err)
	}
	d.DisableRadio()

	base := m.bbpWrites(66)
	d.ResetTuner()
	d.LinkTuner(-50)
	if got := m.bbpWrites(66); got != base {
		t.Errorf("tuner wrote BBP 66 after teardown: %d writes, want %d", got, base)
	}
}

// TestResetTunerAfterRadioCycle re-enables the radio and checks the
// gain comes back to the band default even though the cached level
// already matches it. The BBP init tables park BBP 66 at 0x38, so a
// suppressed reset would leave that value in hardware.
func TestResetTunerAfterRadioCycle(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5390, BusUSB)

	if err := d.EnableRadio(); err != nil {
		t.Fatalf("EnableRadio: %v", err)
	}
	want := d.defaultVGC()
	if m.bbp[66] != want {
		t.Fatalf("after enable BBP66=%#x, want default %#x", m.bbp[66], want)
	}

	d.DisableRadio()
	if err := d.EnableRadio(); err != nil {
		t.Fatalf("re-enable: %v", err)
	}
	if m.bbp[66] != want {
		t.Errorf("after re-enable BBP66=%#x, want default %#x", m.bbp[66], want)
	}
}
