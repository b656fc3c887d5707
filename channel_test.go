package rt2800

import (
	"errors"
	"testing"
)

// TestConfigureChannelDispatch drives one channel switch through every
// RF programming path and checks none of them reject a valid 2.4GHz
// spec.
func TestConfigureChannelDispatch(t *testing.T) {
	cases := []struct {
		name   string
		rt     ChipRT
		rev    uint16
		rf     ChipRF
		kind   BusKind
		mt7620 bool
	}{
		{"rf2820", RT2860, RevRT2860C, RF2820, BusPCI, false},
		{"rf3020", RT3070, 0x0200, RF3020, BusUSB, false},
		{"rf3052", RT3572, 0x0223, RF3052, BusPCI, false},
		{"rf3053", RT3593, 0x0400, RF3053, BusPCI, false},
		{"rf3290", RT3290, 0x3290, RF3290, BusPCI, false},
		{"rf3322", RT3352, 0x0215, RF3322, BusSoC, false},
		{"rf3853", RT3883, 0x0300, RF3853, BusSoC, false},
		{"rf5390", RT5390, RevRT5390F, RF5390, BusUSB, false},
		{"rf5592", RT5592, 0x0221, RF5592, BusUSB, false},
		{"rf7620", RT5390, RevRT5390F, RF7620, BusSoC, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, m := newTestDevice(t, tc.rt, tc.rev, tc.rf, tc.kind)
			m.mt7620 = tc.mt7620
			d.enabled = true

			c := ChannelSpec{
				Channel: 1,
				RF1:     0x100bb3, // legacy serial words, ignored elsewhere
				RF2:     0x1301e1,
				RF3:     0x05a014,
				RF4:     0x001402,
				Power1:  10,
				Power2:  10,
				Power3:  10,
			}
			if err := d.ConfigureChannel(c); err != nil {
				t.Fatalf("ConfigureChannel: %v", err)
			}
			if d.channel != 1 {
				t.Errorf("channel = %d, want 1", d.channel)
			}
		})
	}
}

func TestConfigureChannelUnknownRF(t *testing.T) {
	d, _ := newTestDevice(t, RT3070, 0x0200, RF3020, BusUSB)
	d.enabled = true
	d.rf = ChipRF(0x1234)

	err := d.ConfigureChannel(ChannelSpec{Channel: 1})
	if !errors.Is(err, ErrUnsupportedChip) {
		t.Fatalf("err = %v, want ErrUnsupportedChip", err)
	}
}

func TestConfigureChannelRadioDisabled(t *testing.T) {
	d, _ := newTestDevice(t, RT5390, RevRT5390F, RF5390, BusUSB)

	err := d.ConfigureChannel(ChannelSpec{Channel: 6})
	if !errors.Is(err, ErrRadioDisabled) {
		t.Fatalf("err = %v, want ErrRadioDisabled", err)
	}
}

// TestConfigureChannelBandwidth checks the shared post-dispatch
// programming: the baseband bandwidth field and the band selection
// register.
func TestConfigureChannelBandwidth(t *testing.T) {
	d, m := newTestDevice(t, RT5390, RevRT5390F, RF5390, BusUSB)
	d.enabled = true

	if err := d.ConfigureChannel(ChannelSpec{Channel: 6, HT40: true}); err != nil {
		t.Fatalf("ConfigureChannel ht40: %v", err)
	}
	if m.bbp[4]&bbp4Bandwidth != 0x10 {
		t.Errorf("bbp4 = %#x, want 40MHz bandwidth bits", m.bbp[4])
	}
	if !d.ht40 {
		t.Error("ht40 flag not recorded")
	}
	if band := m.regs[regTXBandCfg]; band&txBandCfgBG == 0 || band&txBandCfgA != 0 {
		t.Errorf("TX_BAND_CFG = %#x, want 2.4GHz selection", band)
	}

	if err := d.ConfigureChannel(ChannelSpec{Channel: 6}); err != nil {
		t.Fatalf("ConfigureChannel 20MHz: %v", err)
	}
	if m.bbp[4]&bbp4Bandwidth != 0 {
		t.Errorf("bbp4 = %#x, want 20MHz bandwidth bits", m.bbp[4])
	}
}
