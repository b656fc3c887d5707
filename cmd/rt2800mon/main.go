// rt2800mon brings an rt2800 USB radio up in monitor mode, hops a
// channel list and exports link statistics for Prometheus.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rt2800 "github.com/wifiuserspace/rt2800up"
	"github.com/wifiuserspace/rt2800up/usbbus"
)

// freqPlan24 holds the 2.4GHz synthesizer programming words shared by
// the RF3xxx and RF5xxx single-band families. Order per entry: N, R, K.
var freqPlan24 = map[uint16][3]uint32{
	1:  {241, 2, 2},
	2:  {241, 2, 7},
	3:  {242, 2, 2},
	4:  {242, 2, 7},
	5:  {243, 2, 2},
	6:  {243, 2, 7},
	7:  {244, 2, 2},
	8:  {244, 2, 7},
	9:  {245, 2, 2},
	10: {245, 2, 7},
	11: {246, 2, 2},
	12: {246, 2, 7},
	13: {247, 2, 2},
	14: {248, 2, 4},
}

// planSupported lists the RF subtypes the built-in frequency plan is
// valid for. Dual-band parts need the full per-band tables and are
// rejected rather than mistuned.
var planSupported = map[rt2800.ChipRF]bool{
	rt2800.RF3020: true,
	rt2800.RF3021: true,
	rt2800.RF3022: true,
	rt2800.RF3290: true,
	rt2800.RF3320: true,
	rt2800.RF3322: true,
	rt2800.RF3070: true,
	rt2800.RF5350: true,
	rt2800.RF5360: true,
	rt2800.RF5362: true,
	rt2800.RF5370: true,
	rt2800.RF5372: true,
	rt2800.RF5390: true,
	rt2800.RF5392: true,
}

func channelSpec(cfg MonitorConfig, ch uint16) rt2800.ChannelSpec {
	words := freqPlan24[ch]
	return rt2800.ChannelSpec{
		Channel: ch,
		RF1:     words[0],
		RF2:     words[1],
		RF3:     words[2],
		Power1:  cfg.TXPower,
		Power2:  cfg.TXPower,
		HT40:    cfg.HT40,
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	case "trace":
		return slog.LevelDebug - 1
	default:
		return slog.LevelInfo
	}
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("rt2800mon failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(cfg MonitorConfig, logger *slog.Logger) error {
	bus, err := usbbus.Open(cfg.VendorID, cfg.ProductID)
	if err != nil {
		return err
	}
	defer bus.Close()

	dev := rt2800.New(bus, rt2800.Config{Logger: logger})
	if err := dev.Probe(); err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	rt, rev, rf := dev.Identity()
	logger.Info("found radio",
		slog.String("rt", fmt.Sprintf("%04x", uint16(rt))),
		slog.String("rev", fmt.Sprintf("%04x", rev)),
		slog.String("rf", fmt.Sprintf("%04x", uint16(rf))))

	if !planSupported[rf] {
		return fmt.Errorf("rf %04x is not covered by the built-in 2.4GHz plan", uint16(rf))
	}

	if cfg.Firmware != "" {
		image, err := os.ReadFile(cfg.Firmware)
		if err != nil {
			return fmt.Errorf("firmware: %w", err)
		}
		if err := dev.ValidateFirmware(image); err != nil {
			return fmt.Errorf("firmware %s: %w", cfg.Firmware, err)
		}
		if err := dev.LoadFirmware(image); err != nil {
			return fmt.Errorf("firmware load: %w", err)
		}
		logger.Info("firmware loaded", slog.Int("bytes", len(image)))
	}

	if err := dev.EnableRadio(); err != nil {
		return fmt.Errorf("radio enable: %w", err)
	}
	defer dev.DisableRadio()

	// Monitor mode: keep everything the PHY can decode, drop only
	// frames with protocol version errors.
	dev.ConfigFilter(rt2800.FilterAllMulti | rt2800.FilterFCSFail |
		rt2800.FilterControl | rt2800.FilterPSPoll)

	metrics := NewMonitorMetrics()
	go func() {
		if err := metrics.Serve(cfg.Listen); err != nil {
			logger.Error("metrics server stopped", slog.String("err", err.Error()))
		}
	}()
	logger.Info("metrics listening", slog.String("addr", cfg.Listen))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	hop := time.NewTicker(time.Duration(cfg.HopSeconds) * time.Second)
	defer hop.Stop()

	var vcoC <-chan time.Time
	if cfg.VCOSeconds > 0 {
		vco := time.NewTicker(time.Duration(cfg.VCOSeconds) * time.Second)
		defer vco.Stop()
		vcoC = vco.C
	}

	tune := func(ch uint16) error {
		if err := dev.ConfigureChannel(channelSpec(cfg, ch)); err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		dev.ResetTuner()
		metrics.channelHops.Inc()
		metrics.currentChannel.Set(float64(ch))
		return nil
	}

	next := 0
	if err := tune(cfg.Channels[next]); err != nil {
		return err
	}

	for {
		select {
		case <-sig:
			logger.Info("shutting down")
			return nil

		case <-hop.C:
			stats := dev.ReadLinkStats()
			metrics.rxCRCErrors.Add(float64(stats.RXCRCErrors))
			metrics.rxPHYErrors.Add(float64(stats.RXPHYErrors))

			if dev.RfkillPoll() {
				metrics.rfkillAsserted.Set(1)
				logger.Warn("hardware kill switch asserted, holding channel")
				continue
			}
			metrics.rfkillAsserted.Set(0)

			next = (next + 1) % len(cfg.Channels)
			if err := tune(cfg.Channels[next]); err != nil {
				return err
			}

		case <-vcoC:
			dev.VCOCalibration()
			metrics.vcoCalibrations.Inc()
		}
	}
}
