package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MonitorConfig is the YAML configuration for rt2800mon.
type MonitorConfig struct {
	// USB device selection. ProductID zero matches any product under
	// the vendor ID.
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`

	// Firmware is the path to the vendor firmware image (rt2870.bin
	// or equivalent for the chip family).
	Firmware string `yaml:"firmware"`

	// Channels to hop across, in order. 2.4GHz channels 1-14.
	Channels []uint16 `yaml:"channels"`
	HT40     bool     `yaml:"ht40"`

	// TXPower is the per-chain power level programmed on each hop.
	TXPower int8 `yaml:"tx_power"`

	// HopSeconds is the dwell time per channel.
	HopSeconds int `yaml:"hop_seconds"`

	// VCOSeconds is the VCO recalibration cadence. Zero disables it.
	VCOSeconds int `yaml:"vco_seconds"`

	// Listen is the Prometheus metrics listen address.
	Listen string `yaml:"listen"`

	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given:
// any Ralink device, the three non-overlapping 2.4GHz channels, and
// metrics on the conventional port.
func DefaultConfig() MonitorConfig {
	return MonitorConfig{
		VendorID:   0x148f,
		Channels:   []uint16{1, 6, 11},
		TXPower:    10,
		HopSeconds: 5,
		VCOSeconds: 90,
		Listen:     ":9273",
		LogLevel:   "info",
	}
}

// LoadConfig reads and validates a YAML configuration file. Fields
// absent from the file keep their defaults.
func LoadConfig(path string) (MonitorConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if len(cfg.Channels) == 0 {
		return cfg, fmt.Errorf("config: empty channel list")
	}
	for _, ch := range cfg.Channels {
		if ch < 1 || ch > 14 {
			return cfg, fmt.Errorf("config: channel %d outside the supported 2.4GHz plan", ch)
		}
	}
	if cfg.HopSeconds <= 0 {
		return cfg, fmt.Errorf("config: hop_seconds must be positive")
	}
	return cfg, nil
}
