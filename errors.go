package rt2800

import "errors"

var (
	// ErrBusyTimeout is returned when a polled hardware busy bit never
	// cleared within the retry budget. Single indirect accesses degrade
	// to the all-ones sentinel instead; sequences that cannot tolerate
	// a stale read fail with this error.
	ErrBusyTimeout = errors.New("hardware busy bit did not clear within retry budget")

	// Firmware image validation failures. Never retried.
	ErrFirmwareLength  = errors.New("firmware image has invalid length")
	ErrFirmwareVersion = errors.New("firmware image version not usable on this chipset")
	ErrFirmwareCRC     = errors.New("firmware chunk CRC mismatch")

	// ErrUnsupportedChip is returned by probe and by the channel
	// dispatcher when the detected RT or RF identity has no known
	// procedure. There is no fallback path.
	ErrUnsupportedChip = errors.New("unsupported chipset")

	// ErrRadioEnabled is returned when bring-up is requested while the
	// radio is already up. Callers must tear down first.
	ErrRadioEnabled = errors.New("radio already enabled")

	// ErrRadioDisabled is returned by operations that require a
	// completed bring-up, such as channel changes.
	ErrRadioDisabled = errors.New("radio not enabled")

	// ErrEEPROMWord is returned when a named EEPROM field resolves to
	// word index 0, which only the chip-id field may legitimately use.
	// Such a lookup indicates the field does not exist on this chipset.
	ErrEEPROMWord = errors.New("EEPROM word not mapped for this chipset")
)
