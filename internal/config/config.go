// Package config loads beacon configuration from built-in defaults, an
// optional YAML file, and command-line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime-tunable parameter of the beacon.
type Config struct {
	MyCall string `yaml:"mycall"`
	MySSID byte   `yaml:"my_ssid"`

	ToCall string `yaml:"tocall"`

	DigipeaterCall string `yaml:"digipeater_call"`
	DigipeaterSSID byte   `yaml:"digipeater_ssid"`

	BeaconPeriodSeconds int `yaml:"beacon_period_seconds"`

	PreambleFlags int `yaml:"preamble_flags"`
	TrailingFlags int `yaml:"trailing_flags"`

	SymbolTable byte   `yaml:"symbol_table"`
	SymbolCode  byte   `yaml:"symbol_code"`
	Comment     string `yaml:"comment"`

	AudioDevice string `yaml:"audio_device"`

	GPSDevice string `yaml:"gps_device"`
	GPSBaud   int    `yaml:"gps_baud"`

	PTTGPIOChip   string `yaml:"ptt_gpio_chip"`
	PTTGPIOOffset int    `yaml:"ptt_gpio_offset"`

	AdvertiseStatus bool `yaml:"advertise_status"`
}

// Defaults returns the built-in configuration, matching the reference
// hardware's bring-up values.
func Defaults() Config {
	return Config{
		MyCall:              "N0CALL",
		MySSID:              1,
		ToCall:              "APZ",
		DigipeaterCall:      "WIDE1",
		DigipeaterSSID:      1,
		BeaconPeriodSeconds: 30 * 60,
		PreambleFlags:       20,
		TrailingFlags:       2,
		SymbolTable:         '/',
		SymbolCode:          'n',
		AudioDevice:         "default",
		GPSDevice:           "/dev/ttyAMA0",
		GPSBaud:             38400,
		PTTGPIOChip:         "/dev/gpiochip0",
		PTTGPIOOffset:       17,
		AdvertiseStatus:     true,
	}
}

// LoadYAML reads path and overlays the fields present in it onto cfg. A
// missing or unreadable file is an error; callers with no file to load
// skip the call.
func LoadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
