package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// ApplyFlags overlays command-line flags onto cfg (already populated with
// Defaults). A --config/-c flag is special: it is resolved first, so the
// YAML file it names fills in before the rest of the flags' defaults are
// captured -- giving the three-tier precedence defaults < YAML < flags.
func ApplyFlags(cfg *Config) {
	pre := pflag.NewFlagSet("aprsbeacon-preparse", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	configPath := pre.StringP("config", "c", "", "")
	_ = pre.Parse(os.Args[1:])

	if *configPath != "" {
		if err := LoadYAML(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "aprsbeacon: %s\n", err)
			os.Exit(1)
		}
	}

	pflag.StringP("config", "c", *configPath, "Path to a YAML configuration file.")
	pflag.StringVarP(&cfg.MyCall, "mycall", "m", cfg.MyCall, "Source callsign.")
	pflag.Uint8VarP(&cfg.MySSID, "my-ssid", "s", cfg.MySSID, "Source SSID (0-15).")
	pflag.StringVar(&cfg.ToCall, "tocall", cfg.ToCall, "Destination (TOCALL) identifier.")
	pflag.StringVar(&cfg.DigipeaterCall, "digipeater-call", cfg.DigipeaterCall, "Digipeater path callsign, e.g. WIDE1.")
	pflag.Uint8Var(&cfg.DigipeaterSSID, "digipeater-ssid", cfg.DigipeaterSSID, "Digipeater path SSID, e.g. 1 for WIDE1-1.")
	pflag.IntVar(&cfg.BeaconPeriodSeconds, "beacon-period", cfg.BeaconPeriodSeconds, "Seconds between successful beacon transmissions.")
	pflag.IntVar(&cfg.PreambleFlags, "preamble-flags", cfg.PreambleFlags, "Number of leading HDLC flag octets.")
	pflag.IntVar(&cfg.TrailingFlags, "trailing-flags", cfg.TrailingFlags, "Number of trailing HDLC flag octets.")
	pflag.StringVar(&cfg.Comment, "comment", cfg.Comment, "Free-text comment appended to each position report.")
	pflag.StringVarP(&cfg.AudioDevice, "audio-device", "a", cfg.AudioDevice, "PortAudio output device name (not used: the default output device is always opened).")
	pflag.StringVarP(&cfg.GPSDevice, "gps-device", "g", cfg.GPSDevice, `GPS serial device path, or "auto" to discover it via udev.`)
	pflag.IntVar(&cfg.GPSBaud, "gps-baud", cfg.GPSBaud, "GPS serial baud rate.")
	pflag.StringVar(&cfg.PTTGPIOChip, "ptt-gpio-chip", cfg.PTTGPIOChip, "gpiod chip device for PTT keying.")
	pflag.IntVar(&cfg.PTTGPIOOffset, "ptt-gpio-offset", cfg.PTTGPIOOffset, "gpiod line offset for PTT keying.")
	pflag.BoolVar(&cfg.AdvertiseStatus, "advertise-status", cfg.AdvertiseStatus, "Advertise the status endpoint over mDNS/DNS-SD.")

	help := pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aprsbeacon [flags]\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
}
