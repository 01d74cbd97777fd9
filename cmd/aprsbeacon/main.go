// Command aprsbeacon runs an unattended APRS position beacon: it reads a
// GPS fix over a serial NMEA feed, encodes an AX.25 UI frame on a timer,
// and keys a transmitter through a Bell-202 AFSK modulator.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kd2vcb/pico-aprs-beacon/internal/aprs"
	"github.com/kd2vcb/pico-aprs-beacon/internal/audio"
	"github.com/kd2vcb/pico-aprs-beacon/internal/ax25"
	"github.com/kd2vcb/pico-aprs-beacon/internal/beacon"
	"github.com/kd2vcb/pico-aprs-beacon/internal/config"
	"github.com/kd2vcb/pico-aprs-beacon/internal/dwlog"
	"github.com/kd2vcb/pico-aprs-beacon/internal/gpsfix"
	"github.com/kd2vcb/pico-aprs-beacon/internal/modem"
	"github.com/kd2vcb/pico-aprs-beacon/internal/ptt"
	"github.com/kd2vcb/pico-aprs-beacon/internal/sched"
	"github.com/kd2vcb/pico-aprs-beacon/internal/serialport"
	"github.com/kd2vcb/pico-aprs-beacon/internal/status"
	"github.com/kd2vcb/pico-aprs-beacon/internal/version"
)

// gpsQueueCapacity matches the reference firmware's UART_BUFFER_SIZE; at
// 38400 baud a GPS sentence burst never comes close to filling it.
const gpsQueueCapacity = 4096

func main() {
	cfg := config.Defaults()
	config.ApplyFlags(&cfg)

	logger := dwlog.New()
	logger.Info(version.Banner(false))

	src, err := ax25.NewAddress(cfg.MyCall, cfg.MySSID)
	if err != nil {
		logger.Fatalf("invalid mycall %q-%d: %s", cfg.MyCall, cfg.MySSID, err)
	}
	dest, err := ax25.NewAddress(cfg.ToCall, 0)
	if err != nil {
		logger.Fatalf("invalid tocall %q: %s", cfg.ToCall, err)
	}
	var digipeaters []ax25.AddressField
	if cfg.DigipeaterCall != "" {
		digi, err := ax25.NewAddress(cfg.DigipeaterCall, cfg.DigipeaterSSID)
		if err != nil {
			logger.Fatalf("invalid digipeater call %q-%d: %s", cfg.DigipeaterCall, cfg.DigipeaterSSID, err)
		}
		digipeaters = append(digipeaters, digi)
	}

	keyer := newKeyer(cfg, logger)
	defer keyer.Close()

	audioOut, err := audio.NewOut(keyer)
	if err != nil {
		logger.Fatalf("audio init: %s", err)
	}
	defer audioOut.Close()

	gpsQueue := gpsfix.NewQueue(gpsQueueCapacity)
	fix := &gpsfix.Fix{}

	gpsDevice := cfg.GPSDevice
	if gpsDevice == "auto" {
		found, err := serialport.DiscoverGPSDevice()
		if err != nil {
			logger.Fatalf("gps device discovery: %s", err)
		}
		gpsDevice = found
		logger.Infof("discovered gps device at %s", gpsDevice)
	}

	serial, err := serialport.Open(gpsDevice, cfg.GPSBaud, gpsQueue)
	if err != nil {
		logger.Fatalf("gps serial init: %s", err)
	}
	defer serial.Close()

	txLog, err := dwlog.NewTxLog(filepath.Join(".", "logs"))
	if err != nil {
		logger.Fatalf("tx log init: %s", err)
	}
	defer txLog.Close()

	statusView := status.NewView()
	txQueue := beacon.NewTxQueue(2)

	gpsTask := gpsfix.NewTask(gpsQueue, fix, func(line string, err error) {
		logger.Debugf("gps parse: %q: %s", line, err)
	})

	beaconTask := beacon.NewTask(dest, src, digipeaters, aprs.PositionReport{
		SymbolTable: cfg.SymbolTable,
		SymbolCode:  cfg.SymbolCode,
		Comment:     cfg.Comment,
	}, fix, txQueue, cfg.PreambleFlags, cfg.TrailingFlags)

	beaconTask.SetPeriod(cfg.BeaconPeriodSeconds)
	beaconTask.SetOnSent(func(frameLen int) {
		now := time.Now()
		statusView.RecordTx(now)
		if err := txLog.Append(now, cfg.MyCall, frameLen); err != nil {
			logger.Warnf("tx log: %s", err)
		}
	})

	modulatorTask := modem.NewModulator(txQueue, audioOut, nil)
	statusTask := newStatusTask(fix, statusView)

	scheduler := sched.New([]sched.Tickable{
		gpsTask,
		beaconTask,
		modulatorTask,
		statusTask,
	})

	if cfg.AdvertiseStatus {
		adv, err := status.Advertise(context.Background(), cfg.MyCall, 0)
		if err != nil {
			logger.Warnf("status advertise: %s", err)
		} else {
			defer adv.Close()
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Infof("beaconing %s via %s every %ds", cfg.MyCall, cfg.ToCall, cfg.BeaconPeriodSeconds)

	for {
		select {
		case <-stop:
			logger.Info("shutting down")
			return
		default:
		}

		scheduler.Run(sched.MonotonicMillis())
		time.Sleep(10 * time.Millisecond)
	}
}

// newKeyer builds the configured PTT backend, falling back to a no-op
// keyer (bench testing without a radio attached) if the GPIO line cannot
// be claimed.
func newKeyer(cfg config.Config, logger *log.Logger) ptt.Keyer {
	keyer, err := ptt.NewGPIO(cfg.PTTGPIOChip, cfg.PTTGPIOOffset)
	if err != nil {
		logger.Warnf("ptt gpio unavailable (%s), falling back to a no-op keyer", err)
		return ptt.Null{}
	}
	return keyer
}

// statusTask polls the GPS fix into the status view every second,
// implementing sched.Tickable.
type statusTask struct {
	fix  *gpsfix.Fix
	view *status.View
	next int64
}

func newStatusTask(fix *gpsfix.Fix, view *status.View) *statusTask {
	return &statusTask{fix: fix, view: view}
}

func (t *statusTask) NextRunAt() int64 { return t.next }

func (t *statusTask) Tick(now int64) {
	t.next = now + 1000
	t.view.SetFixType(t.fix.FixType())
}
