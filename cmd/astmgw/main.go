// Command astmgw is the default host-side gateway process: it discovers
// serial ports, probes each for ASTM E1381 compliance, and runs one
// session per compliant analyzer until interrupted. The core library
// treats port enumeration and the serial device itself as swappable
// collaborators (see the config, discover, and serial packages); this
// command only wires the default adapters together.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/labgw/astmgw/config"
	"github.com/labgw/astmgw/discover"
	"github.com/labgw/astmgw/gwlog"
	"github.com/labgw/astmgw/serial"
	"github.com/labgw/astmgw/session"
	"github.com/labgw/astmgw/supervisor"
)

func main() {
	configFile := pflag.StringP("config-file", "c", "astmgw.yaml", "YAML configuration file name.")
	rediscoverEvery := pflag.Duration("rediscover-interval", 10*time.Second, "How often to re-scan for newly attached ports.")
	logDir := pflag.StringP("log-dir", "l", "", "Directory for daily rotated log files; console only if empty.")
	verbose := pflag.BoolP("verbose", "v", false, "Enable debug-level logging.")

	resolve := config.FromFlags(pflag.CommandLine)
	pflag.Parse()

	base, err := config.FromFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astmgw: %v\n", err)
		os.Exit(1)
	}
	cfg := resolve(base)

	level := charmlog.InfoLevel
	if *verbose {
		level = charmlog.DebugLevel
	}

	logWriter := os.Stderr
	var logFile *os.File
	if *logDir != "" {
		f, err := gwlog.OpenDailyFile(*logDir, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "astmgw: %v\n", err)
			os.Exit(1)
		}
		logFile = f
		defer logFile.Close()
	}
	var log *gwlog.Logger
	if logFile != nil {
		log = gwlog.New(logFile, level)
	} else {
		log = gwlog.New(logWriter, level)
	}

	handlers := session.Handlers{
		OnMessageReceived: func(d session.Delivery) {
			log.Info("message received", "port", d.PortName, "seq", d.Seq, "records", len(d.Records))
		},
		OnMessageError: func(port string, err error) {
			log.Warn("discarded unparseable message", "port", port, "err", err)
		},
		OnSessionState: func(port string, st session.State, reason error) {
			if reason != nil {
				log.Info("session state", "port", port, "state", st.String(), "reason", reason)
			} else {
				log.Info("session state", "port", port, "state", st.String())
			}
		},
	}

	var lister discover.Lister
	if runtime.GOOS == "linux" {
		lister = discover.NewUdevLister()
	} else {
		lister = discover.Static{}
	}

	open := func(device string, line serial.LineConfig) (serial.Port, error) {
		return serial.OpenTermPort(device, line)
	}

	sup := supervisor.New(lister, open, cfg, log, handlers)
	defer sup.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(*rediscoverEvery)
	defer ticker.Stop()

	if spawned, err := sup.Discover(ctx); err != nil {
		log.Error("initial discovery failed", "err", err)
	} else {
		log.Info("initial discovery complete", "spawned", spawned)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case <-ticker.C:
			if spawned, err := sup.Discover(ctx); err != nil {
				log.Warn("discovery failed", "err", err)
			} else if len(spawned) > 0 {
				log.Info("discovered new ports", "spawned", spawned)
			}
		}
	}
}
