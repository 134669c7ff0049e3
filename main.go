package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/xolan/tlreport/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

func init() {
	if err := setLogLevel(os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatal(err)
	}
}

// setLogLevel applies a logrus level name; empty means info
func setLogLevel(level string) error {
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return nil
	}
	logrusLevel, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(logrusLevel)
	return nil
}

func run() int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	exitFunc(run())
}
