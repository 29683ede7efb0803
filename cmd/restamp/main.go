// Command restamp renames the media files in the current directory to the
// canonical YYYY.MM.DD.HH.MM.SS_name.ext form, dating them from embedded
// metadata (with -t) or from the file change time.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/restamp/internal/config"
	"github.com/backmassage/restamp/internal/display"
	"github.com/backmassage/restamp/internal/logging"
	"github.com/backmassage/restamp/internal/pipeline"
)

const version = "1.2.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "restamp: %v\n", err)
		return 2
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "restamp: cannot determine working directory: %v\n", err)
		return 1
	}
	cfg.Dir = config.NormalizeDirArg(wd)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "restamp: %v\n", err)
		return 1
	}

	log := logging.NewLogger()
	if cfg.Verbose {
		display.PrintBanner()
		log.Info("restamp v%s", version)
		log.Info("Directory: %s", cfg.Dir)
		if cfg.TimeFromEXIF {
			log.Info("Date source: embedded metadata, ctime fallback")
		} else {
			log.Info("Date source: file change time (ctime)")
		}
		if cfg.Force {
			log.Info("Force mode: re-processing already-stamped files")
		}
	}

	// Per-file failures are reported as they happen and never abort the
	// batch; the exit code only reflects startup problems.
	pipeline.Run(&cfg, log)
	return 0
}
