package config

// This file implements CLI flag parsing and help text. The tool accepts no
// positional arguments; it always operates on the current directory.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (not including the program name) into cfg.
// On --help it prints usage and exits 0. On error it returns non-nil
// (e.g. unknown flag, unexpected positional argument).
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("restamp", flag.ContinueOnError)
	fs.Usage = func() { printUsage() }

	var showHelp bool

	fs.BoolVar(&cfg.TimeFromEXIF, "time_from_exif", false, "Use embedded metadata date when available")
	fs.BoolVar(&cfg.TimeFromEXIF, "t", false, "Same as --time_from_exif")
	fs.BoolVar(&cfg.Force, "force", false, "Force reprocessing of already-stamped files")
	fs.BoolVar(&cfg.Force, "f", false, "Same as --force")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose per-file trace output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage()
		os.Exit(0)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (restamp takes no arguments; run it inside the target directory)", fs.Arg(0))
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage() {
	const col1 = 26
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "restamp — rename media files to YYYY.MM.DD.HH.MM.SS_name.ext"},
		{"", ""},
		{"  restamp [OPTIONS]", ""},
		{"", ""},
		{"Options", ""},
		{"  -t, --time_from_exif", "Use XMP/EXIF/MP4 metadata date when available;"},
		{"                      ", "fall back to file change time (ctime) otherwise"},
		{"  -f, --force", "Re-process files already carrying the correct stamp"},
		{"             ", "or containing the target date elsewhere in the name"},
		{"  -v, --verbose", "Verbose output with per-file processing detail"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Files with a stale leading date stamp are re-processed by default."},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
