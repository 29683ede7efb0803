// Package pipeline orchestrates the directory scan, per-file date
// resolution and name reconciliation, the deferred rename plan, and the
// permission normalization pass.
package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	progressbar "github.com/schollz/progressbar/v3"

	"github.com/backmassage/restamp/internal/config"
	"github.com/backmassage/restamp/internal/display"
	"github.com/backmassage/restamp/internal/logging"
	"github.com/backmassage/restamp/internal/metadata"
	"github.com/backmassage/restamp/internal/naming"
	"github.com/backmassage/restamp/internal/perms"
	"github.com/backmassage/restamp/internal/stamp"
	"github.com/backmassage/restamp/internal/term"
)

// planEntry is one deferred rename, keyed in the plan by its final name.
// Plan keys are unique by construction: insertion happens only after the
// collision resolver has claimed the name.
type planEntry struct {
	source string // original basename
	src    stamp.Source
}

// Run is the top-level batch entry point: discover files, build the rename
// plan (phase 1, reads only), execute it in deterministic order (phase 2),
// then clear execute bits on every eligible file that was not renamed.
// Failures are isolated per file; Run itself never fails.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, scanned, err := Discover(cfg.Dir)
	if err != nil {
		log.Error("Directory scan failed: %v", err)
		return stats
	}
	stats.Scanned = scanned

	resolver := &stamp.Resolver{}
	if cfg.TimeFromEXIF {
		resolver.Extractor = metadata.NewExtractor()
	}

	dirHas := func(name string) bool {
		_, err := os.Lstat(filepath.Join(cfg.Dir, name))
		return err == nil
	}
	collisions := naming.NewCollisionResolver(dirHas)

	plan := make(map[string]planEntry)
	notRenamed := make(map[string]bool)

	var bar *progressbar.ProgressBar
	if !cfg.Verbose && len(files) > 0 && term.IsTerminal(os.Stdout) {
		bar = progressbar.Default(int64(len(files)), "Scanning")
	}

	log.Debug(cfg.Verbose, "Scanning files...")
	for _, name := range files {
		stats.Eligible++
		processFile(cfg, log, name, resolver, collisions, plan, notRenamed, &stats)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	renamed := executePlan(cfg, log, plan, notRenamed, &stats)
	permissionPass(cfg, log, notRenamed, renamed, &stats)
	printSummary(cfg, log, &stats)
	return stats
}

// processFile runs one file through resolve → reconcile → collision check
// and either adds it to the plan or records its terminal skip/error state.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	name string,
	resolver *stamp.Resolver,
	collisions *naming.CollisionResolver,
	plan map[string]planEntry,
	notRenamed map[string]bool,
	stats *RunStats,
) {
	log.Debug(cfg.Verbose, "Processing: %s", name)
	path := filepath.Join(cfg.Dir, name)

	ts, src, err := resolver.Resolve(path, cfg.TimeFromEXIF)
	if err != nil {
		log.Error("%v", err)
		stats.Errors++
		notRenamed[name] = true
		return
	}
	log.Debug(cfg.Verbose, "  - Date %s from %s", ts, src)

	out := naming.Reconcile(name, ts, cfg.Force)
	switch out.Status {
	case naming.StatusCorrectStamp:
		log.Debug(cfg.Verbose, "  - Skipping (starts with correct date, no -f)")
		stats.SkippedCorrectStamp++
		notRenamed[name] = true
		return
	case naming.StatusContainsDate:
		log.Debug(cfg.Verbose, "  - Skipping (already contains target date, no -f)")
		stats.SkippedContainsDate++
		notRenamed[name] = true
		return
	case naming.StatusInvalidAfterStrip:
		log.Warn("Filename %q became invalid after stripping, skipping", name)
		stats.SkippedInvalidAfterStrip++
		notRenamed[name] = true
		return
	case naming.StatusNoChange:
		log.Debug(cfg.Verbose, "  - Skipping (no change needed)")
		stats.SkippedNoChange++
		notRenamed[name] = true
		return
	}

	final, err := collisions.Resolve(name, out.Target)
	switch {
	case errors.Is(err, naming.ErrSelfTarget):
		log.Debug(cfg.Verbose, "  - Skipping (resolved to no change after conflict check)")
		stats.SkippedNoChange++
		notRenamed[name] = true
		return
	case errors.Is(err, naming.ErrExhausted):
		log.Warn("Could not find unique name for %q -> %q, skipping", name, out.Target)
		stats.SkippedCollisionExhausted++
		notRenamed[name] = true
		return
	}

	plan[final] = planEntry{source: name, src: src}
	log.Debug(cfg.Verbose, "  - Planned: %q -> %q", name, final)
}

// executePlan performs phase 2: renames in lexicographic final-name order.
// A failed rename is reported and its source joins the permission pass;
// remaining entries still execute. Returns the successfully renamed sources.
func executePlan(
	cfg *config.Config,
	log *logging.Logger,
	plan map[string]planEntry,
	notRenamed map[string]bool,
	stats *RunStats,
) map[string]bool {
	renamed := make(map[string]bool)
	if len(plan) == 0 {
		log.Debug(cfg.Verbose, "No files to rename based on scan criteria.")
		return renamed
	}

	finals := make([]string, 0, len(plan))
	for final := range plan {
		finals = append(finals, final)
	}
	sort.Strings(finals)

	if cfg.Verbose {
		log.Debug(true, "Preview of renames (%d files):", len(finals))
		for _, final := range finals {
			e := plan[final]
			log.Debug(true, "  %q -> %q (using %s date)", e.source, final, e.src)
		}
	}

	for _, final := range finals {
		e := plan[final]
		oldPath := filepath.Join(cfg.Dir, e.source)
		newPath := filepath.Join(cfg.Dir, final)

		if err := os.Rename(oldPath, newPath); err != nil {
			log.Error("Rename %s -> %s: %v", e.source, final, err)
			stats.Errors++
			notRenamed[e.source] = true
			continue
		}
		stats.Renamed++
		renamed[e.source] = true
		log.Debug(cfg.Verbose, "Renamed: %q -> %q", display.TruncateName(e.source, 60), final)

		adjusted, err := perms.ClearExecuteBits(newPath)
		if err != nil {
			log.Warn("Could not change permissions for %s: %v", final, err)
		}
		if adjusted {
			stats.PermissionsAdjusted++
		}
	}
	return renamed
}

// permissionPass clears execute bits on every eligible file that was never
// successfully renamed (skipped at any stage, errored, or failed to
// rename). Renamed files already had theirs cleared during execution.
func permissionPass(
	cfg *config.Config,
	log *logging.Logger,
	notRenamed map[string]bool,
	renamed map[string]bool,
	stats *RunStats,
) {
	names := make([]string, 0, len(notRenamed))
	for name := range notRenamed {
		if !renamed[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)

	log.Debug(cfg.Verbose, "Adjusting permissions for %d file(s) that were not renamed...", len(names))
	for _, name := range names {
		adjusted, err := perms.ClearExecuteBits(filepath.Join(cfg.Dir, name))
		if err != nil {
			log.Warn("Could not change permissions for %s: %v", name, err)
			continue
		}
		if adjusted {
			stats.PermissionsAdjusted++
			log.Debug(cfg.Verbose, "  - Permissions adjusted for: %s", name)
		}
	}
}

// printSummary writes the final count block. The breakdown of skip reasons
// is verbose-only; the headline counters always print.
func printSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	if cfg.Verbose {
		if stats.SkippedCorrectStamp > 0 {
			log.Debug(true, "Skipped (starts with correct date, no -f): %d", stats.SkippedCorrectStamp)
		}
		if stats.SkippedContainsDate > 0 {
			log.Debug(true, "Skipped (contained target date elsewhere, no -f): %d", stats.SkippedContainsDate)
		}
		if stats.SkippedInvalidAfterStrip > 0 {
			log.Debug(true, "Skipped (empty/invalid after stripping): %d", stats.SkippedInvalidAfterStrip)
		}
		if stats.SkippedNoChange > 0 {
			log.Debug(true, "Skipped (no change ultimately needed): %d", stats.SkippedNoChange)
		}
		if stats.SkippedCollisionExhausted > 0 {
			log.Debug(true, "Skipped (no unique name found): %d", stats.SkippedCollisionExhausted)
		}
	}

	log.Plain("")
	log.Plain("--- Summary ---")
	log.Plain("Total files scanned: %d", stats.Scanned)
	log.Plain("Eligible media files: %d", stats.Eligible)
	switch {
	case stats.Renamed > 0:
		log.Plain("Files renamed: %d", stats.Renamed)
	case stats.Eligible > 0:
		log.Plain("No files were renamed (e.g., already correct, skipped, or no changes identified).")
	default:
		log.Plain("No eligible media files found to process or rename.")
	}
	if stats.PermissionsAdjusted > 0 {
		log.Plain("File permissions adjusted: %d", stats.PermissionsAdjusted)
	}
	if stats.Errors > 0 {
		log.Plain("Per-file errors: %d", stats.Errors)
	}
}
